// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//BlendX 执行器名字
const BlendX = "blend"

// action ty
const (
	BlendActionOpen = iota + 1
	BlendActionCancel
	BlendActionChallenge
)

// log ty
const (
	TyLogBlendOpen      = 2101
	TyLogBlendCancel    = 2102
	TyLogBlendChallenge = 2103
)

// query func name
const (
	FuncNameListByIdentity = "ListByIdentity"
	FuncNameListUnplayed   = "ListUnplayed"
	FuncNameGetMove        = "GetMove"
	FuncNameHistory        = "History"
	FuncNameListByStatus   = "ListByStatus"
)

//MoveStatus 对局状态
// Unplayed -> Played | Tied | Cancelled, 终态不再变化
type MoveStatus int32

// move status
const (
	StatusUnplayed MoveStatus = iota + 1
	StatusPlayed
	StatusTied
	StatusCancelled
)

var statusName = map[MoveStatus]string{
	StatusUnplayed:  "unplayed",
	StatusPlayed:    "played",
	StatusTied:      "tied",
	StatusCancelled: "cancelled",
}

func (s MoveStatus) String() string {
	if name, ok := statusName[s]; ok {
		return name
	}
	return "unknown"
}

//Terminal 是否终态
func (s MoveStatus) Terminal() bool {
	return s == StatusPlayed || s == StatusTied || s == StatusCancelled
}

//ParseStatus 根据名字解析状态
func ParseStatus(name string) (MoveStatus, error) {
	for s, n := range statusName {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrInvalidStatus
}

// 分页
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)
