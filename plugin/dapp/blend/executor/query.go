// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/gawibawibo/common/db"
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/types"
)

//Query_GetMove 查询单个对局
func (b *Blend) Query_GetMove(in *bt.ReqMoveID) (types.Message, error) {
	move, err := getMove(b.GetStateDB(), in.ID)
	if err != nil {
		return nil, err
	}
	return move, nil
}

//Query_ListByIdentity 某个身份发起的全部对局, 按 id 排序
func (b *Blend) Query_ListByIdentity(in *bt.ReqIdentity) (types.Message, error) {
	if in.Identity == "" {
		return nil, types.ErrInvalidParam
	}
	indexes, err := listIndex(b.GetLocalDB(), calcOwnerPrefix(in.Identity), nil, 0, dbm.ListASC)
	if err != nil {
		return nil, err
	}
	moves, err := loadMoves(b.GetStateDB(), indexes)
	if err != nil {
		return nil, err
	}
	return &bt.ReplyMoves{Moves: moves}, nil
}

//Query_ListUnplayed 全部等待挑战的对局
func (b *Blend) Query_ListUnplayed(in *types.ReqNil) (types.Message, error) {
	indexes, err := listIndex(b.GetLocalDB(), calcStatusPrefix(bt.StatusUnplayed), nil, 0, dbm.ListASC)
	if err != nil {
		return nil, err
	}
	if indexes == nil {
		indexes = []*bt.MoveIndex{}
	}
	return &bt.ReplyUnplayed{Moves: indexes}, nil
}

//Query_History 某个身份发起或者挑战过的已结束对局
func (b *Blend) Query_History(in *bt.ReqIdentity) (types.Message, error) {
	if in.Identity == "" {
		return nil, types.ErrInvalidParam
	}
	indexes, err := listIndex(b.GetLocalDB(), calcPlayerPrefix(in.Identity), nil, 0, dbm.ListASC)
	if err != nil {
		return nil, err
	}
	moves, err := loadMoves(b.GetStateDB(), indexes)
	if err != nil {
		return nil, err
	}
	history := make([]*bt.Move, 0, len(moves))
	for _, m := range moves {
		if m.Status != bt.StatusUnplayed {
			history = append(history, m)
		}
	}
	return &bt.ReplyMoves{Moves: history}, nil
}

//Query_ListByStatus 按状态分页, PrimaryKey 为上一页最后一个 id
func (b *Blend) Query_ListByStatus(in *bt.ReqMovesByStatus) (types.Message, error) {
	if _, ok := statusValid[in.Status]; !ok {
		return nil, bt.ErrInvalidStatus
	}
	count := in.Count
	if count <= 0 {
		count = bt.DefaultCount
	}
	if count > bt.MaxCount {
		count = bt.MaxCount
	}
	var key []byte
	if in.PrimaryKey != 0 {
		key = calcStatusKey(in.Status, in.PrimaryKey)
	}
	indexes, err := listIndex(b.GetLocalDB(), calcStatusPrefix(in.Status), key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	moves, err := loadMoves(b.GetStateDB(), indexes)
	if err != nil {
		return nil, err
	}
	return &bt.ReplyMoves{Moves: moves}, nil
}

var statusValid = map[bt.MoveStatus]struct{}{
	bt.StatusUnplayed:  {},
	bt.StatusPlayed:    {},
	bt.StatusTied:      {},
	bt.StatusCancelled: {},
}
