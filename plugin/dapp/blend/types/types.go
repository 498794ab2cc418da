// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/gawibawibo/types"
)

//Move 一局对局的状态记录
type Move struct {
	ID                   uint32     `json:"id"`
	Owner                string     `json:"owner"`
	OwnerFingerprint     string     `json:"ownerFingerprint"`
	Adversary            string     `json:"adversary,omitempty"`
	AdversaryFingerprint string     `json:"adversaryFingerprint,omitempty"`
	Status               MoveStatus `json:"status"`
	Winner               string     `json:"winner,omitempty"`
	CreateTime           int64      `json:"createTime"`
	CloseTime            int64      `json:"closeTime,omitempty"`
	CreateTxHash         string     `json:"createTxHash"`
	CloseTxHash          string     `json:"closeTxHash,omitempty"`
}

//Challenged 是否已经记录挑战者
func (m *Move) Challenged() bool {
	return m.Adversary != ""
}

//BlendAction 交易 payload, Ty 决定哪一个字段有效
type BlendAction struct {
	Ty        int32           `json:"ty"`
	Open      *BlendOpen      `json:"open,omitempty"`
	Cancel    *BlendCancel    `json:"cancel,omitempty"`
	Challenge *BlendChallenge `json:"challenge,omitempty"`
}

//GetTy action ty
func (a *BlendAction) GetTy() int32 {
	if a != nil {
		return a.Ty
	}
	return 0
}

//GetOpen open
func (a *BlendAction) GetOpen() *BlendOpen {
	if a != nil {
		return a.Open
	}
	return nil
}

//GetCancel cancel
func (a *BlendAction) GetCancel() *BlendCancel {
	if a != nil {
		return a.Cancel
	}
	return nil
}

//GetChallenge challenge
func (a *BlendAction) GetChallenge() *BlendChallenge {
	if a != nil {
		return a.Challenge
	}
	return nil
}

//BlendOpen 创建对局
type BlendOpen struct {
	ID          uint32 `json:"id"`
	Fingerprint string `json:"fingerprint"`
}

//BlendCancel 撤销对局
type BlendCancel struct {
	ID uint32 `json:"id"`
}

//BlendChallenge 挑战对局, 同时结算
type BlendChallenge struct {
	ID          uint32 `json:"id"`
	Fingerprint string `json:"fingerprint"`
}

//ReceiptBlend 执行日志, 本地索引根据它更新
type ReceiptBlend struct {
	ID            uint32     `json:"id"`
	Owner         string     `json:"owner"`
	Adversary     string     `json:"adversary,omitempty"`
	Addr          string     `json:"addr"`
	Status        MoveStatus `json:"status"`
	PrevStatus    MoveStatus `json:"prevStatus"`
	Winner        string     `json:"winner,omitempty"`
	OwnerWins     int        `json:"ownerWins"`
	AdversaryWins int        `json:"adversaryWins"`
	Deleted       bool       `json:"deleted,omitempty"`
}

//ReqIdentity 按身份查询
type ReqIdentity struct {
	Identity string `json:"identity"`
}

//ReqMoveID 按 id 查询
type ReqMoveID struct {
	ID uint32 `json:"id"`
}

//ReqMovesByStatus 按状态分页查询, PrimaryKey 为上一页最后一个 id
type ReqMovesByStatus struct {
	Status     MoveStatus `json:"status"`
	PrimaryKey uint32     `json:"primaryKey,omitempty"`
	Count      int32      `json:"count,omitempty"`
	Direction  int32      `json:"direction,omitempty"`
}

//ReplyMoves 对局列表
type ReplyMoves struct {
	Moves []*Move `json:"moves"`
}

//MoveIndex 本地索引中保存的对局摘要
type MoveIndex struct {
	ID    uint32 `json:"id"`
	Owner string `json:"owner"`
}

//ReplyUnplayed 等待挑战的对局列表
type ReplyUnplayed struct {
	Moves []*MoveIndex `json:"moves"`
}

func init() {
	types.RegistorExecutor(BlendX, NewType())
}

//BlendType 执行器类型
type BlendType struct {
	types.ExecTypeBase
}

//NewType new type
func NewType() *BlendType {
	c := &BlendType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名字
func (b *BlendType) GetName() string {
	return BlendX
}

//GetPayload payload
func (b *BlendType) GetPayload() types.Message {
	return &BlendAction{}
}

//GetTypeMap action 名字到 ty
func (b *BlendType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Open":      BlendActionOpen,
		"Cancel":    BlendActionCancel,
		"Challenge": BlendActionChallenge,
	}
}

//GetLogMap 日志类型
func (b *BlendType) GetLogMap() map[int32]*types.LogInfo {
	return map[int32]*types.LogInfo{
		TyLogBlendOpen:      {Ty: reflect.TypeOf(ReceiptBlend{}), Name: "LogBlendOpen"},
		TyLogBlendCancel:    {Ty: reflect.TypeOf(ReceiptBlend{}), Name: "LogBlendCancel"},
		TyLogBlendChallenge: {Ty: reflect.TypeOf(ReceiptBlend{}), Name: "LogBlendChallenge"},
	}
}
