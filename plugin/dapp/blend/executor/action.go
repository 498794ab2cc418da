// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/gawibawibo/common"
	dbm "github.com/33cn/gawibawibo/common/db"
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/system/dapp"
	"github.com/33cn/gawibawibo/types"
)

type action struct {
	db        dbm.KV
	txhash    string
	fromaddr  string
	blocktime int64
	execaddr  string
	conf      *blendConfig
}

func newAction(b *Blend, tx *types.Transaction, index int) *action {
	return &action{
		db:        b.GetStateDB(),
		txhash:    common.ToHex(tx.Hash()),
		fromaddr:  tx.From,
		blocktime: b.GetBlockTime(),
		execaddr:  dapp.ExecAddress(string(tx.Execer)),
		conf:      b.conf,
	}
}

func (a *action) receiptBlend(move *bt.Move, prev bt.MoveStatus) *bt.ReceiptBlend {
	return &bt.ReceiptBlend{
		ID:         move.ID,
		Owner:      move.Owner,
		Adversary:  move.Adversary,
		Addr:       a.fromaddr,
		Status:     move.Status,
		PrevStatus: prev,
		Winner:     move.Winner,
	}
}

func receiptLog(ty int32, r *bt.ReceiptBlend) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (a *action) receipt(kv *dapp.KVCreator, logs ...*types.ReceiptLog) (*types.Receipt, error) {
	if err := kv.Err(); err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv.KVList(), Logs: logs}, nil
}

func (a *action) fail(op string, id uint32, err error) error {
	blog.Error(op, "addr", a.fromaddr, "execaddr", a.execaddr, "id", id, "err", err)
	return err
}

//Open 创建对局, id 已经存在时返回 ErrDuplicateKey
func (a *action) Open(open *bt.BlendOpen) (*types.Receipt, error) {
	exist, err := hasMove(a.db, open.ID)
	if err != nil {
		return nil, a.fail("BlendOpen", open.ID, err)
	}
	if exist {
		return nil, a.fail("BlendOpen", open.ID, bt.ErrDuplicateKey)
	}
	if a.conf.strict {
		if _, err := a.conf.resolver.ResolveStrict(a.fromaddr, open.Fingerprint); err != nil {
			return nil, a.fail("BlendOpen", open.ID, err)
		}
	}
	move := &bt.Move{
		ID:               open.ID,
		Owner:            a.fromaddr,
		OwnerFingerprint: open.Fingerprint,
		Status:           bt.StatusUnplayed,
		CreateTime:       a.blocktime,
		CreateTxHash:     a.txhash,
	}
	kv := dapp.NewKVCreator(a.db)
	kv.Add(Key(move.ID), types.Encode(move))
	return a.receipt(kv, receiptLog(bt.TyLogBlendOpen, a.receiptBlend(move, 0)))
}

//Cancel 撤销对局, 只有发起者可以撤销, 有人挑战之后不能撤销
func (a *action) Cancel(cancel *bt.BlendCancel) (*types.Receipt, error) {
	move, err := getMove(a.db, cancel.ID)
	if err != nil {
		return nil, a.fail("BlendCancel", cancel.ID, err)
	}
	if move.Owner != a.fromaddr || move.Challenged() {
		return nil, a.fail("BlendCancel", cancel.ID, bt.ErrPermissionDenied)
	}
	if move.Status != bt.StatusUnplayed {
		return nil, a.fail("BlendCancel", cancel.ID, bt.ErrInvalidArgument)
	}
	prev := move.Status
	move.Status = bt.StatusCancelled
	move.CloseTime = a.blocktime
	move.CloseTxHash = a.txhash

	kv := dapp.NewKVCreator(a.db)
	r := a.receiptBlend(move, prev)
	if a.conf.deleteOnCancel {
		kv.Del(Key(move.ID))
		r.Deleted = true
	} else {
		kv.Add(Key(move.ID), types.Encode(move))
	}
	return a.receipt(kv, receiptLog(bt.TyLogBlendCancel, r))
}

//Challenge 挑战并立即结算
func (a *action) Challenge(challenge *bt.BlendChallenge) (*types.Receipt, error) {
	move, err := getMove(a.db, challenge.ID)
	if err != nil {
		return nil, a.fail("BlendChallenge", challenge.ID, err)
	}
	if move.Owner == a.fromaddr {
		return nil, a.fail("BlendChallenge", challenge.ID, bt.ErrPermissionDenied)
	}
	if move.Status != bt.StatusUnplayed || move.Challenged() {
		return nil, a.fail("BlendChallenge", challenge.ID, bt.ErrInvalidArgument)
	}
	var outcome MatchOutcome
	if a.conf.strict {
		outcome, err = ResolveMatchStrict(a.conf.resolver, move.Owner, move.OwnerFingerprint, a.fromaddr, challenge.Fingerprint)
		if err != nil {
			return nil, a.fail("BlendChallenge", challenge.ID, err)
		}
	} else {
		outcome = ResolveMatch(a.conf.resolver, move.Owner, move.OwnerFingerprint, a.fromaddr, challenge.Fingerprint)
	}
	prev := move.Status
	move.Adversary = a.fromaddr
	move.AdversaryFingerprint = challenge.Fingerprint
	move.Status = outcome.Status()
	move.Winner = outcome.Winner
	move.CloseTime = a.blocktime
	move.CloseTxHash = a.txhash

	kv := dapp.NewKVCreator(a.db)
	kv.Add(Key(move.ID), types.Encode(move))
	r := a.receiptBlend(move, prev)
	r.OwnerWins = outcome.OwnerWins
	r.AdversaryWins = outcome.AdversaryWins
	blog.Debug("BlendChallenge", "id", move.ID, "status", move.Status, "winner", move.Winner,
		"ownerWins", outcome.OwnerWins, "adversaryWins", outcome.AdversaryWins)
	return a.receipt(kv, receiptLog(bt.TyLogBlendChallenge, r))
}
