// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/types"
)

func (b *Blend) execLocal(receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		switch item.Ty {
		case bt.TyLogBlendOpen, bt.TyLogBlendCancel, bt.TyLogBlendChallenge:
			var r bt.ReceiptBlend
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV, updateIndex(&r)...)
		}
	}
	return set, nil
}

// 更新索引, 同时删除旧状态下的索引
func updateIndex(r *bt.ReceiptBlend) (kvs []*types.KeyValue) {
	switch r.Status {
	case bt.StatusUnplayed:
		kvs = append(kvs, addIndex(calcIDKey(r.ID), r.ID, r.Owner))
		kvs = append(kvs, addIndex(calcOwnerKey(r.Owner, r.ID), r.ID, r.Owner))
		kvs = append(kvs, addIndex(calcPlayerKey(r.Owner, r.ID), r.ID, r.Owner))
		kvs = append(kvs, addIndex(calcStatusKey(r.Status, r.ID), r.ID, r.Owner))
	case bt.StatusCancelled:
		kvs = append(kvs, delIndex(calcStatusKey(r.PrevStatus, r.ID)))
		if r.Deleted {
			kvs = append(kvs, delIndex(calcIDKey(r.ID)))
			kvs = append(kvs, delIndex(calcOwnerKey(r.Owner, r.ID)))
			kvs = append(kvs, delIndex(calcPlayerKey(r.Owner, r.ID)))
		} else {
			kvs = append(kvs, addIndex(calcStatusKey(r.Status, r.ID), r.ID, r.Owner))
		}
	case bt.StatusPlayed, bt.StatusTied:
		kvs = append(kvs, delIndex(calcStatusKey(r.PrevStatus, r.ID)))
		kvs = append(kvs, addIndex(calcStatusKey(r.Status, r.ID), r.ID, r.Owner))
		kvs = append(kvs, addIndex(calcPlayerKey(r.Adversary, r.ID), r.ID, r.Owner))
	}
	return kvs
}

//ExecLocal_Open 创建对局的索引
func (b *Blend) ExecLocal_Open(payload *bt.BlendOpen, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

//ExecLocal_Cancel 撤销对局的索引
func (b *Blend) ExecLocal_Cancel(payload *bt.BlendCancel, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}

//ExecLocal_Challenge 结算对局的索引
func (b *Blend) ExecLocal_Challenge(payload *bt.BlendChallenge, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return b.execLocal(receipt)
}
