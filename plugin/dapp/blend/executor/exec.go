// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/types"
)

//Exec_Open 创建对局
func (b *Blend) Exec_Open(payload *bt.BlendOpen, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(b, tx, index)
	return action.Open(payload)
}

//Exec_Cancel 撤销对局
func (b *Blend) Exec_Cancel(payload *bt.BlendCancel, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(b, tx, index)
	return action.Cancel(payload)
}

//Exec_Challenge 挑战对局
func (b *Blend) Exec_Challenge(payload *bt.BlendChallenge, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := newAction(b, tx, index)
	return action.Challenge(payload)
}
