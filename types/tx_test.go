// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/system/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxSign(t *testing.T) {
	priv, err := secp256k1.Driver{}.GenKey()
	require.NoError(t, err)
	other, err := secp256k1.Driver{}.GenKey()
	require.NoError(t, err)

	tx := &Transaction{Execer: []byte("test"), Payload: []byte("p"), Nonce: 1}
	assert.Equal(t, ErrSign, tx.CheckSign())

	hash := tx.Hash()
	tx.Sign(SECP256K1, priv)
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From)
	require.NoError(t, tx.CheckSign())
	assert.NotEqual(t, hash, tx.Hash(), "from is part of the hash")
	tx2 := tx.Clone()
	assert.Equal(t, tx.Hash(), tx2.Hash())
	require.NoError(t, tx2.CheckSign())

	// 篡改 payload
	tx2.Payload = []byte("q")
	assert.Equal(t, ErrSign, tx2.CheckSign())

	// From 改成别人的地址
	tx2 = tx.Clone()
	tx2.From = address.PubKeyToAddress(other.PubKey().Bytes()).String()
	assert.Equal(t, ErrSign, tx2.CheckSign())

	// 用自己的私钥签名, 但声称是别人
	tx2 = tx.Clone()
	tx2.Sign(SECP256K1, other)
	tx2.From = tx.From
	assert.Equal(t, ErrSign, tx2.CheckSign())

	// 换成别人的公钥
	tx2 = tx.Clone()
	tx2.Signature.Pubkey = other.PubKey().Bytes()
	assert.Equal(t, ErrSign, tx2.CheckSign())

	// 签名内容里的 From 不是签名者
	tx3 := &Transaction{Execer: []byte("test"), Payload: []byte("p"), Nonce: 1, From: address.PubKeyToAddress(other.PubKey().Bytes()).String()}
	tx3.Signature = &Signature{Ty: SECP256K1, Pubkey: priv.PubKey().Bytes(), Signature: priv.Sign(Encode(tx3)).Bytes()}
	assert.Equal(t, ErrFromAddr, tx3.CheckSign())

	tx2 = tx.Clone()
	tx2.Signature.Ty = 99
	assert.Equal(t, ErrSign, tx2.CheckSign())
}
