// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/33cn/gawibawibo/common"
	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var driver Driver

func TestSignAndVerify(t *testing.T) {
	priv, err := driver.GenKey()
	require.NoError(t, err)
	pub := priv.PubKey()
	assert.Len(t, pub.Bytes(), 33)

	msg := []byte("hello blend")
	sig := priv.Sign(msg)
	assert.True(t, pub.VerifyBytes(msg, sig))
	assert.False(t, pub.VerifyBytes([]byte("hello blend!"), sig))

	other, err := driver.GenKey()
	require.NoError(t, err)
	assert.False(t, other.PubKey().VerifyBytes(msg, sig))

	assert.NoError(t, crypto.Verify(ID, msg, pub.Bytes(), sig.Bytes()))
	assert.Equal(t, crypto.ErrSign, crypto.Verify(ID, msg, other.PubKey().Bytes(), sig.Bytes()))
	assert.Equal(t, crypto.ErrNotSupport, crypto.Verify(99, msg, pub.Bytes(), sig.Bytes()))

	assert.Equal(t, int32(ID), crypto.GetType(Name))
	assert.Equal(t, Name, crypto.GetName(ID))
	assert.Equal(t, int32(0), crypto.GetType("nosuch"))
	c, err := crypto.New(Name)
	require.NoError(t, err)
	assert.Equal(t, &Driver{}, c)
	assert.Panics(t, func() { crypto.Register(Name, &Driver{}, 2) })
}

func TestPrivKeyFromBytes(t *testing.T) {
	priKeyBytes, err := common.FromHex("c34b5d9d44ac7b754806f761d3d4d2c4fe5214f6b074c19f069c4f5c2a29c8cc")
	require.NoError(t, err)
	priv, err := driver.PrivKeyFromBytes(priKeyBytes)
	require.NoError(t, err)
	assert.Equal(t, priKeyBytes, priv.Bytes())
	addr := address.PubKeyToAddress(priv.PubKey().Bytes()).String()
	assert.Equal(t, "1Q8hGLfoGe63efeWa8fJ4Pnukhkngt6poK", addr)

	_, err = driver.PrivKeyFromBytes(priKeyBytes[:31])
	assert.Error(t, err)
	_, err = driver.PubKeyFromBytes(priKeyBytes)
	assert.Error(t, err)

	pub, err := driver.PubKeyFromBytes(priv.PubKey().Bytes())
	require.NoError(t, err)
	assert.Equal(t, priv.PubKey(), pub)
}
