// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"github.com/33cn/gawibawibo/common"
	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/common/crypto"
	"github.com/33cn/gawibawibo/types"
	"github.com/pkg/errors"
)

//Signer 按配置中的签名算法签名交易
type Signer struct {
	ty   int32
	priv crypto.PrivKey
}

//NewSigner key 为 hex 格式的私钥, 签名算法取 [exec] signType
func NewSigner(conf, key string) (*Signer, error) {
	cfg, _, err := LoadConfig(conf)
	if err != nil {
		return nil, err
	}
	c, err := crypto.New(cfg.Exec.SignType)
	if err != nil {
		return nil, errors.Wrapf(err, "sign type %s", cfg.Exec.SignType)
	}
	b, err := common.FromHex(key)
	if err != nil || len(b) == 0 {
		return nil, errors.Wrap(types.ErrInvalidParam, "private key must be hex")
	}
	priv, err := c.PrivKeyFromBytes(b)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, err.Error())
	}
	return &Signer{ty: crypto.GetType(cfg.Exec.SignType), priv: priv}, nil
}

//Addr 签名者地址, 也就是交易的 From
func (s *Signer) Addr() string {
	return address.PubKeyToAddress(s.priv.PubKey().Bytes()).String()
}

//Sign 签名
func (s *Signer) Sign(tx *types.Transaction) {
	tx.Sign(s.ty, s.priv)
}
