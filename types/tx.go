// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/gawibawibo/common"
	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/common/crypto"
)

//SECP256K1 签名类型
const SECP256K1 = 1

//Signature 交易签名
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

//Transaction 一次对执行器的调用, From 是签名公钥对应的地址, 由执行器在验签后确定
type Transaction struct {
	Execer    []byte     `json:"execer"`
	Payload   []byte     `json:"payload"`
	From      string     `json:"from,omitempty"`
	Nonce     int64      `json:"nonce"`
	Signature *Signature `json:"signature,omitempty"`
}

//Hash 交易哈希, 不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

//Sign 签名, 同时把 From 设置为签名者地址
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	pub := priv.PubKey()
	tx.From = address.PubKeyToAddress(pub.Bytes()).String()
	tx.Signature = nil
	data := Encode(tx)
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 校验签名, 并且 From 必须是签名公钥的地址
func (tx *Transaction) CheckSign() error {
	sig := tx.GetSignature()
	if sig == nil {
		return ErrSign
	}
	copytx := *tx
	copytx.Signature = nil
	if err := crypto.Verify(sig.Ty, Encode(&copytx), sig.Pubkey, sig.Signature); err != nil {
		return ErrSign
	}
	if tx.From != address.PubKeyToAddress(sig.Pubkey).String() {
		return ErrFromAddr
	}
	return nil
}

//GetSignature signature
func (tx *Transaction) GetSignature() *Signature {
	if tx != nil {
		return tx.Signature
	}
	return nil
}

//GetExecer execer
func (tx *Transaction) GetExecer() []byte {
	if tx != nil {
		return tx.Execer
	}
	return nil
}

//GetPayload payload
func (tx *Transaction) GetPayload() []byte {
	if tx != nil {
		return tx.Payload
	}
	return nil
}

//GetFrom 交易发起者
func (tx *Transaction) GetFrom() string {
	if tx != nil {
		return tx.From
	}
	return ""
}

//Clone 复制交易
func (tx *Transaction) Clone() *Transaction {
	copytx := *tx
	copytx.Execer = common.CopyBytes(tx.Execer)
	copytx.Payload = common.CopyBytes(tx.Payload)
	if tx.Signature != nil {
		sig := *tx.Signature
		sig.Pubkey = common.CopyBytes(tx.Signature.Pubkey)
		sig.Signature = common.CopyBytes(tx.Signature.Signature)
		copytx.Signature = &sig
	}
	return &copytx
}
