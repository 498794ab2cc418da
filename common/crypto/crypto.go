// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 签名算法的接口与注册
package crypto

import (
	"errors"
	"sync"
)

//PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

//Signature 签名
type Signature interface {
	Bytes() []byte
}

//PubKey 公钥
type PubKey interface {
	Bytes() []byte
	VerifyBytes(msg []byte, sig Signature) bool
}

//Crypto 签名算法驱动
type Crypto interface {
	GenKey() (PrivKey, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
	SignatureFromBytes([]byte) (Signature, error)
}

var (
	//ErrNotSupport 未注册的签名算法
	ErrNotSupport = errors.New("ErrNotSupport")
	//ErrSign 签名校验失败
	ErrSign = errors.New("ErrSign")
)

var (
	mu      sync.RWMutex
	drivers = make(map[string]Crypto)
	names   = make(map[int32]string)
)

//Register 注册签名算法, name 与 ty 都不能重复
func Register(name string, driver Crypto, ty int32) {
	mu.Lock()
	defer mu.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	if _, dup := names[ty]; dup {
		panic("crypto: Register called twice for type " + name)
	}
	drivers[name] = driver
	names[ty] = name
}

//New 根据名字获取驱动
func New(name string) (Crypto, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := drivers[name]
	if !ok {
		return nil, ErrNotSupport
	}
	return c, nil
}

//GetName 签名类型对应的名字
func GetName(ty int32) string {
	mu.RLock()
	defer mu.RUnlock()
	if name, ok := names[ty]; ok {
		return name
	}
	return "unknown"
}

//GetType 名字对应的签名类型, 不存在时返回 0
func GetType(name string) int32 {
	mu.RLock()
	defer mu.RUnlock()
	for ty, n := range names {
		if n == name {
			return ty
		}
	}
	return 0
}

//Verify 用 ty 类型的公钥校验签名
func Verify(ty int32, msg, pub, sig []byte) error {
	c, err := New(GetName(ty))
	if err != nil {
		return err
	}
	pubKey, err := c.PubKeyFromBytes(pub)
	if err != nil {
		return err
	}
	signature, err := c.SignatureFromBytes(sig)
	if err != nil {
		return err
	}
	if !pubKey.VerifyBytes(msg, signature) {
		return ErrSign
	}
	return nil
}
