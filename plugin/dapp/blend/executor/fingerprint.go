// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"

	"github.com/33cn/gawibawibo/common"
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// 指纹编码方式
const (
	// SchemeBytesrepr 每个字符串前加 u32 小端长度, 与前端生成的指纹一致
	SchemeBytesrepr = "bytesrepr"
	// SchemeRaw 直接拼接字节
	SchemeRaw = "raw"
)

const defaultCacheSize = 1024

type encoder func(s string) []byte

func encodeBytesrepr(s string) []byte {
	b := make([]byte, 4+len(s))
	binary.LittleEndian.PutUint32(b, uint32(len(s)))
	copy(b[4:], s)
	return b
}

func encodeRaw(s string) []byte {
	return []byte(s)
}

var encoders = map[string]encoder{
	SchemeBytesrepr: encodeBytesrepr,
	SchemeRaw:       encodeRaw,
}

//Resolver 根据身份把指纹还原成出拳序列
//每个身份的 23 个指纹缓存在 lru 中
type Resolver struct {
	scheme string
	encode encoder
	cache  *lru.Cache
}

//NewResolver scheme 为空时使用 bytesrepr, cacheSize <= 0 时使用默认值
func NewResolver(scheme string, cacheSize int) (*Resolver, error) {
	if scheme == "" {
		scheme = SchemeBytesrepr
	}
	enc, ok := encoders[scheme]
	if !ok {
		return nil, errors.Wrapf(bt.ErrUnknownScheme, "scheme %s", scheme)
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{scheme: scheme, encode: enc, cache: cache}, nil
}

//Scheme 编码方式
func (r *Resolver) Scheme() string {
	return r.scheme
}

// hex(blake2b256(enc(token) ++ enc(identity)))
func (r *Resolver) hashToken(token, identity string) string {
	t := r.encode(token)
	id := r.encode(identity)
	buf := make([]byte, 0, len(t)+len(id))
	buf = append(buf, t...)
	buf = append(buf, id...)
	return common.Bytes2Hex(common.Blake2b256(buf))
}

func (r *Resolver) table(identity string) []string {
	if v, ok := r.cache.Get(identity); ok {
		return v.([]string)
	}
	hashes := make([]string, len(catalog))
	for i, e := range catalog {
		hashes[i] = r.hashToken(e.Token, identity)
	}
	r.cache.Add(identity, hashes)
	return hashes
}

//Resolve 返回第一个匹配的目录项的序列, false 表示无法识别
func (r *Resolver) Resolve(identity, fingerprint string) (bt.BlendSequence, bool) {
	if fingerprint == "" {
		return bt.NoneSequence, false
	}
	for i, h := range r.table(identity) {
		if h == fingerprint {
			return catalog[i].Sequence, true
		}
	}
	return bt.NoneSequence, false
}

//ResolveOrNone 无法识别时退化为 [0,0,0]
func (r *Resolver) ResolveOrNone(identity, fingerprint string) bt.BlendSequence {
	seq, _ := r.Resolve(identity, fingerprint)
	return seq
}

//ResolveStrict 无法识别时返回 ErrUnrecognizedFingerprint
func (r *Resolver) ResolveStrict(identity, fingerprint string) (bt.BlendSequence, error) {
	seq, ok := r.Resolve(identity, fingerprint)
	if !ok {
		return seq, errors.Wrapf(bt.ErrUnrecognizedFingerprint, "identity %s", identity)
	}
	return seq, nil
}

//Fingerprint identity 为 seq 提交的指纹
func (r *Resolver) Fingerprint(identity string, seq bt.BlendSequence) (string, error) {
	token, ok := tokenOf(seq)
	if !ok {
		return "", errors.Wrapf(bt.ErrSequenceNotInCatalog, "sequence %s", seq)
	}
	return r.hashToken(token, identity), nil
}
