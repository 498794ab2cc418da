// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/gawibawibo/types"
)

// [exec.sub.blend]
type subConfig struct {
	Strict         bool   `json:"strict"`
	DeleteOnCancel bool   `json:"deleteOnCancel"`
	Scheme         string `json:"scheme"`
	CacheSize      int    `json:"cacheSize"`
}

type blendConfig struct {
	strict         bool
	deleteOnCancel bool
	resolver       *Resolver
}

func newBlendConfig(sub *subConfig) (*blendConfig, error) {
	if sub == nil {
		sub = &subConfig{}
	}
	resolver, err := NewResolver(sub.Scheme, sub.CacheSize)
	if err != nil {
		return nil, err
	}
	return &blendConfig{
		strict:         sub.Strict,
		deleteOnCancel: sub.DeleteOnCancel,
		resolver:       resolver,
	}, nil
}

var (
	confMu  sync.RWMutex
	current *blendConfig
)

func setConfig(conf *blendConfig) {
	confMu.Lock()
	current = conf
	confMu.Unlock()
}

func getConfig() *blendConfig {
	confMu.RLock()
	conf := current
	confMu.RUnlock()
	if conf != nil {
		return conf
	}
	conf, err := newBlendConfig(nil)
	if err != nil {
		panic(err)
	}
	confMu.Lock()
	if current == nil {
		current = conf
	}
	conf = current
	confMu.Unlock()
	return conf
}

//NewResolverFromSub 根据 [exec.sub.blend] 创建指纹解析器, 命令行生成指纹时使用
func NewResolverFromSub(sub []byte) (*Resolver, error) {
	var scfg subConfig
	if len(sub) > 0 {
		if err := types.Decode(sub, &scfg); err != nil {
			return nil, err
		}
	}
	return NewResolver(scfg.Scheme, scfg.CacheSize)
}
