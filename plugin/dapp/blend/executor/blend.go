// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/system/dapp"
	"github.com/33cn/gawibawibo/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.blend")

var driverName = bt.BlendX

//Init 根据子配置初始化并注册执行器
func Init(name string, sub []byte) {
	var scfg subConfig
	if sub != nil {
		types.MustDecode(sub, &scfg)
	}
	conf, err := newBlendConfig(&scfg)
	if err != nil {
		panic(err)
	}
	setConfig(conf)
	blog.Info("blend init", "strict", conf.strict, "deleteOnCancel", conf.deleteOnCancel,
		"scheme", conf.resolver.Scheme())
	driverName = name
	dapp.Register(name, newBlend)
}

//GetName 执行器名字
func GetName() string {
	return bt.BlendX
}

//Blend 执行器
type Blend struct {
	dapp.DriverBase
	conf *blendConfig
}

func newBlend() dapp.Driver {
	return newBlendWithConfig(getConfig())
}

func newBlendWithConfig(conf *blendConfig) *Blend {
	b := &Blend{conf: conf}
	b.SetChild(b)
	b.SetExecutorType(types.LoadExecutorType(bt.BlendX))
	return b
}

//GetDriverName 驱动名字
func (b *Blend) GetDriverName() string {
	return driverName
}
