// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sync"

	"github.com/33cn/gawibawibo/common/address"
	"github.com/33cn/gawibawibo/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	mu                 sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
)

// Register 注册执行器驱动, 名字重复时 panic
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[name] = address.ExecAddress(name)
}

// LoadDriver 创建一个新的驱动实例
func LoadDriver(name string) (Driver, error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnRegistedDriver
	}
	return c(), nil
}

// LoadDriverAllow 加载交易的执行器并检查是否允许执行
func LoadDriverAllow(tx *types.Transaction, index int) (Driver, error) {
	if len(tx.GetExecer()) == 0 {
		return nil, types.ErrTxEmptyExecer
	}
	exec, err := LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	if err = exec.Allow(tx, index); err != nil {
		return nil, err
	}
	exec.SetName(string(tx.Execer))
	return exec, nil
}

// ExecAddress 执行器地址
func ExecAddress(name string) string {
	mu.RLock()
	addr, ok := execAddressNameMap[name]
	mu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}
