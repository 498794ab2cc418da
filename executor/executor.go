// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行: 加载执行器驱动, 在内存事务中执行, 成功后一次性写入存储
package executor

import (
	"sync"
	"time"

	"github.com/33cn/gawibawibo/common/crypto"
	dbm "github.com/33cn/gawibawibo/common/db"
	clog "github.com/33cn/gawibawibo/common/log"
	"github.com/33cn/gawibawibo/system/crypto/secp256k1"
	"github.com/33cn/gawibawibo/system/dapp"
	"github.com/33cn/gawibawibo/types"
	"github.com/pkg/errors"
)

var elog = clog.New("module", "execs")

// Executor 交易执行器, 同一时间只执行一笔交易
type Executor struct {
	mu       sync.RWMutex
	db       dbm.DB
	signType string
}

// New new executor
func New(cfg *types.Config, kvdb dbm.DB) *Executor {
	exec := &Executor{db: kvdb, signType: secp256k1.Name}
	if cfg != nil && cfg.Exec != nil && cfg.Exec.SignType != "" {
		exec.signType = cfg.Exec.SignType
	}
	return exec
}

// Exec 执行一笔交易, 失败时不会留下任何写入
func (exec *Executor) Exec(tx *types.Transaction) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()

	begin := time.Now()
	if err := exec.checkSign(tx); err != nil {
		elog.Error("Exec checkSign", "from", tx.From, "err", err)
		return nil, err
	}
	driver, err := dapp.LoadDriverAllow(tx, 0)
	if err != nil {
		elog.Error("Exec LoadDriverAllow", "execer", string(tx.GetExecer()), "err", err)
		return nil, err
	}
	action := driver.GetActionName(tx)
	receipt, err := exec.execTx(driver, tx)
	recordTx(driver.GetName(), action, begin, err)
	if err != nil {
		elog.Debug("Exec", "execer", driver.GetName(), "action", action, "from", tx.From, "err", err)
		return nil, err
	}
	elog.Info("Exec", "execer", driver.GetName(), "action", action, "from", tx.From,
		"kvs", len(receipt.KV), "cost", time.Since(begin))
	return receipt, nil
}

func (exec *Executor) execTx(driver dapp.Driver, tx *types.Transaction) (*types.Receipt, error) {
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	state := NewStateDB(exec.db)
	local := NewLocalDB(exec.db)
	driver.SetStateDB(state)
	driver.SetLocalDB(local)
	driver.SetEnv(time.Now().Unix())

	state.Begin()
	receipt, err := driver.Exec(tx, 0)
	if err != nil {
		state.Rollback()
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	if err = state.Commit(); err != nil {
		return nil, err
	}
	set, err := driver.ExecLocal(tx, receipt.ReceiptData(), 0)
	if err != nil {
		return nil, err
	}

	batch := exec.db.NewBatch(true)
	writeKV(batch, receipt.KV)
	writeKV(batch, set.KV)
	if err = batch.Write(); err != nil {
		return nil, errors.Wrap(err, "batch write")
	}
	return receipt, nil
}

// checkSign 发起者只能是签名公钥的地址
func (exec *Executor) checkSign(tx *types.Transaction) error {
	sig := tx.GetSignature()
	if sig == nil {
		return types.ErrSign
	}
	if name := crypto.GetName(sig.Ty); name != exec.signType {
		return errors.Wrapf(types.ErrSign, "sign type %s not allowed", name)
	}
	return tx.CheckSign()
}

func writeKV(batch dbm.Batch, kvs []*types.KeyValue) {
	for _, kv := range kvs {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
}

// Query 只读查询, 与执行互斥
func (exec *Executor) Query(execer, funcName string, param types.Message) (types.Message, error) {
	exec.mu.RLock()
	defer exec.mu.RUnlock()

	execQueryMeter.Mark(1)
	driver, err := dapp.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(NewStateDB(exec.db))
	driver.SetLocalDB(NewLocalDB(exec.db))
	var params []byte
	if param != nil {
		params = types.Encode(param)
	}
	return driver.Query(funcName, params)
}

// Close 关闭存储
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.db.Close()
}
