// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动的公共实现, 通过反射把交易分发到 Exec_/ExecLocal_/Query_ 方法
package dapp

import (
	"reflect"

	dbm "github.com/33cn/gawibawibo/common/db"
	"github.com/33cn/gawibawibo/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的名字
	GetName() string
	SetName(string)
	SetEnv(blocktime int64)
	Allow(tx *types.Transaction, index int) error
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase 驱动的公共部分, 具体执行器嵌入它并调用 SetChild
type DriverBase struct {
	statedb    dbm.KV
	localdb    dbm.KVDB
	blocktime  int64
	name       string
	child      Driver
	childValue reflect.Value
	funcmap    map[string]reflect.Method
	ety        types.ExecutorType
}

//GetExecutorType 执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//GetFuncMap 子类型的全部导出方法
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

//SetChild 设置子类型
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = types.ListMethod(e)
}

//SetEnv 设置执行时间
func (d *DriverBase) SetEnv(blocktime int64) {
	d.blocktime = blocktime
}

//GetBlockTime 执行时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//Allow 默认只允许执行器名字与驱动名字相同
func (d *DriverBase) Allow(tx *types.Transaction, index int) error {
	if string(tx.Execer) == d.child.GetDriverName() {
		return nil
	}
	return types.ErrExecNameNotAllow
}

//CheckTx 默认需要有发起者
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if tx.GetFrom() == "" {
		return types.ErrEmptyFrom
	}
	return nil
}

//GetActionName action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

//Exec 调用 Exec_<Action>
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		r, ok := r1.(*types.Receipt)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		receipt = r
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		r, ok := r2.(error)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		err = r
	}
	return receipt, err
}

//ExecLocal 调用 ExecLocal_<Action>, 可选
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	lset, err := d.callLocal("ExecLocal_", tx, receipt, index)
	if err == types.ErrActionNotSupport {
		blog.Debug("call ExecLocal", "tx.Execer", string(tx.Execer), "err", err)
		return &set, nil
	}
	if err != nil {
		blog.Error("call ExecLocal", "tx.Execer", string(tx.Execer), "err", err)
		return nil, err
	}
	if lset != nil && lset.KV != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return &set, nil
}

func (d *DriverBase) callLocal(prefix string, tx *types.Transaction, receipt *types.ReceiptData, index int) (set *types.LocalDBSet, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcmap[prefix+name]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		r, ok := r1.(*types.LocalDBSet)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		set = r
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		r, ok := r2.(error)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		err = r
	}
	return set, err
}

//Query 调用 Query_<funcName>, 参数按方法的入参类型解码
func (d *DriverBase) Query(funcname string, params []byte) (msg types.Message, err error) {
	method, ok := d.funcmap["Query_"+funcname]
	if !ok {
		blog.Debug("Query", "funcname", funcname, "err", types.ErrQueryNotSupport)
		return nil, types.ErrQueryNotSupport
	}
	ty := method.Type
	if ty.NumIn() != 2 || ty.In(1).Kind() != reflect.Ptr {
		return nil, types.ErrQueryNotSupport
	}
	p := reflect.New(ty.In(1).Elem())
	in := p.Interface()
	if len(params) > 0 {
		if err := types.Decode(params, in); err != nil {
			return nil, err
		}
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, p})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		msg = r1
	}
	if r2 := valueret[1].Interface(); r2 != nil {
		r, ok := r2.(error)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		err = r
	}
	return msg, err
}

//SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

//GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

//GetName 执行器名字, 默认与驱动名字相同
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName 设置执行器名字
func (d *DriverBase) SetName(name string) {
	d.name = name
}
