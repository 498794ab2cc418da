// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

//LogInfo 日志类型信息
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

//ExecutorType 执行器的类型信息: payload 编解码, action 以及日志的名字
type ExecutorType interface {
	GetName() string
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int32]*LogInfo
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	CreateTransaction(action string, data Message) (*Transaction, error)
	DecodeReceiptLog(ty int32, data []byte) (Message, error)
}

var (
	executorMu   sync.RWMutex
	executorType = make(map[string]ExecutorType)
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorType[exec]; exist {
		panic("DupExecutorType " + exec)
	}
	executorType[exec] = util
}

//LoadExecutorType 获取执行器类型, 不存在时返回 nil
func LoadExecutorType(exec string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	return executorType[exec]
}

//ExecTypeBase 执行器类型的公共实现, 子类型通过 SetChild 注入
type ExecTypeBase struct {
	child         ExecutorType
	actionFunList map[string]reflect.Method
}

//SetChild 设置子类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionFunList = ListActionMethod(child.GetPayload(), child.GetTypeMap())
}

//GetChild 子类型
func (base *ExecTypeBase) GetChild() ExecutorType {
	return base.child
}

//DecodePayload 解码 payload
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	if err := Decode(tx.GetPayload(), payload); err != nil {
		return nil, err
	}
	return payload, nil
}

//DecodePayloadValue 解码 payload, 返回 action 名字以及参数
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	if base.child == nil {
		return "", nilValue, ErrActionNotSupport
	}
	action, err := base.DecodePayload(tx)
	if err != nil {
		return "", nilValue, err
	}
	name, _, val := GetActionValue(action, base.actionFunList, base.child.GetTypeMap())
	if IsNilVal(val) {
		return "", nilValue, ErrActionNotSupport
	}
	return name, val, nil
}

//ActionName action 名字, 无法解析时返回 unknown
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

//CreateTransaction 构造 action 交易, data 必须是 payload 中名为 action 的字段类型
func (base *ExecTypeBase) CreateTransaction(action string, data Message) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, errors.Wrapf(ErrActionNotSupport, "action %s", action)
	}
	payload := base.child.GetPayload()
	value := reflect.ValueOf(payload)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return nil, ErrActionNotSupport
	}
	field := value.Elem().FieldByName(action)
	if !field.IsValid() || !field.CanSet() {
		return nil, errors.Wrapf(ErrActionNotSupport, "action %s", action)
	}
	dataValue := reflect.ValueOf(data)
	if !dataValue.IsValid() || !dataValue.Type().AssignableTo(field.Type()) {
		return nil, errors.Wrapf(ErrInvalidParam, "action %s want %s", action, field.Type())
	}
	field.Set(dataValue)
	tyField := value.Elem().FieldByName("Ty")
	if !tyField.IsValid() || tyField.Kind() != reflect.Int32 {
		return nil, ErrActionNotSupport
	}
	tyField.SetInt(int64(ty))
	return &Transaction{Execer: []byte(base.child.GetName()), Payload: Encode(payload)}, nil
}

//DecodeReceiptLog 根据日志类型解码日志
func (base *ExecTypeBase) DecodeReceiptLog(ty int32, data []byte) (Message, error) {
	info, ok := base.child.GetLogMap()[ty]
	if !ok {
		return nil, errors.Wrap(ErrLogType, fmt.Sprint(ty))
	}
	msg := reflect.New(info.Ty).Interface()
	if err := Decode(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
