// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	//ErrNotFound 数据不存在
	ErrNotFound = errors.New("ErrNotFound")
	//ErrDecode 解码失败
	ErrDecode = errors.New("ErrDecode")
	//ErrInvalidParam 参数错误
	ErrInvalidParam = errors.New("ErrInvalidParam")
	//ErrActionNotSupport 不支持的 action
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	//ErrQueryNotSupport 不支持的查询
	ErrQueryNotSupport = errors.New("ErrQueryNotSupport")
	//ErrMethodReturnType 执行方法返回值类型错误
	ErrMethodReturnType = errors.New("ErrMethodReturnType")
	//ErrMethodNotFound 方法不存在
	ErrMethodNotFound = errors.New("ErrMethodNotFound")
	//ErrUnRegistedDriver 未注册的执行器
	ErrUnRegistedDriver = errors.New("ErrUnRegistedDriver")
	//ErrExecNameNotAllow 执行器名字不合法
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	//ErrTxEmptyExecer 交易缺少执行器
	ErrTxEmptyExecer = errors.New("ErrTxEmptyExecer")
	//ErrEmptyFrom 交易缺少发起者
	ErrEmptyFrom = errors.New("ErrEmptyFrom")
	//ErrSign 签名缺失或者校验失败
	ErrSign = errors.New("ErrSign")
	//ErrFromAddr From 与签名公钥的地址不一致
	ErrFromAddr = errors.New("ErrFromAddr")
	//ErrLogType 未知的日志类型
	ErrLogType = errors.New("ErrLogType")
)
