// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"fmt"
	"io"
	"os"

	"github.com/33cn/gawibawibo/types"
)

//Callback 格式化结果
type Callback func(res interface{}) (interface{}, error)

//Ctx 命令行的一次调用: 发送交易或者查询
type Ctx struct {
	ConfPath string
	Execer   string
	Method   string
	Params   types.Message
	Tx       *types.Transaction
	cb       Callback
	out      io.Writer
	errOut   io.Writer
}

//NewQueryCtx 查询
func NewQueryCtx(conf, execer, method string, params types.Message) *Ctx {
	return &Ctx{ConfPath: conf, Execer: execer, Method: method, Params: params}
}

//NewTxCtx 发送交易
func NewTxCtx(conf string, tx *types.Transaction) *Ctx {
	return &Ctx{ConfPath: conf, Execer: string(tx.GetExecer()), Tx: tx}
}

//SetResultCb 设置结果格式化函数
func (c *Ctx) SetResultCb(cb Callback) {
	c.cb = cb
}

//SetOutput 结果以及错误的输出位置, 默认 stdout 和 stderr
func (c *Ctx) SetOutput(out, errOut io.Writer) {
	c.out = out
	c.errOut = errOut
}

//ReceiptResult 交易结果, 日志按执行器类型解码
type ReceiptResult struct {
	Ty   int32         `json:"ty"`
	KVs  int           `json:"kvs"`
	Logs []*ReceiptLog `json:"logs"`
}

//ReceiptLog 解码后的日志
type ReceiptLog struct {
	Ty   int32         `json:"ty"`
	Name string        `json:"name,omitempty"`
	Log  types.Message `json:"log"`
}

func decodeReceipt(execer string, receipt *types.Receipt) *ReceiptResult {
	res := &ReceiptResult{Ty: receipt.Ty, KVs: len(receipt.KV)}
	ety := types.LoadExecutorType(execer)
	for _, l := range receipt.Logs {
		item := &ReceiptLog{Ty: l.Ty, Log: string(l.Log)}
		if ety != nil {
			if info, ok := ety.GetLogMap()[l.Ty]; ok {
				item.Name = info.Name
			}
			if msg, err := ety.DecodeReceiptLog(l.Ty, l.Log); err == nil {
				item.Log = msg
			}
		}
		res.Logs = append(res.Logs, item)
	}
	return res
}

//RunResult 执行并返回格式化后的结果
func (c *Ctx) RunResult() (interface{}, error) {
	cli, err := New(c.ConfPath)
	if err != nil {
		return nil, err
	}
	defer cli.Close()

	var result interface{}
	if c.Tx != nil {
		receipt, err := cli.SendTx(c.Tx)
		if err != nil {
			return nil, err
		}
		result = decodeReceipt(c.Execer, receipt)
	} else {
		result, err = cli.Query(c.Execer, c.Method, c.Params)
		if err != nil {
			return nil, err
		}
	}
	if c.cb != nil {
		return c.cb(result)
	}
	return result, nil
}

//Run 执行并输出 json
func (c *Ctx) Run() {
	out, errOut := c.out, c.errOut
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	result, err := c.RunResult()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return
	}
	data, err := types.FormatJSON(result)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return
	}
	fmt.Fprintln(out, string(data))
}
