// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//receipt type
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//KeyValue Value 为 nil 时表示删除
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

//ReceiptLog 执行日志，本地索引根据它生成
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

//Receipt 执行结果: 状态写入以及日志
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

//ReceiptData 交给 ExecLocal 使用的日志部分
type ReceiptData struct {
	Ty   int32         `json:"ty"`
	Logs []*ReceiptLog `json:"logs"`
}

//LocalDBSet 本地索引写入
type LocalDBSet struct {
	KV []*KeyValue `json:"kv"`
}

//GetKV kv
func (r *Receipt) GetKV() []*KeyValue {
	if r != nil {
		return r.KV
	}
	return nil
}

//GetLogs logs
func (r *Receipt) GetLogs() []*ReceiptLog {
	if r != nil {
		return r.Logs
	}
	return nil
}

//ReceiptData 转为 ReceiptData
func (r *Receipt) ReceiptData() *ReceiptData {
	return &ReceiptData{Ty: r.Ty, Logs: r.Logs}
}

//ReqNil 空参数
type ReqNil struct{}

//ReplyString 字符串返回
type ReplyString struct {
	Data string `json:"data"`
}
