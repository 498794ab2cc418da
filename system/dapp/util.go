// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/gawibawibo/common/db"
	"github.com/33cn/gawibawibo/types"
)

//KVCreator 创建KV的辅助工具
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KV
	err  error
}

//NewKVCreator 创建创建者
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

//Add add and set to kvdb
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	if c.err == nil {
		c.err = c.kvdb.Set(key, value)
	}
	return c
}

//Del 删除, Value 为 nil
func (c *KVCreator) Del(key []byte) *KVCreator {
	return c.Add(key, nil)
}

//KVList 读取所有的kv列表
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}

//Err 写入 kvdb 时遇到的第一个错误
func (c *KVCreator) Err() error {
	return c.err
}
