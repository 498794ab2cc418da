// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/gawibawibo/common/db"
	"github.com/33cn/gawibawibo/types"
)

// LocalDB 本地索引数据库
// Get 可以看到本次交易的写入, List 和 PrefixCount 只扫描已经提交到存储的数据
type LocalDB struct {
	*StateDB
	list *db.ListHelper
}

// NewLocalDB new local db
func NewLocalDB(kvdb db.DB) *LocalDB {
	return &LocalDB{
		StateDB: NewStateDB(kvdb),
		list:    db.NewListHelper(kvdb),
	}
}

// List 前缀分页
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := l.list.List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// PrefixCount 前缀下的 key 个数
func (l *LocalDB) PrefixCount(prefix []byte) int64 {
	return l.list.PrefixCount(prefix)
}
