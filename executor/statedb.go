// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/gawibawibo/common/db"
	"github.com/33cn/gawibawibo/types"
)

// StateDB 执行器状态的内存视图, 只读穿透到底层存储, 写入留在缓存中直到执行器提交
type StateDB struct {
	db      db.KVGetter
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
}

// NewStateDB new state db
func NewStateDB(kvdb db.KVGetter) *StateDB {
	return &StateDB{
		db:    kvdb,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = make(map[string][]byte)
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 把事务中的写入合并到缓存
func (s *StateDB) Commit() error {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
	return nil
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
}

// Get get value from state db, 已删除或不存在时返回 types.ErrNotFound
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			return notDeleted(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notDeleted(value)
	}
	value, err := s.db.Get(key)
	if err == db.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func notDeleted(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}
