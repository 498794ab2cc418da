// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"testing"

	"github.com/33cn/gawibawibo/types"
	"github.com/stretchr/testify/assert"
)

type mapKV struct {
	m   map[string][]byte
	err error
}

func (kv *mapKV) Get(key []byte) ([]byte, error) {
	v, ok := kv.m[string(key)]
	if !ok {
		return nil, types.ErrNotFound
	}
	return v, nil
}

func (kv *mapKV) Set(key, value []byte) error {
	if kv.err != nil {
		return kv.err
	}
	kv.m[string(key)] = value
	return nil
}

func (kv *mapKV) Begin()        {}
func (kv *mapKV) Rollback()     {}
func (kv *mapKV) Commit() error { return nil }

func TestKVCreator(t *testing.T) {
	kvdb := &mapKV{m: make(map[string][]byte)}
	c := NewKVCreator(kvdb)
	c.Add([]byte("a"), []byte("1")).Add([]byte("b"), []byte("2")).Del([]byte("a"))
	assert.NoError(t, c.Err())
	assert.Equal(t, []*types.KeyValue{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("a")},
	}, c.KVList())
	v, err := kvdb.Get([]byte("a"))
	assert.NoError(t, err)
	assert.Nil(t, v)

	errSet := errors.New("set failed")
	kvdb.err = errSet
	c = NewKVCreator(kvdb)
	c.Add([]byte("c"), []byte("3"))
	kvdb.err = nil
	c.Add([]byte("d"), []byte("4"))
	assert.Equal(t, errSet, c.Err())
	assert.Len(t, c.KVList(), 2)
}
