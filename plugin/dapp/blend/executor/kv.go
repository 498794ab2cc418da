// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/gawibawibo/common/db"
	bt "github.com/33cn/gawibawibo/plugin/dapp/blend/types"
	"github.com/33cn/gawibawibo/types"
)

/*
状态数据:
  mavl-blend-<id> -> Move

本地索引, value 都是 MoveIndex:
  LODB-blend-id:<id>
  LODB-blend-owner:<owner>:<id>
  LODB-blend-player:<addr>:<id>      发起者以及挑战者
  LODB-blend-status:<status>:<id>

id 固定为 10 位十进制, 字典序即数值顺序
*/

const (
	keyPrefixStateDB = "mavl-blend-"
	keyPrefixLocalDB = "LODB-blend-"
)

func idStr(id uint32) string {
	return fmt.Sprintf("%010d", id)
}

//Key 对局在状态数据库中的 key
func Key(id uint32) []byte {
	return []byte(keyPrefixStateDB + idStr(id))
}

func calcIDPrefix() []byte {
	return []byte(keyPrefixLocalDB + "id:")
}

func calcIDKey(id uint32) []byte {
	return []byte(keyPrefixLocalDB + "id:" + idStr(id))
}

func calcOwnerPrefix(owner string) []byte {
	return []byte(keyPrefixLocalDB + "owner:" + owner + ":")
}

func calcOwnerKey(owner string, id uint32) []byte {
	return append(calcOwnerPrefix(owner), idStr(id)...)
}

func calcPlayerPrefix(addr string) []byte {
	return []byte(keyPrefixLocalDB + "player:" + addr + ":")
}

func calcPlayerKey(addr string, id uint32) []byte {
	return append(calcPlayerPrefix(addr), idStr(id)...)
}

func calcStatusPrefix(status bt.MoveStatus) []byte {
	return []byte(fmt.Sprintf("%sstatus:%d:", keyPrefixLocalDB, status))
}

func calcStatusKey(status bt.MoveStatus, id uint32) []byte {
	return append(calcStatusPrefix(status), idStr(id)...)
}

func indexValue(id uint32, owner string) []byte {
	return types.Encode(&bt.MoveIndex{ID: id, Owner: owner})
}

func addIndex(key []byte, id uint32, owner string) *types.KeyValue {
	return &types.KeyValue{Key: key, Value: indexValue(id, owner)}
}

func delIndex(key []byte) *types.KeyValue {
	return &types.KeyValue{Key: key, Value: nil}
}

// getMove 不存在时返回 ErrMoveNotFound
func getMove(db dbm.KVGetter, id uint32) (*bt.Move, error) {
	value, err := db.Get(Key(id))
	if err == types.ErrNotFound || err == dbm.ErrNotFoundInDb {
		return nil, bt.ErrMoveNotFound
	}
	if err != nil {
		return nil, err
	}
	var move bt.Move
	if err = types.Decode(value, &move); err != nil {
		return nil, err
	}
	return &move, nil
}

func hasMove(db dbm.KVGetter, id uint32) (bool, error) {
	_, err := getMove(db, id)
	if err == bt.ErrMoveNotFound {
		return false, nil
	}
	return err == nil, err
}

// listIndex 扫描本地索引, 没有数据时返回空列表
func listIndex(db dbm.Lister, prefix, key []byte, count, direction int32) ([]*bt.MoveIndex, error) {
	values, err := db.List(prefix, key, count, direction)
	if err == types.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	indexes := make([]*bt.MoveIndex, 0, len(values))
	for _, v := range values {
		var idx bt.MoveIndex
		if err := types.Decode(v, &idx); err != nil {
			return nil, err
		}
		indexes = append(indexes, &idx)
	}
	return indexes, nil
}

// listMoves 按 id 顺序列出全部对局
func listMoves(state dbm.KVGetter, local dbm.Lister) ([]*bt.Move, error) {
	indexes, err := listIndex(local, calcIDPrefix(), nil, 0, dbm.ListASC)
	if err != nil {
		return nil, err
	}
	return loadMoves(state, indexes)
}

func loadMoves(db dbm.KVGetter, indexes []*bt.MoveIndex) ([]*bt.Move, error) {
	moves := make([]*bt.Move, 0, len(indexes))
	for _, idx := range indexes {
		move, err := getMove(db, idx.ID)
		if err != nil {
			blog.Error("loadMoves", "id", idx.ID, "err", err)
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}
