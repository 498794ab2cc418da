// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 测试以及命令行共用的辅助函数
package util

import (
	"os"
	"path/filepath"

	"github.com/33cn/gawibawibo/common"
	"github.com/33cn/gawibawibo/common/crypto"
	dbm "github.com/33cn/gawibawibo/common/db"
	clog "github.com/33cn/gawibawibo/common/log"
	"github.com/33cn/gawibawibo/system/crypto/secp256k1"
	"github.com/33cn/gawibawibo/types"
)

var ulog = clog.New("module", "util")

//TestPrivkeyHex 测试使用的私钥
var TestPrivkeyHex = []string{
	"4257D8692EF7FE13C68B65D6A52F03933DB2FA5CE8FAF210B5B8B80C721CED01",
	"CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944",
	"7A80A1F75D7360C6123C32A78ECF978C1AC55636F87892DF38D8B85A9AEFF115",
	"B0BB75BC49A787A71F4834DA18614763B53A18291ECE6B5EDEC3AD19D150C3E7",
}

//TestPrivkeyList 测试使用的私钥
var TestPrivkeyList = []crypto.PrivKey{
	HexToPrivkey(TestPrivkeyHex[0]),
	HexToPrivkey(TestPrivkeyHex[1]),
	HexToPrivkey(TestPrivkeyHex[2]),
	HexToPrivkey(TestPrivkeyHex[3]),
}

//HexToPrivkey 转换私钥, 格式错误时 panic
func HexToPrivkey(key string) crypto.PrivKey {
	bkey, err := common.FromHex(key)
	if err != nil {
		panic(err)
	}
	priv, err := secp256k1.Driver{}.PrivKeyFromBytes(bkey)
	if err != nil {
		panic(err)
	}
	return priv
}

//CreateTestDB 创建一个测试数据库
func CreateTestDB() (string, dbm.DB) {
	dir, err := os.MkdirTemp("", "goleveldb")
	if err != nil {
		panic(err)
	}
	leveldb, err := dbm.NewGoLevelDB("goleveldb", dir, 16)
	if err != nil {
		panic(err)
	}
	return dir, leveldb
}

//CloseTestDB 关闭并删除测试数据库
func CloseTestDB(dir string, db dbm.DB) {
	db.Close()
	err := os.RemoveAll(dir)
	if err != nil {
		ulog.Info("RemoveAll ", "dir", dir, "err", err)
	}
}

//OpenStore 根据配置打开存储
func OpenStore(cfg *types.Store) (dbm.DB, error) {
	if cfg == nil {
		cfg = &types.Store{Name: "store", Driver: "leveldb", DbPath: "datadir"}
	}
	if cfg.Driver != "memdb" {
		if err := os.MkdirAll(cfg.DbPath, 0755); err != nil {
			return nil, err
		}
	}
	return dbm.NewDB(cfg.Name, cfg.Driver, cfg.DbPath, cfg.DbCache)
}

//ResetDatadir 把存储以及日志目录移到 datadir 下
func ResetDatadir(cfg *types.Config, datadir string) {
	if datadir == "" || cfg == nil {
		return
	}
	if cfg.Store != nil && !filepath.IsAbs(cfg.Store.DbPath) {
		cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	}
	if cfg.Log != nil && cfg.Log.LogFile != "" && !filepath.IsAbs(cfg.Log.LogFile) {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
}
