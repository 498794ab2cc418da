// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 打开配置, 存储以及执行器, 供命令行在本地发送交易和查询
package client

import (
	"path/filepath"

	dbm "github.com/33cn/gawibawibo/common/db"
	clog "github.com/33cn/gawibawibo/common/log"
	"github.com/33cn/gawibawibo/executor"
	"github.com/33cn/gawibawibo/metrics"
	"github.com/33cn/gawibawibo/pluginmgr"
	"github.com/33cn/gawibawibo/types"
	"github.com/33cn/gawibawibo/util"
	"github.com/pkg/errors"
)

var log = clog.New("module", "client")

//Client 本地执行环境
type Client struct {
	cfg         *types.Config
	db          dbm.DB
	exec        *executor.Executor
	stopMetrics func()
}

//LoadConfig path 为空时使用默认配置, 配置中的相对路径以配置文件所在目录为准
func LoadConfig(path string) (*types.Config, *types.ConfigSubModule, error) {
	if path == "" {
		return types.InitCfgString(types.GetDefaultCfgstring())
	}
	cfg, sub, err := types.InitCfg(path)
	if err != nil {
		return nil, nil, err
	}
	util.ResetDatadir(cfg, filepath.Dir(path))
	return cfg, sub, nil
}

//New 根据配置文件创建
func New(path string) (*Client, error) {
	cfg, sub, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, sub)
}

//NewWithConfig 初始化日志, 插件执行器, 存储以及统计
func NewWithConfig(cfg *types.Config, sub *types.ConfigSubModule) (*Client, error) {
	if cfg == nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "nil config")
	}
	clog.SetFileLog(cfg.Log)
	var execSub map[string][]byte
	if sub != nil {
		execSub = sub.Exec
	}
	pluginmgr.InitExec(execSub)

	db, err := util.OpenStore(cfg.Store)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	log.Debug("NewWithConfig", "title", cfg.Title, "driver", cfg.Store.Driver, "dbPath", cfg.Store.DbPath)
	return &Client{
		cfg:         cfg,
		db:          db,
		exec:        executor.New(cfg, db),
		stopMetrics: metrics.StartMetrics(cfg.Metrics),
	}, nil
}

//Config 配置
func (c *Client) Config() *types.Config {
	return c.cfg
}

//SendTx 执行一笔交易
func (c *Client) SendTx(tx *types.Transaction) (*types.Receipt, error) {
	return c.exec.Exec(tx)
}

//Query 查询执行器
func (c *Client) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return c.exec.Query(execer, funcName, param)
}

//Close 关闭存储, 并输出最后一次统计
func (c *Client) Close() {
	c.stopMetrics()
	c.exec.Close()
}
