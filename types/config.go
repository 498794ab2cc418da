// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 配置
type Config struct {
	Title   string   `json:"title,omitempty"`
	Log     *Log     `json:"log,omitempty"`
	Store   *Store   `json:"store,omitempty"`
	Exec    *Exec    `json:"exec,omitempty"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
	// 按模块覆盖日志级别, 如 "execs.blend" = "debug", 前缀 "execs" 覆盖所有执行器
	Module map[string]string `json:"module,omitempty"`
}

//Store 存储配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

//Exec 执行器配置
type Exec struct {
	// 交易签名算法, 执行器只接受这种签名
	SignType string `json:"signType,omitempty"`
}

//Metrics 统计配置
type Metrics struct {
	EnableMetrics bool   `json:"enableMetrics,omitempty"`
	DataEmitMode  string `json:"dataEmitMode,omitempty"`
	// 输出间隔（单位：秒）
	Duration int64 `json:"duration,omitempty"`
}

//ConfigSubModule 子模块配置, 以 json 保存, 由各模块自己解析
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

func initCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

//InitCfg 从文件初始化配置
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

//InitCfgString 初始化配置
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	cfg, err := initCfgString(cfgstring)
	if err != nil {
		return nil, nil, err
	}
	sub, err := initSubModuleString(cfgstring)
	if err != nil {
		return nil, nil, err
	}
	fillDefault(cfg)
	return cfg, sub, nil
}

//MustInitCfgString 初始化配置, 失败 panic, 用于测试以及默认配置
func MustInitCfgString(cfgstring string) (*Config, *ConfigSubModule) {
	cfg, sub, err := InitCfgString(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg, sub
}

func fillDefault(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "store"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.SignType == "" {
		cfg.Exec.SignType = "secp256k1"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
}

func initSubModuleString(cfgstring string) (*ConfigSubModule, error) {
	var cfg subModule
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode sub config")
	}
	return parseSubModule(&cfg)
}

func parseSubModule(cfg *subModule) (*ConfigSubModule, error) {
	var subcfg ConfigSubModule
	var err error
	if subcfg.Store, err = parseItem(cfg.Store); err != nil {
		return nil, err
	}
	if subcfg.Exec, err = parseItem(cfg.Exec); err != nil {
		return nil, err
	}
	return &subcfg, nil
}

func parseItem(data map[string]interface{}) (map[string][]byte, error) {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig, nil
	}
	sub, ok := data["sub"]
	if !ok {
		return subconfig, nil
	}
	subcfg, ok := sub.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrInvalidParam, "sub config must be a table")
	}
	for k := range subcfg {
		b, err := json.Marshal(subcfg[k])
		if err != nil {
			return nil, errors.Wrapf(err, "sub config %s", k)
		}
		subconfig[k] = b
	}
	return subconfig, nil
}

//ModifySubConfig json data modify
func ModifySubConfig(sub []byte, key string, value interface{}) ([]byte, error) {
	data := make(map[string]interface{})
	if len(sub) > 0 {
		if err := json.Unmarshal(sub, &data); err != nil {
			return nil, err
		}
	}
	data[key] = value
	return json.Marshal(data)
}
