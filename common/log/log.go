// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 基于 log15 的日志配置: 控制台, lumberjack 滚动文件以及按模块的日志级别
package log

import (
	"io"
	"os"
	"strings"

	"github.com/33cn/gawibawibo/types"
	log15 "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

// levels 默认级别加上 [log.module] 中按模块覆盖的级别
type levels struct {
	def    log15.Lvl
	module map[string]log15.Lvl
}

func newLevels(def string, module map[string]string) *levels {
	l := &levels{def: getLevel(def), module: make(map[string]log15.Lvl, len(module))}
	for name, lvl := range module {
		l.module[name] = getLevel(lvl)
	}
	return l
}

// of 按 "." 分段取最长匹配, execs 同时作用于 execs.blend
func (l *levels) of(module string) log15.Lvl {
	for module != "" {
		if lvl, ok := l.module[module]; ok {
			return lvl
		}
		i := strings.LastIndexByte(module, '.')
		if i < 0 {
			break
		}
		module = module[:i]
	}
	return l.def
}

func (l *levels) allow(r *log15.Record) bool {
	if len(l.module) == 0 {
		return r.Lvl <= l.def
	}
	return r.Lvl <= l.of(moduleOf(r.Ctx))
}

func moduleOf(ctx []interface{}) string {
	for i := 0; i+1 < len(ctx); i += 2 {
		if k, ok := ctx[i].(string); ok && k == "module" {
			m, _ := ctx[i+1].(string)
			return m
		}
	}
	return ""
}

//SetLogLevel 只输出到控制台
func SetLogLevel(logLevel string) {
	log15.Root().SetHandler(consoleHandler(newLevels(logLevel, nil)))
}

//SetFileLog 按 [log] 配置控制台和文件日志, logFile 为空时只输出到控制台
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: "logs/gawibawibo.log"}
	}
	fillDefaultValue(cfg)
	h := consoleHandler(newLevels(cfg.LogConsoleLevel, cfg.Module))
	if cfg.LogFile != "" {
		h = log15.MultiHandler(h, fileHandler(cfg))
	}
	log15.Root().SetHandler(h)
}

// 默认为 error 级别
func fillDefaultValue(cfg *types.Log) {
	if cfg.Loglevel == "" {
		cfg.Loglevel = log15.LvlError.String()
	}
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = log15.LvlError.String()
	}
}

func isWindows() bool {
	return os.PathSeparator == '\\' && os.PathListSeparator == ';'
}

// 控制台输出到 stderr, stdout 留给命令结果
func consoleHandler(l *levels) log15.Handler {
	format := log15.TerminalFormat()
	if isWindows() {
		format = log15.LogfmtFormat()
	}
	return filtered(l, os.Stderr, format)
}

func fileHandler(cfg *types.Log) log15.Handler {
	w := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    int(cfg.MaxFileSize),
		MaxBackups: int(cfg.MaxBackups),
		MaxAge:     int(cfg.MaxAge),
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
	h := filtered(newLevels(cfg.Loglevel, cfg.Module), w, log15.LogfmtFormat())
	if cfg.CallerFile {
		h = log15.CallerFileHandler(h)
	}
	if cfg.CallerFunction {
		h = log15.CallerFuncHandler(h)
	}
	return h
}

func filtered(l *levels, w io.Writer, format log15.Format) log15.Handler {
	return log15.FilterHandler(l.allow, log15.StreamHandler(w, format))
}

func getLevel(lvlString string) log15.Lvl {
	lvl, err := log15.LvlFromString(lvlString)
	if err != nil {
		return log15.LvlError
	}
	return lvl
}

//New 创建带上下文的 logger, 约定第一对为 "module", name
func New(ctx ...interface{}) log15.Logger {
	return log15.Root().New(ctx...)
}
