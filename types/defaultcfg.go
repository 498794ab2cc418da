// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var cfgstring = `
Title="local"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "info"
logConsoleLevel = "error"
# 日志文件名，可带目录，所有生成的日志文件都放到此目录下
logFile = "logs/gawibawibo.log"
# 单个日志文件的最大值（单位：兆）
maxFileSize = 300
# 最多保存的历史日志文件个数
maxBackups = 100
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地事件（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = true
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

# 按模块设置日志级别, 对控制台和文件日志都生效
[log.module]
"execs.blend" = "info"

[store]
name = "store"
# 支持 leveldb, goleveldb, gobadgerdb, memdb
driver = "leveldb"
dbPath = "datadir"
dbCache = 64

[exec]
# 交易签名算法
signType = "secp256k1"

[exec.sub.blend]
# 无法识别的指纹直接报错，而不是当作 [0,0,0] 参与比赛
strict = false
# 撤销时删除记录，而不是标记为 cancelled
deleteOnCancel = false
# 指纹编码方式: bytesrepr 或 raw
scheme = "bytesrepr"
# 每个身份的指纹表缓存个数
cacheSize = 1024

[metrics]
enableMetrics = false
# 目前只支持 log
dataEmitMode = "log"
duration = 10
`

//GetDefaultCfgstring 获取默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}
