// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

// 执行器统计项, 注册在 go-metrics 默认 registry 中
var (
	execTxTimer    = gometrics.GetOrRegisterTimer("executor.tx.duration", nil)
	execTxFail     = gometrics.GetOrRegisterCounter("executor.tx.fail", nil)
	execQueryMeter = gometrics.GetOrRegisterMeter("executor.query", nil)
)

func actionCounter(execer, action string, ok bool) gometrics.Counter {
	name := "executor." + execer + "." + action
	if ok {
		name += ".ok"
	} else {
		name += ".fail"
	}
	return gometrics.GetOrRegisterCounter(name, nil)
}

func recordTx(execer, action string, begin time.Time, err error) {
	execTxTimer.UpdateSince(begin)
	actionCounter(execer, action, err == nil).Inc(1)
	if err != nil {
		execTxFail.Inc(1)
	}
}
