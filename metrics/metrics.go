// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 把 go-metrics 默认 registry 中的统计输出到日志
package metrics

import (
	"sort"
	"time"

	clog "github.com/33cn/gawibawibo/common/log"
	"github.com/33cn/gawibawibo/types"
	gometrics "github.com/rcrowley/go-metrics"
)

var log = clog.New("module", "metrics")

const defaultDuration = 10 * time.Second

//StartMetrics 根据配置启动周期输出, 返回的函数停止输出并且最后输出一次
func StartMetrics(cfg *types.Metrics) (stop func()) {
	if cfg == nil || !cfg.EnableMetrics {
		log.Info("Metrics data is not enabled to emit")
		return func() {}
	}
	switch cfg.DataEmitMode {
	case "log":
	default:
		log.Error("startMetrics", "The dataEmitMode set is not supported now ", cfg.DataEmitMode)
		return func() {}
	}
	d := time.Duration(cfg.Duration) * time.Second
	if d <= 0 {
		d = defaultDuration
	}
	log.Info("StartMetrics with log", "duration", d)
	done := make(chan struct{})
	exit := make(chan struct{})
	go func() {
		defer close(exit)
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				Emit(gometrics.DefaultRegistry)
			case <-done:
				Emit(gometrics.DefaultRegistry)
				return
			}
		}
	}()
	return func() {
		close(done)
		<-exit
	}
}

//Emit 按名字顺序输出 registry 中的全部统计
func Emit(r gometrics.Registry) {
	all := make(map[string]interface{})
	r.Each(func(name string, i interface{}) {
		all[name] = i
	})
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch m := all[name].(type) {
		case gometrics.Counter:
			log.Info("counter", "name", name, "count", m.Count())
		case gometrics.Gauge:
			log.Info("gauge", "name", name, "value", m.Value())
		case gometrics.Meter:
			s := m.Snapshot()
			log.Info("meter", "name", name, "count", s.Count(), "rate1", s.Rate1(), "mean", s.RateMean())
		case gometrics.Timer:
			s := m.Snapshot()
			log.Info("timer", "name", name, "count", s.Count(), "min", time.Duration(s.Min()),
				"max", time.Duration(s.Max()), "mean", time.Duration(int64(s.Mean())),
				"p99", time.Duration(int64(s.Percentile(0.99))))
		}
	}
}
