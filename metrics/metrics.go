// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 运行指标采集，汇总到go-metrics 缺省registry 并定时上报influxdb
package metrics

import (
	"time"

	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"

	"github.com/guessbet/guessbet/metrics/influxdb"
	"github.com/guessbet/guessbet/types"
)

var mlog = log.New("module", "metrics")

//账本和结算的统计指标
var (
	//BlockConnectMeter 连接成功的区块数
	BlockConnectMeter = gometrics.NewRegisteredMeter("ledger/block/connect", nil)
	//TxPackMeter 打包进区块的交易数
	TxPackMeter = gometrics.NewRegisteredMeter("ledger/tx/pack", nil)
	//BlockHeightGauge 当前区块高度
	BlockHeightGauge = gometrics.NewRegisteredGauge("ledger/block/height", nil)
	//PayoutMeter 结算成功派奖笔数
	PayoutMeter = gometrics.NewRegisteredMeter("guess/payout/paid", nil)
	//PendingMeter 结算转账失败转挂账的笔数
	PendingMeter = gometrics.NewRegisteredMeter("guess/payout/deferred", nil)
)

//上报周期缺省10秒
const defEmitDuration = 10 * time.Second

//StartMetrics 根据配置启动指标上报
func StartMetrics(cfg *types.Config) {
	metrics := cfg.Metrics
	if metrics == nil || !metrics.EnableMetrics {
		mlog.Info("metrics data is not enabled to emit")
		return
	}
	switch metrics.DataEmitMode {
	case "influxdb":
		duration := time.Duration(metrics.Duration)
		if duration <= 0 {
			duration = defEmitDuration
		}
		mlog.Info("start metrics with influxdb", "url", metrics.URL,
			"database", metrics.Database, "namespace", metrics.Namespace, "duration", duration)
		go influxdb.InfluxDB(gometrics.DefaultRegistry,
			duration,
			metrics.URL,
			metrics.Database,
			metrics.Username,
			metrics.Password,
			metrics.Namespace)
	default:
		mlog.Error("StartMetrics", "unsupported dataEmitMode", metrics.DataEmitMode)
	}
}
