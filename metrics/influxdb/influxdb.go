// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package influxdb 把go-metrics registry 中的指标定时写入influxdb
package influxdb

import (
	"fmt"
	"time"

	client "github.com/influxdata/influxdb/client/v2"
	log "github.com/inconshreveable/log15"
	"github.com/rcrowley/go-metrics"
)

var ilog = log.New("module", "metrics.influxdb")

type reporter struct {
	reg      metrics.Registry
	interval time.Duration

	url       string
	database  string
	username  string
	password  string
	namespace string

	client client.Client
}

//InfluxDB 阻塞式上报循环，按interval 周期把registry 的快照写入influxdb
func InfluxDB(r metrics.Registry, d time.Duration, url, database, username, password, namespace string) {
	rep := &reporter{
		reg:       r,
		interval:  d,
		url:       url,
		database:  database,
		username:  username,
		password:  password,
		namespace: namespace,
	}
	if err := rep.makeClient(); err != nil {
		ilog.Error("unable to make influxdb client", "err", err)
		return
	}
	rep.run()
}

func (r *reporter) makeClient() (err error) {
	r.client, err = client.NewHTTPClient(client.HTTPConfig{
		Addr:     r.url,
		Username: r.username,
		Password: r.password,
		Timeout:  10 * time.Second,
	})
	return err
}

func (r *reporter) run() {
	intervalTicker := time.NewTicker(r.interval)
	pingTicker := time.NewTicker(time.Second * 5)
	defer intervalTicker.Stop()
	defer pingTicker.Stop()
	for {
		select {
		case <-intervalTicker.C:
			if err := r.send(); err != nil {
				ilog.Error("unable to send to influxdb", "err", err)
			}
		case <-pingTicker.C:
			_, _, err := r.client.Ping(time.Second * 5)
			if err != nil {
				ilog.Error("got error while sending a ping to influxdb, trying to recreate client", "err", err)
				if err = r.makeClient(); err != nil {
					ilog.Error("unable to make influxdb client", "err", err)
				}
			}
		}
	}
}

func (r *reporter) send() error {
	bps, err := client.NewBatchPoints(client.BatchPointsConfig{Database: r.database})
	if err != nil {
		return err
	}
	now := time.Now()
	r.reg.Each(func(name string, i interface{}) {
		var pt *client.Point
		var perr error
		measurement := fmt.Sprintf("%s%s", r.namespace, name)
		switch metric := i.(type) {
		case metrics.Counter:
			pt, perr = client.NewPoint(measurement+".count",
				nil, map[string]interface{}{"value": metric.Count()}, now)
		case metrics.Gauge:
			pt, perr = client.NewPoint(measurement+".gauge",
				nil, map[string]interface{}{"value": metric.Value()}, now)
		case metrics.GaugeFloat64:
			pt, perr = client.NewPoint(measurement+".gauge",
				nil, map[string]interface{}{"value": metric.Value()}, now)
		case metrics.Meter:
			ms := metric.Snapshot()
			pt, perr = client.NewPoint(measurement+".meter", nil,
				map[string]interface{}{
					"count": ms.Count(),
					"m1":    ms.Rate1(),
					"m5":    ms.Rate5(),
					"m15":   ms.Rate15(),
					"mean":  ms.RateMean(),
				}, now)
		case metrics.Timer:
			ts := metric.Snapshot()
			ps := ts.Percentiles([]float64{0.5, 0.75, 0.95, 0.99, 0.999})
			pt, perr = client.NewPoint(measurement+".timer", nil,
				map[string]interface{}{
					"count":    ts.Count(),
					"max":      ts.Max(),
					"mean":     ts.Mean(),
					"min":      ts.Min(),
					"stddev":   ts.StdDev(),
					"variance": ts.Variance(),
					"p50":      ps[0],
					"p75":      ps[1],
					"p95":      ps[2],
					"p99":      ps[3],
					"p999":     ps[4],
					"m1":       ts.Rate1(),
					"m5":       ts.Rate5(),
					"m15":      ts.Rate15(),
					"meanrate": ts.RateMean(),
				}, now)
		case metrics.Histogram:
			hs := metric.Snapshot()
			ps := hs.Percentiles([]float64{0.5, 0.75, 0.95, 0.99, 0.999})
			pt, perr = client.NewPoint(measurement+".histogram", nil,
				map[string]interface{}{
					"count":    hs.Count(),
					"max":      hs.Max(),
					"mean":     hs.Mean(),
					"min":      hs.Min(),
					"stddev":   hs.StdDev(),
					"variance": hs.Variance(),
					"p50":      ps[0],
					"p75":      ps[1],
					"p95":      ps[2],
					"p99":      ps[3],
					"p999":     ps[4],
				}, now)
		default:
			return
		}
		if perr != nil {
			ilog.Error("unable to create influxdb point", "measurement", measurement, "err", perr)
			return
		}
		bps.AddPoint(pt)
	})
	if len(bps.Points()) == 0 {
		return nil
	}
	return r.client.Write(bps)
}
