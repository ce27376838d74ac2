// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfgString = `
Title="guessbet-test"

[log]
loglevel="debug"

[ledger]
driver="memdb"
genesis="14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
genesisAmount=500

[exec]
minExecFee=100000

[rpc]
jrpcBindAddr="localhost:8801"
grpcBindAddr="localhost:8802"
whitelist=["127.0.0.1"]

[metrics]
enableMetrics=true
dataEmitMode="influxdb"
url="http://localhost:8086"
database="metrics"
`

func TestInitCfgString(t *testing.T) {
	cfg := InitCfgString(testCfgString)
	require.NotNil(t, cfg)
	assert.Equal(t, "guessbet-test", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, "memdb", cfg.Ledger.Driver)
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", cfg.Ledger.Genesis)
	assert.Equal(t, int64(500), cfg.Ledger.GenesisAmount)
	assert.Equal(t, MinFee, cfg.Exec.MinExecFee)
	assert.Equal(t, "localhost:8801", cfg.RPC.JrpcBindAddr)
	assert.True(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, "influxdb", cfg.Metrics.DataEmitMode)
}

func TestCfgDefault(t *testing.T) {
	cfg := InitCfgString(`Title="t"`)
	require.NotNil(t, cfg)
	//未配置的部分填缺省值
	assert.Equal(t, "leveldb", cfg.Ledger.Driver)
	assert.Equal(t, "datadir", cfg.Ledger.DbPath)
	assert.Equal(t, int32(64), cfg.Ledger.DbCache)
	assert.Equal(t, int64(128), cfg.Ledger.DefCacheSize)
	assert.Equal(t, MinFee, cfg.Exec.MinExecFee)
	assert.Equal(t, int32(1024), cfg.Exec.GuessParticipantLimit)
}
