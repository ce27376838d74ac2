// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli RunGuessbet 加载配置并依次拉起账本、rpc 和指标模块，
// 没有共识和p2p，账本的定序循环就是整个节点的执行主干。
package cli

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof" //注册pprof 处理器
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/inconshreveable/log15"

	"github.com/guessbet/guessbet/common/limits"
	clog "github.com/guessbet/guessbet/common/log"
	"github.com/guessbet/guessbet/common/version"
	"github.com/guessbet/guessbet/ledger"
	"github.com/guessbet/guessbet/metrics"
	"github.com/guessbet/guessbet/rpc"
	"github.com/guessbet/guessbet/types"
)

var (
	cpuNum     = runtime.NumCPU()
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of guessbet, include logs and datas")
	versionCmd = flag.Bool("v", false, "version")
)

//RunGuessbet 启动节点，阻塞到收到退出信号
func RunGuessbet(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(version.GetVersion())
		return
	}
	if *configPath == "" {
		if name == "" {
			*configPath = "guessbet.toml"
		} else {
			*configPath = name + ".toml"
		}
	}
	if err := limits.SetLimits(); err != nil {
		panic(err)
	}
	cfg := types.InitCfg(*configPath)
	if *datadir != "" {
		cfg.Ledger.DbPath = *datadir
	}
	clog.SetFileLog(cfg.Log)
	types.SetMinFee(cfg.Exec.MinExecFee)
	types.SetGuessParticipantLimit(cfg.Exec.GuessParticipantLimit)

	//内存和goroutine 状态定期输出，便于排查泄漏
	go func() {
		for range time.Tick(10 * time.Second) {
			watching()
		}
	}()
	go func() {
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Info("ListenAndServe", "listen addr localhost:6060 err", err)
		}
	}()
	runtime.GOMAXPROCS(cpuNum)

	log.Info(cfg.Title + " " + version.GetVersion())
	log.Info("loading ledger module")
	l := ledger.New(cfg.Ledger)

	log.Info("loading rpc module")
	rpcapi := rpc.New(cfg.RPC, l)
	rpcapi.Listen()

	metrics.StartMetrics(cfg)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Info("received signal, closing", "signal", sig.String())

	rpcapi.Close()
	l.Close()
	log.Info("all modules closed")
}

func watching() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Info("info:", "NumGoroutine:", runtime.NumGoroutine())
	log.Info("info:", "Mem:", m.Sys/(1024*1024))
}
