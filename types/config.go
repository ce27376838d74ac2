// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"io/ioutil"

	tml "github.com/BurntSushi/toml"
)

//Config 节点配置，对应toml 配置文件的顶层结构
type Config struct {
	Title   string   `json:"title,omitempty"`
	Version string   `json:"version,omitempty"`
	Log     *Log     `json:"log,omitempty"`
	Ledger  *Ledger  `json:"ledger,omitempty"`
	Exec    *Exec    `json:"exec,omitempty"`
	RPC     *RPC     `json:"rpc,omitempty"`
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
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

//Ledger 账本配置
type Ledger struct {
	// 数据库驱动名，支持leveldb/gobadgerdb/memdb/pegasus
	Driver string `json:"driver,omitempty"`
	// 数据库存放目录
	DbPath string `json:"dbPath,omitempty"`
	// 数据库cache大小
	DbCache int32 `json:"dbCache,omitempty"`
	// 创世地址
	Genesis string `json:"genesis,omitempty"`
	// 创世转入金额，单位为币
	GenesisAmount int64 `json:"genesisAmount,omitempty"`
	// 创世区块时间
	GenesisBlockTime int64 `json:"genesisBlockTime,omitempty"`
	// 区块缓存个数
	DefCacheSize int64 `json:"defCacheSize,omitempty"`
}

//Exec 执行器配置
type Exec struct {
	// 最低交易费
	MinExecFee int64 `json:"minExecFee,omitempty"`
	// guess 单个猜测值的参与人数上限
	GuessParticipantLimit int32 `json:"guessParticipantLimit,omitempty"`
}

//RPC 配置
type RPC struct {
	JrpcBindAddr      string   `json:"jrpcBindAddr,omitempty"`
	GrpcBindAddr      string   `json:"grpcBindAddr,omitempty"`
	Whitelist         []string `json:"whitelist,omitempty"`
	JrpcFuncWhitelist []string `json:"jrpcFuncWhitelist,omitempty"`
	GrpcFuncWhitelist []string `json:"grpcFuncWhitelist,omitempty"`
	JrpcFuncBlacklist []string `json:"jrpcFuncBlacklist,omitempty"`
	GrpcFuncBlacklist []string `json:"grpcFuncBlacklist,omitempty"`
	MaxConns          int      `json:"maxConns,omitempty"`
	RatePerSecond     int64    `json:"ratePerSecond,omitempty"`
	EnableCors        bool     `json:"enableCors,omitempty"`
	BasicAuthUser     string   `json:"basicAuthUser,omitempty"`
	BasicAuthPassword string   `json:"basicAuthPassword,omitempty"`
}

//Metrics 测量配置
type Metrics struct {
	EnableMetrics bool   `json:"enableMetrics,omitempty"`
	DataEmitMode  string `json:"dataEmitMode,omitempty"`
	// 以纳秒为单位
	Duration  int64  `json:"duration,omitempty"`
	URL       string `json:"url,omitempty"`
	Database  string `json:"database,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

//InitCfg 初始化配置
func InitCfg(path string) *Config {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}
	return InitCfgString(string(data))
}

//InitCfgString 初始化配置
func InitCfgString(cfgstring string) *Config {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		panic(err)
	}
	setCfgDefault(&cfg)
	return &cfg
}

func setCfgDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "guessbet"
	}
	if cfg.Ledger == nil {
		cfg.Ledger = &Ledger{}
	}
	if cfg.Ledger.Driver == "" {
		cfg.Ledger.Driver = "leveldb"
	}
	if cfg.Ledger.DbPath == "" {
		cfg.Ledger.DbPath = "datadir"
	}
	if cfg.Ledger.DbCache <= 0 {
		cfg.Ledger.DbCache = 64
	}
	if cfg.Ledger.DefCacheSize <= 0 {
		cfg.Ledger.DefCacheSize = 128
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.MinExecFee <= 0 {
		cfg.Exec.MinExecFee = MinFee
	}
	if cfg.Exec.GuessParticipantLimit <= 0 {
		cfg.Exec.GuessParticipantLimit = 1024
	}
}
