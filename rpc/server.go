// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 对外服务入口，同时提供json-rpc 和grpc 两种访问方式
package rpc

import (
	"encoding/base64"
	"net"
	"net/http"
	"net/rpc"
	"strings"
	"time"

	log15 "github.com/inconshreveable/log15"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/peer"

	"github.com/guessbet/guessbet/ledger"
	"github.com/guessbet/guessbet/types"
)

var (
	rpcCfg            *types.RPC
	remoteIPWhitelist = make(map[string]bool)
	jrpcFuncWhitelist = make(map[string]bool)
	grpcFuncWhitelist = make(map[string]bool)
	jrpcFuncBlacklist = make(map[string]bool)
	grpcFuncBlacklist = make(map[string]bool)
	log               = log15.New("module", "rpc")
)

//Guessbet json-rpc 接收器，方法名即对外的Guessbet.Xxx
type Guessbet struct {
	cli *ledger.Ledger
}

//Grpc grpc 接收器
type Grpc struct {
	cli *ledger.Ledger
}

//JSONRPCServer json-rpc 服务
type JSONRPCServer struct {
	jrpc *Guessbet
	s    *rpc.Server
	l    net.Listener
}

//Close json-rpc 服务关闭
func (s *JSONRPCServer) Close() {
	if s.l != nil {
		if err := s.l.Close(); err != nil {
			log.Error("JSONRPCServer close", "err", err)
		}
	}
}

//Grpcserver grpc 服务
type Grpcserver struct {
	grpc *Grpc
	s    *grpc.Server
	l    net.Listener
}

//Close grpc 服务关闭
func (g *Grpcserver) Close() {
	if g == nil {
		return
	}
	if g.s != nil {
		g.s.Stop()
	}
}

func checkBasicAuth(r *http.Request) bool {
	if rpcCfg.BasicAuthUser == "" && rpcCfg.BasicAuthPassword == "" {
		return true
	}
	s := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(s) != 2 {
		return false
	}
	b, err := base64.StdEncoding.DecodeString(s[1])
	if err != nil {
		return false
	}
	pair := strings.SplitN(string(b), ":", 2)
	if len(pair) != 2 {
		return false
	}
	return pair[0] == rpcCfg.BasicAuthUser && pair[1] == rpcCfg.BasicAuthPassword
}

func checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip != nil && ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if _, ok := remoteIPWhitelist["0.0.0.0"]; ok {
		return true
	}
	return remoteIPWhitelist[addr]
}

func checkJrpcFuncWhitelist(funcName string) bool {
	if _, ok := jrpcFuncWhitelist["*"]; ok {
		return true
	}
	return jrpcFuncWhitelist[funcName]
}

func checkJrpcFuncBlacklist(funcName string) bool {
	return jrpcFuncBlacklist[funcName]
}

func checkGrpcFuncValidity(funcName string) bool {
	if _, ok := grpcFuncBlacklist[funcName]; ok {
		return false
	}
	if _, ok := grpcFuncWhitelist["*"]; ok {
		return true
	}
	return grpcFuncWhitelist[funcName]
}

//auth grpc 请求校验：来源ip 白名单加方法黑白名单
func auth(ctx context.Context, info *grpc.UnaryServerInfo) error {
	getctx, ok := peer.FromContext(ctx)
	if !ok {
		log.Error("auth", "err", "can't get remote peer from ctx")
		return types.ErrNotAllowOperate
	}
	ip, _, err := net.SplitHostPort(getctx.Addr.String())
	if err != nil {
		log.Error("auth", "addr", getctx.Addr.String(), "err", err)
		return types.ErrNotAllowOperate
	}
	if !checkIPWhitelist(ip) {
		log.Error("auth", "ip not in whitelist", ip)
		return types.ErrNotAllowOperate
	}
	funcName := info.FullMethod[strings.LastIndex(info.FullMethod, "/")+1:]
	if !checkGrpcFuncValidity(funcName) {
		log.Error("auth", "func not allowed", funcName)
		return types.ErrNotAllowOperate
	}
	return nil
}

//NewGRpcServer 创建grpc 服务
func NewGRpcServer(cli *ledger.Ledger) *Grpcserver {
	s := &Grpcserver{grpc: &Grpc{cli: cli}}
	interceptor := func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if err := auth(ctx, info); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
	kp := keepalive.EnforcementPolicy{
		MinTime:             10 * time.Second,
		PermitWithoutStream: true,
	}
	server := grpc.NewServer(
		grpc.UnaryInterceptor(interceptor),
		grpc.KeepaliveEnforcementPolicy(kp),
	)
	s.s = server
	types.RegisterGuessbetServer(server, s.grpc)
	return s
}

//NewJSONRPCServer 创建json-rpc 服务
func NewJSONRPCServer(cli *ledger.Ledger) *JSONRPCServer {
	j := &JSONRPCServer{jrpc: &Guessbet{cli: cli}}
	server := rpc.NewServer()
	j.s = server
	if err := server.RegisterName("Guessbet", j.jrpc); err != nil {
		log.Error("NewJSONRPCServer", "register err", err)
		return nil
	}
	return j
}

//RPC 汇总json-rpc 和grpc 的服务对象
type RPC struct {
	cfg  *types.RPC
	gapi *Grpcserver
	japi *JSONRPCServer
	cli  *ledger.Ledger
}

//InitCfg 初始化rpc 配置和各种名单
func InitCfg(cfg *types.RPC) {
	rpcCfg = cfg
	InitIPWhitelist(cfg)
	InitJrpcFuncWhitelist(cfg)
	InitGrpcFuncWhitelist(cfg)
	InitJrpcFuncBlacklist(cfg)
	InitGrpcFuncBlacklist(cfg)
}

//New 根据配置创建rpc 服务
func New(cfg *types.RPC, cli *ledger.Ledger) *RPC {
	InitCfg(cfg)
	return &RPC{
		cfg:  cfg,
		cli:  cli,
		gapi: NewGRpcServer(cli),
		japi: NewJSONRPCServer(cli),
	}
}

//Listen 启动监听，失败时重试
func (r *RPC) Listen() {
	var err error
	for i := 0; i < 10; i++ {
		err = r.gapi.Listen(r.cfg.GrpcBindAddr)
		if err != nil {
			log.Error("grpc listen", "err", err)
			time.Sleep(time.Second)
			continue
		}
		break
	}
	for i := 0; i < 10; i++ {
		err = r.japi.Listen(r.cfg.JrpcBindAddr)
		if err != nil {
			log.Error("jrpc listen", "err", err)
			time.Sleep(time.Second)
			continue
		}
		break
	}
	log.Info("rpc listen", "grpc", r.cfg.GrpcBindAddr, "jrpc", r.cfg.JrpcBindAddr)
}

//JRPC 返回内部的json-rpc server，测试用
func (r *RPC) JRPC() *rpc.Server {
	return r.japi.s
}

//Close rpc 服务关闭
func (r *RPC) Close() {
	if r.gapi != nil {
		r.gapi.Close()
	}
	if r.japi != nil {
		r.japi.Close()
	}
}

//InitIPWhitelist 初始化来源ip 白名单，缺省只允许本机
func InitIPWhitelist(cfg *types.RPC) {
	remoteIPWhitelist = make(map[string]bool)
	if len(cfg.Whitelist) == 0 {
		remoteIPWhitelist["127.0.0.1"] = true
		return
	}
	if len(cfg.Whitelist) == 1 && cfg.Whitelist[0] == "*" {
		remoteIPWhitelist["0.0.0.0"] = true
		return
	}
	for _, addr := range cfg.Whitelist {
		remoteIPWhitelist[addr] = true
	}
}

//InitJrpcFuncWhitelist 初始化jrpc 方法白名单，缺省全部放行
func InitJrpcFuncWhitelist(cfg *types.RPC) {
	jrpcFuncWhitelist = make(map[string]bool)
	if len(cfg.JrpcFuncWhitelist) == 0 {
		jrpcFuncWhitelist["*"] = true
		return
	}
	for _, funcName := range cfg.JrpcFuncWhitelist {
		jrpcFuncWhitelist[funcName] = true
	}
}

//InitGrpcFuncWhitelist 初始化grpc 方法白名单，缺省全部放行
func InitGrpcFuncWhitelist(cfg *types.RPC) {
	grpcFuncWhitelist = make(map[string]bool)
	if len(cfg.GrpcFuncWhitelist) == 0 {
		grpcFuncWhitelist["*"] = true
		return
	}
	for _, funcName := range cfg.GrpcFuncWhitelist {
		grpcFuncWhitelist[funcName] = true
	}
}

//InitJrpcFuncBlacklist 初始化jrpc 方法黑名单
func InitJrpcFuncBlacklist(cfg *types.RPC) {
	jrpcFuncBlacklist = make(map[string]bool)
	for _, funcName := range cfg.JrpcFuncBlacklist {
		jrpcFuncBlacklist[funcName] = true
	}
}

//InitGrpcFuncBlacklist 初始化grpc 方法黑名单
func InitGrpcFuncBlacklist(cfg *types.RPC) {
	grpcFuncBlacklist = make(map[string]bool)
	for _, funcName := range cfg.GrpcFuncBlacklist {
		grpcFuncBlacklist[funcName] = true
	}
}
