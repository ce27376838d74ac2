// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/rpc/jsonrpc"

	"github.com/kevinms/leakybucket-go"
	"github.com/rs/cors"
	"golang.org/x/net/netutil"
)

//HttpConn 把一次http 请求适配成ReadWriteCloser，给jsonrpc codec 用
type HttpConn struct {
	in  io.Reader
	out io.Writer
}

//Read 实现io.Reader
func (c *HttpConn) Read(p []byte) (n int, err error) { return c.in.Read(p) }

//Write 实现io.Writer
func (c *HttpConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

//Close 实现io.Closer
func (c *HttpConn) Close() error { return nil }

//clientRequest 只为取出method 做名单检查
type clientRequest struct {
	Method string `json:"method"`
}

//Listen json-rpc 开始监听
func (s *JSONRPCServer) Listen(bindAddr string) error {
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return err
	}
	if rpcCfg.MaxConns > 0 {
		listener = netutil.LimitListener(listener, rpcCfg.MaxConns)
	}
	s.l = listener

	//按来源ip 限速
	var buckets *leakybucket.Collector
	if rpcCfg.RatePerSecond > 0 {
		buckets = leakybucket.NewCollector(float64(rpcCfg.RatePerSecond), rpcCfg.RatePerSecond, true)
	}

	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if !checkBasicAuth(r) {
			writeError(w, http.StatusUnauthorized, 0, "unauthorized")
			return
		}
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			writeError(w, http.StatusForbidden, 0, "unknown remote addr")
			return
		}
		if buckets != nil && buckets.Add(ip, 1) == 0 {
			writeError(w, http.StatusTooManyRequests, 0, "system busy")
			return
		}
		if !checkIPWhitelist(ip) {
			writeError(w, http.StatusForbidden, 0, "not in whitelist")
			return
		}
		data, err := ioutil.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, 0, "can't read request body")
			return
		}
		var req clientRequest
		if err := json.Unmarshal(data, &req); err != nil {
			writeError(w, http.StatusBadRequest, 0, "parse request failed")
			return
		}
		funcName := req.Method
		if idx := bytes.IndexByte([]byte(funcName), '.'); idx >= 0 {
			funcName = funcName[idx+1:]
		}
		if !checkJrpcFuncWhitelist(funcName) || checkJrpcFuncBlacklist(funcName) {
			writeError(w, http.StatusForbidden, 0, "this func is not allowed")
			return
		}
		serverCodec := jsonrpc.NewServerCodec(&HttpConn{in: bytes.NewReader(data), out: w})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := s.s.ServeRequest(serverCodec); err != nil {
			log.Error("serve json request", "err", err)
			return
		}
	})
	if rpcCfg.EnableCors {
		handler = cors.New(cors.Options{AllowedOrigins: []string{"*"}}).Handler(handler)
	}
	go func() {
		if err := http.Serve(listener, handler); err != nil {
			log.Debug("jrpc server exit", "err", err)
		}
	}()
	return nil
}

//errorResponse json-rpc 2.0 风格的错误应答
type errorResponse struct {
	ID    uint64      `json:"id"`
	Imp   interface{} `json:"result"`
	Error string      `json:"error"`
}

func writeError(w http.ResponseWriter, status int, id uint64, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{ID: id, Error: msg}
	data, err := json.Marshal(&resp)
	if err != nil {
		log.Error("writeError", "marshal err", err)
		return
	}
	if _, err := w.Write(data); err != nil {
		log.Error("writeError", "write err", err)
	}
}

//Listen grpc 开始监听
func (g *Grpcserver) Listen(bindAddr string) error {
	listener, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return err
	}
	g.l = listener
	go func() {
		if err := g.s.Serve(listener); err != nil {
			log.Debug("grpc server exit", "err", err)
		}
	}()
	return nil
}
