// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guessbet/guessbet/types"
)

func TestCheckIPWhitelist(t *testing.T) {
	InitIPWhitelist(&types.RPC{})
	assert.True(t, checkIPWhitelist("127.0.0.1"))
	assert.True(t, checkIPWhitelist("::1"))
	assert.False(t, checkIPWhitelist("192.168.3.1"))

	InitIPWhitelist(&types.RPC{Whitelist: []string{"*"}})
	assert.True(t, checkIPWhitelist("192.168.3.1"))

	InitIPWhitelist(&types.RPC{Whitelist: []string{"192.168.3.1", "192.168.3.2"}})
	assert.True(t, checkIPWhitelist("192.168.3.1"))
	assert.True(t, checkIPWhitelist("192.168.3.2"))
	assert.False(t, checkIPWhitelist("192.168.3.3"))
	//回环地址始终允许
	assert.True(t, checkIPWhitelist("127.0.0.1"))
}

func TestCheckJrpcFuncList(t *testing.T) {
	InitJrpcFuncWhitelist(&types.RPC{})
	InitJrpcFuncBlacklist(&types.RPC{})
	assert.True(t, checkJrpcFuncWhitelist("SendTransaction"))
	assert.False(t, checkJrpcFuncBlacklist("SendTransaction"))

	InitJrpcFuncWhitelist(&types.RPC{JrpcFuncWhitelist: []string{"GetLastHeader"}})
	assert.True(t, checkJrpcFuncWhitelist("GetLastHeader"))
	assert.False(t, checkJrpcFuncWhitelist("SendTransaction"))

	InitJrpcFuncBlacklist(&types.RPC{JrpcFuncBlacklist: []string{"SendTransaction"}})
	assert.True(t, checkJrpcFuncBlacklist("SendTransaction"))
	assert.False(t, checkJrpcFuncBlacklist("GetLastHeader"))
}

func TestCheckGrpcFuncValidity(t *testing.T) {
	InitGrpcFuncWhitelist(&types.RPC{})
	InitGrpcFuncBlacklist(&types.RPC{})
	assert.True(t, checkGrpcFuncValidity("SendTransaction"))

	InitGrpcFuncBlacklist(&types.RPC{GrpcFuncBlacklist: []string{"SendTransaction"}})
	assert.False(t, checkGrpcFuncValidity("SendTransaction"))
	assert.True(t, checkGrpcFuncValidity("GetLastHeader"))

	InitGrpcFuncWhitelist(&types.RPC{GrpcFuncWhitelist: []string{"QueryChain"}})
	InitGrpcFuncBlacklist(&types.RPC{})
	assert.True(t, checkGrpcFuncValidity("QueryChain"))
	assert.False(t, checkGrpcFuncValidity("GetLastHeader"))
}

func TestCheckBasicAuth(t *testing.T) {
	rpcCfg = &types.RPC{}
	req, _ := http.NewRequest("POST", "/", nil)
	assert.True(t, checkBasicAuth(req))

	rpcCfg = &types.RPC{BasicAuthUser: "user", BasicAuthPassword: "pass"}
	assert.False(t, checkBasicAuth(req))

	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("user:pass")))
	assert.True(t, checkBasicAuth(req))

	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("user:bad")))
	assert.False(t, checkBasicAuth(req))
}
