// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"testing"

	"github.com/guessbet/guessbet/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/guessbet/guessbet/common/crypto/init"
)

func TestAddress(t *testing.T) {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	key, err := c.GenKey()
	require.NoError(t, err)
	t.Logf("%X", key.Bytes())
	addr := PubKeyToAddress(key.PubKey().Bytes())
	t.Log(addr)
	require.NoError(t, CheckAddress(addr.String()))
}

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "024a17b0c6eb3143839482faa7e917c9b90a8cfe5008dff748789b8cea1a3d08d5"
	b, err := hex.DecodeString(pubkey)
	require.NoError(t, err)
	addr := PubKeyToAddress(b)
	t.Log(addr)
	//带cache的版本结果一致
	assert.Equal(t, addr.String(), PubKeyToAddr(b))
}

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("guess")
	assert.Equal(t, addr, GetExecAddress("guess").String())
	//cache命中
	assert.Equal(t, addr, ExecAddress("guess"))
	require.NoError(t, CheckAddress(addr))
}

func TestCheckAddress(t *testing.T) {
	err := CheckAddress("not-an-address")
	assert.NotNil(t, err)
	//cache中保存的也是错误
	err = CheckAddress("not-an-address")
	assert.NotNil(t, err)
}

func TestNewAddrFromString(t *testing.T) {
	addr := GetExecAddress("guess")
	parsed, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, parsed.Hash160)
	assert.Equal(t, addr.String(), parsed.String())

	_, err = NewAddrFromString("bad")
	assert.NotNil(t, err)
}

func BenchmarkExecAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExecAddress("guess")
	}
}
