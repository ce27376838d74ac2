// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesisInit(t *testing.T) {
	accCoin, _ := GenerAccDb()
	receipt, err := accCoin.GenesisInit(addr1, 100*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	require.Equal(t, int64(100*1e8), accCoin.LoadAccount(addr1).Balance)

	//重复创世累加
	_, err = accCoin.GenesisInit(addr1, 100*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(200*1e8), accCoin.LoadAccount(addr1).Balance)

	//超出最大金额
	_, err = accCoin.GenesisInit(addr2, types.MaxCoin+1)
	assert.Equal(t, types.ErrAmount, err)
	assert.Equal(t, int64(0), accCoin.LoadAccount(addr2).Balance)
}

func TestGenesisInitExec(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("coins")
	_, err := accCoin.GenesisInitExec(addr1, 10*1e8, execaddr)
	require.NoError(t, err)
	require.Equal(t, int64(10*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	require.Equal(t, int64(10*1e8), accCoin.LoadAccount(execaddr).Balance)
}
