// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr4 = "44ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func GenerAccDb() (*DB, *DB) {
	//构造账户数据库
	accCoin := NewCoinsAccount()
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin.SetDB(stroedb)

	accGuess, _ := NewAccountDB("guess", "gbt", nil)
	stroedb2, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accGuess.SetDB(stroedb2)

	return accCoin, accGuess
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * 1e8
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * 1e8
	account.Addr = addr4
	acc.SaveAccount(account)
}

func TestNewAccountDB(t *testing.T) {
	_, err := NewAccountDB("guess-x", "gbt", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("guess", "gbt-x", nil)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	accDB, err := NewAccountDB("guess", "gbt", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("mavl-guess-gbt-"), accDB.accountKeyPerfix)
}

func TestLoadAccount(t *testing.T) {
	accCoin, _ := GenerAccDb()
	//未知地址返回空账户
	acc := accCoin.LoadAccount(addr1)
	assert.Equal(t, addr1, acc.Addr)
	assert.Equal(t, int64(0), acc.Balance)

	accCoin.GenerAccData()
	acc = accCoin.LoadAccount(addr1)
	assert.Equal(t, int64(1000*1e8), acc.Balance)
}

func TestCheckTransfer(t *testing.T) {
	accCoin, accGuess := GenerAccDb()
	accCoin.GenerAccData()
	accGuess.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)

	err = accGuess.CheckTransfer(addr3, addr4, 10*1e8)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr1, addr2, 2000*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	err = accCoin.CheckTransfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	accCoin, accGuess := GenerAccDb()
	accCoin.GenerAccData()
	accGuess.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	require.Equal(t, int64(1000*1e8-10*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, int64(900*1e8+10*1e8), accCoin.LoadAccount(addr2).Balance)

	_, err = accGuess.Transfer(addr3, addr4, 10*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(800*1e8-10*1e8), accGuess.LoadAccount(addr3).Balance)
	require.Equal(t, int64(700*1e8+10*1e8), accGuess.LoadAccount(addr4).Balance)
}

func TestTransferFail(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	//转给自己
	_, err := accCoin.Transfer(addr1, addr1, 10*1e8)
	assert.Equal(t, types.ErrSendSameToRecv, err)

	//余额不足，失败后余额不变
	_, err = accCoin.Transfer(addr1, addr2, 2000*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(1000*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(900*1e8), accCoin.LoadAccount(addr2).Balance)

	//非法金额
	_, err = accCoin.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestExecDepositAndWithdraw(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("guess")

	receipt, err := accCoin.ExecDeposit(addr1, execaddr, 100*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecDeposit), receipt.Logs[0].Ty)
	assert.Equal(t, int64(100*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	receipt, err = accCoin.ExecWithdraw(execaddr, addr1, 40*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecWithdraw), receipt.Logs[0].Ty)
	assert.Equal(t, int64(60*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	//超出可用余额
	_, err = accCoin.ExecWithdraw(execaddr, addr1, 100*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(60*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
}

func TestExecFrozenAndActive(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("guess")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*1e8)
	require.NoError(t, err)

	receipt, err := accCoin.ExecFrozen(addr1, execaddr, 30*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecFrozen), receipt.Logs[0].Ty)
	acc := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(70*1e8), acc.Balance)
	assert.Equal(t, int64(30*1e8), acc.Frozen)

	//冻结超出可用余额
	_, err = accCoin.ExecFrozen(addr1, execaddr, 100*1e8)
	assert.Equal(t, types.ErrNoBalance, err)

	receipt, err = accCoin.ExecActive(addr1, execaddr, 30*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogExecActive), receipt.Logs[0].Ty)
	acc = accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(100*1e8), acc.Balance)
	assert.Equal(t, int64(0), acc.Frozen)

	//激活超出冻结余额
	_, err = accCoin.ExecActive(addr1, execaddr, 1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("guess")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*1e8)
	require.NoError(t, err)

	receipt, err := accCoin.ExecTransfer(addr1, addr2, execaddr, 40*1e8)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogExecTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, int64(60*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(40*1e8), accCoin.LoadExecAccount(addr2, execaddr).Balance)

	//失败后双方余额不变
	_, err = accCoin.ExecTransfer(addr1, addr2, execaddr, 100*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(60*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(40*1e8), accCoin.LoadExecAccount(addr2, execaddr).Balance)

	_, err = accCoin.ExecTransfer(addr1, addr1, execaddr, 1e8)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestExecTransferFrozen(t *testing.T) {
	accCoin, _ := GenerAccDb()
	execaddr := address.ExecAddress("guess")

	_, err := accCoin.ExecDeposit(addr1, execaddr, 100*1e8)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr1, execaddr, 50*1e8)
	require.NoError(t, err)

	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execaddr, 30*1e8)
	require.NoError(t, err)
	acc := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(20*1e8), acc.Frozen)
	assert.Equal(t, int64(30*1e8), accCoin.LoadExecAccount(addr2, execaddr).Balance)

	//冻结余额不足
	_, err = accCoin.ExecTransferFrozen(addr1, addr2, execaddr, 30*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestTransferToExec(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("guess")

	receipt, err := accCoin.TransferToExec(addr1, execaddr, 100*1e8)
	require.NoError(t, err)
	//transfer 两条日志 + deposit 一条日志
	assert.Len(t, receipt.Logs, 3)
	assert.Equal(t, int64(900*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(100*1e8), accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, int64(100*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	//余额不足时整体失败
	_, err = accCoin.TransferToExec(addr1, execaddr, 10000*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(900*1e8), accCoin.LoadAccount(addr1).Balance)
}

func TestTransferWithdraw(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("guess")

	_, err := accCoin.TransferToExec(addr1, execaddr, 100*1e8)
	require.NoError(t, err)

	receipt, err := accCoin.TransferWithdraw(addr1, execaddr, 40*1e8)
	require.NoError(t, err)
	assert.Len(t, receipt.Logs, 3)
	assert.Equal(t, int64(940*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(60*1e8), accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, int64(60*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	//执行器账户余额不足
	_, err = accCoin.TransferWithdraw(addr1, execaddr, 100*1e8)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestLoadAccountsDB(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()

	accs, err := accCoin.LoadAccountsDB([]string{addr1, addr2, "unknown"})
	require.NoError(t, err)
	require.Len(t, accs, 3)
	assert.Equal(t, int64(1000*1e8), accs[0].Balance)
	assert.Equal(t, int64(900*1e8), accs[1].Balance)
	assert.Equal(t, int64(0), accs[2].Balance)
}

func TestGetKVSet(t *testing.T) {
	accCoin, _ := GenerAccDb()
	account := &types.Account{
		Balance: 100 * 1e8,
		Addr:    addr1,
	}
	set := accCoin.GetKVSet(account)
	require.Len(t, set, 1)
	assert.Equal(t, accCoin.AccountKey(addr1), set[0].Key)

	var acc types.Account
	err := types.Decode(set[0].Value, &acc)
	require.NoError(t, err)
	assert.Equal(t, account.Balance, acc.Balance)
}
