// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guessbet/guessbet/account"
	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/common/crypto"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/executor/drivers/guess"
	"github.com/guessbet/guessbet/types"

	_ "github.com/guessbet/guessbet/common/crypto/init"
)

const testBlockTime = int64(1539918074)

var testSalt = []byte("pepper-2018")

func newTestDB(t *testing.T) *dbm.GoMemDB {
	db, err := dbm.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	return db
}

func genKey(t *testing.T) (crypto.PrivKey, string) {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv, address.PubKeyToAddr(priv.PubKey().Bytes())
}

func signTx(priv crypto.PrivKey, execer string, payload []byte, to string) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(execer),
		Payload: payload,
		Fee:     types.MinFee,
		Nonce:   rand.Int63(),
		To:      to,
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func genesisTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	action := &types.CoinsAction{
		Ty:    types.CoinsActionGenesis,
		Value: &types.CoinsAction_Genesis{Genesis: &types.CoinsGenesis{Amount: amount}},
	}
	return signTx(priv, types.CoinsX, types.Encode(action), to)
}

func transferTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	action := &types.CoinsAction{
		Ty:    types.CoinsActionTransfer,
		Value: &types.CoinsAction_Transfer{Transfer: &types.CoinsTransfer{Amount: amount}},
	}
	return signTx(priv, types.CoinsX, types.Encode(action), to)
}

func transferToExecTx(priv crypto.PrivKey, execer string, amount int64) *types.Transaction {
	action := &types.CoinsAction{
		Ty: types.CoinsActionTransferToExec,
		Value: &types.CoinsAction_TransferToExec{
			TransferToExec: &types.CoinsTransferToExec{Amount: amount, ExecName: execer},
		},
	}
	return signTx(priv, types.CoinsX, types.Encode(action), address.ExecAddress(execer))
}

func withdrawTx(priv crypto.PrivKey, execer string, amount int64) *types.Transaction {
	action := &types.CoinsAction{
		Ty:    types.CoinsActionWithdraw,
		Value: &types.CoinsAction_Withdraw{Withdraw: &types.CoinsWithdraw{Amount: amount, ExecName: execer}},
	}
	return signTx(priv, types.CoinsX, types.Encode(action), address.ExecAddress(execer))
}

func guessActionTx(priv crypto.PrivKey, action *types.GuessAction) *types.Transaction {
	return signTx(priv, types.GuessX, types.Encode(action), address.ExecAddress(types.GuessX))
}

func guessInitTx(priv crypto.PrivKey) *types.Transaction {
	return guessActionTx(priv, &types.GuessAction{
		Ty:    types.GuessActionInit,
		Value: &types.GuessAction_Init{Init: &types.GuessInit{}},
	})
}

func guessCommitTx(priv crypto.PrivKey, hash []byte) *types.Transaction {
	return guessActionTx(priv, &types.GuessAction{
		Ty:    types.GuessActionCommit,
		Value: &types.GuessAction_Commit{Commit: &types.GuessCommit{Hash: hash}},
	})
}

func guessStakeTx(priv crypto.PrivKey, value int32, amount int64) *types.Transaction {
	return guessActionTx(priv, &types.GuessAction{
		Ty:    types.GuessActionStake,
		Value: &types.GuessAction_Stake{Stake: &types.GuessStake{Value: value, Amount: amount}},
	})
}

func guessRevealTx(priv crypto.PrivKey, value int32, salt []byte) *types.Transaction {
	return guessActionTx(priv, &types.GuessAction{
		Ty:    types.GuessActionReveal,
		Value: &types.GuessAction_Reveal{Reveal: &types.GuessReveal{Value: value, Salt: salt}},
	})
}

func guessWithdrawTx(priv crypto.PrivKey) *types.Transaction {
	return guessActionTx(priv, &types.GuessAction{
		Ty:    types.GuessActionWithdraw,
		Value: &types.GuessAction_Withdraw{Withdraw: &types.GuessWithdraw{}},
	})
}

//账本落盘回报KV 的最小模拟
func applyReceipts(t *testing.T, db dbm.DB, receipts []*types.Receipt) {
	for _, receipt := range receipts {
		for _, kv := range receipt.KV {
			require.NoError(t, db.Set(kv.Key, kv.Value))
		}
	}
}

func applyLocalSet(t *testing.T, db dbm.DB, set *types.LocalDBSet) {
	for _, kv := range set.KV {
		if kv.Value == nil {
			require.NoError(t, db.Delete(kv.Key))
			continue
		}
		require.NoError(t, db.Set(kv.Key, kv.Value))
	}
}

func hasLog(receipt *types.Receipt, ty int32) bool {
	for _, item := range receipt.Logs {
		if item.Ty == ty {
			return true
		}
	}
	return false
}

func errLogText(receipt *types.Receipt) string {
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogErr {
			return string(item.Log)
		}
	}
	return ""
}

func TestExecGenesis(t *testing.T) {
	db := newTestDB(t)
	priv, addr := genKey(t)

	e := NewExecutor(db, 0, 0)
	receipts := e.ExecTxList([]*types.Transaction{genesisTx(priv, addr, 1000*types.Coin)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, 1000*types.Coin, e.coinsAccount.LoadAccount(addr).Balance)

	//创世块不收手续费，回报KV 落盘后新环境读到同样的余额
	applyReceipts(t, db, receipts)
	e1 := NewExecutor(db, 1, testBlockTime)
	assert.Equal(t, 1000*types.Coin, e1.coinsAccount.LoadAccount(addr).Balance)

	//非创世高度重放创世交易：发送方有钱，手续费收下后执行失败留在账本里
	receipts = e1.ExecTxList([]*types.Transaction{genesisTx(priv, addr, 1000*types.Coin)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecPack), receipts[0].Ty)
	assert.True(t, hasLog(receipts[0], types.TyLogFee))
	assert.Contains(t, errLogText(receipts[0]), "ErrReRunGenesis")

	//没钱的发送方连手续费都付不起，直接拒绝
	poor, poorAddr := genKey(t)
	receipts = e1.ExecTxList([]*types.Transaction{genesisTx(poor, poorAddr, 1000*types.Coin)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecErr), receipts[0].Ty)
	assert.Contains(t, errLogText(receipts[0]), "ErrNoBalance")
}

func TestExecTransfer(t *testing.T) {
	db := newTestDB(t)
	privA, addrA := genKey(t)
	_, addrB := genKey(t)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{genesisTx(privA, addrA, 1000*types.Coin)}))

	e1 := NewExecutor(db, 1, testBlockTime)
	receipts := e1.ExecTxList([]*types.Transaction{transferTx(privA, addrB, 10*types.Coin)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.True(t, hasLog(receipts[0], types.TyLogFee))
	assert.True(t, hasLog(receipts[0], types.TyLogTransfer))

	assert.Equal(t, 1000*types.Coin-types.MinFee-10*types.Coin, e1.coinsAccount.LoadAccount(addrA).Balance)
	assert.Equal(t, 10*types.Coin, e1.coinsAccount.LoadAccount(addrB).Balance)
}

//执行失败的交易只扣手续费，执行器内的状态变更全部回滚
func TestExecFeeOnFailedTx(t *testing.T) {
	db := newTestDB(t)
	privA, addrA := genKey(t)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{genesisTx(privA, addrA, 1000*types.Coin)}))

	e1 := NewExecutor(db, 1, testBlockTime)
	//未初始化就提交承诺，必然失败
	tx := guessCommitTx(privA, types.CalcGuessCommit(7, testSalt))
	receipts := e1.ExecTxList([]*types.Transaction{tx})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecPack), receipts[0].Ty)
	assert.True(t, hasLog(receipts[0], types.TyLogFee))
	assert.Contains(t, errLogText(receipts[0]), "ErrGuessNotInited")

	//手续费已收，交易本身的状态变更一个都没留下
	assert.Equal(t, 1000*types.Coin-types.MinFee, e1.coinsAccount.LoadAccount(addrA).Balance)
	_, err := e1.stateDB.Get(guess.RoundKey())
	assert.Equal(t, types.ErrNotFound, err)
}

func TestExecCheckTx(t *testing.T) {
	db := newTestDB(t)
	privA, addrA := genKey(t)
	_, addrB := genKey(t)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{genesisTx(privA, addrA, 1000*types.Coin)}))

	e5 := NewExecutor(db, 5, testBlockTime)

	//过期交易在扣费之前就被拒绝
	expired := transferTx(privA, addrB, types.Coin)
	expired.Expire = 1
	expired.Sign(types.SECP256K1, privA)
	receipts := e5.ExecTxList([]*types.Transaction{expired})
	assert.Equal(t, int32(types.ExecErr), receipts[0].Ty)
	assert.Contains(t, errLogText(receipts[0]), "ErrTxExpire")
	assert.Equal(t, 1000*types.Coin, e5.coinsAccount.LoadAccount(addrA).Balance)

	//手续费低于最低值
	cheap := transferTx(privA, addrB, types.Coin)
	cheap.Fee = 0
	cheap.Sign(types.SECP256K1, privA)
	receipts = e5.ExecTxList([]*types.Transaction{cheap})
	assert.Equal(t, int32(types.ExecErr), receipts[0].Ty)
	assert.Contains(t, errLogText(receipts[0]), "ErrFeeTooLow")

	//没钱付手续费
	privC, _ := genKey(t)
	receipts = e5.ExecTxList([]*types.Transaction{transferTx(privC, addrB, types.Coin)})
	assert.Equal(t, int32(types.ExecErr), receipts[0].Ty)
	assert.Contains(t, errLogText(receipts[0]), "ErrNoBalance")
}

func TestExecTransferToExecWithdraw(t *testing.T) {
	db := newTestDB(t)
	privA, addrA := genKey(t)
	execaddr := address.ExecAddress(types.GuessX)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{genesisTx(privA, addrA, 1000*types.Coin)}))

	e1 := NewExecutor(db, 1, testBlockTime)
	receipts := e1.ExecTxList([]*types.Transaction{
		transferToExecTx(privA, types.GuessX, 100*types.Coin),
		withdrawTx(privA, types.GuessX, 40*types.Coin),
	})
	require.Len(t, receipts, 2)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, int32(types.ExecOk), receipts[1].Ty)

	assert.Equal(t, 60*types.Coin, e1.coinsAccount.LoadExecAccount(addrA, execaddr).Balance)
	assert.Equal(t, 1000*types.Coin-2*types.MinFee-60*types.Coin, e1.coinsAccount.LoadAccount(addrA).Balance)

	//to 是合约地址的普通转账同样转入子账户
	e2 := NewExecutor(db, 1, testBlockTime)
	receipts = e2.ExecTxList([]*types.Transaction{transferTx(privA, execaddr, 5*types.Coin)})
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, 5*types.Coin, e2.coinsAccount.LoadExecAccount(addrA, execaddr).Balance)
}

//未注册的执行器由none 兜底，只扣手续费不改状态
func TestExecNoneDriver(t *testing.T) {
	db := newTestDB(t)
	privA, addrA := genKey(t)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{genesisTx(privA, addrA, 1000*types.Coin)}))

	e1 := NewExecutor(db, 1, testBlockTime)
	tx := signTx(privA, "user.note", []byte("hello"), address.ExecAddress("user.note"))
	receipts := e1.ExecTxList([]*types.Transaction{tx})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.Equal(t, 1000*types.Coin-types.MinFee, e1.coinsAccount.LoadAccount(addrA).Balance)
}

//一局完整走完：初始化、承诺、入金、押注、开奖结算，再用查询接口对账
func TestGuessFullFlow(t *testing.T) {
	db := newTestDB(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)
	privB, addrB := genKey(t)
	execaddr := address.ExecAddress(types.GuessX)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{
		genesisTx(admin, mustAddr(admin), 100*types.Coin),
		genesisTx(privA, addrA, 100*types.Coin),
		genesisTx(privB, addrB, 100*types.Coin),
	}))

	e1 := NewExecutor(db, 1, testBlockTime)
	txs := []*types.Transaction{
		guessInitTx(admin),
		guessCommitTx(admin, types.CalcGuessCommit(7, testSalt)),
		transferToExecTx(privA, types.GuessX, 10*types.Coin),
		transferToExecTx(privB, types.GuessX, 10*types.Coin),
		guessStakeTx(privA, 7, types.Coin),
		guessStakeTx(privB, 3, types.Coin/2),
	}
	receipts := e1.ExecTxList(txs)
	require.Len(t, receipts, len(txs))
	for i, receipt := range receipts {
		assert.Equal(t, int32(types.ExecOk), receipt.Ty, "tx %d", i)
	}
	applyReceipts(t, db, receipts)
	for i, tx := range txs {
		data := &types.ReceiptData{Ty: receipts[i].Ty, Logs: receipts[i].Logs}
		set, err := e1.ExecLocal(tx, data, i)
		require.NoError(t, err)
		applyLocalSet(t, db, set)
	}

	assert.Equal(t, types.Coin+types.Coin/2, e1.coinsAccount.LoadExecAccount(execaddr, execaddr).Balance)

	e2 := NewExecutor(db, 2, testBlockTime+5)
	reveal := guessRevealTx(admin, 7, testSalt)
	receipts = e2.ExecTxList([]*types.Transaction{reveal})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	applyReceipts(t, db, receipts)
	data := &types.ReceiptData{Ty: receipts[0].Ty, Logs: receipts[0].Logs}
	set, err := e2.ExecLocal(reveal, data, 0)
	require.NoError(t, err)
	applyLocalSet(t, db, set)

	//赢家按比例独占奖池：A 押中拿走1.5个币，B 的合约余额不动
	assert.Equal(t, 10*types.Coin+types.Coin/2, e2.coinsAccount.LoadExecAccount(addrA, execaddr).Balance)
	assert.Equal(t, 10*types.Coin-types.Coin/2, e2.coinsAccount.LoadExecAccount(addrB, execaddr).Balance)
	assert.Equal(t, int64(0), e2.coinsAccount.LoadExecAccount(execaddr, execaddr).Balance)

	//查询接口直接对底层db 工作
	reply, err := Query(db, types.GuessX, "GetRound", nil)
	require.NoError(t, err)
	round := reply.(*types.ReplyGuessRound)
	assert.Equal(t, types.GuessStatusSettled, round.Round.Status)
	assert.Equal(t, int32(7), round.Round.RevealedValue)
	assert.Equal(t, int64(0), round.Pool)

	reply, err = Query(db, types.GuessX, "ListStakesByAddr", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	stakes := reply.(*types.ReplyGuessStakes)
	require.Len(t, stakes.Stakes, 1)
	assert.Equal(t, types.Coin, stakes.Stakes[0].Amount)

	reply, err = Query(db, types.GuessX, "ListPayouts", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	payouts := reply.(*types.ReplyGuessPayouts)
	require.Len(t, payouts.Payouts, 1)
	assert.Equal(t, types.Coin+types.Coin/2, payouts.Payouts[0].Share)
	assert.False(t, payouts.Payouts[0].Deferred)

	reply, err = Query(db, types.GuessX, "GetPending", types.Encode(&types.ReqGuessAddr{Addr: addrB}))
	require.NoError(t, err)
	assert.Equal(t, int64(0), reply.(*types.GuessPending).Amount)
}

//提现失败整笔回滚，待提现余额原样保留，补足奖池后重试成功
func TestGuessWithdrawRetry(t *testing.T) {
	db := newTestDB(t)
	admin, adminAddr := genKey(t)
	privA, addrA := genKey(t)
	execaddr := address.ExecAddress(types.GuessX)

	e0 := NewExecutor(db, 0, 0)
	applyReceipts(t, db, e0.ExecTxList([]*types.Transaction{
		genesisTx(admin, adminAddr, 100*types.Coin),
		genesisTx(privA, addrA, 100*types.Coin),
	}))

	//直接构造一个奖池小于应派份额的异常局面
	round := &types.GuessRound{
		Admin:      adminAddr,
		Status:     types.GuessStatusStaking,
		Commitment: types.CalcGuessCommit(7, testSalt),
	}
	require.NoError(t, db.Set(guess.RoundKey(), types.Encode(round)))
	book := &types.GuessValueBook{Value: 7, Total: 50, Participants: []string{addrA}}
	require.NoError(t, db.Set(guess.BookKey(7), types.Encode(book)))
	record := &types.GuessStakeRecord{Value: 7, Addr: addrA, Amount: 100}
	require.NoError(t, db.Set(guess.StakeKey(7, addrA), types.Encode(record)))
	seedAccounts := account.NewCoinsAccount()
	seedAccounts.SetDB(db)
	seedAccounts.SaveExecAccount(execaddr, &types.Account{Addr: execaddr, Balance: 100})

	//开奖：份额200 超过奖池100，转账失败记入待提现
	e1 := NewExecutor(db, 1, testBlockTime)
	receipts := e1.ExecTxList([]*types.Transaction{guessRevealTx(admin, 7, testSalt)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.True(t, hasLog(receipts[0], types.TyLogGuessPending))
	applyReceipts(t, db, receipts)

	pending, err := Query(db, types.GuessX, "GetPending", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	assert.Equal(t, int64(200), pending.(*types.GuessPending).Amount)

	//提现：奖池不足，交易失败只扣手续费，待提现分文未动
	e2 := NewExecutor(db, 2, testBlockTime+5)
	receipts = e2.ExecTxList([]*types.Transaction{guessWithdrawTx(privA)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecPack), receipts[0].Ty)
	assert.True(t, strings.Contains(errLogText(receipts[0]), "ErrNoBalance"))

	data, err := e2.stateDB.Get(guess.PendingKey(addrA))
	require.NoError(t, err)
	var got types.GuessPending
	require.NoError(t, types.Decode(data, &got))
	assert.Equal(t, int64(200), got.Amount)
	applyReceipts(t, db, receipts)

	//奖池补足后重试成功
	seedAccounts.SaveExecAccount(execaddr, &types.Account{Addr: execaddr, Balance: 300})
	e3 := NewExecutor(db, 3, testBlockTime+10)
	receipts = e3.ExecTxList([]*types.Transaction{guessWithdrawTx(privA)})
	require.Len(t, receipts, 1)
	assert.Equal(t, int32(types.ExecOk), receipts[0].Ty)
	assert.True(t, hasLog(receipts[0], types.TyLogGuessWithdraw))
	applyReceipts(t, db, receipts)

	assert.Equal(t, int64(200), e3.coinsAccount.LoadExecAccount(addrA, execaddr).Balance)
	assert.Equal(t, int64(100), e3.coinsAccount.LoadExecAccount(execaddr, execaddr).Balance)

	//提净之后再提报错
	e4 := NewExecutor(db, 4, testBlockTime+15)
	receipts = e4.ExecTxList([]*types.Transaction{guessWithdrawTx(privA)})
	assert.Equal(t, int32(types.ExecPack), receipts[0].Ty)
	assert.Contains(t, errLogText(receipts[0]), "ErrGuessNothingPending")
}

func mustAddr(priv crypto.PrivKey) string {
	return address.PubKeyToAddr(priv.PubKey().Bytes())
}
