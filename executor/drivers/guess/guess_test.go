// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guessbet/guessbet/account"
	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/common/crypto"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"

	_ "github.com/guessbet/guessbet/common/crypto/init"
)

const (
	testHeight    = int64(10)
	testBlockTime = int64(1539918074)
)

var testSalt = []byte("pepper-2018")

//执行器本地数据库在单测里用memdb 直接充当
type testLocalDB struct {
	*dbm.GoMemDB
}

func (l *testLocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := dbm.NewListHelper(l.GoMemDB).List(prefix, key, count, direction)
	if values == nil {
		return nil, types.ErrNotFound
	}
	return values, nil
}

type execEnv struct {
	db       *dbm.GoMemDB
	ldb      *dbm.GoMemDB
	driver   *Guess
	accounts *account.DB
	execaddr string
}

func initEnv(t *testing.T) *execEnv {
	db, err := dbm.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	ldb, err := dbm.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	g := newGuess().(*Guess)
	g.SetDB(db)
	g.SetLocalDB(&testLocalDB{ldb})
	g.SetQueryDB(db)
	g.SetEnv(testHeight, testBlockTime)
	accounts := account.NewCoinsAccount()
	accounts.SetDB(db)
	return &execEnv{db: db, ldb: ldb, driver: g, accounts: accounts, execaddr: g.GetAddr()}
}

func (e *execEnv) fund(t *testing.T, addr string, amount int64) {
	_, err := e.accounts.ExecDeposit(addr, e.execaddr, amount)
	require.NoError(t, err)
}

func (e *execEnv) execBalance(addr string) int64 {
	return e.accounts.LoadExecAccount(addr, e.execaddr).GetBalance()
}

func (e *execEnv) poolBalance() int64 {
	return e.execBalance(e.execaddr)
}

func genKey(t *testing.T) (crypto.PrivKey, string) {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv, address.PubKeyToAddr(priv.PubKey().Bytes())
}

func guessTx(priv crypto.PrivKey, action *types.GuessAction) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(types.GuessX),
		Payload: types.Encode(action),
		Fee:     types.MinFee,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(types.GuessX),
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func initTx(priv crypto.PrivKey) *types.Transaction {
	action := &types.GuessAction{
		Ty:    types.GuessActionInit,
		Value: &types.GuessAction_Init{Init: &types.GuessInit{}},
	}
	return guessTx(priv, action)
}

func commitTx(priv crypto.PrivKey, hash []byte) *types.Transaction {
	action := &types.GuessAction{
		Ty:    types.GuessActionCommit,
		Value: &types.GuessAction_Commit{Commit: &types.GuessCommit{Hash: hash}},
	}
	return guessTx(priv, action)
}

func stakeTx(priv crypto.PrivKey, value int32, amount int64) *types.Transaction {
	action := &types.GuessAction{
		Ty:    types.GuessActionStake,
		Value: &types.GuessAction_Stake{Stake: &types.GuessStake{Value: value, Amount: amount}},
	}
	return guessTx(priv, action)
}

func revealTx(priv crypto.PrivKey, value int32, salt []byte) *types.Transaction {
	action := &types.GuessAction{
		Ty:    types.GuessActionReveal,
		Value: &types.GuessAction_Reveal{Reveal: &types.GuessReveal{Value: value, Salt: salt}},
	}
	return guessTx(priv, action)
}

func withdrawTx(priv crypto.PrivKey) *types.Transaction {
	action := &types.GuessAction{
		Ty:    types.GuessActionWithdraw,
		Value: &types.GuessAction_Withdraw{Withdraw: &types.GuessWithdraw{}},
	}
	return guessTx(priv, action)
}

func recoverTx(priv crypto.PrivKey) *types.Transaction {
	action := &types.GuessAction{
		Ty:    types.GuessActionRecover,
		Value: &types.GuessAction_Recover{Recover: &types.GuessRecover{}},
	}
	return guessTx(priv, action)
}

//初始化到押注阶段的公共铺垫
func setupStaking(t *testing.T, env *execEnv, admin crypto.PrivKey, value int32) {
	_, err := env.driver.Exec(initTx(admin), 0)
	require.NoError(t, err)
	_, err = env.driver.Exec(commitTx(admin, types.CalcGuessCommit(value, testSalt)), 0)
	require.NoError(t, err)
}

func TestGuessInit(t *testing.T) {
	env := initEnv(t)
	admin, adminAddr := genKey(t)
	other, _ := genKey(t)

	receipt, err := env.driver.Exec(initTx(admin), 0)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGuessInit), receipt.Logs[0].Ty)

	round, err := readRound(env.db)
	require.NoError(t, err)
	assert.Equal(t, adminAddr, round.Admin)
	assert.Equal(t, types.GuessStatusAwaitCommit, round.Status)
	assert.Equal(t, testHeight, round.InitHeight)

	//全局仅一局，管理员自己重复初始化也不行
	_, err = env.driver.Exec(initTx(other), 0)
	assert.Equal(t, types.ErrGuessInited, err)
	_, err = env.driver.Exec(initTx(admin), 0)
	assert.Equal(t, types.ErrGuessInited, err)
}

func TestGuessCommit(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	other, _ := genKey(t)
	hash := types.CalcGuessCommit(7, testSalt)

	//未初始化
	_, err := env.driver.Exec(commitTx(admin, hash), 0)
	assert.Equal(t, types.ErrGuessNotInited, err)

	_, err = env.driver.Exec(initTx(admin), 0)
	require.NoError(t, err)

	//非管理员
	_, err = env.driver.Exec(commitTx(other, hash), 0)
	assert.Equal(t, types.ErrGuessNotAdmin, err)

	//哈希长度不对
	_, err = env.driver.Exec(commitTx(admin, hash[:31]), 0)
	assert.Equal(t, types.ErrGuessZeroCommit, err)

	//全零哈希
	_, err = env.driver.Exec(commitTx(admin, make([]byte, types.GuessCommitHashLen)), 0)
	assert.Equal(t, types.ErrGuessZeroCommit, err)

	receipt, err := env.driver.Exec(commitTx(admin, hash), 0)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGuessCommit), receipt.Logs[0].Ty)
	var commitLog types.ReceiptGuessRound
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &commitLog))
	assert.Equal(t, types.GuessStatusAwaitCommit, commitLog.PrevStatus)
	assert.Equal(t, types.GuessStatusStaking, commitLog.Status)

	round, err := readRound(env.db)
	require.NoError(t, err)
	assert.Equal(t, types.GuessStatusStaking, round.Status)
	assert.Equal(t, hash, round.Commitment)
	assert.Equal(t, testHeight, round.CommitHeight)

	//承诺只能提交一次
	_, err = env.driver.Exec(commitTx(admin, hash), 0)
	assert.Equal(t, types.ErrGuessStatus, err)
}

func TestGuessStake(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)

	_, err := env.driver.Exec(initTx(admin), 0)
	require.NoError(t, err)

	//押注阶段还没开
	_, err = env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	assert.Equal(t, types.ErrGuessStatus, err)

	_, err = env.driver.Exec(commitTx(admin, types.CalcGuessCommit(7, testSalt)), 0)
	require.NoError(t, err)

	//值域越界
	_, err = env.driver.Exec(stakeTx(privA, 256, types.Coin), 0)
	assert.Equal(t, types.ErrGuessBadValue, err)
	_, err = env.driver.Exec(stakeTx(privA, -1, types.Coin), 0)
	assert.Equal(t, types.ErrGuessBadValue, err)

	//金额非正
	_, err = env.driver.Exec(stakeTx(privA, 7, 0), 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = env.driver.Exec(stakeTx(privA, 7, -types.Coin), 0)
	assert.Equal(t, types.ErrAmount, err)

	//没有余额
	_, err = env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	assert.Equal(t, types.ErrNoBalance, err)

	env.fund(t, addrA, 10*types.Coin)
	receipt, err := env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)

	stakeLog := findStakeLog(t, receipt)
	assert.Equal(t, addrA, stakeLog.Addr)
	assert.Equal(t, int32(7), stakeLog.Value)
	assert.Equal(t, types.Coin, stakeLog.Amount)
	assert.Equal(t, types.Coin, stakeLog.StakeTotal)
	assert.Equal(t, types.Coin, stakeLog.ValueTotal)
	assert.True(t, stakeLog.FirstStake)

	assert.Equal(t, 9*types.Coin, env.execBalance(addrA))
	assert.Equal(t, types.Coin, env.poolBalance())

	//追加押注不再进参与者列表
	receipt, err = env.driver.Exec(stakeTx(privA, 7, types.Coin/2), 0)
	require.NoError(t, err)
	stakeLog = findStakeLog(t, receipt)
	assert.False(t, stakeLog.FirstStake)
	assert.Equal(t, types.Coin+types.Coin/2, stakeLog.StakeTotal)

	book, err := readBook(env.db, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{addrA}, book.Participants)
	assert.Equal(t, types.Coin+types.Coin/2, book.Total)

	record, err := readStake(env.db, 7, addrA)
	require.NoError(t, err)
	assert.Equal(t, types.Coin+types.Coin/2, record.Amount)
}

//三名玩家在同一个值上交错追押：每一步之后该值的累计总额都等于各人押注记录之和
func TestGuessInterleavedStakes(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	setupStaking(t, env, admin, 7)

	privA, addrA := genKey(t)
	privB, addrB := genKey(t)
	privC, addrC := genKey(t)
	for _, addr := range []string{addrA, addrB, addrC} {
		env.fund(t, addr, 10*types.Coin)
	}

	steps := []struct {
		priv   crypto.PrivKey
		amount int64
	}{
		{privA, 3 * types.Coin},
		{privB, types.Coin},
		{privA, 2 * types.Coin},
		{privC, 5 * types.Coin},
		{privB, types.Coin / 2},
		{privA, types.Coin / 4},
	}
	for i, step := range steps {
		_, err := env.driver.Exec(stakeTx(step.priv, 7, step.amount), i)
		require.NoError(t, err)

		book, err := readBook(env.db, 7)
		require.NoError(t, err)
		var sum int64
		for _, addr := range book.Participants {
			record, err := readStake(env.db, 7, addr)
			require.NoError(t, err)
			sum += record.Amount
		}
		assert.Equal(t, book.Total, sum)
		assert.Equal(t, book.Total, env.poolBalance())
	}

	//参与者按首次押注的顺序入列，追押不重复
	book, err := readBook(env.db, 7)
	require.NoError(t, err)
	assert.Equal(t, []string{addrA, addrB, addrC}, book.Participants)
	assert.Equal(t, 11*types.Coin+3*types.Coin/4, book.Total)
}

func findStakeLog(t *testing.T, receipt *types.Receipt) *types.ReceiptGuessStake {
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessStake {
			var stake types.ReceiptGuessStake
			require.NoError(t, types.Decode(item.Log, &stake))
			return &stake
		}
	}
	t.Fatal("stake log not found")
	return nil
}

func findLogTypes(receipt *types.Receipt) map[int32]int {
	tys := make(map[int32]int)
	for _, item := range receipt.Logs {
		tys[item.Ty]++
	}
	return tys
}

//两人押不同值，开奖后赢家按押注比例独吞奖池，输家的押注记录原样保留
func TestGuessRevealSettle(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)
	privB, addrB := genKey(t)
	setupStaking(t, env, admin, 7)

	env.fund(t, addrA, 10*types.Coin)
	env.fund(t, addrB, 10*types.Coin)
	_, err := env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)
	_, err = env.driver.Exec(stakeTx(privB, 3, types.Coin/2), 0)
	require.NoError(t, err)
	require.Equal(t, types.Coin+types.Coin/2, env.poolBalance())

	//非管理员不能开奖
	_, err = env.driver.Exec(revealTx(privA, 7, testSalt), 0)
	assert.Equal(t, types.ErrGuessNotAdmin, err)

	receipt, err := env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)

	tys := findLogTypes(receipt)
	assert.Equal(t, 1, tys[types.TyLogGuessReveal])
	assert.Equal(t, 1, tys[types.TyLogGuessPayout])
	assert.Equal(t, 0, tys[types.TyLogGuessPending])

	//开奖日志记录的是开奖瞬间的状态，落盘状态是结算完成
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessReveal {
			var roundLog types.ReceiptGuessRound
			require.NoError(t, types.Decode(item.Log, &roundLog))
			assert.Equal(t, types.GuessStatusStaking, roundLog.PrevStatus)
			assert.Equal(t, types.GuessStatusRevealed, roundLog.Status)
			assert.Equal(t, int32(7), roundLog.RevealedValue)
		}
		if item.Ty == types.TyLogGuessPayout {
			var payout types.ReceiptGuessPayout
			require.NoError(t, types.Decode(item.Log, &payout))
			assert.Equal(t, addrA, payout.Addr)
			assert.Equal(t, types.Coin, payout.Stake)
			assert.Equal(t, types.Coin+types.Coin/2, payout.Share)
			assert.False(t, payout.Deferred)
		}
	}

	round, err := readRound(env.db)
	require.NoError(t, err)
	assert.Equal(t, types.GuessStatusSettled, round.Status)
	assert.True(t, round.Revealed)
	assert.Equal(t, int32(7), round.RevealedValue)
	assert.Equal(t, testHeight, round.RevealHeight)

	//赢家拿走整个奖池
	assert.Equal(t, int64(0), env.poolBalance())
	assert.Equal(t, 9*types.Coin+types.Coin+types.Coin/2, env.execBalance(addrA))

	//赢家押注记录清零，输家记录不动
	recordA, err := readStake(env.db, 7, addrA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), recordA.Amount)
	recordB, err := readStake(env.db, 3, addrB)
	require.NoError(t, err)
	assert.Equal(t, types.Coin/2, recordB.Amount)

	//结算后不能再押注、再开奖
	_, err = env.driver.Exec(stakeTx(privB, 3, types.Coin), 0)
	assert.Equal(t, types.ErrGuessStatus, err)
	_, err = env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	assert.Equal(t, types.ErrGuessStatus, err)
}

func TestGuessRevealMismatch(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)
	setupStaking(t, env, admin, 7)
	env.fund(t, addrA, 10*types.Coin)
	_, err := env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)

	//值或盐对不上承诺都只报错，局面不动
	_, err = env.driver.Exec(revealTx(admin, 8, testSalt), 0)
	assert.Equal(t, types.ErrGuessCommitMismatch, err)
	_, err = env.driver.Exec(revealTx(admin, 7, []byte("wrong-salt")), 0)
	assert.Equal(t, types.ErrGuessCommitMismatch, err)

	//盐的长度限制
	_, err = env.driver.Exec(revealTx(admin, 7, nil), 0)
	assert.Equal(t, types.ErrGuessBadSalt, err)
	longSalt := make([]byte, types.GuessMaxSaltLen+1)
	_, err = env.driver.Exec(revealTx(admin, 7, longSalt), 0)
	assert.Equal(t, types.ErrGuessBadSalt, err)

	//值域越界
	_, err = env.driver.Exec(revealTx(admin, 300, testSalt), 0)
	assert.Equal(t, types.ErrGuessBadValue, err)

	round, err := readRound(env.db)
	require.NoError(t, err)
	assert.Equal(t, types.GuessStatusStaking, round.Status)
	assert.False(t, round.Revealed)
	assert.Equal(t, types.Coin, env.poolBalance())

	//改对值和盐即可开奖
	_, err = env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	require.NoError(t, err)
}

func TestGuessRevealBeforeCommit(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	_, err := env.driver.Exec(initTx(admin), 0)
	require.NoError(t, err)

	//没有承诺可开
	_, err = env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	assert.Equal(t, types.ErrGuessStatus, err)
}

func TestGuessNobodyWonRecover(t *testing.T) {
	env := initEnv(t)
	admin, adminAddr := genKey(t)
	privA, addrA := genKey(t)
	privB, addrB := genKey(t)
	setupStaking(t, env, admin, 7)
	env.fund(t, addrA, 10*types.Coin)
	env.fund(t, addrB, 10*types.Coin)
	_, err := env.driver.Exec(stakeTx(privA, 3, types.Coin), 0)
	require.NoError(t, err)
	_, err = env.driver.Exec(stakeTx(privB, 5, 2*types.Coin), 0)
	require.NoError(t, err)

	//开奖阶段还没到，不能回收
	_, err = env.driver.Exec(recoverTx(admin), 0)
	assert.Equal(t, types.ErrGuessStatus, err)

	receipt, err := env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	require.NoError(t, err)
	//无人命中，没有派奖日志
	tys := findLogTypes(receipt)
	assert.Equal(t, 0, tys[types.TyLogGuessPayout])
	assert.Equal(t, 0, tys[types.TyLogGuessPending])
	assert.Equal(t, 3*types.Coin, env.poolBalance())

	//非管理员不能回收
	_, err = env.driver.Exec(recoverTx(privA), 0)
	assert.Equal(t, types.ErrGuessNotAdmin, err)

	receipt, err = env.driver.Exec(recoverTx(admin), 0)
	require.NoError(t, err)
	tys = findLogTypes(receipt)
	assert.Equal(t, 1, tys[types.TyLogGuessRecover])
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessRecover {
			var recoverLog types.ReceiptGuessRecover
			require.NoError(t, types.Decode(item.Log, &recoverLog))
			assert.Equal(t, adminAddr, recoverLog.Admin)
			assert.Equal(t, 3*types.Coin, recoverLog.Amount)
		}
	}
	assert.Equal(t, int64(0), env.poolBalance())
	assert.Equal(t, 3*types.Coin, env.execBalance(adminAddr))

	//奖池已空，二次回收报错
	_, err = env.driver.Exec(recoverTx(admin), 0)
	assert.Equal(t, types.ErrGuessNothingToRecover, err)
}

//份额向下取整为零的参与者跳过派奖，押注记录不清零
func TestGuessDustShare(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	_, addrA := genKey(t)
	_, addrB := genKey(t)
	setupStaking(t, env, admin, 7)

	//直接构造奖池小于命中总额的局面
	book := &types.GuessValueBook{Value: 7, Total: 1000, Participants: []string{addrA, addrB}}
	require.NoError(t, env.db.Set(BookKey(7), types.Encode(book)))
	require.NoError(t, env.db.Set(StakeKey(7, addrA), types.Encode(&types.GuessStakeRecord{Value: 7, Addr: addrA, Amount: 999})))
	require.NoError(t, env.db.Set(StakeKey(7, addrB), types.Encode(&types.GuessStakeRecord{Value: 7, Addr: addrB, Amount: 1})))
	env.accounts.SaveExecAccount(env.execaddr, &types.Account{Addr: env.execaddr, Balance: 500})

	receipt, err := env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	require.NoError(t, err)
	tys := findLogTypes(receipt)
	assert.Equal(t, 1, tys[types.TyLogGuessPayout])
	assert.Equal(t, 0, tys[types.TyLogGuessPending])

	//A 拿到floor(500*999/1000)=499，B 份额为零被跳过
	assert.Equal(t, int64(499), env.execBalance(addrA))
	assert.Equal(t, int64(1), env.poolBalance())

	recordA, err := readStake(env.db, 7, addrA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), recordA.Amount)
	recordB, err := readStake(env.db, 7, addrB)
	require.NoError(t, err)
	assert.Equal(t, int64(1), recordB.Amount)

	pendingB, err := readPending(env.db, addrB)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pendingB.Amount)
}

//转账原语拒绝时份额转入待提现，结算流程不中断
func TestGuessPendingOnTransferFailure(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)
	setupStaking(t, env, admin, 7)
	env.fund(t, addrA, 10*types.Coin)
	_, err := env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)

	//奖池撑到转账上限，份额会被转账检查拒绝
	env.accounts.SaveExecAccount(env.execaddr, &types.Account{Addr: env.execaddr, Balance: types.MaxCoin})

	receipt, err := env.driver.Exec(revealTx(admin, 7, testSalt), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	tys := findLogTypes(receipt)
	assert.Equal(t, 0, tys[types.TyLogGuessPayout])
	assert.Equal(t, 1, tys[types.TyLogGuessPending])

	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessPending {
			var payout types.ReceiptGuessPayout
			require.NoError(t, types.Decode(item.Log, &payout))
			assert.Equal(t, addrA, payout.Addr)
			assert.Equal(t, types.MaxCoin, payout.Share)
			assert.True(t, payout.Deferred)
			assert.Equal(t, int64(0), payout.PrevPending)
			assert.Equal(t, types.MaxCoin, payout.Pending)
		}
	}

	//份额一分没转走，记到待提现账上
	assert.Equal(t, types.MaxCoin, env.poolBalance())
	pending, err := readPending(env.db, addrA)
	require.NoError(t, err)
	assert.Equal(t, types.MaxCoin, pending.Amount)

	//押注记录照样清零，同一笔押注不会再次结算
	record, err := readStake(env.db, 7, addrA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), record.Amount)

	round, err := readRound(env.db)
	require.NoError(t, err)
	assert.Equal(t, types.GuessStatusSettled, round.Status)
}

func TestGuessWithdraw(t *testing.T) {
	env := initEnv(t)
	privA, addrA := genKey(t)

	//无待提现
	_, err := env.driver.Exec(withdrawTx(privA), 0)
	assert.Equal(t, types.ErrGuessNothingPending, err)

	pending := &types.GuessPending{Addr: addrA, Amount: 500}
	require.NoError(t, env.db.Set(PendingKey(addrA), types.Encode(pending)))
	env.accounts.SaveExecAccount(env.execaddr, &types.Account{Addr: env.execaddr, Balance: 500})

	receipt, err := env.driver.Exec(withdrawTx(privA), 0)
	require.NoError(t, err)
	tys := findLogTypes(receipt)
	assert.Equal(t, 1, tys[types.TyLogGuessWithdraw])
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessWithdraw {
			var withdrawLog types.ReceiptGuessWithdraw
			require.NoError(t, types.Decode(item.Log, &withdrawLog))
			assert.Equal(t, addrA, withdrawLog.Addr)
			assert.Equal(t, int64(500), withdrawLog.Amount)
			assert.Equal(t, int64(500), withdrawLog.PrevPending)
			assert.Equal(t, int64(0), withdrawLog.Pending)
		}
	}

	assert.Equal(t, int64(500), env.execBalance(addrA))
	assert.Equal(t, int64(0), env.poolBalance())
	got, err := readPending(env.db, addrA)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Amount)

	//一次提净，二次提现报错
	_, err = env.driver.Exec(withdrawTx(privA), 0)
	assert.Equal(t, types.ErrGuessNothingPending, err)
}

func TestGuessParticipantLimit(t *testing.T) {
	old := types.GetGuessParticipantLimit()
	types.SetGuessParticipantLimit(2)
	defer types.SetGuessParticipantLimit(old)

	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)
	privB, addrB := genKey(t)
	privC, addrC := genKey(t)
	setupStaking(t, env, admin, 7)
	env.fund(t, addrA, 10*types.Coin)
	env.fund(t, addrB, 10*types.Coin)
	env.fund(t, addrC, 10*types.Coin)

	_, err := env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)
	_, err = env.driver.Exec(stakeTx(privB, 7, types.Coin), 0)
	require.NoError(t, err)

	//同值人数已满，新人进不来
	_, err = env.driver.Exec(stakeTx(privC, 7, types.Coin), 0)
	assert.Equal(t, types.ErrGuessTooManyPlayers, err)

	//老参与者追加不受限
	_, err = env.driver.Exec(stakeTx(privB, 7, types.Coin), 0)
	require.NoError(t, err)

	//上限按猜测值分别计
	_, err = env.driver.Exec(stakeTx(privC, 3, types.Coin), 0)
	require.NoError(t, err)
}

func TestCalcShare(t *testing.T) {
	assert.Equal(t, int64(150), calcShare(150, 100, 100))
	assert.Equal(t, int64(0), calcShare(500, 1, 1000))
	assert.Equal(t, int64(10), calcShare(7, 3, 2))
	//中间乘积超出int64，靠大数运算保证结果正确
	assert.Equal(t, int64(9e16), calcShare(9e16, 9e16, 9e16))
	assert.Equal(t, int64(45000000000000000), calcShare(9e16, 5e16, 1e17))
}

//押注和派奖的本地索引随回执建立，再随回执撤销
func TestGuessLocalIndex(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)
	setupStaking(t, env, admin, 7)
	env.fund(t, addrA, 10*types.Coin)

	applySet := func(set *types.LocalDBSet) {
		for _, kv := range set.KV {
			if kv.Value == nil {
				require.NoError(t, env.ldb.Delete(kv.Key))
				continue
			}
			require.NoError(t, env.ldb.Set(kv.Key, kv.Value))
		}
	}

	tx1 := stakeTx(privA, 7, types.Coin)
	receipt1, err := env.driver.Exec(tx1, 0)
	require.NoError(t, err)
	data1 := &types.ReceiptData{Ty: receipt1.Ty, Logs: receipt1.Logs}
	set, err := env.driver.ExecLocal(tx1, data1, 0)
	require.NoError(t, err)
	applySet(set)

	reply, err := env.driver.Query("ListStakesByAddr", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	stakes := reply.(*types.ReplyGuessStakes)
	require.Len(t, stakes.Stakes, 1)
	assert.Equal(t, types.Coin, stakes.Stakes[0].Amount)
	assert.Equal(t, int32(7), stakes.Stakes[0].Value)

	//追加押注更新同一条汇总
	tx2 := stakeTx(privA, 7, types.Coin/2)
	receipt2, err := env.driver.Exec(tx2, 1)
	require.NoError(t, err)
	data2 := &types.ReceiptData{Ty: receipt2.Ty, Logs: receipt2.Logs}
	set, err = env.driver.ExecLocal(tx2, data2, 1)
	require.NoError(t, err)
	applySet(set)

	reply, err = env.driver.Query("ListStakesByAddr", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	stakes = reply.(*types.ReplyGuessStakes)
	require.Len(t, stakes.Stakes, 1)
	assert.Equal(t, types.Coin+types.Coin/2, stakes.Stakes[0].Amount)

	//回滚第二笔，汇总退回首笔金额
	set, err = env.driver.ExecDelLocal(tx2, data2, 1)
	require.NoError(t, err)
	applySet(set)
	reply, err = env.driver.Query("ListStakesByAddr", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	stakes = reply.(*types.ReplyGuessStakes)
	require.Len(t, stakes.Stakes, 1)
	assert.Equal(t, types.Coin, stakes.Stakes[0].Amount)

	//回滚首笔，索引整条消失
	set, err = env.driver.ExecDelLocal(tx1, data1, 0)
	require.NoError(t, err)
	applySet(set)
	reply, err = env.driver.Query("ListStakesByAddr", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	stakes = reply.(*types.ReplyGuessStakes)
	assert.Len(t, stakes.Stakes, 0)

	//重放押注后开奖，派奖历史进索引
	receipt1, err = env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)
	txR := revealTx(admin, 7, testSalt)
	receiptR, err := env.driver.Exec(txR, 1)
	require.NoError(t, err)
	dataR := &types.ReceiptData{Ty: receiptR.Ty, Logs: receiptR.Logs}
	set, err = env.driver.ExecLocal(txR, dataR, 1)
	require.NoError(t, err)
	applySet(set)

	reply, err = env.driver.Query("ListPayouts", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	payouts := reply.(*types.ReplyGuessPayouts)
	require.Len(t, payouts.Payouts, 1)
	assert.Equal(t, addrA, payouts.Payouts[0].Addr)
	assert.False(t, payouts.Payouts[0].Deferred)
	assert.Equal(t, testHeight, payouts.Payouts[0].Height)

	set, err = env.driver.ExecDelLocal(txR, dataR, 1)
	require.NoError(t, err)
	applySet(set)
	reply, err = env.driver.Query("ListPayouts", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	payouts = reply.(*types.ReplyGuessPayouts)
	assert.Len(t, payouts.Payouts, 0)
}

func TestGuessQueries(t *testing.T) {
	env := initEnv(t)
	admin, _ := genKey(t)
	privA, addrA := genKey(t)

	//未初始化时查局状态报错
	_, err := env.driver.Query("GetRound", nil)
	assert.Equal(t, types.ErrGuessNotInited, err)

	setupStaking(t, env, admin, 7)
	env.fund(t, addrA, 10*types.Coin)
	_, err = env.driver.Exec(stakeTx(privA, 7, types.Coin), 0)
	require.NoError(t, err)

	reply, err := env.driver.Query("GetRound", nil)
	require.NoError(t, err)
	roundReply := reply.(*types.ReplyGuessRound)
	assert.Equal(t, types.GuessStatusStaking, roundReply.Round.Status)
	assert.Equal(t, types.Coin, roundReply.Pool)

	reply, err = env.driver.Query("GetParticipants", types.Encode(&types.ReqGuessValue{Value: 7}))
	require.NoError(t, err)
	participants := reply.(*types.ReplyGuessParticipants)
	assert.Equal(t, []string{addrA}, participants.Participants)

	//没人押过的值返回空列表
	reply, err = env.driver.Query("GetParticipants", types.Encode(&types.ReqGuessValue{Value: 9}))
	require.NoError(t, err)
	participants = reply.(*types.ReplyGuessParticipants)
	assert.Len(t, participants.Participants, 0)

	reply, err = env.driver.Query("GetValueBook", types.Encode(&types.ReqGuessValue{Value: 7}))
	require.NoError(t, err)
	book := reply.(*types.GuessValueBook)
	assert.Equal(t, types.Coin, book.Total)

	reply, err = env.driver.Query("GetStake", types.Encode(&types.ReqGuessStake{Value: 7, Addr: addrA}))
	require.NoError(t, err)
	record := reply.(*types.GuessStakeRecord)
	assert.Equal(t, types.Coin, record.Amount)

	reply, err = env.driver.Query("GetPending", types.Encode(&types.ReqGuessAddr{Addr: addrA}))
	require.NoError(t, err)
	pending := reply.(*types.GuessPending)
	assert.Equal(t, int64(0), pending.Amount)

	//值域检查
	_, err = env.driver.Query("GetParticipants", types.Encode(&types.ReqGuessValue{Value: 256}))
	assert.Equal(t, types.ErrGuessBadValue, err)
	_, err = env.driver.Query("GetValueBook", types.Encode(&types.ReqGuessValue{Value: -1}))
	assert.Equal(t, types.ErrGuessBadValue, err)

	_, err = env.driver.Query("NoSuchFunc", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestGuessActionNameAndDecode(t *testing.T) {
	env := initEnv(t)
	priv, _ := genKey(t)
	assert.Equal(t, "init", env.driver.GetActionName(initTx(priv)))
	assert.Equal(t, "stake", env.driver.GetActionName(stakeTx(priv, 7, types.Coin)))
	assert.Equal(t, "reveal", env.driver.GetActionName(revealTx(priv, 7, testSalt)))

	//未知action
	action := &types.GuessAction{Ty: 100}
	_, err := env.driver.Exec(guessTx(priv, action), 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
}
