// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guess

//database opeartion for executor guess
import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/guessbet/guessbet/account"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
)

//局状态全链唯一，value 的总账和单个参与者的押注分开存储
//key=mavl-guess-round
//key=mavl-guess-book:vvv
//key=mavl-guess-stake:vvv:addr
//key=mavl-guess-pending:addr

//RoundKey 局状态的key
func RoundKey() (key []byte) {
	return []byte(fmt.Sprintf("mavl-%s-round", types.ExecName(types.GuessX)))
}

//BookKey 某个猜测值总账的key
func BookKey(value int32) (key []byte) {
	return []byte(fmt.Sprintf("mavl-%s-book:%03d", types.ExecName(types.GuessX), value))
}

//StakeKey 单个参与者在某个猜测值上的押注key
func StakeKey(value int32, addr string) (key []byte) {
	return []byte(fmt.Sprintf("mavl-%s-stake:%03d:%s", types.ExecName(types.GuessX), value, addr))
}

//PendingKey 待提现余额的key
func PendingKey(addr string) (key []byte) {
	return []byte(fmt.Sprintf("mavl-%s-pending:%s", types.ExecName(types.GuessX), addr))
}

var zeroCommit [types.GuessCommitHashLen]byte

//Action 单笔guess 交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
}

//NewAction 创建action
func NewAction(g *Guess, tx *types.Transaction) *Action {
	hash := tx.Hash()
	fromaddr := tx.From()
	return &Action{g.GetCoinsAccount(), g.GetDB(), hash, fromaddr, g.GetBlockTime(), g.GetHeight(), g.GetAddr()}
}

//保存到状态数据库并返回相同内容的kv，保证落盘和回执一致
func (action *Action) saveStateKV(key []byte, msg types.Message) *types.KeyValue {
	value := types.Encode(msg)
	action.db.Set(key, value)
	return &types.KeyValue{Key: key, Value: value}
}

func (action *Action) saveRound(round *types.GuessRound) *types.KeyValue {
	return action.saveStateKV(RoundKey(), round)
}

func (action *Action) saveBook(book *types.GuessValueBook) *types.KeyValue {
	return action.saveStateKV(BookKey(book.Value), book)
}

func (action *Action) saveStake(stake *types.GuessStakeRecord) *types.KeyValue {
	return action.saveStateKV(StakeKey(stake.Value, stake.Addr), stake)
}

func (action *Action) savePending(pending *types.GuessPending) *types.KeyValue {
	return action.saveStateKV(PendingKey(pending.Addr), pending)
}

func (action *Action) readRound() (*types.GuessRound, error) {
	return readRound(action.db)
}

func (action *Action) readBook(value int32) (*types.GuessValueBook, error) {
	return readBook(action.db, value)
}

func (action *Action) readStake(value int32, addr string) (*types.GuessStakeRecord, error) {
	return readStake(action.db, value, addr)
}

func (action *Action) readPending(addr string) (*types.GuessPending, error) {
	return readPending(action.db, addr)
}

func (action *Action) getRoundLog(ty int32, round *types.GuessRound, prevStatus int32) *types.ReceiptLog {
	r := &types.ReceiptGuessRound{
		PrevStatus:    prevStatus,
		Status:        round.Status,
		Admin:         round.Admin,
		Commitment:    round.Commitment,
		RevealedValue: round.RevealedValue,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

//Init 初始化，调用者成为管理员，全局仅一次
func (action *Action) Init(init *types.GuessInit) (*types.Receipt, error) {
	_, err := action.readRound()
	if err == nil {
		glog.Error("GuessInit", "addr", action.fromaddr, "err", types.ErrGuessInited)
		return nil, types.ErrGuessInited
	}
	if err != types.ErrNotFound {
		return nil, err
	}
	round := &types.GuessRound{
		Admin:      action.fromaddr,
		Status:     types.GuessStatusAwaitCommit,
		InitHeight: action.height,
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.saveRound(round))
	logs = append(logs, action.getRoundLog(types.TyLogGuessInit, round, 0))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Commit 管理员提交承诺哈希，局进入押注阶段
func (action *Action) Commit(commit *types.GuessCommit) (*types.Receipt, error) {
	round, err := action.readRound()
	if err != nil {
		glog.Error("GuessCommit", "addr", action.fromaddr, "err", err)
		return nil, types.ErrGuessNotInited
	}
	if round.Admin != action.fromaddr {
		glog.Error("GuessCommit", "addr", action.fromaddr, "admin", round.Admin, "err", types.ErrGuessNotAdmin)
		return nil, types.ErrGuessNotAdmin
	}
	if round.Status != types.GuessStatusAwaitCommit {
		glog.Error("GuessCommit", "addr", action.fromaddr, "status", round.Status, "err", types.ErrGuessStatus)
		return nil, types.ErrGuessStatus
	}
	hash := commit.GetHash()
	if len(hash) != types.GuessCommitHashLen || bytes.Equal(hash, zeroCommit[:]) {
		glog.Error("GuessCommit", "addr", action.fromaddr, "hashlen", len(hash), "err", types.ErrGuessZeroCommit)
		return nil, types.ErrGuessZeroCommit
	}
	prevStatus := round.Status
	round.Commitment = hash
	round.Status = types.GuessStatusStaking
	round.CommitHeight = action.height
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.saveRound(round))
	logs = append(logs, action.getRoundLog(types.TyLogGuessCommit, round, prevStatus))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Stake 押注：资金从押注者的合约子账户划入奖池
func (action *Action) Stake(stake *types.GuessStake) (*types.Receipt, error) {
	round, err := action.readRound()
	if err != nil {
		glog.Error("GuessStake", "addr", action.fromaddr, "err", err)
		return nil, types.ErrGuessNotInited
	}
	if round.Status != types.GuessStatusStaking {
		glog.Error("GuessStake", "addr", action.fromaddr, "status", round.Status, "err", types.ErrGuessStatus)
		return nil, types.ErrGuessStatus
	}
	if !types.CheckGuessValue(stake.GetValue()) {
		glog.Error("GuessStake", "addr", action.fromaddr, "value", stake.GetValue(), "err", types.ErrGuessBadValue)
		return nil, types.ErrGuessBadValue
	}
	if stake.GetAmount() <= 0 {
		glog.Error("GuessStake", "addr", action.fromaddr, "amount", stake.GetAmount(), "err", types.ErrAmount)
		return nil, types.ErrAmount
	}
	book, err := action.readBook(stake.GetValue())
	if err != nil {
		return nil, err
	}
	record, err := action.readStake(stake.GetValue(), action.fromaddr)
	if err != nil {
		return nil, err
	}
	//首次押注才会进入参与者列表，老参与者追加押注不受人数上限约束
	firstStake := record.Amount == 0
	if firstStake && int32(len(book.Participants)) >= types.GetGuessParticipantLimit() {
		glog.Error("GuessStake", "addr", action.fromaddr, "value", stake.GetValue(),
			"participants", len(book.Participants), "err", types.ErrGuessTooManyPlayers)
		return nil, types.ErrGuessTooManyPlayers
	}
	receipt, err := action.coinsAccount.ExecTransfer(action.fromaddr, action.execaddr, action.execaddr, stake.GetAmount())
	if err != nil {
		glog.Error("GuessStake.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", stake.GetAmount(), "err", err)
		return nil, err
	}
	record.Amount += stake.GetAmount()
	book.Total += stake.GetAmount()
	if firstStake {
		book.Participants = append(book.Participants, action.fromaddr)
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	kv = append(kv, action.saveStake(record))
	kv = append(kv, action.saveBook(book))
	stakeLog := &types.ReceiptGuessStake{
		Addr:       action.fromaddr,
		Value:      stake.GetValue(),
		Amount:     stake.GetAmount(),
		StakeTotal: record.Amount,
		ValueTotal: book.Total,
		FirstStake: firstStake,
	}
	logs = append(logs, &types.ReceiptLog{Ty: types.TyLogGuessStake, Log: types.Encode(stakeLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Reveal 开奖：校验承诺后记录揭晓值，结算在同一笔交易内完成
func (action *Action) Reveal(reveal *types.GuessReveal) (*types.Receipt, error) {
	round, err := action.readRound()
	if err != nil {
		glog.Error("GuessReveal", "addr", action.fromaddr, "err", err)
		return nil, types.ErrGuessNotInited
	}
	if round.Admin != action.fromaddr {
		glog.Error("GuessReveal", "addr", action.fromaddr, "admin", round.Admin, "err", types.ErrGuessNotAdmin)
		return nil, types.ErrGuessNotAdmin
	}
	//AwaitCommit 阶段没有承诺可开，一样走状态错误
	if round.Status != types.GuessStatusStaking {
		glog.Error("GuessReveal", "addr", action.fromaddr, "status", round.Status, "err", types.ErrGuessStatus)
		return nil, types.ErrGuessStatus
	}
	if !types.CheckGuessValue(reveal.GetValue()) {
		glog.Error("GuessReveal", "addr", action.fromaddr, "value", reveal.GetValue(), "err", types.ErrGuessBadValue)
		return nil, types.ErrGuessBadValue
	}
	if len(reveal.GetSalt()) == 0 || len(reveal.GetSalt()) > types.GuessMaxSaltLen {
		glog.Error("GuessReveal", "addr", action.fromaddr, "saltlen", len(reveal.GetSalt()), "err", types.ErrGuessBadSalt)
		return nil, types.ErrGuessBadSalt
	}
	if !bytes.Equal(types.CalcGuessCommit(reveal.GetValue(), reveal.GetSalt()), round.Commitment) {
		glog.Error("GuessReveal", "addr", action.fromaddr, "value", reveal.GetValue(), "err", types.ErrGuessCommitMismatch)
		return nil, types.ErrGuessCommitMismatch
	}
	prevStatus := round.Status
	round.Revealed = true
	round.RevealedValue = reveal.GetValue()
	round.RevealHeight = action.height
	round.Status = types.GuessStatusRevealed
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, action.getRoundLog(types.TyLogGuessReveal, round, prevStatus))
	settleLogs, settleKV, err := action.settle(round)
	if err != nil {
		return nil, err
	}
	logs = append(logs, settleLogs...)
	kv = append(kv, settleKV...)
	//开奖和结算原子完成，落盘状态直接到已结算
	round.Status = types.GuessStatusSettled
	kv = append(kv, action.saveRound(round))
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//settle 按押注比例分配奖池，只在开奖交易内执行一次
//单个参与者的转账失败改记待提现，不中断其他人的派奖
func (action *Action) settle(round *types.GuessRound) ([]*types.ReceiptLog, []*types.KeyValue, error) {
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	pool := action.coinsAccount.LoadExecAccount(action.execaddr, action.execaddr)
	if pool.Balance == 0 {
		//奖池为空，无可分配
		return nil, nil, nil
	}
	book, err := action.readBook(round.RevealedValue)
	if err != nil {
		return nil, nil, err
	}
	if book.Total == 0 {
		//无人命中，整个奖池留给管理员回收
		return nil, nil, nil
	}
	poolBalance := pool.Balance
	for _, addr := range book.Participants {
		record, err := action.readStake(round.RevealedValue, addr)
		if err != nil {
			return nil, nil, err
		}
		if record.Amount == 0 {
			continue
		}
		share := calcShare(poolBalance, record.Amount, book.Total)
		if share == 0 {
			//粉尘不派发也不记待提现，留在奖池里
			continue
		}
		stakeAmount := record.Amount
		//先清零押注记录再转账，同一笔押注不可能拿到两次派奖
		record.Amount = 0
		kv = append(kv, action.saveStake(record))
		receipt, err := action.coinsAccount.ExecTransfer(action.execaddr, addr, action.execaddr, share)
		if err != nil {
			glog.Error("GuessSettle.ExecTransfer", "addr", addr, "execaddr", action.execaddr,
				"share", share, "err", err)
			pending, perr := action.readPending(addr)
			if perr != nil {
				return nil, nil, perr
			}
			prevPending := pending.Amount
			pending.Amount += share
			kv = append(kv, action.savePending(pending))
			payout := &types.ReceiptGuessPayout{
				Addr:        addr,
				Value:       round.RevealedValue,
				Stake:       stakeAmount,
				Share:       share,
				Deferred:    true,
				PrevPending: prevPending,
				Pending:     pending.Amount,
			}
			logs = append(logs, &types.ReceiptLog{Ty: types.TyLogGuessPending, Log: types.Encode(payout)})
			continue
		}
		logs = append(logs, receipt.Logs...)
		kv = append(kv, receipt.KV...)
		payout := &types.ReceiptGuessPayout{
			Addr:  addr,
			Value: round.RevealedValue,
			Stake: stakeAmount,
			Share: share,
		}
		logs = append(logs, &types.ReceiptLog{Ty: types.TyLogGuessPayout, Log: types.Encode(payout)})
	}
	return logs, kv, nil
}

//calcShare share = pool * stake / total 向下取整，中间乘积用大数避免溢出
func calcShare(pool, stake, total int64) int64 {
	share := new(big.Int).Mul(big.NewInt(pool), big.NewInt(stake))
	share.Div(share, big.NewInt(total))
	return share.Int64()
}

//Withdraw 提取结算失败时记入的待提现余额
func (action *Action) Withdraw(withdraw *types.GuessWithdraw) (*types.Receipt, error) {
	pending, err := action.readPending(action.fromaddr)
	if err != nil {
		return nil, err
	}
	if pending.Amount == 0 {
		glog.Error("GuessWithdraw", "addr", action.fromaddr, "err", types.ErrGuessNothingPending)
		return nil, types.ErrGuessNothingPending
	}
	amount := pending.Amount
	//先清零再转账，转账失败时整笔交易回滚，余额保持原样可以重试
	pending.Amount = 0
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	kv = append(kv, action.savePending(pending))
	receipt, err := action.coinsAccount.ExecTransfer(action.execaddr, action.fromaddr, action.execaddr, amount)
	if err != nil {
		glog.Error("GuessWithdraw.ExecTransfer", "addr", action.fromaddr, "execaddr", action.execaddr,
			"amount", amount, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	withdrawLog := &types.ReceiptGuessWithdraw{
		Addr:        action.fromaddr,
		Amount:      amount,
		PrevPending: amount,
		Pending:     0,
	}
	logs = append(logs, &types.ReceiptLog{Ty: types.TyLogGuessWithdraw, Log: types.Encode(withdrawLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//Recover 管理员一次性回收奖池的全部余额
func (action *Action) Recover(recover *types.GuessRecover) (*types.Receipt, error) {
	round, err := action.readRound()
	if err != nil {
		glog.Error("GuessRecover", "addr", action.fromaddr, "err", err)
		return nil, types.ErrGuessNotInited
	}
	if round.Admin != action.fromaddr {
		glog.Error("GuessRecover", "addr", action.fromaddr, "admin", round.Admin, "err", types.ErrGuessNotAdmin)
		return nil, types.ErrGuessNotAdmin
	}
	if round.Status != types.GuessStatusRevealed && round.Status != types.GuessStatusSettled {
		glog.Error("GuessRecover", "addr", action.fromaddr, "status", round.Status, "err", types.ErrGuessStatus)
		return nil, types.ErrGuessStatus
	}
	pool := action.coinsAccount.LoadExecAccount(action.execaddr, action.execaddr)
	if pool.Balance == 0 {
		glog.Error("GuessRecover", "addr", action.fromaddr, "err", types.ErrGuessNothingToRecover)
		return nil, types.ErrGuessNothingToRecover
	}
	amount := pool.Balance
	receipt, err := action.coinsAccount.ExecTransfer(action.execaddr, round.Admin, action.execaddr, amount)
	if err != nil {
		glog.Error("GuessRecover.ExecTransfer", "addr", round.Admin, "execaddr", action.execaddr,
			"amount", amount, "err", err)
		return nil, err
	}
	var logs []*types.ReceiptLog
	var kv []*types.KeyValue
	logs = append(logs, receipt.Logs...)
	kv = append(kv, receipt.KV...)
	recoverLog := &types.ReceiptGuessRecover{
		Admin:  round.Admin,
		Amount: amount,
	}
	logs = append(logs, &types.ReceiptLog{Ty: types.TyLogGuessRecover, Log: types.Encode(recoverLog)})
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//查询和action 共用的读状态helper，找不到时总账、押注、待提现返回零值对象
func readRound(db dbm.KV) (*types.GuessRound, error) {
	data, err := db.Get(RoundKey())
	if err != nil {
		return nil, err
	}
	var round types.GuessRound
	err = types.Decode(data, &round)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

func readBook(db dbm.KV, value int32) (*types.GuessValueBook, error) {
	data, err := db.Get(BookKey(value))
	if err == types.ErrNotFound {
		return &types.GuessValueBook{Value: value}, nil
	}
	if err != nil {
		return nil, err
	}
	var book types.GuessValueBook
	err = types.Decode(data, &book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func readStake(db dbm.KV, value int32, addr string) (*types.GuessStakeRecord, error) {
	data, err := db.Get(StakeKey(value, addr))
	if err == types.ErrNotFound {
		return &types.GuessStakeRecord{Value: value, Addr: addr}, nil
	}
	if err != nil {
		return nil, err
	}
	var stake types.GuessStakeRecord
	err = types.Decode(data, &stake)
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

func readPending(db dbm.KV, addr string) (*types.GuessPending, error) {
	data, err := db.Get(PendingKey(addr))
	if err == types.ErrNotFound {
		return &types.GuessPending{Addr: addr}, nil
	}
	if err != nil {
		return nil, err
	}
	var pending types.GuessPending
	err = types.Decode(data, &pending)
	if err != nil {
		return nil, err
	}
	return &pending, nil
}
