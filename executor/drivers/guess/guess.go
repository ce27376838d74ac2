// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guess

import (
	"fmt"

	log "github.com/inconshreveable/log15"

	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/executor/drivers"
	"github.com/guessbet/guessbet/types"
)

var glog = log.New("module", "execs.guess")

//Init 注册guess 执行器
func Init() {
	drivers.Register(newGuess().GetName(), newGuess, 0)
}

//Guess 单局commit-reveal 押注执行器，奖池挂在合约地址的子账户上
type Guess struct {
	drivers.DriverBase
}

func newGuess() drivers.Driver {
	g := &Guess{}
	g.SetChild(g)
	return g
}

//GetName 获取执行器名称
func (g *Guess) GetName() string {
	return types.ExecName(types.GuessX)
}

//GetActionName 获取action 名称
func (g *Guess) GetActionName(tx *types.Transaction) string {
	var action types.GuessAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return "unknown"
	}
	return types.GuessActionName(&action)
}

//Exec 执行guess 交易
func (g *Guess) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	_, err := g.DriverBase.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	var action types.GuessAction
	err = types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	glog.Debug("exec guess tx", "name", types.GuessActionName(&action), "height", g.GetHeight())
	actiondb := NewAction(g, tx)
	if action.Ty == types.GuessActionInit && action.GetInit() != nil {
		return actiondb.Init(action.GetInit())
	} else if action.Ty == types.GuessActionCommit && action.GetCommit() != nil {
		return actiondb.Commit(action.GetCommit())
	} else if action.Ty == types.GuessActionStake && action.GetStake() != nil {
		return actiondb.Stake(action.GetStake())
	} else if action.Ty == types.GuessActionReveal && action.GetReveal() != nil {
		return actiondb.Reveal(action.GetReveal())
	} else if action.Ty == types.GuessActionWithdraw && action.GetWithdraw() != nil {
		return actiondb.Withdraw(action.GetWithdraw())
	} else if action.Ty == types.GuessActionRecover && action.GetRecover() != nil {
		return actiondb.Recover(action.GetRecover())
	}
	return nil, types.ErrActionNotSupport
}

//ExecLocal 按回执日志维护地址维度的押注汇总和派奖历史索引
func (g *Guess) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := g.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessStake {
			var stake types.ReceiptGuessStake
			err := types.Decode(item.Log, &stake)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			summary := &types.GuessStakeSummary{
				Addr:   stake.Addr,
				Value:  stake.Value,
				Amount: stake.StakeTotal,
				Height: g.GetHeight(),
			}
			kv := &types.KeyValue{Key: calcStakeAddrKey(stake.Addr, stake.Value), Value: types.Encode(summary)}
			set.KV = append(set.KV, kv)
		} else if item.Ty == types.TyLogGuessPayout || item.Ty == types.TyLogGuessPending {
			var payout types.ReceiptGuessPayout
			err := types.Decode(item.Log, &payout)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			record := &types.GuessPayoutRecord{
				Addr:     payout.Addr,
				Share:    payout.Share,
				Deferred: payout.Deferred,
				Height:   g.GetHeight(),
			}
			kv := &types.KeyValue{Key: calcPayoutKey(payout.Addr, g.GetHeight(), index), Value: types.Encode(record)}
			set.KV = append(set.KV, kv)
		}
	}
	return set, nil
}

//ExecDelLocal 区块回滚时撤销本地索引
func (g *Guess) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := g.DriverBase.ExecDelLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogGuessStake {
			var stake types.ReceiptGuessStake
			err := types.Decode(item.Log, &stake)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			prev := stake.StakeTotal - stake.Amount
			if prev == 0 && stake.FirstStake {
				set.KV = append(set.KV, &types.KeyValue{Key: calcStakeAddrKey(stake.Addr, stake.Value), Value: nil})
				continue
			}
			summary := &types.GuessStakeSummary{
				Addr:   stake.Addr,
				Value:  stake.Value,
				Amount: prev,
				Height: g.GetHeight(),
			}
			kv := &types.KeyValue{Key: calcStakeAddrKey(stake.Addr, stake.Value), Value: types.Encode(summary)}
			set.KV = append(set.KV, kv)
		} else if item.Ty == types.TyLogGuessPayout || item.Ty == types.TyLogGuessPending {
			var payout types.ReceiptGuessPayout
			err := types.Decode(item.Log, &payout)
			if err != nil {
				panic(err) //数据错误了，已经被修改了
			}
			set.KV = append(set.KV, &types.KeyValue{Key: calcPayoutKey(payout.Addr, g.GetHeight(), index), Value: nil})
		}
	}
	return set, nil
}

//Query 查询接口
func (g *Guess) Query(funcName string, params []byte) (types.Message, error) {
	if funcName == "GetRound" {
		return g.getRound()
	} else if funcName == "GetParticipants" {
		var in types.ReqGuessValue
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return g.getParticipants(&in)
	} else if funcName == "GetValueBook" {
		var in types.ReqGuessValue
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return g.getValueBook(&in)
	} else if funcName == "GetStake" {
		var in types.ReqGuessStake
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return g.getStake(&in)
	} else if funcName == "GetPending" {
		var in types.ReqGuessAddr
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return g.getPending(&in)
	} else if funcName == "ListStakesByAddr" {
		var in types.ReqGuessAddr
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return g.listStakesByAddr(&in)
	} else if funcName == "ListPayouts" {
		var in types.ReqGuessAddr
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return g.listPayouts(&in)
	}
	return nil, types.ErrQueryNotSupport
}

func (g *Guess) getRound() (types.Message, error) {
	round, err := readRound(g.GetDB())
	if err == types.ErrNotFound {
		return nil, types.ErrGuessNotInited
	}
	if err != nil {
		return nil, err
	}
	pool := g.GetCoinsAccount().LoadExecAccount(g.GetAddr(), g.GetAddr())
	return &types.ReplyGuessRound{Round: round, Pool: pool.Balance}, nil
}

func (g *Guess) getParticipants(req *types.ReqGuessValue) (types.Message, error) {
	if !types.CheckGuessValue(req.GetValue()) {
		return nil, types.ErrGuessBadValue
	}
	book, err := readBook(g.GetDB(), req.GetValue())
	if err != nil {
		return nil, err
	}
	return &types.ReplyGuessParticipants{Value: book.Value, Participants: book.Participants}, nil
}

func (g *Guess) getValueBook(req *types.ReqGuessValue) (types.Message, error) {
	if !types.CheckGuessValue(req.GetValue()) {
		return nil, types.ErrGuessBadValue
	}
	return readBook(g.GetDB(), req.GetValue())
}

func (g *Guess) getStake(req *types.ReqGuessStake) (types.Message, error) {
	if !types.CheckGuessValue(req.GetValue()) {
		return nil, types.ErrGuessBadValue
	}
	return readStake(g.GetDB(), req.GetValue(), req.GetAddr())
}

func (g *Guess) getPending(req *types.ReqGuessAddr) (types.Message, error) {
	return readPending(g.GetDB(), req.GetAddr())
}

func (g *Guess) listStakesByAddr(req *types.ReqGuessAddr) (types.Message, error) {
	values, err := g.GetLocalDB().List(calcStakeAddrPrefix(req.GetAddr()), nil, 0, dbm.ListASC)
	if err == types.ErrNotFound {
		return &types.ReplyGuessStakes{}, nil
	}
	if err != nil {
		return nil, err
	}
	var reply types.ReplyGuessStakes
	for _, value := range values {
		var summary types.GuessStakeSummary
		err = types.Decode(value, &summary)
		if err != nil {
			return nil, err
		}
		reply.Stakes = append(reply.Stakes, &summary)
	}
	return &reply, nil
}

func (g *Guess) listPayouts(req *types.ReqGuessAddr) (types.Message, error) {
	values, err := g.GetLocalDB().List(calcPayoutPrefix(req.GetAddr()), nil, 0, dbm.ListASC)
	if err == types.ErrNotFound {
		return &types.ReplyGuessPayouts{}, nil
	}
	if err != nil {
		return nil, err
	}
	var reply types.ReplyGuessPayouts
	for _, value := range values {
		var record types.GuessPayoutRecord
		err = types.Decode(value, &record)
		if err != nil {
			return nil, err
		}
		reply.Payouts = append(reply.Payouts, &record)
	}
	return &reply, nil
}

func calcStakeAddrKey(addr string, value int32) []byte {
	return []byte(fmt.Sprintf("LODB-%s-stake-addr:%s:%03d", types.ExecName(types.GuessX), addr, value))
}

func calcStakeAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-stake-addr:%s:", types.ExecName(types.GuessX), addr))
}

func calcPayoutKey(addr string, height int64, index int) []byte {
	return []byte(fmt.Sprintf("LODB-%s-payout:%s:%018d", types.ExecName(types.GuessX), addr,
		height*types.MaxTxsPerBlock+int64(index)))
}

func calcPayoutPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("LODB-%s-payout:%s:", types.ExecName(types.GuessX), addr))
}
