// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行环境：按序执行区块内的交易，
// 生成交易回报和本地索引，状态变更以回报中的KV 为准由账本落盘
package executor

import (
	"sync"

	"github.com/golang/protobuf/proto"
	"github.com/guessbet/guessbet/account"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/executor/drivers"
	"github.com/guessbet/guessbet/executor/drivers/coins"
	"github.com/guessbet/guessbet/executor/drivers/guess"
	"github.com/guessbet/guessbet/executor/drivers/none"
	"github.com/guessbet/guessbet/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "executor")

var runonce sync.Once

//执行器初始化，和链的初始化顺序有关系，不能随便调整
func execInit() {
	coins.Init()
	none.Init()
	guess.Init()
}

//Executor 单个区块的执行环境
type Executor struct {
	stateDB      *StateDB
	localDB      dbm.KVDB
	coinsAccount *account.DB
	height       int64
	blocktime    int64
}

//NewExecutor 创建区块执行环境，同一个Executor 只能用于一个区块
func NewExecutor(db dbm.DB, height, blocktime int64) *Executor {
	runonce.Do(execInit)
	e := &Executor{
		stateDB:      NewStateDB(db),
		localDB:      NewLocalDB(db),
		coinsAccount: account.NewCoinsAccount(),
		height:       height,
		blocktime:    blocktime,
	}
	e.coinsAccount.SetDB(e.stateDB)
	return e
}

//ExecTxList 依次执行交易列表，单笔交易的失败不影响其他交易
func (e *Executor) ExecTxList(txs []*types.Transaction) []*types.Receipt {
	receipts := make([]*types.Receipt, 0, len(txs))
	for index, tx := range txs {
		receipts = append(receipts, e.execTx(tx, index))
	}
	return receipts
}

//execTx 先收手续费，交易本身在事务中执行，失败只回滚交易本身的变更
func (e *Executor) execTx(tx *types.Transaction, index int) *types.Receipt {
	if e.height == 0 {
		//genesis block 不检查手续费
		feelog := &types.Receipt{Ty: types.ExecPack}
		receipt, err := e.execTxOne(feelog, tx, index)
		if err != nil {
			panic(err)
		}
		return receipt
	}
	//交易检查规则：过期、最低手续费、执行器自定义检查
	err := e.checkTx(tx, index)
	if err != nil {
		return types.NewErrReceipt(err)
	}
	//处理交易手续费(先把手续费收了)
	feelog, err := e.processFee(tx)
	if err != nil {
		return types.NewErrReceipt(err)
	}
	e.begin()
	feelog, err = e.execTxOne(feelog, tx, index)
	if err != nil {
		e.rollback()
	} else {
		e.commit()
	}
	return feelog
}

func (e *Executor) execTxOne(feelog *types.Receipt, tx *types.Transaction, index int) (*types.Receipt, error) {
	receipt, err := e.Exec(tx, index)
	if err != nil {
		elog.Error("exec tx error = ", "err", err, "exector", string(tx.Execer), "action", tx.ActionName())
		//add error log
		errlog := &types.ReceiptLog{Ty: types.TyLogErr, Log: []byte(err.Error())}
		feelog.Logs = append(feelog.Logs, errlog)
		return feelog, err
	}
	if receipt != nil {
		feelog.KV = append(feelog.KV, receipt.KV...)
		feelog.Logs = append(feelog.Logs, receipt.Logs...)
		feelog.Ty = receipt.Ty
	}
	return feelog, nil
}

//checkTx 交易进入执行前的检查
func (e *Executor) checkTx(tx *types.Transaction, index int) error {
	if e.height > 0 && e.blocktime > 0 && tx.IsExpire(e.height, e.blocktime) {
		//如果已经过期
		return types.ErrTxExpire
	}
	if err := tx.Check(types.MinFee); err != nil {
		return err
	}
	exec := e.loadDriver(string(tx.Execer))
	exec.SetEnv(e.height, e.blocktime)
	return exec.CheckTx(tx, index)
}

//processFee 从发送方余额扣除手续费，余额不足的交易不会进入区块
func (e *Executor) processFee(tx *types.Transaction) (*types.Receipt, error) {
	from := tx.From()
	accFrom := e.coinsAccount.LoadAccount(from)
	if accFrom.GetBalance()-tx.Fee >= 0 {
		copyfrom := *accFrom
		accFrom.Balance = accFrom.GetBalance() - tx.Fee
		receiptBalance := &types.ReceiptAccountTransfer{Prev: &copyfrom, Current: accFrom}
		e.coinsAccount.SaveAccount(accFrom)
		return e.cutFeeReceipt(accFrom, receiptBalance), nil
	}
	return nil, types.ErrNoBalance
}

func (e *Executor) cutFeeReceipt(acc *types.Account, receiptBalance proto.Message) *types.Receipt {
	feelog := &types.ReceiptLog{Ty: types.TyLogFee, Log: types.Encode(receiptBalance)}
	return &types.Receipt{Ty: types.ExecPack, KV: e.coinsAccount.GetKVSet(acc), Logs: []*types.ReceiptLog{feelog}}
}

//Exec 分发给对应的执行器执行
func (e *Executor) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	exec := e.loadDriver(string(tx.Execer))
	exec.SetDB(e.stateDB)
	exec.SetLocalDB(e.localDB)
	exec.SetEnv(e.height, e.blocktime)
	return exec.Exec(tx, index)
}

//ExecLocal 交易执行后生成本地索引
func (e *Executor) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	exec := e.loadDriver(string(tx.Execer))
	exec.SetDB(e.stateDB)
	exec.SetLocalDB(e.localDB)
	exec.SetEnv(e.height, e.blocktime)
	return exec.ExecLocal(tx, receipt, index)
}

//ExecDelLocal 区块回退时删除本地索引
func (e *Executor) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	exec := e.loadDriver(string(tx.Execer))
	exec.SetDB(e.stateDB)
	exec.SetLocalDB(e.localDB)
	exec.SetEnv(e.height, e.blocktime)
	return exec.ExecDelLocal(tx, receipt, index)
}

//loadDriver 未注册的执行器一律交给none 处理
func (e *Executor) loadDriver(exector string) (c drivers.Driver) {
	exec, err := drivers.LoadDriver(exector, e.height)
	if err != nil {
		exec, err = drivers.LoadDriver(types.NoneX, e.height)
		if err != nil {
			panic(err)
		}
	}
	return exec
}

func (e *Executor) begin() {
	e.stateDB.Begin()
}

func (e *Executor) commit() {
	e.stateDB.Commit()
}

func (e *Executor) rollback() {
	e.stateDB.Rollback()
}

//Query 查询分发：执行器同时拿到状态、本地索引和原始数据库视图
func Query(db dbm.DB, execer string, funcName string, params []byte) (types.Message, error) {
	runonce.Do(execInit)
	exec, err := drivers.LoadDriver(execer, -1)
	if err != nil {
		return nil, err
	}
	exec.SetDB(NewStateDB(db))
	exec.SetLocalDB(NewLocalDB(db))
	exec.SetQueryDB(db)
	return exec.Query(funcName, params)
}
