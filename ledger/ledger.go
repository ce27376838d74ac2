// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ledger 账本模块：单goroutine 定序执行交易、打包区块并持久化。
// 节点没有共识和p2p，账本的串行循环就是交易的原子顺序执行环境。
package ledger

import (
	"fmt"
	"sync"

	"github.com/go-stack/stack"
	uuid "github.com/google/uuid"
	log "github.com/inconshreveable/log15"

	"github.com/guessbet/guessbet/common/address"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
)

var llog = log.New("module", "ledger")

//单个区块最多打包的提交笔数
const maxBatchTxs = 1024

//提交队列的缓冲大小
const defSubChanSize = 1024

//submission 一笔待定序的交易提交，id 用于日志追踪
type submission struct {
	id      string
	tx      *types.Transaction
	done    chan submitResult
	replied bool
}

type submitResult struct {
	hash []byte
	err  error
}

//reply 只会在定序goroutine 中调用，每笔提交至多应答一次
func (s *submission) reply(hash []byte, err error) {
	if s.replied {
		return
	}
	s.replied = true
	s.done <- submitResult{hash: hash, err: err}
}

//Ledger 账本：区块存储 + 交易定序循环
type Ledger struct {
	db         dbm.DB
	blockStore *BlockStore
	cfg        *types.Ledger

	subch  chan *submission
	done   chan struct{}
	wg     sync.WaitGroup
	closed sync.Once
}

//New 打开数据库并启动定序循环，空库时先产生创世区块
func New(cfg *types.Ledger) *Ledger {
	if cfg == nil {
		panic("ledger: nil config")
	}
	db := dbm.NewDB("ledger", cfg.Driver, cfg.DbPath, cfg.DbCache)
	l := &Ledger{
		db:         db,
		blockStore: NewBlockStore(db, cfg.DefCacheSize),
		cfg:        cfg,
		subch:      make(chan *submission, defSubChanSize),
		done:       make(chan struct{}),
	}
	if l.blockStore.Height() == -1 {
		l.bootGenesis()
	}
	l.wg.Add(1)
	go l.sequenceRoutine()
	return l
}

//bootGenesis 在高度0 执行coins 的genesis 交易，给配置的创世地址发币
func (l *Ledger) bootGenesis() {
	if l.cfg.Genesis == "" {
		panic("ledger: genesis address not configured")
	}
	if err := address.CheckAddress(l.cfg.Genesis); err != nil {
		panic(fmt.Sprintf("ledger: bad genesis address %s: %v", l.cfg.Genesis, err))
	}
	tx := &types.Transaction{Execer: []byte(types.CoinsX), To: l.cfg.Genesis}
	g := &types.CoinsAction_Genesis{
		Genesis: &types.CoinsGenesis{
			Amount:        l.cfg.GenesisAmount * types.Coin,
			ReturnAddress: l.cfg.Genesis,
		},
	}
	tx.Payload = types.Encode(&types.CoinsAction{Value: g, Ty: types.CoinsActionGenesis})

	detail, _, err := l.connectBlock([]*types.Transaction{tx})
	if err != nil {
		panic(fmt.Sprintf("ledger: boot genesis block: %v", err))
	}
	if detail == nil {
		panic("ledger: genesis tx rejected")
	}
	llog.Info("boot genesis block", "genesis", l.cfg.Genesis, "amount", l.cfg.GenesisAmount)
}

//SendTx 提交一笔签名交易，阻塞直到交易被定序落盘，返回交易哈希。
//执行器拒绝的交易(过期、手续费不足、余额不够付费等)返回对应错误且不会进入账本。
func (l *Ledger) SendTx(tx *types.Transaction) ([]byte, error) {
	if tx == nil {
		return nil, types.ErrInputPara
	}
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	sub := &submission{
		id:   uuid.New().String(),
		tx:   tx,
		done: make(chan submitResult, 1),
	}
	select {
	case l.subch <- sub:
	case <-l.done:
		return nil, types.ErrChannelClosed
	default:
		return nil, types.ErrChannelFull
	}
	select {
	case ret := <-sub.done:
		return ret.hash, ret.err
	case <-l.done:
		return nil, types.ErrChannelClosed
	}
}

//sequenceRoutine 定序循环：排队中的提交会被合并进同一个区块
func (l *Ledger) sequenceRoutine() {
	defer l.wg.Done()
	for {
		select {
		case <-l.done:
			return
		case sub := <-l.subch:
			pending := []*submission{sub}
		drain:
			for len(pending) < maxBatchTxs {
				select {
				case next := <-l.subch:
					pending = append(pending, next)
				default:
					break drain
				}
			}
			l.procSubmissions(pending)
		}
	}
}

//procSubmissions 打包一批提交；打包过程的panic 不允许中断定序循环
func (l *Ledger) procSubmissions(subs []*submission) {
	defer func() {
		if r := recover(); r != nil {
			llog.Error("proc submissions panic", "err", r, "stack", stack.Trace().TrimRuntime().String())
			for _, sub := range subs {
				sub.reply(nil, types.ErrBlockExec)
			}
		}
	}()
	txs := make([]*types.Transaction, 0, len(subs))
	for _, sub := range subs {
		llog.Debug("sequence submission", "id", sub.id, "hash", fmt.Sprintf("%x", sub.tx.Hash()))
		txs = append(txs, sub.tx)
	}
	_, rejects, err := l.connectBlock(txs)
	if err != nil {
		for _, sub := range subs {
			sub.reply(nil, err)
		}
		return
	}
	for i, sub := range subs {
		if rejerr, ok := rejects[i]; ok {
			sub.reply(nil, rejerr)
			continue
		}
		sub.reply(sub.tx.Hash(), nil)
	}
}

//Close 停止定序循环并关闭数据库，未处理的提交收到ErrChannelClosed
func (l *Ledger) Close() {
	l.closed.Do(func() {
		close(l.done)
		l.wg.Wait()
		l.db.Close()
		llog.Info("ledger closed", "height", l.blockStore.Height())
	})
}
