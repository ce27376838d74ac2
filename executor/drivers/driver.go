// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drivers 执行器接口定义和基类实现
package drivers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/guessbet/guessbet/account"
	"github.com/guessbet/guessbet/common/address"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 执行器接口
type Driver interface {
	SetDB(dbm.KV)
	SetLocalDB(dbm.KVDB)
	SetQueryDB(dbm.DB)
	GetName() string
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

//DriverBase 执行器基类，具体执行器通过SetChild 注入自身
type DriverBase struct {
	db           dbm.KV
	localdb      dbm.KVDB
	querydb      dbm.DB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	mu           sync.Mutex
	child        Driver
}

//SetEnv 设置当前区块的高度和时间
func (n *DriverBase) SetEnv(height, blocktime int64) {
	n.height = height
	n.blocktime = blocktime
}

//SetChild 设置子执行器
func (n *DriverBase) SetChild(e Driver) {
	n.child = e
}

//GetAddr 获取执行器合约地址
func (n *DriverBase) GetAddr() string {
	return ExecAddress(n.child.GetName())
}

//ExecLocal 交易执行成功后建立本地索引，各执行器可以在此基础上追加自己的索引
func (n *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	//保存：tx
	hash, result := n.GetTx(tx, receipt, index)
	set.KV = append(set.KV, &types.KeyValue{Key: hash, Value: types.Encode(result)})
	//保存: from/to
	txindex := n.GetTxIndex(tx, receipt, index)
	txinfobyte := types.Encode(txindex.index)
	if len(txindex.from) != 0 {
		fromkey1 := CalcTxAddrDirHashKey(txindex.from, 1, txindex.heightstr)
		fromkey2 := CalcTxAddrHashKey(txindex.from, txindex.heightstr)
		set.KV = append(set.KV, &types.KeyValue{Key: fromkey1, Value: txinfobyte})
		set.KV = append(set.KV, &types.KeyValue{Key: fromkey2, Value: txinfobyte})
	}
	if len(txindex.to) != 0 {
		tokey1 := CalcTxAddrDirHashKey(txindex.to, 2, txindex.heightstr)
		tokey2 := CalcTxAddrHashKey(txindex.to, txindex.heightstr)
		set.KV = append(set.KV, &types.KeyValue{Key: tokey1, Value: txinfobyte})
		set.KV = append(set.KV, &types.KeyValue{Key: tokey2, Value: txinfobyte})
	}
	return &set, nil
}

//GetTx 获取交易在本地索引中的公共信息
func (n *DriverBase) GetTx(tx *types.Transaction, receipt *types.ReceiptData, index int) ([]byte, *types.TxResult) {
	txhash := tx.Hash()
	//构造txresult 信息保存到db中
	var txresult types.TxResult
	txresult.Height = n.GetHeight()
	txresult.Index = int32(index)
	txresult.Tx = tx
	txresult.Receiptdate = receipt
	txresult.Blocktime = n.GetBlockTime()
	txresult.ActionName = n.child.GetActionName(tx)
	return txhash, &txresult
}

type txIndex struct {
	from      string
	to        string
	heightstr string
	index     *types.ReplyTxInfo
}

//交易中 from/to 的索引
func (n *DriverBase) GetTxIndex(tx *types.Transaction, receipt *types.ReceiptData, index int) *txIndex {
	var txIndexInfo txIndex
	var txinf types.ReplyTxInfo
	txinf.Hash = tx.Hash()
	txinf.Height = n.GetHeight()
	txinf.Index = int64(index)

	txIndexInfo.index = &txinf
	heightstr := fmt.Sprintf("%018d", n.GetHeight()*types.MaxTxsPerBlock+int64(index))
	txIndexInfo.heightstr = heightstr

	txIndexInfo.from = tx.From()
	txIndexInfo.to = tx.To
	return &txIndexInfo
}

//ExecDelLocal 区块回退时删除本地索引，value置nil，提交时自动执行删除
func (n *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	var set types.LocalDBSet
	//del: addr index
	hash, _ := n.GetTx(tx, receipt, index)
	txindex := n.GetTxIndex(tx, receipt, index)
	if len(txindex.from) != 0 {
		fromkey1 := CalcTxAddrDirHashKey(txindex.from, 1, txindex.heightstr)
		fromkey2 := CalcTxAddrHashKey(txindex.from, txindex.heightstr)
		set.KV = append(set.KV, &types.KeyValue{Key: fromkey1, Value: nil})
		set.KV = append(set.KV, &types.KeyValue{Key: fromkey2, Value: nil})
	}
	if len(txindex.to) != 0 {
		tokey1 := CalcTxAddrDirHashKey(txindex.to, 2, txindex.heightstr)
		tokey2 := CalcTxAddrHashKey(txindex.to, txindex.heightstr)
		set.KV = append(set.KV, &types.KeyValue{Key: tokey1, Value: nil})
		set.KV = append(set.KV, &types.KeyValue{Key: tokey2, Value: nil})
	}
	//del：tx
	set.KV = append(set.KV, &types.KeyValue{Key: hash, Value: nil})
	return &set, nil
}

//Exec 公共检测：to 地址合法，且非coins 交易的to 必须指向合约地址
func (n *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := address.CheckAddress(tx.To); err != nil {
		return nil, err
	}
	exec := string(tx.Execer)
	if exec != types.CoinsX && ExecAddress(exec) != tx.To {
		return nil, types.ErrToAddrNotSameToExecAddr
	}
	return nil, nil
}

//CheckTx 交易检测，基类不做任何检测
func (n *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

//Query 查询接口，基类不支持任何查询
func (n *DriverBase) Query(funcname string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}

//SetDB 设置状态数据库
func (n *DriverBase) SetDB(db dbm.KV) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.db = db
	if n.coinsaccount != nil {
		n.coinsaccount.SetDB(db)
	}
}

//GetDB 获取状态数据库
func (n *DriverBase) GetDB() dbm.KV {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.db
}

//GetCoinsAccount 获取本币账户，绑定当前状态数据库
func (n *DriverBase) GetCoinsAccount() *account.DB {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.coinsaccount == nil {
		n.coinsaccount = account.NewCoinsAccount()
		n.coinsaccount.SetDB(n.db)
	}
	return n.coinsaccount
}

//SetLocalDB 设置本地索引数据库
func (n *DriverBase) SetLocalDB(db dbm.KVDB) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localdb = db
}

//GetLocalDB 获取本地索引数据库
func (n *DriverBase) GetLocalDB() dbm.KVDB {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.localdb
}

//SetQueryDB 设置查询数据库
func (n *DriverBase) SetQueryDB(db dbm.DB) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.querydb = db
}

//GetQueryDB 获取查询数据库
func (n *DriverBase) GetQueryDB() dbm.DB {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.querydb
}

//GetHeight 获取当前区块高度
func (n *DriverBase) GetHeight() int64 {
	return n.height
}

//GetBlockTime 获取当前区块时间
func (n *DriverBase) GetBlockTime() int64 {
	return n.blocktime
}

//GetName 获取执行器名称
func (n *DriverBase) GetName() string {
	return "driver"
}

//GetActionName 获取action 名称
func (n *DriverBase) GetActionName(tx *types.Transaction) string {
	return tx.ActionName()
}

//GetTxsByAddr 通过addr前缀查找本地址参与的所有交易
func (n *DriverBase) GetTxsByAddr(addr *types.ReqAddr) (types.Message, error) {
	db := n.GetQueryDB()
	if db == nil {
		return nil, types.ErrNotFound
	}
	list := dbm.NewListHelper(db)
	var prefix []byte
	var key []byte
	var txinfos [][]byte
	//取最新的交易hash列表
	if addr.Flag == 0 { //所有的交易hash列表
		prefix = CalcTxAddrHashKey(addr.GetAddr(), "")
	} else if addr.Flag > 0 { //from 或to 的交易hash列表
		prefix = CalcTxAddrDirHashKey(addr.GetAddr(), addr.Flag, "")
	} else {
		return nil, errors.New("Flag unknow!")
	}
	if addr.GetHeight() == -1 {
		txinfos = list.IteratorScanFromLast(prefix, addr.Count)
		if len(txinfos) == 0 {
			return nil, errors.New("does not exist tx!")
		}
	} else { //翻页查找指定的txhash列表
		blockheight := addr.GetHeight()*types.MaxTxsPerBlock + int64(addr.GetIndex())
		heightstr := fmt.Sprintf("%018d", blockheight)
		if addr.Flag == 0 {
			key = CalcTxAddrHashKey(addr.GetAddr(), heightstr)
		} else {
			key = CalcTxAddrDirHashKey(addr.GetAddr(), addr.Flag, heightstr)
		}
		txinfos = list.IteratorScan(prefix, key, addr.Count, addr.Direction)
		if len(txinfos) == 0 {
			return nil, errors.New("does not exist tx!")
		}
	}
	var replyTxInfos types.ReplyTxInfos
	replyTxInfos.TxInfos = make([]*types.ReplyTxInfo, len(txinfos))
	for index, txinfobyte := range txinfos {
		var replyTxInfo types.ReplyTxInfo
		err := types.Decode(txinfobyte, &replyTxInfo)
		if err != nil {
			blog.Error("GetTxsByAddr proto.Unmarshal!", "err", err)
			return nil, err
		}
		replyTxInfos.TxInfos[index] = &replyTxInfo
	}
	return &replyTxInfos, nil
}
