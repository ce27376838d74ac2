// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/guessbet/guessbet/account"
	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/executor"
	"github.com/guessbet/guessbet/types"
)

//单次最多返回的区块数
const maxFetchBlockNum int64 = 100

//GetLastHeader 获取最新的区块头
func (l *Ledger) GetLastHeader() (*types.Header, error) {
	header := l.blockStore.LastHeader()
	if header == nil {
		return nil, types.ErrHeightNotExist
	}
	return header, nil
}

//GetBlocks 获取[start, end] 高度区间的区块，isDetail 为false 时不返回回执
func (l *Ledger) GetBlocks(req *types.ReqBlocks) (*types.BlockDetails, error) {
	start := req.GetStart()
	end := req.GetEnd()
	if end < start {
		return nil, types.ErrEndLessThanStartHeight
	}
	if start < 0 || end > l.blockStore.Height() {
		return nil, types.ErrHeightNotExist
	}
	if end-start >= maxFetchBlockNum {
		end = start + maxFetchBlockNum - 1
	}
	var details types.BlockDetails
	for height := start; height <= end; height++ {
		detail, err := l.blockStore.LoadBlockByHeight(height)
		if err != nil {
			return nil, err
		}
		if !req.GetIsDetail() {
			detail.Receipts = nil
		}
		details.Items = append(details.Items, detail)
	}
	return &details, nil
}

//GetHeaders 获取[start, end] 高度区间的区块头
func (l *Ledger) GetHeaders(req *types.ReqBlocks) (*types.Headers, error) {
	start := req.GetStart()
	end := req.GetEnd()
	if end < start {
		return nil, types.ErrEndLessThanStartHeight
	}
	if start < 0 || end > l.blockStore.Height() {
		return nil, types.ErrHeightNotExist
	}
	if end-start >= maxFetchBlockNum {
		end = start + maxFetchBlockNum - 1
	}
	var headers types.Headers
	for height := start; height <= end; height++ {
		header, err := l.blockStore.GetBlockHeaderByHeight(height)
		if err != nil {
			return nil, err
		}
		headers.Items = append(headers.Items, header)
	}
	return &headers, nil
}

//GetBlockByHash 通过区块hash 获取区块
func (l *Ledger) GetBlockByHash(hash []byte) (*types.BlockDetail, error) {
	return l.blockStore.LoadBlockByHash(hash)
}

//QueryTx 通过交易hash 查询交易详情
func (l *Ledger) QueryTx(hash []byte) (*types.TransactionDetail, error) {
	txresult, err := l.blockStore.GetTx(hash)
	if err != nil {
		return nil, err
	}
	var detail types.TransactionDetail
	detail.Tx = txresult.GetTx()
	detail.Receipt = txresult.GetReceiptdate()
	detail.Height = txresult.GetHeight()
	detail.Index = int64(txresult.GetIndex())
	detail.Blocktime = txresult.GetBlocktime()
	detail.ActionName = txresult.GetActionName()
	if txresult.GetTx().GetSignature() != nil {
		detail.Fromaddr = txresult.GetTx().From()
	}
	amount, err := txresult.GetTx().Amount()
	if err == nil {
		detail.Amount = amount
	}
	return &detail, nil
}

//Query 执行器查询分发，读和写共用同一个db，串行循环之外的读是安全的
func (l *Ledger) Query(execer string, funcName string, params []byte) (types.Message, error) {
	return executor.Query(l.db, execer, funcName, params)
}

//GetBalance 查询地址在coins 或某个合约子账户下的余额
func (l *Ledger) GetBalance(req *types.ReqBalance) ([]*types.Account, error) {
	statedb := executor.NewStateDB(l.db)
	coins := account.NewCoinsAccount()
	coins.SetDB(statedb)
	switch req.GetExecer() {
	case "", types.CoinsX:
		accs, err := coins.LoadAccountsDB(req.GetAddresses())
		if err != nil {
			return nil, err
		}
		return accs, nil
	default:
		execaddr := address.ExecAddress(req.GetExecer())
		var accs []*types.Account
		for _, addr := range req.GetAddresses() {
			acc := coins.LoadExecAccount(addr, execaddr)
			accs = append(accs, acc)
		}
		return accs, nil
	}
}
