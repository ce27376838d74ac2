// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/types"
)

//SendTransaction 提交十六进制编码的签名交易，返回交易哈希
func (c *Guessbet) SendTransaction(in RawParm, result *interface{}) error {
	data, err := common.FromHex(in.Data)
	if err != nil {
		return err
	}
	var tx types.Transaction
	if err := types.Decode(data, &tx); err != nil {
		return err
	}
	hash, err := c.cli.SendTx(&tx)
	if err != nil {
		return err
	}
	*result = common.ToHex(hash)
	return nil
}

//QueryTransaction 按交易哈希查询交易详情
func (c *Guessbet) QueryTransaction(in QueryParm, result *TransactionDetail) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return err
	}
	detail, err := c.cli.QueryTx(hash)
	if err != nil {
		return err
	}
	*result = TransactionDetail{
		Tx:         decodeTx(detail.Tx),
		Receipt:    decodeReceipt(detail.Receipt),
		Height:     detail.Height,
		Index:      detail.Index,
		Blocktime:  detail.Blocktime,
		Amount:     detail.Amount,
		Fromaddr:   detail.Fromaddr,
		ActionName: detail.ActionName,
	}
	return nil
}

//GetBlocks 按高度区间获取区块
func (c *Guessbet) GetBlocks(in BlockParam, result *BlockDetails) error {
	details, err := c.cli.GetBlocks(&types.ReqBlocks{
		Start:    in.Start,
		End:      in.End,
		IsDetail: in.Isdetail,
	})
	if err != nil {
		return err
	}
	for _, item := range details.Items {
		result.Items = append(result.Items, decodeBlockDetail(item))
	}
	return nil
}

//GetHeaders 按高度区间获取区块头
func (c *Guessbet) GetHeaders(in BlockParam, result *Headers) error {
	headers, err := c.cli.GetHeaders(&types.ReqBlocks{Start: in.Start, End: in.End})
	if err != nil {
		return err
	}
	for _, item := range headers.Items {
		result.Items = append(result.Items, decodeHeader(item))
	}
	return nil
}

//GetLastHeader 获取最新区块头
func (c *Guessbet) GetLastHeader(in *types.ReqNil, result *Header) error {
	header, err := c.cli.GetLastHeader()
	if err != nil {
		return err
	}
	*result = *decodeHeader(header)
	return nil
}

//GetBlockByHash 按区块哈希获取区块
func (c *Guessbet) GetBlockByHash(in QueryParm, result *BlockDetail) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return err
	}
	detail, err := c.cli.GetBlockByHash(hash)
	if err != nil {
		return err
	}
	*result = *decodeBlockDetail(detail)
	return nil
}

//Query 执行器查询，payload 为十六进制的proto 编码，结果按json 返回
func (c *Guessbet) Query(in Query4Jrpc, result *interface{}) error {
	params, err := common.FromHex(in.Payload)
	if err != nil {
		return err
	}
	reply, err := c.cli.Query(in.Execer, in.FuncName, params)
	if err != nil {
		log.Error("Query", "execer", in.Execer, "func", in.FuncName, "err", err)
		return err
	}
	*result = reply
	return nil
}

//GetBalance 查询地址在coins 或者某个执行器子账户下的余额
func (c *Guessbet) GetBalance(in ReqBalance, result *Accounts) error {
	accs, err := c.cli.GetBalance(&types.ReqBalance{
		Addresses: in.Addresses,
		Execer:    in.Execer,
	})
	if err != nil {
		return err
	}
	for _, acc := range accs {
		result.Acc = append(result.Acc, &Account{
			Currency: acc.Currency,
			Balance:  acc.Balance,
			Frozen:   acc.Frozen,
			Addr:     acc.Addr,
		})
	}
	return nil
}

//GetTxByAddr 按地址查询相关交易的索引
func (c *Guessbet) GetTxByAddr(in ReqAddr, result *ReplyTxInfos) error {
	//height 不填(json 零值0)时从最新的交易开始倒序取
	height := in.Height
	if height == 0 {
		height = -1
	}
	req := &types.ReqAddr{
		Addr:      in.Addr,
		Flag:      in.Flag,
		Count:     in.Count,
		Direction: in.Direction,
		Height:    height,
		Index:     in.Index,
	}
	reply, err := c.cli.Query(types.CoinsX, "GetTxsByAddr", types.Encode(req))
	if err != nil {
		return err
	}
	infos, ok := reply.(*types.ReplyTxInfos)
	if !ok {
		return types.ErrInvalidParam
	}
	for _, info := range infos.TxInfos {
		result.TxInfos = append(result.TxInfos, &ReplyTxInfo{
			Hash:   common.ToHex(info.Hash),
			Height: info.Height,
			Index:  info.Index,
		})
	}
	return nil
}
