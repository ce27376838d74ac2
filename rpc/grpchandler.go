// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/net/context"

	"github.com/guessbet/guessbet/types"
)

//SendTransaction 提交签名交易
func (g *Grpc) SendTransaction(ctx context.Context, in *types.Transaction) (*types.Reply, error) {
	hash, err := g.cli.SendTx(in)
	if err != nil {
		return nil, err
	}
	return &types.Reply{IsOk: true, Msg: hash}, nil
}

//QueryTransaction 按交易哈希查询交易
func (g *Grpc) QueryTransaction(ctx context.Context, in *types.ReqHash) (*types.TransactionDetail, error) {
	return g.cli.QueryTx(in.GetHash())
}

//GetBlocks 按高度区间获取区块
func (g *Grpc) GetBlocks(ctx context.Context, in *types.ReqBlocks) (*types.BlockDetails, error) {
	return g.cli.GetBlocks(in)
}

//GetHeaders 按高度区间获取区块头
func (g *Grpc) GetHeaders(ctx context.Context, in *types.ReqBlocks) (*types.Headers, error) {
	return g.cli.GetHeaders(in)
}

//GetLastHeader 获取最新区块头
func (g *Grpc) GetLastHeader(ctx context.Context, in *types.ReqNil) (*types.Header, error) {
	return g.cli.GetLastHeader()
}

//QueryChain 执行器查询，应答为proto 编码
func (g *Grpc) QueryChain(ctx context.Context, in *types.Query) (*types.Reply, error) {
	msg, err := g.cli.Query(string(in.GetExecer()), in.GetFuncName(), in.GetPayload())
	if err != nil {
		return nil, err
	}
	return &types.Reply{IsOk: true, Msg: types.Encode(msg)}, nil
}

//GetBalance 查询地址余额
func (g *Grpc) GetBalance(ctx context.Context, in *types.ReqBalance) (*types.Accounts, error) {
	accs, err := g.cli.GetBalance(in)
	if err != nil {
		return nil, err
	}
	return &types.Accounts{Acc: accs}, nil
}

//GetTransactionByAddr 按地址查询交易索引
func (g *Grpc) GetTransactionByAddr(ctx context.Context, in *types.ReqAddr) (*types.ReplyTxInfos, error) {
	//height 不填时从最新的交易开始倒序取
	if in.GetHeight() == 0 {
		in.Height = -1
	}
	reply, err := g.cli.Query(types.CoinsX, "GetTxsByAddr", types.Encode(in))
	if err != nil {
		return nil, err
	}
	infos, ok := reply.(*types.ReplyTxInfos)
	if !ok {
		return nil, types.ErrInvalidParam
	}
	return infos, nil
}
