// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/types"
)

//RawParm 十六进制的proto 编码数据
type RawParm struct {
	Data string `json:"data"`
}

//QueryParm 按hash 查询入参
type QueryParm struct {
	Hash string `json:"hash"`
}

//BlockParam 区块区间查询入参
type BlockParam struct {
	Start    int64 `json:"start"`
	End      int64 `json:"end"`
	Isdetail bool  `json:"isdetail"`
}

//Query4Jrpc 执行器查询入参，payload 为十六进制的proto 编码
type Query4Jrpc struct {
	Execer   string `json:"execer"`
	FuncName string `json:"funcName"`
	Payload  string `json:"payload"`
}

//ReqAddr 按地址查询交易入参
type ReqAddr struct {
	Addr      string `json:"addr"`
	Flag      int32  `json:"flag"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
	Height    int64  `json:"height"`
	Index     int64  `json:"index"`
}

//ReqBalance 余额查询入参
type ReqBalance struct {
	Addresses []string `json:"addresses"`
	Execer    string   `json:"execer"`
}

//Signature 签名
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

//Transaction 交易
type Transaction struct {
	Execer     string      `json:"execer"`
	Payload    interface{} `json:"payload"`
	RawPayload string      `json:"rawpayload"`
	Signature  *Signature  `json:"signature"`
	Fee        int64       `json:"fee"`
	Expire     int64       `json:"expire"`
	Nonce      int64       `json:"nonce"`
	From       string      `json:"from,omitempty"`
	To         string      `json:"to"`
}

//ReceiptLog 原始回执日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log string `json:"log"`
}

//ReceiptLogResult 解码后的回执日志
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyname"`
	Log    interface{} `json:"log"`
	RawLog string      `json:"rawlog"`
}

//ReceiptDataResult 解码后的回执
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyname"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

//Header 区块头
type Header struct {
	ParentHash string `json:"parenthash"`
	TxHash     string `json:"txhash"`
	Height     int64  `json:"height"`
	BlockTime  int64  `json:"blocktime"`
	TxCount    int64  `json:"txcount"`
	Hash       string `json:"hash"`
}

//Headers 区块头列表
type Headers struct {
	Items []*Header `json:"items"`
}

//Block 区块
type Block struct {
	ParentHash string         `json:"parenthash"`
	TxHash     string         `json:"txhash"`
	Height     int64          `json:"height"`
	BlockTime  int64          `json:"blocktime"`
	Txs        []*Transaction `json:"txs"`
}

//BlockDetail 区块和回执
type BlockDetail struct {
	Block    *Block               `json:"block"`
	Receipts []*ReceiptDataResult `json:"receipts"`
}

//BlockDetails 区块列表
type BlockDetails struct {
	Items []*BlockDetail `json:"items"`
}

//TransactionDetail 交易详情
type TransactionDetail struct {
	Tx         *Transaction       `json:"tx"`
	Receipt    *ReceiptDataResult `json:"receipt"`
	Height     int64              `json:"height"`
	Index      int64              `json:"index"`
	Blocktime  int64              `json:"blocktime"`
	Amount     int64              `json:"amount"`
	Fromaddr   string             `json:"fromaddr"`
	ActionName string             `json:"actionname"`
}

//ReplyTxInfo 交易索引
type ReplyTxInfo struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Index  int64  `json:"index"`
}

//ReplyTxInfos 交易索引列表
type ReplyTxInfos struct {
	TxInfos []*ReplyTxInfo `json:"txinfos"`
}

//Account 账户
type Account struct {
	Currency int32  `json:"currency"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen"`
	Addr     string `json:"addr"`
}

//Accounts 账户列表
type Accounts struct {
	Acc []*Account `json:"acc"`
}

//Reply 通用应答
type Reply struct {
	IsOk bool   `json:"isok"`
	Msg  string `json:"msg"`
}

//decodeTx 原始交易转DTO，payload 按执行器解码为结构化数据
func decodeTx(tx *types.Transaction) *Transaction {
	if tx == nil {
		return nil
	}
	result := &Transaction{
		Execer:     string(tx.Execer),
		RawPayload: common.ToHex(tx.Payload),
		Payload:    decodePayload(tx),
		Fee:        tx.Fee,
		Expire:     tx.Expire,
		Nonce:      tx.Nonce,
		To:         tx.To,
	}
	if tx.Signature != nil {
		result.Signature = &Signature{
			Ty:        tx.Signature.Ty,
			Pubkey:    common.ToHex(tx.Signature.Pubkey),
			Signature: common.ToHex(tx.Signature.Signature),
		}
		result.From = tx.From()
	}
	return result
}

func decodePayload(tx *types.Transaction) interface{} {
	switch string(tx.Execer) {
	case types.CoinsX:
		var action types.CoinsAction
		if err := types.Decode(tx.Payload, &action); err == nil {
			return &action
		}
	case types.GuessX:
		var action types.GuessAction
		if err := types.Decode(tx.Payload, &action); err == nil {
			return &action
		}
	}
	return nil
}

//decodeReceipt 回执转DTO，逐条解码日志
func decodeReceipt(rd *types.ReceiptData) *ReceiptDataResult {
	if rd == nil {
		return nil
	}
	result := &ReceiptDataResult{Ty: rd.Ty}
	switch rd.Ty {
	case types.ExecErr:
		result.TyName = "ExecErr"
	case types.ExecPack:
		result.TyName = "ExecPack"
	case types.ExecOk:
		result.TyName = "ExecOk"
	}
	for _, item := range rd.Logs {
		result.Logs = append(result.Logs, decodeLog(item))
	}
	return result
}

func decodeLog(item *types.ReceiptLog) *ReceiptLogResult {
	result := &ReceiptLogResult{
		Ty:     item.Ty,
		TyName: types.LogName(item.Ty),
		RawLog: common.ToHex(item.Log),
	}
	var msg types.Message
	switch item.Ty {
	case types.TyLogFee, types.TyLogTransfer, types.TyLogGenesis, types.TyLogDeposit:
		msg = &types.ReceiptAccountTransfer{}
	case types.TyLogExecTransfer, types.TyLogExecWithdraw, types.TyLogExecDeposit,
		types.TyLogExecFrozen, types.TyLogExecActive:
		msg = &types.ReceiptExecAccountTransfer{}
	case types.TyLogGuessInit, types.TyLogGuessCommit, types.TyLogGuessReveal:
		msg = &types.ReceiptGuessRound{}
	case types.TyLogGuessStake:
		msg = &types.ReceiptGuessStake{}
	case types.TyLogGuessPayout, types.TyLogGuessPending:
		msg = &types.ReceiptGuessPayout{}
	case types.TyLogGuessWithdraw:
		msg = &types.ReceiptGuessWithdraw{}
	case types.TyLogGuessRecover:
		msg = &types.ReceiptGuessRecover{}
	case types.TyLogErr:
		result.Log = string(item.Log)
		return result
	default:
		return result
	}
	if err := types.Decode(item.Log, msg); err != nil {
		log.Error("decode receipt log", "ty", item.Ty, "err", err)
		return result
	}
	result.Log = msg
	return result
}

//decodeBlockDetail 区块详情转DTO
func decodeBlockDetail(detail *types.BlockDetail) *BlockDetail {
	block := detail.GetBlock()
	result := &BlockDetail{
		Block: &Block{
			ParentHash: common.ToHex(block.ParentHash),
			TxHash:     common.ToHex(block.TxHash),
			Height:     block.Height,
			BlockTime:  block.BlockTime,
		},
	}
	for _, tx := range block.Txs {
		result.Block.Txs = append(result.Block.Txs, decodeTx(tx))
	}
	for _, rd := range detail.Receipts {
		result.Receipts = append(result.Receipts, decodeReceipt(rd))
	}
	return result
}

func decodeHeader(header *types.Header) *Header {
	return &Header{
		ParentHash: common.ToHex(header.ParentHash),
		TxHash:     common.ToHex(header.TxHash),
		Height:     header.Height,
		BlockTime:  header.BlockTime,
		TxCount:    header.TxCount,
		Hash:       common.ToHex(header.Hash),
	}
}

//JSONToPB 保留给需要把json 入参还原为proto 的查询使用
func JSONToPB(data []byte, msg types.Message) error {
	return json.Unmarshal(data, msg)
}
