// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/pkg/errors"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/common/merkle"
	"github.com/guessbet/guessbet/executor"
	"github.com/guessbet/guessbet/metrics"
	"github.com/guessbet/guessbet/types"
)

//connectBlock 执行一批交易并连接成一个新区块。
//执行器拒绝(ExecErr)的交易不进入区块，原因按原始下标通过rejects 返回；
//全部被拒绝时不产生区块，detail 为nil。
func (l *Ledger) connectBlock(txs []*types.Transaction) (*types.BlockDetail, map[int]error, error) {
	lastHeader := l.blockStore.LastHeader()
	var height int64
	var parentHash []byte
	blocktime := time.Now().Unix()
	if lastHeader == nil {
		height = 0
		if l.cfg.GenesisBlockTime > 0 {
			blocktime = l.cfg.GenesisBlockTime
		}
	} else {
		height = lastHeader.Height + 1
		parentHash = lastHeader.Hash
		//区块时间必须单调递增
		if blocktime <= lastHeader.BlockTime {
			blocktime = lastHeader.BlockTime + 1
		}
	}
	exec := executor.NewExecutor(l.db, height, blocktime)
	receipts := exec.ExecTxList(txs)

	rejects := make(map[int]error)
	var kvset []*types.KeyValue
	var rdata []*types.ReceiptData
	blocktxs := make([]*types.Transaction, 0, len(txs))
	for i := 0; i < len(receipts); i++ {
		receipt := receipts[i]
		if receipt.Ty == types.ExecErr {
			llog.Error("exec tx err", "height", height, "index", i, "err", receiptErr(receipt))
			rejects[i] = receiptErr(receipt)
			continue
		}
		blocktxs = append(blocktxs, txs[i])
		rdata = append(rdata, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs})
		kvset = append(kvset, receipt.KV...)
	}
	if len(blocktxs) == 0 {
		return nil, rejects, nil
	}
	kvset = delDupKey(kvset)

	block := &types.Block{
		ParentHash: parentHash,
		Height:     height,
		BlockTime:  blocktime,
		Txs:        blocktxs,
	}
	block.TxHash = merkle.CalcMerkleRoot(block.Txs)
	detail := &types.BlockDetail{Block: block, Receipts: rdata}

	batch := l.db.NewBatch(true)
	for _, kv := range kvset {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	//本地索引：交易索引、地址索引和各执行器自有的查询索引
	for index, tx := range block.Txs {
		set, err := exec.ExecLocal(tx, rdata[index], index)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "exec local index, height %d index %d", height, index)
		}
		for _, kv := range set.KV {
			if kv.Value == nil {
				batch.Delete(kv.Key)
			} else {
				batch.Set(kv.Key, kv.Value)
			}
		}
	}
	if err := l.blockStore.SaveBlock(batch, detail); err != nil {
		return nil, nil, err
	}
	if err := batch.Write(); err != nil {
		return nil, nil, errors.Wrapf(err, "write block batch, height %d", height)
	}
	header := block.GetHeader()
	l.blockStore.UpdateLastBlock(header)

	metrics.BlockConnectMeter.Mark(1)
	metrics.TxPackMeter.Mark(int64(len(block.Txs)))
	metrics.BlockHeightGauge.Update(height)
	markPayouts(rdata)

	llog.Info("connect block", "height", height, "ntx", len(block.Txs), "hash", common.ToHex(header.Hash))
	return detail, rejects, nil
}

//receiptErr 从拒绝回执中恢复错误原因
func receiptErr(receipt *types.Receipt) error {
	for _, item := range receipt.Logs {
		if item.Ty == types.TyLogErr {
			return errors.New(string(item.Log))
		}
	}
	return types.ErrBlockExec
}

//delDupKey 同一个key 的多次写只保留最后一次，位置保持首次出现处
func delDupKey(kvs []*types.KeyValue) []*types.KeyValue {
	dupindex := make(map[string]int)
	n := 0
	for _, kv := range kvs {
		skey := string(kv.Key)
		if index, ok := dupindex[skey]; ok {
			kvs[index] = kv
			continue
		}
		dupindex[skey] = n
		kvs[n] = kv
		n++
	}
	return kvs[:n]
}

//markPayouts 统计本区块内的派奖和挂账笔数
func markPayouts(rdata []*types.ReceiptData) {
	var paid, deferred int64
	for _, rd := range rdata {
		for _, item := range rd.Logs {
			if item.Ty == types.TyLogGuessPayout {
				paid++
			} else if item.Ty == types.TyLogGuessPending {
				deferred++
			}
		}
	}
	if paid > 0 {
		metrics.PayoutMeter.Mark(paid)
	}
	if deferred > 0 {
		metrics.PendingMeter.Mark(deferred)
	}
}
