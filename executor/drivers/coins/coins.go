// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coins 本币执行器，负责转账、合约充提和创世发行
package coins

import (
	"github.com/guessbet/guessbet/account"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/executor/drivers"
	"github.com/guessbet/guessbet/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.coins")

//Init 注册执行器
func Init() {
	drivers.Register(newCoins().GetName(), newCoins, 0)
}

//Coins 本币执行器
type Coins struct {
	drivers.DriverBase
	coinsaccount *account.DB
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.coinsaccount = account.NewCoinsAccount()
	return c
}

//GetName 执行器名称
func (c *Coins) GetName() string {
	return types.ExecName(types.CoinsX)
}

//SetDB 设置状态数据库
func (c *Coins) SetDB(db dbm.KV) {
	c.DriverBase.SetDB(db)
	//coinsaccount 直接读写状态数据库，每次SetDB 都重新设置一次
	c.coinsaccount.SetDB(c.DriverBase.GetDB())
}

//Exec 执行转账、提币和创世交易
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	_, err := c.DriverBase.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	var action types.CoinsAction
	err = types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	if action.Ty == types.CoinsActionTransfer && action.GetTransfer() != nil {
		transfer := action.GetTransfer()
		from := tx.From()
		//to 是合约地址时，转入合约子账户
		if drivers.IsDriverAddress(tx.To, c.GetHeight()) {
			return c.coinsaccount.TransferToExec(from, tx.To, transfer.Amount)
		}
		return c.coinsaccount.Transfer(from, tx.To, transfer.Amount)
	} else if action.Ty == types.CoinsActionWithdraw && action.GetWithdraw() != nil {
		withdraw := action.GetWithdraw()
		from := tx.From()
		//to 必须是合约地址
		if drivers.IsDriverAddress(tx.To, c.GetHeight()) {
			return c.coinsaccount.TransferWithdraw(from, tx.To, withdraw.Amount)
		}
		return nil, types.ErrActionNotSupport
	} else if action.Ty == types.CoinsActionTransferToExec && action.GetTransferToExec() != nil {
		transfer := action.GetTransferToExec()
		from := tx.From()
		//指定合约名的转入，to 必须是该合约的地址
		if drivers.ExecAddress(transfer.ExecName) != tx.To || !drivers.IsDriverAddress(tx.To, c.GetHeight()) {
			return nil, types.ErrToAddrNotSameToExecAddr
		}
		return c.coinsaccount.TransferToExec(from, tx.To, transfer.Amount)
	} else if action.Ty == types.CoinsActionGenesis && action.GetGenesis() != nil {
		genesis := action.GetGenesis()
		if c.GetHeight() == 0 {
			if drivers.IsDriverAddress(tx.To, c.GetHeight()) {
				return c.coinsaccount.GenesisInitExec(genesis.ReturnAddress, genesis.Amount, tx.To)
			}
			return c.coinsaccount.GenesisInit(tx.To, genesis.Amount)
		}
		return nil, types.ErrReRunGenesis
	}
	return nil, types.ErrActionNotSupport
}

//ExecLocal 在公共索引之上统计每个地址的累计收款
//0: all tx
//1: from tx
//2: to tx
func (c *Coins) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := c.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	//执行成功
	var action types.CoinsAction
	err = types.Decode(tx.GetPayload(), &action)
	if err != nil {
		panic(err)
	}
	var kv *types.KeyValue
	if action.Ty == types.CoinsActionTransfer && action.GetTransfer() != nil {
		transfer := action.GetTransfer()
		kv, err = updateAddrReciver(c.GetLocalDB(), tx.To, transfer.Amount, true)
	} else if action.Ty == types.CoinsActionWithdraw && action.GetWithdraw() != nil {
		withdraw := action.GetWithdraw()
		kv, err = updateAddrReciver(c.GetLocalDB(), tx.From(), withdraw.Amount, true)
	} else if action.Ty == types.CoinsActionGenesis && action.GetGenesis() != nil {
		gen := action.GetGenesis()
		kv, err = updateAddrReciver(c.GetLocalDB(), tx.To, gen.Amount, true)
	}
	if err != nil {
		return set, nil
	}
	if kv != nil {
		set.KV = append(set.KV, kv)
	}
	return set, nil
}

//ExecDelLocal 回退区块时回滚收款统计
func (c *Coins) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := c.DriverBase.ExecDelLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	//执行成功
	var action types.CoinsAction
	err = types.Decode(tx.GetPayload(), &action)
	if err != nil {
		panic(err)
	}
	var kv *types.KeyValue
	if action.Ty == types.CoinsActionTransfer && action.GetTransfer() != nil {
		transfer := action.GetTransfer()
		kv, err = updateAddrReciver(c.GetLocalDB(), tx.To, transfer.Amount, false)
	} else if action.Ty == types.CoinsActionWithdraw && action.GetWithdraw() != nil {
		withdraw := action.GetWithdraw()
		kv, err = updateAddrReciver(c.GetLocalDB(), tx.From(), withdraw.Amount, false)
	}
	if err != nil {
		return set, nil
	}
	if kv != nil {
		set.KV = append(set.KV, kv)
	}
	return set, nil
}

//GetAddrReciver 查询某个地址的累计收款
func (c *Coins) GetAddrReciver(addr *types.ReqAddr) (types.Message, error) {
	reciver := types.Int64{}
	db := c.GetQueryDB()
	if db == nil {
		return &reciver, types.ErrEmpty
	}
	addrReciver, err := db.Get(calcAddrKey(addr.Addr))
	if err != nil || addrReciver == nil {
		return &reciver, types.ErrEmpty
	}
	err = types.Decode(addrReciver, &reciver)
	if err != nil {
		return &reciver, err
	}
	return &reciver, nil
}

//Query 查询接口
func (c *Coins) Query(funcName string, params []byte) (types.Message, error) {
	if funcName == "GetAddrReciver" {
		var in types.ReqAddr
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return c.GetAddrReciver(&in)
	} else if funcName == "GetTxsByAddr" {
		var in types.ReqAddr
		err := types.Decode(params, &in)
		if err != nil {
			return nil, err
		}
		return c.GetTxsByAddr(&in)
	}
	return nil, types.ErrQueryNotSupport
}
