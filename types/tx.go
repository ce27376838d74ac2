// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/common/crypto"
)

var (
	bCoins = []byte("coins")
	bGuess = []byte("guess")
)

//ExpireBound 交易过期分界线，小于expireBound比较height，大于expireBound比较blockTime
var ExpireBound int64 = 1000000000

//这里要避免用 tmp := *tx 这样就会读 可能被 proto 其他线程修改的 size 字段
//proto buffer 字段发生更改之后，一定要修改这里，否则可能引起严重的bug
func cloneTx(tx *Transaction) *Transaction {
	copytx := &Transaction{}
	copytx.Execer = tx.Execer
	copytx.Payload = tx.Payload
	copytx.Signature = tx.Signature
	copytx.Fee = tx.Fee
	copytx.Expire = tx.Expire
	copytx.Nonce = tx.Nonce
	copytx.To = tx.To
	return copytx
}

//Hash 交易hash 不包含签名，用户通过修改签名无法重新发送交易
func (tx *Transaction) Hash() []byte {
	copytx := cloneTx(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return common.Sha256(data)
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 检测签名
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := cloneTx(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return CheckSign(data, tx.GetSignature())
}

//Check 交易基本检测
func (tx *Transaction) Check(minfee int64) error {
	txSize := Size(tx)
	if txSize > int(MaxTxSize) {
		return ErrTxMsgSizeTooBig
	}
	if minfee == 0 {
		return nil
	}
	// 检查交易费是否小于最低值
	realFee := int64(txSize/1000+1) * minfee
	if tx.Fee < realFee {
		return ErrFeeTooLow
	}
	return nil
}

//SetExpire 设置交易过期时间
func (tx *Transaction) SetExpire(expire time.Duration) {
	if int64(expire) > ExpireBound {
		if expire < time.Second*120 {
			expire = time.Second * 120
		}
		//用秒数来表示的时间
		tx.Expire = time.Now().Unix() + int64(expire/time.Second)
	} else {
		tx.Expire = int64(expire)
	}
}

//GetRealFee 获取交易真实费用
func (tx *Transaction) GetRealFee(minFee int64) (int64, error) {
	txSize := Size(tx)
	//如果签名为空，那么加上签名的空间
	if tx.Signature == nil {
		txSize += 300
	}
	if txSize > int(MaxTxSize) {
		return 0, ErrTxMsgSizeTooBig
	}
	realFee := int64(txSize/1000+1) * minFee
	return realFee, nil
}

//SetRealFee 设置交易真实费用
func (tx *Transaction) SetRealFee(minFee int64) error {
	if tx.Fee == 0 {
		fee, err := tx.GetRealFee(minFee)
		if err != nil {
			return err
		}
		tx.Fee = fee
	}
	return nil
}

//IsExpire 检查交易是否过期，过期返回true，未过期返回false
func (tx *Transaction) IsExpire(height, blocktime int64) bool {
	valid := tx.Expire
	// Expire为0，返回false
	if valid == 0 {
		return false
	}
	if valid <= ExpireBound {
		//Expire小于1e9，为height
		return valid <= height
	}
	// Expire大于1e9，为blockTime
	return valid <= blocktime
}

//From 交易from地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddr(tx.GetSignature().GetPubkey())
}

//ActionName 获取tx交易的Actionname
func (tx *Transaction) ActionName() string {
	if bytes.Equal(tx.Execer, bCoins) {
		var action CoinsAction
		err := Decode(tx.Payload, &action)
		if err != nil {
			return "unknown-err"
		}
		if action.Ty == CoinsActionTransfer && action.GetTransfer() != nil {
			return "transfer"
		} else if action.Ty == CoinsActionWithdraw && action.GetWithdraw() != nil {
			return "withdraw"
		} else if action.Ty == CoinsActionGenesis && action.GetGenesis() != nil {
			return "genesis"
		} else if action.Ty == CoinsActionTransferToExec && action.GetTransferToExec() != nil {
			return "sendToExec"
		}
	} else if bytes.Equal(tx.Execer, bGuess) {
		var action GuessAction
		err := Decode(tx.Payload, &action)
		if err != nil {
			return "unknown-err"
		}
		return GuessActionName(&action)
	}
	return "unknown"
}

//Amount 解析tx的payload获取amount值
func (tx *Transaction) Amount() (int64, error) {
	if bytes.Equal(tx.Execer, bCoins) {
		var action CoinsAction
		err := Decode(tx.GetPayload(), &action)
		if err != nil {
			return 0, err
		}
		if action.Ty == CoinsActionTransfer && action.GetTransfer() != nil {
			return action.GetTransfer().GetAmount(), nil
		} else if action.Ty == CoinsActionWithdraw && action.GetWithdraw() != nil {
			return action.GetWithdraw().GetAmount(), nil
		} else if action.Ty == CoinsActionGenesis && action.GetGenesis() != nil {
			return action.GetGenesis().GetAmount(), nil
		} else if action.Ty == CoinsActionTransferToExec && action.GetTransferToExec() != nil {
			return action.GetTransferToExec().GetAmount(), nil
		}
	} else if bytes.Equal(tx.Execer, bGuess) {
		var action GuessAction
		err := Decode(tx.GetPayload(), &action)
		if err != nil {
			return 0, err
		}
		if action.Ty == GuessActionStake && action.GetStake() != nil {
			return action.GetStake().GetAmount(), nil
		}
	}
	return 0, nil
}

//JSON Transaction交易信息转成json结构体
func (tx *Transaction) JSON() string {
	type transaction struct {
		Hash      string     `json:"hash,omitempty"`
		Execer    string     `json:"execer,omitempty"`
		Payload   string     `json:"payload,omitempty"`
		Signature *Signature `json:"signature,omitempty"`
		Fee       int64      `json:"fee,omitempty"`
		Expire    int64      `json:"expire,omitempty"`
		// 随机ID，可以防止payload 相同的时候，交易重复
		Nonce int64 `json:"nonce,omitempty"`
		// 对方地址，如果没有对方地址，可以为空
		To string `json:"to,omitempty"`
	}

	newtx := &transaction{}
	newtx.Hash = hex.EncodeToString(tx.Hash())
	newtx.Execer = string(tx.Execer)
	newtx.Payload = hex.EncodeToString(tx.Payload)
	newtx.Signature = tx.Signature
	newtx.Fee = tx.Fee
	newtx.Expire = tx.Expire
	newtx.Nonce = tx.Nonce
	newtx.To = tx.To
	data, err := json.MarshalIndent(newtx, "", "\t")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// ParseExpire parse expire to int from during or height
func ParseExpire(expire string) (int64, error) {
	if len(expire) == 0 {
		return 0, ErrInvalidParam
	}
	blockHeight, err := strconv.ParseInt(expire, 10, 64)
	if err == nil {
		return blockHeight, nil
	}
	expireTime, err := time.ParseDuration(expire)
	if err == nil {
		return int64(expireTime), nil
	}
	return 0, err
}
