// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guessbet/guessbet/common/crypto"

	_ "github.com/guessbet/guessbet/common/crypto/init"
)

func testTx() *Transaction {
	action := &CoinsAction{
		Ty:    CoinsActionTransfer,
		Value: &CoinsAction_Transfer{Transfer: &CoinsTransfer{Amount: 3 * Coin}},
	}
	return &Transaction{
		Execer:  []byte(CoinsX),
		Payload: Encode(action),
		Fee:     MinFee,
		Nonce:   12345,
		To:      "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo",
	}
}

func TestTxHash(t *testing.T) {
	tx := testTx()
	hash := tx.Hash()
	assert.Len(t, hash, 32)
	//哈希不包含签名
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	tx.Sign(SECP256K1, priv)
	assert.Equal(t, hash, tx.Hash())
}

func TestTxSign(t *testing.T) {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	tx := testTx()
	assert.False(t, tx.CheckSign())
	tx.Sign(SECP256K1, priv)
	assert.True(t, tx.CheckSign())
	assert.NotEmpty(t, tx.From())

	//改动payload 后签名失效
	tx.Payload = append(tx.Payload, 0x01)
	assert.False(t, tx.CheckSign())
}

func TestTxCheck(t *testing.T) {
	tx := testTx()
	assert.NoError(t, tx.Check(MinFee))

	tx.Fee = MinFee - 1
	assert.Equal(t, ErrFeeTooLow, tx.Check(MinFee))
	//minfee 为0 时不检查手续费
	assert.NoError(t, tx.Check(0))
}

func TestTxExpire(t *testing.T) {
	tx := testTx()
	//Expire 为0 永不过期
	assert.False(t, tx.IsExpire(100000, time.Now().Unix()))

	//小于ExpireBound 按高度判断
	tx.Expire = 100
	assert.False(t, tx.IsExpire(99, 0))
	assert.True(t, tx.IsExpire(100, 0))

	//大于ExpireBound 按时间判断
	now := time.Now().Unix()
	tx.SetExpire(time.Hour)
	assert.False(t, tx.IsExpire(0, now))
	assert.True(t, tx.IsExpire(0, now+3601))

	//过短的时间会被提升到120秒
	tx.SetExpire(2 * time.Second)
	assert.GreaterOrEqual(t, tx.Expire, now+120)

	//恰好在界上的值按高度/原样语义存储，不走时间分支
	tx.SetExpire(time.Duration(ExpireBound))
	assert.Equal(t, ExpireBound, tx.Expire)
}

func TestParseExpire(t *testing.T) {
	_, err := ParseExpire("")
	assert.Equal(t, ErrInvalidParam, err)

	height, err := ParseExpire("100")
	assert.NoError(t, err)
	assert.Equal(t, int64(100), height)

	duration, err := ParseExpire("1h")
	assert.NoError(t, err)
	assert.Equal(t, int64(time.Hour), duration)

	_, err = ParseExpire("bad")
	assert.Error(t, err)
}

func TestTxActionName(t *testing.T) {
	tx := testTx()
	assert.Equal(t, "transfer", tx.ActionName())

	guess := &GuessAction{
		Ty:    GuessActionStake,
		Value: &GuessAction_Stake{Stake: &GuessStake{Value: 7, Amount: Coin}},
	}
	tx.Execer = []byte(GuessX)
	tx.Payload = Encode(guess)
	assert.Equal(t, "stake", tx.ActionName())
}

func TestTxAmount(t *testing.T) {
	tx := testTx()
	amount, err := tx.Amount()
	require.NoError(t, err)
	assert.Equal(t, 3*Coin, amount)
}

func TestGetRealFee(t *testing.T) {
	tx := testTx()
	fee, err := tx.GetRealFee(MinFee)
	require.NoError(t, err)
	assert.Equal(t, MinFee, fee)
}
