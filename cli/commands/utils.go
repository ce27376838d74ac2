// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands cli 命令树，交易在本地签名后通过json-rpc 提交
package commands

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/common/crypto"
	"github.com/guessbet/guessbet/rpc/jsonclient"
	"github.com/guessbet/guessbet/types"

	_ "github.com/guessbet/guessbet/common/crypto/init"
)

//GetAmountValue 命令行的amount 转成最小单位，decimal 避免浮点误差
func GetAmountValue(cmd *cobra.Command, field string) (int64, error) {
	amount, _ := cmd.Flags().GetString(field)
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q: %v", amount, err)
	}
	result := d.Mul(decimal.NewFromInt(types.Coin))
	if !result.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than 8 decimal places", amount)
	}
	if result.Sign() <= 0 {
		return 0, fmt.Errorf("amount %q must be positive", amount)
	}
	return result.IntPart(), nil
}

//FormatAmountValue2Display 最小单位转成显示值
func FormatAmountValue2Display(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(types.Coin)).String()
}

func getRPCAddr(cmd *cobra.Command) string {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	return rpcLaddr
}

//loadPrivKey 从命令行的key 标志恢复私钥，支持hex 和base58 两种格式
func loadPrivKey(cmd *cobra.Command) (crypto.PrivKey, error) {
	keystr, _ := cmd.Flags().GetString("key")
	if keystr == "" {
		return nil, fmt.Errorf("private key not set, use -k")
	}
	data, err := decodeKey(keystr)
	if err != nil {
		return nil, err
	}
	c, err := crypto.New(types.GetSignName(types.SECP256K1))
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(data)
}

//sendTx 签名并提交交易，成功时打印交易哈希
func sendTx(cmd *cobra.Command, tx *types.Transaction) {
	priv, err := loadPrivKey(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx.Fee = types.MinFee
	tx.Nonce = rand.Int63()
	tx.Sign(types.SECP256K1, priv)

	rpc, err := jsonclient.NewJSONClient(getRPCAddr(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var res string
	err = rpc.Call("SendTransaction", struct {
		Data string `json:"data"`
	}{Data: common.ToHex(types.Encode(tx))}, &res)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(res)
}

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key of the sender")
	cmd.MarkFlagRequired("key")
}

//privToAddr 私钥对应的地址
func privToAddr(priv crypto.PrivKey) string {
	return address.PubKeyToAddr(priv.PubKey().Bytes())
}
