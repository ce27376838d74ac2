// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/rpc"
	"github.com/guessbet/guessbet/rpc/jsonclient"
)

//AccountCmd 账户查询命令
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Query account balances and transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		balanceCmd(),
		accountTxsCmd(),
	)
	return cmd
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Query the balance of an address",
		Run:   queryBalance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("exec", "e", "", "executor name, empty for coins")
	return cmd
}

func queryBalance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	execer, _ := cmd.Flags().GetString("exec")
	params := rpc.ReqBalance{Addresses: []string{addr}, Execer: execer}
	var res rpc.Accounts
	ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "GetBalance", params, &res)
	ctx.SetResultCb(parseBalanceRes)
	ctx.Run()
}

//余额按显示单位输出
type accountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

func parseBalanceRes(arg interface{}) (interface{}, error) {
	res := arg.(*rpc.Accounts)
	var results []*accountResult
	for _, acc := range res.Acc {
		results = append(results, &accountResult{
			Addr:    acc.Addr,
			Balance: FormatAmountValue2Display(acc.Balance),
			Frozen:  FormatAmountValue2Display(acc.Frozen),
		})
	}
	return results, nil
}

func accountTxsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txs",
		Short: "List transaction hashes related to an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			count, _ := cmd.Flags().GetInt32("count")
			params := rpc.ReqAddr{Addr: addr, Count: count}
			var res rpc.ReplyTxInfos
			ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "GetTxByAddr", params, &res)
			ctx.Run()
		},
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int32P("count", "c", 10, "max number of transactions")
	return cmd
}
