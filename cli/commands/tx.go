// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/rpc"
	"github.com/guessbet/guessbet/rpc/jsonclient"
	"github.com/guessbet/guessbet/types"
)

//TxCmd 交易查询命令
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Query and decode transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		queryTxCmd(),
		decodeTxCmd(),
	)
	return cmd
}

func queryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query a transaction by hash",
		Run: func(cmd *cobra.Command, args []string) {
			hash, _ := cmd.Flags().GetString("hash")
			params := rpc.QueryParm{Hash: hash}
			var res rpc.TransactionDetail
			ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "QueryTransaction", params, &res)
			ctx.Run()
		},
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash in hex")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func decodeTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a raw transaction locally",
		Run: func(cmd *cobra.Command, args []string) {
			datastr, _ := cmd.Flags().GetString("data")
			data, err := common.FromHex(datastr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			var tx types.Transaction
			if err := types.Decode(data, &tx); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(tx.JSON())
		},
	}
	cmd.Flags().StringP("data", "d", "", "raw transaction in hex")
	cmd.MarkFlagRequired("data")
	return cmd
}
