// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/types"
)

//CoinsCmd 本币转账命令
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Send system coins transactions",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		transferCmd(),
		sendToExecCmd(),
		withdrawCmd(),
	)
	return cmd
}

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer coins to an address",
		Run:   sendTransfer,
	}
	cmd.Flags().StringP("to", "t", "", "receiver account address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "0", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	addKeyFlag(cmd)
	return cmd
}

func sendTransfer(cmd *cobra.Command, args []string) {
	to, _ := cmd.Flags().GetString("to")
	note, _ := cmd.Flags().GetString("note")
	amount, err := GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if err := address.CheckAddress(to); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &types.CoinsAction{
		Ty: types.CoinsActionTransfer,
		Value: &types.CoinsAction_Transfer{
			Transfer: &types.CoinsTransfer{Amount: amount, Note: note},
		},
	}
	tx := &types.Transaction{
		Execer:  []byte(types.CoinsX),
		Payload: types.Encode(action),
		To:      to,
	}
	sendTx(cmd, tx)
}

func sendToExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send_exec",
		Short: "Transfer coins into an executor sub account",
		Run:   sendToExec,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	cmd.Flags().StringP("amount", "a", "0", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	addKeyFlag(cmd)
	return cmd
}

func sendToExec(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("exec")
	note, _ := cmd.Flags().GetString("note")
	amount, err := GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &types.CoinsAction{
		Ty: types.CoinsActionTransferToExec,
		Value: &types.CoinsAction_TransferToExec{
			TransferToExec: &types.CoinsTransferToExec{Amount: amount, Note: note, ExecName: execer},
		},
	}
	tx := &types.Transaction{
		Execer:  []byte(types.CoinsX),
		Payload: types.Encode(action),
		To:      address.ExecAddress(execer),
	}
	sendTx(cmd, tx)
}

func withdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw coins from an executor sub account",
		Run:   sendWithdraw,
	}
	cmd.Flags().StringP("exec", "e", "", "executor name")
	cmd.MarkFlagRequired("exec")
	cmd.Flags().StringP("amount", "a", "0", "transaction amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("note", "n", "", "transaction note info")
	addKeyFlag(cmd)
	return cmd
}

func sendWithdraw(cmd *cobra.Command, args []string) {
	execer, _ := cmd.Flags().GetString("exec")
	note, _ := cmd.Flags().GetString("note")
	amount, err := GetAmountValue(cmd, "amount")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	action := &types.CoinsAction{
		Ty: types.CoinsActionWithdraw,
		Value: &types.CoinsAction_Withdraw{
			Withdraw: &types.CoinsWithdraw{Amount: amount, Note: note, ExecName: execer},
		},
	}
	tx := &types.Transaction{
		Execer:  []byte(types.CoinsX),
		Payload: types.Encode(action),
		To:      address.ExecAddress(execer),
	}
	sendTx(cmd, tx)
}
