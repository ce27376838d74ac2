// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/common/address"
	"github.com/guessbet/guessbet/rpc"
	"github.com/guessbet/guessbet/rpc/jsonclient"
	"github.com/guessbet/guessbet/types"
)

//GuessCmd 猜数游戏命令
func GuessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Play the commit-reveal guessing game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		guessInitCmd(),
		guessCalcCommitCmd(),
		guessCommitCmd(),
		guessStakeCmd(),
		guessRevealCmd(),
		guessWithdrawCmd(),
		guessRecoverCmd(),
		guessRoundCmd(),
		guessParticipantsCmd(),
		guessBookCmd(),
		guessStakeQueryCmd(),
		guessPendingCmd(),
		guessStakesCmd(),
		guessPayoutsCmd(),
	)
	return cmd
}

func sendGuessTx(cmd *cobra.Command, action *types.GuessAction) {
	tx := &types.Transaction{
		Execer:  []byte(types.GuessX),
		Payload: types.Encode(action),
		To:      address.ExecAddress(types.GuessX),
	}
	sendTx(cmd, tx)
}

//queryGuess 走Guessbet.Query，payload 为proto 的hex 编码
func queryGuess(cmd *cobra.Command, funcName string, req types.Message, res interface{}) {
	params := rpc.Query4Jrpc{
		Execer:   types.GuessX,
		FuncName: funcName,
		Payload:  common.ToHex(types.Encode(req)),
	}
	ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "Query", params, res)
	ctx.Run()
}

func guessInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Claim the admin role and initialize the round",
		Run: func(cmd *cobra.Command, args []string) {
			sendGuessTx(cmd, &types.GuessAction{
				Ty:    types.GuessActionInit,
				Value: &types.GuessAction_Init{Init: &types.GuessInit{}},
			})
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func guessCalcCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc_commit",
		Short: "Compute the commitment hash of a value and salt locally",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt32("value")
			salt, _ := cmd.Flags().GetString("salt")
			if !types.CheckGuessValue(value) {
				fmt.Fprintln(os.Stderr, types.ErrGuessBadValue)
				return
			}
			if salt == "" || len(salt) > types.GuessMaxSaltLen {
				fmt.Fprintln(os.Stderr, types.ErrGuessBadSalt)
				return
			}
			fmt.Println(common.ToHex(types.CalcGuessCommit(value, []byte(salt))))
		},
	}
	addGuessValueFlags(cmd)
	return cmd
}

func guessCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Publish the commitment hash and open staking (admin)",
		Run: func(cmd *cobra.Command, args []string) {
			hashstr, _ := cmd.Flags().GetString("hash")
			hash, err := common.FromHex(hashstr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			sendGuessTx(cmd, &types.GuessAction{
				Ty:    types.GuessActionCommit,
				Value: &types.GuessAction_Commit{Commit: &types.GuessCommit{Hash: hash}},
			})
		},
	}
	cmd.Flags().StringP("hash", "s", "", "commitment hash in hex")
	cmd.MarkFlagRequired("hash")
	addKeyFlag(cmd)
	return cmd
}

func guessStakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Stake coins on a guessed value",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt32("value")
			amount, err := GetAmountValue(cmd, "amount")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			sendGuessTx(cmd, &types.GuessAction{
				Ty:    types.GuessActionStake,
				Value: &types.GuessAction_Stake{Stake: &types.GuessStake{Value: value, Amount: amount}},
			})
		},
	}
	cmd.Flags().Int32P("value", "v", 0, "guessed value, 0-255")
	cmd.MarkFlagRequired("value")
	cmd.Flags().StringP("amount", "a", "0", "stake amount")
	cmd.MarkFlagRequired("amount")
	addKeyFlag(cmd)
	return cmd
}

func guessRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed value and settle the round (admin)",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt32("value")
			salt, _ := cmd.Flags().GetString("salt")
			sendGuessTx(cmd, &types.GuessAction{
				Ty:    types.GuessActionReveal,
				Value: &types.GuessAction_Reveal{Reveal: &types.GuessReveal{Value: value, Salt: []byte(salt)}},
			})
		},
	}
	addGuessValueFlags(cmd)
	addKeyFlag(cmd)
	return cmd
}

func guessWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw a deferred payout",
		Run: func(cmd *cobra.Command, args []string) {
			sendGuessTx(cmd, &types.GuessAction{
				Ty:    types.GuessActionWithdraw,
				Value: &types.GuessAction_Withdraw{Withdraw: &types.GuessWithdraw{}},
			})
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func guessRecoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Sweep the remaining pool after settlement (admin)",
		Run: func(cmd *cobra.Command, args []string) {
			sendGuessTx(cmd, &types.GuessAction{
				Ty:    types.GuessActionRecover,
				Value: &types.GuessAction_Recover{Recover: &types.GuessRecover{}},
			})
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func addGuessValueFlags(cmd *cobra.Command) {
	cmd.Flags().Int32P("value", "v", 0, "guessed value, 0-255")
	cmd.MarkFlagRequired("value")
	cmd.Flags().StringP("salt", "s", "", "salt string, max 64 bytes")
	cmd.MarkFlagRequired("salt")
}

func guessRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round",
		Short: "Show the current round state and pool balance",
		Run: func(cmd *cobra.Command, args []string) {
			var res types.ReplyGuessRound
			queryGuess(cmd, "GetRound", &types.ReqNil{}, &res)
		},
	}
}

func guessParticipantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participants",
		Short: "List participants who staked on a value",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt32("value")
			var res types.ReplyGuessParticipants
			queryGuess(cmd, "GetParticipants", &types.ReqGuessValue{Value: value}, &res)
		},
	}
	cmd.Flags().Int32P("value", "v", 0, "guessed value, 0-255")
	cmd.MarkFlagRequired("value")
	return cmd
}

func guessBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Show the value book of a guessed value",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt32("value")
			var res types.GuessValueBook
			queryGuess(cmd, "GetValueBook", &types.ReqGuessValue{Value: value}, &res)
		},
	}
	cmd.Flags().Int32P("value", "v", 0, "guessed value, 0-255")
	cmd.MarkFlagRequired("value")
	return cmd
}

func guessStakeQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake_of",
		Short: "Show the stake of an address on a value",
		Run: func(cmd *cobra.Command, args []string) {
			value, _ := cmd.Flags().GetInt32("value")
			addr, _ := cmd.Flags().GetString("addr")
			var res types.GuessStakeRecord
			queryGuess(cmd, "GetStake", &types.ReqGuessStake{Value: value, Addr: addr}, &res)
		},
	}
	cmd.Flags().Int32P("value", "v", 0, "guessed value, 0-255")
	cmd.MarkFlagRequired("value")
	cmd.Flags().StringP("addr", "a", "", "participant address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func guessPendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Show the deferred payout owed to an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			var res types.GuessPending
			queryGuess(cmd, "GetPending", &types.ReqGuessAddr{Addr: addr}, &res)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "participant address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func guessStakesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakes",
		Short: "List all stakes placed by an address",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			var res types.ReplyGuessStakes
			queryGuess(cmd, "ListStakesByAddr", &types.ReqGuessAddr{Addr: addr}, &res)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "participant address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func guessPayoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "List settlement payout records",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			var res types.ReplyGuessPayouts
			queryGuess(cmd, "ListPayouts", &types.ReqGuessAddr{Addr: addr}, &res)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "participant address")
	cmd.MarkFlagRequired("addr")
	return cmd
}
