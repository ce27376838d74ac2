// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/cli/commands"
	clog "github.com/guessbet/guessbet/common/log"
)

var rootCmd = &cobra.Command{
	Use:   "guessbet-cli",
	Short: "guessbet client tools",
}

func init() {
	rootCmd.AddCommand(
		commands.KeyCmd(),
		commands.AccountCmd(),
		commands.CoinsCmd(),
		commands.GuessCmd(),
		commands.TxCmd(),
		commands.BlockCmd(),
		commands.VersionCmd(),
	)
}

//Run 执行cli 命令树
func Run(rpcAddr string) {
	clog.SetLogLevel("error")
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
