// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/common"
	"github.com/guessbet/guessbet/common/crypto"
	"github.com/guessbet/guessbet/types"
)

//base58 导出格式的前缀，便于和hex 格式区分
const keyExportPrefix = "GK"

//KeyCmd 密钥管理命令
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Generate and inspect private keys",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		newKeyCmd(),
		keyAddrCmd(),
		keyExportCmd(),
	)
	return cmd
}

func newKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Generate a new private key",
		Run: func(cmd *cobra.Command, args []string) {
			c, err := crypto.New(types.GetSignName(types.SECP256K1))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			priv, err := c.GenKey()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println("privkey:", common.ToHex(priv.Bytes()))
			fmt.Println("addr:", privToAddr(priv))
		},
	}
}

func keyAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Show the address of a private key",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := loadPrivKey(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(privToAddr(priv))
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func keyExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a private key in base58",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := loadPrivKey(cmd)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			fmt.Println(keyExportPrefix + base58.Encode(priv.Bytes()))
		},
	}
	addKeyFlag(cmd)
	return cmd
}

//decodeKey 识别hex 和base58 两种私钥格式
func decodeKey(keystr string) ([]byte, error) {
	if strings.HasPrefix(keystr, keyExportPrefix) {
		return base58.Decode(keystr[len(keyExportPrefix):])
	}
	return common.FromHex(keystr)
}
