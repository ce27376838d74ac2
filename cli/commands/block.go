// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/qianlnk/pgbar"
	"github.com/spf13/cobra"

	"github.com/guessbet/guessbet/rpc"
	"github.com/guessbet/guessbet/rpc/jsonclient"
	"github.com/guessbet/guessbet/types"
)

//BlockCmd 区块查询命令
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Query blocks and headers",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		lastHeaderCmd(),
		headersCmd(),
		getBlocksCmd(),
		getBlockByHashCmd(),
		exportBlocksCmd(),
	)
	return cmd
}

func lastHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last_header",
		Short: "Show the latest block header",
		Run: func(cmd *cobra.Command, args []string) {
			var res rpc.Header
			ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "GetLastHeader", &types.ReqNil{}, &res)
			ctx.Run()
		},
	}
}

func headersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Get block headers between start and end heights",
		Run: func(cmd *cobra.Command, args []string) {
			start, _ := cmd.Flags().GetInt64("start")
			end, _ := cmd.Flags().GetInt64("end")
			params := rpc.BlockParam{Start: start, End: end}
			var res rpc.Headers
			ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "GetHeaders", params, &res)
			ctx.Run()
		},
	}
	addBlockRangeFlags(cmd)
	return cmd
}

func getBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get blocks between start and end heights",
		Run: func(cmd *cobra.Command, args []string) {
			start, _ := cmd.Flags().GetInt64("start")
			end, _ := cmd.Flags().GetInt64("end")
			detail, _ := cmd.Flags().GetBool("detail")
			params := rpc.BlockParam{Start: start, End: end, Isdetail: detail}
			var res rpc.BlockDetails
			ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "GetBlocks", params, &res)
			ctx.Run()
		},
	}
	addBlockRangeFlags(cmd)
	cmd.Flags().BoolP("detail", "d", false, "include receipts")
	return cmd
}

func getBlockByHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Get a block by its hash",
		Run: func(cmd *cobra.Command, args []string) {
			hash, _ := cmd.Flags().GetString("hash")
			params := rpc.QueryParm{Hash: hash}
			var res rpc.BlockDetail
			ctx := jsonclient.NewRPCCtx(getRPCAddr(cmd), "GetBlockByHash", params, &res)
			ctx.Run()
		},
	}
	cmd.Flags().StringP("hash", "s", "", "block hash in hex")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func addBlockRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("start", "s", 0, "start height")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("end", "e", 0, "end height")
	cmd.MarkFlagRequired("end")
}

func exportBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export blocks to a json lines file",
		Run:   exportBlocks,
	}
	cmd.Flags().StringP("file", "f", "blocks.jsonl", "output file")
	cmd.Flags().Int64P("start", "s", 0, "start height")
	cmd.Flags().Int64P("end", "e", -1, "end height, -1 for the latest block")
	return cmd
}

//exportBlocks 逐段拉取区块写入文件，pgbar 展示进度
func exportBlocks(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	start, _ := cmd.Flags().GetInt64("start")
	end, _ := cmd.Flags().GetInt64("end")

	rpcLaddr := getRPCAddr(cmd)
	client, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if end < 0 {
		var lastHeader rpc.Header
		if err := client.Call("GetLastHeader", &types.ReqNil{}, &lastHeader); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		end = lastHeader.Height
	}
	if end < start {
		fmt.Fprintln(os.Stderr, types.ErrEndLessThanStartHeight)
		return
	}

	out, err := os.Create(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer func() {
		if err := out.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()
	writer := bufio.NewWriter(out)

	pgbar.Println("export blocks")
	bar := pgbar.NewBar(0, "blocks", int(end-start+1))
	//每批最多拉100 个区块，和服务端的上限一致
	const step = int64(100)
	for height := start; height <= end; height += step {
		last := height + step - 1
		if last > end {
			last = end
		}
		var details rpc.BlockDetails
		err := client.Call("GetBlocks", rpc.BlockParam{Start: height, End: last, Isdetail: true}, &details)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		for _, item := range details.Items {
			line, err := json.Marshal(item)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			if _, err := writer.Write(append(line, '\n')); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			bar.Add(1)
		}
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("\nexported blocks [%d, %d] to %s\n", start, end, file)
}
