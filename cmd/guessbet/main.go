// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	_ "github.com/guessbet/guessbet/common/crypto/init" //注册签名驱动
	"github.com/guessbet/guessbet/util/cli"
)

func main() {
	cli.RunGuessbet("guessbet")
}
