// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package init 导入所有签名驱动完成注册
package init

import (
	_ "github.com/guessbet/guessbet/common/crypto/btcscript"    // register btcscript
	_ "github.com/guessbet/guessbet/common/crypto/ed25519"      // register ed25519
	_ "github.com/guessbet/guessbet/common/crypto/ethsecp256k1" // register ethsecp256k1
	_ "github.com/guessbet/guessbet/common/crypto/secp256k1"    // register secp256k1
	_ "github.com/guessbet/guessbet/common/crypto/sm2"          // register sm2
)
