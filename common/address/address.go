// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address 计算地址
package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/guessbet/guessbet/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var execAddrSeed = []byte("address seed bytes for public key")
var execAddressCache *lru.Cache
var pubKeyAddrCache *lru.Cache
var checkAddressCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

func init() {
	execAddressCache, _ = lru.New(10240)
	pubKeyAddrCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubKey 合约名生成公钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], execAddrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 合约地址，计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := execAddressCache.Get(name); ok {
		return value.(string)
	}
	addr := GetExecAddress(name).String()
	execAddressCache.Add(name, addr)
	return addr
}

//GetExecAddress 合约地址，不带cache
func GetExecAddress(name string) *Address {
	return PubKeyToAddress(ExecPubKey(name))
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = make([]byte, len(in))
	copy(a.Pubkey, in)
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//PubKeyToAddr 公钥转为地址字符串
func PubKeyToAddr(in []byte) string {
	if value, ok := pubKeyAddrCache.Get(string(in)); ok {
		return value.(string)
	}
	addr := PubKeyToAddress(in).String()
	pubKeyAddrCache.Add(string(in), addr)
	return addr
}

//CheckAddress 检查地址合法性
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	dec := base58.Decode(addr)
	if dec == nil {
		e = errors.New("Cannot decode b58 string '" + addr + "'")
		checkAddressCache.Add(addr, e)
		return
	}
	if len(dec) < 25 {
		e = errors.New("Address too short " + hex.EncodeToString(dec))
		checkAddressCache.Add(addr, e)
		return
	}
	if len(dec) == 25 {
		sh := common.Sha2Sum(dec[0:21])
		if !bytes.Equal(sh[:4], dec[21:25]) {
			e = errors.New("Address Checksum error")
		}
	}
	checkAddressCache.Add(addr, e)
	return
}

//NewAddrFromString 从字符串解析地址
func NewAddrFromString(hs string) (a *Address, e error) {
	dec := base58.Decode(hs)
	if dec == nil {
		return nil, errors.New("Cannot decode b58 string '" + hs + "'")
	}
	if len(dec) < 25 {
		return nil, errors.New("Address too short " + hex.EncodeToString(dec))
	}
	if len(dec) == 25 {
		sh := common.Sha2Sum(dec[0:21])
		if !bytes.Equal(sh[:4], dec[21:25]) {
			e = errors.New("Address Checksum error")
		} else {
			a = new(Address)
			a.Version = dec[0]
			copy(a.Hash160[:], dec[1:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, dec[21:25])
			a.Enc58str = hs
		}
	}
	return
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
