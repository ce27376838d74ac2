// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

var printChars = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

//GetRandBytes 生成随机字节，长度在[min, max]区间
func GetRandBytes(min, max int) []byte {
	l := min
	if max > min {
		l += mrand.Intn(max - min + 1)
	}
	b := make([]byte, l)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

//GetRandString 生成指定长度的随机hex字符串
func GetRandString(length int) string {
	b := GetRandBytes((length+1)/2, (length+1)/2)
	return hex.EncodeToString(b)[:length]
}

//GetRandPrintString 生成随机可打印字符串
func GetRandPrintString(min, max int) string {
	b := GetRandBytes(min, max)
	for i := range b {
		b[i] = printChars[int(b[i])%len(printChars)]
	}
	return string(b)
}
