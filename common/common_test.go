// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandString(t *testing.T) {
	str := GetRandString(10)
	t.Log(str)
	assert.Len(t, str, 10)
}

func TestRandStringLen(t *testing.T) {
	str := GetRandBytes(10, 20)
	t.Log(string(str))
	if len(str) < 10 || len(str) > 20 {
		t.Error("rand str len")
	}
}

func TestGetRandPrintString(t *testing.T) {
	str := GetRandPrintString(10, 20)
	t.Log(str)
	if len(str) < 10 || len(str) > 20 {
		t.Error("rand str len")
	}
}

func TestSha256(t *testing.T) {
	h := Sha256([]byte("abc"))
	assert.Len(t, h, 32)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Bytes2Hex(h))
}

func TestSha2Sum(t *testing.T) {
	h := Sha2Sum([]byte("abc"))
	first := Sha256([]byte("abc"))
	second := Sha256(first)
	assert.Equal(t, second, h[:])
}

func TestRimp160AfterSha256(t *testing.T) {
	h := Rimp160AfterSha256([]byte("abc"))
	assert.Len(t, h[:], 20)
}

func TestHex(t *testing.T) {
	b := []byte{1, 2, 0xff}
	assert.Equal(t, "0x0102ff", ToHex(b))
	assert.True(t, IsHex("0x0102ff"))
	assert.False(t, IsHex("0102ff"))

	out, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, b, out)

	//奇数长度自动补0
	out, err = FromHex("0x102ff")
	require.NoError(t, err)
	assert.Equal(t, b, out)

	assert.Equal(t, "0x0", ToHex(nil))
}

func TestCopyBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	assert.Equal(t, src, dst)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
	assert.Nil(t, CopyBytes(nil))
}
