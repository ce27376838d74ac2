// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcGuessCommit(t *testing.T) {
	salt := []byte("salt-xyz")
	hash := CalcGuessCommit(42, salt)
	assert.Len(t, hash, GuessCommitHashLen)

	//承诺哈希为sha256(byte(value) || salt)
	expect := sha256.Sum256(append([]byte{42}, salt...))
	assert.Equal(t, expect[:], hash)

	//确定性
	assert.Equal(t, hash, CalcGuessCommit(42, salt))
	//值或salt 变化结果不同
	assert.NotEqual(t, hash, CalcGuessCommit(43, salt))
	assert.NotEqual(t, hash, CalcGuessCommit(42, []byte("salt-abc")))
}

func TestCheckGuessValue(t *testing.T) {
	assert.True(t, CheckGuessValue(0))
	assert.True(t, CheckGuessValue(255))
	assert.False(t, CheckGuessValue(-1))
	assert.False(t, CheckGuessValue(256))
}

func TestGuessStatusName(t *testing.T) {
	assert.Equal(t, "awaitCommit", GuessStatusName(GuessStatusAwaitCommit))
	assert.Equal(t, "staking", GuessStatusName(GuessStatusStaking))
	assert.Equal(t, "revealed", GuessStatusName(GuessStatusRevealed))
	assert.Equal(t, "settled", GuessStatusName(GuessStatusSettled))
	assert.Equal(t, "unknown", GuessStatusName(0))
}

func TestGuessActionName(t *testing.T) {
	action := &GuessAction{
		Ty:    GuessActionReveal,
		Value: &GuessAction_Reveal{Reveal: &GuessReveal{Value: 1, Salt: []byte("s")}},
	}
	assert.Equal(t, "reveal", GuessActionName(action))
	//ty 和实际内容不匹配时不识别
	action.Ty = GuessActionCommit
	assert.Equal(t, "unknown", GuessActionName(action))
}

func TestLogName(t *testing.T) {
	assert.Equal(t, "LogGuessPayout", LogName(TyLogGuessPayout))
	assert.Equal(t, "LogTransfer", LogName(TyLogTransfer))
	assert.Equal(t, "unknownLog", LogName(9999))
}
