// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/guessbet/guessbet/common"
)

//CalcGuessCommit 计算承诺哈希 sha256(value || salt)，value 只取低8位
func CalcGuessCommit(value int32, salt []byte) []byte {
	data := make([]byte, 0, len(salt)+1)
	data = append(data, byte(value))
	data = append(data, salt...)
	return common.Sha256(data)
}

//CheckGuessValue 检测猜测值的值域
func CheckGuessValue(value int32) bool {
	return value >= 0 && value <= GuessMaxValue
}

var guessStatusName = map[int32]string{
	GuessStatusAwaitCommit: "awaitCommit",
	GuessStatusStaking:     "staking",
	GuessStatusRevealed:    "revealed",
	GuessStatusSettled:     "settled",
}

//GuessStatusName 获取局状态名称
func GuessStatusName(status int32) string {
	if name, ok := guessStatusName[status]; ok {
		return name
	}
	return "unknown"
}

//GuessActionName 获取action name，做显示使用
func GuessActionName(action *GuessAction) string {
	switch action.Ty {
	case GuessActionInit:
		if action.GetInit() != nil {
			return "init"
		}
	case GuessActionCommit:
		if action.GetCommit() != nil {
			return "commit"
		}
	case GuessActionStake:
		if action.GetStake() != nil {
			return "stake"
		}
	case GuessActionReveal:
		if action.GetReveal() != nil {
			return "reveal"
		}
	case GuessActionWithdraw:
		if action.GetWithdraw() != nil {
			return "withdraw"
		}
	case GuessActionRecover:
		if action.GetRecover() != nil {
			return "recover"
		}
	}
	return "unknown"
}
