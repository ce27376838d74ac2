// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var (
	//AllowUserExec 系统允许的执行器
	AllowUserExec = []string{"coins", "guess", "none"}
	//EmptyValue 这字符串表示数据库中的空值
	EmptyValue = []byte("emptyBVBiCj5jvE15pEiwro8TQRGnJSNsJF")
)

var (
	MinFee             int64 = 1e5
	MinBalanceTransfer int64 = 1e6
)

func SetMinFee(fee int64) {
	if fee < 0 {
		panic("fee less than zero")
	}
	MinFee = fee
	MinBalanceTransfer = fee * 10
}

var guessParticipantLimit int32 = 1024

//SetGuessParticipantLimit 设置单个猜测值的参与人数上限
func SetGuessParticipantLimit(limit int32) {
	if limit <= 0 {
		panic("participant limit less than zero")
	}
	guessParticipantLimit = limit
}

//GetGuessParticipantLimit 获取单个猜测值的参与人数上限
func GetGuessParticipantLimit() int32 {
	return guessParticipantLimit
}

//执行器名称
const (
	CoinsX = "coins"
	GuessX = "guess"
	NoneX  = "none"
)

//币的精度:1e8 表示一个币
const (
	Coin           int64 = 1e8
	MaxCoin        int64 = 1e17
	MaxTxSize            = 100000 //100K
	MaxBlockSize         = 20000000
	MaxTxsPerBlock int64 = 100000
)

//Receipt 的执行结果分类
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//签名类型
const (
	SECP256K1    = 1
	ED25519      = 2
	SM2          = 3
	SECP256K1ETH = 4
	BTCSCRIPT    = 5
)

//coins action
const (
	CoinsActionTransfer       = 1
	CoinsActionGenesis        = 2
	CoinsActionWithdraw       = 3
	CoinsActionTransferToExec = 10
)

//guess action
const (
	GuessActionInit     = 1
	GuessActionCommit   = 2
	GuessActionStake    = 3
	GuessActionReveal   = 4
	GuessActionWithdraw = 5
	GuessActionRecover  = 6
)

//guess 局状态：初始化后等待承诺 -> 接受押注 -> 已开奖 -> 已结算
//状态只能向前推进，不能回退
const (
	GuessStatusAwaitCommit = int32(1)
	GuessStatusStaking     = int32(2)
	GuessStatusRevealed    = int32(3)
	GuessStatusSettled     = int32(4)
)

//guess 的猜测值域为一个字节，salt 限长防止payload 被撑大
const (
	GuessMaxValue      = 255
	GuessMaxSaltLen    = 64
	GuessCommitHashLen = 32
)

//系统日志类型
const (
	TyLogErr = 1
	TyLogFee = 2
	//coins
	TyLogTransfer     = 3
	TyLogGenesis      = 4
	TyLogDeposit      = 5
	TyLogExecTransfer = 6
	TyLogExecWithdraw = 7
	TyLogExecDeposit  = 8
	TyLogExecFrozen   = 9
	TyLogExecActive   = 10
)

//guess 日志类型
const (
	TyLogGuessInit     = 730
	TyLogGuessCommit   = 731
	TyLogGuessStake    = 732
	TyLogGuessReveal   = 733
	TyLogGuessPayout   = 734
	TyLogGuessPending  = 735
	TyLogGuessWithdraw = 736
	TyLogGuessRecover  = 737
)

//ExecName 执行器name
func ExecName(name string) string {
	return name
}

//LogName 日志类型名称，用于rpc 展示
func LogName(ty int32) string {
	switch ty {
	case TyLogErr:
		return "LogErr"
	case TyLogFee:
		return "LogFee"
	case TyLogTransfer:
		return "LogTransfer"
	case TyLogGenesis:
		return "LogGenesis"
	case TyLogDeposit:
		return "LogDeposit"
	case TyLogExecTransfer:
		return "LogExecTransfer"
	case TyLogExecWithdraw:
		return "LogExecWithdraw"
	case TyLogExecDeposit:
		return "LogExecDeposit"
	case TyLogExecFrozen:
		return "LogExecFrozen"
	case TyLogExecActive:
		return "LogExecActive"
	case TyLogGuessInit:
		return "LogGuessInit"
	case TyLogGuessCommit:
		return "LogGuessCommit"
	case TyLogGuessStake:
		return "LogGuessStake"
	case TyLogGuessReveal:
		return "LogGuessReveal"
	case TyLogGuessPayout:
		return "LogGuessPayout"
	case TyLogGuessPending:
		return "LogGuessPending"
	case TyLogGuessWithdraw:
		return "LogGuessWithdraw"
	case TyLogGuessRecover:
		return "LogGuessRecover"
	}
	return "unknownLog"
}

//GetSignName 根据签名类型获取签名名称
func GetSignName(signType int) string {
	switch signType {
	case SECP256K1:
		return "secp256k1"
	case ED25519:
		return "ed25519"
	case SM2:
		return "sm2"
	case SECP256K1ETH:
		return "ethsecp256k1"
	case BTCSCRIPT:
		return "btcscript"
	}
	return "secp256k1"
}

//GetSignType 根据签名名称获取签名类型
func GetSignType(name string) int {
	switch name {
	case "secp256k1":
		return SECP256K1
	case "ed25519":
		return ED25519
	case "sm2":
		return SM2
	case "ethsecp256k1":
		return SECP256K1ETH
	case "btcscript":
		return BTCSCRIPT
	}
	return 0
}
