// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

//系统及coins 相关错误
var (
	ErrNotFound              = errors.New("ErrNotFound")
	ErrNoBalance             = errors.New("ErrNoBalance")
	ErrAmount                = errors.New("ErrAmount")
	ErrBalanceLessThanTenTimesFee = errors.New("ErrBalanceLessThanTenTimesFee")
	ErrTxExpire              = errors.New("ErrTxExpire")
	ErrFeeTooLow             = errors.New("ErrFeeTooLow")
	ErrTxMsgSizeTooBig       = errors.New("ErrTxMsgSizeTooBig")
	ErrSign                  = errors.New("ErrSign")
	ErrEmpty                 = errors.New("ErrEmpty")
	ErrActionNotSupport      = errors.New("ErrActionNotSupport")
	ErrUnknowDriver          = errors.New("ErrUnknowDriver")
	ErrExecNameNotMath       = errors.New("ErrExecNameNotMath")
	ErrExecNameNotAllow      = errors.New("ErrExecNameNotAllow")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrSendSameToRecv        = errors.New("ErrSendSameToRecv")
	ErrInputPara             = errors.New("ErrInputPara")
	ErrInvalidParam          = errors.New("ErrInvalidParam")
	ErrBlockExec             = errors.New("ErrBlockExec")
	ErrHashNotExist          = errors.New("ErrHashNotExist")
	ErrHeightNotExist        = errors.New("ErrHeightNotExist")
	ErrTxNotExist            = errors.New("ErrTxNotExist")
	ErrEndLessThanStartHeight = errors.New("ErrEndLessThanStartHeight")
	ErrChannelClosed         = errors.New("ErrChannelClosed")
	ErrChannelFull           = errors.New("ErrChannelFull")
	ErrSymbolNameNotAllow    = errors.New("ErrSymbolNameNotAllow")
	ErrCloneTx               = errors.New("ErrCloneTx")
	ErrDataBaseDamage        = errors.New("ErrDataBaseDamage")
	ErrReRunGenesis          = errors.New("ErrReRunGenesis")
	ErrQueryNotSupport       = errors.New("ErrQueryNotSupport")
	ErrNotAllowOperate       = errors.New("ErrNotAllowOperate")
)

//guess 执行器错误
//错误值区分鉴权、阶段、参数、承诺校验、转账、余额六类失败
var (
	//已经初始化过，管理员只能认领一次
	ErrGuessInited = errors.New("ErrGuessInited")
	//局还没有初始化
	ErrGuessNotInited = errors.New("ErrGuessNotInited")
	//非管理员调用管理员操作
	ErrGuessNotAdmin = errors.New("ErrGuessNotAdmin")
	//当前状态下不允许该操作
	ErrGuessStatus = errors.New("ErrGuessStatus")
	//承诺哈希为全零或长度不对
	ErrGuessZeroCommit = errors.New("ErrGuessZeroCommit")
	//猜测值超出一个字节的值域
	ErrGuessBadValue = errors.New("ErrGuessBadValue")
	//salt 为空或超长
	ErrGuessBadSalt = errors.New("ErrGuessBadSalt")
	//开奖数据与承诺哈希不匹配
	ErrGuessCommitMismatch = errors.New("ErrGuessCommitMismatch")
	//该值的参与人数达到上限
	ErrGuessTooManyPlayers = errors.New("ErrGuessTooManyPlayers")
	//没有待提现的余额
	ErrGuessNothingPending = errors.New("ErrGuessNothingPending")
	//奖池已经没有可回收的余额
	ErrGuessNothingToRecover = errors.New("ErrGuessNothingToRecover")
)
