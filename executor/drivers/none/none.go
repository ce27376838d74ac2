// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package none 未知执行器的兜底执行器
package none

//package none execer for unknow execer
//all none transaction exec ok, execept nofee
//nofee transaction will not pack into block

import (
	"github.com/guessbet/guessbet/executor/drivers"
	"github.com/guessbet/guessbet/types"
)

//Init 注册执行器
func Init() {
	drivers.Register(newNone().GetName(), newNone, 0)
}

//None none执行器，只收手续费不做任何状态变更
type None struct {
	drivers.DriverBase
}

func newNone() drivers.Driver {
	n := &None{}
	n.SetChild(n)
	return n
}

//GetName 执行器名称
func (n *None) GetName() string {
	return types.ExecName(types.NoneX)
}

//GetActionName 获取action 名称
func (n *None) GetActionName(tx *types.Transaction) string {
	return "none"
}

//Exec none交易只做公共检测，不产生状态变更
func (n *None) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	_, err := n.DriverBase.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk}, nil
}
