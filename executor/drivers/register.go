// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"github.com/guessbet/guessbet/common/address"
	clog "github.com/guessbet/guessbet/common/log"
	"github.com/guessbet/guessbet/types"
	log "github.com/inconshreveable/log15"
)

var elog = log.New("module", "execs")

//SetLogLevel 设置执行器日志级别
func SetLogLevel(level string) {
	clog.SetLogLevel(level)
}

//DisableLog 禁用执行器日志
func DisableLog() {
	elog.SetHandler(log.DiscardHandler())
}

//DriverCreate 执行器构造函数
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	execDrivers        = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
	registedExecDriver = make(map[string]*driverWithHeight)
)

//Register 注册执行器，height 为执行器生效的最低区块高度
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	driverWithHeight := &driverWithHeight{
		create: create,
		height: height,
	}
	registedExecDriver[name] = driverWithHeight
	registerAddress(name)
	execDrivers[ExecAddress(name)] = driverWithHeight
}

//LoadDriver 根据名称加载执行器，未注册或未到生效高度返回ErrUnknowDriver
func LoadDriver(name string, height int64) (driver Driver, err error) {
	c, ok := registedExecDriver[name]
	if !ok {
		return nil, types.ErrUnknowDriver
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrUnknowDriver
}

//IsDriverAddress addr 是否为某个执行器的合约地址
func IsDriverAddress(addr string, height int64) bool {
	c, ok := execDrivers[addr]
	if !ok {
		return false
	}
	if height >= c.height || height == -1 {
		return true
	}
	return false
}

func registerAddress(name string) {
	if len(name) == 0 {
		panic("empty name string")
	}
	addr := ExecAddress(name)
	execAddressNameMap[name] = addr
}

//ExecAddress 执行器合约地址，注册过的直接查表
func ExecAddress(name string) string {
	if addr, ok := execAddressNameMap[name]; ok {
		return addr
	}
	return address.ExecAddress(name)
}
