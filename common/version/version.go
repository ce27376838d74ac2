// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version 程序版本
package version

const version = "1.0.0"

//GetVersion 获取版本号
func GetVersion() string {
	return version
}
