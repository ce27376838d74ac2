// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guessbet/guessbet/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlError, getLevel("error"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	//错误的级别使用默认值
	assert.Equal(t, log15.LvlDebug, getLevel("unknown"))
	assert.Equal(t, log15.LvlDebug, getLevel(""))
}

func TestSetFileLog(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "guessbet.log")
	SetFileLog(&types.Log{
		Loglevel:        "debug",
		LogConsoleLevel: "error",
		LogFile:         logFile,
		MaxFileSize:     10,
		MaxBackups:      3,
		MaxAge:          7,
	})
	log15.Debug("test file log", "key", "value")

	_, err := os.Stat(logFile)
	require.NoError(t, err)
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test file log")

	//恢复默认控制台输出，避免影响其他测试
	SetLogLevel("error")
}

func TestSetFileLogNoFile(t *testing.T) {
	//未配置日志文件时只输出到控制台
	SetFileLog(&types.Log{LogConsoleLevel: "error"})
	log15.Debug("console only")
	SetLogLevel("error")
}
