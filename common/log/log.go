// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志初始化
package log

import (
	"github.com/guessbet/guessbet/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

//SetLogLevel 设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	handler := log15.LvlFilterHandler(getLevel(logLevel), consoleHandler())
	log15.Root().SetHandler(handler)
}

//SetFileLog 日志同时输出到控制台和滚动文件
func SetFileLog(log *types.Log) {
	if log == nil {
		log = &types.Log{LogFile: "logs/guessbet.log"}
	}
	if log.LogFile == "" {
		SetLogLevel(log.LogConsoleLevel)
		return
	}
	fileHandler := log15.LvlFilterHandler(getLevel(log.Loglevel), getFileHandler(log))
	console := log15.LvlFilterHandler(getLevel(log.LogConsoleLevel), consoleHandler())
	log15.Root().SetHandler(log15.MultiHandler(console, fileHandler))
}

// windows下的ANSI颜色输出需要colorable转换
func consoleHandler() log15.Handler {
	return log15.StreamHandler(colorable.NewColorableStdout(), log15.TerminalFormat())
}

func getFileHandler(log *types.Log) log15.Handler {
	rotateLogger := &lumberjack.Logger{
		Filename:   log.LogFile,
		MaxSize:    int(log.MaxFileSize),
		MaxBackups: int(log.MaxBackups),
		MaxAge:     int(log.MaxAge),
		LocalTime:  log.LocalTime,
		Compress:   log.Compress,
	}
	handler := log15.StreamHandler(rotateLogger, log15.LogfmtFormat())
	if log.CallerFunction {
		handler = log15.CallerFuncHandler(handler)
	}
	if log.CallerFile {
		handler = log15.CallerFileHandler(handler)
	}
	return handler
}

func getLevel(level string) log15.Lvl {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		//日志级别配置错误时默认输出debug级别
		return log15.LvlDebug
	}
	return lvl
}
