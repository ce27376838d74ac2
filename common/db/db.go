// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 数据库操作接口，支持leveldb、badger、memdb、pegasus多种后端
package db

import (
	"bytes"
	"fmt"

	"github.com/guessbet/guessbet/types"
)

//ErrNotFoundInDb 数据库中没有该记录
var ErrNotFoundInDb = types.ErrNotFound

//KV kv存储
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
}

//KVDB 带列表功能的kv存储，执行器本地数据库接口
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//IteratorDB 范围迭代
type IteratorDB interface {
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

//DB 数据库操作接口
type DB interface {
	KV
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	// For debugging
	Print()
	Stats() map[string]string
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	Reset()
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Seek(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

// checkKey key是否在[start, end)范围内
func (it *itBase) checkKey(key []byte) bool {
	if it.end != nil && bytes.Compare(key, it.end) >= 0 {
		return false
	}
	if it.start != nil && bytes.Compare(key, it.start) < 0 {
		return false
	}
	return true
}

//const
const (
	levelDBBackendStr     = "leveldb" // legacy, defaults to goleveldb.
	goLevelDBBackendStr   = "goleveldb"
	memDBBackendStr       = "memdb"
	goBadgerDBBackendStr  = "gobadgerdb"
	goPegasusDbBackendStr = "pegasus"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB new
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}

// bytesPrefix 前缀的右边界，作为范围迭代的结束位置
func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

func cloneByte(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}
