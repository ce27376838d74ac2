// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(memDBBackendStr, dbCreator, false)
}

//GoMemDB 内存数据库，测试用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = cloneByte(value)
	return nil
}

//SetSync 同步写
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

//DeleteSync 同步删除
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//Print 打印数据库数据，调试用
func (db *GoMemDB) Print() {
	db.lock.RLock()
	defer db.lock.RUnlock()

	for key, value := range db.db {
		mlog.Info("Print", "key", key, "value", string(value))
	}
}

//Stats ...
func (db *GoMemDB) Stats() map[string]string {
	db.lock.RLock()
	defer db.lock.RUnlock()

	stats := make(map[string]string)
	stats["database.type"] = "memDB"
	return stats
}

//Iterator 迭代时复制范围内的全部kv，量大时注意内存
func (db *GoMemDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	if end == nil {
		end = bytesPrefix(start)
	}
	base := itBase{start, end, reverse}

	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	for k := range db.db {
		if base.checkKey([]byte(k)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	it := &goMemDBIt{itBase: base, index: -1}
	for _, k := range keys {
		it.keys = append(it.keys, []byte(k))
		it.values = append(it.values, cloneByte(db.db[k]))
	}
	return it
}

type goMemDBIt struct {
	itBase
	keys   [][]byte
	values [][]byte
	index  int
}

func (dbit *goMemDBIt) Rewind() bool {
	if dbit.reverse {
		dbit.index = len(dbit.keys) - 1
	} else {
		dbit.index = 0
	}
	return dbit.Valid()
}

// Seek 定位到第一个大于等于key的位置，与leveldb语义一致
func (dbit *goMemDBIt) Seek(key []byte) bool {
	dbit.index = sort.Search(len(dbit.keys), func(i int) bool {
		return string(dbit.keys[i]) >= string(key)
	})
	return dbit.Valid()
}

func (dbit *goMemDBIt) Next() bool {
	if dbit.reverse {
		if dbit.index >= len(dbit.keys) {
			// 反向迭代越过末尾后回退到最后一个
			dbit.index = len(dbit.keys) - 1
		} else {
			dbit.index--
		}
	} else {
		dbit.index++
	}
	return dbit.Valid()
}

func (dbit *goMemDBIt) Valid() bool {
	return dbit.index >= 0 && dbit.index < len(dbit.keys)
}

func (dbit *goMemDBIt) Key() []byte {
	if !dbit.Valid() {
		return nil
	}
	return dbit.keys[dbit.index]
}

func (dbit *goMemDBIt) Value() []byte {
	if !dbit.Valid() {
		return nil
	}
	return dbit.values[dbit.index]
}

func (dbit *goMemDBIt) ValueCopy() []byte {
	return cloneByte(dbit.Value())
}

func (dbit *goMemDBIt) Error() error {
	return nil
}

func (dbit *goMemDBIt) Close() {
	dbit.index = -1
}

//NewBatch 批量写
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &goMemDBBatch{db: db}
}

type kvPair struct {
	key    []byte
	value  []byte
	delete bool
}

type goMemDBBatch struct {
	db     *GoMemDB
	writes []kvPair
}

func (mBatch *goMemDBBatch) Set(key, value []byte) {
	mBatch.writes = append(mBatch.writes, kvPair{cloneByte(key), cloneByte(value), false})
}

func (mBatch *goMemDBBatch) Delete(key []byte) {
	mBatch.writes = append(mBatch.writes, kvPair{cloneByte(key), nil, true})
}

func (mBatch *goMemDBBatch) Write() error {
	mBatch.db.lock.Lock()
	defer mBatch.db.lock.Unlock()

	for _, kv := range mBatch.writes {
		if kv.delete {
			delete(mBatch.db.db, string(kv.key))
		} else {
			mBatch.db.db[string(kv.key)] = kv.value
		}
	}
	return nil
}

func (mBatch *goMemDBBatch) Reset() {
	mBatch.writes = mBatch.writes[:0]
}
