// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
)

//LocalDB local db for store key value in local
//执行本地索引时的缓存层：同一个区块内先执行的交易的修改要对后面的交易可见，
//最终生效的KV 由账本模块统一落盘
type LocalDB struct {
	cache map[string][]byte
	db    dbm.DB
}

//NewLocalDB new local db
func NewLocalDB(db dbm.DB) dbm.KVDB {
	return &LocalDB{cache: make(map[string][]byte), db: db}
}

//Get get value from local db
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	if value, ok := l.cache[string(key)]; ok {
		return value, nil
	}
	if l.db == nil {
		return nil, types.ErrNotFound
	}
	value, err := l.db.Get(key)
	if err != nil {
		return nil, types.ErrNotFound
	}
	l.cache[string(key)] = value
	return value, nil
}

//Set set key value to local db
func (l *LocalDB) Set(key []byte, value []byte) error {
	setmap(l.cache, string(key), value)
	return nil
}

//BatchGet batch get values from local db
func (l *LocalDB) BatchGet(keys [][]byte) (values [][]byte, err error) {
	for _, key := range keys {
		v, err := l.Get(key)
		if err != nil && err != types.ErrNotFound {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

//List 从数据库中查询数据列表，set 中的cache 更新不会影响这个list
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	if l.db == nil {
		return nil, types.ErrNotFound
	}
	values := dbm.NewListHelper(l.db).List(prefix, key, count, direction)
	if values == nil {
		return nil, types.ErrNotFound
	}
	return values, nil
}
