// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
)

//StateDB state db for store mavl
//执行器的状态数据库：内存缓存在底层db之上，区块内的写入先落在缓存，
//交易执行期间再叠加一层txcache，rollback 只丢弃txcache
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	intx    bool
	db      dbm.DB
}

//NewStateDB new
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

//Begin 开启事务
func (s *StateDB) Begin() {
	s.intx = true
	s.txcache = nil
}

//Rollback 回滚事务
func (s *StateDB) Rollback() {
	s.resetTx()
}

//Commit 提交事务
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
}

//Get 获取key对应的值
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return value, nil
		}
	}
	if value, ok := s.cache[skey]; ok {
		return value, nil
	}
	if s.db == nil {
		return nil, types.ErrNotFound
	}
	value, err := s.db.Get(key)
	if err != nil {
		return nil, types.ErrNotFound
	}
	//get 的值也会缓存，同一个区块内多次读取不再打底层db
	s.cache[skey] = value
	return value, nil
}

//Set 设置key对应的值
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		setmap(s.txcache, skey, value)
	} else {
		setmap(s.cache, skey, value)
	}
	return nil
}

//value 设置为nil 时删除缓存中的对应项
func setmap(data map[string][]byte, key string, value []byte) {
	if value == nil {
		delete(data, key)
		return
	}
	data[key] = value
}

//BatchGet 批量获取
func (s *StateDB) BatchGet(keys [][]byte) (values [][]byte, err error) {
	for _, key := range keys {
		v, err := s.Get(key)
		if err != nil && err != types.ErrNotFound {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
