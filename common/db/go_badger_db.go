// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"strconv"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(goBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
		return err
	}
	return nil
}

//SetSync 同步写
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
		return err
	}
	return nil
}

//DeleteSync 同步删除
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		blog.Error("Close", "error", err)
	}
}

//Print 打印数据库数据，调试用
func (db *GoBadgerDB) Print() {
	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 10
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			blog.Info("Print", "key", string(item.Key()), "value", string(value))
		}
		return nil
	})
	if err != nil {
		blog.Error("Print", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	stats := make(map[string]string)
	stats["badger.lsm"] = strconv.FormatInt(lsm, 10)
	stats["badger.vlog"] = strconv.FormatInt(vlog, 10)
	return stats
}

//Iterator 创建迭代器
func (db *GoBadgerDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	if end == nil {
		end = bytesPrefix(start)
	}
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	txn := db.db.NewTransaction(false)
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it, itBase{start, end, reverse}, txn, nil}
}

type goBadgerDBIt struct {
	*badger.Iterator
	itBase
	txn *badger.Txn
	err error
}

//Rewind 定位到迭代起点，反向迭代时为范围右边界
func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		dbit.Iterator.Seek(dbit.start)
		return dbit.Valid()
	}
	if dbit.end == nil {
		dbit.Iterator.Rewind()
		return dbit.Valid()
	}
	dbit.Iterator.Seek(dbit.end)
	// end不在迭代范围内
	if dbit.Iterator.Valid() && bytes.Equal(dbit.Iterator.Item().Key(), dbit.end) {
		dbit.Iterator.Next()
	}
	return dbit.Valid()
}

//Seek 反向迭代时badger定位到小于等于key的位置，key不存在时与leveldb有一步偏差
func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	dbit.Iterator.Seek(key)
	return dbit.Valid()
}

//Next next
func (dbit *goBadgerDBIt) Next() bool {
	dbit.Iterator.Next()
	return dbit.Valid()
}

//Valid 当前位置是否有效
func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.Iterator.Valid() && dbit.checkKey(dbit.Key())
}

//Key key
func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.Item().Key()
}

//Value value
func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
		blog.Error("Value", "error", err)
		return nil
	}
	return value
}

//ValueCopy 复制当前值
func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

//Error error
func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

//Close 关闭迭代器
func (dbit *goBadgerDBIt) Close() {
	dbit.Iterator.Close()
	dbit.txn.Discard()
}

//NewBatch 批量写
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	txn := db.db.NewTransaction(true)
	return &goBadgerDBBatch{db, txn}
}

type goBadgerDBBatch struct {
	db  *GoBadgerDB
	txn *badger.Txn
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	if err := mBatch.txn.Set(key, value); err != nil {
		blog.Error("Set", "error", err)
	}
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	if err := mBatch.txn.Delete(key); err != nil {
		blog.Error("Delete", "error", err)
	}
}

func (mBatch *goBadgerDBBatch) Write() error {
	defer mBatch.txn.Discard()
	if err := mBatch.txn.Commit(); err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.txn.Discard()
	mBatch.txn = mBatch.db.db.NewTransaction(true)
}
