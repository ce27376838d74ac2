// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"testing"

	"github.com/guessbet/guessbet/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDBs(t *testing.T) map[string]DB {
	dbs := make(map[string]DB)
	dbs["goleveldb"] = NewDB("test", "leveldb", t.TempDir(), 16)
	dbs["memdb"] = NewDB("test", "memdb", t.TempDir(), 16)
	dbs["gobadgerdb"] = NewDB("test", "gobadgerdb", t.TempDir(), 16)
	return dbs
}

func TestGetSetDelete(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			defer db.Close()

			_, err := db.Get([]byte("k1"))
			assert.Equal(t, types.ErrNotFound, err)

			require.Nil(t, db.Set([]byte("k1"), []byte("v1")))
			v, err := db.Get([]byte("k1"))
			require.Nil(t, err)
			assert.Equal(t, []byte("v1"), v)

			require.Nil(t, db.SetSync([]byte("k2"), []byte("v2")))
			v, err = db.Get([]byte("k2"))
			require.Nil(t, err)
			assert.Equal(t, []byte("v2"), v)

			require.Nil(t, db.Delete([]byte("k1")))
			_, err = db.Get([]byte("k1"))
			assert.Equal(t, types.ErrNotFound, err)

			require.Nil(t, db.DeleteSync([]byte("k2")))
			_, err = db.Get([]byte("k2"))
			assert.Equal(t, types.ErrNotFound, err)
		})
	}
}

func TestBatch(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			defer db.Close()

			batch := db.NewBatch(true)
			batch.Set([]byte("b1"), []byte("v1"))
			batch.Set([]byte("b2"), []byte("v2"))
			require.Nil(t, batch.Write())

			v, err := db.Get([]byte("b1"))
			require.Nil(t, err)
			assert.Equal(t, []byte("v1"), v)

			batch = db.NewBatch(false)
			batch.Delete([]byte("b1"))
			batch.Set([]byte("b3"), []byte("v3"))
			require.Nil(t, batch.Write())

			_, err = db.Get([]byte("b1"))
			assert.Equal(t, types.ErrNotFound, err)
			v, err = db.Get([]byte("b3"))
			require.Nil(t, err)
			assert.Equal(t, []byte("v3"), v)

			batch = db.NewBatch(false)
			batch.Set([]byte("b4"), []byte("v4"))
			batch.Reset()
			batch.Set([]byte("b5"), []byte("v5"))
			require.Nil(t, batch.Write())

			_, err = db.Get([]byte("b4"))
			assert.Equal(t, types.ErrNotFound, err)
			v, err = db.Get([]byte("b5"))
			require.Nil(t, err)
			assert.Equal(t, []byte("v5"), v)
		})
	}
}

func fillTestData(t *testing.T, db DB, prefix string, n int) {
	for i := 0; i < n; i++ {
		require.Nil(t, db.Set([]byte(fmt.Sprintf("%s%03d", prefix, i)), []byte(fmt.Sprintf("value%03d", i))))
	}
	// 干扰数据
	require.Nil(t, db.Set([]byte("other-key"), []byte("other-value")))
}

func TestIterator(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			defer db.Close()
			fillTestData(t, db, "it-", 10)

			it := db.Iterator([]byte("it-"), nil, false)
			var keys []string
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
				require.Nil(t, it.Error())
			}
			it.Close()
			require.Equal(t, 10, len(keys))
			assert.Equal(t, "it-000", keys[0])
			assert.Equal(t, "it-009", keys[9])

			it = db.Iterator([]byte("it-"), nil, true)
			keys = nil
			for it.Rewind(); it.Valid(); it.Next() {
				keys = append(keys, string(it.Key()))
			}
			it.Close()
			require.Equal(t, 10, len(keys))
			assert.Equal(t, "it-009", keys[0])
			assert.Equal(t, "it-000", keys[9])

			it = db.Iterator([]byte("it-"), nil, false)
			require.True(t, it.Seek([]byte("it-005")))
			assert.Equal(t, "it-005", string(it.Key()))
			assert.Equal(t, []byte("value005"), it.ValueCopy())
			it.Close()
		})
	}
}

func TestListHelper(t *testing.T) {
	for name, db := range newTestDBs(t) {
		t.Run(name, func(t *testing.T) {
			defer db.Close()
			fillTestData(t, db, "lh-", 10)
			helper := NewListHelper(db)

			values := helper.IteratorScanFromFirst([]byte("lh-"), 3)
			require.Equal(t, 3, len(values))
			assert.Equal(t, []byte("value000"), values[0])
			assert.Equal(t, []byte("value002"), values[2])

			values = helper.IteratorScanFromLast([]byte("lh-"), 3)
			require.Equal(t, 3, len(values))
			assert.Equal(t, []byte("value009"), values[0])
			assert.Equal(t, []byte("value007"), values[2])

			// 从lh-007向前翻页
			values = helper.List([]byte("lh-"), []byte("lh-007"), 3, ListDESC)
			require.Equal(t, 3, len(values))
			assert.Equal(t, []byte("value006"), values[0])
			assert.Equal(t, []byte("value004"), values[2])

			// 从lh-007向后翻页
			values = helper.List([]byte("lh-"), []byte("lh-007"), 3, ListASC)
			require.Equal(t, 2, len(values))
			assert.Equal(t, []byte("value008"), values[0])
			assert.Equal(t, []byte("value009"), values[1])

			values = helper.PrefixScan([]byte("lh-"))
			require.Equal(t, 10, len(values))

			assert.Equal(t, int64(10), helper.PrefixCount([]byte("lh-")))
		})
	}
}

func TestListSeek(t *testing.T) {
	dbs := map[string]DB{
		"goleveldb": NewDB("test", "leveldb", t.TempDir(), 16),
		"memdb":     NewDB("test", "memdb", t.TempDir(), 16),
	}
	for name, db := range dbs {
		t.Run(name, func(t *testing.T) {
			defer db.Close()
			require.Nil(t, db.Set([]byte("seek-010"), []byte("v10")))
			require.Nil(t, db.Set([]byte("seek-020"), []byte("v20")))
			require.Nil(t, db.Set([]byte("seek-030"), []byte("v30")))
			helper := NewListHelper(db)

			// 精确命中
			values := helper.List([]byte("seek-"), []byte("seek-020"), 1, ListSeek)
			require.Equal(t, 2, len(values))
			assert.Equal(t, []byte("seek-020"), values[0])
			assert.Equal(t, []byte("v20"), values[1])

			// 未命中时取小于key的最近一个
			values = helper.List([]byte("seek-"), []byte("seek-025"), 1, ListSeek)
			require.Equal(t, 2, len(values))
			assert.Equal(t, []byte("seek-020"), values[0])

			values = helper.List([]byte("seek-"), []byte("seek-999"), 1, ListSeek)
			require.Equal(t, 2, len(values))
			assert.Equal(t, []byte("seek-030"), values[0])

			// 比所有key都小
			values = helper.List([]byte("seek-"), []byte("seek-000"), 1, ListSeek)
			assert.Nil(t, values)
		})
	}
}
