// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
)

func TestStateDBGetSet(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Set([]byte("key1"), []byte("value1")))
	s := NewStateDB(db)

	value, err := s.Get([]byte("key1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value1"), value)

	_, err = s.Get([]byte("missing"))
	assert.Equal(t, types.ErrNotFound, err)

	require.NoError(t, s.Set([]byte("key2"), []byte("value2")))
	value, err = s.Get([]byte("key2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value2"), value)

	//写入只落在缓存，底层db 由账本根据回报KV 落盘
	_, err = db.Get([]byte("key2"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestStateDBTransaction(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Set([]byte("base"), []byte("db-value")))
	s := NewStateDB(db)
	require.NoError(t, s.Set([]byte("key"), []byte("v1")))

	//回滚丢弃事务内的写入
	s.Begin()
	require.NoError(t, s.Set([]byte("key"), []byte("v2")))
	value, err := s.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
	s.Rollback()
	value, err = s.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	//提交把事务内的写入并入区块缓存
	s.Begin()
	require.NoError(t, s.Set([]byte("key"), []byte("v3")))
	s.Commit()
	value, err = s.Get([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), value)

	//事务内新建的key 回滚后不存在
	s.Begin()
	require.NoError(t, s.Set([]byte("fresh"), []byte("x")))
	s.Rollback()
	_, err = s.Get([]byte("fresh"))
	assert.Equal(t, types.ErrNotFound, err)

	//事务内读到的db 数据回滚后保持一致
	s.Begin()
	value, err = s.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("db-value"), value)
	s.Rollback()
	value, err = s.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("db-value"), value)
}

func TestStateDBSetNil(t *testing.T) {
	db := newTestDB(t)
	s := NewStateDB(db)
	require.NoError(t, s.Set([]byte("key"), []byte("value")))
	//value 为nil 删除缓存项
	require.NoError(t, s.Set([]byte("key"), nil))
	_, err := s.Get([]byte("key"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestStateDBBatchGet(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	s := NewStateDB(db)
	require.NoError(t, s.Set([]byte("b"), []byte("2")))

	values, err := s.BatchGet([][]byte{[]byte("a"), []byte("missing"), []byte("b")})
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, []byte("1"), values[0])
	assert.Nil(t, values[1])
	assert.Equal(t, []byte("2"), values[2])
}

func TestLocalDB(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Set([]byte(fmt.Sprintf("lh-%03d", i)), []byte(fmt.Sprintf("value-%03d", i))))
	}
	l := NewLocalDB(db)

	value, err := l.Get([]byte("lh-001"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value-001"), value)

	_, err = l.Get([]byte("missing"))
	assert.Equal(t, types.ErrNotFound, err)

	require.NoError(t, l.Set([]byte("cached"), []byte("cache-value")))
	value, err = l.Get([]byte("cached"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cache-value"), value)

	values, err := l.List([]byte("lh-"), nil, 0, dbm.ListASC)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, []byte("value-000"), values[0])
	assert.Equal(t, []byte("value-002"), values[2])

	//List 只看底层db，缓存中的新写入不可见
	require.NoError(t, l.Set([]byte("lh-003"), []byte("value-003")))
	values, err = l.List([]byte("lh-"), nil, 0, dbm.ListASC)
	require.NoError(t, err)
	assert.Len(t, values, 3)

	//倒序
	values, err = l.List([]byte("lh-"), nil, 0, dbm.ListDESC)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, []byte("value-002"), values[0])

	//没有匹配前缀
	_, err = l.List([]byte("zz-"), nil, 0, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)
}
