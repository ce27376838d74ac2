// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	. "gopkg.in/check.v1"
)

func TestGoLevelDB(t *testing.T) { TestingT(t) }

type suiteGoLevelDB struct {
	db  *GoLevelDB
	dir string
}

var _ = Suite(&suiteGoLevelDB{})

func (s *suiteGoLevelDB) SetUpSuite(c *C) {
	dir, err := ioutil.TempDir("", "goleveldb")
	c.Assert(err, IsNil)
	s.dir = dir
	db, err := NewGoLevelDB("test", dir, 16)
	c.Assert(err, IsNil)
	s.db = db
}

func (s *suiteGoLevelDB) TearDownSuite(c *C) {
	s.db.Close()
	err := os.RemoveAll(s.dir)
	c.Assert(err, IsNil)
}

func (s *suiteGoLevelDB) TestGetSet(c *C) {
	c.Assert(s.db.Set([]byte("gokey"), []byte("govalue")), IsNil)

	v, err := s.db.Get([]byte("gokey"))
	c.Assert(err, IsNil)
	c.Check(v, DeepEquals, []byte("govalue"))

	_, err = s.db.Get([]byte("nokey"))
	c.Check(err, Equals, ErrNotFoundInDb)

	c.Assert(s.db.Delete([]byte("gokey")), IsNil)
	_, err = s.db.Get([]byte("gokey"))
	c.Check(err, Equals, ErrNotFoundInDb)
}

func (s *suiteGoLevelDB) TestBatch(c *C) {
	batch := s.db.NewBatch(false)
	for i := 0; i < 10; i++ {
		batch.Set([]byte(fmt.Sprintf("batch-%03d", i)), []byte(fmt.Sprintf("value-%03d", i)))
	}
	c.Assert(batch.Write(), IsNil)

	v, err := s.db.Get([]byte("batch-005"))
	c.Assert(err, IsNil)
	c.Check(v, DeepEquals, []byte("value-005"))
}

func (s *suiteGoLevelDB) TestIterator(c *C) {
	for i := 0; i < 5; i++ {
		c.Assert(s.db.Set([]byte(fmt.Sprintf("iter-%03d", i)), []byte(fmt.Sprintf("value-%03d", i))), IsNil)
	}

	it := s.db.Iterator([]byte("iter-"), nil, false)
	defer it.Close()

	var count int
	for it.Rewind(); it.Valid(); it.Next() {
		c.Check(string(it.Key()), Equals, fmt.Sprintf("iter-%03d", count))
		count++
	}
	c.Check(count, Equals, 5)
	c.Check(it.Error(), IsNil)
}

func (s *suiteGoLevelDB) TestStats(c *C) {
	stats := s.db.Stats()
	c.Check(len(stats) > 0, Equals, true)
}
