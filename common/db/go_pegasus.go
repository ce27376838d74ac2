// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/XiaoMi/pegasus-go-client/pegasus"
	log "github.com/inconshreveable/log15"
	"github.com/guessbet/guessbet/types"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var slog = log.New("module", "db.pegasus")
var hashKey = []byte("hash")

//IteratorPageSize 迭代时每次抓取的记录条数
const IteratorPageSize = 10240

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewPegasusDB(name, dir, cache)
	}
	registerDBCreator(goPegasusDbBackendStr, dbCreator, false)
}

//PegasusBench 读写性能统计
type PegasusBench struct {
	writeCount int
	writeNum   int
	writeTime  time.Duration
	readCount  int
	readNum    int
	readTime   time.Duration
}

func (bench *PegasusBench) write(num int, cost time.Duration) {
	bench.writeCount++
	bench.writeNum += num
	bench.writeTime += cost
}

func (bench *PegasusBench) read(num int, cost time.Duration) {
	bench.readCount++
	bench.readNum += num
	bench.readTime += cost
}

func (bench *PegasusBench) String() string {
	return fmt.Sprintf("write:[count=%v, num=%v, time=%v], read:[count=%v, num=%v, time=%v]",
		bench.writeCount, bench.writeNum, bench.writeTime, bench.readCount, bench.readNum, bench.readTime)
}

var benchmark = &PegasusBench{}

//PegasusDB pegasus远程kv存储
type PegasusDB struct {
	cfg    *pegasus.Config
	name   string
	client pegasus.Client
	table  pegasus.TableConnector
}

//NewPegasusDB dir格式: ip:port,ip:port
func NewPegasusDB(name string, dir string, cache int) (*PegasusDB, error) {
	database := &PegasusDB{name: name}
	database.cfg = parsePegasusNodes(dir)

	if database.cfg == nil {
		slog.Error("no valid instance exists, exit!")
		return nil, types.ErrDataBaseDamage
	}
	var err error
	database.client = pegasus.NewClient(*database.cfg)
	tb, err := database.client.OpenTable(context.Background(), database.name)
	if err != nil {
		slog.Error("connect to pegasus error!", "pegasus", database.cfg, "error", err)
		database.client.Close()
		return nil, types.ErrDataBaseDamage
	}
	database.table = tb
	return database, nil
}

// url pattern: ip:port,ip:port
func parsePegasusNodes(url string) *pegasus.Config {
	hosts := strings.Split(url, ",")
	if hosts == nil {
		slog.Error("invalid url")
		return nil
	}
	return &pegasus.Config{MetaServers: hosts}
}

//Get get
func (db *PegasusDB) Get(key []byte) ([]byte, error) {
	start := time.Now()

	value, err := db.table.Get(context.Background(), hashKey, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, ErrNotFoundInDb
	}

	benchmark.read(1, time.Since(start))
	return value, nil
}

//BatchGet 批量读
func (db *PegasusDB) BatchGet(keys [][]byte) (values [][]byte, err error) {
	start := time.Now()

	vals, _, err := db.table.MultiGet(context.Background(), hashKey, keys)
	if err != nil {
		return nil, err
	}
	if vals == nil {
		return nil, ErrNotFoundInDb
	}

	for _, v := range vals {
		values = append(values, v.Value)
	}
	benchmark.read(len(keys), time.Since(start))
	return values, nil
}

//Set set
func (db *PegasusDB) Set(key []byte, value []byte) error {
	start := time.Now()
	err := db.table.Set(context.Background(), hashKey, key, value)
	if err != nil {
		slog.Error("Set", "error", err)
		return err
	}
	benchmark.write(1, time.Since(start))
	return nil
}

//SetSync 同步写
func (db *PegasusDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *PegasusDB) Delete(key []byte) error {
	start := time.Now()
	err := db.table.Del(context.Background(), hashKey, key)
	if err != nil {
		slog.Error("Delete", "error", err)
		return err
	}
	benchmark.write(1, time.Since(start))
	return nil
}

//DeleteSync 同步删除
func (db *PegasusDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//Close 关闭
func (db *PegasusDB) Close() {
	db.table.Close()
	db.client.Close()
}

//Print 打印数据库数据，调试用
func (db *PegasusDB) Print() {
	slog.Info("Print", "benchmark", benchmark.String())
}

//Stats ...
func (db *PegasusDB) Stats() map[string]string {
	return make(map[string]string)
}

//Iterator 创建迭代器，数据按页抓取
func (db *PegasusDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	var (
		err  error
		vals []*pegasus.KeyValue
	)

	if end == nil {
		end = util.BytesPrefix(start).Limit
	}

	it := &PegasusIt{reverse: reverse, index: -1, table: db.table, begin: start, end: end}

	// 反向迭代时返回降序数据
	opts := &pegasus.MultiGetOptions{StartInclusive: true, StopInclusive: false, MaxFetchCount: IteratorPageSize, Reverse: reverse}
	vals, _, err = db.table.MultiGetRangeOpt(context.Background(), hashKey, start, end, opts)

	if err != nil {
		slog.Error("create iterator error!")
		return nil
	}

	if len(vals) > 0 {
		it.vals = vals

		// 如果返回的数据大小刚好满足分页，则假设下一页还有数据
		if len(it.vals) == IteratorPageSize {
			it.nextPage = true
			it.tmpEnd = it.vals[IteratorPageSize-1].SortKey
		}
	}
	return it
}

//PegasusIt 迭代器
type PegasusIt struct {
	table    pegasus.TableConnector
	vals     []*pegasus.KeyValue
	index    int
	reverse  bool
	nextPage bool
	tmpEnd   []byte

	// 迭代开始位置
	begin []byte
	// 迭代结束位置
	end []byte
	// 当前所属的页数（从0开始）
	pageNo int
}

//Close 关闭迭代器
func (dbit *PegasusIt) Close() {
	dbit.index = -1
}

//Next next
func (dbit *PegasusIt) Next() bool {
	if len(dbit.vals) > dbit.index+1 {
		dbit.index++
		return true
	}
	// 如果有下一页数据，则自动抓取
	if dbit.nextPage {
		return dbit.cacheNextPage(dbit.tmpEnd)
	}
	return false
}

func (dbit *PegasusIt) initPage(begin, end []byte) bool {
	var (
		vals []*pegasus.KeyValue
		err  error
	)

	opts := &pegasus.MultiGetOptions{StartInclusive: false, StopInclusive: false, MaxFetchCount: IteratorPageSize, Reverse: dbit.reverse}
	vals, _, err = dbit.table.MultiGetRangeOpt(context.Background(), hashKey, begin, end, opts)
	if err != nil {
		slog.Error("get iterator next page error", "error", err, "begin", begin, "end", dbit.end, "reverse", dbit.reverse)
		return false
	}

	if len(vals) > 0 {
		// 这里只改变vals，不改变index
		dbit.vals = vals

		// 如果返回的数据大小刚好满足分页，则假设下一页还有数据
		if len(vals) == IteratorPageSize {
			dbit.nextPage = true
			dbit.tmpEnd = dbit.vals[IteratorPageSize-1].SortKey
		} else {
			dbit.nextPage = false
		}
		return true
	}
	return false
}

// 获取下一页的数据，bound为上一页最后抓到的key
func (dbit *PegasusIt) cacheNextPage(bound []byte) bool {
	var ok bool
	if dbit.reverse {
		ok = dbit.initPage(dbit.begin, bound)
	} else {
		ok = dbit.initPage(bound, dbit.end)
	}
	if ok {
		dbit.index = 0
		dbit.pageNo++
		return true
	}
	return false
}

// 正向时定位到第一个大于等于key的位置
// 反向时数据降序排列，定位到最后一个大于等于key的位置，与leveldb反向seek语义一致
func (dbit *PegasusIt) findInPage(key []byte) int {
	pos := -1
	for i, v := range dbit.vals {
		if i < dbit.index {
			continue
		}
		if dbit.reverse {
			if bytes.Compare(v.SortKey, key) >= 0 {
				pos = i
				continue
			}
			break
		}
		if bytes.Compare(v.SortKey, key) >= 0 {
			pos = i
			break
		}
	}
	return pos
}

//Seek 定位到第一个大于等于key的位置
//反向时数据降序排列，页内未命中即整页小于key，无需翻页
func (dbit *PegasusIt) Seek(key []byte) bool {
	pos := dbit.findInPage(key)

	// 如果第一页已经找到，不会走入此逻辑
	for pos == -1 && !dbit.reverse && dbit.nextPage {
		if dbit.cacheNextPage(dbit.tmpEnd) {
			pos = dbit.findInPage(key)
		} else {
			break
		}
	}

	dbit.index = pos
	return dbit.Valid()
}

//Rewind 返回到第一页第一条
func (dbit *PegasusIt) Rewind() bool {
	// 目前代码的Rewind调用都是在第一页，正常情况下走不到else分支；
	// 但为了代码健壮性考虑，这里增加对else分支的处理
	if dbit.pageNo == 0 {
		dbit.index = 0
		return dbit.Valid()
	}

	// 当数据取到第N页的情况时，Rewind需要返回到第一页第一条
	if dbit.initPage(dbit.begin, dbit.end) {
		dbit.index = 0
		dbit.pageNo = 0
		return dbit.Valid()
	}
	return false
}

//Key key
func (dbit *PegasusIt) Key() []byte {
	if dbit.index >= 0 && dbit.index < len(dbit.vals) {
		return dbit.vals[dbit.index].SortKey
	}
	return nil
}

//Value value
func (dbit *PegasusIt) Value() []byte {
	if dbit.index < 0 || dbit.index >= len(dbit.vals) {
		slog.Error("get iterator value error: index out of bounds")
		return nil
	}
	return dbit.vals[dbit.index].Value
}

//ValueCopy 复制当前值
func (dbit *PegasusIt) ValueCopy() []byte {
	return cloneByte(dbit.Value())
}

//Error error
func (dbit *PegasusIt) Error() error {
	return nil
}

//Valid 当前位置是否有效
func (dbit *PegasusIt) Valid() bool {
	start := time.Now()
	if dbit.index < 0 {
		return false
	}
	if len(dbit.vals) <= dbit.index {
		return false
	}
	key := dbit.vals[dbit.index].SortKey
	benchmark.read(1, time.Since(start))
	return bytes.HasPrefix(key, dbit.begin)
}

//NewBatch 批量写
func (db *PegasusDB) NewBatch(sync bool) Batch {
	return &PegasusBatch{table: db.table, batchset: make(map[string][]byte), batchdel: make(map[string][]byte)}
}

//PegasusBatch 批量写
type PegasusBatch struct {
	table    pegasus.TableConnector
	batchset map[string][]byte
	batchdel map[string][]byte
}

//Set set
func (db *PegasusBatch) Set(key, value []byte) {
	db.batchset[string(key)] = value
	delete(db.batchdel, string(key))
}

//Delete 删除
func (db *PegasusBatch) Delete(key []byte) {
	db.batchset[string(key)] = []byte{}
	db.batchdel[string(key)] = key
}

// 注意本方法的实现逻辑，因为pegasus没有提供删除和更新同时进行的批量操作；
// 所以这里先执行更新操作（删除的KEY在这里会将VALUE设置为空）；
// 然后再执行删除操作；
// 这样即使中间执行出错，也不会导致删除结果未写入的情况（值已经被置空）；
func (db *PegasusBatch) Write() error {
	start := time.Now()

	if len(db.batchset) > 0 {
		var keys [][]byte
		var values [][]byte
		for k, v := range db.batchset {
			keys = append(keys, []byte(k))
			values = append(values, v)
		}
		err := db.table.MultiSet(context.Background(), hashKey, keys, values)
		if err != nil {
			slog.Error("Write (multi_set)", "error", err)
			return err
		}
	}

	if len(db.batchdel) > 0 {
		var dkeys [][]byte
		for _, v := range db.batchdel {
			dkeys = append(dkeys, v)
		}
		err := db.table.MultiDel(context.Background(), hashKey, dkeys)
		if err != nil {
			slog.Error("Write (multi_del)", "error", err)
			return err
		}
	}

	benchmark.write(len(db.batchset)+len(db.batchdel), time.Since(start))
	return nil
}

//Reset 重置
func (db *PegasusBatch) Reset() {
	db.batchset = make(map[string][]byte)
	db.batchdel = make(map[string][]byte)
}
