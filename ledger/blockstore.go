// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"
	"sync"
	"sync/atomic"

	farm "github.com/dgryski/go-farm"
	"github.com/golang/snappy"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/guessbet/guessbet/common"
	dbm "github.com/guessbet/guessbet/common/db"
	"github.com/guessbet/guessbet/types"
)

var (
	blockLastHeight = []byte("blockLastHeight")
	storeLog        = llog.New("submodule", "store")
)

//区块body 缓存个数的缺省值
const defBodyCacheSize = 128

//存储block hash对应的blockbody信息，body 经过snappy 压缩
func calcHashToBlockBodyKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("Body:%v", hash))
}

//存储block hash对应的header信息
func calcHashToBlockHeaderKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("Header:%v", hash))
}

//存储block hash对应的block height
func calcHashToHeightKey(hash []byte) []byte {
	return []byte(fmt.Sprintf("Hash:%v", hash))
}

//存储block height 对应的block hash
func calcHeightToHashKey(height int64) []byte {
	return []byte(fmt.Sprintf("Height:%v", height))
}

//BlockStore 区块持久化：header 原样存储，body 压缩存储并带lru 缓存
type BlockStore struct {
	db         dbm.DB
	height     int64
	lastLock   sync.Mutex
	lastHeader *types.Header
	//key 为block hash的farm hash，避免把哈希字节串再做一次map key
	bodyCache *lru.Cache
}

//NewBlockStore 从db 恢复当前高度和最新区块头
func NewBlockStore(db dbm.DB, cacheSize int64) *BlockStore {
	if cacheSize <= 0 {
		cacheSize = defBodyCacheSize
	}
	cache, err := lru.New(int(cacheSize))
	if err != nil {
		panic(err)
	}
	height, err := LoadBlockStoreHeight(db)
	if err != nil {
		storeLog.Info("init::LoadBlockStoreHeight::database may be init", "err", err.Error())
		if err != types.ErrHeightNotExist {
			panic(err)
		}
	}
	blockStore := &BlockStore{
		height:    height,
		db:        db,
		bodyCache: cache,
	}
	if height == -1 {
		storeLog.Info("load block height error, may be init database", "height", height)
	} else {
		header, err := blockStore.GetBlockHeaderByHeight(height)
		if err != nil {
			storeLog.Error("init::GetBlockHeaderByHeight::database may be crash")
			panic(err)
		}
		blockStore.lastHeader = header
	}
	return blockStore
}

//Height 返回BlockStore 保存的当前block高度
func (bs *BlockStore) Height() int64 {
	return atomic.LoadInt64(&bs.height)
}

//LastHeader 返回最新的区块头，空库时返回nil
func (bs *BlockStore) LastHeader() *types.Header {
	bs.lastLock.Lock()
	defer bs.lastLock.Unlock()
	return bs.lastHeader
}

//UpdateLastBlock 批量写成功之后更新内存中的当前高度和最新区块头
func (bs *BlockStore) UpdateLastBlock(header *types.Header) {
	bs.lastLock.Lock()
	defer bs.lastLock.Unlock()
	bs.lastHeader = header
	atomic.StoreInt64(&bs.height, header.Height)
	storeLog.Debug("UpdateLastBlock", "height", header.Height, "hash", common.ToHex(header.Hash))
}

//SaveBlock 保存区块信息到db批量中：header、压缩body 和高度索引
func (bs *BlockStore) SaveBlock(storeBatch dbm.Batch, blockdetail *types.BlockDetail) error {
	height := blockdetail.Block.Height
	if len(blockdetail.Receipts) == 0 && len(blockdetail.Block.Txs) != 0 {
		storeLog.Error("SaveBlock Receipts is nil ", "height", height)
	}
	hash := blockdetail.Block.Hash()

	//body 中保存交易和回执
	var blockbody types.BlockBody
	blockbody.Txs = blockdetail.Block.Txs
	blockbody.Receipts = blockdetail.Receipts
	body := types.Encode(&blockbody)
	storeBatch.Set(calcHashToBlockBodyKey(hash), snappy.Encode(nil, body))

	header := blockdetail.Block.GetHeader()
	storeBatch.Set(calcHashToBlockHeaderKey(hash), types.Encode(header))

	//更新最新的block 高度
	heightbytes := types.Encode(&types.Int64{Data: height})
	storeBatch.Set(blockLastHeight, heightbytes)

	//存储block hash和height的对应关系，便于通过hash查询block
	storeBatch.Set(calcHashToHeightKey(hash), heightbytes)

	//存储block height和block hash的对应关系，便于通过height查询block
	storeBatch.Set(calcHeightToHashKey(height), hash)

	bs.bodyCache.Add(farm.Hash64(hash), blockbody.Clone())

	storeLog.Debug("SaveBlock success", "blockheight", height, "hash", common.ToHex(hash))
	return nil
}

//LoadBlockByHeight 通过height 获取BlockDetail信息
func (bs *BlockStore) LoadBlockByHeight(height int64) (*types.BlockDetail, error) {
	hash, err := bs.GetBlockHashByHeight(height)
	if err != nil {
		return nil, err
	}
	return bs.LoadBlockByHash(hash)
}

//LoadBlockByHash 通过hash 获取BlockDetail信息
func (bs *BlockStore) LoadBlockByHash(hash []byte) (*types.BlockDetail, error) {
	blockheader, err := bs.GetBlockHeaderByHash(hash)
	if err != nil {
		return nil, err
	}
	blockbody, err := bs.loadBlockBody(hash)
	if err != nil {
		return nil, err
	}
	var block types.Block
	block.Version = blockheader.Version
	block.ParentHash = blockheader.ParentHash
	block.TxHash = blockheader.TxHash
	block.StateHash = blockheader.StateHash
	block.Height = blockheader.Height
	block.BlockTime = blockheader.BlockTime
	block.Txs = blockbody.Txs

	var blockdetail types.BlockDetail
	blockdetail.Receipts = blockbody.Receipts
	blockdetail.Block = &block
	return &blockdetail, nil
}

//loadBlockBody 先查lru 缓存，未命中时从db读出并解压
func (bs *BlockStore) loadBlockBody(hash []byte) (*types.BlockBody, error) {
	if elem, ok := bs.bodyCache.Get(farm.Hash64(hash)); ok {
		return elem.(*types.BlockBody), nil
	}
	compressed, err := bs.db.Get(calcHashToBlockBodyKey(hash))
	if compressed == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("loadBlockBody calcHashToBlockBodyKey", "hash", common.ToHex(hash), "err", err)
		}
		return nil, types.ErrHashNotExist
	}
	body, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, errors.Wrap(err, "decompress block body")
	}
	var blockbody types.BlockBody
	err = types.Decode(body, &blockbody)
	if err != nil {
		storeLog.Error("loadBlockBody", "err", err)
		return nil, err
	}
	bs.bodyCache.Add(farm.Hash64(hash), &blockbody)
	return &blockbody, nil
}

//GetTx 通过tx hash 从db中获取tx交易信息
//交易索引由执行器的本地索引写入，key 就是交易hash本身
func (bs *BlockStore) GetTx(hash []byte) (*types.TxResult, error) {
	if len(hash) == 0 {
		return nil, types.ErrHashNotExist
	}
	rawBytes, err := bs.db.Get(hash)
	if rawBytes == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("GetTx", "hash", common.ToHex(hash), "err", err)
		}
		return nil, types.ErrTxNotExist
	}
	var txResult types.TxResult
	err = types.Decode(rawBytes, &txResult)
	if err != nil {
		return nil, err
	}
	return &txResult, nil
}

//GetHeightByBlockHash 从db中获取指定hash对应的block高度
func (bs *BlockStore) GetHeightByBlockHash(hash []byte) (int64, error) {
	heightbytes, err := bs.db.Get(calcHashToHeightKey(hash))
	if heightbytes == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("GetHeightByBlockHash", "error", err)
		}
		return -1, types.ErrHashNotExist
	}
	return decodeHeight(heightbytes)
}

func decodeHeight(heightbytes []byte) (int64, error) {
	var height types.Int64
	err := types.Decode(heightbytes, &height)
	if err != nil {
		storeLog.Error("decodeHeight Could not unmarshal height bytes", "error", err)
		return -1, err
	}
	return height.Data, nil
}

//GetBlockHashByHeight 从db中获取指定height对应的blockhash
func (bs *BlockStore) GetBlockHashByHeight(height int64) ([]byte, error) {
	hash, err := bs.db.Get(calcHeightToHashKey(height))
	if hash == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("GetBlockHashByHeight", "error", err)
		}
		return nil, types.ErrHeightNotExist
	}
	return hash, nil
}

//GetBlockHeaderByHeight 通过blockheight获取blockheader
func (bs *BlockStore) GetBlockHeaderByHeight(height int64) (*types.Header, error) {
	hash, err := bs.GetBlockHashByHeight(height)
	if err != nil {
		return nil, err
	}
	return bs.GetBlockHeaderByHash(hash)
}

//GetBlockHeaderByHash 通过blockhash获取blockheader
func (bs *BlockStore) GetBlockHeaderByHash(hash []byte) (*types.Header, error) {
	blockheader, err := bs.db.Get(calcHashToBlockHeaderKey(hash))
	if blockheader == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("GetBlockHeaderByHash calcHashToBlockHeaderKey", "err", err)
		}
		return nil, types.ErrHashNotExist
	}
	var header types.Header
	err = types.Decode(blockheader, &header)
	if err != nil {
		storeLog.Error("GetBlockHeaderByHash", "Could not unmarshal blockheader", common.ToHex(hash))
		return nil, err
	}
	return &header, nil
}

//LoadBlockStoreHeight 从db中读取当前区块高度，空库返回-1
func LoadBlockStoreHeight(db dbm.DB) (int64, error) {
	bytes, err := db.Get(blockLastHeight)
	if bytes == nil || err != nil {
		if err != dbm.ErrNotFoundInDb {
			storeLog.Error("LoadBlockStoreHeight", "error", err)
		}
		return -1, types.ErrHeightNotExist
	}
	return decodeHeight(bytes)
}
