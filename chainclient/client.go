// Package chainclient wraps a Bitcoin full-node RPC connection behind the
// narrow surface the squeak core needs: resolving the current chain tip and
// looking up blocks by height, so a squeak can be anchored to a real block
// and later re-validated against it.
package chainclient

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
	"github.com/go-errors/errors"
)

// ErrChainUnavailable wraps any transport-level failure talking to the
// backing Bitcoin node.
var ErrChainUnavailable = errors.New("chain unavailable")

// BlockInfo is the subset of a block's identity the squeak core anchors to.
type BlockInfo struct {
	Height     int32
	Hash       chainhash.Hash
	HeaderByte []byte
}

// Client is the narrow Bitcoin RPC surface the squeak core depends on. It is
// satisfied by *BtcdClient below, and by any test double.
type Client interface {
	// GetBestBlockInfo returns the current chain tip.
	GetBestBlockInfo() (*BlockInfo, error)

	// GetBlockInfoByHeight returns the block at the given height on the
	// chain the node currently considers best.
	GetBlockInfoByHeight(height int32) (*BlockInfo, error)

	// ParseBlockHeader decodes a serialized block header.
	ParseBlockHeader(raw []byte) (*wire.BlockHeader, error)
}

// BtcdClient is a Client backed by a live btcd (or bitcoind-compatible)
// JSON-RPC connection, grounded on the same rpcclient.Client the teacher's
// chainntnfs/btcdnotify package drives.
type BtcdClient struct {
	conn *rpcclient.Client
}

// NewBtcdClient dials the node described by cfg. The caller owns the
// returned client's lifetime and must call Shutdown when done.
func NewBtcdClient(cfg *rpcclient.ConnConfig) (*BtcdClient, error) {
	conn, err := rpcclient.New(cfg, nil)
	if err != nil {
		return nil, wrapChainErr(err)
	}
	return &BtcdClient{conn: conn}, nil
}

// Shutdown tears down the underlying RPC connection.
func (c *BtcdClient) Shutdown() {
	c.conn.Shutdown()
}

func wrapChainErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Errorf("%v: %v", ErrChainUnavailable, err)
}

// GetBestBlockInfo implements Client.
func (c *BtcdClient) GetBestBlockInfo() (*BlockInfo, error) {
	hash, height, err := c.conn.GetBestBlock()
	if err != nil {
		return nil, wrapChainErr(err)
	}
	return c.blockInfo(hash, height)
}

// GetBlockInfoByHeight implements Client.
func (c *BtcdClient) GetBlockInfoByHeight(height int32) (*BlockInfo, error) {
	hash, err := c.conn.GetBlockHash(int64(height))
	if err != nil {
		return nil, wrapChainErr(err)
	}
	return c.blockInfo(hash, height)
}

func (c *BtcdClient) blockInfo(hash *chainhash.Hash, height int32) (*BlockInfo, error) {
	header, err := c.conn.GetBlockHeader(hash)
	if err != nil {
		return nil, wrapChainErr(err)
	}

	var headerBuf bytes.Buffer
	if err := header.Serialize(&headerBuf); err != nil {
		return nil, wrapChainErr(err)
	}

	return &BlockInfo{
		Height:     height,
		Hash:       *hash,
		HeaderByte: headerBuf.Bytes(),
	}, nil
}

// ParseBlockHeader implements Client.
func (c *BtcdClient) ParseBlockHeader(raw []byte) (*wire.BlockHeader, error) {
	var header wire.BlockHeader
	if err := header.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, wrapChainErr(err)
	}
	return &header, nil
}
