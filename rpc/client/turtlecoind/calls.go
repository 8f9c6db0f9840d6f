// Copyright (c) 2019 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package turtlecoind provides typed access to the RPC surface of a
// TurtleCoind node: the plain JSON endpoints (/getinfo, /queryblockslite,
// ...) and the JSON-RPC methods served at /json_rpc.
package turtlecoind

import (
	"context"

	"github.com/turtlecoin/turtletest/errors"
)

// Caller provides a client interface to a TurtleCoind node.
type Caller interface {
	// Call performs the JSON-RPC method with params and waits for a
	// response.  Res must be a pointer to unmarshal a result into, or nil
	// if no result is needed.
	Call(ctx context.Context, method string, res, params any) error

	// Request exchanges a plain JSON document with the endpoint at path.
	// A nil req performs a GET.
	Request(ctx context.Context, path string, res, req any) error
}

// Client provides methods for calling TurtleCoind RPCs without exposing the
// details of JSON encoding.
type Client struct {
	Caller
}

// NewClient creates a new RPC client instance from a caller.
func NewClient(caller Caller) *Client {
	return &Client{caller}
}

// noParams encodes as an empty JSON object.  TurtleCoind rejects JSON-RPC
// requests with a missing params member for some methods.
var noParams = struct{}{}

// GetInfo returns general information about the node and its view of the
// network.
func (c *Client) GetInfo(ctx context.Context) (Info, error) {
	var res Info
	err := c.Request(ctx, "/getinfo", &res, nil)
	return res, err
}

// GetHeight returns the local and network chain heights.
func (c *Client) GetHeight(ctx context.Context) (Height, error) {
	var res Height
	err := c.Request(ctx, "/getheight", &res, nil)
	return res, err
}

// FeeInfo returns the node operator's fee address and amount.
func (c *Client) FeeInfo(ctx context.Context) (FeeInfo, error) {
	var res FeeInfo
	err := c.Request(ctx, "/feeinfo", &res, nil)
	return res, err
}

// GetPeers returns the white and gray peer lists.
func (c *Client) GetPeers(ctx context.Context) (Peers, error) {
	var res Peers
	err := c.Request(ctx, "/getpeers", &res, nil)
	return res, err
}

// GetCurrencyID returns the hex-encoded currency id blob of the network.
func (c *Client) GetCurrencyID(ctx context.Context) (string, error) {
	var res struct {
		CurrencyIDBlob string `json:"currency_id_blob"`
	}
	err := c.Call(ctx, "getcurrencyid", &res, noParams)
	return res.CurrencyIDBlob, err
}

// GetBlockHeaderByHeight returns the header of the main chain block at
// height.
func (c *Client) GetBlockHeaderByHeight(ctx context.Context, height uint64) (BlockHeader, error) {
	var res blockHeaderResult
	err := c.Call(ctx, "getblockheaderbyheight", &res, map[string]uint64{"height": height})
	return res.BlockHeader, err
}

// GetBlockHeaderByHash returns the header of the block with the given hash.
func (c *Client) GetBlockHeaderByHash(ctx context.Context, hash string) (BlockHeader, error) {
	var res blockHeaderResult
	err := c.Call(ctx, "getblockheaderbyhash", &res, map[string]string{"hash": hash})
	return res.BlockHeader, err
}

// GetLastBlockHeader returns the header of the current chain tip.
func (c *Client) GetLastBlockHeader(ctx context.Context) (BlockHeader, error) {
	var res blockHeaderResult
	err := c.Call(ctx, "getlastblockheader", &res, noParams)
	return res.BlockHeader, err
}

// GetBlockTemplate returns a block template paying to walletAddress with
// reserveSize bytes reserved for extra nonce data.
func (c *Client) GetBlockTemplate(ctx context.Context, walletAddress string, reserveSize uint64) (BlockTemplate, error) {
	params := struct {
		WalletAddress string `json:"wallet_address"`
		ReserveSize   uint64 `json:"reserve_size"`
	}{walletAddress, reserveSize}
	var res BlockTemplate
	err := c.Call(ctx, "getblocktemplate", &res, params)
	return res, err
}

// GetBlockHash returns the hash of the main chain block at height.
func (c *Client) GetBlockHash(ctx context.Context, height uint64) (string, error) {
	var res string
	err := c.Call(ctx, "on_getblockhash", &res, []uint64{height})
	return res, err
}

// GetBlockCount returns the number of blocks in the main chain.
func (c *Client) GetBlockCount(ctx context.Context) (BlockCount, error) {
	var res BlockCount
	err := c.Call(ctx, "getblockcount", &res, noParams)
	return res, err
}

// GetTransactionPool returns summaries of the transactions in the memory
// pool.
func (c *Client) GetTransactionPool(ctx context.Context) (TransactionPool, error) {
	var res TransactionPool
	err := c.Call(ctx, "f_on_transactions_pool_json", &res, noParams)
	return res, err
}

// GetTransaction returns details of the transaction with the given hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (Transaction, error) {
	var res Transaction
	err := c.Call(ctx, "f_transaction_json", &res, map[string]string{"hash": hash})
	return res, err
}

// GetBlock returns details of the block with the given hash.
func (c *Client) GetBlock(ctx context.Context, hash string) (Block, error) {
	var res Block
	err := c.Call(ctx, "f_block_json", &res, map[string]string{"hash": hash})
	return res, err
}

// GetBlocks returns summaries of the blocks at and below height.
func (c *Client) GetBlocks(ctx context.Context, height uint64) (BlocksList, error) {
	var res BlocksList
	err := c.Call(ctx, "f_blocks_list_json", &res, map[string]uint64{"height": height})
	return res, err
}

// QueryBlocksLite returns compact blocks following the newest known block
// in blockHashes.
func (c *Client) QueryBlocksLite(ctx context.Context, blockHashes []string, timestamp uint64) (BlocksLite, error) {
	req := struct {
		BlockIDs  []string `json:"blockIds"`
		Timestamp uint64   `json:"timestamp"`
	}{blockHashes, timestamp}
	var res BlocksLite
	err := c.Request(ctx, "/queryblockslite", &res, req)
	return res, err
}

// GetOutputIndexes returns the global output indexes of a transaction.
func (c *Client) GetOutputIndexes(ctx context.Context, txHash string) (OutputIndexes, error) {
	var res OutputIndexes
	err := c.Request(ctx, "/get_o_indexes", &res, map[string]string{"txid": txHash})
	return res, err
}

// GetRandomOutputs returns count random outputs for each of amounts, for use
// as ring members.
func (c *Client) GetRandomOutputs(ctx context.Context, amounts []uint64, count int) (RandomOutputs, error) {
	const op errors.Op = "turtlecoind.GetRandomOutputs"
	if count < 0 {
		return RandomOutputs{}, errors.E(op, errors.Invalid, "negative output count")
	}
	req := struct {
		Amounts   []uint64 `json:"amounts"`
		OutsCount int      `json:"outs_count"`
	}{amounts, count}
	var res RandomOutputs
	err := c.Request(ctx, "/getrandom_outs", &res, req)
	return res, err
}

type poolChangesRequest struct {
	TailBlockID string   `json:"tailBlockId"`
	KnownTxIDs  []string `json:"knownTxsIds"`
}

// GetPoolChanges returns memory pool changes relative to the known
// transactions, provided tailBlockHash is the current tip.
func (c *Client) GetPoolChanges(ctx context.Context, tailBlockHash string, known []string) (PoolChanges, error) {
	if known == nil {
		known = []string{}
	}
	var res PoolChanges
	err := c.Request(ctx, "/get_pool_changes", &res, poolChangesRequest{tailBlockHash, known})
	return res, err
}

// GetPoolChangesLite is GetPoolChanges returning transaction prefixes only.
func (c *Client) GetPoolChangesLite(ctx context.Context, tailBlockHash string, known []string) (PoolChanges, error) {
	if known == nil {
		known = []string{}
	}
	var res PoolChanges
	err := c.Request(ctx, "/get_pool_changes_lite", &res, poolChangesRequest{tailBlockHash, known})
	return res, err
}

// GetBlockDetailsByHeight returns details of the main chain block at height.
func (c *Client) GetBlockDetailsByHeight(ctx context.Context, height uint64) (BlockDetailsResult, error) {
	var res BlockDetailsResult
	err := c.Request(ctx, "/get_block_details_by_height", &res,
		map[string]uint64{"blockHeight": height})
	return res, err
}

// GetBlocksDetailsByHeights returns details of the main chain blocks at
// heights.
func (c *Client) GetBlocksDetailsByHeights(ctx context.Context, heights []uint64) (BlocksDetailsResult, error) {
	var res BlocksDetailsResult
	err := c.Request(ctx, "/get_blocks_details_by_heights", &res,
		map[string][]uint64{"blockHeights": heights})
	return res, err
}

// GetBlocksDetailsByHashes returns details of the blocks with the given
// hashes.
func (c *Client) GetBlocksDetailsByHashes(ctx context.Context, hashes []string) (BlocksDetailsResult, error) {
	var res BlocksDetailsResult
	err := c.Request(ctx, "/get_blocks_details_by_hashes", &res,
		map[string][]string{"blockHashes": hashes})
	return res, err
}

// GetBlocksHashesByTimestamps returns the hashes of blocks mined within
// seconds of timestampBegin.
func (c *Client) GetBlocksHashesByTimestamps(ctx context.Context, timestampBegin, seconds uint64) (BlockHashes, error) {
	req := struct {
		TimestampBegin uint64 `json:"timestampBegin"`
		SecondsCount   uint64 `json:"secondsCount"`
	}{timestampBegin, seconds}
	var res BlockHashes
	err := c.Request(ctx, "/get_blocks_hashes_by_timestamps", &res, req)
	return res, err
}

// GetTransactionDetailsByHashes returns details of the transactions with the
// given hashes.
func (c *Client) GetTransactionDetailsByHashes(ctx context.Context, hashes []string) (TransactionDetailsResult, error) {
	var res TransactionDetailsResult
	err := c.Request(ctx, "/get_transaction_details_by_hashes", &res,
		map[string][]string{"transactionHashes": hashes})
	return res, err
}

// GetTransactionHashesByPaymentID returns the hashes of transactions carrying
// paymentID.
func (c *Client) GetTransactionHashesByPaymentID(ctx context.Context, paymentID string) (TransactionHashes, error) {
	var res TransactionHashes
	err := c.Request(ctx, "/get_transaction_hashes_by_payment_id", &res,
		map[string]string{"paymentId": paymentID})
	return res, err
}
