// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turtlecoind

import "encoding/json"

// Result types decode only the members the harness prints or threads into
// later calls.  Other members, and the elements of lists which are only
// counted, are left undecoded so that their types never fail a call.

// Info is the result of the /getinfo endpoint.
type Info struct {
	Difficulty uint64 `json:"difficulty"`
	Height     uint64 `json:"height"`
	Synced     bool   `json:"synced"`
	Version    string `json:"version"`
}

// Height is the result of the /getheight endpoint.
type Height struct {
	Height uint64 `json:"height"`
}

// FeeInfo is the result of the /feeinfo endpoint.
type FeeInfo struct {
	Status string `json:"status"`
}

// Peers is the result of the /getpeers endpoint.
type Peers struct {
	Peers []json.RawMessage `json:"peers"`
}

// BlockHeader describes a block in the results of the getblockheader*
// methods.
type BlockHeader struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
}

type blockHeaderResult struct {
	BlockHeader BlockHeader `json:"block_header"`
}

// BlockTemplate is the result of the getblocktemplate method.
type BlockTemplate struct {
	Difficulty uint64 `json:"difficulty"`
}

// BlockCount is the result of the getblockcount method.
type BlockCount struct {
	Count uint64 `json:"count"`
}

// TransactionPool is the result of the f_on_transactions_pool_json method.
type TransactionPool struct {
	Transactions []json.RawMessage `json:"transactions"`
}

// TransactionSummary is the txDetails member of a f_transaction_json
// result.
type TransactionSummary struct {
	Hash string `json:"hash"`
}

// Transaction is the result of the f_transaction_json method.
type Transaction struct {
	TxDetails TransactionSummary `json:"txDetails"`
}

// BlockSummary is the block member of a f_block_json result.
type BlockSummary struct {
	PrevHash string `json:"prev_hash"`
}

// Block is the result of the f_block_json method.
type Block struct {
	Block BlockSummary `json:"block"`
}

// BlocksList is the result of the f_blocks_list_json method.
type BlocksList struct {
	Blocks []json.RawMessage `json:"blocks"`
}

// BlocksLite is the response of the /queryblockslite endpoint.
type BlocksLite struct {
	Items []json.RawMessage `json:"items"`
}

// OutputIndexes is the response of the /get_o_indexes endpoint.
type OutputIndexes struct {
	Indexes []json.RawMessage `json:"o_indexes"`
}

// RandomOutputs is the response of the /getrandom_outs endpoint.
type RandomOutputs struct {
	Outs []json.RawMessage `json:"outs"`
}

// PoolChanges is the response of the /get_pool_changes and
// /get_pool_changes_lite endpoints.
type PoolChanges struct {
	Status string `json:"status"`
}

// BlockDetails describes the block of a /get_block_details_by_height
// response.
type BlockDetails struct {
	Hash string `json:"hash"`
}

// BlockDetailsResult is the response of the /get_block_details_by_height
// endpoint.
type BlockDetailsResult struct {
	Block BlockDetails `json:"block"`
}

// BlocksDetailsResult is the response of the /get_blocks_details_by_heights
// and /get_blocks_details_by_hashes endpoints.
type BlocksDetailsResult struct {
	Blocks []json.RawMessage `json:"blocks"`
}

// BlockHashes is the response of the /get_blocks_hashes_by_timestamps
// endpoint.
type BlockHashes struct {
	BlockHashes []json.RawMessage `json:"blockHashes"`
}

// TransactionDetailsResult is the response of the
// /get_transaction_details_by_hashes endpoint.
type TransactionDetailsResult struct {
	Transactions []json.RawMessage `json:"transactions"`
}

// TransactionHashes is the response of the
// /get_transaction_hashes_by_payment_id endpoint.
type TransactionHashes struct {
	TransactionHashes []json.RawMessage `json:"transactionHashes"`
}
