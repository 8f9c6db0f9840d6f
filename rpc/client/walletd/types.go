// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletd

import "encoding/json"

// Status is the result of the getStatus method.
type Status struct {
	BlockCount uint64 `json:"blockCount"`
}

// FeeInfo is the result of the getFeeInfo method.
type FeeInfo struct {
	Amount uint64 `json:"amount"`
}

// SpendKeys is the result of the getSpendKeys method.  The secret key is
// never decoded.
type SpendKeys struct {
	SpendPublicKey string `json:"spendPublicKey"`
}

// Balance is the result of the getBalance method.
type Balance struct {
	AvailableBalance uint64 `json:"availableBalance"`
}

// BlockTransactionHashes is one block of a getTransactionHashes result.  Items
// are only counted and are left undecoded.
type BlockTransactionHashes = json.RawMessage

// BlockTransactions is one block of a getTransactions result, left
// undecoded.
type BlockTransactions = json.RawMessage

// BlockRange selects blocks by index for the getBlockHashes,
// getTransactionHashes and getTransactions methods.
type BlockRange struct {
	FirstBlockIndex uint64 `json:"firstBlockIndex"`
	BlockCount      uint64 `json:"blockCount"`
}
