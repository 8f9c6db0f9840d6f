// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"context"

	"github.com/turtlecoin/turtletest/internal/reference"
	"github.com/turtlecoin/turtletest/rpc/client/turtlecoind"
)

// Fixed arguments of the daemon suite.  The hashes and payment id refer to
// historical mainnet objects.
const (
	KnownBlockHash   = "2ef060801dd27327533580cfa538849f9e1968d13418f2dd2535774a8c494bf4"
	KnownTxHash      = "702ad5bd04b9eff14b080d508f69a320da1909e989d6c163c18f80ae7a5ab832"
	KnownPaymentID   = "80ec855eef7df4bce718442cabe086f19dfdd0d03907c7768eddb8eca8c5a667"
	DonationAddress  = "TRTLuxN6FVALYxeAEKhtWDYNS9Vd9dHVp3QHwjKbo76ggQKgUfVjQp8iPypECCy3MwZVyu89k1fWE2Ji6EKedbrqECHHWouZN6g"
	templateReserve  = 200
	blocksListHeight = 30
	timestampBegin   = 1531348100
	timestampSeconds = 240
)

var (
	randomOutAmounts = []uint64{100, 1000}
	detailHeights    = []uint64{2, 4, 6, 8}
)

// DaemonAPI is the TurtleCoind RPC surface exercised by the daemon suite.
type DaemonAPI interface {
	GetInfo(ctx context.Context) (turtlecoind.Info, error)
	GetHeight(ctx context.Context) (turtlecoind.Height, error)
	FeeInfo(ctx context.Context) (turtlecoind.FeeInfo, error)
	GetPeers(ctx context.Context) (turtlecoind.Peers, error)
	GetCurrencyID(ctx context.Context) (string, error)
	GetBlockHeaderByHeight(ctx context.Context, height uint64) (turtlecoind.BlockHeader, error)
	GetBlockHeaderByHash(ctx context.Context, hash string) (turtlecoind.BlockHeader, error)
	GetLastBlockHeader(ctx context.Context) (turtlecoind.BlockHeader, error)
	GetBlockTemplate(ctx context.Context, walletAddress string, reserveSize uint64) (turtlecoind.BlockTemplate, error)
	GetBlockHash(ctx context.Context, height uint64) (string, error)
	GetBlockCount(ctx context.Context) (turtlecoind.BlockCount, error)
	GetTransactionPool(ctx context.Context) (turtlecoind.TransactionPool, error)
	GetTransaction(ctx context.Context, hash string) (turtlecoind.Transaction, error)
	GetBlock(ctx context.Context, hash string) (turtlecoind.Block, error)
	GetBlocks(ctx context.Context, height uint64) (turtlecoind.BlocksList, error)
	QueryBlocksLite(ctx context.Context, blockHashes []string, timestamp uint64) (turtlecoind.BlocksLite, error)
	GetOutputIndexes(ctx context.Context, txHash string) (turtlecoind.OutputIndexes, error)
	GetRandomOutputs(ctx context.Context, amounts []uint64, count int) (turtlecoind.RandomOutputs, error)
	GetPoolChanges(ctx context.Context, tailBlockHash string, known []string) (turtlecoind.PoolChanges, error)
	GetPoolChangesLite(ctx context.Context, tailBlockHash string, known []string) (turtlecoind.PoolChanges, error)
	GetBlockDetailsByHeight(ctx context.Context, height uint64) (turtlecoind.BlockDetailsResult, error)
	GetBlocksDetailsByHeights(ctx context.Context, heights []uint64) (turtlecoind.BlocksDetailsResult, error)
	GetBlocksDetailsByHashes(ctx context.Context, hashes []string) (turtlecoind.BlocksDetailsResult, error)
	GetBlocksHashesByTimestamps(ctx context.Context, timestampBegin, seconds uint64) (turtlecoind.BlockHashes, error)
	GetTransactionDetailsByHashes(ctx context.Context, hashes []string) (turtlecoind.TransactionDetailsResult, error)
	GetTransactionHashesByPaymentID(ctx context.Context, paymentID string) (turtlecoind.TransactionHashes, error)
}

var _ DaemonAPI = (*turtlecoind.Client)(nil)

// DaemonOptions parameterizes the daemon suite.
type DaemonOptions struct {
	// Mixin is the number of random outputs requested per amount.
	Mixin int

	// Reference is the snapshot of the reference node, or nil when no
	// reference is available.
	Reference *reference.Snapshot
}

// crossCheck compares a local value against the reference.  The comparison
// is only made when both nodes report themselves synced and both values are
// present.
func crossCheck(ref *reference.Snapshot, field func(*reference.Snapshot) uint64,
	local func(turtlecoind.Info) uint64) func(turtlecoind.Info) (bool, bool) {

	return func(info turtlecoind.Info) (match, ok bool) {
		if ref == nil || !ref.Synced || !info.Synced {
			return false, false
		}
		want, got := field(ref), local(info)
		if want == 0 || got == 0 {
			return false, false
		}
		return want == got, true
	}
}

// Daemon returns the TurtleCoind suite.
func Daemon(api DaemonAPI, opts DaemonOptions) *Suite {
	ref := opts.Reference
	heightCheck := crossCheck(ref,
		func(s *reference.Snapshot) uint64 { return s.Height },
		func(i turtlecoind.Info) uint64 { return i.Height })
	difficultyCheck := crossCheck(ref,
		func(s *reference.Snapshot) uint64 { return s.Difficulty },
		func(i turtlecoind.Info) uint64 { return i.Difficulty })

	steps := []Step{
		Call[turtlecoind.Info]{
			Label: "getinfo",
			Do: func(ctx context.Context, _ *State) (turtlecoind.Info, error) {
				return api.GetInfo(ctx)
			},
			Display: func(r turtlecoind.Info) string { return r.Version },
			Derived: []Derived[turtlecoind.Info]{
				{Label: "height matches reference", Check: heightCheck},
				{Label: "difficulty matches reference", Check: difficultyCheck},
			},
		}.Step(),
		Call[turtlecoind.Height]{
			Label: "getheight",
			Do: func(ctx context.Context, _ *State) (turtlecoind.Height, error) {
				return api.GetHeight(ctx)
			},
			Display: func(r turtlecoind.Height) string { return nonzero(r.Height) },
		}.Step(),
		Call[turtlecoind.FeeInfo]{
			Label: "feeinfo",
			Do: func(ctx context.Context, _ *State) (turtlecoind.FeeInfo, error) {
				return api.FeeInfo(ctx)
			},
			Display: func(r turtlecoind.FeeInfo) string { return r.Status },
		}.Step(),
		Call[turtlecoind.Peers]{
			Label: "getpeers",
			Do: func(ctx context.Context, _ *State) (turtlecoind.Peers, error) {
				return api.GetPeers(ctx)
			},
			Display: func(r turtlecoind.Peers) string { return count(r.Peers) },
		}.Step(),
		Call[string]{
			Label: "getcurrencyid",
			Do: func(ctx context.Context, _ *State) (string, error) {
				return api.GetCurrencyID(ctx)
			},
			Display: func(r string) string { return r },
		}.Step(),
		Call[turtlecoind.BlockHeader]{
			Label: "getblockheaderbyheight",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockHeader, error) {
				return api.GetBlockHeaderByHeight(ctx, 2)
			},
			Display: func(r turtlecoind.BlockHeader) string { return r.Hash },
		}.Step(),
		Call[turtlecoind.BlockHeader]{
			Label: "getblockheaderbyhash",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockHeader, error) {
				return api.GetBlockHeaderByHash(ctx, KnownBlockHash)
			},
			Display: func(r turtlecoind.BlockHeader) string { return nonzero(r.Height) },
		}.Step(),
		Call[turtlecoind.BlockHeader]{
			Label: "getlastblockheader",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockHeader, error) {
				return api.GetLastBlockHeader(ctx)
			},
			Display:  func(r turtlecoind.BlockHeader) string { return r.Hash },
			Produces: LastBlockHash,
		}.Step(),
		Call[turtlecoind.BlockTemplate]{
			Label: "getblocktemplate",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockTemplate, error) {
				return api.GetBlockTemplate(ctx, DonationAddress, templateReserve)
			},
			Display: func(r turtlecoind.BlockTemplate) string { return nonzero(r.Difficulty) },
		}.Step(),
		Call[string]{
			Label: "on_getblockhash",
			Do: func(ctx context.Context, _ *State) (string, error) {
				return api.GetBlockHash(ctx, 2)
			},
			Display: func(r string) string { return r },
		}.Step(),
		Call[turtlecoind.BlockCount]{
			Label: "getblockcount",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockCount, error) {
				return api.GetBlockCount(ctx)
			},
			Display: func(r turtlecoind.BlockCount) string { return nonzero(r.Count) },
		}.Step(),
		Call[turtlecoind.TransactionPool]{
			Label: "f_on_transactions_pool_json",
			Do: func(ctx context.Context, _ *State) (turtlecoind.TransactionPool, error) {
				return api.GetTransactionPool(ctx)
			},
			Display: func(r turtlecoind.TransactionPool) string { return count(r.Transactions) },
		}.Step(),
		Call[turtlecoind.Transaction]{
			Label: "f_transaction_json",
			Do: func(ctx context.Context, _ *State) (turtlecoind.Transaction, error) {
				return api.GetTransaction(ctx, KnownTxHash)
			},
			Display: func(r turtlecoind.Transaction) string { return r.TxDetails.Hash },
		}.Step(),
		Call[turtlecoind.Block]{
			Label: "f_block_json",
			Do: func(ctx context.Context, _ *State) (turtlecoind.Block, error) {
				return api.GetBlock(ctx, KnownBlockHash)
			},
			Display: func(r turtlecoind.Block) string { return r.Block.PrevHash },
		}.Step(),
		Call[turtlecoind.BlocksList]{
			Label: "f_blocks_list_json",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlocksList, error) {
				return api.GetBlocks(ctx, blocksListHeight)
			},
			Display: func(r turtlecoind.BlocksList) string { return count(r.Blocks) },
		}.Step(),
		Call[turtlecoind.BlocksLite]{
			Label: "queryblockslite",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlocksLite, error) {
				return api.QueryBlocksLite(ctx, []string{KnownBlockHash}, 0)
			},
			Display: func(r turtlecoind.BlocksLite) string { return count(r.Items) },
		}.Step(),
		Call[turtlecoind.OutputIndexes]{
			Label: "get_o_indexes",
			Do: func(ctx context.Context, _ *State) (turtlecoind.OutputIndexes, error) {
				return api.GetOutputIndexes(ctx, KnownTxHash)
			},
			Display: func(r turtlecoind.OutputIndexes) string { return count(r.Indexes) },
		}.Step(),
		Call[turtlecoind.RandomOutputs]{
			Label: "getrandom_outs",
			Do: func(ctx context.Context, _ *State) (turtlecoind.RandomOutputs, error) {
				return api.GetRandomOutputs(ctx, randomOutAmounts, opts.Mixin)
			},
			Display: func(r turtlecoind.RandomOutputs) string { return count(r.Outs) },
		}.Step(),
		Call[turtlecoind.PoolChanges]{
			Label: "get_pool_changes",
			Do: func(ctx context.Context, _ *State) (turtlecoind.PoolChanges, error) {
				return api.GetPoolChanges(ctx, KnownBlockHash, nil)
			},
			Display:  func(r turtlecoind.PoolChanges) string { return r.Status },
			Sentinel: UnknownOkay,
		}.Step(),
		Call[turtlecoind.PoolChanges]{
			Label: "get_pool_changes_lite",
			Do: func(ctx context.Context, _ *State) (turtlecoind.PoolChanges, error) {
				return api.GetPoolChangesLite(ctx, KnownBlockHash, nil)
			},
			Display:  func(r turtlecoind.PoolChanges) string { return r.Status },
			Sentinel: UnknownOkay,
		}.Step(),
		Call[turtlecoind.BlockDetailsResult]{
			Label: "get_block_details_by_height",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockDetailsResult, error) {
				return api.GetBlockDetailsByHeight(ctx, 2)
			},
			Display: func(r turtlecoind.BlockDetailsResult) string { return r.Block.Hash },
		}.Step(),
		Call[turtlecoind.BlocksDetailsResult]{
			Label: "get_blocks_details_by_heights",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlocksDetailsResult, error) {
				return api.GetBlocksDetailsByHeights(ctx, detailHeights)
			},
			Display: func(r turtlecoind.BlocksDetailsResult) string { return count(r.Blocks) },
		}.Step(),
		Call[turtlecoind.BlocksDetailsResult]{
			Label: "get_blocks_details_by_hashes",
			Do: func(ctx context.Context, st *State) (turtlecoind.BlocksDetailsResult, error) {
				return api.GetBlocksDetailsByHashes(ctx, []string{KnownBlockHash, st.Get(LastBlockHash)})
			},
			Display: func(r turtlecoind.BlocksDetailsResult) string { return count(r.Blocks) },
		}.Step(),
		Call[turtlecoind.BlockHashes]{
			Label: "get_blocks_hashes_by_timestamps",
			Do: func(ctx context.Context, _ *State) (turtlecoind.BlockHashes, error) {
				return api.GetBlocksHashesByTimestamps(ctx, timestampBegin, timestampSeconds)
			},
			Display: func(r turtlecoind.BlockHashes) string { return count(r.BlockHashes) },
		}.Step(),
		Call[turtlecoind.TransactionDetailsResult]{
			Label: "get_transaction_details_by_hashes",
			Do: func(ctx context.Context, _ *State) (turtlecoind.TransactionDetailsResult, error) {
				return api.GetTransactionDetailsByHashes(ctx, []string{KnownTxHash})
			},
			Display: func(r turtlecoind.TransactionDetailsResult) string { return count(r.Transactions) },
		}.Step(),
		Call[turtlecoind.TransactionHashes]{
			Label: "get_transaction_hashes_by_payment_id",
			Do: func(ctx context.Context, _ *State) (turtlecoind.TransactionHashes, error) {
				return api.GetTransactionHashesByPaymentID(ctx, KnownPaymentID)
			},
			Display: func(r turtlecoind.TransactionHashes) string { return count(r.TransactionHashes) },
		}.Step(),
	}

	return &Suite{
		Name:      "daemon",
		Fallbacks: map[string]string{LastBlockHash: KnownBlockHash},
		Steps:     steps,
	}
}
