// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/turtlecoin/turtletest/rpc/client/walletd"
)

var serviceRange = walletd.BlockRange{FirstBlockIndex: 1, BlockCount: 100}

// ServiceAPI is the walletd RPC surface exercised by the service suite.
type ServiceAPI interface {
	GetAddresses(ctx context.Context) ([]string, error)
	GetStatus(ctx context.Context) (walletd.Status, error)
	GetFeeInfo(ctx context.Context) (walletd.FeeInfo, error)
	GetViewKey(ctx context.Context) (string, error)
	GetSpendKeys(ctx context.Context, address string) (walletd.SpendKeys, error)
	GetMnemonicSeed(ctx context.Context, address string) (string, error)
	CreateAddress(ctx context.Context) (string, error)
	DeleteAddress(ctx context.Context, address string) error
	GetBalance(ctx context.Context, address string) (walletd.Balance, error)
	GetBlockHashes(ctx context.Context, r walletd.BlockRange) ([]json.RawMessage, error)
	GetTransactionHashes(ctx context.Context, r walletd.BlockRange) ([]walletd.BlockTransactionHashes, error)
	GetTransactions(ctx context.Context, r walletd.BlockRange) ([]walletd.BlockTransactions, error)
	GetUnconfirmedTransactionHashes(ctx context.Context) ([]json.RawMessage, error)
	CreateIntegratedAddress(ctx context.Context, address, paymentID string) (string, error)
	Save(ctx context.Context) error
}

var _ ServiceAPI = (*walletd.Client)(nil)

// mutatingServiceCalls are listed by the service suite but never invoked:
// they spend funds, alter the container, or wipe wallet state.
var mutatingServiceCalls = []string{
	"sendTransaction",
	"createDelayedTransaction",
	"getDelayedTransactionHashes",
	"deleteDelayedTransaction",
	"sendDelayedTransaction",
	"estimateFusion",
	"sendFusionTransaction",
	"reset",
}

func identity(s string) string { return s }

// Service returns the walletd suite.  The suite creates a temporary address
// and deletes it again within the same run.  The temporary address falls back
// to the donation address rather than a wallet address, so a failed
// createAddress can never delete a real address of the container.
func Service(api ServiceAPI) *Suite {
	steps := []Step{
		Call[[]string]{
			Label: "getAddresses",
			Do: func(ctx context.Context, _ *State) ([]string, error) {
				return api.GetAddresses(ctx)
			},
			Display: func(r []string) string {
				if len(r) == 0 {
					return ""
				}
				return r[0]
			},
			Produces: PrimaryAddress,
		}.Step(),
		Call[walletd.Status]{
			Label: "getStatus",
			Do: func(ctx context.Context, _ *State) (walletd.Status, error) {
				return api.GetStatus(ctx)
			},
			Display: func(r walletd.Status) string { return amount(r.BlockCount) },
		}.Step(),
		Call[walletd.FeeInfo]{
			Label: "getFeeInfo",
			Do: func(ctx context.Context, _ *State) (walletd.FeeInfo, error) {
				return api.GetFeeInfo(ctx)
			},
			Display: func(r walletd.FeeInfo) string { return amount(r.Amount) },
		}.Step(),
		Call[string]{
			Label: "getViewKey",
			Do: func(ctx context.Context, _ *State) (string, error) {
				return api.GetViewKey(ctx)
			},
			Display: abbreviate,
		}.Step(),
		Call[walletd.SpendKeys]{
			Label: "getSpendKeys",
			Do: func(ctx context.Context, st *State) (walletd.SpendKeys, error) {
				return api.GetSpendKeys(ctx, st.Get(PrimaryAddress))
			},
			Display: func(r walletd.SpendKeys) string { return r.SpendPublicKey },
		}.Step(),
		Call[string]{
			Label: "getMnemonicSeed",
			Do: func(ctx context.Context, st *State) (string, error) {
				return api.GetMnemonicSeed(ctx, st.Get(PrimaryAddress))
			},
			Display: func(seed string) string {
				words := len(strings.Fields(seed))
				if words == 0 {
					return ""
				}
				return fmt.Sprintf("%d words", words)
			},
		}.Step(),
		Call[string]{
			Label: "createAddress",
			Do: func(ctx context.Context, _ *State) (string, error) {
				return api.CreateAddress(ctx)
			},
			Display:  identity,
			Produces: TempAddress,
		}.Step(),
		Call[string]{
			Label: "deleteAddress",
			Do: func(ctx context.Context, st *State) (string, error) {
				addr := st.Get(TempAddress)
				return addr, api.DeleteAddress(ctx, addr)
			},
			Display: identity,
		}.Step(),
		Call[walletd.Balance]{
			Label: "getBalance",
			Do: func(ctx context.Context, st *State) (walletd.Balance, error) {
				return api.GetBalance(ctx, st.Get(PrimaryAddress))
			},
			Display: func(r walletd.Balance) string { return amount(r.AvailableBalance) },
		}.Step(),
		Call[[]json.RawMessage]{
			Label: "getBlockHashes",
			Do: func(ctx context.Context, _ *State) ([]json.RawMessage, error) {
				return api.GetBlockHashes(ctx, serviceRange)
			},
			Display: count[json.RawMessage],
		}.Step(),
		Call[[]walletd.BlockTransactionHashes]{
			Label: "getTransactionHashes",
			Do: func(ctx context.Context, _ *State) ([]walletd.BlockTransactionHashes, error) {
				return api.GetTransactionHashes(ctx, serviceRange)
			},
			Display: count[walletd.BlockTransactionHashes],
		}.Step(),
		Call[[]walletd.BlockTransactions]{
			Label: "getTransactions",
			Do: func(ctx context.Context, _ *State) ([]walletd.BlockTransactions, error) {
				return api.GetTransactions(ctx, serviceRange)
			},
			Display: count[walletd.BlockTransactions],
		}.Step(),
		Call[[]json.RawMessage]{
			Label: "getUnconfirmedTransactionHashes",
			Do: func(ctx context.Context, _ *State) ([]json.RawMessage, error) {
				return api.GetUnconfirmedTransactionHashes(ctx)
			},
			Display: count[json.RawMessage],
		}.Step(),
		Call[string]{
			Label: "createIntegratedAddress",
			Do: func(ctx context.Context, st *State) (string, error) {
				return api.CreateIntegratedAddress(ctx, st.Get(PrimaryAddress), KnownPaymentID)
			},
			Display: abbreviate,
		}.Step(),
		Call[string]{
			Label: "save",
			Do: func(ctx context.Context, _ *State) (string, error) {
				return "saved", api.Save(ctx)
			},
			Display: identity,
		}.Step(),
	}
	for _, label := range mutatingServiceCalls {
		steps = append(steps, Skipped(label))
	}

	return &Suite{
		Name: "service",
		Fallbacks: map[string]string{
			PrimaryAddress: DonationAddress,
			TempAddress:    DonationAddress,
		},
		Steps: steps,
	}
}
