// Copyright (c) 2015-2020 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletd

import (
	"context"
	"encoding/json"
)

var noParams = struct{}{}

type addressParams struct {
	Address string `json:"address"`
}

// GetAddresses returns every address of the container, primary address
// first.
func (c *Client) GetAddresses(ctx context.Context) ([]string, error) {
	var res struct {
		Addresses []string `json:"addresses"`
	}
	err := c.Call(ctx, "getAddresses", &res, noParams)
	return res.Addresses, err
}

// GetStatus returns the synchronization status of the wallet.
func (c *Client) GetStatus(ctx context.Context) (Status, error) {
	var res Status
	err := c.Call(ctx, "getStatus", &res, noParams)
	return res, err
}

// GetFeeInfo returns the node fee the wallet pays with each transaction.
func (c *Client) GetFeeInfo(ctx context.Context) (FeeInfo, error) {
	var res FeeInfo
	err := c.Call(ctx, "getFeeInfo", &res, noParams)
	return res, err
}

// GetViewKey returns the private view key shared by all container
// addresses.
func (c *Client) GetViewKey(ctx context.Context) (string, error) {
	var res struct {
		ViewSecretKey string `json:"viewSecretKey"`
	}
	err := c.Call(ctx, "getViewKey", &res, noParams)
	return res.ViewSecretKey, err
}

// GetSpendKeys returns the spend key pair of address.
func (c *Client) GetSpendKeys(ctx context.Context, address string) (SpendKeys, error) {
	var res SpendKeys
	err := c.Call(ctx, "getSpendKeys", &res, addressParams{address})
	return res, err
}

// GetMnemonicSeed returns the mnemonic seed of a deterministic address.
func (c *Client) GetMnemonicSeed(ctx context.Context, address string) (string, error) {
	var res struct {
		MnemonicSeed string `json:"mnemonicSeed"`
	}
	err := c.Call(ctx, "getMnemonicSeed", &res, addressParams{address})
	return res.MnemonicSeed, err
}

// CreateAddress creates a new address in the container and returns it.
func (c *Client) CreateAddress(ctx context.Context) (string, error) {
	var res struct {
		Address string `json:"address"`
	}
	err := c.Call(ctx, "createAddress", &res, noParams)
	return res.Address, err
}

// DeleteAddress removes address from the container.
func (c *Client) DeleteAddress(ctx context.Context, address string) error {
	return c.Call(ctx, "deleteAddress", nil, addressParams{address})
}

// GetBalance returns the balance of address.
func (c *Client) GetBalance(ctx context.Context, address string) (Balance, error) {
	var res Balance
	err := c.Call(ctx, "getBalance", &res, addressParams{address})
	return res, err
}

// GetBlockHashes returns the hashes of the blocks in r.
func (c *Client) GetBlockHashes(ctx context.Context, r BlockRange) ([]json.RawMessage, error) {
	var res struct {
		BlockHashes []json.RawMessage `json:"blockHashes"`
	}
	err := c.Call(ctx, "getBlockHashes", &res, r)
	return res.BlockHashes, err
}

// GetTransactionHashes returns the hashes of wallet transactions in the
// blocks of r, grouped by block.
func (c *Client) GetTransactionHashes(ctx context.Context, r BlockRange) ([]BlockTransactionHashes, error) {
	var res struct {
		Items []BlockTransactionHashes `json:"items"`
	}
	err := c.Call(ctx, "getTransactionHashes", &res, r)
	return res.Items, err
}

// GetTransactions returns the wallet transactions in the blocks of r, grouped
// by block.
func (c *Client) GetTransactions(ctx context.Context, r BlockRange) ([]BlockTransactions, error) {
	var res struct {
		Items []BlockTransactions `json:"items"`
	}
	err := c.Call(ctx, "getTransactions", &res, r)
	return res.Items, err
}

// GetUnconfirmedTransactionHashes returns the hashes of wallet transactions
// that are not yet mined.
func (c *Client) GetUnconfirmedTransactionHashes(ctx context.Context) ([]json.RawMessage, error) {
	var res struct {
		TransactionHashes []json.RawMessage `json:"transactionHashes"`
	}
	err := c.Call(ctx, "getUnconfirmedTransactionHashes", &res, noParams)
	return res.TransactionHashes, err
}

// CreateIntegratedAddress encodes paymentID into address.
func (c *Client) CreateIntegratedAddress(ctx context.Context, address, paymentID string) (string, error) {
	params := struct {
		Address   string `json:"address"`
		PaymentID string `json:"paymentId"`
	}{address, paymentID}
	var res struct {
		IntegratedAddress string `json:"integratedAddress"`
	}
	err := c.Call(ctx, "createIntegratedAddress", &res, params)
	return res.IntegratedAddress, err
}

// Save writes the wallet container to disk.
func (c *Client) Save(ctx context.Context) error {
	return c.Call(ctx, "save", nil, noParams)
}
