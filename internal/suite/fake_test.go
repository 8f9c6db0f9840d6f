// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/turtlecoin/turtletest/errors"
	"github.com/turtlecoin/turtletest/rpc/client/turtlecoind"
	"github.com/turtlecoin/turtletest/rpc/client/walletd"
)

// caller serves canned JSON documents keyed by JSON-RPC method or endpoint
// path, and records the names and parameters of every call.
type caller struct {
	responses map[string]string
	fail      map[string]bool
	failAll   bool
	calls     []string
	params    map[string]string
}

func newCaller(responses map[string]string) *caller {
	return &caller{
		responses: responses,
		fail:      make(map[string]bool),
		params:    make(map[string]string),
	}
}

func (c *caller) respond(name string, res, params any) error {
	c.calls = append(c.calls, name)
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return err
		}
		c.params[name] = string(b)
	}
	if c.failAll || c.fail[name] {
		return errors.E(errors.Op(name), errors.Protocol, "rejected")
	}
	resp, ok := c.responses[name]
	if !ok {
		return errors.E(errors.Op(name), errors.Protocol, "method not found")
	}
	if res == nil {
		return nil
	}
	return json.Unmarshal([]byte(resp), res)
}

func (c *caller) Call(ctx context.Context, method string, res, params any) error {
	return c.respond(method, res, params)
}

func (c *caller) Request(ctx context.Context, path string, res, req any) error {
	return c.respond(path, res, req)
}

func daemonResponses() map[string]string {
	return map[string]string{
		"/getinfo":                              `{"version":"0.8.4","height":100,"difficulty":250000,"hashrate":8333,"synced":true,"status":"OK"}`,
		"/getheight":                            `{"height":100,"network_height":100,"status":"OK"}`,
		"/feeinfo":                              `{"address":"","amount":0,"status":"OK"}`,
		"/getpeers":                             `{"peers":["10.0.0.1:11897","10.0.0.2:11897"],"status":"OK"}`,
		"getcurrencyid":                         `{"currency_id_blob":"7fb97df81221dd1366051b2d0bc7f49c66c22ac4431d879c895b06d66ef66f4c"}`,
		"getblockheaderbyheight":                `{"block_header":{"hash":"hash2","height":2},"status":"OK"}`,
		"getblockheaderbyhash":                  `{"block_header":{"hash":"` + KnownBlockHash + `","height":5},"status":"OK"}`,
		"getlastblockheader":                    `{"block_header":{"hash":"tiphash","height":99},"status":"OK"}`,
		"getblocktemplate":                      `{"difficulty":250000,"height":100,"status":"OK"}`,
		"on_getblockhash":                       `"hash2"`,
		"getblockcount":                         `{"count":100,"status":"OK"}`,
		"f_on_transactions_pool_json":           `{"transactions":[],"status":"OK"}`,
		"f_transaction_json":                    `{"txDetails":{"hash":"` + KnownTxHash + `"},"status":"OK"}`,
		"f_block_json":                          `{"block":{"hash":"` + KnownBlockHash + `","prev_hash":"prevhash"},"status":"OK"}`,
		"f_blocks_list_json":                    `{"blocks":[{"height":30},{"height":29},{"height":28}],"status":"OK"}`,
		"/queryblockslite":                      `{"items":[{}],"status":"OK"}`,
		"/get_o_indexes":                        `{"o_indexes":[1,2],"status":"OK"}`,
		"/getrandom_outs":                       `{"outs":[{},{}],"status":"OK"}`,
		"/get_pool_changes":                     `{"isTailBlockActual":false,"status":"OK"}`,
		"/get_pool_changes_lite":                `{"isTailBlockActual":false,"status":"OK"}`,
		"/get_block_details_by_height":          `{"block":{"hash":"hash2"},"status":"OK"}`,
		"/get_blocks_details_by_heights":        `{"blocks":[{},{},{},{}],"status":"OK"}`,
		"/get_blocks_details_by_hashes":         `{"blocks":[{},{}],"status":"OK"}`,
		"/get_blocks_hashes_by_timestamps":      `{"blockHashes":["hash2"],"status":"OK"}`,
		"/get_transaction_details_by_hashes":    `{"transactions":[{}],"status":"OK"}`,
		"/get_transaction_hashes_by_payment_id": `{"transactionHashes":[],"status":"OK"}`,
	}
}

func serviceResponses() map[string]string {
	seed := strings.TrimSpace(strings.Repeat("turtle ", 25))
	return map[string]string{
		"getAddresses":                    `{"addresses":["TRTLprimary","TRTLsecond"]}`,
		"getStatus":                       `{"blockCount":100,"knownBlockCount":100,"lastBlockHash":"tiphash","peerCount":8}`,
		"getFeeInfo":                      `{"address":"","amount":0}`,
		"getViewKey":                      `{"viewSecretKey":"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"}`,
		"getSpendKeys":                    `{"spendPublicKey":"spendpub","spendSecretKey":"spendsec"}`,
		"getMnemonicSeed":                 `{"mnemonicSeed":"` + seed + `"}`,
		"createAddress":                   `{"address":"addrX"}`,
		"deleteAddress":                   `{}`,
		"getBalance":                      `{"availableBalance":1000,"lockedAmount":0}`,
		"getBlockHashes":                  `{"blockHashes":["a","b"]}`,
		"getTransactionHashes":            `{"items":[]}`,
		"getTransactions":                 `{"items":[]}`,
		"getUnconfirmedTransactionHashes": `{"transactionHashes":[]}`,
		"createIntegratedAddress":         `{"integratedAddress":"TRTLintegratedaddress0123456789"}`,
		"save":                            `{}`,
	}
}

func newDaemon(c *caller) DaemonAPI {
	return turtlecoind.NewClient(c)
}

func newService(c *caller) ServiceAPI {
	return walletd.NewClient(c)
}
