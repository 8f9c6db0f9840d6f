// Copyright (c) 2020 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package turtlecoind

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlecoin/turtletest/errors"
)

type caller struct {
	response []byte
	name     string
	params   []byte
}

func (c *caller) record(name string, params any, res any) error {
	c.name = name
	c.params = nil
	if params != nil {
		var err error
		c.params, err = json.Marshal(params)
		if err != nil {
			return err
		}
	}
	return json.Unmarshal(c.response, res)
}

func (c *caller) Call(ctx context.Context, method string, res, params any) error {
	return c.record(method, params, res)
}

func (c *caller) Request(ctx context.Context, path string, res, req any) error {
	return c.record(path, req, res)
}

func TestGetInfo(t *testing.T) {
	caller := &caller{response: []byte(`{
		"difficulty": 250000,
		"hashrate": 8333,
		"height": 100,
		"network_height": 100,
		"status": "OK",
		"synced": true,
		"version": "0.8.4"
	}`)}
	info, err := NewClient(caller).GetInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/getinfo", caller.name)
	require.Nil(t, caller.params, "getinfo must be a GET")
	require.Equal(t, uint64(100), info.Height)
	require.Equal(t, uint64(250000), info.Difficulty)
	require.True(t, info.Synced)
	require.Equal(t, "0.8.4", info.Version)
}

func TestBlockHeaderUnwrapped(t *testing.T) {
	caller := &caller{response: []byte(`{
		"block_header": {"hash": "abcd", "height": 2, "prev_hash": "ef01"},
		"status": "OK"
	}`)}
	client := NewClient(caller)
	ctx := context.Background()

	hdr, err := client.GetBlockHeaderByHeight(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "getblockheaderbyheight", caller.name)
	require.JSONEq(t, `{"height":2}`, string(caller.params))
	require.Equal(t, "abcd", hdr.Hash)

	hdr, err = client.GetLastBlockHeader(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(caller.params))
	require.Equal(t, uint64(2), hdr.Height)
}

func TestRequestBodies(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		call   func(*Client) error
		method string
		params string
	}{{
		name: "getblocktemplate",
		call: func(c *Client) error {
			_, err := c.GetBlockTemplate(ctx, "TRTLaddr", 200)
			return err
		},
		method: "getblocktemplate",
		params: `{"wallet_address":"TRTLaddr","reserve_size":200}`,
	}, {
		name: "on_getblockhash",
		call: func(c *Client) error {
			_, err := c.GetBlockHash(ctx, 2)
			return err
		},
		method: "on_getblockhash",
		params: `[2]`,
	}, {
		name: "getrandom_outs",
		call: func(c *Client) error {
			_, err := c.GetRandomOutputs(ctx, []uint64{100, 1000}, 3)
			return err
		},
		method: "/getrandom_outs",
		params: `{"amounts":[100,1000],"outs_count":3}`,
	}, {
		name: "get_pool_changes with no known transactions",
		call: func(c *Client) error {
			_, err := c.GetPoolChanges(ctx, "tail", nil)
			return err
		},
		method: "/get_pool_changes",
		params: `{"tailBlockId":"tail","knownTxsIds":[]}`,
	}, {
		name: "get_blocks_hashes_by_timestamps",
		call: func(c *Client) error {
			_, err := c.GetBlocksHashesByTimestamps(ctx, 1531348100, 240)
			return err
		},
		method: "/get_blocks_hashes_by_timestamps",
		params: `{"timestampBegin":1531348100,"secondsCount":240}`,
	}, {
		name: "get_transaction_hashes_by_payment_id",
		call: func(c *Client) error {
			_, err := c.GetTransactionHashesByPaymentID(ctx, "pid")
			return err
		},
		method: "/get_transaction_hashes_by_payment_id",
		params: `{"paymentId":"pid"}`,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			caller := &caller{response: []byte(`{}`)}
			if test.method == "on_getblockhash" {
				caller.response = []byte(`"abcd"`)
			}
			require.NoError(t, test.call(NewClient(caller)))
			require.Equal(t, test.method, caller.name)
			require.JSONEq(t, test.params, string(caller.params))
		})
	}
}

func TestNegativeOutputCount(t *testing.T) {
	_, err := NewClient(&caller{}).GetRandomOutputs(context.Background(), nil, -1)
	require.True(t, errors.Is(err, errors.Invalid))
}

func TestUndecodedMembers(t *testing.T) {
	caller := &caller{response: []byte(`{
		"difficulty": 250000,
		"height": 100,
		"start_time": 1.53e9,
		"hashrate": "fast",
		"synced": true,
		"version": "0.8.4"
	}`)}
	client := NewClient(caller)
	info, err := client.GetInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "0.8.4", info.Version)
	require.Equal(t, uint64(100), info.Height)

	caller.response = []byte(`{"peers":[{"host":"10.0.0.1"},"10.0.0.2:11897"],"gray_peers":{"count":3}}`)
	peers, err := client.GetPeers(context.Background())
	require.NoError(t, err)
	require.Len(t, peers.Peers, 2)
}
