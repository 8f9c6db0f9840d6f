// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walletd provides typed access to the JSON-RPC interface of the
// turtle-service (walletd) wallet daemon.
package walletd

import (
	"context"
)

// Caller provides a client interface to perform JSON-RPC remote procedure calls.
type Caller interface {
	// Call performs the remote procedure call defined by method and
	// waits for a response.  Params holds the named parameters of the
	// call.  Res must be a pointer to a struct, slice, or map type to
	// unmarshal a result (if any), or nil if no result is needed.
	Call(ctx context.Context, method string, res, params any) error
}

// Client provides convenience methods for type-safe walletd JSON-RPC usage.
type Client struct {
	Caller
}

// NewClient creates a new RPC client instance from a caller.  The caller is
// responsible for including the RPC password in each request.
func NewClient(caller Caller) *Client {
	return &Client{Caller: caller}
}
