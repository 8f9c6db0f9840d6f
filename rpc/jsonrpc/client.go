// Copyright (c) 2019 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package jsonrpc implements the HTTP transport shared by the TurtleCoind and
// walletd clients.  Requests are either JSON-RPC 2.0 calls posted to the
// /json_rpc endpoint, or plain JSON documents exchanged with a named HTTP
// endpoint such as /getinfo.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/turtlecoin/turtletest/errors"
)

// maxResponseSize bounds how much of a response body is read.  Block detail
// batches are the largest responses the harness requests.
const maxResponseSize = 32 << 20

// Endpoint is the path of the JSON-RPC 2.0 endpoint on both TurtleCoind and
// walletd.
const Endpoint = "/json_rpc"

// RPCError is the error object of a JSON-RPC 2.0 response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Client performs JSON-RPC calls and plain JSON requests against a single
// server.  It is safe for concurrent use, although the harness only issues one
// request at a time.
type Client struct {
	http.Client
	url      string
	password string
	id       atomic.Uint64
}

// Option modifies a Client created by New.
type Option func(*Client)

// WithPassword sets the password member included in every JSON-RPC request
// body.  walletd rejects requests without it unless it runs with legacy
// security.
func WithPassword(password string) Option {
	return func(c *Client) {
		c.password = password
	}
}

// WithTimeout bounds the duration of every HTTP request made by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.Timeout = d
	}
}

// New creates a client for the server at baseURL, e.g.
// "http://127.0.0.1:11898".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{url: strings.TrimSuffix(baseURL, "/")}
	for _, o := range opts {
		o(c)
	}
	return c
}

type request struct {
	JSONRPC  string `json:"jsonrpc"`
	ID       uint64 `json:"id"`
	Method   string `json:"method"`
	Params   any    `json:"params,omitempty"`
	Password string `json:"password,omitempty"`
}

type response struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Call performs the JSON-RPC method with params and waits for the response.
// Params may be nil, a struct or map (named parameters), or a slice
// (positional parameters).  Res must be a pointer to unmarshal the result
// into, or nil if no result is needed.  A result of null or an absent result
// leaves res unmodified.
func (c *Client) Call(ctx context.Context, method string, res, params any) error {
	op := errors.Opf("jsonrpc.Call(%s)", method)

	req := &request{
		JSONRPC:  "2.0",
		ID:       c.id.Add(1),
		Method:   method,
		Params:   params,
		Password: c.password,
	}
	var resp response
	if err := c.do(ctx, http.MethodPost, Endpoint, req, &resp); err != nil {
		return errors.E(op, err)
	}
	if resp.Error != nil {
		return errors.E(op, errors.Protocol, resp.Error)
	}
	if res == nil || len(resp.Result) == 0 || bytes.Equal(resp.Result, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(resp.Result, res); err != nil {
		return errors.E(op, errors.Encoding, err)
	}
	log.Tracef("%s result: %v", method, newLogClosure(func() string {
		return spew.Sdump(res)
	}))
	return nil
}

// Request exchanges a plain JSON document with the endpoint at path.  A nil
// req performs a GET; otherwise req is encoded and POSTed.  Res must be a
// pointer to unmarshal the response body into, or nil.
func (c *Client) Request(ctx context.Context, path string, res, req any) error {
	op := errors.Opf("jsonrpc.Request(%s)", path)

	method := http.MethodGet
	if req != nil {
		method = http.MethodPost
	}
	if err := c.do(ctx, method, path, req, res); err != nil {
		return errors.E(op, err)
	}
	log.Tracef("%s response: %v", path, newLogClosure(func() string {
		return spew.Sdump(res)
	}))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, req, resp any) error {
	var reqBody io.Reader
	if req != nil {
		body, err := json.Marshal(req)
		if err != nil {
			return errors.E(errors.Encoding, fmt.Errorf("marshal request: %w", err))
		}
		reqBody = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.url+path, reqBody)
	if err != nil {
		return errors.E(errors.Invalid, fmt.Errorf("new request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("%s %s", method, httpReq.URL.String())
	reply, err := c.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil || isTimeout(err) {
			return errors.E(errors.Timeout, fmt.Errorf("%s %s: %w", method, httpReq.URL.String(), err))
		}
		return errors.E(errors.IO, fmt.Errorf("%s %s: %w", method, httpReq.URL.String(), err))
	}
	defer reply.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(reply.Body, maxResponseSize))
	if err != nil {
		return errors.E(errors.IO, fmt.Errorf("read response body: %w", err))
	}
	if reply.StatusCode != http.StatusOK {
		return errors.E(errors.Protocol, fmt.Errorf("%s %s: http %v %s", method,
			httpReq.URL.String(), reply.StatusCode, http.StatusText(reply.StatusCode)))
	}
	if resp == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, resp); err != nil {
		return errors.E(errors.Encoding, fmt.Errorf("unmarshal response body: %w", err))
	}
	return nil
}

// isTimeout returns whether err reports a network timeout.
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
