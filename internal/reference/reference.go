// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reference fetches a baseline chain snapshot from a trusted node so
// the daemon under test can be cross-validated against it.
package reference

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/turtlecoin/turtletest/errors"
	"github.com/turtlecoin/turtletest/internal/outcome"
	"github.com/turtlecoin/turtletest/rpc/jsonrpc"
)

//go:embed snapshot.schema.json
var snapshotSchemaJSON string

const schemaURL = "snapshot.schema.json"

var snapshotSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(snapshotSchemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
}

// Snapshot is the chain state reported by the reference node.
type Snapshot struct {
	Height     uint64 `json:"height"`
	Difficulty uint64 `json:"difficulty"`
	Hashrate   uint64 `json:"hashrate"`
	Synced     bool   `json:"synced"`
}

// Client fetches snapshots from a TurtleCoind-compatible getinfo endpoint.
type Client struct {
	// URL of the endpoint.  A URL without a path is completed with
	// /getinfo.
	URL string

	// Timeout bounds the request.  Zero means no timeout.
	Timeout time.Duration
}

// Enabled returns whether a reference source is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.URL != ""
}

// Fetch retrieves one snapshot.  Any failure, including a response missing
// one of the snapshot fields, produces a failing Outcome.
func (c *Client) Fetch(ctx context.Context) outcome.Outcome[Snapshot] {
	return outcome.Wrap(ctx, c.fetch)
}

func (c *Client) fetch(ctx context.Context) (Snapshot, error) {
	const opf = "reference.Fetch(%s)"

	base, path, err := splitURL(c.URL)
	if err != nil {
		return Snapshot{}, errors.E(errors.Opf(opf, c.URL), err)
	}
	op := errors.Opf(opf, base+path)

	var raw json.RawMessage
	rpc := jsonrpc.New(base, jsonrpc.WithTimeout(c.Timeout))
	if err := rpc.Request(ctx, path, &raw, nil); err != nil {
		log.Warnf("Reference node unavailable: %v", err)
		return Snapshot{}, errors.E(op, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Snapshot{}, errors.E(op, errors.Encoding, err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		log.Warnf("Reference node returned an unexpected document: %v", err)
		return Snapshot{}, errors.E(op, errors.Encoding, err)
	}

	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return Snapshot{}, errors.E(op, errors.Encoding, err)
	}
	log.Debugf("Reference snapshot: height %d, difficulty %d, hashrate %d, synced %t",
		s.Height, s.Difficulty, s.Hashrate, s.Synced)
	return s, nil
}

// splitURL splits rawURL into the scheme and host part and the request path.
func splitURL(rawURL string) (base, path string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.E(errors.Invalid, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "", errors.E(errors.Invalid, errors.Errorf("unsupported reference URL %q", rawURL))
	}
	path = u.EscapedPath()
	if path == "" || path == "/" {
		path = "/getinfo"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return u.Scheme + "://" + u.Host, path, nil
}
