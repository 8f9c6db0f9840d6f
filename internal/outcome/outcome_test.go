// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package outcome

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/turtlecoin/turtletest/errors"
)

type header struct {
	Hash   string
	Height uint64
}

func TestWrapSuccess(t *testing.T) {
	o := Wrap(context.Background(), func(context.Context) (header, error) {
		return header{Hash: "abcd", Height: 2}, nil
	})
	require.True(t, o.Pass)
	require.Equal(t, header{Hash: "abcd", Height: 2}, o.Payload)
}

func TestWrapFailureEmptiesPayload(t *testing.T) {
	o := Wrap(context.Background(), func(context.Context) (header, error) {
		// Partially decoded results are discarded.
		return header{Hash: "partial"}, errors.E(errors.Op("test"), errors.Protocol, "rejected")
	})
	require.False(t, o.Pass)
	require.Equal(t, header{}, o.Payload)
}

func TestWrapDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	o := Wrap(ctx, func(ctx context.Context) ([]string, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.False(t, o.Pass)
	require.Nil(t, o.Payload)
}

func TestWrapEmptySuccess(t *testing.T) {
	o := Wrap(context.Background(), func(context.Context) (struct{}, error) {
		return struct{}{}, nil
	})
	require.Equal(t, Passed(struct{}{}), o)
	require.NotEqual(t, Failed[struct{}](), o)
}
