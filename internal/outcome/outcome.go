// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package outcome converts fallible RPC operations into results that never
// carry an error.
package outcome

import (
	"context"
)

// Outcome is the result of one fallible operation.  When Pass is false,
// Payload is the zero value of T.
type Outcome[T any] struct {
	Pass    bool
	Payload T
}

// Passed creates a passing Outcome carrying payload.
func Passed[T any](payload T) Outcome[T] {
	return Outcome[T]{Pass: true, Payload: payload}
}

// Failed creates a failing Outcome with an empty payload.
func Failed[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Wrap runs op and converts its result into an Outcome.  Any error returned
// by op, including context cancellation and deadline errors, produces a
// failing Outcome; the error is logged and goes no further.  A panic in op is
// not recovered.
func Wrap[T any](ctx context.Context, op func(context.Context) (T, error)) Outcome[T] {
	res, err := op(ctx)
	if err != nil {
		log.Debugf("Operation failed: %v", err)
		return Failed[T]()
	}
	return Passed(res)
}
