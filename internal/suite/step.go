// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"context"
	"strconv"

	"github.com/turtlecoin/turtletest/internal/outcome"
)

// Display values printed in place of a result.
const (
	Unknown     = "unknown"
	UnknownOkay = "unknown - okay if failed"
	SkippedText = "skipped"
)

// Step is one entry of a suite.  Steps are created with Call or Skipped.
type Step struct {
	Label string
	exec  func(ctx context.Context, st *State) stepResult
}

// Skipped creates an entry for an operation that is listed in the output but
// never invoked.
func Skipped(label string) Step {
	return Step{Label: label}
}

// IsSkipped returns whether the step is never invoked.
func (s Step) IsSkipped() bool {
	return s.exec == nil
}

type derivedResult struct {
	label string
	value string
}

type stepResult struct {
	pass    bool
	display string
	derived []derivedResult
}

// Derived is a secondary check evaluated against the payload of a passing
// call.
type Derived[T any] struct {
	Label string

	// Check returns the comparison result, or ok=false when the check's
	// preconditions are not met and it must be reported as skipped.
	Check func(payload T) (match, ok bool)
}

// Call describes a step exercising one RPC with result type T.
type Call[T any] struct {
	Label string

	// Do performs the RPC.  Arguments depending on earlier steps are read
	// from the run state.
	Do func(ctx context.Context, st *State) (T, error)

	// Display extracts the short value printed for a passing call.  An
	// empty string means the expected field is missing and the sentinel is
	// printed instead.
	Display func(T) string

	// Produces names the run state key written from a passing call.
	// Value extracts the stored value and defaults to Display.
	Produces string
	Value    func(T) string

	// Sentinel replaces Unknown as the display value of a failed call.
	Sentinel string

	Derived []Derived[T]
}

// Step converts the call into a suite step.
func (c Call[T]) Step() Step {
	sentinel := c.Sentinel
	if sentinel == "" {
		sentinel = Unknown
	}
	value := c.Value
	if value == nil {
		value = c.Display
	}

	exec := func(ctx context.Context, st *State) stepResult {
		o := outcome.Wrap(ctx, func(ctx context.Context) (T, error) {
			return c.Do(ctx, st)
		})

		res := stepResult{pass: o.Pass, display: sentinel}
		if o.Pass {
			if v := c.Display(o.Payload); v != "" {
				res.display = v
			}
			if c.Produces != "" {
				st.Set(c.Produces, value(o.Payload))
			}
		}
		for _, d := range c.Derived {
			v := SkippedText
			if o.Pass {
				if match, ok := d.Check(o.Payload); ok {
					v = strconv.FormatBool(match)
				}
			}
			res.derived = append(res.derived, derivedResult{d.Label, v})
		}
		return res
	}
	return Step{Label: c.Label, exec: exec}
}
