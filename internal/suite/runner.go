// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package suite runs the ordered RPC test suites against a TurtleCoind node
// and a walletd service.
package suite

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/turtlecoin/turtletest/errors"
)

// Suite is a fixed ordered list of steps exercising one service.
type Suite struct {
	Name      string
	Fallbacks map[string]string
	Steps     []Step
}

func (s *Suite) validate() error {
	const op errors.Op = "suite.validate"
	seen := make(map[string]struct{}, len(s.Steps))
	for _, step := range s.Steps {
		if _, ok := seen[step.Label]; ok {
			return errors.E(op, errors.Bug, errors.Errorf("%s suite: duplicate label %q", s.Name, step.Label))
		}
		seen[step.Label] = struct{}{}
	}
	return nil
}

// Report summarizes a completed run.
type Report struct {
	Suite   string
	Passed  int
	Failed  int
	Skipped int
}

func (r Report) String() string {
	return fmt.Sprintf("%s suite complete: %d passing, %d failing, %d skipped",
		r.Suite, r.Passed, r.Failed, r.Skipped)
}

// Runner executes suites one step at a time and writes one line per step to
// Out.
type Runner struct {
	Out io.Writer

	// Timeout bounds each call.  Zero disables the per-call deadline.
	Timeout time.Duration
}

// Run executes every step of s in order with a fresh run state.  Failed calls
// never stop the run; only cancellation of ctx does, in which case the partial
// report and the context error are returned.
func (r *Runner) Run(ctx context.Context, s *Suite) (Report, error) {
	report := Report{Suite: s.Name}
	if err := s.validate(); err != nil {
		return report, err
	}

	log.Debugf("Running %s suite (%d steps)", s.Name, len(s.Steps))
	st := NewState(s.Fallbacks)
	for _, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			log.Infof("%s suite interrupted before %s", s.Name, step.Label)
			return report, err
		}

		if step.IsSkipped() {
			fmt.Fprintf(r.Out, "%-38s%s\n", step.Label, SkippedText)
			report.Skipped++
			continue
		}

		res := r.exec(ctx, st, step)
		fmt.Fprintf(r.Out, "%-38spassing: %t     %s\n", step.Label, res.pass, res.display)
		for _, d := range res.derived {
			fmt.Fprintf(r.Out, "  %-36spassing: %s\n", d.label, d.value)
		}
		if res.pass {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	fmt.Fprintf(r.Out, "\n%v\n", report)
	log.Infof("%v", report)
	return report, nil
}

func (r *Runner) exec(ctx context.Context, st *State, step Step) stepResult {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	start := time.Now()
	res := step.exec(ctx, st)
	log.Debugf("%s: pass=%t in %v", step.Label, res.pass, time.Since(start).Round(time.Millisecond))
	return res
}
