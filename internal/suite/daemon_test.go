// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/turtlecoin/turtletest/internal/reference"
)

const daemonSteps = 26

func runDaemon(t *testing.T, c *caller, opts DaemonOptions) (Report, []string) {
	t.Helper()
	var out bytes.Buffer
	r := &Runner{Out: &out}
	report, err := r.Run(context.Background(), Daemon(newDaemon(c), opts))
	require.NoError(t, err)
	return report, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestDaemonAllFail(t *testing.T) {
	c := newCaller(daemonResponses())
	c.failAll = true
	report, lines := runDaemon(t, c, DaemonOptions{Mixin: 3})

	require.Equal(t, Report{Suite: "daemon", Failed: daemonSteps}, report)
	// 26 steps, 2 derived checks, a blank line and the summary.
	require.Len(t, lines, daemonSteps+2+2)
	require.Len(t, c.calls, daemonSteps)

	steps := 0
	for _, line := range lines[:len(lines)-2] {
		if strings.HasPrefix(line, "  ") {
			require.True(t, strings.HasSuffix(line, "passing: skipped"), line)
			continue
		}
		steps++
		label := strings.Fields(line)[0]
		want := "passing: false     " + Unknown
		if strings.HasPrefix(label, "get_pool_changes") {
			want = "passing: false     " + UnknownOkay
		}
		require.True(t, strings.HasSuffix(line, want), line)
	}
	require.Equal(t, daemonSteps, steps)
	require.Equal(t, "", lines[len(lines)-2])
	require.Equal(t, "daemon suite complete: 0 passing, 26 failing, 0 skipped", lines[len(lines)-1])
}

func TestDaemonAllPass(t *testing.T) {
	c := newCaller(daemonResponses())
	report, lines := runDaemon(t, c, DaemonOptions{Mixin: 3})

	require.Equal(t, Report{Suite: "daemon", Passed: daemonSteps}, report)
	require.Equal(t, "getinfo                               passing: true     0.8.4", lines[0])
	require.Contains(t, lines, "getpeers                              passing: true     2")
	require.Contains(t, lines, "f_on_transactions_pool_json           passing: true     0")
	require.Contains(t, lines, "getlastblockheader                    passing: true     tiphash")
	require.Contains(t, lines, "get_pool_changes                      passing: true     OK")
	require.JSONEq(t, `{"amounts":[100,1000],"outs_count":3}`, c.params["/getrandom_outs"])
	require.JSONEq(t, `{"wallet_address":"`+DonationAddress+`","reserve_size":200}`, c.params["getblocktemplate"])
}

func TestLastBlockHashThreading(t *testing.T) {
	c := newCaller(daemonResponses())
	runDaemon(t, c, DaemonOptions{})
	require.JSONEq(t, `{"blockHashes":["`+KnownBlockHash+`","tiphash"]}`,
		c.params["/get_blocks_details_by_hashes"])

	c = newCaller(daemonResponses())
	c.fail["getlastblockheader"] = true
	_, lines := runDaemon(t, c, DaemonOptions{})
	require.JSONEq(t, `{"blockHashes":["`+KnownBlockHash+`","`+KnownBlockHash+`"]}`,
		c.params["/get_blocks_details_by_hashes"])
	require.Contains(t, lines, "get_blocks_details_by_hashes          passing: true     2")
}

func TestGetPeersRejected(t *testing.T) {
	c := newCaller(daemonResponses())
	c.fail["/getpeers"] = true
	report, lines := runDaemon(t, c, DaemonOptions{})

	i := -1
	for j, line := range lines {
		if strings.HasPrefix(line, "getpeers ") {
			i = j
		}
	}
	require.NotEqual(t, -1, i)
	require.Equal(t, "getpeers                              passing: false     unknown", lines[i])
	require.True(t, strings.HasPrefix(lines[i+1], "getcurrencyid "))
	require.Contains(t, lines[i+1], "passing: true")
	require.Equal(t, 1, report.Failed)
	require.Equal(t, daemonSteps-1, report.Passed)
}

func TestMissingFieldShowsSentinel(t *testing.T) {
	responses := daemonResponses()
	responses["/getinfo"] = `{"status":"OK"}`
	responses["/getpeers"] = `{"status":"OK"}`
	_, lines := runDaemon(t, newCaller(responses), DaemonOptions{})

	require.Equal(t, "getinfo                               passing: true     unknown", lines[0])
	require.Contains(t, lines, "getpeers                              passing: true     unknown")
}

func TestDerivedChecks(t *testing.T) {
	synced := &reference.Snapshot{Height: 100, Difficulty: 250000, Hashrate: 8333, Synced: true}
	tests := []struct {
		name       string
		info       string
		fail       bool
		ref        *reference.Snapshot
		height     string
		difficulty string
	}{{
		name:       "both synced and equal",
		ref:        synced,
		height:     "true",
		difficulty: "true",
	}, {
		name:       "difficulty differs",
		ref:        &reference.Snapshot{Height: 100, Difficulty: 1, Synced: true},
		height:     "true",
		difficulty: "false",
	}, {
		name:       "no reference",
		height:     "skipped",
		difficulty: "skipped",
	}, {
		name:       "reference not synced",
		ref:        &reference.Snapshot{Height: 100, Difficulty: 250000},
		height:     "skipped",
		difficulty: "skipped",
	}, {
		name:       "local not synced",
		info:       `{"version":"0.8.4","height":50,"difficulty":250000,"synced":false}`,
		ref:        synced,
		height:     "skipped",
		difficulty: "skipped",
	}, {
		name:       "local height missing",
		info:       `{"version":"0.8.4","difficulty":250000,"synced":true}`,
		ref:        synced,
		height:     "skipped",
		difficulty: "true",
	}, {
		name:       "getinfo failed",
		fail:       true,
		ref:        synced,
		height:     "skipped",
		difficulty: "skipped",
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			responses := daemonResponses()
			if test.info != "" {
				responses["/getinfo"] = test.info
			}
			c := newCaller(responses)
			c.fail["/getinfo"] = test.fail
			_, lines := runDaemon(t, c, DaemonOptions{Reference: test.ref})

			require.Equal(t, "  height matches reference            passing: "+test.height, lines[1])
			require.Equal(t, "  difficulty matches reference        passing: "+test.difficulty, lines[2])
		})
	}
}

func TestDaemonIdempotent(t *testing.T) {
	ref := &reference.Snapshot{Height: 100, Difficulty: 250000, Synced: true}
	run := func() []byte {
		c := newCaller(daemonResponses())
		c.fail["/get_pool_changes"] = true
		var out bytes.Buffer
		_, err := (&Runner{Out: &out}).Run(context.Background(),
			Daemon(newDaemon(c), DaemonOptions{Mixin: 3, Reference: ref}))
		require.NoError(t, err)
		return out.Bytes()
	}
	require.Equal(t, run(), run())
}

func TestUndisplayedMembersNotChecked(t *testing.T) {
	responses := daemonResponses()
	responses["/getinfo"] = `{"version":"0.8.4","height":100,"difficulty":250000,"synced":true,` +
		`"start_time":1.53e9,"hashrate":"fast","testnet":"no","status":"OK"}`
	responses["/getpeers"] = `{"peers":[{"host":"10.0.0.1"},"10.0.0.2:11897"],` +
		`"gray_peers":{"count":3},"status":"OK"}`
	responses["getblockheaderbyheight"] = `{"block_header":{"hash":"hash2","height":2,"reward":-1,"orphan_status":0},"status":1}`
	report, lines := runDaemon(t, newCaller(responses), DaemonOptions{})

	require.Equal(t, daemonSteps, report.Passed)
	require.Equal(t, "getinfo                               passing: true     0.8.4", lines[0])
	require.Contains(t, lines, "getpeers                              passing: true     2")
	require.Contains(t, lines, "getblockheaderbyheight                passing: true     hash2")
}
