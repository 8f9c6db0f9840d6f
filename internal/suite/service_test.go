// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runService(t *testing.T, c *caller) (Report, string) {
	t.Helper()
	var out bytes.Buffer
	report, err := (&Runner{Out: &out}).Run(context.Background(), Service(newService(c)))
	require.NoError(t, err)
	return report, out.String()
}

func TestServiceAllPass(t *testing.T) {
	c := newCaller(serviceResponses())
	report, out := runService(t, c)

	require.Equal(t, Report{Suite: "service", Passed: 15, Skipped: 8}, report)
	require.Contains(t, out, "getAddresses                          passing: true     TRTLprimary\n")
	require.Contains(t, out, "getViewKey                            passing: true     01234567...89abcdef\n")
	require.Contains(t, out, "getMnemonicSeed                       passing: true     25 words\n")
	require.Contains(t, out, "getFeeInfo                            passing: true     0\n")
	require.Contains(t, out, "save                                  passing: true     saved\n")
	require.NotContains(t, out, "turtle turtle", "mnemonic seed must not be printed")
	require.True(t, strings.HasSuffix(out, "\nservice suite complete: 15 passing, 0 failing, 8 skipped\n"))

	for _, name := range []string{"getSpendKeys", "getMnemonicSeed", "getBalance"} {
		require.JSONEq(t, `{"address":"TRTLprimary"}`, c.params[name], name)
	}
	require.JSONEq(t, `{"address":"TRTLprimary","paymentId":"`+KnownPaymentID+`"}`,
		c.params["createIntegratedAddress"])
}

func TestTemporaryAddressThreading(t *testing.T) {
	c := newCaller(serviceResponses())
	_, out := runService(t, c)
	require.JSONEq(t, `{"address":"addrX"}`, c.params["deleteAddress"])
	require.Contains(t, out, "deleteAddress                         passing: true     addrX\n")

	// A failed createAddress must never delete the primary address.
	c = newCaller(serviceResponses())
	c.fail["createAddress"] = true
	runService(t, c)
	require.JSONEq(t, `{"address":"`+DonationAddress+`"}`, c.params["deleteAddress"])
}

func TestPrimaryAddressFallback(t *testing.T) {
	responses := serviceResponses()
	responses["getAddresses"] = `{"addresses":[]}`
	c := newCaller(responses)
	_, out := runService(t, c)

	require.Contains(t, out, "getAddresses                          passing: true     unknown\n")
	require.JSONEq(t, `{"address":"`+DonationAddress+`"}`, c.params["getBalance"])
}

func TestMutatingCallsNeverInvoked(t *testing.T) {
	c := newCaller(serviceResponses())
	_, out := runService(t, c)

	for _, name := range mutatingServiceCalls {
		require.NotContains(t, c.calls, name)
		require.Contains(t, out, fmt.Sprintf("%-38sskipped\n", name))
	}
	require.Contains(t, out, "reset                                 skipped\n")
	require.Len(t, c.calls, 15)
}

func TestServiceAllFail(t *testing.T) {
	c := newCaller(serviceResponses())
	c.failAll = true
	report, out := runService(t, c)

	require.Equal(t, Report{Suite: "service", Failed: 15, Skipped: 8}, report)
	require.Equal(t, 15, strings.Count(out, "passing: false     unknown\n"))
}

func TestServiceUndisplayedMembersNotChecked(t *testing.T) {
	responses := serviceResponses()
	responses["getStatus"] = `{"blockCount":100,"peerCount":"eight","lastBlockHash":7}`
	responses["getBalance"] = `{"availableBalance":1000,"lockedAmount":-5}`
	responses["getTransactions"] = `{"items":[{"blockHash":"aa","transactions":[{"amount":-10,"state":"confirmed"}]}]}`
	responses["getBlockHashes"] = `{"blockHashes":["a",2,null]}`
	report, out := runService(t, newCaller(responses))

	require.Equal(t, Report{Suite: "service", Passed: 15, Skipped: 8}, report)
	require.Contains(t, out, "getStatus                             passing: true     100\n")
	require.Contains(t, out, "getTransactions                       passing: true     1\n")
	require.Contains(t, out, "getBlockHashes                        passing: true     3\n")
}
