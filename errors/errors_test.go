// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package errors

import (
	"context"
	"fmt"
	"testing"
)

func depth(err error) int {
	if err == nil {
		return 0
	}
	e, ok := err.(*Error)
	if !ok {
		return 1
	}
	return 1 + depth(e.Err)
}

func eq(e0, e1 *Error) bool {
	if e0.Op != e1.Op {
		return false
	}
	if e0.Kind != e1.Kind {
		return false
	}
	if e0.Err != e1.Err {
		return false
	}
	return true
}

func TestCollapse(t *testing.T) {
	e0 := E(Op("abc"))
	e0 = E(e0, Protocol)
	if depth(e0) != 1 {
		t.Fatal("e0 was not collapsed")
	}

	e1 := E(Op("abc"), Protocol)
	if !eq(e0.(*Error), e1.(*Error)) {
		t.Fatal("e0 was not collapsed to e1")
	}
}

func TestMatch(t *testing.T) {
	e := E(Errorf("%s", "some error"), Op("operation"), IO)
	if !Match(E("some error"), e) {
		t.Fatal("no match on error strings")
	}
	if Match(E("different error"), e) {
		t.Fatal("match on different error strings")
	}
	if !Match(E(Op("operation")), e) {
		t.Fatal("no match on operation")
	}
	if Match(E(Op("different operation")), e) {
		t.Fatal("match on different operation")
	}
	if !Match(E(IO), e) {
		t.Fatal("no match on kind")
	}
	if Match(E(Invalid), e) {
		t.Fatal("match on different kind")
	}
}

func TestIsKind(t *testing.T) {
	inner := E(Op("jsonrpc.Call"), Timeout, context.DeadlineExceeded)
	outer := E(Op("turtlecoind.GetInfo"), inner)
	if !Is(outer, Timeout) {
		t.Fatal("nested kind not matched")
	}
	if Is(outer, Protocol) {
		t.Fatal("matched on different kind")
	}
	if !Is(outer, context.DeadlineExceeded) {
		t.Fatal("wrapped standard error not matched")
	}
	if Is(fmt.Errorf("plain"), Timeout) {
		t.Fatal("plain error matched a kind")
	}
}

func TestErrorString(t *testing.T) {
	Separator = ": "
	defer func() { Separator = ":\n\t" }()

	err := E(Op("walletd.GetStatus"), E(Op("jsonrpc.Call"), Protocol, "wrong password"))
	want := "walletd.GetStatus: protocol violation: jsonrpc.Call: wrong password"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
	if E(Other).Error() != Other.String() {
		t.Fatal("empty error did not format as unclassified")
	}
}
