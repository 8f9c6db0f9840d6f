// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import "strconv"

// nonzero formats n, treating zero as a missing field.
func nonzero(n uint64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatUint(n, 10)
}

// amount formats n.  Zero is a legitimate amount.
func amount(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// count formats the length of s.  A nil slice means the field was missing
// from the result; an empty array counts as zero.
func count[E any](s []E) string {
	if s == nil {
		return ""
	}
	return strconv.Itoa(len(s))
}

// abbreviate shortens long keys and addresses to their first and last eight
// characters.
func abbreviate(s string) string {
	const keep = 8
	if len(s) <= 2*keep+3 {
		return s
	}
	return s[:keep] + "..." + s[len(s)-keep:]
}
