// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	st := NewState(map[string]string{LastBlockHash: KnownBlockHash})
	require.Equal(t, KnownBlockHash, st.Get(LastBlockHash))
	require.Equal(t, "", st.Get(TempAddress))

	// An empty value leaves the fallback in place.
	st.Set(LastBlockHash, "")
	require.Equal(t, KnownBlockHash, st.Get(LastBlockHash))

	st.Set(LastBlockHash, "first")
	st.Set(LastBlockHash, "second")
	require.Equal(t, "second", st.Get(LastBlockHash))

	// A new run starts from the fallbacks again.
	require.Equal(t, KnownBlockHash, NewState(map[string]string{LastBlockHash: KnownBlockHash}).Get(LastBlockHash))
}
