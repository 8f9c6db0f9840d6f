// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suite

// Run state keys.
const (
	LastBlockHash  = "lastBlockHash"
	PrimaryAddress = "primaryAddress"
	TempAddress    = "tempAddress"
)

// State carries values produced by earlier steps of a run to the steps that
// depend on them.  Every key read by a step has a fallback literal which is
// returned until a producing step succeeds.
//
// A State belongs to a single run and is not safe for concurrent use.
type State struct {
	values    map[string]string
	fallbacks map[string]string
}

// NewState creates an empty State with the given fallbacks.
func NewState(fallbacks map[string]string) *State {
	return &State{
		values:    make(map[string]string),
		fallbacks: fallbacks,
	}
}

// Get returns the last value stored under key, or the key's fallback.
func (s *State) Get(key string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.fallbacks[key]
}

// Set stores value under key, replacing any previous value.  Empty values are
// ignored so that a result missing the expected field leaves the fallback in
// place.
func (s *State) Set(key, value string) {
	if value == "" {
		return
	}
	s.values[key] = value
}
