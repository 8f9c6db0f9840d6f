// Copyright (c) 2017 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"
)

//go:embed sample-turtletest.conf
var sampleTurtletestConf string

// sampleConfig returns the commented configuration file written to the
// application data directory on first run.
func sampleConfig() string {
	return sampleTurtletestConf
}
