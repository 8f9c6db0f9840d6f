// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/turtlecoin/turtletest/internal/loggers"
	"github.com/turtlecoin/turtletest/internal/outcome"
	"github.com/turtlecoin/turtletest/internal/reference"
	"github.com/turtlecoin/turtletest/internal/session"
	"github.com/turtlecoin/turtletest/internal/suite"
	"github.com/turtlecoin/turtletest/rpc/jsonrpc"
)

var log = loggers.MainLog

// Initialize package-global logger variables.
func init() {
	session.UseLogger(loggers.SessionLog)
	suite.UseLogger(loggers.SuiteLog)
	outcome.UseLogger(loggers.OutcomeLog)
	reference.UseLogger(loggers.ReferenceLog)
	jsonrpc.UseLogger(loggers.JsonrpcLog)
}
