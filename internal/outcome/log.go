// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package outcome

import "github.com/decred/slog"

// log is a logger that is initialized with no output filters.  This
// means the package will not perform any logging by default until the caller
// requests it.
var log = slog.Disabled

// UseLogger sets the package-wide logger.  Any calls to this function must be
// made before any outcomes are produced (it is not concurrent safe).
func UseLogger(logger slog.Logger) {
	log = logger
}
