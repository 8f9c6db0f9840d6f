// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/turtlecoin/turtletest/errors"
	"github.com/turtlecoin/turtletest/internal/loggers"
	"github.com/turtlecoin/turtletest/internal/session"
	"github.com/turtlecoin/turtletest/internal/ui"
	"github.com/turtlecoin/turtletest/version"
)

// shutdownGrace is how long a session blocked reading the terminal is given
// to notice a shutdown before the process exits anyway.
const shutdownGrace = 2 * time.Second

func init() {
	// Format nested errors without newlines (better for logs).
	errors.Separator = ": "
}

func main() {
	// Create a context that is cancelled when a shutdown request is received
	// through an interrupt signal.
	ctx := withShutdownCancel(context.Background())
	go shutdownListener()

	// Run the shell until the user exits or shutdown is requested.
	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		os.Exit(1)
	}
}

// run is the main startup and teardown logic performed by the main package.  It
// is responsible for parsing the config, printing the banner, and running the
// interactive session until it ends or the context is cancelled.
func run(ctx context.Context) error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer loggers.CloseLogRotator()

	// Show version at startup.
	log.Infof("Version %s (Go version %s %s/%s)", version.String(), runtime.Version(),
		runtime.GOOS, runtime.GOARCH)

	ui.Configure(os.Stdout, !cfg.NoColor)
	if !cfg.NoBanner {
		fmt.Print(ui.Banner(version.String()))
	}

	// The session blocks reading standard input, which cannot be
	// interrupted.  Run it in the background so a shutdown signal can end
	// the process while a command is being read.
	sess := session.New(cfg.sessionConfig(), os.Stdin, os.Stdout)
	errc := make(chan error, 1)
	go func() {
		errc <- sess.Run(ctx)
	}()

	select {
	case err = <-errc:
	case <-ctx.Done():
		select {
		case err = <-errc:
		case <-time.After(shutdownGrace):
			fmt.Println()
			err = ctx.Err()
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Session failed: %v", err)
		return err
	}
	log.Info("Shutdown complete")
	return err
}
