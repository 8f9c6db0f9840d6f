// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package session implements the interactive shell which dispatches user
// commands to the daemon and service test suites.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/turtlecoin/turtletest/errors"
	"github.com/turtlecoin/turtletest/internal/cfgutil"
	"github.com/turtlecoin/turtletest/internal/prompt"
	"github.com/turtlecoin/turtletest/internal/reference"
	"github.com/turtlecoin/turtletest/internal/suite"
	"github.com/turtlecoin/turtletest/internal/ui"
	"github.com/turtlecoin/turtletest/rpc/client/turtlecoind"
	"github.com/turtlecoin/turtletest/rpc/client/walletd"
	"github.com/turtlecoin/turtletest/rpc/jsonrpc"
)

// Prompt is printed before each command is read.
const Prompt = "TurtleCoin> "

const (
	farewell       = "Thanks for using the TurtleCoin Test Suite"
	unknownCommand = `Command not found. Please type "help" for information on available commands`
	noReference    = "none"
)

// Endpoint holds the connection parameters of one service.  Password is only
// used by the wallet service and Mixin only by the daemon.
type Endpoint struct {
	Host     string
	Port     int
	Password string
	Mixin    int
}

// Config holds the defaults offered by the interactive prompts.
type Config struct {
	Daemon  Endpoint
	Service Endpoint

	// Reference is the URL of the reference node's getinfo endpoint, or
	// empty for none.
	Reference string

	// CallTimeout bounds every RPC call.  Zero disables the deadline.
	CallTimeout time.Duration
}

// Controller reads commands and runs the selected suites.  It is not safe for
// concurrent use.
type Controller struct {
	cfg    Config
	prompt *prompt.Prompter
	out    io.Writer
	runner *suite.Runner
}

// New creates a Controller reading commands from in and writing all output,
// including prompts, to out.
func New(cfg Config, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		cfg:    cfg,
		prompt: prompt.New(in, out),
		out:    out,
		runner: &suite.Runner{Out: out, Timeout: cfg.CallTimeout},
	}
}

// Run reads and executes commands until exit is entered, the input is
// exhausted, or ctx is cancelled.  A nil error is returned for exit and the
// end of input.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := c.prompt.Line(Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return errors.E(errors.Op("session.Run"), errors.IO, err)
		}

		cmd := strings.ToLower(line)
		if cmd != "" {
			log.Debugf("Command %q", cmd)
		}
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprint(c.out, ui.Help())
		case "test daemon":
			err = c.testDaemon(ctx)
		case "test service":
			err = c.testService(ctx)
		case "exit":
			fmt.Fprintf(c.out, "\n%s\n\n", farewell)
			return nil
		default:
			fmt.Fprintf(c.out, "\n%s\n", unknownCommand)
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out)
			return nil
		default:
			return err
		}
	}
}

// endpoint prompts for the host and port of a service and returns its base
// URL.  Invalid input is reported and ok is false.
func (c *Controller) endpoint(kind string, defaults Endpoint) (baseURL string, ok bool, err error) {
	host, err := c.prompt.Default(fmt.Sprintf("What is the address of the %s you would like to test?", kind),
		defaults.Host)
	if err != nil {
		return "", false, err
	}
	port, err := c.prompt.Port(fmt.Sprintf("What is the port number of the %s you would like to test?", kind),
		defaults.Port)
	if err != nil {
		return "", false, err
	}
	baseURL, err = cfgutil.BaseURL(host, port)
	if err != nil {
		fmt.Fprintf(c.out, "\nInvalid address %q\n", host)
		log.Debugf("%v", err)
		return "", false, nil
	}
	return baseURL, true, nil
}

func (c *Controller) testDaemon(ctx context.Context) error {
	fmt.Fprintln(c.out)
	baseURL, ok, err := c.endpoint("daemon", c.cfg.Daemon)
	if err != nil || !ok {
		return err
	}
	mixin, err := c.prompt.Count("What default mixin should be used for random outputs?", c.cfg.Daemon.Mixin)
	if err != nil {
		return err
	}
	refDefault := c.cfg.Reference
	if refDefault == "" {
		refDefault = noReference
	}
	refURL, err := c.prompt.Default("What reference node should results be compared against?", refDefault)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\nStarting tests against %s...\n\n", strings.TrimPrefix(baseURL, "http://"))
	log.Infof("Testing daemon at %s", baseURL)

	snapshot := c.fetchReference(ctx, refURL)
	fmt.Fprintln(c.out)

	rpc := jsonrpc.New(baseURL, jsonrpc.WithTimeout(c.cfg.CallTimeout))
	s := suite.Daemon(turtlecoind.NewClient(rpc), suite.DaemonOptions{
		Mixin:     mixin,
		Reference: snapshot,
	})
	return c.run(ctx, s)
}

// fetchReference retrieves the reference snapshot once, printing a single
// line describing whether cross-validation is available.
func (c *Controller) fetchReference(ctx context.Context, refURL string) *reference.Snapshot {
	if strings.EqualFold(refURL, noReference) {
		refURL = ""
	}
	ref := &reference.Client{URL: refURL, Timeout: c.cfg.CallTimeout}
	if !ref.Enabled() {
		fmt.Fprintln(c.out, "No reference node configured: no cross-validation available")
		return nil
	}
	if err := cfgutil.ValidateURL(refURL); err != nil {
		fmt.Fprintf(c.out, "Invalid reference node URL %q: no cross-validation available\n", refURL)
		log.Debugf("%v", err)
		return nil
	}

	o := ref.Fetch(ctx)
	if !o.Pass {
		fmt.Fprintf(c.out, "Reference node %s unavailable: no cross-validation available\n", refURL)
		return nil
	}
	snapshot := o.Payload
	fmt.Fprintf(c.out, "Comparing against reference node %s (height %d, synced: %t)\n",
		refURL, snapshot.Height, snapshot.Synced)
	return &snapshot
}

func (c *Controller) testService(ctx context.Context) error {
	fmt.Fprintln(c.out)
	baseURL, ok, err := c.endpoint("wallet service", c.cfg.Service)
	if err != nil || !ok {
		return err
	}
	password, err := c.prompt.Password("What is the RPC password of the wallet service?", c.cfg.Service.Password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\nStarting tests against %s...\n\n", strings.TrimPrefix(baseURL, "http://"))
	log.Infof("Testing wallet service at %s", baseURL)

	rpc := jsonrpc.New(baseURL, jsonrpc.WithPassword(password), jsonrpc.WithTimeout(c.cfg.CallTimeout))
	return c.run(ctx, suite.Service(walletd.NewClient(rpc)))
}

func (c *Controller) run(ctx context.Context, s *suite.Suite) error {
	_, err := c.runner.Run(ctx, s)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return nil
}
