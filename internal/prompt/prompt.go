// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prompt reads interactive answers with documented defaults.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/turtlecoin/turtletest/errors"
	"github.com/turtlecoin/turtletest/internal/cfgutil"
	"golang.org/x/term"
)

// Prompter writes prompts to an output and reads the replies line by line.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int // terminal file descriptor of the input, or -1
}

// New creates a Prompter reading from in.  Passwords are read without echo
// when in is a terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     fd,
	}
}

// Line prints prompt and returns the next line of input with surrounding
// whitespace removed.  io.EOF is returned once the input is exhausted; a final
// line without a newline is still returned.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Default prompts with the given prefix and default, returning the default
// when the reply is empty.
func (p *Prompter) Default(prefix, defaultEntry string) (string, error) {
	reply, err := p.Line(fmt.Sprintf("%s [%s] ", prefix, defaultEntry))
	if err != nil {
		return "", err
	}
	if reply == "" {
		return defaultEntry, nil
	}
	return reply, nil
}

// Port prompts for a TCP port.  The prompt is repeated until the reply is
// empty, which selects the default, or a valid port.
func (p *Prompter) Port(prefix string, defaultPort int) (int, error) {
	for {
		reply, err := p.Default(prefix, strconv.Itoa(defaultPort))
		if err != nil {
			return 0, err
		}
		port, err := cfgutil.ParsePort(reply)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid port %q: must be a number between 1 and 65535\n", reply)
			continue
		}
		return port, nil
	}
}

// Count prompts for a non-negative integer.  The prompt is repeated until the
// reply is empty, which selects the default, or valid.
func (p *Prompter) Count(prefix string, defaultCount int) (int, error) {
	for {
		reply, err := p.Default(prefix, strconv.Itoa(defaultCount))
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(reply, 10, 31)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid number %q\n", reply)
			continue
		}
		return int(n), nil
	}
}

// Password prompts for a password, returning defaultEntry when the reply is
// empty.  Input is not echoed when reading from a terminal.
func (p *Prompter) Password(prefix, defaultEntry string) (string, error) {
	if p.fd < 0 {
		return p.Default(prefix, defaultEntry)
	}

	fmt.Fprintf(p.out, "%s [%s] ", prefix, strings.Repeat("*", len(defaultEntry)))
	pass, err := term.ReadPassword(p.fd)
	fmt.Fprint(p.out, "\n")
	if err != nil {
		return "", errors.E(errors.Op("prompt.Password"), errors.IO, err)
	}
	reply := strings.TrimSpace(string(pass))
	if reply == "" {
		return defaultEntry, nil
	}
	return reply, nil
}
