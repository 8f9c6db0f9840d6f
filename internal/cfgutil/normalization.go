// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

import (
	"net"
	"strconv"
	"strings"

	"github.com/turtlecoin/turtletest/errors"
)

// NormalizeAddress returns the normalized form of the address, adding a default
// port if necessary.  An error is returned if the address, even without a port,
// is not valid.
func NormalizeAddress(addr string, defaultPort string) (hostport string, err error) {
	// If the first SplitHostPort errors because of a missing port and not
	// for an invalid host, add the port.  If the second SplitHostPort
	// fails, then a port is not missing and the original error should be
	// returned.
	host, port, origErr := net.SplitHostPort(addr)
	if origErr == nil {
		return net.JoinHostPort(host, port), nil
	}
	addr = net.JoinHostPort(addr, defaultPort)
	_, _, err = net.SplitHostPort(addr)
	if err != nil {
		return "", origErr
	}
	return addr, nil
}

// ParsePort parses a TCP port number.  Zero and values above 65535 are
// rejected.
func ParsePort(s string) (int, error) {
	const op errors.Op = "cfgutil.ParsePort"
	port, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, errors.E(op, errors.Invalid, errors.Errorf("invalid port %q", s))
	}
	if port == 0 {
		return 0, errors.E(op, errors.Invalid, "port must be non-zero")
	}
	return int(port), nil
}

// BaseURL returns the plain HTTP base URL for an RPC server listening on host
// and port.  A port already present in host takes precedence.  Hosts carrying
// a scheme, path, or credentials are rejected.
func BaseURL(host string, port int) (string, error) {
	const op errors.Op = "cfgutil.BaseURL"
	host = strings.TrimSpace(host)
	if host == "" || strings.ContainsAny(host, "/?#@ \t") {
		return "", errors.E(op, errors.Invalid, errors.Errorf("invalid host %q", host))
	}
	hostport, err := NormalizeAddress(host, strconv.Itoa(port))
	if err != nil {
		return "", errors.E(op, errors.Invalid, err)
	}
	h, p, _ := net.SplitHostPort(hostport)
	if h == "" {
		return "", errors.E(op, errors.Invalid, errors.Errorf("invalid host %q", host))
	}
	if _, err := ParsePort(p); err != nil {
		return "", errors.E(op, errors.Invalid, err)
	}
	return "http://" + hostport, nil
}
