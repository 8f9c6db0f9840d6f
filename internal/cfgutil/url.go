// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Copyright (c) 2018 The TurtleCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cfgutil

import (
	"net/url"
	"strings"

	"github.com/turtlecoin/turtletest/errors"
)

// URLFlag contains an optional absolute http(s) URL and implements the
// flags.Marshaler and Unmarshaler interfaces so it can be used as a config
// struct field.  The empty string is valid and means the URL is unset.
type URLFlag struct {
	str string
}

// NewURLFlag creates a URLFlag with a default value.  The default is not
// validated.
func NewURLFlag(defaultValue string) *URLFlag {
	return &URLFlag{str: defaultValue}
}

// MarshalFlag satisfies the flags.Marshaler interface.
func (u *URLFlag) MarshalFlag() (string, error) {
	return u.str, nil
}

// UnmarshalFlag satisfies the flags.Unmarshaler interface.
func (u *URLFlag) UnmarshalFlag(value string) error {
	value = strings.TrimSpace(value)
	if value != "" {
		if err := ValidateURL(value); err != nil {
			return err
		}
	}
	u.str = value
	return nil
}

// String returns the configured URL, or the empty string when unset.
func (u *URLFlag) String() string {
	return u.str
}

// ValidateURL checks that s is an absolute http or https URL with a host.
func ValidateURL(s string) error {
	const op errors.Op = "cfgutil.ValidateURL"
	parsed, err := url.Parse(s)
	if err != nil {
		return errors.E(op, errors.Invalid, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.E(op, errors.Invalid, errors.Errorf("unsupported URL scheme %q", parsed.Scheme))
	}
	if parsed.Host == "" {
		return errors.E(op, errors.Invalid, "URL has no host")
	}
	return nil
}
