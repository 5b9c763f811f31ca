// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package kvparse

import "errors"

// Options holds optional parameters for scanning. The zero value enables
// whitespace trimming and quote handling; a nil *Options is treated
// identically to the zero value.
type Options struct {
	// DisableWhitespaceTrim turns off skipping of space and tab characters
	// around keys, delimiters, values, and section names. When set, keys
	// must start at the beginning of their line and values are returned
	// with surrounding whitespace intact.
	DisableWhitespaceTrim bool

	// DisableQuotes turns off quote handling in values. When set, quote
	// and backslash characters are copied to the output verbatim.
	DisableQuotes bool
}

func (o *Options) trimSpace() bool {
	return o == nil || !o.DisableWhitespaceTrim
}

func (o *Options) quoteStrings() bool {
	return o == nil || !o.DisableQuotes
}

// Errors returned by scanning operations. These are distinct so that callers
// can tell an empty value (a zero length and a nil error) apart from a value
// that did not fit or a line that is not a section header.
var (
	// ErrNotFound is returned by Lookup and LookupSection when every line
	// has been scanned without matching the key.
	ErrNotFound = errors.New("kvparse: key not found")

	// ErrNoSection is returned by Section when the line does not start
	// with an opening bracket or has no closing bracket before the end of
	// the line.
	ErrNoSection = errors.New("kvparse: not a section header")

	// ErrTooLong is returned when a value or section name does not fit in
	// the provided buffer. A truncated result is never returned.
	ErrTooLong = errors.New("kvparse: output buffer too small")
)

func isSpaceTab(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDelimiter(c byte) bool {
	return c == '=' || c == ':'
}
