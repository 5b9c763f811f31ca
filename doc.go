// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package kvparse locates values by key in line-oriented "key=value" or
"key: value" text, such as INI, TOML-like, or .env files.

Unlike a full configuration parser, this package never builds a document
model: each operation is a stateless scan over a cursor, and the caller
supplies the output buffer. This makes it suitable for picking a handful of
values out of a large file without allocating in proportion to its size.

Two equivalent surfaces are provided. The buffer surface operates on a byte
slice, where the cursor is the slice itself: advancing is re-slicing, and
undo is simply keeping the original slice. The stream surface is a Scanner
over an io.ReadSeeker that uses absolute-offset seeks to restore its
position after a failed or completed scan. Both surfaces produce identical
results for identical input.

Syntax

A line associates a key with a value, separated by an equals sign ('=') or a
colon (':'):

	key=value
	key: value

Keys are matched byte-for-byte with no case folding. Values extend to the
end of the line. A value may be wrapped in single or double quotes; the
quotes are not part of the value, and a backslash escapes a quote character
inside a quoted value:

	path="/home/user=data"
	greeting='hello "world"'

A section header is a line whose text is wrapped in square brackets:

	[section]

Unless disabled through Options, space and tab characters around keys,
delimiters, values, and section names are ignored.

Scanning

The low-level operations (NextLine, MatchKey, ReadValue, Section) compose
into a caller-driven loop:

	for line := 0; ; line++ {
		cur, ok := kvparse.NextLine(buf, line)
		if !ok {
			break // no more lines
		}
		buf = cur
		if rest, ok := kvparse.MatchKey(buf, "host", nil); ok {
			n, err := kvparse.ReadValue(rest, dst, nil)
			// ...
		}
	}

Lookup and LookupSection wrap this loop for the common single-key case.
*/
package kvparse
