// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package kvparse

// NextLine returns the portion of buf starting at line number line, where
// line counts calls rather than absolute position: passing 0 returns buf
// unchanged, and any larger value advances past the first newline in buf.
// The second return value is false when there is no further line, either
// because buf has no newline or because the newline is its last byte.
//
// The intended use is a loop that increments line and feeds each returned
// slice back in:
//
//	for line := 0; ; line++ {
//		cur, ok := NextLine(buf, line)
//		if !ok {
//			break
//		}
//		buf = cur
//		// scan the line at the start of buf
//	}
func NextLine(buf []byte, line int) ([]byte, bool) {
	if line == 0 {
		// Already at the first line.
		return buf, true
	}
	for i := 0; i < len(buf); i++ {
		if buf[i] != '\n' {
			continue
		}
		if i+1 >= len(buf) {
			return nil, false
		}
		return buf[i+1:], true
	}
	return nil, false
}

// MatchKey reports whether the line at the start of buf consists of key
// followed by a '=' or ':' delimiter. On a match it returns the remainder of
// buf immediately after the delimiter, positioned for ReadValue. On a
// mismatch it returns nil and false, and the caller's slice still addresses
// the start of the line.
//
// Keys are compared byte-for-byte. Space and tab characters before the key
// and between the key and the delimiter are skipped unless
// opts.DisableWhitespaceTrim is set. A nil opts is treated as the zero
// Options.
func MatchKey(buf []byte, key string, opts *Options) ([]byte, bool) {
	i := 0
	if opts.trimSpace() {
		for i < len(buf) && isSpaceTab(buf[i]) {
			i++
		}
	}
	for j := 0; j < len(key); j++ {
		if i >= len(buf) || buf[i] != key[j] {
			return nil, false
		}
		i++
	}
	if opts.trimSpace() {
		for i < len(buf) && isSpaceTab(buf[i]) {
			i++
		}
	}
	if i >= len(buf) || !isDelimiter(buf[i]) {
		return nil, false
	}
	return buf[i+1:], true
}

// ReadValue copies the value at the start of buf into dst and returns the
// number of bytes written. buf is expected to address the position just
// after a key's delimiter, as returned by MatchKey. The value ends at the
// first '\r', '\n', or the end of buf; len(dst) is a hard capacity, and a
// value that does not fit returns 0 and ErrTooLong rather than a truncated
// result. A zero length with a nil error means the value is empty.
//
// Unless opts.DisableWhitespaceTrim is set, space and tab characters around
// the value are not copied. Unless opts.DisableQuotes is set, a leading
// single or double quote opens a quoted value: the quotes are dropped, a
// backslash escapes the quote character, and the closing quote ends the
// value even if more text follows on the line. A quote left open when the
// line ends is treated as if it were closed there.
func ReadValue(buf, dst []byte, opts *Options) (int, error) {
	i := 0
	if opts.trimSpace() {
		for i < len(buf) && isSpaceTab(buf[i]) {
			i++
		}
	}
	n := 0
	var quote, prev byte
	for ; ; i++ {
		if i >= len(buf) || buf[i] == '\r' || buf[i] == '\n' {
			// End of line.
			if opts.trimSpace() {
				for n > 0 && isSpaceTab(dst[n-1]) {
					n--
				}
			}
			return n, nil
		}
		c := buf[i]
		if opts.quoteStrings() {
			switch {
			case quote == 0 && (c == '\'' || c == '"'):
				// Start of quoted value.
				quote = c
				continue
			case quote != 0 && c == quote && prev != '\\':
				// End of quoted value.
				return n, nil
			case quote != 0 && c == quote && prev == '\\':
				// Escaped quote collapses onto the backslash
				// already written.
				dst[n-1] = c
				continue
			}
			prev = c
		}
		if n >= len(dst) {
			return 0, ErrTooLong
		}
		dst[n] = c
		n++
	}
}

// Section parses a section header of the form "[name]" at the start of buf,
// copies the name between the brackets into dst, and returns its length.
// If the line does not begin with an opening bracket, or the line ends
// before a closing bracket, Section returns 0 and ErrNoSection. If the text
// after the opening bracket, including the closing bracket, does not fit in
// dst, Section returns 0 and ErrTooLong.
//
// Unless opts.DisableWhitespaceTrim is set, space and tab characters before
// the opening bracket, after the closing bracket, and between the name and
// the closing bracket are ignored. The caller's slice still addresses the
// start of the line afterward.
func Section(buf, dst []byte, opts *Options) (int, error) {
	i := 0
	if opts.trimSpace() {
		for i < len(buf) && isSpaceTab(buf[i]) {
			i++
		}
	}
	if i >= len(buf) || buf[i] != '[' {
		return 0, ErrNoSection
	}
	i++
	n := 0
	for ; i < len(buf) && buf[i] != '\r' && buf[i] != '\n'; i++ {
		if n >= len(dst) {
			return 0, ErrTooLong
		}
		dst[n] = buf[i]
		n++
	}
	if opts.trimSpace() {
		for n > 0 && isSpaceTab(dst[n-1]) {
			n--
		}
	}
	if n == 0 || dst[n-1] != ']' {
		return 0, ErrNoSection
	}
	n--
	if opts.trimSpace() {
		for n > 0 && isSpaceTab(dst[n-1]) {
			n--
		}
	}
	return n, nil
}
