// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package kvparse

import "io"

const eof = -1

// A Scanner scans line-oriented key/value text from a seekable stream. It
// reads one byte at a time and uses absolute-offset seeks to restore its
// position after a failed match or a completed extraction, so the stream's
// read position always addresses the logical cursor. Methods mirror the
// package-level buffer functions and produce identical results.
//
// A Scanner must not be used from multiple goroutines simultaneously, since
// the stream's read position is shared mutable state. Callers that want the
// scan to be cheap per byte can read the input into memory and use the
// buffer surface instead.
type Scanner struct {
	r    io.ReadSeeker
	opts Options

	pos       int64 // offset of the next byte in r
	unread    byte  // pushed-back byte, valid when hasUnread
	hasUnread bool
	err       error // first I/O error other than io.EOF

	scratch [1]byte
}

// NewScanner returns a new Scanner reading from r with the given options.
// A nil opts is treated as the zero Options. Scanning begins at r's current
// position.
func NewScanner(r io.ReadSeeker, opts *Options) *Scanner {
	if r == nil {
		panic("kvparse.NewScanner(nil, ...)")
	}
	s := &Scanner{r: r}
	if opts != nil {
		s.opts = *opts
	}
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		s.err = err
	} else {
		s.pos = pos
	}
	return s
}

// Err returns the first I/O error encountered by the Scanner, excluding
// io.EOF. Scanning methods report an I/O error the same way they report the
// end of the input, so a caller whose scan came up empty can consult Err to
// tell the two apart.
func (s *Scanner) Err() error {
	return s.err
}

// readByte returns the next byte of the stream, or eof at the end of input
// or on an I/O error. Errors other than io.EOF are recorded for Err.
func (s *Scanner) readByte() int {
	if s.hasUnread {
		s.hasUnread = false
		return int(s.unread)
	}
	if s.err != nil {
		return eof
	}
	n, err := s.r.Read(s.scratch[:])
	if n > 0 {
		s.pos++
		if err != nil && err != io.EOF {
			s.err = err
		}
		return int(s.scratch[0])
	}
	if err != nil && err != io.EOF {
		s.err = err
	}
	return eof
}

// unreadByte pushes c back so that the next readByte returns it. Only one
// byte of pushback is retained.
func (s *Scanner) unreadByte(c byte) {
	s.unread = c
	s.hasUnread = true
}

// tell returns the offset of the next byte readByte would return.
func (s *Scanner) tell() int64 {
	if s.hasUnread {
		return s.pos - 1
	}
	return s.pos
}

// seekTo moves the stream to the absolute offset off, dropping any pushback.
func (s *Scanner) seekTo(off int64) {
	s.hasUnread = false
	if s.err != nil {
		return
	}
	if _, err := s.r.Seek(off, io.SeekStart); err != nil {
		s.err = err
		return
	}
	s.pos = off
}

// NextLine advances the Scanner to the start of line number line, where line
// counts calls rather than absolute position: passing 0 leaves the Scanner
// where it is, and any larger value advances past the next newline. NextLine
// returns false when there is no further line; the caller's loop should stop
// and may consult Err.
func (s *Scanner) NextLine(line int) bool {
	if line == 0 {
		// Already at the first line.
		return true
	}
	for {
		c := s.readByte()
		if c == eof {
			return false
		}
		if c != '\n' {
			continue
		}
		c = s.readByte()
		if c == eof {
			return false
		}
		s.unreadByte(byte(c))
		return true
	}
}

// MatchKey reports whether the current line consists of key followed by a
// '=' or ':' delimiter. On a match the Scanner is left positioned just after
// the delimiter, ready for ReadValue. On a mismatch the Scanner seeks back
// to where the line started.
//
// Keys are compared byte-for-byte. Space and tab characters before the key
// and between the key and the delimiter are skipped unless the Scanner was
// created with DisableWhitespaceTrim.
func (s *Scanner) MatchKey(key string) bool {
	start := s.tell()
	c := s.readByte()
	if s.opts.trimSpace() {
		for c == ' ' || c == '\t' {
			c = s.readByte()
		}
	}
	for j := 0; j < len(key); j++ {
		if c == eof || byte(c) != key[j] {
			s.seekTo(start)
			return false
		}
		c = s.readByte()
	}
	if s.opts.trimSpace() {
		for c == ' ' || c == '\t' {
			c = s.readByte()
		}
	}
	if c == eof || !isDelimiter(byte(c)) {
		s.seekTo(start)
		return false
	}
	return true
}

// ReadValue copies the value at the current position into dst and returns
// the number of bytes written, with the same syntax, capacity, and error
// behavior as the package-level ReadValue.
//
// After extraction the Scanner seeks back to where the value started, so a
// repeated call returns the same value; the terminating newline, if any,
// lies ahead of the restored position, so the next NextLine call still sees
// it. Callers parsing sequentially must therefore keep calling NextLine to
// move past the consumed line.
func (s *Scanner) ReadValue(dst []byte) (int, error) {
	start := s.tell()
	c := s.readByte()
	if s.opts.trimSpace() {
		for c == ' ' || c == '\t' {
			c = s.readByte()
		}
	}
	n := 0
	var quote, prev byte
	for {
		if c == eof || c == '\r' || c == '\n' {
			// End of line. The terminator stays ahead of the
			// restored position for the next NextLine to find.
			s.seekTo(start)
			if s.opts.trimSpace() {
				for n > 0 && isSpaceTab(dst[n-1]) {
					n--
				}
			}
			return n, nil
		}
		b := byte(c)
		if s.opts.quoteStrings() {
			switch {
			case quote == 0 && (b == '\'' || b == '"'):
				// Start of quoted value.
				quote = b
				c = s.readByte()
				continue
			case quote != 0 && b == quote && prev != '\\':
				// End of quoted value.
				s.seekTo(start)
				return n, nil
			case quote != 0 && b == quote && prev == '\\':
				// Escaped quote collapses onto the backslash
				// already written.
				dst[n-1] = b
				c = s.readByte()
				continue
			}
			prev = b
		}
		if n >= len(dst) {
			s.seekTo(start)
			return 0, ErrTooLong
		}
		dst[n] = b
		n++
		c = s.readByte()
	}
}

// Section parses a section header of the form "[name]" on the current line,
// with the same syntax, capacity, and error behavior as the package-level
// Section. The Scanner seeks back to where the line started whether or not
// a header was found, so Section is a peek: it never consumes input.
func (s *Scanner) Section(dst []byte) (int, error) {
	start := s.tell()
	c := s.readByte()
	if s.opts.trimSpace() {
		for c == ' ' || c == '\t' {
			c = s.readByte()
		}
	}
	if c != '[' {
		s.seekTo(start)
		return 0, ErrNoSection
	}
	n := 0
	for c = s.readByte(); c != eof && c != '\r' && c != '\n'; c = s.readByte() {
		if n >= len(dst) {
			s.seekTo(start)
			return 0, ErrTooLong
		}
		dst[n] = byte(c)
		n++
	}
	s.seekTo(start)
	if s.opts.trimSpace() {
		for n > 0 && isSpaceTab(dst[n-1]) {
			n--
		}
	}
	if n == 0 || dst[n-1] != ']' {
		return 0, ErrNoSection
	}
	n--
	if s.opts.trimSpace() {
		for n > 0 && isSpaceTab(dst[n-1]) {
			n--
		}
	}
	return n, nil
}
