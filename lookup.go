// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package kvparse

import "errors"

// Lookup scans buf line by line for the first occurrence of key and copies
// its value into dst, returning the number of bytes written. Later
// occurrences of the key are never examined. Lookup returns ErrNotFound if
// no line matches, and otherwise reports values exactly as ReadValue does.
func Lookup(buf []byte, key string, dst []byte, opts *Options) (int, error) {
	for line := 0; ; line++ {
		cur, ok := NextLine(buf, line)
		if !ok {
			return 0, ErrNotFound
		}
		buf = cur
		if rest, ok := MatchKey(buf, key, opts); ok {
			return ReadValue(rest, dst, opts)
		}
	}
}

// LookupSection is like Lookup, but only matches the key on lines belonging
// to the named section: lines after a "[section]" header and before the next
// header. The empty section name addresses lines before the first header.
// Sections with the same name may appear more than once; the first matching
// key in any of them wins.
func LookupSection(buf []byte, section, key string, dst []byte, opts *Options) (int, error) {
	name := make([]byte, sectionScratchLen(section))
	in := section == ""
	for line := 0; ; line++ {
		cur, ok := NextLine(buf, line)
		if !ok {
			return 0, ErrNotFound
		}
		buf = cur
		switch n, err := Section(buf, name, opts); {
		case err == nil:
			in = string(name[:n]) == section
			continue
		case errors.Is(err, ErrTooLong):
			// A header too long for the scratch buffer cannot name
			// the wanted section.
			in = false
			continue
		}
		if !in {
			continue
		}
		if rest, ok := MatchKey(buf, key, opts); ok {
			return ReadValue(rest, dst, opts)
		}
	}
}

// Lookup rewinds the stream and scans it line by line for the first
// occurrence of key, copying its value into dst and returning the number of
// bytes written. Lookup returns ErrNotFound if no line matches; callers
// should consult Err to tell a truncated scan from a genuinely absent key.
func (s *Scanner) Lookup(key string, dst []byte) (int, error) {
	s.seekTo(0)
	for line := 0; s.NextLine(line); line++ {
		if s.MatchKey(key) {
			return s.ReadValue(dst)
		}
	}
	return 0, ErrNotFound
}

// LookupSection is like Lookup, but only matches the key on lines belonging
// to the named section, with the same semantics as the package-level
// LookupSection.
func (s *Scanner) LookupSection(section, key string, dst []byte) (int, error) {
	s.seekTo(0)
	name := make([]byte, sectionScratchLen(section))
	in := section == ""
	for line := 0; s.NextLine(line); line++ {
		switch n, err := s.Section(name); {
		case err == nil:
			in = string(name[:n]) == section
			continue
		case errors.Is(err, ErrTooLong):
			in = false
			continue
		}
		if !in {
			continue
		}
		if s.MatchKey(key) {
			return s.ReadValue(dst)
		}
	}
	return 0, ErrNotFound
}

// sectionScratchLen sizes the scratch buffer used to read section headers
// while looking for section. Headers are usually short; the floor keeps
// whitespace-padded headers of other sections recognizable so they still end
// the section being scanned.
func sectionScratchLen(section string) int {
	const min = 256
	if n := len(section) + 2; n > min {
		return n
	}
	return min
}
