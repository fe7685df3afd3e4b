// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpiter decodes UTF-8, UTF-16, and UTF-32 scalar sequences into
// Unicode code points one at a time, guaranteeing progress on ill-formed
// input rather than aborting. This is component A of the IDNA processing
// pipeline: every mapper or validator that walks an input string does so
// through one of these iterators.
package cpiter

import "unicode/utf8"

// surrogate bounds, used by the UTF-16 iterator.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrogateLow = 0xDC00
)

func isSurrogateLead(u uint16) bool  { return u >= 0xD800 && u <= 0xDBFF }
func isSurrogateTrail(u uint16) bool { return u >= 0xDC00 && u <= 0xDFFF }

// UTF8 iterates over the scalar values encoded in s. On an ill-formed byte
// sequence it yields U+FFFD for each byte unicode/utf8.DecodeRuneInString
// rejects, so a truncated multi-byte sequence such as E2 82 gives one U+FFFD
// per byte rather than one for the whole sequence; it never aborts. Every
// call to Next consumes at least one byte.
type UTF8 struct {
	s string
	i int
}

// NewUTF8 returns an iterator over s.
func NewUTF8(s string) *UTF8 { return &UTF8{s: s} }

// Done reports whether all of s has been consumed.
func (it *UTF8) Done() bool { return it.i >= len(it.s) }

// Next returns the next code point and advances past it.
func (it *UTF8) Next() rune {
	r, size := utf8.DecodeRuneInString(it.s[it.i:])
	if size == 0 {
		size = 1 // Done() guards against this; defensive only.
	}
	it.i += size
	return r
}

// UTF16 iterates over the scalar values encoded in s, pairing surrogates
// into supplementary-plane code points where possible. An unpaired
// surrogate is returned as-is (its numeric value, which is not a valid
// Unicode scalar value but is what callers of a UTF-16 decoder expect to
// see so that it can be rejected downstream).
type UTF16 struct {
	s []uint16
	i int
}

// NewUTF16 returns an iterator over s.
func NewUTF16(s []uint16) *UTF16 { return &UTF16{s: s} }

// Done reports whether all of s has been consumed.
func (it *UTF16) Done() bool { return it.i >= len(it.s) }

// Next returns the next code point and advances past it.
func (it *UTF16) Next() rune {
	c1 := it.s[it.i]
	it.i++
	if isSurrogateLead(c1) && it.i < len(it.s) {
		c2 := it.s[it.i]
		if isSurrogateTrail(c2) {
			it.i++
			const surrogateOffset = (surrogateMin << 10) + surrogateLow - 0x10000
			return rune((uint32(c1) << 10) + uint32(c2) - surrogateOffset)
		}
	}
	return rune(c1)
}

// UTF32 iterates over a sequence of code points that are already in their
// final scalar form; each value is passed through unchanged.
type UTF32 struct {
	s []rune
	i int
}

// NewUTF32 returns an iterator over s.
func NewUTF32(s []rune) *UTF32 { return &UTF32{s: s} }

// Done reports whether all of s has been consumed.
func (it *UTF32) Done() bool { return it.i >= len(it.s) }

// Next returns the next code point and advances past it.
func (it *UTF32) Next() rune {
	r := it.s[it.i]
	it.i++
	return r
}
