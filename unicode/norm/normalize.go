// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm implements Unicode Normalization Form C (UAX #15): the
// canonical decomposition, canonical ordering, and recomposition of a
// sequence of code points into its unique composed form. It is driven
// entirely by the compressed property tables in tables.go and is
// infallible: every input, however it was produced, has a defined NFC
// form.
package norm

// NFC reports the canonical-composition normalization form of cps: fully
// decompose (recursively, to a fixed point, including the algorithmic
// Hangul case), canonically reorder combining marks by combining class,
// then recompose every primary composite the canonical ordering makes
// adjacent. This is normalize_nfc in UAX #15 terms.
func NFC(cps []rune) []rune {
	return compose(canonicalDecompose(cps))
}

// NFCString is NFC over the runes of s, returned as a string.
func NFCString(s string) string {
	return string(NFC([]rune(s)))
}

// IsNormalizedNFC reports whether cps is already in Normalization Form C,
// i.e. whether NFC(cps) would return the same sequence unchanged.
func IsNormalizedNFC(cps []rune) bool {
	n := NFC(cps)
	if len(n) != len(cps) {
		return false
	}
	for i, r := range cps {
		if n[i] != r {
			return false
		}
	}
	return true
}

// IsNormalizedNFCString is IsNormalizedNFC over the runes of s.
func IsNormalizedNFCString(s string) bool {
	return IsNormalizedNFC([]rune(s))
}

// Form names a Unicode normalization form. Only NFC is implemented here,
// matching the profile this module serves: IDNA 2008 / UTS #46 never calls
// for NFD, NFKC, or NFKD. The type and its methods exist so that callers
// already shaped around golang.org/x/text/unicode/norm's Form type port
// over without changing shape.
type Form int

// FormNFC is the only supported Form value.
const FormNFC Form = 0

// Bytes returns f(b) as a freshly allocated slice.
func (f Form) Bytes(b []byte) []byte {
	return []byte(NFCString(string(b)))
}

// String returns f(s).
func (f Form) String(s string) string {
	return NFCString(s)
}

// IsNormalString reports whether s is already in this Form.
func (f Form) IsNormalString(s string) bool {
	return IsNormalizedNFCString(s)
}
