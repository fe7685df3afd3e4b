// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "fmt"

// labelError reports which label failed and which invariant (V1-V9) or
// ToASCII step (A3 for a Punycode encoding failure, A4 for the DNS length
// rules and for rejected or undecodable ACE labels) it failed, a diagnostic this package's tests use via the
// unexported code() method; ToASCII/ToUnicode callers only ever see the
// first one, since this package's public contract is the single ok/fail
// boolean of spec.md §7, not a list of violations.
type labelError struct {
	label string
	code_ string
}

func (e *labelError) code() string { return e.code_ }
func (e *labelError) Error() string {
	return fmt.Sprintf("idna: invalid label %q (%s)", e.label, e.code_)
}

// runeError reports the first disallowed code point the mapper encountered.
type runeError rune

func (e runeError) code() string { return "P1" }
func (e runeError) Error() string {
	return fmt.Sprintf("idna: disallowed rune %U", rune(e))
}
