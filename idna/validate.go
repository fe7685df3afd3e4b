// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"
	"unicode"

	"github.com/gocharset/idna46/unicode/norm"
)

const acePrefix = "xn--"

// bidiState carries the domain-wide half of V8 CheckBidi: whether any label
// in this domain contains a code point of bidi class R/AL/AN. The
// orchestrator computes this once, over every label, before validating any
// of them, so that a label whose direction can't be read from its first
// character (neither L nor R/AL/AN) is judged against the domain's actual
// bidi-ness rather than against an order-dependent partial view of it.
type bidiState struct {
	isBidiDomain bool
}

// newBidiState scans every label's code points for bidi class R/AL or AN.
func newBidiState(labels [][]rune) *bidiState {
	bs := &bidiState{}
	for _, label := range labels {
		for _, cp := range label {
			switch lookupStatus(cp).bidiClass() {
			case bidiR_AL, bidiAN:
				bs.isBidiDomain = true
				return bs
			}
		}
	}
	return bs
}

// validateLabel runs V1-V9 against label (a decoded sequence of code
// points, or the runes of an ASCII label) and returns the first invariant it
// fails, or nil if the label is valid. fullCheck additionally requires V1
// (NFC) and V4 (no leading xn--), which the orchestrator only asks for on
// Punycode-decoded labels.
func validateLabel(label []rune, opts Options, fullCheck bool, bs *bidiState) error {
	if len(label) == 0 {
		return nil // empty non-root labels are rejected by the DNS length check, not here
	}
	s := string(label)
	var err error
	fail := func(code string) {
		if err == nil {
			err = &labelError{s, code}
		}
	}

	if fullCheck {
		if !norm.IsNormalizedNFC(label) { // V1
			fail("V1")
		}
		if !opts.has(CheckHyphens) && hasACEPrefix(label) { // V4
			fail("V4")
		}
	}

	if opts.has(CheckHyphens) {
		if !checkHyphens(label) { // V2/V3
			fail("V2")
		}
	}

	if unicode.Is(unicode.M, label[0]) { // V5
		fail("V5")
	}

	for _, cp := range label {
		st := lookupStatus(cp)
		if !isLabelValid(st, opts) { // V6
			fail("V6")
			break
		}
	}

	if opts.has(CheckJoiners) {
		if !checkJoiners(label) { // V7
			fail("V7")
		}
	}

	if opts.has(CheckBidi) {
		if !checkBidi(label, bs) { // V8/V9
			fail("V8")
		}
	}

	return err
}

func hasACEPrefix(label []rune) bool {
	return len(label) >= 4 && strings.EqualFold(string(label[:4]), acePrefix)
}

// checkHyphens implements V2/V3: no '-' in both positions 2 and 3 (0-based
// 2,3), and no leading or trailing '-'.
func checkHyphens(label []rune) bool {
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	if len(label) >= 4 && label[2] == '-' && label[3] == '-' {
		return false
	}
	return true
}

// isLabelValid implements V6: cp must be Valid under the effective mask.
// Deviation code points are allowed (a label produced by the mapper always
// resolves deviations one way or the other before validation is reached,
// but a Punycode-decoded label may still contain one, e.g. ß under
// NonTransitional).
func isLabelValid(st status, opts Options) bool {
	if st.isSTD3() && opts.has(UseSTD3ASCIIRules) {
		return false
	}
	return st.isValid() || st.isDeviation()
}

// checkJoiners implements V7: context rules for ZWNJ (U+200C) and ZWJ
// (U+200D), the only two CONTEXTJ code points RFC 5892 defines.
func checkJoiners(label []rune) bool {
	for i, cp := range label {
		switch cp {
		case 0x200C: // ZWNJ
			if i > 0 && ccOf(label[i-1]) == 9 {
				continue
			}
			if !zwnjContextOK(label, i) {
				return false
			}
		case 0x200D: // ZWJ
			if i == 0 || ccOf(label[i-1]) != 9 {
				return false
			}
		}
	}
	return true
}

func ccOf(cp rune) byte {
	return norm.CCLookup(cp)
}

// zwnjContextOK reports whether there is a run (L|D) T* immediately before
// position i and a run T* (R|D) immediately after it, per RFC 5892's ZWNJ
// rule. Joiners themselves (U+200C/U+200D) carry no joining type in this
// table, so a scan that reaches another joiner stops there and the context
// fails.
func zwnjContextOK(label []rune, i int) bool {
	j := i - 1
	for j >= 0 && joinTypeOf(label[j]) == joinT {
		j--
	}
	if j < 0 {
		return false
	}
	before := joinTypeOf(label[j])
	if before != joinL && before != joinD {
		return false
	}

	k := i + 1
	for k < len(label) && joinTypeOf(label[k]) == joinT {
		k++
	}
	if k >= len(label) {
		return false
	}
	after := joinTypeOf(label[k])
	return after == joinR || after == joinD
}

func joinTypeOf(cp rune) status {
	return lookupStatus(cp).joinType()
}

// checkBidi implements V8/V9 for one label, consulting bs for the
// domain-wide bidi-ness the LTR rule needs.
func checkBidi(label []rune, bs *bidiState) bool {
	first := lookupStatus(label[0]).bidiClass()
	switch first {
	case bidiR_AL, bidiAN:
		return checkBidiRTL(label)
	case bidiL:
		return checkBidiLTR(label, bs)
	default:
		// Direction unreadable from the first character: only an error if
		// the domain turns out to be bidi at all.
		return !bs.isBidiDomain
	}
}

func checkBidiRTL(label []rune) bool {
	sawEN, sawAN := false, false
	lastNonNSM := status(0)
	for _, cp := range label {
		c := lookupStatus(cp).bidiClass()
		switch c {
		case bidiR_AL, bidiAN, bidiEN, bidiES_CS_ET_ON_BN:
		case bidiNSM:
			continue
		default:
			return false
		}
		if c == bidiEN {
			sawEN = true
		}
		if c == bidiAN {
			sawAN = true
		}
		lastNonNSM = c
	}
	if sawEN && sawAN {
		return false
	}
	return lastNonNSM == bidiR_AL || lastNonNSM == bidiAN || lastNonNSM == bidiEN
}

func checkBidiLTR(label []rune, bs *bidiState) bool {
	lastNonNSM := status(0)
	for _, cp := range label {
		c := lookupStatus(cp).bidiClass()
		switch c {
		case bidiL, bidiEN, bidiES_CS_ET_ON_BN:
			lastNonNSM = c
		case bidiNSM:
			continue
		default:
			// A code point outside {L, EN, ES_CS_ET_ON_BN, NSM} inside an
			// LTR label (R/AL/AN, or one this table gives no bidi class)
			// fails the label only when the domain is bidi.
			if bs.isBidiDomain {
				return false
			}
		}
	}
	if lastNonNSM != bidiL && lastNonNSM != bidiEN {
		return !bs.isBidiDomain
	}
	return true
}
