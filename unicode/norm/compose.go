// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "sort"

// compose implements the canonical composition step of UAX #15's NFC
// algorithm over an already-decomposed, canonically-ordered sequence,
// following compose() in the original nfc.cpp: a starter is tracked along
// with the ccc of the last combining mark folded into something after it
// (prevCC), and a following mark composes with the starter only if no
// intervening mark of greater-or-equal combining class blocked it.
func compose(cps []rune) []rune {
	if len(cps) == 0 {
		return cps
	}
	out := append([]rune(nil), cps[0])
	starterPos := 0
	prevCC := byte(0) // ccc of the closest preceding mark not folded into the starter

	for i := 1; i < len(cps); i++ {
		c := cps[i]
		cc := ccLookup(c)
		starter := out[starterPos]

		if composed, ok := composeWith(starter, c); ok && (len(out) == starterPos+1 || prevCC < cc) {
			out[starterPos] = composed
			continue
		}

		out = append(out, c)
		if cc == 0 {
			starterPos = len(out) - 1
			prevCC = 0
		} else if cc > prevCC || i == starterPos+1 {
			prevCC = cc
		}
	}
	return out
}

// composeWith looks up the primary composite of (starter, c), trying the
// algorithmic Hangul cases before the compiled composition table.
func composeWith(starter, c rune) (rune, bool) {
	if v, ok := composeHangul(starter, c); ok {
		return v, true
	}
	entries := compositionEntriesOf(starter)
	j := sort.Search(len(entries), func(k int) bool { return entries[k].key >= c })
	if j < len(entries) && entries[j].key == c {
		return entries[j].val, true
	}
	return 0, false
}

// composeHangul implements the algorithmic Hangul composition cases:
// L+V -> LV syllable, and (LV syllable)+T -> LVT syllable.
func composeHangul(starter, c rune) (rune, bool) {
	if starter >= lBase && starter < lBase+lCount && c >= vBase && c < vBase+vCount {
		lIndex := starter - lBase
		vIndex := c - vBase
		return sBase + (lIndex*vCount+vIndex)*tCount, true
	}
	if isHangulSyllable(starter) && (starter-sBase)%tCount == 0 && c > tBase && c < tBase+tCount {
		return starter + (c - tBase), true
	}
	return 0, false
}
