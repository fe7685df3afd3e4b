// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// canonicalDecompose expands every code point in cps to its full canonical
// decomposition and reorders combining marks by canonical combining class,
// implementing the decompose and reorder steps of UAX #15's NFC algorithm
// as laid out by canonical_decompose() in the original nfc.cpp: Hangul
// syllables are split algorithmically, everything else goes through the
// compiled decomposition table, and the result is stabilized by a
// starter-fenced insertion sort on ccc.
func canonicalDecompose(cps []rune) []rune {
	out := make([]rune, 0, len(cps))
	for _, cp := range cps {
		out = appendDecomposed(out, cp)
	}
	reorderCanonical(out)
	return out
}

func appendDecomposed(out []rune, cp rune) []rune {
	if isHangulSyllable(cp) {
		l, v, t := decomposeHangul(cp)
		out = append(out, l, v)
		if t != 0 {
			out = append(out, t)
		}
		return out
	}
	if d := decompositionOf(cp); d != nil {
		for _, c := range d {
			out = appendDecomposed(out, c)
		}
		return out
	}
	return append(out, cp)
}

func isHangulSyllable(cp rune) bool {
	return cp >= sBase && cp < sBase+sCount
}

// decomposeHangul splits a precomposed Hangul syllable into its Leading,
// Vowel, and (possibly absent, reported as 0) Trailing jamo, per the
// algorithm in Unicode Standard 3.12.
func decomposeHangul(cp rune) (l, v, t rune) {
	sIndex := cp - sBase
	l = lBase + sIndex/nCount
	v = vBase + (sIndex%nCount)/tCount
	tIndex := sIndex % tCount
	if tIndex != 0 {
		t = tBase + tIndex
	}
	return l, v, t
}

// reorderCanonical stably sorts each maximal run of combining marks
// (nonzero ccc) by ascending ccc, leaving starters (ccc 0) as fences; this
// is the canonical ordering algorithm of UAX #15 §1.3.
func reorderCanonical(cps []rune) {
	for i := 1; i < len(cps); i++ {
		cc := ccLookup(cps[i])
		if cc == 0 {
			continue
		}
		j := i
		for j > 0 && ccLookup(cps[j-1]) > cc {
			cps[j-1], cps[j] = cps[j], cps[j-1]
			j--
		}
	}
}
