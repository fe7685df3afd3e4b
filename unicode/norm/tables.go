// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// Hangul syllable constants (Unicode Standard, 3.12), used to expand and
// recompose Hangul algorithmically rather than through the table below.
const (
	sBase = 0xAC00
	lBase = 0x1100
	vBase = 0x1161
	tBase = 0x11A7
	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount // 588
	sCount = lCount * nCount // 11172
)

// rawDecomp holds each code point's one-step canonical decomposition as it
// appears in UnicodeData.txt, i.e. not yet expanded to a fixed point. It is
// the source both for the composition pairs (every length-2 entry not in
// compositionExcluded is a primary composite) and, after recursive
// expansion, for the decomposition table proper.
//
// This is a hand-selected subset of Unicode 16.0's canonical decompositions
// covering ASCII-adjacent Latin-1 letters, the Greek tonos precomposed
// letters, and the s-with-dot letters used to exercise multi-step
// composition (see norm_test.go); it is not the full UCD.
// The offline generator that would produce the complete table from UCD
// files is out of scope per spec.md §1; see DESIGN.md.
var rawDecomp = map[rune][]rune{
	0x00C0: {0x0041, 0x0300}, 0x00C1: {0x0041, 0x0301}, 0x00C2: {0x0041, 0x0302},
	0x00C3: {0x0041, 0x0303}, 0x00C4: {0x0041, 0x0308}, 0x00C5: {0x0041, 0x030A},
	0x00C7: {0x0043, 0x0327},
	0x00C8: {0x0045, 0x0300}, 0x00C9: {0x0045, 0x0301}, 0x00CA: {0x0045, 0x0302}, 0x00CB: {0x0045, 0x0308},
	0x00CC: {0x0049, 0x0300}, 0x00CD: {0x0049, 0x0301}, 0x00CE: {0x0049, 0x0302}, 0x00CF: {0x0049, 0x0308},
	0x00D1: {0x004E, 0x0303},
	0x00D2: {0x004F, 0x0300}, 0x00D3: {0x004F, 0x0301}, 0x00D4: {0x004F, 0x0302},
	0x00D5: {0x004F, 0x0303}, 0x00D6: {0x004F, 0x0308},
	0x00D9: {0x0055, 0x0300}, 0x00DA: {0x0055, 0x0301}, 0x00DB: {0x0055, 0x0302}, 0x00DC: {0x0055, 0x0308},
	0x00DD: {0x0059, 0x0301},
	0x00E0: {0x0061, 0x0300}, 0x00E1: {0x0061, 0x0301}, 0x00E2: {0x0061, 0x0302},
	0x00E3: {0x0061, 0x0303}, 0x00E4: {0x0061, 0x0308}, 0x00E5: {0x0061, 0x030A},
	0x00E7: {0x0063, 0x0327},
	0x00E8: {0x0065, 0x0300}, 0x00E9: {0x0065, 0x0301}, 0x00EA: {0x0065, 0x0302}, 0x00EB: {0x0065, 0x0308},
	0x00EC: {0x0069, 0x0300}, 0x00ED: {0x0069, 0x0301}, 0x00EE: {0x0069, 0x0302}, 0x00EF: {0x0069, 0x0308},
	0x00F1: {0x006E, 0x0303},
	0x00F2: {0x006F, 0x0300}, 0x00F3: {0x006F, 0x0301}, 0x00F4: {0x006F, 0x0302},
	0x00F5: {0x006F, 0x0303}, 0x00F6: {0x006F, 0x0308},
	0x00F9: {0x0075, 0x0300}, 0x00FA: {0x0075, 0x0301}, 0x00FB: {0x0075, 0x0302}, 0x00FC: {0x0075, 0x0308},
	0x00FD: {0x0079, 0x0301}, 0x00FF: {0x0079, 0x0308},

	// Greek tonos precomposed letters (used by the βόλος conformance vector).
	0x0386: {0x0391, 0x0301}, 0x0388: {0x0395, 0x0301}, 0x0389: {0x0397, 0x0301},
	0x038A: {0x0399, 0x0301}, 0x038C: {0x039F, 0x0301}, 0x038E: {0x03A5, 0x0301},
	0x038F: {0x03A9, 0x0301},
	0x03AC: {0x03B1, 0x0301}, 0x03AD: {0x03B5, 0x0301}, 0x03AE: {0x03B7, 0x0301},
	0x03AF: {0x03B9, 0x0301}, 0x03CA: {0x03B9, 0x0308}, 0x03CB: {0x03C5, 0x0308},
	0x0390: {0x03CA, 0x0301}, 0x03B0: {0x03CB, 0x0301},
	0x03CC: {0x03BF, 0x0301}, 0x03CD: {0x03C5, 0x0301}, 0x03CE: {0x03C9, 0x0301},
	0x0344: {0x0308, 0x0301}, // combining Greek dialytika tonos; see compositionExcluded

	// s with dot above/below, and combined, upper and lower case: exercises
	// two-step composition (s -> s+dot-below -> s+dot-below+dot-above).
	0x1E60: {0x0053, 0x0307}, 0x1E62: {0x0053, 0x0323}, 0x1E68: {0x1E62, 0x0307},
	0x1E61: {0x0073, 0x0307}, 0x1E63: {0x0073, 0x0323}, 0x1E69: {0x1E63, 0x0307},
}

// compositionExcluded lists code points whose rawDecomp entry must not be
// turned into a composition pair, even though it is length 2 (Unicode's
// CompositionExclusions.txt / full composition exclusions). U+0344 COMBINING
// GREEK DIALYTIKA TONOS is the standard textbook example: 0308+0301 does not
// recompose to 0344.
var compositionExcluded = map[rune]bool{
	0x0344: true,
}

// ccc holds the canonical combining class (Unicode Standard, 3.11) of every
// code point with a nonzero class that this module's tests exercise: the
// Combining Diacritical Marks from U+0300 through U+0345, which include the
// s-with-dot marks above. Unlisted code points default to 0 (starter).
var ccc = map[rune]byte{
	0x0300: 230, 0x0301: 230, 0x0302: 230, 0x0303: 230, 0x0304: 230,
	0x0305: 230, 0x0306: 230, 0x0307: 230, 0x0308: 230, 0x0309: 230,
	0x030A: 230, 0x030B: 230, 0x030C: 230, 0x030D: 230, 0x030E: 230,
	0x030F: 230, 0x0310: 230, 0x0311: 230, 0x0312: 230, 0x0313: 230,
	0x0314: 230, 0x0315: 232, 0x0316: 220, 0x0317: 220, 0x0318: 220,
	0x0319: 220, 0x031A: 232, 0x031B: 216, 0x031C: 220, 0x031D: 220,
	0x031E: 220, 0x031F: 220, 0x0320: 220, 0x0321: 202, 0x0322: 202,
	0x0323: 220, 0x0324: 220, 0x0325: 220, 0x0326: 220, 0x0327: 202,
	0x0328: 202, 0x0329: 220, 0x032A: 220, 0x032B: 220, 0x032C: 220,
	0x032D: 220, 0x032E: 220, 0x032F: 220, 0x0330: 220, 0x0331: 220,
	0x0332: 220, 0x0333: 220, 0x0334: 1, 0x0335: 1, 0x0336: 1,
	0x0337: 1, 0x0338: 1, 0x0339: 220, 0x033A: 220, 0x033B: 220,
	0x033C: 220, 0x033D: 230, 0x033E: 230, 0x033F: 230, 0x0340: 230,
	0x0341: 230, 0x0342: 230, 0x0343: 230, 0x0344: 230, 0x0345: 240,
}

func ccLookup(cp rune) byte { return cccTable.lookup(cp) }

// CCLookup exports the canonical combining class lookup for consumers
// outside this package that need it directly, such as the CONTEXTJ Virama
// check (RFC 5892) in the idna package.
func CCLookup(cp rune) byte { return ccLookup(cp) }

// expand recursively replaces every code point in a raw decomposition with
// its own decomposition, to a fixed point, so the compiled table never
// needs to recurse at lookup time (spec.md §3 invariant 3).
func expand(cp rune, seen map[rune]bool) []rune {
	parts, ok := rawDecomp[cp]
	if !ok {
		return []rune{cp}
	}
	if seen[cp] {
		// Defensive: rawDecomp is hand-authored and must not cycle.
		return []rune{cp}
	}
	seen[cp] = true
	var out []rune
	for _, p := range parts {
		out = append(out, expand(p, seen)...)
	}
	delete(seen, cp)
	return out
}

// decompChars is the shared array that decomposition descriptors index
// into; decompTable.lookup(cp) yields a descriptor encoding (length, offset)
// per spec.md §3.
var decompChars []rune

// compData is the shared (key, value) array that composition descriptors
// index into, sorted by key within each starter's run so composeWith can
// binary search it.
type compEntry struct {
	key rune
	val rune
}

var compData []compEntry

var (
	cccTable   *byteTrie
	decompTable *uint16Trie
	compTable  *uint16Trie
)

func init() {
	// Build the fully expanded decomposition table and its shared array.
	decompEntries := map[rune]uint16{}
	// Stable order keeps compiled output deterministic across runs.
	var cps []rune
	for cp := range rawDecomp {
		cps = append(cps, cp)
	}
	sortRunes(cps)
	for _, cp := range cps {
		full := expand(cp, map[rune]bool{})
		if len(full) == 1 && full[0] == cp {
			continue // no actual decomposition (shouldn't happen here)
		}
		offset := len(decompChars)
		decompChars = append(decompChars, full...)
		if len(full) > 0xF || offset > 0xFFF {
			panic("norm: decomposition descriptor overflow")
		}
		decompEntries[cp] = uint16(len(full))<<12 | uint16(offset)
	}
	decompTable = buildUint16Trie(6, decompEntries, 0)

	// Build the composition table from the one-step decompositions.
	byStarter := map[rune][]compEntry{}
	for _, cp := range cps {
		parts := rawDecomp[cp]
		if len(parts) != 2 || compositionExcluded[cp] {
			continue
		}
		l, v := parts[0], parts[1]
		byStarter[l] = append(byStarter[l], compEntry{key: v, val: cp})
	}
	compEntries := map[rune]uint16{}
	for l, entries := range byStarter {
		sortCompEntries(entries)
		offset := len(compData)
		compData = append(compData, entries...)
		if len(entries) > 0x1F || offset > 0x7FF {
			panic("norm: composition descriptor overflow")
		}
		compEntries[l] = uint16(len(entries))<<11 | uint16(offset)
	}
	compTable = buildUint16Trie(5, compEntries, 0)

	// Build the ccc table.
	cccTable = buildByteTrie(5, ccc, 0)
}

func sortRunes(s []rune) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func sortCompEntries(s []compEntry) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1].key > s[j].key; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func decompositionOf(cp rune) []rune {
	d := decompTable.lookup(cp)
	if d == 0 {
		return nil
	}
	length := int(d >> 12)
	offset := int(d & 0xFFF)
	return decompChars[offset : offset+length]
}

func compositionEntriesOf(l rune) []compEntry {
	d := compTable.lookup(l)
	if d == 0 {
		return nil
	}
	count := int(d >> 11)
	offset := int(d & 0x7FF)
	return compData[offset : offset+count]
}
