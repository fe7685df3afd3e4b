// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"

	"github.com/gocharset/idna46/internal/cpiter"
	"github.com/gocharset/idna46/unicode/norm"
)

// mapASCIIFast is the per-byte fast path used when the caller asserts the
// input is ASCII (InputASCII): it skips the property table entirely and,
// for to_ascii, rejects underscore unless STD3 rules are off.
func mapASCIIFast(s string, opts Options, toASCII bool) (string, error) {
	var err error
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch classifyASCII(c) {
		case acMapped:
			b.WriteByte(c + ('a' - 'A'))
		case acDisallowedSTD3:
			if toASCII && opts.has(UseSTD3ASCIIRules) && err == nil {
				err = runeError(c)
			}
			b.WriteByte(c)
		case acDisallowed:
			if err == nil {
				err = runeError(c)
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), err
}

// mapDomain implements the per-code-point mapping step described for
// component E, followed by NFC normalization of the result. It returns the
// mapped (and normalized) string and the first disallowed-code-point error
// encountered, if any.
func mapDomain(s string, opts Options, toASCII bool) (string, error) {
	if opts.has(InputASCII) {
		mapped, err := mapASCIIFast(s, opts, toASCII)
		return mapped, err // ASCII is already NFC; skip normalization.
	}

	var err error
	var runes []rune
	for it := cpiter.NewUTF8(s); !it.Done(); {
		cp := it.Next()
		st := lookupStatus(cp)

		if st.isSTD3() && opts.has(UseSTD3ASCIIRules) {
			// Disallowed_STD3_* under UseSTD3ASCIIRules: treat as a plain
			// disallowed code point (fall through to the Disallowed case
			// below by overriding the class check).
			if toASCII && isNFCComposable(cp) && err == nil {
				err = runeError(cp)
			}
			runes = append(runes, cp)
			continue
		}

		switch {
		case st.isValid():
			runes = append(runes, cp)

		case st.isMapped():
			target := cp
			if opts.has(Transitional) && cp == 0x1E9E {
				runes = append(runes, 's', 's')
				continue
			}
			if st.hasOneMapping() {
				target = st.oneMapping()
				runes = append(runes, target)
			} else {
				runes = append(runes, manyMappings[cp]...)
			}

		case st.isDeviation():
			if opts.has(Transitional) {
				if m, many := manyMappings[cp]; many {
					runes = append(runes, m...)
				} else if st.hasOneMapping() {
					runes = append(runes, st.oneMapping())
				}
			} else {
				runes = append(runes, cp)
			}

		default: // Disallowed
			if toASCII && isNFCComposable(cp) && err == nil {
				err = runeError(cp)
			}
			runes = append(runes, cp)
		}
	}

	normalized := norm.NFC(runes)
	return string(normalized), err
}

// isNFCComposable would report whether cp is in the comp_disallowed /
// comp_disallowed_std3 sorted lists: disallowed code points that NFC could
// still fold into an allowed composite, letting to_ascii fail early rather
// than waiting for the label validator. Populating those lists requires
// walking the full UCD composition data for every disallowed code point,
// which is out of scope alongside the rest of the offline table generator
// (see DESIGN.md); this always returns false, which only ever defers a
// failure to the validator rather than masking one, so it costs an
// optimization, not correctness.
func isNFCComposable(cp rune) bool {
	return false
}
