// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// status is the 32-bit packed IDNA status record described in the property
// table data model: a status class plus an optional mapping target in the
// low bits, and a set of category flags in the high bits recorded only for
// code points whose class permits them in a label.
type status uint32

// Status class, packed into bits 16-18. classSTD3 is a modifier bit (value
// 4) that combines with classValid or classMapped to produce the STD3
// variants; it never combines with classDeviation.
const (
	classDisallowed status = 0
	classValid      status = 1
	classMapped     status = 2
	classDeviation  status = 3
	classSTD3       status = 4

	classShift = 16
	classMask  = 0x7 // 3 bits: bits 16-18
)

// mapToOne, set in bit 15, means the low 15 bits hold a single BMP mapping
// target directly rather than a (length, offset) descriptor.
const (
	mapToOneBit status = 1 << 15
	mapMask     status = 0x7FFF // bits 0-14
)

// Category bits, 19-30. Bidi classes are mutually exclusive with each
// other, as are the joining types; every class and type has its own bit, so
// a code point may be simultaneously Mark, Virama, carry a joining type, and
// carry a bidi class.
const (
	catMark status = 1 << (19 + iota)
	catVirama
	joinD
	joinL
	joinR
	joinT
	bidiL
	bidiR_AL
	bidiAN
	bidiEN
	bidiES_CS_ET_ON_BN
	bidiNSM
)

func (s status) class() status { return (s >> classShift) & classMask }

func (s status) isSTD3() bool { return s.class()&classSTD3 != 0 }

func (s status) baseClass() status { return s.class() &^ classSTD3 }

func (s status) isValid() bool      { return s.baseClass() == classValid }
func (s status) isMapped() bool     { return s.baseClass() == classMapped }
func (s status) isDeviation() bool  { return s.class() == classDeviation }
func (s status) isDisallowed() bool { return s.baseClass() == classDisallowed }

func (s status) hasOneMapping() bool { return s&mapToOneBit != 0 }
func (s status) oneMapping() rune    { return rune(s & mapMask) }

func (s status) is(bit status) bool { return s&bit != 0 }

// bidiClass reports the single bidi category bit set on s, or 0 if none.
func (s status) bidiClass() status {
	return s & (bidiL | bidiR_AL | bidiAN | bidiEN | bidiES_CS_ET_ON_BN | bidiNSM)
}

// joinType reports the single joining-type bit set on s, or 0 if none.
func (s status) joinType() status {
	return s & (joinD | joinL | joinR | joinT)
}

// makeStatus packs a status class, category flags, and (for a single BMP
// mapping target) the target itself. Mappings to more than one code point
// cannot fit in the low 15 bits; those are looked up separately in
// manyMappings and the record built here simply omits mapToOneBit.
func makeStatus(class status, oneTarget rune, hasOne bool, cats status) status {
	s := status(class)<<classShift | cats
	if hasOne {
		s |= mapToOneBit | status(oneTarget)&mapMask
	}
	return s
}
