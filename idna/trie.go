// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// uint32Trie is the two-level block-indexed lookup table used for the IDNA
// status record: lookup(cp) computes cp>>blockShift to find a block id in
// blockIndex, then indexes that block by cp&blockMask. Code points at or
// beyond defaultStart return defaultValue without touching block data.
//
// The real package builds this table ahead of time with go:generate from
// the IdnaMappingTable.txt UCD file; that offline step is out of scope here
// (see DESIGN.md), so the table is compiled once, at init time, from the
// literal per-code-point records in tables.go. The resulting structure and
// bit layout is exactly what the generator would have produced.
type uint32Trie struct {
	blockShift   uint
	blockMask    rune
	defaultStart rune
	defaultValue uint32
	blocks       []uint32
	blockIndex   []uint16
}

func buildUint32Trie(shift uint, entries map[rune]uint32, deflt uint32, explicitStart, explicitEnd rune, explicitValue uint32) *uint32Trie {
	blockSize := rune(1) << shift
	mask := blockSize - 1

	defaultStart := rune(0)
	for cp := range entries {
		if cp+1 > defaultStart {
			defaultStart = cp + 1
		}
	}
	if explicitEnd+1 > defaultStart {
		defaultStart = explicitEnd + 1
	}
	defaultStart = (defaultStart + mask) &^ mask

	numBlocks := defaultStart >> shift
	raw := make([][]uint32, numBlocks)
	for i := range raw {
		raw[i] = make([]uint32, blockSize)
		for j := range raw[i] {
			raw[i][j] = deflt
		}
	}
	for cp := explicitStart; cp <= explicitEnd && explicitEnd >= explicitStart; cp++ {
		raw[cp>>shift][cp&mask] = explicitValue
	}
	for cp, v := range entries {
		raw[cp>>shift][cp&mask] = v
	}

	t := &uint32Trie{
		blockShift:   shift,
		blockMask:    mask,
		defaultStart: defaultStart,
		defaultValue: deflt,
		blockIndex:   make([]uint16, numBlocks),
	}
	seen := map[string]uint16{}
	for i, block := range raw {
		key := uint32Key(block)
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

func uint32Key(block []uint32) string {
	b := make([]byte, len(block)*4)
	for i, v := range block {
		b[4*i] = byte(v)
		b[4*i+1] = byte(v >> 8)
		b[4*i+2] = byte(v >> 16)
		b[4*i+3] = byte(v >> 24)
	}
	return string(b)
}

func (t *uint32Trie) lookup(cp rune) uint32 {
	if cp < 0 || cp >= t.defaultStart {
		return t.defaultValue
	}
	block := t.blockIndex[cp>>t.blockShift]
	return t.blocks[(rune(block)<<t.blockShift)|(cp&t.blockMask)]
}
