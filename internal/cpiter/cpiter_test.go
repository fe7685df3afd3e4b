// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpiter

import "testing"

func collectUTF8(s string) []rune {
	var out []rune
	for it := NewUTF8(s); !it.Done(); {
		out = append(out, it.Next())
	}
	return out
}

func TestUTF8(t *testing.T) {
	cases := []struct {
		in   string
		want []rune
	}{
		{"abc", []rune{'a', 'b', 'c'}},
		{"", nil},
		{string([]rune{0x00FC, 0x4E2D}), []rune{0x00FC, 0x4E2D}},
	}
	for _, c := range cases {
		got := collectUTF8(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("collectUTF8(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("collectUTF8(%q)[%d] = %U, want %U", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestUTF16SurrogatePair(t *testing.T) {
	// U+1F600, encoded as the surrogate pair D83D DE00.
	it := NewUTF16([]uint16{0xD83D, 0xDE00})
	got := it.Next()
	if got != 0x1F600 {
		t.Errorf("Next() = %U, want U+1F600", got)
	}
	if !it.Done() {
		t.Error("Done() = false after consuming the only pair")
	}
}

func TestUTF16UnpairedSurrogate(t *testing.T) {
	it := NewUTF16([]uint16{0xD83D, 'a'})
	got := it.Next()
	if got != 0xD83D {
		t.Errorf("Next() = %U, want the unpaired lead surrogate U+D83D", got)
	}
	if it.Next() != 'a' {
		t.Error("unpaired lead surrogate consumed the following code unit")
	}
}

func TestUTF32(t *testing.T) {
	in := []rune{'x', 0x1F600}
	it := NewUTF32(in)
	for _, want := range in {
		if got := it.Next(); got != want {
			t.Errorf("Next() = %U, want %U", got, want)
		}
	}
	if !it.Done() {
		t.Error("Done() = false after consuming all code points")
	}
}
