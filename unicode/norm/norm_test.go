// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

// Test vectors are built from explicit rune values rather than pasted
// Unicode text so that precomposed and decomposed forms that render
// identically on screen can't accidentally collide in the source file.
var (
	aRingComposed   = string([]rune{0x00C5})         // Å
	aRingDecomposed = string([]rune{0x0041, 0x030A}) // A + combining ring above
	oCircComposed   = string([]rune{0x00F4})         // ô
	sDotsComposed   = string([]rune{0x1E69})         // ṩ, fully precomposed
	sDotsDecomposed = string([]rune{0x0073, 0x0323, 0x0307})
	sDotsOneStep    = string([]rune{0x1E63, 0x0307}) // s-dot-below (precomposed) + dot-above
	tonosWord       = string([]rune{0x03B2, 0x03CC, 0x03BB, 0x03BF, 0x03C2}) // βόλος, already NFC
	hangulLVT       = string([]rune{0xAC01})                 // a single LVT syllable
	hangulLVTJamo   = string([]rune{0x1100, 0x1161, 0x11A8}) // decomposed L+V+T for the same syllable
	hangulLV        = string([]rune{0xAC00})                 // a single LV syllable
	hangulLVJamo    = string([]rune{0x1100, 0x1161})          // decomposed L+V for the same syllable
)

func TestNFCStringVectors(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{aRingDecomposed, aRingComposed},
		{aRingComposed, aRingComposed},
		{oCircComposed, oCircComposed}, // already composed, must not change
		{sDotsDecomposed, sDotsComposed},
		{sDotsOneStep, sDotsComposed},
		{"golang", "golang"},
		{tonosWord, tonosWord},
		{hangulLVTJamo, hangulLVT},
		{hangulLVJamo, hangulLV},
	}
	for _, c := range cases {
		if got := NFCString(c.in); got != c.want {
			t.Errorf("NFCString(%+q) = %+q, want %+q", c.in, got, c.want)
		}
	}
}

func TestNFCIdempotent(t *testing.T) {
	inputs := []string{
		aRingComposed, aRingDecomposed, sDotsComposed, sDotsDecomposed,
		tonosWord, "golang", "", hangulLVTJamo,
	}
	for _, in := range inputs {
		once := NFCString(in)
		twice := NFCString(once)
		if once != twice {
			t.Errorf("NFC not idempotent on %+q: NFC(x)=%+q, NFC(NFC(x))=%+q", in, once, twice)
		}
	}
}

func TestIsNormalizedNFC(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{aRingComposed, true},
		{aRingDecomposed, false},
		{oCircComposed, true},
		{"golang", true},
		{sDotsComposed, true},
		{sDotsDecomposed, false},
	}
	for _, c := range cases {
		if got := IsNormalizedNFCString(c.in); got != c.want {
			t.Errorf("IsNormalizedNFCString(%+q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormMethods(t *testing.T) {
	if got := FormNFC.String(aRingDecomposed); got != aRingComposed {
		t.Errorf("Form.String = %+q, want %+q", got, aRingComposed)
	}
	if got := string(FormNFC.Bytes([]byte(aRingDecomposed))); got != aRingComposed {
		t.Errorf("Form.Bytes = %+q, want %+q", got, aRingComposed)
	}
	if !FormNFC.IsNormalString(aRingComposed) {
		t.Error("IsNormalString(already composed) = false, want true")
	}
	if FormNFC.IsNormalString(aRingDecomposed) {
		t.Error("IsNormalString(decomposed) = true, want false")
	}
}
