// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

func TestFormTransform(t *testing.T) {
	tests := []struct {
		in, out string
		eof     bool
		dstSize int
		err     error
	}{
		{"ab", "ab", true, 2, nil},
		{"", "", true, 1, nil},
		{"", "", false, 1, nil},
		{"Å", "Å", true, 8, nil},
		{"ô", "ô", true, 8, nil}, // already normalized, unchanged

		// Destination too small for the normalized result.
		{"Å", "", true, 1, ErrShortDst},
	}
	buf := make([]byte, 100)
	for i, tt := range tests {
		nDst, _, err := FormNFC.Transform(buf[:tt.dstSize], []byte(tt.in), tt.eof)
		out := string(buf[:nDst])
		if err != tt.err {
			t.Errorf("%d: err = %v, want %v", i, err, tt.err)
			continue
		}
		if err == nil && out != tt.out {
			t.Errorf("%d: Transform(%q) = %q, want %q", i, tt.in, out, tt.out)
		}
	}
}

func TestFormTransformIncompleteRune(t *testing.T) {
	in := []byte("a\xC3") // trailing incomplete two-byte sequence
	buf := make([]byte, 10)
	nDst, nSrc, err := FormNFC.Transform(buf, in, false)
	if err != ErrShortSrc {
		t.Fatalf("err = %v, want ErrShortSrc", err)
	}
	if nSrc != 1 || string(buf[:nDst]) != "a" {
		t.Fatalf("got (%d, %q), want (1, %q)", nSrc, buf[:nDst], "a")
	}
}

func TestFormTransformViaTransformer(t *testing.T) {
	var tr Transformer = FormNFC
	dst := make([]byte, 16)
	nDst, nSrc, err := tr.Transform(dst, []byte("é"), true)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if nSrc != len("é") {
		t.Fatalf("nSrc = %d, want %d", nSrc, len("é"))
	}
	if got, want := string(dst[:nDst]), "é"; got != want {
		t.Fatalf("Transform(%q) = %q, want %q", "é", got, want)
	}
}
