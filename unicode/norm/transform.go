// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"errors"
	"unicode/utf8"
)

// ErrShortDst means the destination buffer was too short to receive all of
// the normalized bytes.
var ErrShortDst = errors.New("norm: short destination buffer")

// ErrShortSrc means src ends in an incomplete UTF-8 sequence and more bytes
// are needed to complete it.
var ErrShortSrc = errors.New("norm: short source buffer")

// Transformer is the single-method interface this package's streaming
// adapters (Transform) satisfy, matching the shape charset- and
// collation-style byte transformers in the wider ecosystem use so a Form
// can be dropped into anything that composes against that interface.
type Transformer interface {
	Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error)
}

// Transform implements Transformer for Form. Unlike golang.org/x/text's
// segment-at-a-time streaming transform, this one normalizes whatever
// complete, well-formed UTF-8 prefix of src is available and reports
// ErrShortSrc for any incomplete trailing rune, since this package's
// compose/decompose pipeline already operates over a fully materialized
// rune slice rather than a reorder buffer. Callers that need true
// incremental streaming over arbitrarily split chunks should buffer at rune
// boundaries before calling Transform.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	complete := true
	if n > 0 {
		if r, size := utf8.DecodeLastRune(src); r == utf8.RuneError && size <= 1 && !atEOF {
			n = len(src) - size
			complete = false
		}
	}
	out := []byte(NFCString(string(src[:n])))
	if len(out) > len(dst) {
		return 0, 0, ErrShortDst
	}
	copy(dst, out)
	if !complete {
		err = ErrShortSrc
	}
	return len(out), n, err
}
