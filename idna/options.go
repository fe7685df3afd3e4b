// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// Options is a bitmask of processing flags. The numeric values are part of
// this package's stable interface: callers may persist a mask and replay it
// against a later version of this package.
type Options uint32

const (
	UseSTD3ASCIIRules Options = 0x0001
	Transitional      Options = 0x0002
	VerifyDNSLength   Options = 0x0004
	CheckHyphens      Options = 0x0008
	CheckBidi         Options = 0x0010
	CheckJoiners      Options = 0x0020
	InputASCII        Options = 0x1000
)

func (o Options) has(f Options) bool { return o&f != 0 }

// Option configures a Profile via New.
type Option func(*Options)

// WithUseSTD3ASCIIRules toggles UseSTD3ASCIIRules.
func WithUseSTD3ASCIIRules(b bool) Option {
	return func(o *Options) { setFlag(o, UseSTD3ASCIIRules, b) }
}

// WithTransitional toggles Transitional processing (e.g. ß -> ss).
func WithTransitional(b bool) Option {
	return func(o *Options) { setFlag(o, Transitional, b) }
}

// WithVerifyDNSLength toggles the DNS length checks ToASCII applies.
func WithVerifyDNSLength(b bool) Option {
	return func(o *Options) { setFlag(o, VerifyDNSLength, b) }
}

// WithCheckHyphens toggles the V2/V3 hyphen-position rules.
func WithCheckHyphens(b bool) Option {
	return func(o *Options) { setFlag(o, CheckHyphens, b) }
}

// WithCheckBidi toggles the V8 bidirectional-text rules.
func WithCheckBidi(b bool) Option {
	return func(o *Options) { setFlag(o, CheckBidi, b) }
}

// WithCheckJoiners toggles the V7 CONTEXTJ rules.
func WithCheckJoiners(b bool) Option {
	return func(o *Options) { setFlag(o, CheckJoiners, b) }
}

// WithInputASCII tells a Profile the input is already known to be ASCII,
// enabling the fast path that bypasses the property table.
func WithInputASCII(b bool) Option {
	return func(o *Options) { setFlag(o, InputASCII, b) }
}

// ValidateLabels enables the hyphen, joiner, and STD3 validity checks
// together (CheckHyphens | CheckJoiners | UseSTD3ASCIIRules), matching the
// combination most callers performing strict domain validation want.
func ValidateLabels(b bool) Option {
	return func(o *Options) {
		setFlag(o, CheckHyphens, b)
		setFlag(o, CheckJoiners, b)
		setFlag(o, UseSTD3ASCIIRules, b)
	}
}

func setFlag(o *Options, f Options, b bool) {
	if b {
		*o |= f
	} else {
		*o &^= f
	}
}
