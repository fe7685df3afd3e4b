// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package idna implements IDNA 2008 using the processing defined by UTS #46
// (Unicode Technical Standard #46), the standard for converting between a
// domain name's Unicode representation and its ASCII-compatible encoding
// over the DNS wire format.
//
// IDNA2008 is defined in RFC 5890, RFC 5891, RFC 5892, RFC 5893, and RFC
// 5894; UTS #46 is at http://www.unicode.org/reports/tr46.
package idna

import (
	"strings"

	"github.com/gocharset/idna46/punycode"
)

// A Profile bundles a fixed Options mask for repeated use.
type Profile struct {
	opts Options
}

// New creates a Profile from a set of Options.
func New(o ...Option) *Profile {
	var opts Options
	for _, f := range o {
		f(&opts)
	}
	return &Profile{opts: opts}
}

var (
	// Resolve is the recommended profile for resolving domain names that
	// may still be in legacy (IDNA2003) form.
	Resolve = New(WithTransitional(true))

	// Display is the recommended profile for displaying domain names to
	// a user, preferring the non-transitional mapping.
	Display = New(ValidateLabels(true), WithCheckBidi(true))

	// Registration is the recommended profile for checking whether a
	// domain name may be registered, applying every validity check this
	// package implements.
	Registration = New(
		ValidateLabels(true), WithCheckBidi(true), WithVerifyDNSLength(true),
	)
)

// ToASCII converts a domain name to its ASCII-compatible encoding,
// implementing to_ascii(input, options).
func (p *Profile) ToASCII(s string) (string, error) {
	return p.process(s, true)
}

// ToUnicode converts a domain name to its Unicode representation,
// implementing to_unicode(input, options). Validation failures do not
// suppress the output; they are only reported via the returned error.
func (p *Profile) ToUnicode(s string) (string, error) {
	return p.process(s, false)
}

func (p *Profile) process(s string, toASCII bool) (string, error) {
	mapped, err := mapDomain(s, p.opts, toASCII)

	labels := strings.Split(mapped, ".")
	decoded := make([][]rune, len(labels))
	// aceHardFail marks labels the ICU-compatibility special case rejects
	// outright (a bare "xn--" or a short/mistrimmed ACE label), which still
	// get their best-effort Punycode decode for to_unicode output, and ACE
	// labels whose Punycode decode fails, which keep their original text.
	// Either way the overall result is forced to an error.
	aceHardFail := make([]bool, len(labels))

	for i, label := range labels {
		if strings.HasPrefix(label, acePrefix) {
			if isBareOrShortACE(label) {
				aceHardFail[i] = true
			}
			runes, st := punycode.Decode(label[len(acePrefix):])
			if st != punycode.Success {
				aceHardFail[i] = true
				decoded[i] = []rune(label)
				continue
			}
			decoded[i] = runes
		} else {
			decoded[i] = []rune(label)
		}
	}

	bs := newBidiState(decoded)
	for i, label := range labels {
		if aceHardFail[i] && err == nil {
			err = &labelError{label, "A4"}
		}
		fullCheck := strings.HasPrefix(label, acePrefix)
		validateOpts := p.opts
		if fullCheck {
			validateOpts &^= Transitional
		}
		if verr := validateLabel(decoded[i], validateOpts, fullCheck, bs); verr != nil && err == nil {
			err = verr
		}
	}

	if toASCII {
		encoded := make([]string, len(labels))
		for i, label := range labels {
			if hasNonASCII(label) {
				ace, st := punycode.Encode([]rune(label))
				if st != punycode.Success && err == nil {
					err = &labelError{label, "A3"}
				}
				encoded[i] = acePrefix + ace
			} else {
				encoded[i] = label
			}
		}
		result := strings.Join(encoded, ".")
		if p.opts.has(VerifyDNSLength) {
			if !verifyDNSLength(encoded) && err == nil {
				err = &labelError{result, "A4"}
			}
		}
		return result, err
	}

	unicodeLabels := make([]string, len(labels))
	for i, label := range labels {
		if strings.HasPrefix(label, acePrefix) {
			unicodeLabels[i] = string(decoded[i])
		} else {
			unicodeLabels[i] = label
		}
	}
	result := strings.Join(unicodeLabels, ".")
	return result, err
}

// isBareOrShortACE implements the ICU-compatibility special case: a label
// that is exactly "xn--", or that ends in a hyphen with a total length
// other than 5 (e.g. "xn--a-"), is a hard to_ascii failure rather than
// something Punycode itself would reject.
func isBareOrShortACE(label string) bool {
	if label == acePrefix {
		return true
	}
	if strings.HasSuffix(label, "-") && len(label) != 5 {
		return true
	}
	return false
}

func hasNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return false
}

func verifyDNSLength(labels []string) bool {
	if len(labels) == 0 {
		return false
	}
	total := 0
	for i, l := range labels {
		isTrailingRoot := i == len(labels)-1 && l == ""
		if isTrailingRoot {
			continue
		}
		if len(l) < 1 || len(l) > 63 {
			return false
		}
		if total > 0 {
			total++ // the joining dot
		}
		total += len(l)
	}
	if total < 1 || total > 253 {
		return false
	}
	return true
}
