// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

// buecher is "Bücher" spelled with an explicit rune value for ü (U+00FC)
// rather than a pasted glyph, so the byte sequence is unambiguous.
var buecher = string([]rune{'B', 0x00FC, 'c', 'h', 'e', 'r'}) + ".example"

// volos is the Greek label "βόλος" built from explicit code points.
var volos = string([]rune{0x03B2, 0x03CC, 0x03BB, 0x03BF, 0x03C2})

// eszettDomain returns "faß.de" with U+00DF SHARP S built explicitly.
func eszettDomain() string {
	return string([]rune{'f', 'a', 0x00DF}) + ".de"
}

func TestBucherRoundTrip(t *testing.T) {
	p := New(WithCheckBidi(true), WithCheckJoiners(true), WithUseSTD3ASCIIRules(true), WithVerifyDNSLength(true))

	ascii, err := p.ToASCII(buecher)
	if err != nil {
		t.Fatalf("ToASCII(%q): %v", buecher, err)
	}
	if want := "xn--bcher-kva.example"; ascii != want {
		t.Errorf("ToASCII(%q) = %q, want %q", buecher, ascii, want)
	}

	uni, err := p.ToUnicode(ascii)
	if err != nil {
		t.Fatalf("ToUnicode(%q): %v", ascii, err)
	}
	if want := string([]rune{'b', 0x00FC, 'c', 'h', 'e', 'r'}) + ".example"; uni != want {
		t.Errorf("ToUnicode(%q) = %q, want %q", ascii, uni, want)
	}
}

func TestTransitionalSharpS(t *testing.T) {
	nonTransitional := New()
	transitional := New(WithTransitional(true))

	if got, err := nonTransitional.ToASCII("fass.de"); err != nil || got != "fass.de" {
		t.Errorf("ToASCII(fass.de) = %q, %v, want fass.de, nil", got, err)
	}

	ess := eszettDomain()
	if got, err := nonTransitional.ToASCII(ess); err != nil || got != "xn--fa-hia.de" {
		t.Errorf("ToASCII(%q) non-transitional = %q, %v, want xn--fa-hia.de, nil", ess, got, err)
	}
	if got, err := transitional.ToASCII(ess); err != nil || got != "fass.de" {
		t.Errorf("ToASCII(%q) transitional = %q, %v, want fass.de, nil", ess, got, err)
	}
}

func TestTransitionalCapitalSharpSToUnicode(t *testing.T) {
	transitional := New(WithTransitional(true))

	// U+1E9E LATIN CAPITAL LETTER SHARP S maps to "ss" under Transitional
	// regardless of direction; ToUnicode must apply the same override as
	// ToASCII rather than falling through to the table's ordinary Mapped
	// target (ß).
	capitalSharpS := string([]rune{'g', 0x1E9E}) + ".example"
	got, err := transitional.ToUnicode(capitalSharpS)
	if err != nil {
		t.Fatalf("ToUnicode(%q): %v", capitalSharpS, err)
	}
	if want := "gss.example"; got != want {
		t.Errorf("ToUnicode(%q) = %q, want %q", capitalSharpS, got, want)
	}
}

func TestVolosDecode(t *testing.T) {
	p := New()
	ace := "xn--nxasmm1c.example"

	uni, err := p.ToUnicode(ace)
	if err != nil {
		t.Fatalf("ToUnicode(%q): %v", ace, err)
	}
	if want := volos + ".example"; uni != want {
		t.Errorf("ToUnicode(%q) = %q, want %q", ace, uni, want)
	}

	ascii, err := p.ToASCII(ace)
	if err != nil {
		t.Fatalf("ToASCII(%q): %v", ace, err)
	}
	if ascii != ace {
		t.Errorf("ToASCII(%q) round trip = %q, want %q", ace, ascii, ace)
	}
}

func TestCheckHyphens(t *testing.T) {
	p := New(WithCheckHyphens(true))

	cases := []struct {
		domain string
		wantOK bool
	}{
		{"a.b-c", true},
		{"-a.b", false},
		{"ab--cd.e", false},
	}
	for _, c := range cases {
		_, err := p.ToASCII(c.domain)
		gotOK := err == nil
		if gotOK != c.wantOK {
			t.Errorf("ToASCII(%q) ok = %v, want %v (err = %v)", c.domain, gotOK, c.wantOK, err)
		}
	}
}

func TestBareOrShortACE(t *testing.T) {
	p := New()

	if _, err := p.ToASCII("xn--"); err == nil {
		t.Error(`ToASCII("xn--") = nil error, want failure`)
	}
	if _, err := p.ToASCII("xn--a-"); err == nil {
		t.Error(`ToASCII("xn--a-") = nil error, want failure`)
	}

	uni, err := p.ToUnicode("xn--a-")
	if err == nil {
		t.Error(`ToUnicode("xn--a-") = nil error, want failure (error flag set)`)
	}
	if uni != "a" {
		t.Errorf(`ToUnicode("xn--a-") = %q, want "a"`, uni)
	}
}

func TestEmptyLabelDNSLength(t *testing.T) {
	verify := New(WithVerifyDNSLength(true))
	noVerify := New()

	if _, err := verify.ToASCII("a..b"); err == nil {
		t.Error(`ToASCII("a..b") with VerifyDnsLength = nil error, want failure`)
	}

	uni, err := noVerify.ToUnicode("a..b")
	if err != nil {
		t.Errorf(`ToUnicode("a..b") without VerifyDnsLength: %v`, err)
	}
	if uni != "a..b" {
		t.Errorf(`ToUnicode("a..b") = %q, want "a..b"`, uni)
	}
}

func TestTrailingRootDNSLength(t *testing.T) {
	p := New(WithVerifyDNSLength(true))

	if _, err := p.ToASCII("example."); err != nil {
		t.Errorf(`ToASCII("example.") with VerifyDnsLength: %v, want nil`, err)
	}
}

func TestCannedProfiles(t *testing.T) {
	if _, err := Resolve.ToASCII("example.com"); err != nil {
		t.Errorf("Resolve.ToASCII(example.com): %v", err)
	}
	if _, err := Display.ToUnicode("example.com"); err != nil {
		t.Errorf("Display.ToUnicode(example.com): %v", err)
	}
	if _, err := Registration.ToASCII("example.com"); err != nil {
		t.Errorf("Registration.ToASCII(example.com): %v", err)
	}
}

func TestCheckJoinersZWNJ(t *testing.T) {
	p := New(WithCheckJoiners(true))

	// beh (dual-joining) ZWNJ heh (dual-joining): valid context, a D run on
	// both sides of the joiner.
	ok := string([]rune{0x0628, 0x200C, 0x0647})
	if _, err := p.ToASCII(ok); err != nil {
		t.Errorf("ToASCII(%U) = %v, want nil", []rune(ok), err)
	}

	// reh (right-joining only) ZWNJ reh: reh cannot open a D|L run before
	// the joiner, so this context is invalid.
	bad := string([]rune{0x0631, 0x200C, 0x0631})
	if _, err := p.ToASCII(bad); err == nil {
		t.Errorf("ToASCII(%U) = nil error, want V7 failure", []rune(bad))
	}
}

func TestCheckBidiRTLLabel(t *testing.T) {
	p := New(WithCheckBidi(true))

	rtl := string([]rune{0x05D0, 0x05DC}) + ".example" // alef lamed
	if _, err := p.ToASCII(rtl); err != nil {
		t.Errorf("ToASCII(%q) = %v, want nil", rtl, err)
	}

	// An RTL label mixing an Arabic-Indic digit (AN) with a European digit
	// (EN) violates V8: a label can't contain both.
	mixed := string([]rune{0x0627, 0x0660, '5'}) + ".example"
	if _, err := p.ToASCII(mixed); err == nil {
		t.Error(`ToASCII with mixed AN/EN in an RTL label = nil error, want V8 failure`)
	}
}

func TestCheckBidiDomainWide(t *testing.T) {
	p := New(WithCheckBidi(true))

	// The first label is RTL, so the whole domain is bidi (V8's domain-wide
	// rule); an LTR label ending in a bidi-class-less rune (the Arabic
	// transparent mark, which carries no L/EN/NSM bidi bit) then fails V8
	// even though it would be fine in a purely LTR domain.
	domain := string([]rune{0x05D0}) + "." + string([]rune{'a', 0x064B})
	if _, err := p.ToASCII(domain); err == nil {
		t.Error(`ToASCII with a trailing bidi-class-less rune in a bidi domain = nil error, want V8 failure`)
	}
}

func TestInputASCIIFastPath(t *testing.T) {
	p := New(WithInputASCII(true), WithUseSTD3ASCIIRules(true))

	got, err := p.ToASCII("EXAMPLE.COM")
	if err != nil {
		t.Fatalf("ToASCII(EXAMPLE.COM): %v", err)
	}
	if got != "example.com" {
		t.Errorf("ToASCII(EXAMPLE.COM) = %q, want example.com", got)
	}

	if _, err := p.ToASCII("a_b.com"); err == nil {
		t.Error(`ToASCII("a_b.com") with UseSTD3ASCIIRules and InputASCII = nil error, want failure`)
	}
}
