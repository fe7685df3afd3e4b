// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Idnaconv converts domain names between their Unicode and ASCII-compatible
// (Punycode) representations using IDNA2008/UTS #46 processing.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gocharset/idna46/idna"
)

var (
	toUnicode  = flag.Bool("u", false, "convert to Unicode instead of ASCII")
	transitional = flag.Bool("transitional", false, "use transitional (IDNA2003-compatible) mapping")
	verifyDNS  = flag.Bool("verify-dns-length", false, "reject labels or domains that violate DNS length limits")
	std3       = flag.Bool("std3", false, "restrict output to LDH (STD3 ASCII) rules")
	checkHyphens = flag.Bool("check-hyphens", false, "enforce hyphen placement rules")
	checkBidi  = flag.Bool("check-bidi", false, "enforce bidirectional text rules")
	checkJoiners = flag.Bool("check-joiners", false, "enforce ZWNJ/ZWJ context rules")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("idnaconv: ")
	flag.Parse()

	p := idna.New(
		idna.WithTransitional(*transitional),
		idna.WithVerifyDNSLength(*verifyDNS),
		idna.WithUseSTD3ASCIIRules(*std3),
		idna.WithCheckHyphens(*checkHyphens),
		idna.WithCheckBidi(*checkBidi),
		idna.WithCheckJoiners(*checkJoiners),
	)

	args := flag.Args()
	if len(args) == 0 {
		runFilter(p, os.Stdin, os.Stdout)
		return
	}

	status := 0
	for _, a := range args {
		out, err := convert(p, a)
		fmt.Println(out)
		if err != nil {
			log.Printf("%s: %v", a, err)
			status = 1
		}
	}
	os.Exit(status)
}

func convert(p *idna.Profile, domain string) (string, error) {
	if *toUnicode {
		return p.ToUnicode(domain)
	}
	return p.ToASCII(domain)
}

func runFilter(p *idna.Profile, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	status := 0
	for scanner.Scan() {
		converted, err := convert(p, scanner.Text())
		fmt.Fprintln(w, converted)
		if err != nil {
			log.Printf("%s: %v", scanner.Text(), err)
			status = 1
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
	w.Flush()
	os.Exit(status)
}
