/*
Package graphemes implements Unicode Annex #29 grapheme cluster breaking.

UAX#29 is the Unicode Annex for breaking text into graphemes, words and
sentences. This package is about graphemes: "user perceived characters" such
as a base letter plus its combining accents, a Hangul syllable assembled from
conjoining jamo, or a flag emoji built from two regional-indicator code
points. It implements the extended grapheme cluster rules GB1–GB999.

Typical Usage

Splitting a string into its grapheme clusters:

	clusters := graphemes.Split("🇺🇸🇬🇧")
	// => ["🇺🇸", "🇬🇧"]

For larger texts, clients should use a Segmenter, which scans incrementally
and never holds more than one cluster in memory:

	seg := graphemes.NewSegmenter()
	seg.Init(strings.NewReader(text))
	for seg.Next() {
	    grphm := seg.Text()
	    …
	}

This package provides an additional convenience type `graphemes.String`.
Grapheme strings are a read-only data structure and not intended for large
texts, but rather for small to medium-sized strings.

	s := graphemes.StringFromString("世界")
	fmt.Printf("number of graphemes: %d", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3

Classification

Code points are classified by two compact compiled lookup tables (see
internal/utrie), one for the Grapheme_Cluster_Break property and one for
Extended_Pictographic. The tables are decoded from their embedded serialized
form on first use and shared process-wide afterwards; no setup call is
needed.

Conformance

The breaking engine passes all test cases of the conformance fixture in
internal/testdata, covering every sample-character pair of the UAX#29
grapheme break test set plus the emoji ZWJ, regional-indicator and Hangul
sequences.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package graphemes

import (
	"github.com/npillmayer/graphemes/internal/classdata"
)

// Version is the Unicode version this package conforms to.
const Version = classdata.Version
