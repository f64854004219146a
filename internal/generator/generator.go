/*
Generator for the compiled grapheme classification tables.

Contents

This program compiles the Grapheme_Cluster_Break and Extended_Pictographic
code-point properties into the serialized trie tables embedded by package
internal/classdata. Property input is read from UCD files in
internal/testdata/ucd:

	GraphemeBreakProperty.txt
	emoji-data.txt

For more information see http://unicode.org/reports/tr29/

Usage

The generator has two options, a "verbose" flag and the output directory.

	generator [-v] [-o internal/classdata]

This creates the files "grapheme.trie" and "extpict.trie" in the output
directory: base64-encoded serialized tries (see package internal/utrie for
the wire format). It is designed to be called from the repository root.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bytes"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/unicode/rangetable"

	"github.com/npillmayer/graphemes/internal/testdata"
	"github.com/npillmayer/graphemes/internal/ucdparse"
	"github.com/npillmayer/graphemes/internal/utrie"
)

var logger = log.New(os.Stderr, "classdata generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Classification bits, shared with the graphemes root package.
var classBits = map[string]uint32{
	"CR":                    1,
	"LF":                    2,
	"Control":               4,
	"Extend":                8,
	"ZWJ":                   16,
	"Regional_Indicator":    32,
	"Prepend":               64,
	"SpacingMark":           128,
	"L":                     256,
	"V":                     512,
	"T":                     1024,
	"LV":                    2048,
	"LVT":                   4096,
	"Extended_Pictographic": 8192,
}

// propertyRun is one contiguous run of code points sharing a property.
type propertyRun struct {
	to   rune
	bits uint32
	name string
}

// loadPropertyRuns parses a UCD property file and collects its runs into a
// map ordered by run start, so overlaps and gaps are detectable regardless
// of file order.
func loadPropertyRuns(file string, runs *treemap.Map) error {
	if verbose {
		logger.Printf("reading %s", file)
	}
	defer timeTrack(time.Now(), "loading "+file)
	r, err := testdata.UCDReader(file)
	if err != nil {
		return err
	}
	p, err := ucdparse.New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		name := p.Token.Field(1)
		bits, ok := classBits[name]
		if !ok {
			continue // property not relevant for grapheme breaking
		}
		from, to := p.Token.Range()
		if prev, found := runs.Get(int(from)); found {
			return fmt.Errorf("%s: duplicate run start %04X (%v)", file, from, prev)
		}
		runs.Put(int(from), propertyRun{to: to, bits: bits, name: name})
	}
	return p.Token.Error
}

// applyRuns walks the ordered runs, rejecting overlaps, and feeds them into
// a trie builder. It returns the per-class rune inventory for verification.
func applyRuns(b *utrie.Builder, runs *treemap.Map) (map[string][]rune, error) {
	inventory := make(map[string][]rune)
	prevEnd := rune(-1)
	it := runs.Iterator()
	for it.Next() {
		from := rune(it.Key().(int))
		run := it.Value().(propertyRun)
		if from <= prevEnd {
			return nil, fmt.Errorf("overlapping property runs at %04X", from)
		}
		prevEnd = run.to
		b.SetRange(from, run.to, run.bits)
		for c := from; c <= run.to; c++ {
			inventory[run.name] = append(inventory[run.name], c)
		}
	}
	return inventory, nil
}

// verify rebuilds range tables from the rune inventory and cross-checks
// every code point of the trie against them.
func verify(trie *utrie.Trie, inventory map[string][]rune) error {
	defer timeTrack(time.Now(), "verification")
	tables := make(map[string]*unicode.RangeTable, len(inventory))
	var all []*unicode.RangeTable
	for name, runes := range inventory {
		t := rangetable.New(runes...)
		tables[name] = t
		all = append(all, t)
	}
	merged := rangetable.Merge(all...)
	for c := rune(0); c <= 0x10FFFF; c++ {
		classified := trie.Get(c) != 0
		if classified != unicode.Is(merged, c) {
			return fmt.Errorf("classification mismatch at %#U", c)
		}
	}
	for name, table := range tables {
		bits := classBits[name]
		rangetable.Visit(table, func(c rune) {
			if trie.Get(c)&bits == 0 {
				logger.Fatalf("%#U lost its %s property", c, name)
			}
		})
	}
	return nil
}

// writeTrie serializes a trie, base64-encodes it and writes it to disk.
func writeTrie(trie *utrie.Trie, path string) error {
	var buf bytes.Buffer
	if err := trie.Serialize(&buf); err != nil {
		return err
	}
	b64 := base64.StdEncoding.EncodeToString(buf.Bytes())
	if verbose {
		logger.Printf("writing %s: %d bytes", path, len(b64))
	}
	return os.WriteFile(path, []byte(b64), 0644)
}

func compile(file string, out string) error {
	runs := treemap.NewWithIntComparator()
	if err := loadPropertyRuns(file, runs); err != nil {
		return err
	}
	b := utrie.NewBuilder()
	inventory, err := applyRuns(b, runs)
	if err != nil {
		return err
	}
	trie := b.Build()
	if err := verify(trie, inventory); err != nil {
		return err
	}
	return writeTrie(trie, out)
}

func main() {
	outDir := flag.String("o", filepath.Join("internal", "classdata"), "output directory")
	flag.BoolVar(&verbose, "v", false, "verbose output mode")
	flag.Parse()
	if err := compile("GraphemeBreakProperty.txt", filepath.Join(*outDir, "grapheme.trie")); err != nil {
		logger.Fatalf("grapheme table: %v", err)
	}
	if err := compile("emoji-data.txt", filepath.Join(*outDir, "extpict.trie")); err != nil {
		logger.Fatalf("pictographic table: %v", err)
	}
	if verbose {
		logger.Print("done")
	}
}

// Little helper for measuring execution time.
func timeTrack(start time.Time, name string) {
	if verbose {
		logger.Printf("%s took %s", name, time.Since(start))
	}
}
