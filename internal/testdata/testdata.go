// Package testdata carries test fixtures and the Unicode property files the
// table generator works from.
//
// GraphemeBreakTest.txt follows the format of the UCD conformance file of
// the same name: one test sequence per line, code points in hex, with "÷"
// marking a boundary and "×" marking its absence. The copy embedded here was
// computed with ICU 73.1 break iteration over the standard per-class sample
// characters (Unicode 15.0.0).
package testdata

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// GraphemeBreakTest is the embedded grapheme cluster conformance fixture.
//
//go:embed GraphemeBreakTest.txt
var GraphemeBreakTest []byte

// UCDReader returns a reader for the given UCD property file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns the on-disk path for the given UCD property file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
