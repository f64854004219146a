package graphemes

import (
	"fmt"
	"math"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// "user perceived characters" as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes in a string is an operation with runtime complexity
// O(N). Clients should not convert large texts into grapheme strings in one
// go, but rather operate on manageable fragments.
type String interface {
	Nth(int) string // return nth grapheme cluster
	Len() int       // length of string in units of user perceived characters
}

// MaxByteLen is the maximum byte count a grapheme string may consist of.
const MaxByteLen int = 32766

// StringFromString creates a grapheme string from a Go string.
// As grapheme strings are not meant to be created for large amounts of text,
// but rather for manageable segments, s is not allowed to exceed MaxByteLen
// bytes.
//
// StringFromString will panic if a larger input string is given.
func StringFromString(s string) String {
	if len(s) < math.MaxUint8 {
		return makeShortString(s)
	} else if len(s) <= MaxByteLen {
		return makeMidString(s)
	}
	panic(fmt.Sprintf("graphemes.String may not be built from more than %d bytes, have %d",
		MaxByteLen, len(s)))
}

// StringFromBytes creates a grapheme string from an array of bytes. As
// grapheme strings are a read-only data structure, StringFromBytes will
// create a private copy of the input.
//
// StringFromBytes will panic if a slice larger than MaxByteLen is given.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// breakPositions returns the byte offsets of all cluster boundaries of s,
// including 0 and len(s).
func breakPositions(s string) []int {
	classes, offsets := classify(s)
	breaks := make([]int, 1, len(classes)+1)
	breaks[0] = 0
	for at := 0; at < len(classes); {
		at += nextClusterSize(classes, at)
		breaks = append(breaks, offsets[at])
	}
	return breaks
}

// --- Short version ---------------------------------------------------------

// shortString stores break offsets in single bytes; enough for input of up
// to 254 bytes.
type shortString struct {
	content string
	breaks  []uint8
}

func makeShortString(s string) String {
	gstr := &shortString{content: s}
	if len(s) == 0 {
		return gstr
	}
	positions := breakPositions(s)
	gstr.breaks = make([]uint8, len(positions))
	for i, pos := range positions {
		gstr.breaks[i] = uint8(pos)
	}
	return gstr
}

func (gstr *shortString) Nth(n int) string {
	checkBounds(n, len(gstr.breaks))
	if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *shortString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// --- Mid version -----------------------------------------------------------

type midString struct {
	content string
	breaks  []uint16
}

func makeMidString(s string) String {
	gstr := &midString{content: s}
	positions := breakPositions(s)
	gstr.breaks = make([]uint16, len(positions))
	for i, pos := range positions {
		gstr.breaks[i] = uint16(pos)
	}
	return gstr
}

func (gstr *midString) Nth(n int) string {
	checkBounds(n, len(gstr.breaks))
	if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *midString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// ---------------------------------------------------------------------------

// checkBounds panics on out-of-range cluster indexes; an illegal index is a
// programmer error, not a runtime condition.
func checkBounds(n, breakslen int) {
	upper := max(breakslen-2, 0)
	if n < 0 || n > upper {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]", n, upper))
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
