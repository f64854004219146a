/*
Package utrie implements a compact two-stage lookup table ("trie") for
per-code-point Unicode property values, together with its serialized form.

The layout is the classic index-1/index-2/data-block scheme used for sparse
code-point tables: a flat array of 32-bit words combines a single-level index
for the Basic Multilingual Plane, a dedicated index block for lead-surrogate
code points, a two-level index for the supplementary planes, and the terminal
data blocks. Lookups are O(1) and allocation-free.

All shift and offset constants below are part of the serialized format and
must not be changed; tables encoded with one set of constants are unreadable
with another.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'
*/
package utrie

// Layout constants of the serialized trie. These mirror the reference
// serialization and are coupled to the embedded table data.
const (
	shift1 = 11 // code points per index-1 entry: 1 << 11
	shift2 = 5  // code points per data block: 1 << 5

	indexShift      = 2                      // index entries address data in granules
	dataGranularity = 1 << indexShift        // data block alignment in words
	dataBlockLen    = 1 << shift2            // 32 words per data block
	index2BlockLen  = 1 << (shift1 - shift2) // 64 entries per index-2 block

	lscpIndex2Offset = 0x10000 >> shift2 // index block for U+D800..U+DBFF
	index1Offset     = 0x840             // first index-1 entry
	omittedBMPIndex1 = 0x10000 >> shift1 // BMP part of index-1 is left out

	maxCodePoint = 0x10FFFF
)

// Trie is an immutable compiled lookup table mapping Unicode code points to
// unsigned 32-bit property values. It is safe for concurrent use.
type Trie struct {
	data       []uint32
	highStart  uint32
	errorValue uint32
}

// New wraps a pre-parsed data array into a Trie. The data slice is not
// copied; callers hand over ownership.
func New(data []uint32, highStart, errorValue uint32) *Trie {
	return &Trie{data: data, highStart: highStart, errorValue: errorValue}
}

// HighStart returns the code point at and above which Get falls back to the
// single large-range default value.
func (t *Trie) HighStart() rune { return rune(t.highStart) }

// ErrorValue returns the value reported for out-of-range code points.
func (t *Trie) ErrorValue() uint32 { return t.errorValue }

// Get looks up the property value for a code point.
//
// Out-of-range code points (negative or above U+10FFFF) yield the trie's
// error value; code points at or above highStart yield the table's
// large-range default. Get never fails and never allocates.
func (t *Trie) Get(c rune) uint32 {
	switch {
	case c < 0 || c > maxCodePoint:
		return t.errorValue
	case c < 0xD800 || (c > 0xDBFF && c <= 0xFFFF):
		// Ordinary BMP code point: single-level index.
		i := t.data[c>>shift2]
		return t.data[(i<<indexShift)+uint32(c&0x1F)]
	case c <= 0xFFFF:
		// Lead surrogate as a code point (not a code unit).
		i := t.data[lscpIndex2Offset+((c-0xD800)>>shift2)]
		return t.data[(i<<indexShift)+uint32(c&0x1F)]
	case c < rune(t.highStart):
		// Supplementary plane: two-level lookup.
		i := t.data[index1Offset-omittedBMPIndex1+(c>>shift1)]
		i = t.data[i+uint32((c>>shift2)&0x3F)]
		return t.data[(i<<indexShift)+uint32(c&0x1F)]
	}
	return t.data[len(t.data)-dataGranularity]
}
