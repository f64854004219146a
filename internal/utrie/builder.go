package utrie

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Builder compiles a flat per-code-point value assignment into the compact
// serialized trie layout. It is used by the table generator and by tests;
// the runtime path only ever decodes pre-built tables.
//
// The zero value of every code point is the "no property" default, which is
// also the value reported for the large range above highStart.
type Builder struct {
	values     []uint32
	errorValue uint32
}

// NewBuilder returns a builder with all code points set to zero.
func NewBuilder() *Builder {
	return &Builder{values: make([]uint32, maxCodePoint+1)}
}

// SetErrorValue defines the value reported for out-of-range lookups.
func (b *Builder) SetErrorValue(v uint32) { b.errorValue = v }

// Set assigns a value to a single code point. Out-of-range code points are
// ignored.
func (b *Builder) Set(c rune, v uint32) {
	if c >= 0 && c <= maxCodePoint {
		b.values[c] = v
	}
}

// SetRange assigns a value to all code points in [from, to], inclusive.
func (b *Builder) SetRange(from, to rune, v uint32) {
	for c := from; c <= to; c++ {
		b.Set(c, v)
	}
}

// Build freezes the builder content into an immutable Trie.
//
// Data blocks and index-2 blocks are deduplicated, so large uniform regions
// (unassigned planes, repeated property runs) collapse into shared blocks.
// The resulting trie returns exactly the builder's values for every code
// point in [0, U+10FFFF].
func (b *Builder) Build() *Trie {
	highStart := b.computeHighStart()

	// Deduplicate 32-code-point data blocks below highStart.
	numGranules := int(highStart) >> shift2
	granuleBlock := make([]int, numGranules)
	blockIDs := make(map[string]int)
	var blocks [][]uint32
	for g := 0; g < numGranules; g++ {
		block := b.values[g<<shift2 : (g<<shift2)+dataBlockLen]
		key := blockKey(block)
		id, ok := blockIDs[key]
		if !ok {
			id = len(blocks)
			blockIDs[key] = id
			blocks = append(blocks, block)
		}
		granuleBlock[g] = id
	}

	// Deduplicate supplementary index-2 blocks (64 granules each).
	index1Len := (int(highStart) - 0x10000) >> shift1
	index2IDs := make(map[string]int)
	var index2Blocks [][]int
	rangeIndex2 := make([]int, index1Len)
	for j := 0; j < index1Len; j++ {
		base := (0x10000 >> shift2) + j*index2BlockLen
		ids := granuleBlock[base : base+index2BlockLen]
		key := indexKey(ids)
		id, ok := index2IDs[key]
		if !ok {
			id = len(index2Blocks)
			index2IDs[key] = id
			index2Blocks = append(index2Blocks, ids)
		}
		rangeIndex2[j] = id
	}

	// Lay out the combined array: indexes first, then data blocks, then a
	// trailing granule holding the highStart default.
	indexLen := index1Offset + index1Len + len(index2Blocks)*index2BlockLen
	indexLen = (indexLen + dataGranularity - 1) &^ (dataGranularity - 1)
	blockOffset := func(id int) uint32 {
		return uint32(indexLen + id*dataBlockLen)
	}

	data := make([]uint32, indexLen, indexLen+len(blocks)*dataBlockLen+dataGranularity)
	for g := 0; g < 0x10000>>shift2; g++ {
		data[g] = blockOffset(granuleBlock[g]) >> indexShift
	}
	for k := 0; k < index2BlockLen/2; k++ { // 32 entries for U+D800..U+DBFF
		g := (0xD800 >> shift2) + k
		data[lscpIndex2Offset+k] = blockOffset(granuleBlock[g]) >> indexShift
	}
	index2Start := index1Offset + index1Len
	for j := 0; j < index1Len; j++ {
		data[index1Offset+j] = uint32(index2Start + rangeIndex2[j]*index2BlockLen)
	}
	for id, ids := range index2Blocks {
		base := index2Start + id*index2BlockLen
		for k, bid := range ids {
			data[base+k] = blockOffset(bid) >> indexShift
		}
	}
	for _, block := range blocks {
		data = append(data, block...)
	}
	data = append(data, 0, 0, 0, 0)

	return New(data, highStart, b.errorValue)
}

// computeHighStart finds the lowest 0x800-aligned code point above every
// non-default value, with the BMP always covered by the full index.
func (b *Builder) computeHighStart() uint32 {
	last := rune(0)
	for c := rune(maxCodePoint); c >= 0; c-- {
		if b.values[c] != 0 {
			last = c
			break
		}
	}
	high := (uint32(last) + 1 + (1 << shift1) - 1) &^ ((1 << shift1) - 1)
	if high < 0x10000 {
		high = 0x10000
	}
	return high
}

func blockKey(block []uint32) string {
	buf := make([]byte, 4*len(block))
	for i, v := range block {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return string(buf)
}

func indexKey(ids []int) string {
	buf := make([]byte, 4*len(ids))
	for i, id := range ids {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(id))
	}
	return string(buf)
}

// Serialize writes the trie in its wire format: the 12-byte little-endian
// header followed by the data words deflated twice.
func (t *Trie) Serialize(w io.Writer) error {
	var header [headerLen]byte
	binary.LittleEndian.PutUint32(header[0:4], t.highStart)
	binary.LittleEndian.PutUint32(header[4:8], t.errorValue)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("utrie: writing trie header: %w", err)
	}
	raw := make([]byte, 4*len(t.data))
	for i, v := range t.data {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}
	once, err := deflate(raw)
	if err != nil {
		return err
	}
	twice, err := deflate(once)
	if err != nil {
		return err
	}
	if _, err := w.Write(twice); err != nil {
		return fmt.Errorf("utrie: writing trie payload: %w", err)
	}
	return nil
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("utrie: creating deflate writer: %w", err)
	}
	if _, err := fw.Write(raw); err != nil {
		return nil, fmt.Errorf("utrie: deflating trie payload: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("utrie: deflating trie payload: %w", err)
	}
	return buf.Bytes(), nil
}
