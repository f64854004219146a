package utrie

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Serialized tries start with a fixed-size little-endian header, followed by
// the data array compressed twice with raw DEFLATE.
const headerLen = 12

// Decode reads a serialized trie.
//
// The wire format is a 12-byte header (highStart u32 LE, errorValue u32 LE,
// one reserved u32) followed by the little-endian 32-bit data words run
// through raw DEFLATE twice. Truncated headers, corrupt DEFLATE streams and
// payloads that are not a whole number of words are reported as errors; a
// trie that fails to decode is unusable.
func Decode(r io.Reader) (*Trie, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("utrie: reading serialized trie: %w", err)
	}
	if len(blob) < headerLen {
		return nil, fmt.Errorf("utrie: serialized trie header truncated: %d bytes", len(blob))
	}
	highStart := binary.LittleEndian.Uint32(blob[0:4])
	errorValue := binary.LittleEndian.Uint32(blob[4:8])
	raw, err := inflate(blob[headerLen:])
	if err != nil {
		return nil, err
	}
	raw, err = inflate(raw)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("utrie: trie payload is %d bytes, not a multiple of 4", len(raw))
	}
	// The payload is always little-endian; decoding word by word normalizes
	// byte order on every host.
	data := make([]uint32, len(raw)/4)
	for i := range data {
		data[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	if len(data) < dataGranularity || len(data)%dataGranularity != 0 {
		return nil, fmt.Errorf("utrie: trie data length %d is not granule-aligned", len(data))
	}
	return New(data, highStart, errorValue), nil
}

// DecodeBase64 decodes a trie embedded as a base64 string constant.
// Surrounding whitespace, as left by embedded text files, is ignored.
func DecodeBase64(s string) (*Trie, error) {
	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("utrie: base64 decoding of trie blob failed: %w", err)
	}
	return Decode(bytes.NewReader(blob))
}

func inflate(compressed []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()
	raw, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("utrie: inflating trie payload failed: %w", err)
	}
	return raw, nil
}
