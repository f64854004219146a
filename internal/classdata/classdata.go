/*
Package classdata carries the compiled code-point classification tables for
grapheme cluster breaking and hands them out as process-wide immutable tries.

Two tables are embedded: the general Grapheme_Cluster_Break table and the
Extended_Pictographic table. Both are generated from Unicode Character
Database properties by internal/generator and stored in the serialized trie
wire format, base64-encoded. They are decoded at most once, on first use, and
shared by all callers afterwards.
*/
package classdata

//go:generate go run github.com/npillmayer/graphemes/internal/generator -o .

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/npillmayer/graphemes/internal/utrie"
)

// Version is the Unicode version the embedded tables were generated from.
const Version = "15.0.0"

//go:embed grapheme.trie
var graphemeBlob string

//go:embed extpict.trie
var extpictBlob string

var (
	setupOnce    sync.Once
	graphemeTrie *utrie.Trie
	extpictTrie  *utrie.Trie
)

// Graphemes returns the Grapheme_Cluster_Break classification trie.
func Graphemes() *utrie.Trie {
	setupOnce.Do(setup)
	return graphemeTrie
}

// ExtendedPictographic returns the Extended_Pictographic classification trie.
func ExtendedPictographic() *utrie.Trie {
	setupOnce.Do(setup)
	return extpictTrie
}

// setup decodes both embedded tables. A decode failure means the module
// carries broken data and cannot classify anything, so it is fatal.
func setup() {
	var err error
	if graphemeTrie, err = utrie.DecodeBase64(graphemeBlob); err != nil {
		panic(fmt.Sprintf("classdata: embedded grapheme table is broken: %v", err))
	}
	if extpictTrie, err = utrie.DecodeBase64(extpictBlob); err != nil {
		panic(fmt.Sprintf("classdata: embedded pictographic table is broken: %v", err))
	}
}
