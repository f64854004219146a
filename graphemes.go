package graphemes

import (
	"github.com/npillmayer/graphemes/internal/classdata"
)

// ClassForRune gets the grapheme cluster break class for a Unicode
// code point. Out-of-range code points classify as Any.
func ClassForRune(r rune) Class {
	return Class(classdata.Graphemes().Get(r) | classdata.ExtendedPictographic().Get(r))
}

// classify maps a string to the classes of its code points, together with
// the byte offset of every code point. The offsets slice has one trailing
// sentinel entry holding len(s), so cluster [i:j) in code-point terms is
// s[offsets[i]:offsets[j]] in byte terms.
func classify(s string) (classes []Class, offsets []int) {
	classes = make([]Class, 0, len(s))
	offsets = make([]int, 0, len(s)+1)
	for at, r := range s {
		classes = append(classes, ClassForRune(r))
		offsets = append(offsets, at)
	}
	offsets = append(offsets, len(s))
	return classes, offsets
}

// Split breaks a string into its grapheme clusters.
//
// The returned substrings concatenate back to s, byte for byte; none of
// them is empty. Split is pure: no state survives the call, and repeated
// calls return equal, independently allocated slices.
func Split(s string) []string {
	if s == "" {
		return []string{}
	}
	classes, offsets := classify(s)
	clusters := make([]string, 0, len(classes))
	for at := 0; at < len(classes); {
		next := at + nextClusterSize(classes, at)
		clusters = append(clusters, s[offsets[at]:offsets[next]])
		at = next
	}
	return clusters
}

// Iterate returns a single-use iterator over the grapheme clusters of s, in
// order. The second return value is false after the last cluster has been
// handed out. Classification of s happens up front; only the boundary scan
// is deferred, so abandoning the iterator early saves that part of the
// work. For scanning in constant memory use a Segmenter instead. Calling
// Iterate again produces a fresh iteration from the start.
func Iterate(s string) func() (string, bool) {
	classes, offsets := classify(s)
	at := 0
	return func() (string, bool) {
		if at >= len(classes) {
			return "", false
		}
		next := at + nextClusterSize(classes, at)
		cluster := s[offsets[at]:offsets[next]]
		at = next
		return cluster, true
	}
}

// Count returns the number of grapheme clusters in s without materializing
// them.
func Count(s string) int {
	classes, _ := classify(s)
	n := 0
	for at := 0; at < len(classes); at += nextClusterSize(classes, at) {
		n++
	}
	return n
}
