package graphemes

// This file holds the cluster boundary engine: the decision whether two
// adjacent code points belong to the same grapheme cluster, per the rules
// GB1–GB999 of UAX#29 (extended grapheme clusters).
//
// All rules except three are decidable from the adjacent pair alone. The
// exceptions need scan-local state: GB11 (emoji ZWJ sequences) tracks a
// small three-state machine, GB12/GB13 (regional-indicator pairs) count the
// indicators consumed in the current run. Both pieces of state live inside a
// single scan and never survive it.

// States of the GB11 machine. An emoji ZWJ sequence is
// \p{Extended_Pictographic} Extend* ZWJ \p{Extended_Pictographic}.
type emojiSeqState int8

const (
	emojiSeqInitial emojiSeqState = iota
	emojiSeqExtendOrZWJ
	emojiSeqNotBoundary
)

// scanState is the local state of one boundary scan. The zero value is
// ready to use at the start of a cluster.
type scanState struct {
	emoji   emojiSeqState
	riCount int // regional indicators consumed in the current run
}

// boundary reports whether a cluster boundary falls between two adjacent
// code points of classes curr and next, and advances the scan state. Rules
// are evaluated in UAX#29 precedence order; the first match wins.
func (st *scanState) boundary(curr, next Class) bool {
	// GB11 state must be tracked on every step, whatever rule fires below.
	if st.emoji == emojiSeqExtendOrZWJ {
		switch {
		case curr&ExtendClass != 0:
			// still in Extend* after the pictograph
		case curr&ZWJClass != 0 && next&Extended_PictographicClass != 0:
			st.emoji = emojiSeqNotBoundary
		default:
			st.emoji = emojiSeqInitial
		}
	} else if curr&Extended_PictographicClass != 0 {
		st.emoji = emojiSeqExtendOrZWJ
	} else {
		st.emoji = emojiSeqInitial
	}
	// A regional-indicator run ends with any other class.
	if curr&Regional_IndicatorClass == 0 {
		st.riCount = 0
	}

	switch {
	case curr&CRClass != 0 && next&LFClass != 0:
		return false // GB3
	case curr&(ControlClass|CRClass|LFClass) != 0:
		return true // GB4
	case next&(ControlClass|CRClass|LFClass) != 0:
		return true // GB5
	case curr&LClass != 0 && next&(LClass|VClass|LVClass|LVTClass) != 0:
		return false // GB6
	case curr&(LVClass|VClass) != 0 && next&(VClass|TClass) != 0:
		return false // GB7
	case curr&(LVTClass|TClass) != 0 && next&TClass != 0:
		return false // GB8
	case next&(ExtendClass|ZWJClass) != 0:
		return false // GB9
	case next&SpacingMarkClass != 0:
		return false // GB9a
	case curr&PrependClass != 0:
		return false // GB9b
	case st.emoji == emojiSeqNotBoundary:
		return false // GB11
	case curr&Regional_IndicatorClass != 0 && next&Regional_IndicatorClass != 0 &&
		st.riCount%2 == 0:
		st.riCount++
		return false // GB12, GB13
	}
	return true // GB999
}

// nextClusterSize determines the length, in code points, of the cluster
// starting at index start of a classification sequence. start must be a
// valid index; the result is at least 1. End of text is always a boundary
// (GB2), so the scan never runs past the sequence.
func nextClusterSize(classifications []Class, start int) int {
	var st scanState
	for i := start; i < len(classifications)-1; i++ {
		if st.boundary(classifications[i], classifications[i+1]) {
			return i + 1 - start
		}
	}
	return len(classifications) - start
}
