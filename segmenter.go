package graphemes

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/graphemes/internal/tracing"
)

// A Segmenter receives a sequence of code points from an io.RuneReader and
// hands out the grapheme clusters of the text, one at a time. It provides
// an interface similar to bufio.Scanner: successive calls to Next() step
// through the clusters, with Bytes() and Text() returning the most recent
// one.
//
// Unlike Split, a Segmenter scans incrementally and holds no more than the
// current cluster plus one code point of lookahead, so arbitrarily large
// texts can be processed in constant memory. The clusters it produces are
// byte for byte the ones Split would return.
type Segmenter struct {
	reader        io.RuneReader
	cluster       *bytes.Buffer // collects the cluster being scanned
	activeSegment []byte        // the most recent complete cluster
	state         scanState
	currClass     Class
	pos           int64 // current position in text
	atEOF         bool
	err           error
}

// NewSegmenter creates a grapheme cluster segmenter. Call Init to attach it
// to an input text.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// seg is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (seg *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	seg.reader = reader
	if seg.cluster == nil {
		seg.cluster = bytes.NewBuffer(make([]byte, 0, 32))
	} else {
		seg.cluster.Reset()
	}
	seg.activeSegment = nil
	seg.state = scanState{}
	seg.currClass = Any
	seg.pos = 0
	seg.atEOF = false
	seg.err = nil
}

// Next advances the segmenter to the next grapheme cluster, which will then
// be available through Bytes() or Text(). It returns false when the scan
// reaches the end of the input or encounters a read error. After Next
// returns false, Err() will return any error that occurred, except for
// io.EOF.
func (seg *Segmenter) Next() bool {
	if seg.reader == nil || seg.atEOF && seg.cluster.Len() == 0 {
		return false
	}
	for {
		r, size, err := seg.reader.ReadRune()
		if err != nil {
			if err != io.EOF {
				tracing.Errorf("segmenter read error at %d: %v", seg.pos, err)
				seg.setErr(err)
			}
			seg.atEOF = true
			if seg.cluster.Len() == 0 {
				return false
			}
			seg.emit()
			return true
		}
		seg.pos += int64(size)
		c := ClassForRune(r)
		if seg.cluster.Len() == 0 { // first code point of a new cluster
			seg.cluster.WriteRune(r)
			seg.currClass = c
			continue
		}
		if seg.state.boundary(seg.currClass, c) {
			seg.emit()
			seg.cluster.WriteRune(r)
			seg.currClass = c
			return true
		}
		seg.cluster.WriteRune(r)
		seg.currClass = c
	}
}

// emit completes the current cluster and resets the scan state for the next
// one.
func (seg *Segmenter) emit() {
	seg.activeSegment = append(seg.activeSegment[:0], seg.cluster.Bytes()...)
	seg.cluster.Reset()
	seg.state = scanState{}
	tracing.P("pos", seg.pos).Debugf("grapheme cluster %q", seg.activeSegment)
}

// Bytes returns the most recent cluster generated by a call to Next().
// The underlying array may be overwritten by the following call to Next().
func (seg *Segmenter) Bytes() []byte {
	return seg.activeSegment
}

// Text returns the most recent cluster generated by a call to Next()
// as a newly allocated string holding its bytes.
func (seg *Segmenter) Text() string {
	return string(seg.activeSegment)
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (seg *Segmenter) Err() error {
	return seg.err
}

// setErr records the first error encountered.
func (seg *Segmenter) setErr(err error) {
	if seg.err == nil {
		seg.err = err
	}
}
