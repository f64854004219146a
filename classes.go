package graphemes

import (
	"fmt"
	"strings"
)

// Class is the grapheme cluster break classification of a code point: a
// bitmask OR-ing the code point's Grapheme_Cluster_Break property with its
// Extended_Pictographic property. A code point may carry more than one bit
// (an emoji base is Any in the break-property table but pictographic in the
// emoji table).
type Class uint32

// Any is the class of code points without any grapheme-relevant property.
const Any Class = 0

// Classes for UAX#29 grapheme breaking (Grapheme_Cluster_Break property
// values plus Extended_Pictographic). The bit assignment is shared with the
// compiled classification tables and must not be reordered.
const (
	CRClass Class = 1 << iota
	LFClass
	ControlClass
	ExtendClass
	ZWJClass
	Regional_IndicatorClass
	PrependClass
	SpacingMarkClass
	LClass
	VClass
	TClass
	LVClass
	LVTClass
	Extended_PictographicClass
)

var classNames = []string{"CRClass", "LFClass", "ControlClass", "ExtendClass",
	"ZWJClass", "Regional_IndicatorClass", "PrependClass", "SpacingMarkClass",
	"LClass", "VClass", "TClass", "LVClass", "LVTClass",
	"Extended_PictographicClass"}

func (c Class) String() string {
	if c == Any {
		return "Any"
	}
	var b strings.Builder
	for bit, name := range classNames {
		if c&(1<<bit) != 0 {
			if b.Len() > 0 {
				b.WriteByte('|')
			}
			b.WriteString(name)
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("Class(%#x)", uint32(c))
	}
	return b.String()
}
