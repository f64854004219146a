package ucdparse

import (
	"strings"
	"testing"
)

func TestParseSingleItem(t *testing.T) {
	p, err := New(strings.NewReader("000D          ; CR\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Next() {
		t.Fatalf("expected one data item, got none (err=%v)", p.Token.Error)
	}
	from, to := p.Token.Range()
	if from != 0x0D || to != 0x0D {
		t.Errorf("expected range 000D..000D, have %#U..%#U", from, to)
	}
	if f := p.Token.Field(1); f != "CR" {
		t.Errorf("expected field 1 to be 'CR', is %q", f)
	}
	if p.Next() {
		t.Error("expected exactly one data item")
	}
}

func TestParseRangeItemWithComment(t *testing.T) {
	input := `# header comment

0600..0605    ; Prepend   # Cf   [6] ARABIC NUMBER SIGN..ARABIC NUMBER MARK ABOVE
`
	p, err := New(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Next() {
		t.Fatalf("expected one data item, got none (err=%v)", p.Token.Error)
	}
	from, to := p.Token.Range()
	if from != 0x0600 || to != 0x0605 {
		t.Errorf("expected range 0600..0605, have %#U..%#U", from, to)
	}
	if f := p.Token.Field(1); f != "Prepend" {
		t.Errorf("expected field 1 to be 'Prepend', is %q", f)
	}
	if !strings.Contains(p.Token.Comment, "ARABIC NUMBER SIGN") {
		t.Errorf("comment not carried over, is %q", p.Token.Comment)
	}
}

func TestParseMalformedItem(t *testing.T) {
	p, err := New(strings.NewReader("XYZZY ; Nonsense\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Next() {
		t.Error("expected malformed line to stop the parser")
	}
	if p.Token.Error == nil {
		t.Error("expected token error to be set for malformed line")
	}
}

func TestParseInvertedRange(t *testing.T) {
	p, err := New(strings.NewReader("0605..0600 ; Prepend\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Next() {
		t.Error("expected inverted range to stop the parser")
	}
	if p.Token.Error == nil {
		t.Error("expected token error to be set for inverted range")
	}
}
