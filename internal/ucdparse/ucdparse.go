/*
Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data items are lines of the form

	0600..0605    ; Prepend   # comment
	00AD          ; Control

i.e. a code point or code-point range, followed by semicolon-separated
fields, optionally followed by a rest-of-line comment. Empty lines and
comment-only lines are skipped.
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token is one data item of a UCD file.
type Token struct {
	LineNo   int      // line within the input source
	runeFrom rune     // first/single code point
	runeTo   rune     // final code point of range (may equal runeFrom)
	Fields   []string // semicolon-separated fields, trimmed
	Comment  string   // rest-of-line comment, if any
	Error    error    // error condition, if any
}

// Range gets the code-point range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at(%d) %#U..%#U %v]", token.LineNo, token.runeFrom,
		token.runeTo, token.Fields)
}

// Parser walks over the data items of a UCD file.
type Parser struct {
	Token *Token
	lines *bufio.Scanner
	line  int
}

// New creates a parser reading from r.
func New(r io.Reader) (*Parser, error) {
	if r == nil {
		return nil, fmt.Errorf("ucdparse: no valid input document")
	}
	return &Parser{lines: bufio.NewScanner(r), Token: &Token{}}, nil
}

// Next advances to the next data item. It returns false at the end of the
// input or on a malformed item; in the latter case Token.Error is set.
func (p *Parser) Next() bool {
	for p.lines.Scan() {
		p.line++
		line := strings.TrimSpace(p.lines.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		p.Token = parseItem(line, p.line)
		return p.Token.Error == nil
	}
	if err := p.lines.Err(); err != nil {
		p.Token = &Token{LineNo: p.line, Error: err}
	}
	return false
}

func parseItem(line string, lineno int) *Token {
	token := &Token{LineNo: lineno}
	if at := strings.IndexByte(line, '#'); at >= 0 {
		token.Comment = strings.TrimSpace(line[at+1:])
		line = line[:at]
	}
	fields := strings.Split(line, ";")
	head := strings.TrimSpace(fields[0])
	for _, f := range fields[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	lo, hi, isRange := strings.Cut(head, "..")
	var err error
	if token.runeFrom, err = parseCodePoint(lo); err != nil {
		token.Error = fmt.Errorf("ucdparse: line %d: %w", lineno, err)
		return token
	}
	token.runeTo = token.runeFrom
	if isRange {
		if token.runeTo, err = parseCodePoint(hi); err != nil {
			token.Error = fmt.Errorf("ucdparse: line %d: %w", lineno, err)
			return token
		}
	}
	if token.runeTo < token.runeFrom {
		token.Error = fmt.Errorf("ucdparse: line %d: inverted range %#U..%#U",
			lineno, token.runeFrom, token.runeTo)
	}
	return token
}

func parseCodePoint(hex string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	if n > 0x10FFFF {
		return 0, fmt.Errorf("code point out of range: %X", n)
	}
	return rune(n), nil
}
