// Package lexer recognizes the lexical tokens every grammar rule is built on.
//
// A Lexer never keeps a current position. Callers pass a byte offset into the
// source and receive the offset after the token, so any rule can backtrack by
// simply reusing an earlier offset.
package lexer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/graph-gophers/graphql-parser/errors"
)

const bom = "\uFEFF"

// Lexer is immutable after New and may be shared between goroutines.
type Lexer struct {
	src        string
	lineStarts []int
}

func New(src string) *Lexer {
	l := &Lexer{src: src, lineStarts: []int{0}}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			l.lineStarts = append(l.lineStarts, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			l.lineStarts = append(l.lineStarts, i+1)
		}
	}
	return l
}

func (l *Lexer) Source() string {
	return l.src
}

// SkipInsignificant skips white space, line terminators, commas, byte order
// marks and comments starting at pos.
//
// http://spec.graphql.org/draft/#sec-Language.Source-Text.Ignored-Tokens
func (l *Lexer) SkipInsignificant(pos int) int {
	for pos < len(l.src) {
		switch c := l.src[pos]; c {
		case ' ', '\t', '\n', '\r', ',':
			pos++
		case '#':
			for pos < len(l.src) && l.src[pos] != '\n' && l.src[pos] != '\r' {
				pos++
			}
		default:
			if !strings.HasPrefix(l.src[pos:], bom) {
				return pos
			}
			pos += len(bom)
		}
	}
	return pos
}

// Literal matches text exactly at pos and skips the insignificant characters
// after it. Keywords only match on a name boundary: "on" does not match "one".
func (l *Lexer) Literal(pos int, text string) (int, bool) {
	if !strings.HasPrefix(l.src[pos:], text) {
		return pos, false
	}
	end := pos + len(text)
	if text != "" && IsNameContinue(text[len(text)-1]) && end < len(l.src) && IsNameContinue(l.src[end]) {
		return pos, false
	}
	return l.SkipInsignificant(end), true
}

// Name matches /[_A-Za-z][_0-9A-Za-z]*/ at pos and skips the insignificant
// characters after it.
func (l *Lexer) Name(pos int) (string, int, bool) {
	if pos >= len(l.src) || !IsNameStart(l.src[pos]) {
		return "", pos, false
	}
	end := pos + 1
	for end < len(l.src) && IsNameContinue(l.src[end]) {
		end++
	}
	return l.src[pos:end], l.SkipInsignificant(end), true
}

// Location converts a byte offset into a 1-based line and column. Columns
// count runes, not bytes.
func (l *Lexer) Location(pos int) errors.Location {
	if pos > len(l.src) {
		pos = len(l.src)
	}
	line := sort.Search(len(l.lineStarts), func(i int) bool { return l.lineStarts[i] > pos })
	start := l.lineStarts[line-1]
	return errors.Location{
		Line:   line,
		Column: utf8.RuneCountInString(l.src[start:pos]) + 1,
	}
}

func IsNameStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func IsNameContinue(c byte) bool {
	return IsNameStart(c) || (c >= '0' && c <= '9')
}
