package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/internal/lexer"
)

// Lexer is the lexical capability the grammar rules are composed on.
// Offsets are byte offsets into the source.
type Lexer interface {
	SkipInsignificant(pos int) int
	Literal(pos int, text string) (int, bool)
	Name(pos int) (string, int, bool)
	Location(pos int) errors.Location
}

// Parser holds the state of a single parse: the source and the furthest
// failure seen so far. It is not safe for concurrent use; every parse
// creates its own.
type Parser struct {
	Src  string
	lex  Lexer
	fail failure
}

type failure struct {
	pos      int
	expected []string
	label    string
}

func NewParser(src string) *Parser {
	return NewParserWithLexer(src, lexer.New(src))
}

func NewParserWithLexer(src string, lex Lexer) *Parser {
	return &Parser{Src: src, lex: lex, fail: failure{pos: -1}}
}

// The helpers below take rules: functions that parse one production starting
// at pos and, on success, return it with the offset after it (trailing
// insignificant characters included).

// Choice tries the alternatives in order at pos and commits to the first one
// that succeeds. A failed alternative consumes nothing, and a label it left
// on a failure no further than the committed end is dropped.
func Choice[T any](p *Parser, pos int, alts ...func(*Parser, int) (T, int, bool)) (T, int, bool) {
	for _, alt := range alts {
		if v, next, ok := alt(p, pos); ok {
			p.unlabel(next)
			return v, next, true
		}
	}
	var zero T
	return zero, pos, false
}

// Many applies rule as often as it succeeds.
func Many[T any](p *Parser, pos int, rule func(*Parser, int) (T, int, bool)) ([]T, int) {
	var list []T
	for {
		v, next, ok := rule(p, pos)
		if !ok {
			return list, pos
		}
		list = append(list, v)
		pos = next
	}
}

// Many1 is Many but requires at least one match.
func Many1[T any](p *Parser, pos int, rule func(*Parser, int) (T, int, bool)) ([]T, int, bool) {
	list, next := Many(p, pos, rule)
	if len(list) == 0 {
		return nil, pos, false
	}
	return list, next, true
}

// Delimited parses open, one or more rule, then closing.
func Delimited[T any](p *Parser, pos int, open string, rule func(*Parser, int) (T, int, bool), closing string) ([]T, int, bool) {
	next, ok := p.Literal(pos, open)
	if !ok {
		return nil, pos, false
	}
	list, next, ok := Many1(p, next, rule)
	if !ok {
		return nil, pos, false
	}
	next, ok = p.Literal(next, closing)
	if !ok {
		return nil, pos, false
	}
	return list, next, true
}

func (p *Parser) Skip(pos int) int {
	return p.lex.SkipInsignificant(pos)
}

func (p *Parser) Literal(pos int, text string) (int, bool) {
	next, ok := p.lex.Literal(pos, text)
	if !ok {
		p.Fail(pos, strconv.Quote(text))
	}
	return next, ok
}

func (p *Parser) Name(pos int) (string, int, bool) {
	name, next, ok := p.lex.Name(pos)
	if !ok {
		p.Fail(pos, "name")
	}
	return name, next, ok
}

func (p *Parser) Location(pos int) errors.Location {
	return p.lex.Location(pos)
}

// Fail records that expected was not found at pos. Only the furthest
// position is remembered; expectations at the same position accumulate.
func (p *Parser) Fail(pos int, expected string) {
	switch {
	case pos > p.fail.pos:
		p.fail = failure{pos: pos, expected: []string{expected}}
	case pos == p.fail.pos:
		for _, e := range p.fail.expected {
			if e == expected {
				return
			}
		}
		p.fail.expected = append(p.fail.expected, expected)
	}
}

// Label attributes the furthest failure to a rule that started at start,
// unless a nested rule already claimed it.
func (p *Parser) Label(start int, label string) {
	if p.fail.label == "" && p.fail.pos >= start {
		p.fail.label = label
	}
}

// unlabel forgets the label of a failure at or before end, so that a rule
// further out can claim it.
func (p *Parser) unlabel(end int) {
	if p.fail.pos <= end {
		p.fail.label = ""
	}
}

// Furthest returns the furthest offset at which a failure was recorded, or -1.
func (p *Parser) Furthest() int {
	return p.fail.pos
}

// Err describes the furthest failure. label is used when no rule claimed it.
func (p *Parser) Err(label string) *errors.QueryError {
	pos := p.fail.pos
	if pos < 0 {
		pos = 0
	}
	if p.fail.label != "" {
		label = p.fail.label
	}
	msg := fmt.Sprintf("syntax error: cannot parse document: %s: unexpected %s", label, p.describe(pos))
	if len(p.fail.expected) > 0 {
		msg += ", expecting " + strings.Join(p.fail.expected, ", ")
	}
	return &errors.QueryError{
		Message:   msg,
		Locations: []errors.Location{p.Location(pos)},
		Rule:      label,
		Offset:    pos,
	}
}

func (p *Parser) describe(pos int) string {
	if pos >= len(p.Src) {
		return "end of input"
	}
	if name, _, ok := p.lex.Name(pos); ok {
		return strconv.Quote(name)
	}
	r, _ := utf8.DecodeRuneInString(p.Src[pos:])
	return strconv.QuoteRune(r)
}
