package common

import (
	"github.com/graph-gophers/graphql-parser/ast"
)

// ParseType parses a type reference: list, non-null or named, tried in that
// order. A list type does not match when a '!' follows it, so that [T]! is
// left to the non-null alternative.
//
// http://spec.graphql.org/draft/#Type
func ParseType(p *Parser, pos int) (ast.Type, int, bool) {
	t, next, ok := Choice(p, pos, parseNullableListType, parseNonNullType, parseNamedType)
	if !ok {
		p.Label(pos, "type_ error")
	}
	return t, next, ok
}

// ParseNamedType parses a bare type name, as used by type conditions.
func ParseNamedType(p *Parser, pos int) (*ast.NamedType, int, bool) {
	name, next, ok := p.Name(pos)
	if !ok {
		return nil, pos, false
	}
	return &ast.NamedType{Name: name}, next, true
}

func parseNamedType(p *Parser, pos int) (ast.Type, int, bool) {
	t, next, ok := ParseNamedType(p, pos)
	if !ok {
		return nil, pos, false
	}
	return t, next, true
}

func parseListType(p *Parser, pos int) (ast.Type, int, bool) {
	next, ok := p.Literal(pos, "[")
	if !ok {
		return nil, pos, false
	}
	ofType, next, ok := ParseType(p, next)
	if !ok {
		return nil, pos, false
	}
	next, ok = p.Literal(next, "]")
	if !ok {
		return nil, pos, false
	}
	return &ast.ListType{OfType: ofType}, next, true
}

func parseNullableListType(p *Parser, pos int) (ast.Type, int, bool) {
	t, next, ok := parseListType(p, pos)
	if !ok || next < len(p.Src) && p.Src[next] == '!' {
		return nil, pos, false
	}
	return t, next, true
}

func parseNonNullType(p *Parser, pos int) (ast.Type, int, bool) {
	ofType, next, ok := Choice(p, pos, parseNamedType, parseListType)
	if !ok {
		return nil, pos, false
	}
	next, ok = p.Literal(next, "!")
	if !ok {
		p.Label(pos, "nonNullType error")
		return nil, pos, false
	}
	return &ast.NonNullType{OfType: ofType}, next, true
}
