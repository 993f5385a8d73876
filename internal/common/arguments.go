package common

import "github.com/graph-gophers/graphql-parser/ast"

// ParseArguments parses an optional parenthesized, non-empty argument list.
// When there is none, or it is malformed, it returns an empty list and pos.
//
// http://spec.graphql.org/draft/#Arguments
func ParseArguments(p *Parser, pos int) (ast.ArgumentList, int) {
	args, next, ok := Delimited(p, pos, "(", parseArgument, ")")
	if !ok {
		return nil, pos
	}
	return args, next
}

func parseArgument(p *Parser, pos int) (*ast.Argument, int, bool) {
	name, next, ok := p.Name(pos)
	if ok {
		next, ok = p.Literal(next, ":")
	}
	var value ast.Value
	if ok {
		value, next, ok = ParseValue(p, next)
	}
	if !ok {
		p.Label(pos, "argument error")
		return nil, pos, false
	}
	return &ast.Argument{Name: name, Value: value}, next, true
}

// ParseDirectives parses zero or more directives.
//
// http://spec.graphql.org/draft/#Directives
func ParseDirectives(p *Parser, pos int) (ast.DirectiveList, int) {
	return Many(p, pos, parseDirective)
}

func parseDirective(p *Parser, pos int) (*ast.Directive, int, bool) {
	next, ok := p.Literal(pos, "@")
	if !ok {
		return nil, pos, false
	}
	name, next, ok := p.Name(next)
	if !ok {
		p.Label(pos, "directive error")
		return nil, pos, false
	}
	d := &ast.Directive{Name: name}
	d.Arguments, next = ParseArguments(p, next)
	return d, next, true
}
