// Package query implements the grammar of executable definitions:
// operations, fragments and selection sets.
package query

import (
	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/internal/common"
)

var operationKeywords = []struct {
	keyword string
	opType  ast.OperationType
}{
	{"query", ast.Query},
	{"mutation", ast.Mutation},
	{"subscription", ast.Subscription},
}

// ParseOperationDefinition parses an operation introduced by its keyword.
//
// http://spec.graphql.org/draft/#OperationDefinition
func ParseOperationDefinition(p *common.Parser, pos int) (*ast.OperationDefinition, int, bool) {
	var opType ast.OperationType
	next, ok := pos, false
	for _, k := range operationKeywords {
		if next, ok = p.Literal(pos, k.keyword); ok {
			opType = k.opType
			break
		}
	}
	if !ok {
		return nil, pos, false
	}

	start := next
	op := &ast.OperationDefinition{Type: opType, Loc: p.Location(pos)}
	if name, n, ok := p.Name(next); ok {
		op.Name, next = name, n
	}
	op.VariableDefinitions, next = parseVariableDefinitions(p, next)
	op.Directives, next = common.ParseDirectives(p, next)
	op.SelectionSet, next, ok = ParseSelectionSet(p, next)
	if !ok {
		p.Label(start, "operationDefinition error")
		return nil, pos, false
	}
	return op, next, true
}

// ParseShorthandQuery parses a bare selection set as an anonymous query
// without variables or directives.
//
// http://spec.graphql.org/draft/#sec-Anonymous-Operation-Definitions
func ParseShorthandQuery(p *common.Parser, pos int) (*ast.OperationDefinition, int, bool) {
	sels, next, ok := ParseSelectionSet(p, pos)
	if !ok {
		return nil, pos, false
	}
	op := &ast.OperationDefinition{Type: ast.Query, Loc: p.Location(pos)}
	op.SelectionSet = sels
	return op, next, true
}

func parseVariableDefinitions(p *common.Parser, pos int) ([]*ast.VariableDefinition, int) {
	vars, next, ok := common.Delimited(p, pos, "(", parseVariableDefinition, ")")
	if !ok {
		return nil, pos
	}
	return vars, next
}

func parseVariableDefinition(p *common.Parser, pos int) (*ast.VariableDefinition, int, bool) {
	next, ok := p.Literal(pos, "$")
	if !ok {
		return nil, pos, false
	}
	v := &ast.VariableDefinition{}
	v.Name, next, ok = p.Name(next)
	if ok {
		next, ok = p.Literal(next, ":")
	}
	if ok {
		v.Type, next, ok = common.ParseType(p, next)
	}
	if ok {
		if n, hasDefault := p.Literal(next, "="); hasDefault {
			v.DefaultValue, next, ok = common.ParseValue(p, n)
		}
	}
	if !ok {
		p.Label(pos, "variableDefinition error")
		return nil, pos, false
	}
	return v, next, true
}

// ParseFragmentDefinition parses `fragment Name on Type @directives { ... }`.
//
// http://spec.graphql.org/draft/#FragmentDefinition
func ParseFragmentDefinition(p *common.Parser, pos int) (*ast.FragmentDefinition, int, bool) {
	next, ok := p.Literal(pos, "fragment")
	if !ok {
		return nil, pos, false
	}
	start := next
	f := &ast.FragmentDefinition{Loc: p.Location(pos)}
	f.Name, next, ok = parseFragmentName(p, next)
	if ok {
		f.TypeCondition, next, ok = parseTypeCondition(p, next)
	}
	if ok {
		f.Directives, next = common.ParseDirectives(p, next)
		f.SelectionSet, next, ok = ParseSelectionSet(p, next)
	}
	if !ok {
		p.Label(start, "fragmentDefinition error")
		return nil, pos, false
	}
	return f, next, true
}

// ParseSelectionSet parses a braced, non-empty list of selections.
//
// http://spec.graphql.org/draft/#SelectionSet
func ParseSelectionSet(p *common.Parser, pos int) (ast.SelectionSet, int, bool) {
	return common.Delimited(p, pos, "{", parseSelection, "}")
}

// parseSelection tries a field first, then an inline fragment and finally a
// fragment spread. Both fragment forms start with "..."; only when the "on"
// keyword is missing is the input a spread.
func parseSelection(p *common.Parser, pos int) (ast.Selection, int, bool) {
	sel, next, ok := common.Choice(p, pos, parseField, parseInlineFragment, parseFragmentSpread)
	if !ok {
		p.Label(pos, "selection error")
	}
	return sel, next, ok
}

func parseField(p *common.Parser, pos int) (ast.Selection, int, bool) {
	f := &ast.Field{}
	next := pos
	if alias, n, ok := parseAlias(p, pos); ok {
		f.Alias, next = alias, n
	}
	name, next, ok := p.Name(next)
	if !ok {
		return nil, pos, false
	}
	f.Name = name
	f.Loc = p.Location(pos)
	f.Arguments, next = common.ParseArguments(p, next)
	f.Directives, next = common.ParseDirectives(p, next)
	if sels, n, ok := ParseSelectionSet(p, next); ok {
		f.SelectionSet, next = sels, n
	}
	return f, next, true
}

// parseAlias matches a name immediately followed by ':'.
func parseAlias(p *common.Parser, pos int) (string, int, bool) {
	alias, next, ok := p.Name(pos)
	if !ok {
		return "", pos, false
	}
	if next, ok = p.Literal(next, ":"); !ok {
		return "", pos, false
	}
	return alias, next, true
}

func parseInlineFragment(p *common.Parser, pos int) (ast.Selection, int, bool) {
	next, ok := p.Literal(pos, "...")
	if !ok {
		return nil, pos, false
	}
	f := &ast.InlineFragment{Loc: p.Location(pos)}
	f.TypeCondition, next, ok = parseTypeCondition(p, next)
	if !ok {
		return nil, pos, false
	}
	f.Directives, next = common.ParseDirectives(p, next)
	f.SelectionSet, next, ok = ParseSelectionSet(p, next)
	if !ok {
		return nil, pos, false
	}
	return f, next, true
}

func parseFragmentSpread(p *common.Parser, pos int) (ast.Selection, int, bool) {
	next, ok := p.Literal(pos, "...")
	if !ok {
		return nil, pos, false
	}
	fs := &ast.FragmentSpread{Loc: p.Location(pos)}
	fs.Name, next, ok = parseFragmentName(p, next)
	if !ok {
		return nil, pos, false
	}
	fs.Directives, next = common.ParseDirectives(p, next)
	return fs, next, true
}

func parseTypeCondition(p *common.Parser, pos int) (*ast.NamedType, int, bool) {
	next, ok := p.Literal(pos, "on")
	if !ok {
		return nil, pos, false
	}
	t, next, ok := common.ParseNamedType(p, next)
	if !ok {
		return nil, pos, false
	}
	return t, next, true
}

// parseFragmentName is any name but "on".
func parseFragmentName(p *common.Parser, pos int) (string, int, bool) {
	name, next, ok := p.Name(pos)
	if !ok {
		return "", pos, false
	}
	if name == "on" {
		p.Fail(pos, "fragment name")
		return "", pos, false
	}
	return name, next, true
}
