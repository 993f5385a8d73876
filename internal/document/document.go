// Package document assembles executable and type-system definitions into a
// document.
package document

import (
	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/internal/common"
	"github.com/graph-gophers/graphql-parser/internal/query"
	"github.com/graph-gophers/graphql-parser/internal/schema"
)

// Parse skips leading insignificant characters and parses one or more
// definitions. A bare selection set is an anonymous query and is only read
// when no keyworded definition starts the document; it is then the sole
// definition. Parse returns the document and the offset of the first byte it
// did not consume; requiring the whole input is up to the caller.
//
// http://spec.graphql.org/draft/#Document
func Parse(p *common.Parser, pos int) (*ast.Document, int, bool) {
	start := p.Skip(pos)
	if defs, next, ok := common.Many1(p, start, parseDefinition); ok {
		return &ast.Document{Definitions: defs}, next, true
	}
	if op, next, ok := query.ParseShorthandQuery(p, start); ok {
		return &ast.Document{Definitions: []ast.Definition{op}}, next, true
	}
	p.Label(start, "document error")
	return nil, pos, false
}

// parseDefinition dispatches on the leading keyword.
func parseDefinition(p *common.Parser, pos int) (ast.Definition, int, bool) {
	return common.Choice(p, pos,
		parseOperationDefinition,
		parseFragmentDefinition,
		parseTypeDefinition,
	)
}

func parseOperationDefinition(p *common.Parser, pos int) (ast.Definition, int, bool) {
	op, next, ok := query.ParseOperationDefinition(p, pos)
	if !ok {
		return nil, pos, false
	}
	return op, next, true
}

func parseFragmentDefinition(p *common.Parser, pos int) (ast.Definition, int, bool) {
	f, next, ok := query.ParseFragmentDefinition(p, pos)
	if !ok {
		return nil, pos, false
	}
	return f, next, true
}

func parseTypeDefinition(p *common.Parser, pos int) (ast.Definition, int, bool) {
	t, next, ok := schema.ParseTypeDefinition(p, pos)
	if !ok {
		return nil, pos, false
	}
	return t, next, true
}
