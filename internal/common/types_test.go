package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/internal/common"
)

func named(name string) *ast.NamedType { return &ast.NamedType{Name: name} }

func TestParseType(t *testing.T) {
	for _, test := range []struct {
		src  string
		want ast.Type
	}{
		{"String", named("String")},
		{"String!", &ast.NonNullType{OfType: named("String")}},
		{"[String]", &ast.ListType{OfType: named("String")}},
		{"[String]!", &ast.NonNullType{OfType: &ast.ListType{OfType: named("String")}}},
		{"[String!]", &ast.ListType{OfType: &ast.NonNullType{OfType: named("String")}}},
		{"[[ID]!]!", &ast.NonNullType{OfType: &ast.ListType{OfType: &ast.NonNullType{OfType: &ast.ListType{OfType: named("ID")}}}}},
		{"[ Int ! ] !", &ast.NonNullType{OfType: &ast.ListType{OfType: &ast.NonNullType{OfType: named("Int")}}}},
	} {
		t.Run(test.src, func(t *testing.T) {
			p := common.NewParser(test.src)
			got, next, ok := common.ParseType(p, 0)
			require.True(t, ok, "ParseType(%q): %v", test.src, p.Err("type_ error"))
			assert.Equal(t, test.want, got)
			assert.Equal(t, len(test.src), next)
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, test := range []struct {
		description string
		src         string
		rule        string
		offset      int
	}{
		{"nothing", "", "type_ error", 0},
		{"punctuation", "!", "type_ error", 0},
		{"empty list", "[]", "type_ error", 1},
		{"unclosed list", "[Int", "type_ error", 4},
	} {
		t.Run(test.description, func(t *testing.T) {
			p := common.NewParser(test.src)
			_, _, ok := common.ParseType(p, 0)
			require.False(t, ok)
			err := p.Err("")
			assert.Equal(t, test.rule, err.Rule)
			assert.Equal(t, test.offset, err.Offset)
		})
	}
}

func TestNonNullNeverWrapsNonNull(t *testing.T) {
	p := common.NewParser("Int!!")
	got, next, ok := common.ParseType(p, 0)
	require.True(t, ok)
	assert.Equal(t, &ast.NonNullType{OfType: named("Int")}, got)
	assert.Equal(t, 4, next, "the second ! is left unconsumed")
}

func TestTypeString(t *testing.T) {
	typ := &ast.NonNullType{OfType: &ast.ListType{OfType: &ast.NonNullType{OfType: named("Episode")}}}
	assert.Equal(t, "[Episode!]!", typ.String())
	assert.Equal(t, "NON_NULL", typ.Kind())
	assert.Equal(t, "LIST", typ.OfType.Kind())
}
