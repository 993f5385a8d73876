package printer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graph-gophers/graphql-parser"
	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/printer"
)

const heroQuery = `
query HeroQuery($episode: Episode = JEDI, $withFriends: Boolean!) @cached(ttl: 60) {
  hero(episode: $episode) {
    name
    ... on Droid { primaryFunction }
    friends @include(if: $withFriends) { ...FriendFields }
  }
  search(filter: {text: "a\"b\n", limit: 10, ratio: 0.5, tags: [], big: 1e3}) { __typename }
}
fragment FriendFields on Character { id name }
query { me }
`

const starwarsSchema = `
scalar Time @specifiedBy(url: "https://example.com")
type Query implements Node & Entity @key(fields: "id") {
	node(id: ID!, first: Int = 10): Node
	list: [String!]! @deprecated(reason: "no")
}
interface Node { id: ID! }
union SearchResult = | Human | Droid
enum Episode { NEWHOPE EMPIRE @deprecated JEDI }
input ReviewInput { stars: Int! = 5 commentary: String @length(max: 280) }
extend type Query { now: Time }
`

func TestPrint(t *testing.T) {
	g := goldie.New(t)

	for name, src := range map[string]string{
		"query":  heroQuery,
		"schema": starwarsSchema,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := graphql.Parse(src)
			require.Nil(t, err)
			g.Assert(t, name, []byte(printer.Print(doc)))
		})
	}
}

var astOpts = cmp.Options{
	cmpopts.IgnoreTypes(errors.Location{}),
	cmpopts.EquateEmpty(),
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		description string
		src         string
	}{
		{"golden query", heroQuery},
		{"golden schema", starwarsSchema},
		{"floats", `{ f(a: 1.0, b: -0.25, c: 99999999999999999999, d: 15e-1, e: 1.5e300) }`},
		{"strings", "{ f(a: \"\\u0001\\t\\\\\", b: \"\"\"\n  block \\\"\"\" text\n\"\"\", c: \"😀\") }"},
		{"values", `{ f(a: null, b: [true, false, RED], c: {x: {y: [$v]}}) }`},
		{"subscription", `subscription S @live { tick { at } }`},
		{"extension", `extend type T implements A { f(x: [Int] = [1]): [T!] }`},
	} {
		t.Run(tc.description, func(t *testing.T) {
			want, err := graphql.Parse(tc.src)
			require.Nil(t, err)

			printed := printer.Print(want)
			got, err := graphql.Parse(printed)
			require.Nil(t, err, "printed document does not parse:\n%s", printed)

			if diff := cmp.Diff(want, got, astOpts); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\nprinted:\n%s", diff, printed)
			}
			assert.Equal(t, printed, printer.Print(got))
		})
	}
}

func TestPrintValue(t *testing.T) {
	for _, tc := range []struct {
		value ast.Value
		want  string
	}{
		{&ast.IntValue{Value: -3}, "-3"},
		{&ast.FloatValue{Value: 2}, "2.0"},
		{&ast.FloatValue{Value: 1e20}, "100000000000000000000.0"},
		{&ast.FloatValue{Value: 0.1}, "0.1"},
		{&ast.StringValue{Value: "line\nbreak \"quoted\" \x01"}, `"line\nbreak \"quoted\" \u0001"`},
		{&ast.StringValue{Value: "héllo"}, `"héllo"`},
		{&ast.ListValue{}, "[]"},
		{&ast.ObjectValue{}, "{}"},
		{&ast.NullValue{}, "null"},
	} {
		assert.Equal(t, tc.want, printer.PrintValue(tc.value))
	}
}

func TestPrintType(t *testing.T) {
	typ, err := graphql.ParseType("[ [Int!] ]!")
	require.Nil(t, err)
	assert.Equal(t, "[[Int!]]!", printer.PrintType(typ))
}

func TestPrintAnonymousQuery(t *testing.T) {
	anonymous := func(field string) ast.Definition {
		return &ast.OperationDefinition{Type: ast.Query, Node: ast.Node{
			SelectionSet: ast.SelectionSet{&ast.Field{Name: field}},
		}}
	}

	for _, tc := range []struct {
		description string
		doc         *ast.Document
		want        string
	}{
		{
			description: "alone",
			doc:         &ast.Document{Definitions: []ast.Definition{anonymous("a")}},
			want:        "{\n  a\n}\n",
		},
		{
			description: "beside other definitions",
			doc:         &ast.Document{Definitions: []ast.Definition{anonymous("a"), anonymous("b")}},
			want:        "query {\n  a\n}\n\nquery {\n  b\n}\n",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			printed := printer.Print(tc.doc)
			assert.Equal(t, tc.want, printed)

			got, err := graphql.Parse(printed)
			require.Nil(t, err)
			assert.Len(t, got.Definitions, len(tc.doc.Definitions))
		})
	}
}
