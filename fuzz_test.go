package graphql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/graph-gophers/graphql-parser"
	"github.com/graph-gophers/graphql-parser/printer"
)

func FuzzParse(f *testing.F) {
	// Seed the fuzzing corpus with a variety of valid and invalid documents.
	docs := []string{
		`{ hero { name } }`,
		`{ hero { name appearsIn friends { name } } }`,
		`{ hero(episode: EMPIRE) { name } }`,
		`query HeroName($ep: Episode = JEDI) { hero(episode: $ep) { name ...F ... on Droid { primaryFunction } } }`,
		`mutation { createReview(episode: EMPIRE, review: { stars: 5, commentary: "Great!" }) { stars } }`,
		`subscription @live { tick }`,
		`fragment F on Character @d { id }`,
		"type Query implements Node & Entity { node(id: ID!): Node @deprecated }\nunion U = A | B\nenum E { A B }",
		`input I { a: [Int!]! = [1, 2] } scalar Time extend type Query { now: Time }`,
		`{ f(a: 1.5e3, b: -0, c: "é\n", d: """block""", e: null, f: {}) }`,
		`{ a } }`,
		`query {`,
		`union U =`,
	}
	for _, d := range docs {
		f.Add(d)
	}

	f.Fuzz(func(t *testing.T, src string) {
		doc, err := graphql.Parse(src)
		if err != nil {
			if doc != nil {
				t.Errorf("Parse(%q) returned both a document and an error", src)
			}
			if err.Rule == "" || len(err.Locations) != 1 {
				t.Errorf("Parse(%q) returned an error without rule or location: %v", src, err)
			}
			return
		}

		printed := printer.Print(doc)
		again, err := graphql.Parse(printed)
		if err != nil {
			t.Fatalf("printed form of %q does not parse: %v\n%s", src, err, printed)
		}
		if diff := cmp.Diff(doc, again, astOpts); diff != "" {
			t.Errorf("round trip of %q changed the document (-parsed +reparsed):\n%s", src, diff)
		}
	})
}
