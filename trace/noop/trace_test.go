package noop_test

import (
	"context"
	"testing"

	"github.com/graph-gophers/graphql-parser"
	"github.com/graph-gophers/graphql-parser/trace/noop"
	"github.com/graph-gophers/graphql-parser/trace/tracer"
)

func TestInterfaceImplementation(t *testing.T) {
	var _ tracer.Tracer = &noop.Tracer{}
	var _ tracer.Tracer = noop.Tracer{}
}

func TestTracerOption(t *testing.T) {
	p := graphql.NewParser(graphql.Tracer(noop.Tracer{}))
	if _, err := p.Parse(context.Background(), "{ hero { name } }"); err != nil {
		t.Fatal(err)
	}
}
