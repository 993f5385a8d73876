// Package noop defines a no-op tracer implementation.
package noop

import (
	"context"

	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/trace/tracer"
)

// Tracer is a no-op tracer that does nothing.
type Tracer struct{}

func (Tracer) TraceParse(ctx context.Context, kind string, source string) (context.Context, tracer.ParseFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}
