package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/trace/tracer"
)

// DefaultTracer creates a tracer using a default name.
func DefaultTracer() *Tracer {
	return &Tracer{
		Tracer: otel.Tracer("graphql-parser"),
	}
}

// Tracer is an OpenTelemetry implementation for graphql-parser. Set the Tracer
// property to your tracer instance as required.
type Tracer struct {
	Tracer oteltrace.Tracer
}

func (t *Tracer) TraceParse(ctx context.Context, kind string, source string) (context.Context, tracer.ParseFinishFunc) {
	spanCtx, span := t.Tracer.Start(ctx, "GraphQL Parse")
	span.SetAttributes(
		attribute.String("graphql.kind", kind),
		attribute.String("graphql.document", source),
		attribute.Int("graphql.size", len(source)),
	)

	return spanCtx, func(err *errors.QueryError) {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("graphql.rule", err.Rule))
		}
		span.End()
	}
}
