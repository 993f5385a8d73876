package opentracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/opentracing/opentracing-go/log"

	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/trace/tracer"
)

// Tracer implements the graphql-parser Tracer interface and creates OpenTracing spans.
type Tracer struct{}

func (Tracer) TraceParse(ctx context.Context, kind string, source string) (context.Context, tracer.ParseFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContext(ctx, "GraphQL parse")
	span.SetTag("graphql.kind", kind)
	span.SetTag("graphql.document", source)
	span.SetTag("graphql.size", len(source))

	return spanCtx, func(err *errors.QueryError) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
			span.LogFields(log.String("graphql.rule", err.Rule))
			if len(err.Locations) > 0 {
				span.LogFields(
					log.Int("graphql.line", err.Locations[0].Line),
					log.Int("graphql.column", err.Locations[0].Column),
				)
			}
		}
		span.Finish()
	}
}
