// The tracer package provides tracing functionality.
package tracer

import (
	"context"

	"github.com/graph-gophers/graphql-parser/errors"
)

// ParseFinishFunc is called once a parse completes. err is nil on success.
type ParseFinishFunc = func(err *errors.QueryError)

// Tracer is notified around every document, value or type parse.
type Tracer interface {
	TraceParse(ctx context.Context, kind string, source string) (context.Context, ParseFinishFunc)
}

// Parse kinds reported to TraceParse.
const (
	KindDocument = "document"
	KindValue    = "value"
	KindType     = "type"
)
