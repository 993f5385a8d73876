package log_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/graph-gophers/graphql-parser"
	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/log"
	"github.com/graph-gophers/graphql-parser/trace/tracer"
)

type panickingTracer struct{}

func (panickingTracer) TraceParse(ctx context.Context, kind string, source string) (context.Context, tracer.ParseFinishFunc) {
	return ctx, func(*errors.QueryError) {
		panic("something went wrong")
	}
}

func ExampleLoggerFunc() {
	logfn := log.LoggerFunc(func(ctx context.Context, err interface{}) {
		// Here you can handle the panic, e.g., log it or send it to an error tracking service.
		fmt.Printf("graphql: panic occurred: %v", err)
	})

	p := graphql.NewParser(
		graphql.Logger(logfn),
		graphql.Tracer(panickingTracer{}),
	)
	// The panic raised by the tracer is recovered and handed to the LoggerFunc.
	p.Parse(context.Background(), "{ hello }")

	// Output:
	// graphql: panic occurred: something went wrong
}

func TestDefaultLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	l := &log.DefaultLogger{Logger: zap.New(core)}

	l.LogPanic(context.Background(), "boom")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "graphql: panic occurred", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "boom", fields["panic"])
	assert.Contains(t, fields, "stack")
}

func TestDefaultLoggerUsesGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	l := &log.DefaultLogger{}
	l.LogPanic(context.Background(), fmt.Errorf("bad state"))

	assert.Equal(t, 1, logs.FilterMessage("graphql: panic occurred").Len())
}
