package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the interface used to log panics recovered while parsing. It is settable via graphql.NewParser.
type Logger interface {
	LogPanic(ctx context.Context, value interface{})
}

// LoggerFunc is a function type that implements the Logger interface.
type LoggerFunc func(ctx context.Context, value interface{})

// LogPanic calls the LoggerFunc with the given context and panic value.
func (f LoggerFunc) LogPanic(ctx context.Context, value interface{}) {
	f(ctx, value)
}

// DefaultLogger logs recovered panics through zap. A nil Logger uses the
// global zap logger.
type DefaultLogger struct {
	Logger *zap.Logger
}

// LogPanic is used to log recovered panic values that occur while parsing.
func (l *DefaultLogger) LogPanic(ctx context.Context, value interface{}) {
	logger := l.Logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Error("graphql: panic occurred",
		zap.Any("panic", value),
		zap.Stack("stack"),
	)
}
