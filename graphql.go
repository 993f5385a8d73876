// Package graphql parses GraphQL documents, values and type references into
// the immutable syntax tree defined in package ast.
package graphql

import (
	"context"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/internal/common"
	"github.com/graph-gophers/graphql-parser/internal/document"
	"github.com/graph-gophers/graphql-parser/log"
	"github.com/graph-gophers/graphql-parser/trace/noop"
	"github.com/graph-gophers/graphql-parser/trace/tracer"
)

// Parser parses GraphQL source text. It is immutable after NewParser returns
// and may be shared between goroutines.
type Parser struct {
	tracer          tracer.Tracer
	logger          log.Logger
	panicHandler    errors.PanicHandler
	maxDocumentSize int
	cacheSize       int
	cache           *lru.Cache
}

// ParserOpt is an option for NewParser.
type ParserOpt func(*Parser)

// Tracer is used to trace parses. It defaults to noop.Tracer.
func Tracer(t tracer.Tracer) ParserOpt {
	return func(p *Parser) {
		p.tracer = t
	}
}

// Logger is used to log panics recovered while parsing. It defaults to log.DefaultLogger.
func Logger(logger log.Logger) ParserOpt {
	return func(p *Parser) {
		p.logger = logger
	}
}

// PanicHandler is used to turn recovered panics into errors. It defaults to errors.DefaultPanicHandler.
func PanicHandler(h errors.PanicHandler) ParserOpt {
	return func(p *Parser) {
		p.panicHandler = h
	}
}

// MaxDocumentSize rejects sources longer than n bytes before parsing them.
// Zero or less means no limit.
func MaxDocumentSize(n int) ParserOpt {
	return func(p *Parser) {
		p.maxDocumentSize = n
	}
}

// CacheSize keeps the documents of the last n distinct successful parses.
// Cached documents are shared between callers and must not be modified.
// Zero or less disables the cache.
func CacheSize(n int) ParserOpt {
	return func(p *Parser) {
		p.cacheSize = n
	}
}

// NewParser creates a Parser configured by opts.
func NewParser(opts ...ParserOpt) *Parser {
	p := &Parser{
		tracer:       noop.Tracer{},
		logger:       &log.DefaultLogger{},
		panicHandler: &errors.DefaultPanicHandler{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		p.cache, _ = lru.New(p.cacheSize)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses a complete document. Trailing text that is not part of a
// definition is a syntax error.
func Parse(src string) (*ast.Document, *errors.QueryError) {
	return defaultParser.Parse(context.Background(), src)
}

// ParsePrefix parses the longest document at the start of src and returns
// the text it did not consume.
func ParsePrefix(src string) (*ast.Document, string, *errors.QueryError) {
	return defaultParser.ParsePrefix(context.Background(), src)
}

// ParseValue parses a single input value such as `{a: [1, $x]}`.
func ParseValue(src string) (ast.Value, *errors.QueryError) {
	return defaultParser.ParseValue(context.Background(), src)
}

// ParseType parses a single type reference such as `[String!]!`.
func ParseType(src string) (ast.Type, *errors.QueryError) {
	return defaultParser.ParseType(context.Background(), src)
}

func (p *Parser) Parse(ctx context.Context, src string) (*ast.Document, *errors.QueryError) {
	doc, _, err := p.parseDocument(ctx, src, true)
	return doc, err
}

func (p *Parser) ParsePrefix(ctx context.Context, src string) (*ast.Document, string, *errors.QueryError) {
	doc, end, err := p.parseDocument(ctx, src, false)
	if err != nil {
		return nil, "", err
	}
	return doc, src[end:], nil
}

func (p *Parser) ParseValue(ctx context.Context, src string) (ast.Value, *errors.QueryError) {
	v, _, err := run(ctx, p, tracer.KindValue, src, true, "value error", common.ParseValue)
	return v, err
}

func (p *Parser) ParseType(ctx context.Context, src string) (ast.Type, *errors.QueryError) {
	t, _, err := run(ctx, p, tracer.KindType, src, true, "type_ error", common.ParseType)
	return t, err
}

type cached struct {
	src string
	doc *ast.Document
	end int
}

func (p *Parser) parseDocument(ctx context.Context, src string, full bool) (*ast.Document, int, *errors.QueryError) {
	var key uint64
	if p.cache != nil {
		key = xxhash.Sum64String(src)
		if v, ok := p.cache.Get(key); ok {
			c := v.(*cached)
			if c.src == src && (!full || c.end == len(src)) {
				return c.doc, c.end, nil
			}
		}
	}

	doc, end, err := run(ctx, p, tracer.KindDocument, src, full, "document error", document.Parse)
	if err == nil && p.cache != nil {
		p.cache.Add(key, &cached{src: src, doc: doc, end: end})
	}
	return doc, end, err
}

// run applies rule to src under the parser's size limit, tracer and panic
// recovery. With full set, the rule must consume all of src.
func run[T any](ctx context.Context, p *Parser, kind, src string, full bool, label string, rule func(*common.Parser, int) (T, int, bool)) (T, int, *errors.QueryError) {
	var (
		res T
		end int
	)
	if p.maxDocumentSize > 0 && len(src) > p.maxDocumentSize {
		err := errors.Errorf("%s of %d bytes exceeds the limit of %d bytes", kind, len(src), p.maxDocumentSize)
		err.Rule = "max document size"
		return res, 0, err
	}

	err := p.catchPanic(ctx, func() *errors.QueryError {
		traceCtx, finish := p.tracer.TraceParse(ctx, kind, src)
		err := p.catchPanic(traceCtx, func() *errors.QueryError {
			cp := common.NewParser(src)
			v, next, ok := rule(cp, cp.Skip(0))
			if !ok {
				return cp.Err(label)
			}
			if full && next < len(src) {
				cp.Fail(next, "end of input")
				return cp.Err(label)
			}
			res, end = v, next
			return nil
		})
		finish(err)
		return err
	})
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return res, end, nil
}

func (p *Parser) catchPanic(ctx context.Context, f func() *errors.QueryError) (err *errors.QueryError) {
	defer func() {
		if value := recover(); value != nil {
			p.logger.LogPanic(ctx, value)
			err = p.panicHandler.MakePanicError(ctx, value)
		}
	}()
	return f()
}
