package main

import (
	"context"
	"fmt"
	"io"
	"os"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/graph-gophers/graphql-parser"
	"github.com/graph-gophers/graphql-parser/ast"
	"github.com/graph-gophers/graphql-parser/config"
	"github.com/graph-gophers/graphql-parser/log"
	gqlopentracing "github.com/graph-gophers/graphql-parser/trace/opentracing"
)

const serviceName = "graphql-parse"

// app is the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	parser *graphql.Parser
	closer io.Closer
}

// execute runs the command line args and releases what the run acquired.
func execute(args []string, in io.Reader, out, errOut io.Writer) error {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	a.close()
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "graphql-parse parses GraphQL documents",
		Long:          "graphql-parse parses GraphQL executable and type system documents and reports syntax errors.\nFiles are read from the arguments, or from stdin when there are none.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	d := config.Default()
	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool("strict", d.Strict, "require the whole input to be a document")
	flags.Int("max-size", d.MaxDocumentSize, "reject documents larger than this many bytes (0 disables the limit)")
	flags.Int("cache-size", d.CacheSize, "number of parsed documents to keep (0 disables the cache)")
	flags.Bool("trace", d.Trace, "report parse spans to Jaeger, configured from the JAEGER_* environment")

	_ = a.v.BindPFlag(config.KeyConfigFile, flags.Lookup("config"))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyStrict, flags.Lookup("strict"))
	_ = a.v.BindPFlag(config.KeyMaxSize, flags.Lookup("max-size"))
	_ = a.v.BindPFlag(config.KeyCacheSize, flags.Lookup("cache-size"))
	_ = a.v.BindPFlag(config.KeyTrace, flags.Lookup("trace"))

	root.AddCommand(newParseCmd(a), newFmtCmd(a), newCheckCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	)
	a.logger = zap.New(core).With(zap.Stringer("run", ksuid.New()))

	opts := []graphql.ParserOpt{
		graphql.Logger(&log.DefaultLogger{Logger: a.logger}),
		graphql.MaxDocumentSize(cfg.MaxDocumentSize),
		graphql.CacheSize(cfg.CacheSize),
	}
	if cfg.Trace {
		if err := a.setupTracing(); err != nil {
			return err
		}
		opts = append(opts, graphql.Tracer(gqlopentracing.Tracer{}))
	}
	a.parser = graphql.NewParser(opts...)

	a.logger.Debug("configured",
		zap.Bool("strict", cfg.Strict),
		zap.Int("max_size", cfg.MaxDocumentSize),
		zap.Int("cache_size", cfg.CacheSize),
		zap.Bool("trace", cfg.Trace),
	)
	return nil
}

func (a *app) setupTracing() error {
	jcfg, err := jaegercfg.FromEnv()
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	if jcfg.ServiceName == "" {
		jcfg.ServiceName = serviceName
	}
	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaegerzap.NewLogger(a.logger)))
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	opentracing.SetGlobalTracer(tracer)
	a.closer = closer
	return nil
}

func (a *app) close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Warn("closing tracer", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

type input struct {
	name string
	src  string
}

// inputs reads the files named by args, or stdin when there are none.
func inputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []input{{name: "<stdin>", src: string(b)}}, nil
	}
	var ins []input
	for _, name := range args {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		ins = append(ins, input{name: name, src: string(b)})
	}
	return ins, nil
}

// parse parses one input. In non-strict mode trailing text that is not a
// definition is logged and dropped.
func (a *app) parse(ctx context.Context, in input) (*ast.Document, error) {
	if a.cfg.Strict {
		doc, err := a.parser.Parse(ctx, in.src)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}

	doc, rest, err := a.parser.ParsePrefix(ctx, in.src)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		a.logger.Warn("ignoring text after the last definition",
			zap.String("file", in.name),
			zap.Int("offset", len(in.src)-len(rest)),
			zap.Int("bytes", len(rest)),
		)
	}
	return doc, nil
}
