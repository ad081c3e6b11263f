// Command chronicsoreness generates the static article pages of a site
// section from a directory of YAML records.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"

	"github.com/fantravel1/chronicsoreness/internal/article"
	"github.com/fantravel1/chronicsoreness/internal/build"
	"github.com/fantravel1/chronicsoreness/internal/config"
	"github.com/fantravel1/chronicsoreness/internal/content"
	"github.com/fantravel1/chronicsoreness/internal/render"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	contentDir string
	outputDir  string
	workers    int
	logMode    string
	trace      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("chronicsoreness", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&opts.configPath, "config", "chronicsoreness.yaml", "path to the site config (YAML); missing means defaults")
	fset.StringVar(&opts.contentDir, "content", "", "directory of page records (overrides content_dir)")
	fset.StringVar(&opts.outputDir, "out", "", "directory pages are written to (overrides output_dir)")
	fset.IntVar(&opts.workers, "workers", 0, "pages rendered at once (overrides workers)")
	fset.StringVar(&opts.logMode, "log-mode", "dev", "logger mode: dev or prod")
	fset.BoolVar(&opts.trace, "trace", false, "print trace spans to stderr")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// apply lays the command line over cfg.
func (o options) apply(cfg config.Config) config.Config {
	if o.contentDir != "" {
		cfg.ContentDir = o.contentDir
	}
	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}
	if o.workers > 0 {
		cfg.Workers = o.workers
	}
	return cfg
}

func newLogger(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}

func initTracing(w io.Writer) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("error creating trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	zl, err := newLogger(opts.logMode)
	if err != nil {
		return fmt.Errorf("error building logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := slog.New(zapslog.NewHandler(zl.Core()))
	ctx = render.LoggingContext(ctx, logger)

	if opts.trace {
		shutdown, err := initTracing(stderr)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.ErrorContext(ctx, "error flushing trace spans", "error", err)
			}
		}()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = opts.apply(cfg)

	site, err := article.NewSite(cfg.ArticleOptions())
	if err != nil {
		return err
	}
	records, err := content.Load(ctx, os.DirFS(cfg.ContentDir))
	if err != nil {
		return fmt.Errorf("error loading content from %q: %w", cfg.ContentDir, err)
	}
	logger.InfoContext(ctx, "loaded content", "records", len(records), "content_dir", cfg.ContentDir)

	builder := build.Builder{
		Site:      site,
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
	}
	_, err = builder.Build(ctx, records)
	return err
}
