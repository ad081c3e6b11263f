// Package build renders article records and writes them to disk.
package build

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/fantravel1/chronicsoreness/internal/article"
	"github.com/fantravel1/chronicsoreness/internal/render"
)

const tracerName = "github.com/fantravel1/chronicsoreness/internal/build"

// pageMode lets the web server read the generated pages.
const pageMode = 0o644

// Builder writes one HTML file per record into OutputDir.
type Builder struct {
	Site *article.Site

	// OutputDir must already exist; a missing directory fails the build.
	OutputDir string

	// Workers is how many pages are rendered at once. Anything below 1
	// means one page at a time, in order.
	Workers int
}

// Build renders and writes every record, returning the written paths in the
// order of records. It stops at the first page that fails and returns its
// error; pages written before that stay on disk.
func (b Builder) Build(ctx context.Context, records []article.Record) ([]string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "build.Build", trace.WithAttributes(
		attribute.Int("build.pages", len(records)),
		attribute.String("build.output_dir", b.OutputDir),
	))
	defer span.End()

	paths := make([]string, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.Workers, 1))
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := b.writePage(gctx, rec)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build failed")
		return nil, err
	}
	render.Logger(ctx).InfoContext(ctx, "build complete", "pages", len(paths), "output_dir", b.OutputDir)
	return paths, nil
}

func (b Builder) writePage(ctx context.Context, rec article.Record) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "build.writePage", trace.WithAttributes(
		attribute.String("page.filename", rec.Filename),
	))
	defer span.End()

	html, err := article.RenderPage(ctx, b.Site, rec)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return "", fmt.Errorf("error rendering %q: %w", rec.Filename, err)
	}
	path := filepath.Join(b.OutputDir, rec.Filename)
	if err := atomic.WriteFile(path, bytes.NewReader(html)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return "", fmt.Errorf("error writing %q: %w", path, err)
	}
	if err := os.Chmod(path, pageMode); err != nil {
		return "", fmt.Errorf("error setting permissions on %q: %w", path, err)
	}
	render.Logger(ctx).InfoContext(ctx, "created page", "filename", rec.Filename, "bytes", len(html))
	return path, nil
}
