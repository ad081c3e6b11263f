package render_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fantravel1/chronicsoreness/internal/render"
)

type fixedPage struct {
	templates []string
	key       string
	executed  string
	css       []render.CSSLink
	js        []render.JSLink
	children  []render.Component
}

func (p fixedPage) Templates(_ context.Context) []string { return p.templates }

func (p fixedPage) Key(_ context.Context) string { return p.key }

func (p fixedPage) ExecutedTemplate(_ context.Context) string { return p.executed }

func (p fixedPage) LinkCSS(_ context.Context) []render.CSSLink { return p.css }

func (p fixedPage) LinkJS(_ context.Context) []render.JSLink { return p.js }

func (p fixedPage) UseComponents(_ context.Context) []render.Component { return p.children }

type fixedComponent struct {
	templates []string
	css       []render.CSSLink
	js        []render.JSLink
}

func (c fixedComponent) Templates(_ context.Context) []string { return c.templates }

func (c fixedComponent) LinkCSS(_ context.Context) []render.CSSLink { return c.css }

func (c fixedComponent) LinkJS(_ context.Context) []render.JSLink { return c.js }

func TestRenderMissingTemplate(t *testing.T) {
	t.Parallel()

	ctx := render.LoggingContext(context.Background(), slog.Default())
	site := render.NewCachedSite(templateFS(map[string]string{
		"base.tmpl": `base`,
	}))
	page := fixedPage{
		templates: []string{"base.tmpl", "missing.tmpl"},
		key:       "missing",
		executed:  "base.tmpl",
	}

	var out bytes.Buffer
	err := render.Render(ctx, &out, site, page)
	if !errors.Is(err, render.ErrTemplatePatternMatchesNoFiles) {
		t.Errorf("Expected %v, got %v", render.ErrTemplatePatternMatchesNoFiles, err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output, got %q", out.String())
	}
}

func TestRenderNoTemplates(t *testing.T) {
	t.Parallel()

	site := render.NewCachedSite(templateFS(nil))
	page := fixedPage{key: "empty", executed: "base.tmpl"}

	err := render.Render(context.Background(), &bytes.Buffer{}, site, page)
	if !errors.Is(err, render.ErrNoTemplatePath) {
		t.Errorf("Expected %v, got %v", render.ErrNoTemplatePath, err)
	}
}

func TestRenderExecutionError(t *testing.T) {
	t.Parallel()

	site := render.NewCachedSite(templateFS(map[string]string{
		"base.tmpl": `before {{ .ImaginaryData }} after`,
	}))
	page := fixedPage{
		templates: []string{"base.tmpl"},
		key:       "exec-error",
		executed:  "base.tmpl",
	}

	var logs bytes.Buffer
	ctx := render.LoggingContext(context.Background(), slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	err := render.Render(ctx, &bytes.Buffer{}, site, page)
	if err == nil {
		t.Fatal("Expected an error executing a template with an unknown field, got nil")
	}
	if !strings.Contains(err.Error(), `"base.tmpl"`) {
		t.Errorf("Expected error to name the executed template, got %q", err)
	}
	// the caller owns reporting the returned error
	if strings.Contains(logs.String(), `"level":"ERROR"`) {
		t.Errorf("Expected no error-level log for a returned error, got %s", logs.String())
	}
	if !strings.Contains(logs.String(), `"msg":"error rendering page"`) {
		t.Errorf("Expected a debug record of the failure, got %s", logs.String())
	}
}

func TestRenderDeduplicatesResources(t *testing.T) {
	t.Parallel()

	site := render.NewCachedSite(templateFS(map[string]string{
		"base.tmpl": `{{ range .CSS }}[css {{ .Href }}]{{ end }}` +
			`{{ range .HeaderJS }}[head {{ .Src }}]{{ end }}` +
			`{{ range .FooterJS }}[foot {{ .Src }}]{{ end }}`,
	}))
	shared := fixedComponent{
		css: []render.CSSLink{{Href: "/shared.css"}},
		js:  []render.JSLink{{Src: "/shared.js", PlaceInFooter: true}},
	}
	page := fixedPage{
		templates: []string{"base.tmpl"},
		key:       "dedupe",
		executed:  "base.tmpl",
		css:       []render.CSSLink{{Href: "/page.css"}, {Href: "/shared.css"}},
		js:        []render.JSLink{{Src: "/analytics.js"}},
		children: []render.Component{
			shared,
			fixedComponent{templates: []string{"base.tmpl"}, css: []render.CSSLink{{Href: "/page.css"}}},
			shared,
		},
	}

	var out bytes.Buffer
	if err := render.Render(context.Background(), &out, site, page); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := "[css /page.css][css /shared.css][head /analytics.js][foot /shared.js]"
	if got := out.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestLoggerDefaultsToDiscard(t *testing.T) {
	t.Parallel()

	logger := render.Logger(context.Background())
	if logger == nil {
		t.Fatal("Expected a logger, got nil")
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected the default logger to discard every level")
	}
}
