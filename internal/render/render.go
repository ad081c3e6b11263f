package render

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"maps"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

const tracerName = "github.com/fantravel1/chronicsoreness/internal/render"

// Component is a piece of UI that can be rendered to HTML.
type Component interface {
	// Templates returns the paths, or fs.Glob patterns, of the
	// html/template files that need to be parsed before the Component can
	// be rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components it relies upon. Those Components have their templates,
// functions, and resources included automatically.
type ComponentUser interface {
	// UseComponents returns the Components that this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Sites and Components can fulfill to
// add to the functions available to templates. Component functions override
// Site functions with the same name.
type FuncMapExtender interface {
	FuncMap(context.Context) template.FuncMap
}

// Page is a Component that can be passed to Render. It should contain all the
// information needed to render its Components to HTML.
type Page interface {
	Component

	// Key identifies the set of templates this Page parses, so they can
	// be cached by a TemplateCacher. Pages sharing a Key must parse the
	// same templates.
	Key(context.Context) string

	// ExecutedTemplate is the name of the template that gets executed.
	// It's usually the layout template whose blocks the Page fills in,
	// not a template of the Page itself.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data that is passed to a Page's templates.
type RenderData[SiteType Site, PageType Page] struct {
	// Site holds the configuration shared by every Page.
	Site SiteType

	// Page is the Page being rendered.
	Page PageType

	// CSS holds the stylesheets linked by the Page and its Components.
	CSS []CSSLink

	// HeaderJS holds the scripts that belong in the document head.
	HeaderJS []JSLink

	// FooterJS holds the scripts that belong at the end of the body.
	FooterJS []JSLink
}

// Render executes page against site, writing the resulting HTML to out. If
// anything goes wrong, the error is returned and out may hold a partial
// document.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) error {
	key := page.Key(ctx)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render.Render", trace.WithAttributes(
		attribute.String("page.key", key),
		attribute.String("page.type", fmt.Sprintf("%T", page)),
	))
	defer span.End()

	err := basicRender(ctx, out, site, page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		Logger(ctx).DebugContext(ctx, "error rendering page", "key", key, "error", err)
		return err
	}
	return nil
}

func basicRender[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) error {
	tmpl, err := getTemplate(ctx, site, page)
	if err != nil {
		return err
	}

	res := collectResources(ctx, getRecursiveComponents(ctx, page))
	data := RenderData[SiteType, PageType]{
		Site:     site,
		Page:     page,
		CSS:      res.css,
		HeaderJS: res.headJS,
		FooterJS: res.footJS,
	}

	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(out, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page) (*template.Template, error) {
	key := page.Key(ctx)
	cache, canCache := site.(TemplateCacher)
	if canCache {
		if cached := cache.GetCachedTemplate(ctx, key); cached != nil {
			return cached, nil
		}
	}
	tmplPaths := getComponentTemplatePaths(ctx, page)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	funcMap := getComponentFuncMap(ctx, site, page)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
	}
	if canCache {
		cache.SetCachedTemplate(ctx, key, parsed)
		Logger(ctx).DebugContext(ctx, "cached parsed templates", "key", key, "templates", tmplPaths)
	}
	return parsed, nil
}

func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}
	if uses, ok := component.(ComponentUser); ok {
		for _, child := range uses.UseComponents(ctx) {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

func getComponentTemplatePaths(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, comp := range getRecursiveComponents(ctx, component) {
		for _, path := range comp.Templates(ctx) {
			if _, ok := seen[path]; ok {
				continue
			}
			results = append(results, path)
			seen[path] = struct{}{}
		}
	}
	return results
}

func getComponentFuncMap(ctx context.Context, site Site, component Component) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	for _, comp := range getRecursiveComponents(ctx, component) {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = tmpl.New(file).Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `override`
// replacing the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, override template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	maps.Copy(res, in)
	maps.Copy(res, override)
	return res
}
