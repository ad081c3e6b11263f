package render_test

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"strings"

	"github.com/fantravel1/chronicsoreness/internal/render"
)

type FuncMapSite struct {
	*render.CachedSite
}

func (FuncMapSite) FuncMap(_ context.Context) template.FuncMap {
	// available to every page on the site
	return template.FuncMap{
		"shout": strings.ToUpper,
		"greet": func(name string) string { return "Hello, " + name },
	}
}

type FuncMapPage struct {
	Name  string
	Items []string
}

func (FuncMapPage) Templates(_ context.Context) []string {
	return []string{"page.html.tmpl"}
}

func (FuncMapPage) Key(_ context.Context) string {
	return "page.html.tmpl"
}

func (FuncMapPage) ExecutedTemplate(_ context.Context) string {
	return "page.html.tmpl"
}

func (FuncMapPage) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		// overrides the site's greet for this page only
		"greet": func(name string) string { return "Welcome back, " + name },
		"join":  func(items []string) string { return strings.Join(items, ", ") },
	}
}

func ExampleRender_funcMaps() {
	templates := templateFS(map[string]string{
		"page.html.tmpl": `<p>{{ greet .Page.Name }}. {{ shout (join .Page.Items) }}.</p>`,
	})
	ctx := render.LoggingContext(context.Background(), slog.Default())

	site := FuncMapSite{CachedSite: render.NewCachedSite(templates)}
	page := FuncMapPage{Name: "Visitor", Items: []string{"facts", "sections", "references"}}
	if err := render.Render(ctx, os.Stdout, site, page); err != nil {
		fmt.Println(err)
	}

	// Output:
	// <p>Welcome back, Visitor. FACTS, SECTIONS, REFERENCES.</p>
}
