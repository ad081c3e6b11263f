package render

import (
	"context"
	"html/template"
	"io/fs"
	"sync"
)

// Site is the singleton every Page is rendered against. It holds the
// configuration shared by all pages of a build and surfaces the templates
// those pages rely on as an fs.FS.
type Site interface {
	// TemplateDir returns an fs.FS containing all the templates needed to
	// render every Page on the Site.
	//
	// The paths within the fs.FS should match the output of Templates for
	// Components.
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is an optional interface for Sites. Those fulfilling it get
// to skip parsing a Page's templates again when another Page with the same Key
// is rendered. Only the parsed template is cached; the data each Page
// executes it with is not, so the output can differ between Pages.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template stored under key,
	// or nil if nothing has been stored yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores tmpl under key, for later retrieval with
	// GetCachedTemplate.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

var _ Site = &CachedSite{}
var _ TemplateCacher = &CachedSite{}

// CachedSite fulfills Site and TemplateCacher, keeping parsed templates in
// memory and exposing the fs.FS passed to NewCachedSite. It is meant to be
// embedded in other Site implementations. The empty value is not usable; use
// NewCachedSite.
type CachedSite struct {
	templateCache   map[string]*template.Template
	templateCacheMu sync.RWMutex

	templateDir fs.FS
}

// NewCachedSite returns a CachedSite that reads templates from templates.
func NewCachedSite(templates fs.FS) *CachedSite {
	return &CachedSite{
		templateCache: map[string]*template.Template{},
		templateDir:   templates,
	}
}

// GetCachedTemplate returns the cached template associated with key, or nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.templateCacheMu.RLock()
	defer s.templateCacheMu.RUnlock()
	return s.templateCache[key]
}

// SetCachedTemplate caches a template for the given key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templateCacheMu.Lock()
	defer s.templateCacheMu.Unlock()
	s.templateCache[key] = tmpl
}

// TemplateDir returns the fs.FS passed to NewCachedSite.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}
