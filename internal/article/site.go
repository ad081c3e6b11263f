package article

import (
	"embed"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/fantravel1/chronicsoreness/internal/render"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Theme holds the colours the page skeleton is tinted with.
type Theme struct {
	// Accent is the dark end of the header gradient, the key facts border,
	// and the key facts heading colour.
	Accent string `yaml:"accent"`

	// AccentLight is the light end of the header gradient.
	AccentLight string `yaml:"accent_light"`

	// Background fills the key facts box.
	Background string `yaml:"background"`
}

// Logo is the site name as the header and footer draw it: Lead in normal
// weight followed by Emphasis in bold.
type Logo struct {
	Lead     string `yaml:"lead"`
	Emphasis string `yaml:"emphasis"`
}

// Options configure a Site.
type Options struct {
	Name    string
	BaseURL string

	// Section is the path segment every page of this build lives under,
	// e.g. "hormonal-health".
	Section string

	Tagline    string
	Disclaimer string
	Copyright  string
	Logo       Logo
	Theme      Theme
}

// Site is the render.Site every article is rendered against. It keeps parsed
// templates cached between pages, so it should be shared by a whole build.
type Site struct {
	*render.CachedSite

	Name       string
	Section    string
	Tagline    string
	Disclaimer string
	Copyright  string
	Logo       Logo
	Theme      Theme

	baseURL *url.URL
}

// NewSite returns a Site reading the embedded article templates.
func NewSite(opts Options) (*Site, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing base URL %q: %w", opts.BaseURL, err)
	}
	templates, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("error opening embedded templates: %w", err)
	}
	return &Site{
		CachedSite: render.NewCachedSite(templates),
		Name:       opts.Name,
		Section:    opts.Section,
		Tagline:    opts.Tagline,
		Disclaimer: opts.Disclaimer,
		Copyright:  opts.Copyright,
		Logo:       opts.Logo,
		Theme:      opts.Theme,
		baseURL:    base,
	}, nil
}

// PageURL returns the absolute URL the file named filename is published at.
func (s *Site) PageURL(filename string) string {
	return s.baseURL.JoinPath(s.Section, filename).String()
}
