package article

import (
	"bytes"
	"context"

	"github.com/fantravel1/chronicsoreness/internal/render"
)

var _ render.Page = Page{}

// Page is a Record laid out as a full article.
type Page struct {
	Record

	Layout Layout

	canonicalURL string
}

// NewPage returns the Page for rec, published under site.
func NewPage(site *Site, rec Record) Page {
	return Page{
		Record:       rec,
		Layout:       DefaultLayout(),
		canonicalURL: site.PageURL(rec.Filename),
	}
}

func (Page) Templates(_ context.Context) []string {
	return []string{"article.html.tmpl"}
}

func (p Page) UseComponents(_ context.Context) []render.Component {
	return []render.Component{p.Layout}
}

// Key is shared by every article: they all parse the same templates.
func (Page) Key(_ context.Context) string {
	return "article.html.tmpl"
}

func (p Page) ExecutedTemplate(_ context.Context) string {
	return p.Layout.BaseTemplate()
}

// CanonicalURL is the absolute URL the page is published at.
func (p Page) CanonicalURL() string {
	return p.canonicalURL
}

// StructuredData is the schema.org description of a page, embedded as
// JSON-LD.
type StructuredData struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Audience    Audience `json:"audience"`
}

// Audience is the schema.org audience of a page.
type Audience struct {
	Type         string `json:"@type"`
	AudienceType string `json:"audienceType"`
}

// StructuredData describes the page as a MedicalWebPage written for
// patients.
func (p Page) StructuredData() StructuredData {
	return StructuredData{
		Context:     "https://schema.org",
		Type:        "MedicalWebPage",
		Name:        p.Title,
		Description: p.Description,
		URL:         p.canonicalURL,
		Audience: Audience{
			Type:         "MedicalAudience",
			AudienceType: "Patient",
		},
	}
}

// RenderPage renders rec as a complete HTML document. The same site and
// record always produce the same bytes.
func RenderPage(ctx context.Context, site *Site, rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := render.Render(ctx, &buf, site, NewPage(site, rec)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
