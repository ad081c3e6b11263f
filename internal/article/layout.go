package article

import (
	"context"

	"github.com/fantravel1/chronicsoreness/internal/render"
)

const fontsStylesheet = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Playfair+Display:wght@600;700&display=swap"

// FooterColumn is one titled list of links in the footer grid.
type FooterColumn struct {
	Title string
	Links []Link
}

// Layout is the skeleton shared by every page: document head, navigation,
// page header, and footer. Pages fill in its "content" block.
type Layout struct {
	Nav    []Link
	Footer []FooterColumn
}

// DefaultLayout returns the navigation and footer of a page one directory
// below the site root.
func DefaultLayout() Layout {
	return Layout{
		Nav: []Link{
			{URL: "../index.html", Label: "Home"},
			{URL: "../conditions.html", Label: "Conditions"},
			{URL: "../treatments.html", Label: "Treatments"},
			{URL: "../lifestyle.html", Label: "Lifestyle"},
			{URL: "../resources.html", Label: "Resources"},
			{URL: "../about.html", Label: "About"},
		},
		Footer: []FooterColumn{
			{Title: "Conditions", Links: []Link{
				{URL: "../conditions/fibromyalgia.html", Label: "Fibromyalgia"},
				{URL: "../conditions/endometriosis.html", Label: "Endometriosis"},
				{URL: "../conditions/chronic-fatigue-syndrome.html", Label: "Chronic Fatigue"},
				{URL: "../conditions/lupus.html", Label: "Lupus"},
			}},
			{Title: "Resources", Links: []Link{
				{URL: "../treatments.html", Label: "Treatments"},
				{URL: "../lifestyle.html", Label: "Lifestyle"},
				{URL: "../resources.html", Label: "Resources"},
				{URL: "../symptom-checker.html", Label: "Symptom Checker"},
			}},
			{Title: "About", Links: []Link{
				{URL: "../about.html", Label: "Our Mission"},
				{URL: "../contact.html", Label: "Contact"},
				{URL: "../about.html#privacy", Label: "Privacy"},
				{URL: "../about.html#terms", Label: "Terms"},
			}},
		},
	}
}

func (l Layout) Templates(_ context.Context) []string {
	return []string{l.BaseTemplate(), "nav.html.tmpl", "footer.html.tmpl"}
}

// BaseTemplate is the template that gets executed for every page using the
// Layout.
func (Layout) BaseTemplate() string {
	return "base.html.tmpl"
}

func (Layout) LinkCSS(_ context.Context) []render.CSSLink {
	return []render.CSSLink{
		{Href: fontsStylesheet},
		{Href: "../css/styles.css"},
	}
}

func (Layout) LinkJS(_ context.Context) []render.JSLink {
	return []render.JSLink{
		{Src: "../js/main.js", PlaceInFooter: true},
	}
}
