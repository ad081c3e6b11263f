package render

import (
	"context"
)

// CSSLink is a stylesheet the rendered document should load through a <link>
// element.
type CSSLink struct {
	// Href is the URL of the stylesheet.
	Href string
}

// JSLink is a script the rendered document should load through a <script>
// element with a src attribute.
type JSLink struct {
	// Src is the URL of the script.
	Src string

	// PlaceInFooter puts the script at the end of the body instead of in
	// the head.
	PlaceInFooter bool
}

// CSSLinker is an interface that Components can fulfill to link to
// stylesheets. The links will be made available to the template as .CSS.
type CSSLinker interface {
	LinkCSS(context.Context) []CSSLink
}

// JSLinker is an interface that Components can fulfill to link to scripts.
// The links will be made available to the template as .HeaderJS or .FooterJS,
// depending on PlaceInFooter.
type JSLinker interface {
	LinkJS(context.Context) []JSLink
}

// resources holds the links of every Component a Page uses, in the order the
// Components were discovered, with duplicates dropped.
type resources struct {
	css    []CSSLink
	headJS []JSLink
	footJS []JSLink
}

func collectResources(ctx context.Context, components []Component) resources {
	var result resources
	seenCSS := map[string]struct{}{}
	seenJS := map[string]struct{}{}
	for _, component := range components {
		if linker, ok := component.(CSSLinker); ok {
			for _, link := range linker.LinkCSS(ctx) {
				if _, ok := seenCSS[link.Href]; ok {
					continue
				}
				seenCSS[link.Href] = struct{}{}
				result.css = append(result.css, link)
			}
		}
		if linker, ok := component.(JSLinker); ok {
			for _, link := range linker.LinkJS(ctx) {
				if _, ok := seenJS[link.Src]; ok {
					continue
				}
				seenJS[link.Src] = struct{}{}
				if link.PlaceInFooter {
					result.footJS = append(result.footJS, link)
				} else {
					result.headJS = append(result.headJS, link)
				}
			}
		}
	}
	return result
}
