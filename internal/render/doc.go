// Package render turns Pages into HTML documents using html/template.
//
// Rendering is organized around Components and Pages. A Component is a piece
// of the document that contributes templates, template functions, and links to
// stylesheets or scripts. A Page is a Component that is rendered on its own
// instead of being included in another Component: an article is a Page, the
// layout every article shares is a Component.
//
// A Site supplies the fs.FS holding every template a Component names, and is
// available at render time as .Site. The Page being rendered is available as
// .Page, and the deduplicated resources of every Component the Page uses are
// available as .CSS, .HeaderJS, and .FooterJS.
//
// Components that rely on other Components should hold them as struct fields
// and return them from UseComponents, so their templates, functions, and
// resources are picked up whenever the outer Component is rendered.
package render
