// Package content reads article records from a directory of YAML files.
//
// Each *.yaml file holds one record. Section prose is either a list of HTML
// paragraphs, exactly as it will appear on the page, or a Markdown block made
// of plain paragraphs with inline formatting. Headings, lists and other block
// elements are rejected, since the page wraps every paragraph in its own <p>.
package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/fantravel1/chronicsoreness/internal/article"
	"github.com/fantravel1/chronicsoreness/internal/render"
)

// ErrNoRecords is returned when a content directory holds no YAML files.
var ErrNoRecords = errors.New("no content records found")

// ErrUnsupportedMarkdown is returned when a Markdown section holds anything
// other than paragraphs.
var ErrUnsupportedMarkdown = errors.New("markdown block is not a paragraph")

var markdown = goldmark.New(
	// content is authored in this repository and carries inline markup
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// prose is decoded from the same document as the article.Record, to pick up
// sections written in Markdown.
type prose struct {
	Sections []section `yaml:"sections"`
}

type section struct {
	Heading    string          `yaml:"heading"`
	Paragraphs []template.HTML `yaml:"paragraphs"`
	Markdown   string          `yaml:"markdown"`
}

// Load reads every *.yaml file at the top level of fsys, in lexical order,
// and returns one article.Record per file.
func Load(ctx context.Context, fsys fs.FS) ([]article.Record, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("error listing content files: %w", err)
	}
	if len(files) < 1 {
		return nil, ErrNoRecords
	}
	records := make([]article.Record, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		rec, err := Parse(file, data)
		if err != nil {
			return nil, err
		}
		render.Logger(ctx).DebugContext(ctx, "loaded content record", "file", file, "filename", rec.Filename)
		records = append(records, rec)
	}
	return records, nil
}

// Parse decodes one YAML record. name is the file the data came from; when
// the record doesn't set a filename, the output file is named after it.
func Parse(name string, data []byte) (article.Record, error) {
	var rec article.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return article.Record{}, fmt.Errorf("error parsing %q: %w", name, err)
	}
	var raw prose
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return article.Record{}, fmt.Errorf("error parsing sections of %q: %w", name, err)
	}
	if rec.Filename == "" {
		rec.Filename = strings.TrimSuffix(path.Base(name), path.Ext(name)) + ".html"
	}
	rec.Sections = make([]article.Section, 0, len(raw.Sections))
	for _, sec := range raw.Sections {
		paragraphs := sec.Paragraphs
		if sec.Markdown != "" {
			converted, err := markdownParagraphs(sec.Markdown)
			if err != nil {
				return article.Record{}, fmt.Errorf("error converting section %q of %q: %w", sec.Heading, name, err)
			}
			paragraphs = append(paragraphs, converted...)
		}
		rec.Sections = append(rec.Sections, article.Section{
			Heading:    sec.Heading,
			Paragraphs: paragraphs,
		})
	}
	return rec, nil
}

// markdownParagraphs converts each top-level paragraph of src to HTML,
// without the <p> element goldmark would wrap it in; the page template adds
// its own.
func markdownParagraphs(src string) ([]template.HTML, error) {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))
	var results []template.HTML
	for block := doc.FirstChild(); block != nil; block = block.NextSibling() {
		if block.Kind() != ast.KindParagraph {
			return nil, fmt.Errorf("%w: found %s", ErrUnsupportedMarkdown, block.Kind())
		}
		var buf bytes.Buffer
		for inline := block.FirstChild(); inline != nil; inline = inline.NextSibling() {
			if err := markdown.Renderer().Render(&buf, source, inline); err != nil {
				return nil, err
			}
		}
		results = append(results, template.HTML(strings.TrimSpace(buf.String()))) // #nosec G203
	}
	return results, nil
}
