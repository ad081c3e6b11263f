package article

import "html/template"

// Record is everything that varies between two article pages. The prose
// fields hold trusted HTML fragments, since the content carries inline markup
// such as <em> around journal names; the remaining fields are plain text and
// get escaped for wherever they land in the document.
type Record struct {
	// Filename is the name of the generated file, relative to the output
	// directory, e.g. "pcos-chronic-pain.html".
	Filename string `yaml:"filename"`

	// Title is used for the document title, the Open Graph title, and the
	// structured data name.
	Title string `yaml:"title"`

	// Heading is the page's <h1>.
	Heading string `yaml:"heading"`

	Subtitle string `yaml:"subtitle"`

	// ReadTime is the estimated reading time in minutes.
	ReadTime int `yaml:"read_time"`

	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`

	Facts      []template.HTML `yaml:"facts"`
	Sections   []Section       `yaml:"sections"`
	FAQs       []FAQ           `yaml:"faqs"`
	References []template.HTML `yaml:"references"`
	Related    []Link          `yaml:"related"`
}

// Section is a second-level heading followed by its paragraphs.
type Section struct {
	Heading    string          `yaml:"heading"`
	Paragraphs []template.HTML `yaml:"paragraphs"`
}

// FAQ is one question and its answer.
type FAQ struct {
	Question string        `yaml:"question"`
	Answer   template.HTML `yaml:"answer"`
}

// Link points at another page.
type Link struct {
	URL   string `yaml:"url"`
	Label string `yaml:"label"`
}
