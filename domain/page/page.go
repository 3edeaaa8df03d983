// Package page enumerates the sidebar menu entries.
package page

import (
	"strings"

	"showcase/internal/errors"
)

// Page is one sidebar menu selection
type Page int

const (
	Home Page = iota
	DataVisualization
	TextAnalysis
	FileUpload
	Calculator
)

var labels = [...]string{
	Home:              "Home",
	DataVisualization: "Data Visualization",
	TextAnalysis:      "Text Analysis",
	FileUpload:        "File Upload & Analysis",
	Calculator:        "Interactive Calculator",
}

var paths = [...]string{
	Home:              "/",
	DataVisualization: "/visualization",
	TextAnalysis:      "/text",
	FileUpload:        "/files",
	Calculator:        "/calculator",
}

var titles = [...]string{
	Home:              "🎯 Welcome to Multi-Function App!",
	DataVisualization: "📊 Data Visualization",
	TextAnalysis:      "📝 Text Analysis",
	FileUpload:        "📁 File Upload & Analysis",
	Calculator:        "🧮 Interactive Calculator",
}

// All returns every page in menu order
func All() []Page {
	return []Page{Home, DataVisualization, TextAnalysis, FileUpload, Calculator}
}

// Parse maps a menu label to its page. Matching ignores case and surrounding space.
func Parse(label string) (Page, error) {
	label = strings.TrimSpace(label)
	for _, p := range All() {
		if strings.EqualFold(labels[p], label) {
			return p, nil
		}
	}
	return 0, errors.InvalidInput("unknown page: " + label)
}

// Valid reports whether p is one of the enumerated pages
func (p Page) Valid() bool {
	return p >= Home && p <= Calculator
}

// Label is the text shown in the sidebar
func (p Page) Label() string {
	if !p.Valid() {
		return "Unknown"
	}
	return labels[p]
}

// Path is the route the page is served on
func (p Page) Path() string {
	if !p.Valid() {
		return "/"
	}
	return paths[p]
}

// Title is the page heading
func (p Page) Title() string {
	if !p.Valid() {
		return ""
	}
	return titles[p]
}

func (p Page) String() string {
	return p.Label()
}

// MarshalText encodes the page as its label
func (p Page) MarshalText() ([]byte, error) {
	return []byte(p.Label()), nil
}

// UnmarshalText decodes a label
func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
