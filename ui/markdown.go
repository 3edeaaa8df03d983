package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const homeIntro = `
This app demonstrates a handful of small features:

- 📊 **Data Visualization**: Create interactive charts
- 📝 **Text Analysis**: Analyze sentiment and text properties
- 📁 **File Upload & Analysis**: Upload and analyze CSV files
- 🧮 **Interactive Calculator**: Perform basic calculations
`

// renderMarkdown converts trusted, compiled-in markdown to HTML
func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.Render(doc, renderer))
}
