// Package views renders scan results and scan errors as HTML, JSON or
// Markdown.
package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/scanner"
)

// Format selects a renderer
type Format string

// Supported formats
const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name. The empty string selects HTML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", errors.Newf(errors.ConfigurationErrorCode, "unsupported format %q", name).
		WithSuggestion("Use one of: html, json, markdown")
}

// ResultsPage is the model of a successful scan
type ResultsPage struct {
	Annotation  string
	BasePackage string
	Result      *scanner.Result
}

// ErrorPage is the model of a failed scan
type ErrorPage struct {
	Status      int
	Message     string
	Annotation  string
	BasePackage string
	Suggestions []string
}

// Renderer writes pages in one format
type Renderer interface {
	ContentType() string
	RenderResults(w io.Writer, page ResultsPage) error
	RenderError(w io.Writer, page ErrorPage) error
}

// Set holds one renderer per format
type Set struct {
	renderers map[Format]Renderer
}

// NewSet builds the renderers for every supported format
func NewSet() (*Set, error) {
	html, err := NewHTMLRenderer()
	if err != nil {
		return nil, err
	}

	return &Set{renderers: map[Format]Renderer{
		FormatHTML:     html,
		FormatJSON:     JSONRenderer{},
		FormatMarkdown: MarkdownRenderer{},
	}}, nil
}

// For returns the renderer for format
func (s *Set) For(format Format) (Renderer, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("no renderer for format %q", format)
	}
	return r, nil
}
