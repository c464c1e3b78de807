package views

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLRenderer renders pages with the embedded HTML templates
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer parses the embedded templates
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"plural": func(n int, singular string) string {
			return english.Plural(n, singular, "")
		},
		"simpleName": annotations.SimpleName,
		"orNone": func(s string) string {
			if strings.TrimSpace(s) == "" {
				return "(none)"
			}
			return s
		},
	}

	templates, err := template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WrapParseError("view templates", err)
	}
	return &HTMLRenderer{templates: templates}, nil
}

// ContentType implements Renderer
func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// RenderResults implements Renderer
func (r *HTMLRenderer) RenderResults(w io.Writer, page ResultsPage) error {
	return r.templates.ExecuteTemplate(w, "scan-results.html", page)
}

// RenderError implements Renderer
func (r *HTMLRenderer) RenderError(w io.Writer, page ErrorPage) error {
	return r.templates.ExecuteTemplate(w, "error.html", page)
}
