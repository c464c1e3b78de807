package views

import (
	"encoding/json"
	"io"

	"github.com/toyz/axonscan/internal/scanner"
)

type jsonResults struct {
	Annotation  string          `json:"annotation"`
	BasePackage string          `json:"basePackage"`
	Count       int             `json:"count"`
	Types       *scanner.Result `json:"types"`
}

type jsonError struct {
	Status      int      `json:"status"`
	Error       string   `json:"error"`
	Annotation  string   `json:"annotation,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// JSONRenderer renders pages as JSON documents
type JSONRenderer struct{}

// ContentType implements Renderer
func (JSONRenderer) ContentType() string {
	return "application/json; charset=utf-8"
}

// RenderResults implements Renderer. Types keep scan order.
func (JSONRenderer) RenderResults(w io.Writer, page ResultsPage) error {
	result := page.Result
	if result == nil {
		result = scanner.NewResult()
	}
	return json.NewEncoder(w).Encode(jsonResults{
		Annotation:  page.Annotation,
		BasePackage: page.BasePackage,
		Count:       result.Len(),
		Types:       result,
	})
}

// RenderError implements Renderer
func (JSONRenderer) RenderError(w io.Writer, page ErrorPage) error {
	return json.NewEncoder(w).Encode(jsonError{
		Status:      page.Status,
		Error:       page.Message,
		Annotation:  page.Annotation,
		Suggestions: page.Suggestions,
	})
}
