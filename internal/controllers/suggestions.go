package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/errors"
)

// DefaultAnnotation is scanned when the request names none
const DefaultAnnotation = annotations.Controller

// SimpleNameNote is appended when the requested identifier has no namespace
const SimpleNameNote = "You entered a simple name. Use the fully-qualified annotation name (namespace::name)."

// Suggestion is a well-known annotation offered when a lookup fails
type Suggestion struct {
	Label string
	ID    string
}

// String renders the suggestion as "label: id"
func (s Suggestion) String() string {
	return s.Label + ": " + s.ID
}

// WellKnown lists the identifiers suggested for unresolved annotations
var WellKnown = []Suggestion{
	{Label: "MVC controllers", ID: annotations.Controller},
	{Label: "REST controllers", ID: annotations.RestController},
	{Label: "GET handlers", ID: annotations.GetMapping},
	{Label: "Services", ID: annotations.Service},
	{Label: "Components", ID: annotations.Component},
}

// WithSuggestions extends an AnnotationNotFound error with the well-known
// identifiers, and with SimpleNameNote when annotation has no namespace. The
// result is still an AnnotationNotFound error. Other errors are returned
// unchanged.
func WithSuggestions(annotation string, err error) error {
	if err == nil || !errors.IsAnnotationNotFound(err) {
		return err
	}

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n\nTip: try one of these fully-qualified names:")

	hints := make([]string, 0, len(WellKnown)+1)
	for _, s := range WellKnown {
		fmt.Fprintf(&b, "\n- For %s", s)
		hints = append(hints, s.String())
	}

	if !strings.Contains(annotation, annotations.Separator) {
		b.WriteString("\n\n")
		b.WriteString(SimpleNameNote)
		hints = append(hints, SimpleNameNote)
	}

	return errors.New(errors.AnnotationNotFoundCode, b.String()).
		WithCause(err).
		WithContext("annotation", annotation).
		WithSuggestions(hints...)
}

// StatusFor maps a scan error onto an HTTP status
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.IsAnnotationNotFound(err):
		return http.StatusBadRequest
	case errors.HasCode(err, errors.ConfigurationErrorCode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
