package cli

import (
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/scanner"
)

// ReportResult prints a scan result as an indented listing
func ReportResult(d *Diagnostics, annotation, basePackage string, result *scanner.Result) {
	title := "Types annotated with " + annotation
	if basePackage != "" {
		title += " in " + basePackage
	}
	d.Section(title)

	for _, t := range result.Types() {
		header := t.QualifiedName
		if t.HasAnnotationValue() {
			header += " (" + t.AnnotationValue + ")"
		}
		d.Subsection(header)

		d.Indent()
		if len(t.Methods) == 0 {
			d.List("no methods")
		}
		for _, m := range t.Methods {
			sig := m.Name + "(" + m.Parameters + ")"
			if m.ReturnType != "" {
				sig += " " + m.ReturnType
			}
			d.List("%s", sig)
		}
		d.Unindent()
	}

	if result.Len() == 0 {
		d.Warn("no types carry %s", annotation)
		return
	}
	d.Success("found %s", english.Plural(result.Len(), "type", ""))
}

// ReportError prints a scan error. Only the first line of the message is
// shown; the rest is carried by the error's suggestions.
func ReportError(d *Diagnostics, err error) {
	msg := err.Error()
	if i := strings.Index(msg, "\n"); i >= 0 {
		msg = msg[:i]
	}
	d.Error("%s", msg)
	d.Hints(errors.SuggestionsOf(err))
}
