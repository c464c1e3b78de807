package views

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/nao1215/markdown"
)

// MarkdownRenderer renders pages as GitHub flavored Markdown
type MarkdownRenderer struct{}

// ContentType implements Renderer
func (MarkdownRenderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// RenderResults implements Renderer
func (MarkdownRenderer) RenderResults(w io.Writer, page ResultsPage) error {
	md := markdown.NewMarkdown(w)

	md.H1("Types annotated with `" + page.Annotation + "`")
	md.PlainText("")

	scope := page.BasePackage
	if strings.TrimSpace(scope) == "" {
		scope = "(whole module)"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Annotation", "`" + page.Annotation + "`"},
			{"Package", scope},
			{"Matches", english.Plural(page.Result.Len(), "type", "")},
		},
	})
	md.PlainText("")

	if page.Result.Len() == 0 {
		md.Note("No types carry this annotation in the selected package.")
		return md.Build()
	}

	for _, info := range page.Result.Types() {
		title := info.SimpleName
		if info.HasAnnotationValue() {
			title += " (" + info.AnnotationValue + ")"
		}
		md.H2(title)
		md.PlainText("")
		md.PlainText("`" + info.QualifiedName + "`")
		md.PlainText("")

		if len(info.Methods) == 0 {
			md.PlainText("No declared methods.")
			md.PlainText("")
			continue
		}

		rows := make([][]string, len(info.Methods))
		for i, m := range info.Methods {
			rows[i] = []string{"`" + m.Name + "`", orDash(m.Parameters), orDash(m.ReturnType)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Method", "Parameters", "Returns"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return md.Build()
}

// RenderError implements Renderer
func (MarkdownRenderer) RenderError(w io.Writer, page ErrorPage) error {
	md := markdown.NewMarkdown(w)

	md.H1("Scan failed")
	md.PlainText("")

	headline, _, _ := strings.Cut(page.Message, "\n")
	md.Cautionf("%s", headline)
	md.PlainText("")

	if len(page.Suggestions) > 0 {
		md.H2("Suggestions")
		md.PlainText("")
		md.BulletList(page.Suggestions...)
	}

	return md.Build()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + s + "`"
}
