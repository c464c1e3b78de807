package views

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/metadata"
	"github.com/toyz/axonscan/internal/scanner"
)

func sampleResult() *scanner.Result {
	result := scanner.NewResult()
	result.Put(&scanner.TypeInfo{
		QualifiedName:   "example.com/app/internal/example.ExampleController",
		SimpleName:      "ExampleController",
		AnnotationValue: "Example <controller>",
		Methods: []metadata.MethodInfo{
			{Name: "SayHello", ReturnType: "string"},
			{Name: "ExampleMethod", Parameters: "string, int"},
		},
	})
	result.Put(&scanner.TypeInfo{
		QualifiedName: "example.com/app/web.Empty",
		SimpleName:    "Empty",
		Methods:       []metadata.MethodInfo{},
	})
	return result
}

func samplePage() ResultsPage {
	return ResultsPage{
		Annotation:  "example::scan_me",
		BasePackage: "./internal/example",
		Result:      sampleResult(),
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         FormatHTML,
		"HTML":     FormatHTML,
		"json":     FormatJSON,
		" md ":     FormatMarkdown,
		"markdown": FormatMarkdown,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
}

func TestSet_For(t *testing.T) {
	set, err := NewSet()
	require.NoError(t, err)

	for _, format := range []Format{FormatHTML, FormatJSON, FormatMarkdown} {
		r, err := set.For(format)
		require.NoError(t, err)
		assert.NotEmpty(t, r.ContentType())
	}

	_, err = set.For("xml")
	assert.Error(t, err)
}

func TestHTMLRenderer_Results(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderResults(&buf, samplePage()))
	out := buf.String()

	assert.Contains(t, out, "<code>example::scan_me</code>")
	assert.Contains(t, out, "Found 2 types.")
	assert.Contains(t, out, "ExampleController")
	assert.Contains(t, out, "Example &lt;controller&gt;", "annotation values are escaped")
	assert.Contains(t, out, "<code>SayHello</code>")
	assert.Contains(t, out, "<code>string, int</code>")
	assert.Contains(t, out, "No declared methods.")
	assert.Contains(t, out, `value="./internal/example"`)
}

func TestHTMLRenderer_EmptyResults(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderResults(&buf, ResultsPage{Annotation: "pkg::rest_api", Result: scanner.NewResult()}))
	out := buf.String()

	assert.Contains(t, out, "Found 0 types.")
	assert.Contains(t, out, "(none)")
	assert.Contains(t, out, "No types carry <code>rest_api</code>")
}

func TestHTMLRenderer_Error(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderError(&buf, ErrorPage{
		Status:     http.StatusBadRequest,
		Message:    "annotation not found: Controller\n\n- web::controller",
		Annotation: "Controller",
	}))
	out := buf.String()

	assert.Contains(t, out, "Scan failed")
	assert.Contains(t, out, "annotation not found: Controller\n\n- web::controller")
	assert.Contains(t, out, `value="Controller"`)
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.RenderResults(&buf, samplePage()))

	var decoded struct {
		Annotation string                     `json:"annotation"`
		Count      int                        `json:"count"`
		Types      map[string]json.RawMessage `json:"types"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "example::scan_me", decoded.Annotation)
	assert.Equal(t, 2, decoded.Count)
	assert.Len(t, decoded.Types, 2)

	// scan order survives encoding
	out := buf.String()
	assert.Less(t, strings.Index(out, "ExampleController"), strings.Index(out, "web.Empty"))

	buf.Reset()
	require.NoError(t, JSONRenderer{}.RenderResults(&buf, ResultsPage{Annotation: "a::b"}))
	assert.JSONEq(t, `{"annotation":"a::b","basePackage":"","count":0,"types":{}}`, buf.String())
}

func TestJSONRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.RenderError(&buf, ErrorPage{
		Status:      http.StatusBadRequest,
		Message:     "annotation not found: x::y",
		Annotation:  "x::y",
		Suggestions: []string{"web::controller"},
	}))
	assert.JSONEq(t,
		`{"status":400,"error":"annotation not found: x::y","annotation":"x::y","suggestions":["web::controller"]}`,
		buf.String())
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownRenderer{}.RenderResults(&buf, samplePage()))
	out := buf.String()

	assert.Contains(t, out, "# Types annotated with `example::scan_me`")
	assert.Contains(t, out, "## ExampleController (Example <controller>)")
	assert.Contains(t, out, "`SayHello`")
	assert.Contains(t, out, "`string, int`")
	assert.Contains(t, out, "2 types")
	assert.Contains(t, out, "No declared methods.")

	buf.Reset()
	require.NoError(t, MarkdownRenderer{}.RenderResults(&buf, ResultsPage{Annotation: "a::b", Result: scanner.NewResult()}))
	assert.Contains(t, buf.String(), "(whole module)")
	assert.Contains(t, buf.String(), "No types carry this annotation")
}

func TestMarkdownRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownRenderer{}.RenderError(&buf, ErrorPage{
		Message:     "annotation not found: x::y\n\nmore detail",
		Suggestions: []string{"web::controller", "web::rest_controller"},
	}))
	out := buf.String()

	assert.Contains(t, out, "# Scan failed")
	assert.Contains(t, out, "annotation not found: x::y")
	assert.NotContains(t, out, "more detail")
	assert.Contains(t, out, "web::rest_controller")
}
