package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/axonscan/internal/errors"
)

// ValueParam is the named parameter holding an annotation's value.
const ValueParam = "value"

// Marker is a single annotation occurrence found in a comment, e.g.
//
//	//web::get_mapping /hello -produces=json
type Marker struct {
	ID       string            // namespace::name
	Args     []string          // Positional arguments in order
	Params   map[string]string // Named parameters; bare flags map to "true"
	Location errors.SourceLocation
	Raw      string // Original comment text
}

// Value returns the annotation value: the explicit -value parameter, else the
// first positional argument.
func (m *Marker) Value() (string, bool) {
	if v, ok := m.Params[ValueParam]; ok {
		return v, true
	}
	if len(m.Args) > 0 {
		return m.Args[0], true
	}
	return "", false
}

// argList is the participle grammar for everything after the identifier
type argList struct {
	Args []*arg `parser:"@@*"`
}

type arg struct {
	Named      *namedArg `parser:"  @@"`
	Positional *string   `parser:"| @(String | Word)"`
}

type namedArg struct {
	Key   string  `parser:"Dash @Word"`
	Value *string `parser:"(Equals @(String | Word))?"`
}

// MarkerParser parses annotation markers out of Go comments
type MarkerParser struct {
	parser *participle.Parser[argList]
}

// NewMarkerParser creates a new marker parser
func NewMarkerParser() *MarkerParser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Word", Pattern: `[^\s"=-][^\s"=]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &MarkerParser{
		parser: participle.MustBuild[argList](
			participle.Lexer(lex),
			participle.Elide("Whitespace"),
			participle.Unquote("String"),
		),
	}
}

// IsMarker reports whether a comment line looks like an annotation marker.
// Ordinary prose and //go: style directives are not markers.
func IsMarker(comment string) bool {
	head, _ := splitHead(comment)
	_, _, ok := SplitIdentifier(head)
	return ok
}

// Parse parses a single comment line. It returns a SyntaxError when the line
// is a marker whose arguments are malformed, or is not a marker at all.
func (p *MarkerParser) Parse(comment string, location errors.SourceLocation) (*Marker, error) {
	head, rest := splitHead(comment)
	if _, _, ok := SplitIdentifier(head); !ok {
		return nil, errors.New(errors.SyntaxErrorCode, "comment is not an annotation marker").
			WithLocation(location).
			WithSuggestion("Use format: //namespace::name [value] [-key=value]")
	}

	marker := &Marker{
		ID:       head,
		Params:   make(map[string]string),
		Location: location,
		Raw:      comment,
	}

	// No arguments to parse
	if rest == "" {
		return marker, nil
	}

	parsed, err := p.parser.ParseString(location.File, rest)
	if err != nil {
		return nil, errors.WrapParseError(fmt.Sprintf("arguments of %s", head), err).
			WithLocation(location).
			WithSuggestion("Quote values containing spaces or '=': -value=\"a b\"")
	}

	for _, a := range parsed.Args {
		switch {
		case a.Named != nil:
			if a.Named.Value != nil {
				marker.Params[a.Named.Key] = *a.Named.Value
			} else {
				marker.Params[a.Named.Key] = "true"
			}
		case a.Positional != nil:
			marker.Args = append(marker.Args, *a.Positional)
		}
	}

	return marker, nil
}

// splitHead strips the comment prefix and separates the identifier from the
// remaining argument text
func splitHead(comment string) (head, rest string) {
	text := strings.TrimSpace(comment)
	if !strings.HasPrefix(text, "//") {
		return "", ""
	}
	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ""
	}
	head = fields[0]
	rest = strings.TrimSpace(strings.TrimPrefix(text, head))
	return head, rest
}
