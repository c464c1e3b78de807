package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/axonscan/internal/errors"
)

func TestIsMarker(t *testing.T) {
	tests := []struct {
		comment string
		want    bool
	}{
		{"//web::controller", true},
		{"// web::get_mapping /hello", true},
		{"//example::scan_me \"Example controller\"", true},
		{"//go:generate mockgen", false},
		{"// See web::controller for details", false},
		{"//controller", false},
		{"//::controller", false},
		{"//web::", false},
		{"/* web::controller */", false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMarker(tt.comment))
		})
	}
}

func TestMarkerParser_Parse(t *testing.T) {
	parser := NewMarkerParser()
	loc := errors.SourceLocation{File: "example.go", Line: 7, Column: 1}

	tests := []struct {
		name       string
		input      string
		wantID     string
		wantArgs   []string
		wantParams map[string]string
		wantValue  string
		hasValue   bool
	}{
		{
			name:       "bare marker",
			input:      "//web::controller",
			wantID:     "web::controller",
			wantParams: map[string]string{},
		},
		{
			name:       "positional path",
			input:      "//web::get_mapping /hello",
			wantID:     "web::get_mapping",
			wantArgs:   []string{"/hello"},
			wantParams: map[string]string{},
			wantValue:  "/hello",
			hasValue:   true,
		},
		{
			name:       "quoted value",
			input:      `//example::scan_me "Example controller"`,
			wantID:     "example::scan_me",
			wantArgs:   []string{"Example controller"},
			wantParams: map[string]string{},
			wantValue:  "Example controller",
			hasValue:   true,
		},
		{
			name:       "named value wins over positional",
			input:      `//web::request_mapping /api -value="Public API" -produces=json`,
			wantID:     "web::request_mapping",
			wantArgs:   []string{"/api"},
			wantParams: map[string]string{"value": "Public API", "produces": "json"},
			wantValue:  "Public API",
			hasValue:   true,
		},
		{
			name:       "bare flag",
			input:      "//axon::core -Init",
			wantID:     "axon::core",
			wantParams: map[string]string{"Init": "true"},
		},
		{
			name:       "axon route",
			input:      "//axon::route GET /users/{id:int} -Middleware=Auth",
			wantID:     "axon::route",
			wantArgs:   []string{"GET", "/users/{id:int}"},
			wantParams: map[string]string{"Middleware": "Auth"},
			wantValue:  "GET",
			hasValue:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, err := parser.Parse(tt.input, loc)
			require.NoError(t, err)

			assert.Equal(t, tt.wantID, marker.ID)
			assert.Equal(t, tt.wantArgs, marker.Args)
			assert.Equal(t, tt.wantParams, marker.Params)
			assert.Equal(t, loc, marker.Location)

			value, ok := marker.Value()
			assert.Equal(t, tt.hasValue, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestMarkerParser_Errors(t *testing.T) {
	parser := NewMarkerParser()
	loc := errors.SourceLocation{File: "bad.go", Line: 2}

	_, err := parser.Parse("// just a comment", loc)
	require.Error(t, err)
	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))

	_, err = parser.Parse(`//web::controller "unterminated`, loc)
	require.Error(t, err)
	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "bad.go:2")
}
