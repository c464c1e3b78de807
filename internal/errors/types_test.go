package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_ErrorIncludesLocation(t *testing.T) {
	err := New(SyntaxErrorCode, "bad marker").WithLocation(SourceLocation{File: "a.go", Line: 3, Column: 1})

	assert.Equal(t, "a.go:3:1: bad marker", err.Error())
	assert.Equal(t, SyntaxErrorCode, err.ErrorCode())
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, UnknownErrorCode},
		{"plain", stderrors.New("boom"), UnknownErrorCode},
		{"not found", AnnotationNotFound("web::nope"), AnnotationNotFoundCode},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", ScanFailure("web::controller", stderrors.New("io"))), ScanFailureCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsAnnotationNotFound_LooksThroughWrappers(t *testing.T) {
	inner := AnnotationNotFound("controller")
	outer := Wrap(ScanFailureCode, "outer", inner)

	assert.True(t, IsAnnotationNotFound(outer))
	assert.True(t, IsScanFailure(outer))
	assert.False(t, IsAnnotationNotFound(stderrors.New("plain")))
}

func TestSuggestionsOf_Deduplicates(t *testing.T) {
	inner := AnnotationNotFound("x").WithSuggestions("a", "b")
	outer := Wrap(AnnotationNotFoundCode, "outer", inner).WithSuggestions("b", "c")

	assert.Equal(t, []string{"b", "c", "a"}, SuggestionsOf(outer))
	assert.Equal(t, "- b\n- c\n- a", FormatSuggestions(SuggestionsOf(outer)))
	assert.Empty(t, FormatSuggestions(nil))
}

func TestAnnotationNotFound_MessageContainsIdentifier(t *testing.T) {
	err := AnnotationNotFound("pkg::rest_api")

	assert.Contains(t, err.Error(), "pkg::rest_api")
	assert.Equal(t, "pkg::rest_api", err.Context()["annotation"])
}
