package annotations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/toyz/axonscan/internal/errors"
)

func TestLoadCatalog(t *testing.T) {
	registry := NewRegistry()
	input := `
annotations:
  - id: pkg::rest_api
    targets: [type]
    value: true
    description: Public REST API surface
  - id: pkg::handler
    targets: [method, type]
`

	n, err := LoadCatalog(strings.NewReader(input), registry)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	restAPI, ok := registry.Lookup("pkg::rest_api")
	require.True(t, ok)
	assert.True(t, restAPI.HasValue)
	assert.Equal(t, "Public REST API surface", restAPI.Description)
	assert.False(t, restAPI.TargetsMethods())

	handler, ok := registry.Lookup("pkg::handler")
	require.True(t, ok)
	assert.True(t, handler.TargetsMethods())
	assert.True(t, handler.TargetsTypes())
}

func TestLoadCatalog_ReportsEveryInvalidEntry(t *testing.T) {
	registry := NewRegistry()
	input := `
annotations:
  - id: bare_name
    targets: [type]
  - id: pkg::ok
    targets: [type]
  - id: pkg::bad_target
    targets: [field]
`

	n, err := LoadCatalog(strings.NewReader(input), registry)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, registry.IsRegistered("pkg::ok"))

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, errors.RegistrationErrorCode, errors.CodeOf(e))
	}
}

func TestLoadCatalog_UnknownFields(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader("annotations:\n  - id: a::b\n    target: [type]\n"), NewRegistry())
	require.Error(t, err)
	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))
}

func TestLoadCatalog_Empty(t *testing.T) {
	n, err := LoadCatalog(strings.NewReader(""), NewRegistry())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("annotations:\n  - id: team::owned\n    targets: [type]\n"), 0o644))

	registry := NewRegistry()
	n, err := LoadCatalogFile(path, registry)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = LoadCatalogFile(filepath.Join(dir, "missing.yaml"), registry)
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}
