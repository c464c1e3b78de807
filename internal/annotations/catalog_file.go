package annotations

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/toyz/axonscan/internal/errors"
)

// CatalogFile is the on-disk format for custom annotation declarations:
//
//	annotations:
//	  - id: pkg::rest_api
//	    targets: [type]
//	    value: true
//	    description: Public REST API surface
type CatalogFile struct {
	Annotations []CatalogEntry `yaml:"annotations"`
}

// CatalogEntry is one declaration in a CatalogFile
type CatalogEntry struct {
	ID          string   `yaml:"id"`
	Targets     []string `yaml:"targets"`
	Value       bool     `yaml:"value"`
	Description string   `yaml:"description"`
}

// Decl converts the entry into a validated declaration
func (e CatalogEntry) Decl() (AnnotationDecl, error) {
	targets := make([]Target, 0, len(e.Targets))
	for _, raw := range e.Targets {
		t, err := ParseTarget(raw)
		if err != nil {
			return AnnotationDecl{}, fmt.Errorf("annotation %s: %w", e.ID, err)
		}
		targets = append(targets, t)
	}

	decl := AnnotationDecl{
		ID:          e.ID,
		Targets:     NewTargetSet(targets...),
		HasValue:    e.Value,
		Description: e.Description,
	}
	if err := decl.Validate(); err != nil {
		return AnnotationDecl{}, err
	}
	return decl, nil
}

// LoadCatalog decodes declarations from r and registers each of them. Every
// invalid entry is reported; valid entries are still registered.
func LoadCatalog(r io.Reader, registry AnnotationRegistry) (int, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return 0, errors.WrapParseError("annotation catalog", err)
	}

	var errs error
	registered := 0
	for _, entry := range file.Annotations {
		decl, err := entry.Decl()
		if err == nil {
			err = registry.Register(decl)
		}
		if err != nil {
			errs = multierr.Append(errs, errors.WrapRegisterError("annotation", entry.ID, err))
			continue
		}
		registered++
	}
	return registered, errs
}

// LoadCatalogFile reads a YAML catalog file from disk and registers its declarations
func LoadCatalogFile(path string, registry AnnotationRegistry) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.WrapFileSystemError("read", path, err)
	}
	return LoadCatalog(bytes.NewReader(content), registry)
}
