package metadata

import (
	"strings"

	"github.com/toyz/axonscan/internal/annotations"
)

// TypeRef identifies a named type by import path and name
type TypeRef struct {
	PkgPath string
	Name    string
}

// QualifiedName returns importpath.Name
func (r TypeRef) QualifiedName() string {
	if r.PkgPath == "" {
		return r.Name
	}
	return r.PkgPath + "." + r.Name
}

// IsZero reports whether the reference is empty
func (r TypeRef) IsZero() bool {
	return r.Name == ""
}

// String implements fmt.Stringer
func (r TypeRef) String() string {
	return r.QualifiedName()
}

// MethodRef identifies an annotated function or method. Receiver is zero for
// plain functions.
type MethodRef struct {
	Receiver TypeRef
	PkgPath  string
	Name     string
}

// IsMethod reports whether the reference has a receiver type
func (m MethodRef) IsMethod() bool {
	return !m.Receiver.IsZero()
}

// String implements fmt.Stringer
func (m MethodRef) String() string {
	if m.IsMethod() {
		return m.Receiver.QualifiedName() + "." + m.Name
	}
	return m.PkgPath + "." + m.Name
}

// TypeInfo is a loaded type together with the markers attached to it
type TypeInfo struct {
	Ref     TypeRef
	Markers []*annotations.Marker
}

// Annotation returns the first marker with the given identifier
func (t *TypeInfo) Annotation(id string) (*annotations.Marker, bool) {
	for _, m := range t.Markers {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// HasAnnotation reports whether the type carries the given identifier
func (t *TypeInfo) HasAnnotation(id string) bool {
	_, ok := t.Annotation(id)
	return ok
}

// MethodInfo describes a declared method for display
type MethodInfo struct {
	Name       string `json:"name"`
	ReturnType string `json:"returnType"`
	Parameters string `json:"parameters"`
}

// Scope restricts a scan to an import path and everything beneath it. The
// zero value matches every package.
type Scope string

// All is the scope covering every loaded package
const All Scope = ""

// Contains reports whether pkgPath is inside the scope
func (s Scope) Contains(pkgPath string) bool {
	if s == All {
		return true
	}
	prefix := string(s)
	return pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/")
}

// NewScope normalizes a user supplied package scope. Relative paths such as
// ./internal/example are resolved against modulePath.
func NewScope(raw, modulePath string) Scope {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "/...")
	raw = strings.TrimSuffix(raw, "/")

	switch {
	case raw == "":
		return All
	case raw == ".":
		if modulePath == "" {
			return All
		}
		return Scope(modulePath)
	case strings.HasPrefix(raw, "./") && modulePath != "":
		return Scope(modulePath + "/" + strings.TrimPrefix(raw, "./"))
	default:
		return Scope(raw)
	}
}
