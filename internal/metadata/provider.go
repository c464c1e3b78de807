// Package metadata exposes the loaded Go source of a module as annotation
// metadata: which types and methods carry which markers, and what methods a
// type declares.
package metadata

//go:generate mockgen -destination=metadatatest/provider_mock.go -package=metadatatest github.com/toyz/axonscan/internal/metadata Provider,Index

import (
	"context"

	"github.com/toyz/axonscan/internal/annotations"
)

// Provider resolves annotation declarations and loads package metadata
type Provider interface {
	// LookupAnnotation resolves an identifier to its declaration. It fails
	// with an AnnotationNotFound error when the identifier is unknown.
	LookupAnnotation(id string) (annotations.AnnotationDecl, error)

	// Load indexes every package inside scope. The returned Index is a
	// snapshot owned by the caller.
	Load(ctx context.Context, scope Scope) (Index, error)

	// ModulePath returns the import path of the module being scanned
	ModulePath() string
}

// Index is a loaded snapshot of annotated declarations
type Index interface {
	// TypesAnnotatedWith lists types whose declaration carries id
	TypesAnnotatedWith(id string) []TypeRef

	// MethodsAnnotatedWith lists functions and methods carrying id
	MethodsAnnotatedWith(id string) []MethodRef

	// LoadType resolves a type and its markers. It fails when the type's
	// package has no usable type information.
	LoadType(ref TypeRef) (*TypeInfo, error)

	// DeclaredMethods lists the methods declared on a type
	DeclaredMethods(ref TypeRef) ([]MethodInfo, error)
}
