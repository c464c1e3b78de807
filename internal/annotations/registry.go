package annotations

import (
	"fmt"
	"sync"
)

// AnnotationRegistry defines the interface for managing annotation declarations
type AnnotationRegistry interface {
	// Register a new annotation declaration
	Register(decl AnnotationDecl) error

	// Lookup retrieves the declaration for an identifier
	Lookup(id string) (AnnotationDecl, bool)

	// List returns all registered declarations ordered by identifier
	List() []AnnotationDecl

	// IsRegistered checks if an identifier is registered
	IsRegistered(id string) bool
}

// registry is the concrete implementation of AnnotationRegistry
type registry struct {
	mu    sync.RWMutex              // Protects concurrent access
	decls map[string]AnnotationDecl // Declaration storage
}

// NewRegistry creates a new, empty annotation registry
func NewRegistry() AnnotationRegistry {
	return &registry{
		decls: make(map[string]AnnotationDecl),
	}
}

// NewBuiltinRegistry creates a registry pre-populated with the built-in declarations
func NewBuiltinRegistry() (AnnotationRegistry, error) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a new annotation declaration to the registry
func (r *registry) Register(decl AnnotationDecl) error {
	if err := decl.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decls[decl.ID]; exists {
		return fmt.Errorf("annotation %s is already registered", decl.ID)
	}

	r.decls[decl.ID] = decl
	return nil
}

// Lookup retrieves the declaration for an identifier
func (r *registry) Lookup(id string) (AnnotationDecl, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decl, exists := r.decls[id]
	return decl, exists
}

// List returns all registered declarations ordered by identifier
func (r *registry) List() []AnnotationDecl {
	r.mu.RLock()
	decls := make([]AnnotationDecl, 0, len(r.decls))
	for _, decl := range r.decls {
		decls = append(decls, decl)
	}
	r.mu.RUnlock()

	SortDecls(decls)
	return decls
}

// IsRegistered checks if an identifier is registered
func (r *registry) IsRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.decls[id]
	return exists
}
