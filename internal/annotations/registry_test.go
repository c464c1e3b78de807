package annotations

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if decls := registry.List(); len(decls) != 0 {
		t.Errorf("Expected empty registry, got %d declarations", len(decls))
	}
}

func TestRegister(t *testing.T) {
	registry := NewRegistry()
	decl := AnnotationDecl{ID: "pkg::rest_api", Targets: NewTargetSet(TargetType), HasValue: true}

	require.NoError(t, registry.Register(decl))
	assert.True(t, registry.IsRegistered("pkg::rest_api"))

	got, ok := registry.Lookup("pkg::rest_api")
	require.True(t, ok)
	assert.Equal(t, decl, got)

	err := registry.Register(decl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegister_RejectsInvalidDeclarations(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name string
		decl AnnotationDecl
	}{
		{"unqualified", AnnotationDecl{ID: "controller", Targets: NewTargetSet(TargetType)}},
		{"empty name", AnnotationDecl{ID: "web::", Targets: NewTargetSet(TargetType)}},
		{"no targets", AnnotationDecl{ID: "web::thing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, registry.Register(tt.decl))
			assert.False(t, registry.IsRegistered(tt.decl.ID))
		})
	}
}

func TestBuiltinRegistry(t *testing.T) {
	registry, err := NewBuiltinRegistry()
	require.NoError(t, err)

	controller, ok := registry.Lookup(Controller)
	require.True(t, ok)
	assert.False(t, controller.TargetsMethods())
	assert.True(t, controller.TargetsTypes())

	get, ok := registry.Lookup(GetMapping)
	require.True(t, ok)
	assert.True(t, get.TargetsMethods())
	assert.False(t, get.TargetsTypes())

	mapping, ok := registry.Lookup(RequestMapping)
	require.True(t, ok)
	assert.True(t, mapping.TargetsMethods())
	assert.True(t, mapping.TargetsTypes())

	decls := registry.List()
	assert.Len(t, decls, len(BuiltinDecls()))
	for i := 1; i < len(decls); i++ {
		assert.Less(t, decls[i-1].ID, decls[i].ID, "List should be ordered by identifier")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("test::decl_%d", i)
			_ = registry.Register(AnnotationDecl{ID: id, Targets: NewTargetSet(TargetType)})
			registry.Lookup(id)
			registry.List()
		}(i)
	}
	wg.Wait()

	assert.Len(t, registry.List(), 20)
}
