package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		id        string
		namespace string
		name      string
		ok        bool
	}{
		{"web::controller", "web", "controller", true},
		{"pkg::rest_api", "pkg", "rest_api", true},
		{"Controller", "", "Controller", false},
		{"web::", "web", "", false},
		{"we b::x", "we b", "x", false},
		{"a::b::c", "a", "b::c", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ns, name, ok := SplitIdentifier(tt.id)
			assert.Equal(t, tt.namespace, ns)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSimpleNameAndQualified(t *testing.T) {
	assert.Equal(t, "controller", SimpleName("web::controller"))
	assert.Equal(t, "Controller", SimpleName("Controller"))
	assert.True(t, IsQualified("web::controller"))
	assert.False(t, IsQualified("Controller"))
}

func TestTargetSet(t *testing.T) {
	set := NewTargetSet(TargetMethod, TargetType)

	assert.True(t, set.Has(TargetType))
	assert.True(t, set.Has(TargetMethod))
	assert.Equal(t, []Target{TargetType, TargetMethod}, set.Targets())
	assert.Equal(t, "type,method", set.String())

	empty := NewTargetSet()
	assert.False(t, empty.Has(TargetType))
	assert.Equal(t, "", empty.String())
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget(" Method ")
	assert.NoError(t, err)
	assert.Equal(t, TargetMethod, target)

	_, err = ParseTarget("field")
	assert.Error(t, err)
}

func TestAnnotationDecl_NameParts(t *testing.T) {
	decl := AnnotationDecl{ID: "stereotype::service", Targets: NewTargetSet(TargetType)}

	assert.Equal(t, "stereotype", decl.Namespace())
	assert.Equal(t, "service", decl.Name())
	assert.NoError(t, decl.Validate())
}
