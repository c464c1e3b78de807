package scanner

import (
	"bytes"
	"encoding/json"

	"github.com/toyz/axonscan/internal/metadata"
)

// TypeInfo is the display record for one matched type
type TypeInfo struct {
	QualifiedName   string                `json:"qualifiedName"`
	SimpleName      string                `json:"simpleName"`
	Methods         []metadata.MethodInfo `json:"methods"`
	AnnotationValue string                `json:"annotationValue,omitempty"`
}

// HasAnnotationValue reports whether a non-empty annotation value was found
func (t *TypeInfo) HasAnnotationValue() bool {
	return t.AnnotationValue != ""
}

// Result maps qualified type names to their records, preserving insertion
// order.
type Result struct {
	keys  []string
	types map[string]*TypeInfo
}

// NewResult creates an empty result
func NewResult() *Result {
	return &Result{types: make(map[string]*TypeInfo)}
}

// Put adds info under its qualified name. Replacing an existing entry keeps
// its original position.
func (r *Result) Put(info *TypeInfo) {
	if _, exists := r.types[info.QualifiedName]; !exists {
		r.keys = append(r.keys, info.QualifiedName)
	}
	r.types[info.QualifiedName] = info
}

// Get returns the record for a qualified type name
func (r *Result) Get(qualifiedName string) (*TypeInfo, bool) {
	if r == nil {
		return nil, false
	}
	info, ok := r.types[qualifiedName]
	return info, ok
}

// Keys returns the qualified names in insertion order
func (r *Result) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.keys...)
}

// Types returns the records in insertion order
func (r *Result) Types() []*TypeInfo {
	if r == nil {
		return nil
	}
	types := make([]*TypeInfo, 0, len(r.keys))
	for _, key := range r.keys {
		types = append(types, r.types[key])
	}
	return types
}

// Len returns the number of matched types
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// MarshalJSON encodes the result as a JSON object whose keys keep insertion
// order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.types[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
