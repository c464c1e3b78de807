package annotations

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Separator splits an annotation identifier into namespace and name.
const Separator = "::"

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Target is the kind of declaration an annotation may be attached to
type Target int

const (
	TargetType Target = 1 << iota
	TargetMethod
)

// String returns the string representation of the target
func (t Target) String() string {
	switch t {
	case TargetType:
		return "type"
	case TargetMethod:
		return "method"
	default:
		return "unknown"
	}
}

// ParseTarget converts string to Target
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "type":
		return TargetType, nil
	case "method":
		return TargetMethod, nil
	default:
		return 0, fmt.Errorf("unknown annotation target: %s", s)
	}
}

// TargetSet is a set of targets
type TargetSet int

// NewTargetSet builds a set from individual targets
func NewTargetSet(targets ...Target) TargetSet {
	var set TargetSet
	for _, t := range targets {
		set |= TargetSet(t)
	}
	return set
}

// Has reports whether t is a member of the set
func (s TargetSet) Has(t Target) bool {
	return s&TargetSet(t) != 0
}

// Targets returns the members of the set in declaration order
func (s TargetSet) Targets() []Target {
	var out []Target
	for _, t := range []Target{TargetType, TargetMethod} {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// String returns a comma separated list of targets
func (s TargetSet) String() string {
	names := make([]string, 0, 2)
	for _, t := range s.Targets() {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}

// AnnotationDecl declares an annotation type that can be scanned for
type AnnotationDecl struct {
	ID          string    // Fully-qualified identifier, e.g. web::controller
	Targets     TargetSet // Declarations the annotation may be attached to
	HasValue    bool      // Whether the annotation carries a value parameter
	Description string    // Human readable description
}

// Namespace returns the part of the identifier before the separator
func (d AnnotationDecl) Namespace() string {
	ns, _, _ := SplitIdentifier(d.ID)
	return ns
}

// Name returns the part of the identifier after the separator
func (d AnnotationDecl) Name() string {
	_, name, _ := SplitIdentifier(d.ID)
	return name
}

// TargetsMethods reports whether the annotation can be attached to methods.
func (d AnnotationDecl) TargetsMethods() bool {
	return d.Targets.Has(TargetMethod)
}

// TargetsTypes reports whether the annotation can be attached to type declarations.
func (d AnnotationDecl) TargetsTypes() bool {
	return d.Targets.Has(TargetType)
}

// Validate checks the declaration is well formed
func (d AnnotationDecl) Validate() error {
	if _, _, ok := SplitIdentifier(d.ID); !ok {
		return fmt.Errorf("invalid annotation identifier '%s': expected namespace::name", d.ID)
	}
	if d.Targets == 0 {
		return fmt.Errorf("annotation '%s' declares no targets", d.ID)
	}
	return nil
}

// SplitIdentifier splits namespace::name. ok is false when the identifier is
// not fully qualified or either part is not a valid identifier.
func SplitIdentifier(id string) (namespace, name string, ok bool) {
	idx := strings.Index(id, Separator)
	if idx < 0 {
		return "", id, false
	}
	namespace, name = id[:idx], id[idx+len(Separator):]
	if !identPattern.MatchString(namespace) || !identPattern.MatchString(name) {
		return namespace, name, false
	}
	return namespace, name, true
}

// IsQualified reports whether id contains the namespace separator.
func IsQualified(id string) bool {
	return strings.Contains(id, Separator)
}

// SimpleName returns the name part of id, or id itself when unqualified.
func SimpleName(id string) string {
	if idx := strings.LastIndex(id, Separator); idx >= 0 {
		return id[idx+len(Separator):]
	}
	return id
}

// SortDecls orders declarations by identifier
func SortDecls(decls []AnnotationDecl) {
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].ID < decls[j].ID
	})
}
