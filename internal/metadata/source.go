package metadata

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/packages"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/errors"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// SourceProvider serves metadata by loading the Go packages below a
// directory. Every Load performs a fresh package load.
type SourceProvider struct {
	dir      string
	module   Module
	registry annotations.AnnotationRegistry
	markers  *annotations.MarkerParser
	logger   *zap.Logger
}

// NewSourceProvider creates a provider rooted at dir, which must lie inside a
// Go module.
func NewSourceProvider(dir string, registry annotations.AnnotationRegistry, logger *zap.Logger) (*SourceProvider, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("resolve", dir, err)
	}

	module, err := FindModule(absDir)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &SourceProvider{
		dir:      absDir,
		module:   module,
		registry: registry,
		markers:  annotations.NewMarkerParser(),
		logger:   logger.Named("metadata"),
	}, nil
}

// Dir returns the directory packages are loaded from
func (p *SourceProvider) Dir() string {
	return p.dir
}

// ModulePath returns the import path of the enclosing module
func (p *SourceProvider) ModulePath() string {
	return p.module.Path
}

// LookupAnnotation resolves an identifier against the annotation registry
func (p *SourceProvider) LookupAnnotation(id string) (annotations.AnnotationDecl, error) {
	decl, ok := p.registry.Lookup(id)
	if !ok {
		return annotations.AnnotationDecl{}, errors.AnnotationNotFound(id)
	}
	return decl, nil
}

// Load loads and indexes every package below the provider's directory that
// falls inside scope.
func (p *SourceProvider) Load(ctx context.Context, scope Scope) (Index, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     p.dir,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, errors.Wrap(errors.ScanFailureCode, "failed to load packages", err).
			WithContext("dir", p.dir)
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].PkgPath < pkgs[j].PkgPath
	})

	idx := newSourceIndex()
	for _, pkg := range pkgs {
		if !scope.Contains(pkg.PkgPath) {
			continue
		}
		if len(pkg.Errors) > 0 {
			p.logger.Debug("package loaded with errors",
				zap.String("package", pkg.PkgPath),
				zap.Int("errors", len(pkg.Errors)),
				zap.String("first", pkg.Errors[0].Error()),
			)
		}
		idx.add(pkg, p.parseMarkers)
	}

	p.logger.Debug("packages indexed",
		zap.String("scope", string(scope)),
		zap.Int("loaded", len(pkgs)),
		zap.Int("indexed", len(idx.packages)),
	)

	return idx, nil
}

// parseMarkers extracts markers from a doc comment, skipping malformed ones
func (p *SourceProvider) parseMarkers(fset *token.FileSet, doc *ast.CommentGroup) []*annotations.Marker {
	if doc == nil {
		return nil
	}

	var markers []*annotations.Marker
	for _, comment := range doc.List {
		if !annotations.IsMarker(comment.Text) {
			continue
		}

		pos := fset.Position(comment.Slash)
		loc := errors.SourceLocation{File: pos.Filename, Line: pos.Line, Column: pos.Column}
		marker, err := p.markers.Parse(comment.Text, loc)
		if err != nil {
			p.logger.Debug("ignoring malformed marker", zap.Error(err))
			continue
		}
		markers = append(markers, marker)
	}
	return markers
}

type markerFunc func(fset *token.FileSet, doc *ast.CommentGroup) []*annotations.Marker

// sourceIndex is the Index built from loaded packages
type sourceIndex struct {
	packages map[string]*packages.Package
	types    map[string][]TypeRef
	methods  map[string][]MethodRef
	markers  map[TypeRef][]*annotations.Marker
}

func newSourceIndex() *sourceIndex {
	return &sourceIndex{
		packages: make(map[string]*packages.Package),
		types:    make(map[string][]TypeRef),
		methods:  make(map[string][]MethodRef),
		markers:  make(map[TypeRef][]*annotations.Marker),
	}
}

// add indexes the top-level type and function declarations of pkg
func (idx *sourceIndex) add(pkg *packages.Package, parse markerFunc) {
	idx.packages[pkg.PkgPath] = pkg
	if len(pkg.Syntax) == 0 {
		return
	}

	insp := inspector.New(pkg.Syntax)
	filter := []ast.Node{(*ast.GenDecl)(nil), (*ast.FuncDecl)(nil)}

	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		// Only top-level declarations: the stack is [*ast.File, decl]
		if !push || len(stack) != 2 {
			return false
		}

		switch decl := n.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				return false
			}
			for _, spec := range decl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && len(decl.Specs) == 1 {
					doc = decl.Doc
				}
				ref := TypeRef{PkgPath: pkg.PkgPath, Name: typeSpec.Name.Name}
				for _, marker := range parse(pkg.Fset, doc) {
					idx.addTypeMarker(ref, marker)
				}
			}

		case *ast.FuncDecl:
			ref := MethodRef{PkgPath: pkg.PkgPath, Name: decl.Name.Name}
			if recv := receiverTypeName(decl); recv != "" {
				ref.Receiver = TypeRef{PkgPath: pkg.PkgPath, Name: recv}
			}
			for _, marker := range parse(pkg.Fset, decl.Doc) {
				idx.addMethodMarker(ref, marker)
			}
		}
		return false
	})
}

func (idx *sourceIndex) addTypeMarker(ref TypeRef, marker *annotations.Marker) {
	if !containsTypeRef(idx.types[marker.ID], ref) {
		idx.types[marker.ID] = append(idx.types[marker.ID], ref)
	}
	idx.markers[ref] = append(idx.markers[ref], marker)
}

func (idx *sourceIndex) addMethodMarker(ref MethodRef, marker *annotations.Marker) {
	for _, existing := range idx.methods[marker.ID] {
		if existing == ref {
			return
		}
	}
	idx.methods[marker.ID] = append(idx.methods[marker.ID], ref)
}

// TypesAnnotatedWith lists annotated types ordered by qualified name
func (idx *sourceIndex) TypesAnnotatedWith(id string) []TypeRef {
	refs := append([]TypeRef(nil), idx.types[id]...)
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].QualifiedName() < refs[j].QualifiedName()
	})
	return refs
}

// MethodsAnnotatedWith lists annotated functions in package then source order
func (idx *sourceIndex) MethodsAnnotatedWith(id string) []MethodRef {
	return append([]MethodRef(nil), idx.methods[id]...)
}

// LoadType resolves ref against the type-checked package
func (idx *sourceIndex) LoadType(ref TypeRef) (*TypeInfo, error) {
	if _, _, err := idx.lookupTypeName(ref); err != nil {
		return nil, err
	}
	return &TypeInfo{
		Ref:     ref,
		Markers: idx.markers[ref],
	}, nil
}

// DeclaredMethods lists the methods declared on ref in source order
func (idx *sourceIndex) DeclaredMethods(ref TypeRef) ([]MethodInfo, error) {
	pkg, typeName, err := idx.lookupTypeName(ref)
	if err != nil {
		return nil, err
	}

	named, ok := types.Unalias(typeName.Type()).(*types.Named)
	if !ok {
		return nil, nil
	}

	qualifier := func(other *types.Package) string {
		if other == pkg.Types {
			return ""
		}
		return other.Name()
	}

	var methods []MethodInfo
	if iface, ok := named.Underlying().(*types.Interface); ok {
		for i := 0; i < iface.NumExplicitMethods(); i++ {
			methods = append(methods, describeMethod(iface.ExplicitMethod(i), qualifier))
		}
		return methods, nil
	}

	for i := 0; i < named.NumMethods(); i++ {
		methods = append(methods, describeMethod(named.Method(i), qualifier))
	}
	return methods, nil
}

func (idx *sourceIndex) lookupTypeName(ref TypeRef) (*packages.Package, *types.TypeName, error) {
	pkg, ok := idx.packages[ref.PkgPath]
	if !ok {
		return nil, nil, fmt.Errorf("package %s is not loaded", ref.PkgPath)
	}
	if pkg.Types == nil || pkg.Types.Scope() == nil {
		return nil, nil, fmt.Errorf("no type information for package %s%s", ref.PkgPath, packageErrorSuffix(pkg))
	}

	typeName, ok := pkg.Types.Scope().Lookup(ref.Name).(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("type %s not found in package %s%s", ref.Name, ref.PkgPath, packageErrorSuffix(pkg))
	}
	return pkg, typeName, nil
}

func packageErrorSuffix(pkg *packages.Package) string {
	if len(pkg.Errors) == 0 {
		return ""
	}
	return ": " + pkg.Errors[0].Error()
}

func describeMethod(fn *types.Func, qualifier types.Qualifier) MethodInfo {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return MethodInfo{Name: fn.Name()}
	}
	return MethodInfo{
		Name:       fn.Name(),
		ReturnType: formatResults(sig, qualifier),
		Parameters: formatParams(sig, qualifier),
	}
}

func formatParams(sig *types.Signature, qualifier types.Qualifier) string {
	params := sig.Params()
	parts := make([]string, params.Len())
	for i := 0; i < params.Len(); i++ {
		t := params.At(i).Type()
		if sig.Variadic() && i == params.Len()-1 {
			if slice, ok := t.(*types.Slice); ok {
				parts[i] = "..." + types.TypeString(slice.Elem(), qualifier)
				continue
			}
		}
		parts[i] = types.TypeString(t, qualifier)
	}
	return strings.Join(parts, ", ")
}

func formatResults(sig *types.Signature, qualifier types.Qualifier) string {
	results := sig.Results()
	switch results.Len() {
	case 0:
		return ""
	case 1:
		return types.TypeString(results.At(0).Type(), qualifier)
	}

	parts := make([]string, results.Len())
	for i := 0; i < results.Len(); i++ {
		parts[i] = types.TypeString(results.At(i).Type(), qualifier)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// receiverTypeName returns the receiver's base type name, or "" for plain functions
func receiverTypeName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}

	expr := decl.Recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}

func containsTypeRef(refs []TypeRef, ref TypeRef) bool {
	for _, r := range refs {
		if r == ref {
			return true
		}
	}
	return false
}
