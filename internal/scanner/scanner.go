// Package scanner finds the types carrying an annotation and builds a display
// record for each of them.
package scanner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/metadata"
)

// Outcome labels passed to a Recorder
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Request selects the annotation to scan for and an optional package scope
type Request struct {
	Annotation  string
	BasePackage string
}

// Recorder observes completed scans
type Recorder interface {
	ObserveScan(annotation, outcome string, matched int, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveScan(string, string, int, time.Duration) {}

// Option configures a Scanner
type Option func(*Scanner)

// WithRecorder reports every scan to recorder
func WithRecorder(recorder Recorder) Option {
	return func(s *Scanner) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// Scanner is a thin layer over a metadata.Provider
type Scanner struct {
	provider metadata.Provider
	logger   *zap.Logger
	recorder Recorder
}

// New creates a scanner backed by provider
func New(provider metadata.Provider, logger *zap.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scanner{
		provider: provider,
		logger:   logger.Named("scanner"),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanDefault scans basePackage for types marked example::scan_me
func (s *Scanner) ScanDefault(ctx context.Context, basePackage string) (*Result, error) {
	return s.Scan(ctx, Request{Annotation: annotations.ScanMe, BasePackage: basePackage})
}

// Scan returns every type in scope carrying req.Annotation. For annotations
// that target methods, the types declaring annotated methods are returned.
func (s *Scanner) Scan(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	result, err := s.scan(ctx, req)

	outcome := OutcomeOK
	switch {
	case errors.IsAnnotationNotFound(err):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeError
	}
	s.recorder.ObserveScan(req.Annotation, outcome, result.Len(), time.Since(start))

	return result, err
}

func (s *Scanner) scan(ctx context.Context, req Request) (*Result, error) {
	decl, err := s.provider.LookupAnnotation(req.Annotation)
	if err != nil {
		if errors.IsAnnotationNotFound(err) {
			return nil, err
		}
		return nil, errors.ScanFailure(req.Annotation, err)
	}

	scope := metadata.NewScope(req.BasePackage, s.provider.ModulePath())
	idx, err := s.provider.Load(ctx, scope)
	if err != nil {
		return nil, errors.ScanFailure(decl.ID, err)
	}

	refs, viaMethod := candidates(idx, decl)

	result := NewResult()
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, errors.ScanFailure(decl.ID, err)
		}

		info, err := idx.LoadType(ref)
		if err != nil {
			s.logger.Warn("skipping type that failed to load",
				zap.String("type", ref.QualifiedName()),
				zap.String("annotation", decl.ID),
				zap.Error(err),
			)
			continue
		}

		if !viaMethod[ref] && !info.HasAnnotation(decl.ID) {
			continue
		}

		if decl.ID == annotations.Controller && info.HasAnnotation(annotations.RestController) {
			s.logger.Debug("excluding rest controller",
				zap.String("type", ref.QualifiedName()),
			)
			continue
		}

		result.Put(s.describe(idx, decl, info))
	}

	s.logger.Debug("scan complete",
		zap.String("annotation", decl.ID),
		zap.String("scope", string(scope)),
		zap.Int("matched", result.Len()),
	)

	return result, nil
}

// candidates lists the types to consider, in enumeration order. Types reached
// through an annotated method are flagged in viaMethod.
func candidates(idx metadata.Index, decl annotations.AnnotationDecl) ([]metadata.TypeRef, map[metadata.TypeRef]bool) {
	var refs []metadata.TypeRef
	seen := make(map[metadata.TypeRef]bool)
	viaMethod := make(map[metadata.TypeRef]bool)

	if decl.TargetsTypes() {
		for _, ref := range idx.TypesAnnotatedWith(decl.ID) {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}

	if decl.TargetsMethods() {
		for _, method := range idx.MethodsAnnotatedWith(decl.ID) {
			// Plain functions have no declaring type
			if !method.IsMethod() {
				continue
			}
			viaMethod[method.Receiver] = true
			if !seen[method.Receiver] {
				seen[method.Receiver] = true
				refs = append(refs, method.Receiver)
			}
		}
	}

	return refs, viaMethod
}

func (s *Scanner) describe(idx metadata.Index, decl annotations.AnnotationDecl, info *metadata.TypeInfo) *TypeInfo {
	methods, err := idx.DeclaredMethods(info.Ref)
	if err != nil {
		s.logger.Warn("listing methods failed",
			zap.String("type", info.Ref.QualifiedName()),
			zap.String("annotation", decl.ID),
			zap.Error(err),
		)
		methods = nil
	}
	if methods == nil {
		methods = []metadata.MethodInfo{}
	}

	record := &TypeInfo{
		QualifiedName: info.Ref.QualifiedName(),
		SimpleName:    info.Ref.Name,
		Methods:       methods,
	}

	if decl.HasValue {
		if marker, ok := info.Annotation(decl.ID); ok {
			if value, ok := marker.Value(); ok && value != "" {
				record.AnnotationValue = value
			}
		}
	}

	return record
}
