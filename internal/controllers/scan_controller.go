// Package controllers holds the HTTP handlers of the scan service.
package controllers

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/scanner"
	"github.com/toyz/axonscan/internal/views"
	"github.com/toyz/axonscan/pkg/web"
)

// Scanner runs annotation scans
type Scanner interface {
	Scan(ctx context.Context, req scanner.Request) (*scanner.Result, error)
}

// ScanController serves the scan page and the annotation catalog
type ScanController struct {
	scanner  Scanner
	registry annotations.AnnotationRegistry
	views    *views.Set
	logger   *zap.Logger
}

// NewScanController creates a scan controller
func NewScanController(s Scanner, registry annotations.AnnotationRegistry, viewSet *views.Set, logger *zap.Logger) *ScanController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanController{
		scanner:  s,
		registry: registry,
		views:    viewSet,
		logger:   logger.Named("controller"),
	}
}

// RegisterRoutes registers the controller's routes on server
func (c *ScanController) RegisterRoutes(server web.Server, middlewares ...web.MiddlewareFunc) {
	server.RegisterRoute(http.MethodGet, "/", c.Scan, middlewares...)
	server.RegisterRoute(http.MethodGet, "/annotations", c.ListAnnotations, middlewares...)
}

// Scan handles GET /?annotation=&basePackage=&format=
func (c *ScanController) Scan(ctx web.RequestContext) error {
	annotation := strings.TrimSpace(ctx.QueryParam("annotation"))
	if annotation == "" {
		annotation = DefaultAnnotation
	}
	basePackage := strings.TrimSpace(ctx.QueryParam("basePackage"))

	format, err := views.ParseFormat(ctx.QueryParam("format"))
	if err != nil {
		// Unknown formats are reported in the default format
		return c.renderError(ctx, views.FormatHTML, annotation, basePackage, err)
	}

	result, err := c.scanner.Scan(ctx.Context(), scanner.Request{
		Annotation:  annotation,
		BasePackage: basePackage,
	})
	if err != nil {
		return c.renderError(ctx, format, annotation, basePackage, WithSuggestions(annotation, err))
	}

	renderer, err := c.views.For(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	page := views.ResultsPage{Annotation: annotation, BasePackage: basePackage, Result: result}
	if err := renderer.RenderResults(&buf, page); err != nil {
		return errors.Wrap(errors.UnknownErrorCode, "failed to render results", err)
	}
	return ctx.Response().Blob(http.StatusOK, renderer.ContentType(), buf.Bytes())
}

func (c *ScanController) renderError(ctx web.RequestContext, format views.Format, annotation, basePackage string, scanErr error) error {
	status := StatusFor(scanErr)

	fields := []zap.Field{
		zap.String("annotation", annotation),
		zap.String("base_package", basePackage),
		zap.Int("status", status),
		zap.String("request_id", RequestIDFrom(ctx)),
		zap.Error(scanErr),
	}
	if status >= http.StatusInternalServerError {
		c.logger.Error("scan failed", fields...)
	} else {
		c.logger.Info("scan rejected", fields...)
	}

	renderer, err := c.views.For(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	page := views.ErrorPage{
		Status:      status,
		Message:     scanErr.Error(),
		Annotation:  annotation,
		BasePackage: basePackage,
		Suggestions: errors.SuggestionsOf(scanErr),
	}
	if err := renderer.RenderError(&buf, page); err != nil {
		return errors.Wrap(errors.UnknownErrorCode, "failed to render error page", err).WithCause(scanErr)
	}
	return ctx.Response().Blob(status, renderer.ContentType(), buf.Bytes())
}

// AnnotationEntry is the catalog listing of one declaration
type AnnotationEntry struct {
	ID          string   `json:"id"`
	Namespace   string   `json:"namespace"`
	Name        string   `json:"name"`
	Targets     []string `json:"targets"`
	Value       bool     `json:"value"`
	Description string   `json:"description,omitempty"`
}

// ListAnnotations handles GET /annotations
func (c *ScanController) ListAnnotations(ctx web.RequestContext) error {
	decls := c.registry.List()
	entries := make([]AnnotationEntry, 0, len(decls))
	for _, decl := range decls {
		targets := make([]string, 0, 2)
		for _, t := range decl.Targets.Targets() {
			targets = append(targets, t.String())
		}
		entries = append(entries, AnnotationEntry{
			ID:          decl.ID,
			Namespace:   decl.Namespace(),
			Name:        decl.Name(),
			Targets:     targets,
			Value:       decl.HasValue,
			Description: decl.Description,
		})
	}
	return ctx.Response().JSON(http.StatusOK, entries)
}
