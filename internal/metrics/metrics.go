// Package metrics exposes Prometheus collectors for scans and HTTP requests.
package metrics

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/scanner"
	"github.com/toyz/axonscan/pkg/web"
)

const namespace = "axonscan"

// unknownAnnotation replaces unresolved identifiers as a label value so that
// user input cannot grow label cardinality
const unknownAnnotation = "unknown"

// Metrics holds the service's collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	scans    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	matched  prometheus.Histogram
	requests *prometheus.CounterVec
}

// New creates and registers every collector
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Annotation scans by annotation and outcome.",
		}, []string{"annotation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Time spent loading packages and building scan results.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"outcome"}),
		matched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_matched_types",
			Help:      "Number of types returned by successful scans.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
	}

	m.registry.MustRegister(
		m.scans,
		m.duration,
		m.matched,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveScan implements scanner.Recorder
func (m *Metrics) ObserveScan(annotation, outcome string, matched int, elapsed time.Duration) {
	if outcome == scanner.OutcomeNotFound {
		annotation = unknownAnnotation
	}
	m.scans.WithLabelValues(annotation, outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if outcome == scanner.OutcomeOK {
		m.matched.Observe(float64(matched))
	}
}

// Middleware counts requests once they have been handled
func (m *Metrics) Middleware() web.MiddlewareFunc {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx web.RequestContext) error {
			err := next(ctx)
			m.requests.WithLabelValues(ctx.Method(), strconv.Itoa(ctx.Response().Status())).Inc()
			return err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Server serves /metrics on its own listener
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// StartServer listens on addr and serves handler at /metrics in the
// background
func StartServer(addr string, handler http.Handler, logger *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(errors.ConfigurationErrorCode, err, "metrics listen on %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()

	return &Server{srv: srv, ln: ln}, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
