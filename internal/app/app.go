// Package app assembles the scan service with fx.
package app

import (
	"context"
	stderrors "errors"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/config"
	"github.com/toyz/axonscan/internal/controllers"
	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/metadata"
	"github.com/toyz/axonscan/internal/metrics"
	"github.com/toyz/axonscan/internal/scanner"
	"github.com/toyz/axonscan/internal/views"
	"github.com/toyz/axonscan/pkg/web"
	"github.com/toyz/axonscan/pkg/web/adapters"
)

// Module provides every component of the service and starts the HTTP server
var Module = fx.Module("axonscan",
	fx.Provide(
		NewRegistry,
		NewProvider,
		metrics.New,
		NewScanner,
		views.NewSet,
		NewServer,
		NewController,
	),
	fx.Invoke(RegisterRoutes, RunServer),
)

// New builds the application for cfg. Extra options are appended, which lets
// tests replace components.
func New(cfg config.Config, logger *zap.Logger, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
		fx.StopTimeout(cfg.ShutdownTimeout),
		Module,
		fx.Options(opts...),
	)
}

// NewRegistry returns the built-in annotations plus the declarations of the
// configured catalog file
func NewRegistry(cfg config.Config, logger *zap.Logger) (annotations.AnnotationRegistry, error) {
	registry, err := annotations.NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog == "" {
		return registry, nil
	}

	n, err := annotations.LoadCatalogFile(cfg.Catalog, registry)
	if err != nil {
		return nil, err
	}
	logger.Info("annotation catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.Int("annotations", n),
	)
	return registry, nil
}

// NewProvider returns a source provider rooted at the configured directory
func NewProvider(cfg config.Config, registry annotations.AnnotationRegistry, logger *zap.Logger) (metadata.Provider, error) {
	provider, err := metadata.NewSourceProvider(cfg.Root, registry, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("scanning module",
		zap.String("module", provider.ModulePath()),
		zap.String("dir", provider.Dir()),
	)
	return provider, nil
}

// NewScanner returns a scanner that reports to m
func NewScanner(provider metadata.Provider, m *metrics.Metrics, logger *zap.Logger) *scanner.Scanner {
	return scanner.New(provider, logger, scanner.WithRecorder(m))
}

// NewServer returns the web adapter selected by cfg.Adapter
func NewServer(cfg config.Config) (web.Server, error) {
	switch cfg.Adapter {
	case config.AdapterEcho:
		return adapters.NewDefaultEchoAdapter(), nil
	case config.AdapterGin:
		return adapters.NewDefaultGinAdapter(), nil
	case config.AdapterFiber:
		return adapters.NewDefaultFiberAdapter(), nil
	default:
		return nil, errors.ConfigurationError(config.KeyAdapter, "unsupported adapter "+cfg.Adapter)
	}
}

// NewController returns the scan controller
func NewController(s *scanner.Scanner, registry annotations.AnnotationRegistry, viewSet *views.Set, logger *zap.Logger) *controllers.ScanController {
	return controllers.NewScanController(s, registry, viewSet, logger)
}

// RegisterRoutes mounts the controller behind the request id, access log and
// metrics middleware
func RegisterRoutes(server web.Server, controller *controllers.ScanController, m *metrics.Metrics, logger *zap.Logger) {
	server.Use(controllers.RequestID())
	server.Use(controllers.AccessLog(logger))
	server.Use(m.Middleware())
	controller.RegisterRoutes(server)
}

// RunServer starts the HTTP server, and the metrics server when configured,
// with the application and stops them on shutdown
func RunServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, server web.Server, m *metrics.Metrics, cfg config.Config, logger *zap.Logger) {
	var metricsServer *metrics.Server

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.MetricsListen != "" {
				srv, err := metrics.StartServer(cfg.MetricsListen, m.Handler(), logger)
				if err != nil {
					return err
				}
				metricsServer = srv
				logger.Info("metrics server listening", zap.String("addr", srv.Addr()))
			}

			logger.Info("starting server",
				zap.String("adapter", server.Name()),
				zap.String("addr", cfg.Listen),
			)
			go func() {
				if err := server.Start(cfg.Listen); err != nil && !stderrors.Is(err, web.ErrServerClosed) {
					logger.Error("server stopped", zap.Error(err))
					if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
						logger.Error("shutdown request failed", zap.Error(err))
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server", zap.String("adapter", server.Name()))
			err := server.Stop(ctx)
			if metricsServer != nil {
				err = multierr.Append(err, metricsServer.Shutdown(ctx))
			}
			return err
		},
	})
}
