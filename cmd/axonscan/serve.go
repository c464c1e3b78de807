package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toyz/axonscan/internal/app"
	"github.com/toyz/axonscan/internal/config"
	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/logging"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scan results over HTTP",
		Long: `Serve GET /?annotation=<namespace::name>&basePackage=<import path>
with results rendered as HTML, JSON or Markdown (format=html|json|markdown),
and the annotation catalog at GET /annotations.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	config.RegisterServerFlags(cmd.Flags())
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	application := app.New(cfg, logger)
	if err := application.Err(); err != nil {
		return err
	}

	if err := application.Start(cmd.Context()); err != nil {
		return err
	}

	sig := <-application.Wait()
	logger.Info("shutting down", zap.String("signal", sig.Signal.String()))

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := application.Stop(stopCtx); err != nil {
		return err
	}

	if sig.ExitCode != 0 {
		return errors.Newf(errors.UnknownErrorCode, "server exited with code %d", sig.ExitCode)
	}
	return nil
}
