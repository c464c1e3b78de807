package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/axonscan/internal/annotations"
	"github.com/toyz/axonscan/internal/app"
	"github.com/toyz/axonscan/internal/cli"
	"github.com/toyz/axonscan/internal/controllers"
	"github.com/toyz/axonscan/internal/errors"
	"github.com/toyz/axonscan/internal/logging"
	"github.com/toyz/axonscan/internal/scanner"
	"github.com/toyz/axonscan/internal/views"
)

// formatText selects the terminal listing
const formatText = "text"

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print the types carrying an annotation",
		Long: `Scan the module once and print every type carrying --annotation.
Without --annotation the example::scan_me marker is used.`,
		Example: `  axonscan scan --annotation web::controller
  axonscan scan --annotation stereotype::service --base-package ./internal/... --format json`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}

	flags := cmd.Flags()
	flags.String("annotation", "", "fully-qualified annotation (namespace::name)")
	flags.String("base-package", "", "only scan packages below this import path")
	flags.String("format", formatText, "output format: text, json, markdown or html")
	flags.BoolP("quiet", "q", false, "only print errors")
	flags.BoolP("verbose", "v", false, "print scan details")

	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	annotation, _ := flags.GetString("annotation")
	basePackage, _ := flags.GetString("base-package")
	format, _ := flags.GetString("format")
	quiet, _ := flags.GetBool("quiet")
	verbose, _ := flags.GetBool("verbose")

	level := cli.DiagnosticInfo
	switch {
	case quiet:
		level = cli.DiagnosticError
	case verbose:
		level = cli.DiagnosticVerbose
	}
	d := cli.NewDiagnostics(level, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var renderer views.Renderer
	if format != formatText {
		parsed, err := views.ParseFormat(format)
		if err != nil {
			return err
		}
		set, err := views.NewSet()
		if err != nil {
			return err
		}
		if renderer, err = set.For(parsed); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry, err := app.NewRegistry(cfg, logger)
	if err != nil {
		return err
	}
	provider, err := app.NewProvider(cfg, registry, logger)
	if err != nil {
		return err
	}
	s := scanner.New(provider, logger)

	d.Verbose("module %s, root %s", provider.ModulePath(), cfg.Root)

	var result *scanner.Result
	if annotation == "" {
		annotation = annotations.ScanMe
		result, err = s.ScanDefault(cmd.Context(), basePackage)
	} else {
		result, err = s.Scan(cmd.Context(), scanner.Request{Annotation: annotation, BasePackage: basePackage})
	}
	if err != nil {
		err = controllers.WithSuggestions(annotation, err)
		if renderer == nil {
			cli.ReportError(d, err)
			return errors.New(errors.CodeOf(err), "scan failed")
		}
		page := views.ErrorPage{
			Status:      controllers.StatusFor(err),
			Message:     err.Error(),
			Annotation:  annotation,
			BasePackage: basePackage,
			Suggestions: errors.SuggestionsOf(err),
		}
		if renderErr := renderer.RenderError(cmd.OutOrStdout(), page); renderErr != nil {
			return renderErr
		}
		return errors.New(errors.CodeOf(err), "scan failed")
	}

	if renderer == nil {
		cli.ReportResult(d, annotation, basePackage, result)
		return nil
	}
	return renderer.RenderResults(cmd.OutOrStdout(), views.ResultsPage{
		Annotation:  annotation,
		BasePackage: basePackage,
		Result:      result,
	})
}
