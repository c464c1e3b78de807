package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toyz/axonscan/internal/config"
)

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	serve := NewServeCmd()

	cmd := &cobra.Command{
		Use:   "axonscan",
		Short: "Find the Go types carrying an annotation marker",
		Long: `axonscan indexes the //namespace::name annotation markers of a Go module
and lists the annotated types together with their methods.

It serves the listing over HTTP (serve, the default) or prints it once (scan).
Every flag can also be set through an AXONSCAN_* environment variable or a
YAML file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	config.RegisterCommonFlags(cmd.PersistentFlags())
	// The root command accepts the serve flags so that a bare invocation serves
	config.RegisterServerFlags(cmd.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(NewScanCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves flags, environment and config file for cmd
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	if err := config.Bind(v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	if _, err := config.LoadFile(v); err != nil {
		return config.Config{}, err
	}
	return config.FromViper(v)
}
