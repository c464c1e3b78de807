// Package config binds command-line flags, AXONSCAN_* environment variables
// and an optional config file into a Config.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/toyz/axonscan/internal/errors"
)

// EnvPrefix prefixes every environment variable, e.g. AXONSCAN_LISTEN
const EnvPrefix = "AXONSCAN"

// Configuration keys. Flags carry the same names.
const (
	KeyConfig          = "config"
	KeyListen          = "listen"
	KeyAdapter         = "adapter"
	KeyRoot            = "root"
	KeyCatalog         = "catalog"
	KeyMetricsListen   = "metrics-listen"
	KeyLogLevel        = "log-level"
	KeyDev             = "dev"
	KeyShutdownTimeout = "shutdown-timeout"
)

// Supported web adapters
const (
	AdapterEcho  = "echo"
	AdapterGin   = "gin"
	AdapterFiber = "fiber"
)

// Config is the resolved service configuration
type Config struct {
	Listen          string
	Adapter         string
	Root            string
	Catalog         string
	MetricsListen   string
	LogLevel        string
	Dev             bool
	ShutdownTimeout time.Duration
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Listen:          ":8080",
		Adapter:         AdapterEcho,
		Root:            ".",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
	}
}

// RegisterCommonFlags adds the flags shared by every command
func RegisterCommonFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyConfig, "", "path to a YAML config file")
	flags.String(KeyRoot, d.Root, "directory inside the Go module to scan")
	flags.String(KeyCatalog, "", "YAML file with additional annotation declarations")
	flags.String(KeyLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	flags.Bool(KeyDev, d.Dev, "human readable development logging")
}

// RegisterServerFlags adds the flags of the serve command
func RegisterServerFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyListen, d.Listen, "HTTP listen address")
	flags.String(KeyAdapter, d.Adapter, "web framework: echo, gin or fiber")
	flags.String(KeyMetricsListen, "", "Prometheus /metrics listen address (empty disables)")
	flags.Duration(KeyShutdownTimeout, d.ShutdownTimeout, "graceful shutdown timeout")
}

// Bind binds every flag in flags to v and enables AXONSCAN_* environment
// lookups. Defaults are registered for keys without a flag.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	d := Defaults()
	v.SetDefault(KeyListen, d.Listen)
	v.SetDefault(KeyAdapter, d.Adapter)
	v.SetDefault(KeyRoot, d.Root)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyShutdownTimeout, d.ShutdownTimeout)

	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(flag.Name, flag); err != nil {
			bindErr = errors.WrapConfigurationError(flag.Name, "bind", err)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// LoadFile reads the config file named by the config key, if any, and
// returns its absolute path.
func LoadFile(v *viper.Viper) (string, error) {
	path := strings.TrimSpace(v.GetString(KeyConfig))
	if path == "" {
		return "", nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.WrapFileSystemError("stat", abs, err)
	}
	if info.IsDir() {
		return "", errors.ConfigurationError(KeyConfig, abs+" is a directory")
	}

	v.SetConfigFile(abs)
	if err := v.ReadInConfig(); err != nil {
		return "", errors.WrapConfigurationError(abs, "read", err)
	}
	return abs, nil
}

// FromViper builds and validates a Config from v
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Listen:          strings.TrimSpace(v.GetString(KeyListen)),
		Adapter:         strings.ToLower(strings.TrimSpace(v.GetString(KeyAdapter))),
		Root:            strings.TrimSpace(v.GetString(KeyRoot)),
		Catalog:         strings.TrimSpace(v.GetString(KeyCatalog)),
		MetricsListen:   strings.TrimSpace(v.GetString(KeyMetricsListen)),
		LogLevel:        strings.TrimSpace(v.GetString(KeyLogLevel)),
		Dev:             v.GetBool(KeyDev),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch c.Adapter {
	case AdapterEcho, AdapterGin, AdapterFiber:
	default:
		return errors.ConfigurationError(KeyAdapter, "unsupported adapter "+c.Adapter).
			WithSuggestion("Use one of: echo, gin, fiber")
	}

	if c.Listen == "" {
		return errors.ConfigurationError(KeyListen, "listen address is required")
	}
	if c.MetricsListen != "" && c.MetricsListen == c.Listen {
		return errors.ConfigurationError(KeyMetricsListen, "must differ from listen")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.ConfigurationError(KeyLogLevel, err.Error())
	}

	if c.ShutdownTimeout <= 0 {
		return errors.ConfigurationError(KeyShutdownTimeout, "must be positive")
	}

	if c.Root == "" {
		return errors.ConfigurationError(KeyRoot, "root directory is required")
	}
	info, err := os.Stat(c.Root)
	if err != nil {
		return errors.WrapFileSystemError("stat", c.Root, err).
			WithSuggestion("Point --root at a directory inside a Go module")
	}
	if !info.IsDir() {
		return errors.ConfigurationError(KeyRoot, c.Root+" is not a directory")
	}

	return nil
}
