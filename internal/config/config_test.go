package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/axonscan/internal/errors"
)

func newFlags(t *testing.T, args ...string) (*viper.Viper, *pflag.FlagSet) {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterCommonFlags(flags)
	RegisterServerFlags(flags)
	require.NoError(t, flags.Parse(args))

	v := viper.New()
	require.NoError(t, Bind(v, flags))
	return v, flags
}

func TestDefaults(t *testing.T) {
	v, _ := newFlags(t)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	v, _ := newFlags(t, "--listen", ":9090", "--adapter", "Fiber", "--dev", "--shutdown-timeout", "3s")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, AdapterFiber, cfg.Adapter)
	assert.True(t, cfg.Dev)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("AXONSCAN_ADAPTER", "gin")
	t.Setenv("AXONSCAN_METRICS_LISTEN", ":9100")

	v, _ := newFlags(t)
	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, AdapterGin, cfg.Adapter)
	assert.Equal(t, ":9100", cfg.MetricsListen)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "axonscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("adapter: gin\nlog-level: debug\ncatalog: team.yaml\n"), 0o644))

	v, _ := newFlags(t, "--config", path, "--log-level", "warn")

	loaded, err := LoadFile(v)
	require.NoError(t, err)
	assert.Equal(t, path, loaded)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, AdapterGin, cfg.Adapter)
	assert.Equal(t, "team.yaml", cfg.Catalog)
	assert.Equal(t, "warn", cfg.LogLevel, "explicit flags win over the file")
}

func TestLoadFile_Errors(t *testing.T) {
	v, _ := newFlags(t)
	loaded, err := LoadFile(v)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	v, _ = newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = LoadFile(v)
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))

	v, _ = newFlags(t, "--config", t.TempDir())
	_, err = LoadFile(v)
	require.Error(t, err)
	assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.ErrorCode
	}{
		{"unknown adapter", func(c *Config) { c.Adapter = "chi" }, errors.ConfigurationErrorCode},
		{"empty listen", func(c *Config) { c.Listen = "" }, errors.ConfigurationErrorCode},
		{"metrics on same address", func(c *Config) { c.MetricsListen = c.Listen }, errors.ConfigurationErrorCode},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, errors.ConfigurationErrorCode},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, errors.ConfigurationErrorCode},
		{"missing root", func(c *Config) { c.Root = filepath.Join(file, "nope") }, errors.FileSystemErrorCode},
		{"root is a file", func(c *Config) { c.Root = file }, errors.ConfigurationErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}
