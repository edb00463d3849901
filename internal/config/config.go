package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flexscan/cli/internal/errors"
)

// Defaults for everything the config surface covers.
const (
	DefaultOutputPath        = "flex_migration_all.json"
	DefaultSummaryOutputPath = "flex_migration_summary.json"
	DefaultCommandTimeout    = 2 * time.Minute
)

// Config holds the effective configuration: defaults, overridden by the
// optional config file, overridden by FLEXSCAN_* environment variables.
// Command-line flags are layered on top by the CLI.
type Config struct {
	OutputPath          string
	SummaryOutputPath   string
	AzPath              string
	CommandTimeout      time.Duration
	SkipExtensionUpdate bool
	Debug               bool
}

// fileConfig is the shape of ~/.flexscan/config.yaml. All fields are
// optional; absent ones keep their defaults.
type fileConfig struct {
	Output              string `yaml:"output"`
	SummaryOutput       string `yaml:"summary-output"`
	AzPath              string `yaml:"az-path"`
	CommandTimeout      string `yaml:"command-timeout"`
	SkipExtensionUpdate *bool  `yaml:"skip-extension-update"`
}

// Load builds the configuration from the default config file location and
// the environment.
func Load() (*Config, error) {
	path := ""
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, ".flexscan", "config.yaml")
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path. A missing file is
// fine; an unreadable or invalid one is a configuration error.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		OutputPath:        DefaultOutputPath,
		SummaryOutputPath: DefaultSummaryOutputPath,
		CommandTimeout:    DefaultCommandTimeout,
	}

	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("FLEXSCAN_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("FLEXSCAN_SUMMARY_OUTPUT"); v != "" {
		cfg.SummaryOutputPath = v
	}
	if v := os.Getenv("FLEXSCAN_AZ_PATH"); v != "" {
		cfg.AzPath = v
	}
	if os.Getenv("FLEXSCAN_SKIP_EXTENSION_UPDATE") == "true" {
		cfg.SkipExtensionUpdate = true
	}
	cfg.Debug = os.Getenv("FLEXSCAN_DEBUG") == "true"

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.ConfigError(fmt.Errorf("failed to read config file %s: %w", path, err))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.ConfigError(fmt.Errorf("invalid config file %s: %w", path, err))
	}

	if fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if fc.SummaryOutput != "" {
		cfg.SummaryOutputPath = fc.SummaryOutput
	}
	if fc.AzPath != "" {
		cfg.AzPath = fc.AzPath
	}
	if fc.CommandTimeout != "" {
		d, err := time.ParseDuration(fc.CommandTimeout)
		if err != nil {
			return errors.ConfigError(fmt.Errorf("invalid command-timeout %q in %s: %w", fc.CommandTimeout, path, err))
		}
		cfg.CommandTimeout = d
	}
	if fc.SkipExtensionUpdate != nil {
		cfg.SkipExtensionUpdate = *fc.SkipExtensionUpdate
	}
	return nil
}
