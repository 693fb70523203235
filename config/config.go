// Package config loads the settings of the bunsetu command from an optional
// YAML file and BUNSETU_* environment variables.
package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/revelaction/bunsetu/bunsetu"
	"github.com/revelaction/bunsetu/render"
)

// envPrefix is the environment variable prefix of all settings.
const envPrefix = "BUNSETU"

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings shared by the subcommands.
type Config struct {
	// DocPath is a directory of JSON docs or a SQLite file.
	DocPath string `mapstructure:"doc_path"`

	HeadSuffix      string   `mapstructure:"head_suffix"`
	PhraseRelations []string `mapstructure:"phrase_relations"`

	// Workers bounds the docs chunked concurrently.
	Workers int `mapstructure:"workers"`

	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
}

// newViper builds a viper instance reading BUNSETU_ variables. Every key
// has a default so that AutomaticEnv sees it on Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("doc_path", "")
	v.SetDefault("head_suffix", bunsetu.DefaultHeadSuffix)
	v.SetDefault("phrase_relations", bunsetu.DefaultPhraseRelations())
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("log_level", "info")
	v.SetDefault("format", render.DefaultFormat)
	return v
}

// Load reads the YAML file at configPath, merges any BUNSETU_* environment
// overrides and validates the result. An empty configPath loads from the
// environment only.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the value ranges of the settings.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}

	if !slices.Contains(render.SupportedFormats(), c.Format) {
		return fmt.Errorf("format must be one of %s, got %q", strings.Join(render.SupportedFormats(), ", "), c.Format)
	}

	if len(c.PhraseRelations) == 0 {
		return fmt.Errorf("phrase_relations must not be empty")
	}

	return nil
}

// Bunsetu returns the configuration of the chunking passes.
func (c *Config) Bunsetu() bunsetu.Config {
	return bunsetu.Config{
		HeadSuffix:      c.HeadSuffix,
		PhraseRelations: slices.Clone(c.PhraseRelations),
	}
}
