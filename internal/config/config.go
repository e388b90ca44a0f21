// Package config handles application configuration from a TOML file,
// a .env file and environment variables. CLI flags are layered on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// NamesFile overrides the bundled name list. Empty means bundled.
	NamesFile string `toml:"names_file" env:"SILLYCOMMIT_NAMES_FILE"`

	// TemplatesFile overrides the bundled commit message list. Empty means bundled.
	TemplatesFile string `toml:"templates_file" env:"SILLYCOMMIT_TEMPLATES_FILE"`

	// Count is how many messages to print.
	Count int `toml:"count" env:"SILLYCOMMIT_COUNT"`

	// Seed makes output reproducible. Zero seeds from the clock.
	Seed uint64 `toml:"seed" env:"SILLYCOMMIT_SEED"`

	// LogLevel is the zap level for diagnostics on stderr.
	LogLevel string `toml:"log_level" env:"SILLYCOMMIT_LOG_LEVEL"`
}

// Default values.
const (
	DefaultCount    = 1
	DefaultLogLevel = "warn"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Count:    DefaultCount,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the TOML file at path, then applies .env and environment
// overrides. A missing file yields defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadWithDefaults returns a Config with default values and environment
// overrides, without reading any file. Useful for testing.
func LoadWithDefaults() (*Config, error) {
	cfg := Default()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/sillycommit/config.toml, falling
// back to ~/.config/sillycommit/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sillycommit", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sillycommit", "config.toml"), nil
}

func (c *Config) applyEnvOverrides() error {
	// Variables already set in the environment win over .env.
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: read %s: %w", DotEnvFile, err)
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Count <= 0 {
		c.Count = DefaultCount
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
