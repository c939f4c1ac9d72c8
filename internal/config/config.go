// Package config loads settings for the shade command.
//
// Sources are applied in order: built-in defaults, a YAML file, a .env file,
// then SHADE_* environment variables. Later sources win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/palette"
)

// Defaults match the interactive tool this command replaces.
const (
	DefaultBase     = "#ffffff"
	DefaultCount    = 10
	DefaultFormat   = "text"
	DefaultColumns  = 5
	DefaultLogLevel = "warn"
	DefaultSwatch   = "shades.png"
)

// Config holds the shade command settings.
type Config struct {
	Base      string       `yaml:"base"`
	Count     int          `yaml:"count"`
	Format    string       `yaml:"format"`
	Output    string       `yaml:"output"`
	CSSPrefix string       `yaml:"css_prefix"`
	Color     bool         `yaml:"color"`
	LogLevel  string       `yaml:"log_level"`
	Swatch    SwatchConfig `yaml:"swatch"`
}

// SwatchConfig holds PNG sheet settings.
type SwatchConfig struct {
	Output     string  `yaml:"output"`
	Columns    int     `yaml:"columns"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Gap        float64 `yaml:"gap"`
	Labels     bool    `yaml:"labels"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Base:      DefaultBase,
		Count:     DefaultCount,
		Format:    DefaultFormat,
		CSSPrefix: palette.DefaultCSSPrefix,
		Color:     true,
		LogLevel:  DefaultLogLevel,
		Swatch: SwatchConfig{
			Output:     DefaultSwatch,
			Columns:    DefaultColumns,
			CellWidth:  56,
			CellHeight: 96,
			Gap:        8,
			Labels:     true,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path, a .env file in
// the working directory, and the environment. A missing YAML or .env file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv populates unset variables from a .env file if one exists.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if _, err := shade.ParseHex(c.Base); err != nil {
		return fmt.Errorf("config: base: %w", err)
	}
	if c.Count < shade.MinCount {
		return fmt.Errorf("config: count: %w", &shade.CountError{Count: c.Count})
	}
	if _, err := palette.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if c.Swatch.Columns < 1 {
		return fmt.Errorf("config: swatch.columns must be at least 1, got %d", c.Swatch.Columns)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SlogLevel returns the configured log level, falling back to warn.
func (c *Config) SlogLevel() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// ParseLevel maps debug, info, warn/warning and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
