package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by applyEnv.
const (
	EnvBase          = "SHADE_BASE"
	EnvCount         = "SHADE_COUNT"
	EnvFormat        = "SHADE_FORMAT"
	EnvOutput        = "SHADE_OUTPUT"
	EnvCSSPrefix     = "SHADE_CSS_PREFIX"
	EnvColor         = "SHADE_COLOR"
	EnvLogLevel      = "SHADE_LOG_LEVEL"
	EnvSwatchOutput  = "SHADE_SWATCH_OUTPUT"
	EnvSwatchColumns = "SHADE_SWATCH_COLUMNS"
	EnvSwatchLabels  = "SHADE_SWATCH_LABELS"
)

// applyEnv overrides fields from SHADE_* variables that are set.
func (c *Config) applyEnv() error {
	setString(&c.Base, EnvBase)
	setString(&c.Format, EnvFormat)
	setString(&c.Output, EnvOutput)
	setString(&c.CSSPrefix, EnvCSSPrefix)
	setString(&c.LogLevel, EnvLogLevel)
	setString(&c.Swatch.Output, EnvSwatchOutput)

	if err := setInt(&c.Count, EnvCount); err != nil {
		return err
	}
	if err := setInt(&c.Swatch.Columns, EnvSwatchColumns); err != nil {
		return err
	}
	if err := setBool(&c.Color, EnvColor); err != nil {
		return err
	}
	return setBool(&c.Swatch.Labels, EnvSwatchLabels)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}
