package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/toasts/internal/core/styles"
)

// Validate checks that the configuration is structurally valid. Field errors
// are collected into a criterio.FieldErrors value.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.Toasts.DefaultDuration < 0 {
		errs = errs.Append("toasts.default_duration", fmt.Errorf("must not be negative, got %s", c.Toasts.DefaultDuration))
	}
	if c.Toasts.ErrorDuration < 0 {
		errs = errs.Append("toasts.error_duration", fmt.Errorf("must not be negative, got %s", c.Toasts.ErrorDuration))
	}
	if c.Toasts.MaxVisible < 0 {
		errs = errs.Append("toasts.max_visible", fmt.Errorf("must not be negative, got %d", c.Toasts.MaxVisible))
	}
	if !slices.Contains(styles.ThemeNames(), c.TUI.Theme) {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q (available: %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", ")))
	}

	return errs.ToError()
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// set, is a readable file.
func (c *Config) ValidateDeep(configPath string) error {
	return criterio.ValidateStruct(
		c.Validate(),
		criterio.Run("config_file", configPath, validateConfigFile),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", configPath)
	}
	return nil
}
