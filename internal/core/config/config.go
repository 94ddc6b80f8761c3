// Package config handles configuration loading and validation for toasts.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/internal/core/toast"
)

// Config holds the application configuration.
type Config struct {
	Toasts ToastConfig `yaml:"toasts"`
	TUI    TUIConfig   `yaml:"tui"`
}

// ToastConfig controls toast lifetimes and how many are retained.
type ToastConfig struct {
	DefaultDuration time.Duration `yaml:"default_duration"`
	ErrorDuration   time.Duration `yaml:"error_duration"`
	MaxVisible      int           `yaml:"max_visible"` // 0 = unlimited
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toasts: ToastConfig{
			DefaultDuration: toast.DefaultDuration,
			ErrorDuration:   toast.ErrorDuration,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills values a file can blank out but not meaningfully set
// empty. Durations are decoded over the defaults, so keys missing from the
// file keep them and an explicit 0 means "never auto-dismiss".
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// ManagerOptions converts the toast settings into manager options.
func (c *Config) ManagerOptions() []toast.Option {
	return []toast.Option{
		toast.WithDefaultDuration(c.Toasts.DefaultDuration),
		toast.WithErrorDuration(c.Toasts.ErrorDuration),
		toast.WithMaxToasts(c.Toasts.MaxVisible),
	}
}

// Palette returns the palette for the configured theme.
func (c *Config) Palette() styles.Palette {
	if p, ok := styles.GetPalette(c.TUI.Theme); ok {
		return p
	}
	p, _ := styles.GetPalette(styles.DefaultTheme)
	return p
}
