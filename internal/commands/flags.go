package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/colonyops/toasts/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Simulate pushes a sample toast at this interval when positive
	Simulate time.Duration

	// Config is loaded on first use by LoadConfig
	Config *config.Config
}

// LoadConfig loads the configuration from ConfigPath once and caches it.
func (f *Flags) LoadConfig() (*config.Config, error) {
	if f.Config != nil {
		return f.Config, nil
	}
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	f.Config = cfg
	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toasts", "config.yaml")
}
