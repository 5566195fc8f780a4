package app

import (
	"errors"
	"fmt"
)

// Config holds everything an App instance needs to run.
type Config struct {
	Steps      int    // number of rain steps
	InputPath  string // heights file; empty or "-" reads the App's input
	ConfigPath string // optional .hcl, .yaml or .yml settings file

	// Overrides are key=value settings applied after the config file.
	Overrides map[string]string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Steps < 0 {
		return nil, fmt.Errorf("number of steps must not be negative, got %d", cfg.Steps)
	}
	if cfg.LogLevel == "" || cfg.LogFormat == "" {
		return nil, errors.New("LogLevel and LogFormat are required configuration fields")
	}
	return &cfg, nil
}
