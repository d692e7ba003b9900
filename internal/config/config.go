// Package config reads process settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Frontends.
const (
	UIConsole = "console"
	UIScreen  = "screen"
)

// honeycombEndpoint is where traces go when an API key is set.
const honeycombEndpoint = "api.honeycomb.io"

// Config holds everything main needs to start a session.
type Config struct {
	Seed          int64  `env:"ZC_SEED"`                       // 0 seeds from the clock
	UI            string `env:"ZC_UI" envDefault:"console"`    // console or screen
	DebugCommands bool   `env:"ZC_DEBUG_COMMANDS"`             // enables debug and cheat
	BalanceFile   string `env:"ZC_BALANCE_FILE"`               // YAML replacing the built-in balance
	WrapWidth     int    `env:"ZC_WRAP_WIDTH" envDefault:"79"` // narration wrap column
	Telemetry     bool   `env:"ZC_TELEMETRY"`

	HoneycombAPIKey  string `env:"HONEYCOMB_ZOMBIECRUISE_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_ZOMBIECRUISE_DATASET" envDefault:"zombiecruise"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env cannot check by type alone.
func (c Config) Validate() error {
	if c.UI != UIConsole && c.UI != UIScreen {
		return fmt.Errorf("ZC_UI must be %q or %q, got %q", UIConsole, UIScreen, c.UI)
	}
	if c.WrapWidth < 20 {
		return fmt.Errorf("ZC_WRAP_WIDTH must be at least 20, got %d", c.WrapWidth)
	}
	return nil
}

// TelemetryEndpoint returns the OTLP host, or "" to defer to OTEL_* variables.
func (c Config) TelemetryEndpoint() string {
	if c.HoneycombAPIKey == "" {
		return ""
	}
	return honeycombEndpoint
}

// TelemetryHeaders returns the Honeycomb exporter headers, or nil without a key.
func (c Config) TelemetryHeaders() map[string]string {
	if c.HoneycombAPIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.HoneycombAPIKey,
		"x-honeycomb-dataset": c.HoneycombDataset,
	}
}
