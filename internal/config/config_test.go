package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI != UIConsole {
		t.Errorf("UI = %q, want %q", cfg.UI, UIConsole)
	}
	if cfg.WrapWidth != 79 {
		t.Errorf("WrapWidth = %d, want 79", cfg.WrapWidth)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.HoneycombDataset != "zombiecruise" {
		t.Errorf("HoneycombDataset = %q, want %q", cfg.HoneycombDataset, "zombiecruise")
	}
	if cfg.TelemetryHeaders() != nil {
		t.Errorf("TelemetryHeaders() = %v, want nil", cfg.TelemetryHeaders())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ZC_SEED", "42")
	t.Setenv("ZC_UI", "screen")
	t.Setenv("ZC_DEBUG_COMMANDS", "true")
	t.Setenv("ZC_WRAP_WIDTH", "100")
	t.Setenv("HONEYCOMB_ZOMBIECRUISE_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.UI != UIScreen || !cfg.DebugCommands || cfg.WrapWidth != 100 {
		t.Errorf("Load() = %+v", cfg)
	}
	if got := cfg.TelemetryEndpoint(); got != honeycombEndpoint {
		t.Errorf("TelemetryEndpoint() = %q, want %q", got, honeycombEndpoint)
	}
	if got := cfg.TelemetryHeaders()["x-honeycomb-team"]; got != "secret" {
		t.Errorf("x-honeycomb-team = %q, want %q", got, "secret")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"ZC_SEED", "not-a-number", "parse env:"},
		{"ZC_UI", "gui", "ZC_UI"},
		{"ZC_WRAP_WIDTH", "5", "ZC_WRAP_WIDTH"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
