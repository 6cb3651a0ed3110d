package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/theme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Engine != "particles" {
		t.Errorf("expected engine particles, got %s", cfg.Engine)
	}
	if cfg.Particles.Count != 80 {
		t.Errorf("expected 80 particles, got %d", cfg.Particles.Count)
	}
	if cfg.Circuit.Density != circuit.DensityMedium {
		t.Errorf("expected medium density, got %s", cfg.Circuit.Density)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	data := "engine: circuit\ntheme: Light\ncircuit:\n  density: high\n  pulse_effect: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if cfg.Theme != theme.Light {
		t.Errorf("expected light theme, got %s", cfg.Theme)
	}
	if cfg.Circuit.Density != circuit.DensityHigh {
		t.Errorf("expected high density, got %s", cfg.Circuit.Density)
	}
	if !cfg.Circuit.PulseEffect {
		t.Error("expected pulse effect enabled")
	}
	if cfg.Circuit.Speed != circuit.SpeedMedium {
		t.Errorf("expected default speed to survive, got %s", cfg.Circuit.Speed)
	}
	if cfg.Width != DefaultWidth {
		t.Errorf("expected default width, got %f", cfg.Width)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("particles", "aurora")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Particles != cfg.Particles {
		t.Errorf("expected %+v, got %+v", cfg.Particles, loaded.Particles)
	}
}

func TestValidateRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"theme", func(c *Config) { c.Theme = "sepia" }, theme.ErrUnknownTheme},
		{"scheme", func(c *Config) { c.Particles.Scheme = "green" }, theme.ErrUnknownScheme},
		{"speed", func(c *Config) { c.Circuit.Speed = "warp" }, anim.ErrUnknownSpeed},
		{"density", func(c *Config) { c.Circuit.Density = "huge" }, anim.ErrUnknownDensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("particles", "dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles.Count != 200 {
		t.Errorf("expected 200 particles, got %d", cfg.Particles.Count)
	}

	cfg.Particles.Count = 1
	if again := GetPreset("particles", "dense"); again.Particles.Count != 200 {
		t.Error("expected preset to be unaffected by edits to a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("particles", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "calm")
	if cfg != nil {
		t.Error("expected nil for nonexistent engine")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("circuit")
	want := []string{"busy", "pulse", "sparse"}
	if len(presets) != len(want) {
		t.Fatalf("expected %v, got %v", want, presets)
	}
	for i := range want {
		if presets[i] != want[i] {
			t.Errorf("expected %s at %d, got %s", want[i], i, presets[i])
		}
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent engine")
	}
}

func TestPresetsValidate(t *testing.T) {
	for engine, presets := range Presets {
		for name, cfg := range presets {
			c := *cfg
			if err := c.Validate(); err != nil {
				t.Errorf("%s/%s: %v", engine, name, err)
			}
			if c.Engine != engine {
				t.Errorf("%s/%s: expected engine %s, got %s", engine, name, engine, c.Engine)
			}
		}
	}
}
