package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/particles"
	"github.com/san-kum/backdrop/internal/theme"
)

const (
	DefaultEngine = "particles"
	DefaultWidth  = 960.0
	DefaultHeight = 540.0
	DefaultFrames = 300
	DefaultFPS    = 60
)

type Config struct {
	Engine    string           `yaml:"engine"`
	Theme     theme.Theme      `yaml:"theme"`
	Width     float64          `yaml:"width"`
	Height    float64          `yaml:"height"`
	Frames    int              `yaml:"frames"`
	FPS       int              `yaml:"fps"`
	Seed      int64            `yaml:"seed"`
	Particles particles.Config `yaml:"particles"`
	Circuit   circuit.Config   `yaml:"circuit"`
}

func DefaultConfig() *Config {
	return &Config{
		Engine:    DefaultEngine,
		Theme:     theme.Dark,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Frames:    DefaultFrames,
		FPS:       DefaultFPS,
		Particles: particles.DefaultConfig(),
		Circuit:   circuit.DefaultConfig(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate normalises the enum fields and rejects unknown names.
func (c *Config) Validate() error {
	var err error
	if c.Theme, err = theme.Parse(string(c.Theme)); err != nil {
		return err
	}
	if c.Particles.Scheme, err = theme.ParseScheme(string(c.Particles.Scheme)); err != nil {
		return err
	}
	if c.Circuit.Speed, err = circuit.ParseSpeed(string(c.Circuit.Speed)); err != nil {
		return err
	}
	if c.Circuit.Density, err = circuit.ParseDensity(string(c.Circuit.Density)); err != nil {
		return err
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
