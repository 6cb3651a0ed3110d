package config

import (
	"sort"

	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/particles"
	"github.com/san-kum/backdrop/internal/theme"
)

var Presets = map[string]map[string]*Config{
	"particles": {
		"calm": withParticles(func(p *particles.Config) {
			p.Count = 40
			p.Speed = particles.Range{Min: 0.05, Max: 0.3}
		}),
		"dense": withParticles(func(p *particles.Config) {
			p.Count = 200
			p.Size = particles.Range{Min: 0.5, Max: 2}
		}),
		"aurora": withParticles(func(p *particles.Config) {
			p.Count = 120
			p.Scheme = theme.Multicolor
			p.Size = particles.Range{Min: 1, Max: 4}
		}),
		"light": func() *Config {
			cfg := withParticles(func(p *particles.Config) { p.Scheme = theme.Purple })
			cfg.Theme = theme.Light
			return cfg
		}(),
	},
	"circuit": {
		"sparse": withCircuit(func(c *circuit.Config) {
			c.Density = circuit.DensityLow
			c.Speed = circuit.SpeedSlow
		}),
		"busy": withCircuit(func(c *circuit.Config) {
			c.Density = circuit.DensityHigh
			c.Speed = circuit.SpeedFast
		}),
		"pulse": withCircuit(func(c *circuit.Config) {
			c.PulseEffect = true
			c.Color = "#06b6d4"
		}),
	},
}

func withParticles(fn func(*particles.Config)) *Config {
	cfg := DefaultConfig()
	cfg.Engine = "particles"
	fn(&cfg.Particles)
	return cfg
}

func withCircuit(fn func(*circuit.Config)) *Config {
	cfg := DefaultConfig()
	cfg.Engine = "circuit"
	fn(&cfg.Circuit)
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(engine, preset string) *Config {
	enginePresets, ok := Presets[engine]
	if !ok {
		return nil
	}
	cfg, ok := enginePresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(engine string) []string {
	enginePresets, ok := Presets[engine]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(enginePresets))
	for name := range enginePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
