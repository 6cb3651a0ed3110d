package particles

import "github.com/san-kum/backdrop/internal/theme"

const (
	// Pointer repulsion.
	InteractRadius = 150.0
	PushFactor     = 0.2

	// Connective lines between particle pairs closer than LinkDistance.
	LinkDistance = 150.0
	LinkAlpha    = 0.5
	LinkWidth    = 0.5

	MinOpacity = 0.3
	MaxOpacity = 0.8
)

// Range is an inclusive [Min, Max] pair in pixels (sizes) or pixels per
// frame (speeds). Inverted ranges are not corrected.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Config struct {
	Count       int          `yaml:"count"`
	Scheme      theme.Scheme `yaml:"scheme"`
	Size        Range        `yaml:"size"`
	Speed       Range        `yaml:"speed"`
	Connect     bool         `yaml:"connect"`
	Interactive bool         `yaml:"interactive"`
}

func DefaultConfig() Config {
	return Config{
		Count:       80,
		Scheme:      theme.Blue,
		Size:        Range{Min: 1, Max: 3},
		Speed:       Range{Min: 0.2, Max: 0.7},
		Connect:     true,
		Interactive: true,
	}
}
