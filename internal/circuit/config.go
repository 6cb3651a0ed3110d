package circuit

import (
	"fmt"
	"strings"

	"github.com/san-kum/backdrop/internal/anim"
)

const (
	CellSize       = 40.0
	JitterFraction = 0.3
	MinSpacing     = 0.8 * CellSize

	// An edge counts as axis-aligned when min(|dx|,|dy|)/max(|dx|,|dy|) is
	// below AxisRatio; others survive with DiagonalChance.
	AxisRatio      = 0.3
	DiagonalChance = 0.3
	MaxCandidates  = 6
	MaxLinks       = 3

	MinNodeSize    = 2.0
	MaxNodeSize    = 5.0
	MinEdgeSpeed   = 0.05
	MaxEdgeSpeed   = 0.15
	AnimatedChance = 0.5
	ActiveChance   = 0.5

	BlinkChance = 0.002
	HaloStep    = 0.1
	HaloSpan    = 3.0

	EdgeWidth       = 1.0
	PulseRadius     = 3.0
	EdgeActiveAlpha = 0.5
	EdgeIdleAlpha   = 0.1
	NodeActiveAlpha = 0.8
	NodeIdleAlpha   = 0.3

	DefaultColor = "#3b82f6"
)

type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedMedium Speed = "medium"
	SpeedFast   Speed = "fast"
)

var Speeds = []Speed{SpeedSlow, SpeedMedium, SpeedFast}

// Scale maps a speed name to its scalar. Unknown names map to 0.
func (s Speed) Scale() float64 {
	switch s {
	case SpeedSlow:
		return 0.25
	case SpeedMedium:
		return 0.75
	case SpeedFast:
		return 1.5
	}
	return 0
}

func (s Speed) Next() Speed {
	for i, known := range Speeds {
		if known == s {
			return Speeds[(i+1)%len(Speeds)]
		}
	}
	return SpeedMedium
}

func ParseSpeed(s string) (Speed, error) {
	name := Speed(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Speeds {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", anim.ErrUnknownSpeed, s)
}

type Density string

const (
	DensityLow    Density = "low"
	DensityMedium Density = "medium"
	DensityHigh   Density = "high"
)

var Densities = []Density{DensityLow, DensityMedium, DensityHigh}

// Target is the number of nodes generation aims for. Unknown names target 0.
func (d Density) Target() int {
	switch d {
	case DensityLow:
		return 10
	case DensityMedium:
		return 20
	case DensityHigh:
		return 30
	}
	return 0
}

func (d Density) Next() Density {
	for i, known := range Densities {
		if known == d {
			return Densities[(i+1)%len(Densities)]
		}
	}
	return DensityMedium
}

func ParseDensity(s string) (Density, error) {
	name := Density(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Densities {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", anim.ErrUnknownDensity, s)
}

type Config struct {
	Speed       Speed   `yaml:"speed"`
	Color       string  `yaml:"color"`
	Density     Density `yaml:"density"`
	PulseEffect bool    `yaml:"pulse_effect"`
}

func DefaultConfig() Config {
	return Config{
		Speed:   SpeedMedium,
		Color:   DefaultColor,
		Density: DensityMedium,
	}
}
