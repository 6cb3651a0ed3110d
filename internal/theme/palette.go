package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScheme = errors.New("theme: unknown colour scheme")

// Scheme names a particle palette family.
type Scheme string

const (
	Blue       Scheme = "blue"
	Purple     Scheme = "purple"
	Cyan       Scheme = "cyan"
	Multicolor Scheme = "multicolor"
)

// Schemes lists the known schemes in display order.
var Schemes = []Scheme{Blue, Purple, Cyan, Multicolor}

type paletteKey struct {
	scheme Scheme
	theme  Theme
}

var palettes = map[paletteKey][5]string{
	{Blue, Dark}:        {"#3b82f6", "#60a5fa", "#93c5fd", "#2563eb", "#1d4ed8"},
	{Blue, Light}:       {"#1d4ed8", "#2563eb", "#3b82f6", "#1e40af", "#60a5fa"},
	{Purple, Dark}:      {"#a855f7", "#c084fc", "#d8b4fe", "#9333ea", "#7e22ce"},
	{Purple, Light}:     {"#7e22ce", "#9333ea", "#a855f7", "#6b21a8", "#c084fc"},
	{Cyan, Dark}:        {"#06b6d4", "#22d3ee", "#67e8f9", "#0891b2", "#0e7490"},
	{Cyan, Light}:       {"#0e7490", "#0891b2", "#06b6d4", "#155e75", "#22d3ee"},
	{Multicolor, Dark}:  {"#3b82f6", "#a855f7", "#06b6d4", "#ec4899", "#10b981"},
	{Multicolor, Light}: {"#1d4ed8", "#7e22ce", "#0e7490", "#be185d", "#047857"},
}

// Palette resolves the five particle colours for a scheme and theme. Unknown
// combinations fall back to the blue/dark palette.
func Palette(s Scheme, t Theme) [5]string {
	if p, ok := palettes[paletteKey{s, t}]; ok {
		return p
	}
	return palettes[paletteKey{Blue, Dark}]
}

func ParseScheme(s string) (Scheme, error) {
	name := Scheme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Schemes {
		if name == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}

// Next cycles to the following scheme.
func (s Scheme) Next() Scheme {
	for i, known := range Schemes {
		if known == s {
			return Schemes[(i+1)%len(Schemes)]
		}
	}
	return Blue
}
