// Package surface defines the 2D drawing surface the engines render into and
// a recorder that captures a frame as plain draw commands.
package surface

import "gonum.org/v1/gonum/spatial/r2"

// Surface is a resizable 2D pixel canvas. Colours are hex strings; alpha is
// applied on top of the colour.
type Surface interface {
	Size() (w, h float64)
	Resize(w, h float64)
	Clear()
	FillCircle(center r2.Vec, radius float64, color string, alpha float64)
	Line(from, to r2.Vec, color string, alpha, width float64)
	// Glow paints a radial gradient from color at alpha in the centre to
	// fully transparent at radius.
	Glow(center r2.Vec, radius float64, color string, alpha float64)
}

type Kind int

const (
	KindClear Kind = iota
	KindCircle
	KindLine
	KindGlow
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindGlow:
		return "glow"
	}
	return "unknown"
}

// Command is one recorded draw call. From is the centre for circles and glows.
type Command struct {
	Kind   Kind
	From   r2.Vec
	To     r2.Vec
	Radius float64
	Width  float64
	Color  string
	Alpha  float64
}

// Apply replays the command onto dst.
func (c Command) Apply(dst Surface) {
	switch c.Kind {
	case KindClear:
		dst.Clear()
	case KindCircle:
		dst.FillCircle(c.From, c.Radius, c.Color, c.Alpha)
	case KindLine:
		dst.Line(c.From, c.To, c.Color, c.Alpha, c.Width)
	case KindGlow:
		dst.Glow(c.From, c.Radius, c.Color, c.Alpha)
	}
}
