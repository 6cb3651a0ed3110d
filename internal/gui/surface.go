package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// windowSurface draws straight into the current raylib frame. It must only be
// used between BeginDrawing and EndDrawing.
type windowSurface struct {
	w, h       float64
	background rl.Color
}

func (s *windowSurface) Size() (float64, float64) { return s.w, s.h }
func (s *windowSurface) Resize(w, h float64)      { s.w, s.h = w, h }
func (s *windowSurface) Clear()                   { rl.ClearBackground(s.background) }

func (s *windowSurface) FillCircle(center r2.Vec, radius float64, hex string, alpha float64) {
	rl.DrawCircleV(vec(center), float32(radius), toColor(hex, alpha))
}

func (s *windowSurface) Line(from, to r2.Vec, hex string, alpha, width float64) {
	rl.DrawLineEx(vec(from), vec(to), float32(width), toColor(hex, alpha))
}

func (s *windowSurface) Glow(center r2.Vec, radius float64, hex string, alpha float64) {
	inner := toColor(hex, alpha)
	outer := inner
	outer.A = 0
	rl.DrawCircleGradient(int32(center.X), int32(center.Y), float32(radius), inner, outer)
}

func vec(p r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// toColor converts a hex colour and opacity. Unparseable colours are drawn
// fully transparent.
func toColor(hex string, alpha float64) rl.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return rl.NewColor(0, 0, 0, 0)
	}
	r, g, b := c.RGB255()
	a := math.Max(0, math.Min(alpha, 1))
	return rl.NewColor(r, g, b, uint8(math.Round(a*255)))
}
