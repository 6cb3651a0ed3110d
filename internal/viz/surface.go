package viz

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// minAlpha is the faintest alpha that still sets a dot. Below it a draw is
// dropped; a terminal cannot show a dot fainter than its blended colour.
const minAlpha = 0.05

// BrailleSurface maps pixel coordinates onto a braille Canvas. Scale is the
// number of pixels per braille dot. Alpha is blended against the background
// colour since a cell has no transparency.
type BrailleSurface struct {
	canvas     *Canvas
	scale      float64
	w, h       float64
	background colorful.Color
}

func NewBrailleSurface(cols, rows int, scale float64, background string) *BrailleSurface {
	if scale <= 0 {
		scale = 1
	}
	s := &BrailleSurface{scale: scale}
	s.SetBackground(background)
	s.Resize(float64(cols*2)*scale, float64(rows*4)*scale)
	return s
}

func (s *BrailleSurface) Canvas() *Canvas { return s.canvas }

func (s *BrailleSurface) Size() (float64, float64) { return s.w, s.h }

// Resize reallocates the canvas to cover w×h pixels.
func (s *BrailleSurface) Resize(w, h float64) {
	s.w, s.h = w, h
	cols := int(math.Ceil(math.Max(w, 0) / s.scale / 2))
	rows := int(math.Ceil(math.Max(h, 0) / s.scale / 4))
	s.canvas = NewCanvas(cols, rows)
}

func (s *BrailleSurface) SetBackground(hex string) {
	bg, err := colorful.Hex(hex)
	if err != nil {
		bg = colorful.Color{}
	}
	s.background = bg
}

func (s *BrailleSurface) Clear() { s.canvas.Clear() }

func (s *BrailleSurface) FillCircle(center r2.Vec, radius float64, color string, alpha float64) {
	if alpha < minAlpha {
		return
	}
	x, y := s.dot(center)
	s.canvas.FillCircle(x, y, int(radius/s.scale), s.blend(color, alpha))
}

func (s *BrailleSurface) Line(from, to r2.Vec, color string, alpha, width float64) {
	if alpha < minAlpha {
		return
	}
	x0, y0 := s.dot(from)
	x1, y1 := s.dot(to)
	s.canvas.DrawLine(x0, y0, x1, y1, s.blend(color, alpha))
}

// Glow draws a ring at the glow's edge plus its centre dot.
func (s *BrailleSurface) Glow(center r2.Vec, radius float64, color string, alpha float64) {
	if alpha < minAlpha {
		return
	}
	x, y := s.dot(center)
	c := s.blend(color, alpha)
	s.canvas.DrawRing(x, y, int(math.Round(radius/s.scale)), s.blend(color, alpha/2))
	s.canvas.Set(x, y, c)
}

func (s *BrailleSurface) dot(p r2.Vec) (int, int) {
	return int(math.Floor(p.X / s.scale)), int(math.Floor(p.Y / s.scale))
}

// blend mixes color over the background at alpha and returns a hex colour.
func (s *BrailleSurface) blend(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	return s.background.BlendRgb(c, math.Min(alpha, 1)).Clamped().Hex()
}
