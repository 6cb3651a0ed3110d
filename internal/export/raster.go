package export

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

const glowRings = 8

// Raster is a Surface backed by an RGBA image. Shapes are filled as polygons
// through an anti-aliasing rasterizer.
type Raster struct {
	w, h       float64
	img        *image.RGBA
	background color.Color
	z          *vector.Rasterizer
}

func NewRaster(w, h float64, background string) *Raster {
	r := &Raster{background: parseColor(background, 1)}
	r.Resize(w, h)
	return r
}

func (r *Raster) Size() (float64, float64) { return r.w, r.h }

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Resize(w, h float64) {
	r.w, r.h = w, h
	iw, ih := int(math.Ceil(math.Max(w, 0))), int(math.Ceil(math.Max(h, 0)))
	r.img = image.NewRGBA(image.Rect(0, 0, iw, ih))
	r.z = vector.NewRasterizer(iw, ih)
	r.Clear()
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

func (r *Raster) FillCircle(center r2.Vec, radius float64, hex string, alpha float64) {
	r.fill(circle(center, radius), parseColor(hex, alpha))
}

func (r *Raster) Line(from, to r2.Vec, hex string, alpha, width float64) {
	d := r2.Sub(to, from)
	length := r2.Norm(d)
	if length == 0 || width <= 0 {
		return
	}
	n := r2.Scale(width/2/length, r2.Vec{X: -d.Y, Y: d.X})
	r.fill([]r2.Vec{
		r2.Add(from, n),
		r2.Add(to, n),
		r2.Sub(to, n),
		r2.Sub(from, n),
	}, parseColor(hex, alpha))
}

// Glow approximates the radial gradient with stacked translucent discs.
func (r *Raster) Glow(center r2.Vec, radius float64, hex string, alpha float64) {
	c := parseColor(hex, alpha/glowRings)
	for i := glowRings; i > 0; i-- {
		r.fill(circle(center, radius*float64(i)/glowRings), c)
	}
}

func (r *Raster) fill(pts []r2.Vec, c color.NRGBA) {
	b := r.img.Bounds()
	if b.Empty() || len(pts) < 3 || c.A == 0 {
		return
	}
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

func circle(center r2.Vec, radius float64) []r2.Vec {
	if radius <= 0 {
		return nil
	}
	segments := min(max(int(radius*4), 12), 64)
	pts := make([]r2.Vec, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = r2.Add(center, r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return pts
}

// parseColor turns a hex colour and an opacity into an NRGBA. Unparseable
// colours come out fully transparent.
func parseColor(hex string, alpha float64) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}
	}
	r, g, b := c.RGB255()
	a := math.Max(0, math.Min(alpha, 1))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))}
}
