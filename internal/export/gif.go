package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/surface"
)

var ErrNoFrames = errors.New("export: no frames captured")

// GIFRecorder captures every Every-th frame of a run into an animated GIF.
// It only understands frames drawn on a *surface.Recorder.
type GIFRecorder struct {
	Every int
	Scale float64
	Delay int // hundredths of a second between captured frames

	raster *Raster
	frames []*image.Paletted
	seen   int
}

func NewGIFRecorder(background string, every int, scale float64, fps int) *GIFRecorder {
	every = max(every, 1)
	delay := 2
	if fps > 0 {
		delay = max(int(math.Round(100*float64(every)/float64(fps))), 1)
	}
	return &GIFRecorder{
		Every:  every,
		Scale:  scale,
		Delay:  delay,
		raster: NewRaster(0, 0, background),
	}
}

func (g *GIFRecorder) OnFrame(s surface.Surface, st anim.Stats) {
	g.seen++
	if (g.seen-1)%g.Every != 0 {
		return
	}
	rec, ok := s.(*surface.Recorder)
	if !ok {
		return
	}

	w, h := rec.Size()
	if rw, rh := g.raster.Size(); rw != w || rh != h {
		g.raster.Resize(w, h)
	}
	rec.Replay(g.raster)
	g.frames = append(g.frames, g.captureFrame())
}

func (g *GIFRecorder) captureFrame() *image.Paletted {
	src := g.raster.Image()
	bounds := src.Bounds()
	if g.Scale > 0 && g.Scale != 1 {
		scaled := image.NewRGBA(image.Rect(0, 0,
			int(math.Ceil(float64(bounds.Dx())*g.Scale)),
			int(math.Ceil(float64(bounds.Dy())*g.Scale))))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, draw.Src, nil)
		src, bounds = scaled, scaled.Bounds()
	}

	img := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(img, bounds, src, image.Point{})
	return img
}

func (g *GIFRecorder) Frames() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return ErrNoFrames
	}
	out := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, g.Delay)
	}
	return gif.EncodeAll(w, &out)
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.Encode(f)
}
