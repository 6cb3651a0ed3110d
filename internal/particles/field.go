// Package particles implements the particle field background: a fixed set of
// drifting dots bouncing inside the surface, linked by fading lines when close
// and pushed away from the pointer.
package particles

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/rng"
	"github.com/san-kum/backdrop/internal/surface"
	"github.com/san-kum/backdrop/internal/theme"
)

type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Size    float64
	Color   string
	Opacity float64
}

// Field owns the particle set of one mounted instance.
type Field struct {
	cfg           Config
	theme         theme.Theme
	src           rng.Source
	width, height float64
	particles     []*Particle
	pointer       r2.Vec
	hasPointer    bool
}

func New(cfg Config, th theme.Theme, src rng.Source) *Field {
	return &Field{cfg: cfg, theme: th, src: src}
}

func (f *Field) Theme() theme.Theme     { return f.theme }
func (f *Field) Interactive() bool      { return f.cfg.Interactive }
func (f *Field) Particles() []*Particle { return f.particles }

// Bounds returns the surface size the field was last generated for.
func (f *Field) Bounds() (float64, float64) { return f.width, f.height }

// Pointer returns the last pointer position and whether one was ever seen.
func (f *Field) Pointer() (r2.Vec, bool) { return f.pointer, f.hasPointer }

// Resize regenerates the whole set for the new bounds.
func (f *Field) Resize(w, h float64) {
	f.Init(w, h)
}

// Init discards the current particles and draws Count new ones.
func (f *Field) Init(w, h float64) {
	f.width, f.height = w, h
	palette := theme.Palette(f.cfg.Scheme, f.theme)

	ps := make([]*Particle, 0, max(f.cfg.Count, 0))
	for i := 0; i < f.cfg.Count; i++ {
		p := &Particle{}
		p.Pos = r2.Vec{X: f.src.Float64() * w, Y: f.src.Float64() * h}
		p.Size = rng.Between(f.src, f.cfg.Size.Min, f.cfg.Size.Max)
		p.Vel = r2.Vec{X: f.initialSpeed(), Y: f.initialSpeed()}
		p.Color = palette[f.src.Intn(len(palette))]
		p.Opacity = rng.Between(f.src, MinOpacity, MaxOpacity)
		ps = append(ps, p)
	}
	f.particles = ps
}

// initialSpeed keeps the asymmetric spread of the reference motion: centred
// on Min, not on zero.
func (f *Field) initialSpeed() float64 {
	return (f.src.Float64()-0.5)*(f.cfg.Speed.Max-f.cfg.Speed.Min) + f.cfg.Speed.Min
}

// MovePointer records the raw pointer position for the next frame.
func (f *Field) MovePointer(x, y float64) {
	f.pointer = r2.Vec{X: x, Y: y}
	f.hasPointer = true
}

// Frame advances every particle and draws the field. Links are drawn from
// each particle to later ones in the same pass, so a link may join an
// already-moved particle with one that has not moved yet this frame.
func (f *Field) Frame(s surface.Surface) anim.Stats {
	s.Clear()
	pointer, hasPointer := f.pointer, f.hasPointer

	links := 0
	for i, p := range f.particles {
		f.move(p)
		if f.cfg.Interactive && hasPointer {
			repel(p, pointer)
		}

		s.FillCircle(p.Pos, p.Size, p.Color, p.Opacity)

		if !f.cfg.Connect {
			continue
		}
		for _, q := range f.particles[i+1:] {
			d := r2.Norm(r2.Sub(p.Pos, q.Pos))
			if d < LinkDistance {
				s.Line(p.Pos, q.Pos, p.Color, (1-d/LinkDistance)*LinkAlpha, LinkWidth)
				links++
			}
		}
	}

	return anim.Stats{Elements: len(f.particles), Links: links}
}

func (f *Field) move(p *Particle) {
	p.Pos = r2.Add(p.Pos, p.Vel)
	if p.Pos.X < 0 || p.Pos.X > f.width {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > f.height {
		p.Vel.Y = -p.Vel.Y
	}
}

func repel(p *Particle, pointer r2.Vec) {
	away := r2.Sub(p.Pos, pointer)
	d := r2.Norm(away)
	if d >= InteractRadius || d == 0 {
		return
	}
	force := (InteractRadius - d) / InteractRadius
	p.Pos = r2.Add(p.Pos, r2.Scale(force*PushFactor/d, away))
}
