// Package circuit implements the circuit-board background: a sparse graph of
// nodes on a jittered grid, with signal pulses travelling along some edges and
// nodes that blink on and off at random.
package circuit

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/rng"
	"github.com/san-kum/backdrop/internal/surface"
	"github.com/san-kum/backdrop/internal/theme"
)

// Edge is an outgoing connection. End is the target position copied at
// generation time; Target is the target's index in the node list.
type Edge struct {
	Target   int
	End      r2.Vec
	Animated bool
	Progress float64
	Speed    float64
}

type Node struct {
	Pos          r2.Vec
	Size         float64
	Active       bool
	PulseSize    float64
	PulseOpacity float64
	Edges        []Edge
}

type Engine struct {
	cfg           Config
	theme         theme.Theme
	src           rng.Source
	width, height float64
	nodes         []*Node
}

func New(cfg Config, th theme.Theme, src rng.Source) *Engine {
	return &Engine{cfg: cfg, theme: th, src: src}
}

func (e *Engine) Nodes() []*Node { return e.nodes }

// SpeedScale is the scalar for the configured animation speed. The frame
// routine does not apply it; edge pulses always move at their own speed.
func (e *Engine) SpeedScale() float64 { return e.cfg.Speed.Scale() }

func (e *Engine) Bounds() (float64, float64) { return e.width, e.height }

// Resize regenerates the graph for the new bounds.
func (e *Engine) Resize(w, h float64) {
	e.Generate(w, h)
}

// Frame advances pulses, blinks nodes and draws the circuit.
func (e *Engine) Frame(s surface.Surface) anim.Stats {
	s.Clear()
	accent, idle := e.cfg.Color, e.theme.Secondary()

	for _, n := range e.nodes {
		for i := range n.Edges {
			ed := &n.Edges[i]
			if ed.Animated {
				ed.Progress = math.Mod(ed.Progress+ed.Speed, 1)
			}
		}
	}

	st := anim.Stats{Elements: len(e.nodes)}
	for _, n := range e.nodes {
		for _, ed := range n.Edges {
			active := n.Active || e.nodes[ed.Target].Active
			if active {
				s.Line(n.Pos, ed.End, accent, EdgeActiveAlpha, EdgeWidth)
			} else {
				s.Line(n.Pos, ed.End, idle, EdgeIdleAlpha, EdgeWidth)
			}
			st.Links++

			if ed.Animated && active {
				at := r2.Add(n.Pos, r2.Scale(ed.Progress, r2.Sub(ed.End, n.Pos)))
				s.Glow(at, PulseRadius, accent, 1)
				st.Pulses++
			}
		}
	}

	for _, n := range e.nodes {
		if rng.Chance(e.src, BlinkChance) {
			n.Active = !n.Active
		}
		e.updateHalo(n)

		if n.PulseSize > 0 {
			s.Glow(n.Pos, n.PulseSize, accent, n.PulseOpacity)
		}
		if n.Active {
			s.FillCircle(n.Pos, n.Size, accent, NodeActiveAlpha)
			st.Active++
		} else {
			s.FillCircle(n.Pos, n.Size, idle, NodeIdleAlpha)
		}
	}

	return st
}

// updateHalo grows the halo of an active node up to HaloSpan times its size,
// then restarts it from zero.
func (e *Engine) updateHalo(n *Node) {
	if !e.cfg.PulseEffect || !n.Active {
		n.PulseSize, n.PulseOpacity = 0, 0
		return
	}
	limit := n.Size * HaloSpan
	if n.PulseSize >= limit {
		n.PulseSize = 0
	} else {
		n.PulseSize = math.Min(n.PulseSize+HaloStep, limit)
	}
	n.PulseOpacity = 1 - n.PulseSize/limit
}
