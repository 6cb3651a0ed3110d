package circuit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/backdrop/internal/rng"
)

// Generate replaces the graph with a new one for a w×h surface.
//
// Nodes are placed by rejection sampling: random unused grid cells are tried
// one by one, each candidate jittered around the cell centre and kept only if
// it is at least MinSpacing from every placed node. Placement stops at the
// density target or when every cell has been tried.
func (e *Engine) Generate(w, h float64) {
	e.width, e.height = w, h

	cols := int(math.Floor(w / CellSize))
	rows := int(math.Floor(h / CellSize))
	if cols < 0 || rows < 0 {
		cols, rows = 0, 0
	}

	cells := make([]int, cols*rows)
	for i := range cells {
		cells[i] = i
	}

	target := e.cfg.Density.Target()
	nodes := make([]*Node, 0, max(target, 0))
	for len(nodes) < target && len(cells) > 0 {
		k := e.src.Intn(len(cells))
		cell := cells[k]
		cells[k] = cells[len(cells)-1]
		cells = cells[:len(cells)-1]

		center := r2.Vec{
			X: (float64(cell%cols) + 0.5) * CellSize,
			Y: (float64(cell/cols) + 0.5) * CellSize,
		}
		jitter := r2.Vec{
			X: (e.src.Float64()*2 - 1) * JitterFraction * CellSize,
			Y: (e.src.Float64()*2 - 1) * JitterFraction * CellSize,
		}
		pos := r2.Add(center, jitter)
		if !spaced(nodes, pos) {
			continue
		}

		nodes = append(nodes, &Node{
			Pos:    pos,
			Size:   rng.Between(e.src, MinNodeSize, MaxNodeSize),
			Active: rng.Chance(e.src, ActiveChance),
		})
	}

	for i, n := range nodes {
		n.Edges = e.connect(nodes, i)
	}
	e.nodes = nodes
}

func spaced(nodes []*Node, pos r2.Vec) bool {
	for _, n := range nodes {
		if r2.Norm(r2.Sub(n.Pos, pos)) < MinSpacing {
			return false
		}
	}
	return true
}

type candidate struct {
	index int
	dist  float64
}

// connect picks 1..MaxLinks targets for nodes[from] among its nearest,
// mostly axis-aligned neighbours.
func (e *Engine) connect(nodes []*Node, from int) []Edge {
	origin := nodes[from].Pos

	ranked := make([]candidate, 0, len(nodes)-1)
	for i, n := range nodes {
		if i == from {
			continue
		}
		d := r2.Sub(n.Pos, origin)
		ranked = append(ranked, candidate{index: i, dist: math.Abs(d.X) + math.Abs(d.Y)})
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].dist < ranked[b].dist })

	pool := make([]int, 0, len(ranked))
	for _, c := range ranked {
		if aligned(origin, nodes[c.index].Pos) || rng.Chance(e.src, DiagonalChance) {
			pool = append(pool, c.index)
		}
	}
	if len(pool) > MaxCandidates {
		pool = pool[:MaxCandidates]
	}
	if len(pool) == 0 {
		return nil
	}

	count := min(1+e.src.Intn(MaxLinks), len(pool))
	edges := make([]Edge, 0, count)
	for len(edges) < count {
		k := e.src.Intn(len(pool))
		target := pool[k]
		pool = append(pool[:k], pool[k+1:]...)

		edges = append(edges, Edge{
			Target:   target,
			End:      nodes[target].Pos,
			Animated: rng.Chance(e.src, AnimatedChance),
			Speed:    rng.Between(e.src, MinEdgeSpeed, MaxEdgeSpeed),
		})
	}
	return edges
}

func aligned(a, b r2.Vec) bool {
	dx, dy := math.Abs(b.X-a.X), math.Abs(b.Y-a.Y)
	hi := math.Max(dx, dy)
	if hi == 0 {
		return true
	}
	return math.Min(dx, dy)/hi < AxisRatio
}
