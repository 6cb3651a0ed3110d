package anim

import "github.com/san-kum/backdrop/internal/surface"

// Engine is a procedural animation bound to one drawing surface.
type Engine interface {
	// Resize discards all state and regenerates it for a w×h surface.
	Resize(w, h float64)
	// Frame runs one update+draw cycle.
	Frame(s surface.Surface) Stats
}

// PointerTracker is implemented by engines that react to the pointer.
type PointerTracker interface {
	Interactive() bool
	MovePointer(x, y float64)
}

// Stats summarises one frame.
type Stats struct {
	Frame    int `csv:"frame" json:"frame"`
	Elements int `csv:"elements" json:"elements"`
	Links    int `csv:"links" json:"links"`
	Active   int `csv:"active" json:"active"`
	Pulses   int `csv:"pulses" json:"pulses"`
}

// Metric accumulates a scalar over a run of frames.
type Metric interface {
	Name() string
	Observe(s Stats)
	Value() float64
	Reset()
}

// Observer is notified after every frame with the surface it was drawn on.
type Observer interface {
	OnFrame(s surface.Surface, st Stats)
}
