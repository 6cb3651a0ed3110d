package anim

import "errors"

// Domain errors for engine construction and mounting.
var (
	// ErrUnknownEngine indicates an engine name with no registered constructor.
	ErrUnknownEngine = errors.New("anim: unknown engine")

	// ErrUnknownDensity indicates a circuit density name outside low/medium/high.
	ErrUnknownDensity = errors.New("anim: unknown density")

	// ErrUnknownSpeed indicates a circuit animation speed outside slow/medium/fast.
	ErrUnknownSpeed = errors.New("anim: unknown animation speed")

	// ErrNoSurface indicates a mount was attempted without a drawing surface.
	ErrNoSurface = errors.New("anim: drawing surface not available")
)
