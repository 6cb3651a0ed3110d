// Package viz hosts the background engines in a terminal.
//
// The package implements a live TUI using the Bubble Tea framework:
//
//   - [Model]: the program model; it is the engines' host, feeding window
//     resizes and mouse motion to the mounted engine
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//   - [BrailleSurface]: the drawing surface the engines render onto
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Toggle dark/light theme
//	E     - Switch engine
//	C     - Cycle colour scheme (particles) or density (circuit)
//	L/I   - Toggle particle links / pointer repulsion
//	P/S   - Toggle node halos / cycle pulse speed
//	?     - Show help overlay
//
// Every configuration key regenerates the engine from scratch.
package viz
