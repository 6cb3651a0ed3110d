// Package anim provides the lifecycle shared by the background animation
// engines.
//
// An engine is a pure state machine: it is sized with [Engine.Resize] and
// advanced one frame at a time with [Engine.Frame], which issues draw calls
// onto a [surface.Surface]. Everything ambient is wired in from outside:
//
//   - [Scheduler]: the per-frame callback source (requestAnimationFrame analogue)
//   - [Ticker]: a Scheduler driven by explicit Tick calls, used by hosts and tests
//   - [Loop]: the self-rescheduling frame loop with one outstanding handle
//   - [Host]: resize and pointer events of the embedding environment
//   - [Stage]: mount/unmount wiring of host, surface, scheduler and engine
//
// # Example
//
//	ticker := anim.NewTicker()
//	stage := anim.NewStage(host, rec, ticker)
//	stage.Mount(particles.New(cfg, theme.Dark, rng.New(1)))
//	ticker.Tick(time.Now())
//	stage.Unmount()
//
// # Thread Safety
//
// Nothing here is safe for concurrent use. A Stage, its Loop and its engine
// belong to the single goroutine that drives the Scheduler.
package anim
