package anim

import (
	"reflect"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/backdrop/internal/surface"
)

// Host is the embedding environment: it knows the container box and delivers
// resize and pointer-move events. Add* return a function that removes the
// listener.
type Host interface {
	Bounds() (w, h float64)
	AddResizeListener(fn func(w, h float64)) (remove func())
	AddPointerListener(fn func(x, y float64)) (remove func())
}

// Stage mounts one engine at a time onto a surface. Mounting sizes the
// surface to the host, generates the engine's state, registers listeners and
// starts the frame loop; unmounting undoes all of it synchronously.
type Stage struct {
	host     Host
	surf     surface.Surface
	sched    Scheduler
	engine   Engine
	loop     *Loop
	removers []func()
	frame    int
	last     Stats
	onFrame  []func(Stats)
}

func NewStage(host Host, surf surface.Surface, sched Scheduler) *Stage {
	return &Stage{host: host, surf: surf, sched: sched}
}

// OnFrame registers a callback invoked after every frame.
func (s *Stage) OnFrame(fn func(Stats)) {
	s.onFrame = append(s.onFrame, fn)
}

// Mount attaches e. It reports false, and does nothing, when there is no
// surface to draw on. Any previously mounted engine is unmounted first.
func (s *Stage) Mount(e Engine) bool {
	s.Unmount()
	if missing(s.surf) || s.host == nil || e == nil {
		log.Debug("skipping mount", "reason", ErrNoSurface)
		return false
	}

	w, h := s.host.Bounds()
	s.surf.Resize(w, h)
	e.Resize(w, h)
	s.engine = e
	s.frame = 0

	s.removers = append(s.removers, s.host.AddResizeListener(s.resize))
	if pt, ok := e.(PointerTracker); ok && pt.Interactive() {
		s.removers = append(s.removers, s.host.AddPointerListener(pt.MovePointer))
	}

	s.loop = NewLoop(s.sched, s.step)
	s.loop.Start()
	log.Debug("engine mounted", "width", w, "height", h, "listeners", len(s.removers))
	return true
}

// Unmount cancels the pending frame and removes every listener.
func (s *Stage) Unmount() {
	if s.engine == nil {
		return
	}
	s.loop.Stop()
	for _, remove := range s.removers {
		remove()
	}
	s.removers = nil
	s.engine = nil
	s.loop = nil
}

// Remount re-runs the mount for a configuration change: the old engine is
// torn down and e is generated from scratch.
func (s *Stage) Remount(e Engine) bool {
	return s.Mount(e)
}

func (s *Stage) Pause() {
	if s.loop != nil {
		s.loop.Stop()
	}
}

func (s *Stage) Resume() {
	if s.loop != nil {
		s.loop.Start()
	}
}

func (s *Stage) Mounted() bool { return s.engine != nil }

func (s *Stage) Running() bool { return s.loop != nil && s.loop.Running() }

func (s *Stage) Engine() Engine { return s.engine }

// Last returns the stats of the most recent frame.
func (s *Stage) Last() Stats { return s.last }

func (s *Stage) resize(w, h float64) {
	if s.engine == nil {
		return
	}
	s.surf.Resize(w, h)
	s.engine.Resize(w, h)
	log.Debug("engine regenerated", "width", w, "height", h)
}

func (s *Stage) step(time.Time) {
	st := s.engine.Frame(s.surf)
	s.frame++
	st.Frame = s.frame
	s.last = st
	for _, fn := range s.onFrame {
		fn(st)
	}
}

// missing reports whether surf is nil, including a nil pointer held in the
// interface.
func missing(surf surface.Surface) bool {
	if surf == nil {
		return true
	}
	v := reflect.ValueOf(surf)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
