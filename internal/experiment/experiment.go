// Package experiment runs engines headlessly: a fixed-size surface, a
// synthetic frame clock and metrics gathered over a run.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/surface"
)

type Result struct {
	Stats     []anim.Stats
	Metrics   map[string]float64
	FramesRun int
	Resizes   int
	Elapsed   time.Duration
}

// Experiment drives one engine through cfg.Frames frames on a Recorder.
type Experiment struct {
	cfg       *config.Config
	engine    anim.Engine
	metrics   []anim.Metric
	observers []anim.Observer
	recorder  *surface.Recorder
	host      *anim.EventHost
	resizes   map[int][2]float64
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{
		cfg:      cfg,
		recorder: surface.NewRecorder(cfg.Width, cfg.Height),
		host:     anim.NewEventHost(cfg.Width, cfg.Height),
	}
}

func (e *Experiment) Setup(engine anim.Engine, metrics []anim.Metric) error {
	if engine == nil {
		return fmt.Errorf("experiment: nil engine")
	}
	e.engine = engine
	e.metrics = metrics
	return nil
}

func (e *Experiment) AddObserver(o anim.Observer) { e.observers = append(e.observers, o) }

// Recorder returns the surface the engine draws on. After Run it holds the
// commands of the last frame.
func (e *Experiment) Recorder() *surface.Recorder { return e.recorder }

// ResizeAt schedules a host resize before the given frame.
func (e *Experiment) ResizeAt(frame int, w, h float64) {
	if e.resizes == nil {
		e.resizes = make(map[int][2]float64)
	}
	e.resizes[frame] = [2]float64{w, h}
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if e.cfg.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", e.cfg.FPS)
	}

	result := &Result{
		Stats:   make([]anim.Stats, 0, e.cfg.Frames),
		Metrics: make(map[string]float64),
	}
	for _, m := range e.metrics {
		m.Reset()
	}

	ticker := anim.NewTicker()
	stage := anim.NewStage(e.host, e.recorder, ticker)
	stage.OnFrame(func(st anim.Stats) {
		result.Stats = append(result.Stats, st)
		for _, m := range e.metrics {
			m.Observe(st)
		}
		for _, obs := range e.observers {
			obs.OnFrame(e.recorder, st)
		}
	})

	if !stage.Mount(e.engine) {
		return nil, anim.ErrNoSurface
	}
	defer stage.Unmount()

	start := time.Now()
	now := start
	step := time.Second / time.Duration(e.cfg.FPS)
	for i := 0; i < e.cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			result.FramesRun = len(result.Stats)
			result.Elapsed = time.Since(start)
			return result, ctx.Err()
		default:
		}

		if size, ok := e.resizes[i]; ok {
			e.host.Resize(size[0], size[1])
			result.Resizes++
		}
		ticker.Tick(now)
		now = now.Add(step)
	}

	result.FramesRun = len(result.Stats)
	result.Elapsed = time.Since(start)
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	log.Debug("run finished", "engine", e.cfg.Engine, "frames", result.FramesRun, "elapsed", result.Elapsed)
	return result, nil
}
