// Package gui hosts the background engines in a resizable raylib window.
package gui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/experiment"
	"github.com/san-kum/backdrop/internal/rng"
	"github.com/san-kum/backdrop/internal/surface"
)

type App struct {
	reg    *experiment.Registry
	cfg    *config.Config
	src    rng.Source
	ticker *anim.Ticker
	host   *anim.EventHost
	frame  *surface.Recorder
	screen *windowSurface
	stage  *anim.Stage
	hud    bool
}

func initWindow(w, h int32) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, "backdrop")
}

// NewApp mounts the engine named by cfg.Engine on the open window.
func NewApp(reg *experiment.Registry, cfg *config.Config, src rng.Source) (*App, error) {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	app := &App{
		reg:    reg,
		cfg:    cfg,
		src:    src,
		ticker: anim.NewTicker(),
		host:   anim.NewEventHost(w, h),
		frame:  surface.NewRecorder(w, h),
		screen: &windowSurface{w: w, h: h},
		hud:    true,
	}
	// Engines draw into a recorder; the window replays it every frame so a
	// paused engine keeps its last picture.
	app.stage = anim.NewStage(app.host, app.frame, app.ticker)

	if err := app.remount(); err != nil {
		return nil, err
	}
	return app, nil
}

// Run opens a window and blocks until it is closed.
func Run(reg *experiment.Registry, cfg *config.Config, src rng.Source) error {
	initWindow(int32(cfg.Width), int32(cfg.Height))
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	app, err := NewApp(reg, cfg, src)
	if err != nil {
		return err
	}
	defer app.stage.Unmount()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) remount() error {
	engine, err := a.reg.GetEngine(a.cfg.Engine, a.cfg, a.src)
	if err != nil {
		return err
	}
	a.screen.background = toColor(a.cfg.Theme.Background(), 1)
	a.stage.Remount(engine)
	log.Debug("engine remounted", "engine", a.cfg.Engine, "theme", a.cfg.Theme)
	return nil
}

// Update feeds window events to the host and applies key bindings.
func (a *App) Update() {
	if rl.IsWindowResized() {
		w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
		a.screen.Resize(w, h)
		a.host.Resize(w, h)
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		p := rl.GetMousePosition()
		a.host.MovePointer(float64(p.X), float64(p.Y))
	}

	reconfigure := true
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		if a.stage.Running() {
			a.stage.Pause()
		} else {
			a.stage.Resume()
		}
		reconfigure = false
	case rl.IsKeyPressed(rl.KeyH):
		a.hud = !a.hud
		reconfigure = false
	case rl.IsKeyPressed(rl.KeyT):
		a.cfg.Theme = a.cfg.Theme.Toggle()
	case rl.IsKeyPressed(rl.KeyE):
		engines := a.reg.ListEngines()
		for i, name := range engines {
			if name == a.cfg.Engine {
				a.cfg.Engine = engines[(i+1)%len(engines)]
				break
			}
		}
	case rl.IsKeyPressed(rl.KeyC):
		if a.cfg.Engine == "circuit" {
			a.cfg.Circuit.Density = a.cfg.Circuit.Density.Next()
		} else {
			a.cfg.Particles.Scheme = a.cfg.Particles.Scheme.Next()
		}
	case rl.IsKeyPressed(rl.KeyL):
		a.cfg.Particles.Connect = !a.cfg.Particles.Connect
	case rl.IsKeyPressed(rl.KeyI):
		a.cfg.Particles.Interactive = !a.cfg.Particles.Interactive
	case rl.IsKeyPressed(rl.KeyP):
		a.cfg.Circuit.PulseEffect = !a.cfg.Circuit.PulseEffect
	case rl.IsKeyPressed(rl.KeyS):
		a.cfg.Circuit.Speed = a.cfg.Circuit.Speed.Next()
	default:
		reconfigure = false
	}

	if reconfigure {
		if err := a.remount(); err != nil {
			log.Error("remount failed", "err", err)
		}
	}
}

func (a *App) Draw() {
	a.ticker.Tick(time.Now())

	rl.BeginDrawing()
	a.frame.Replay(a.screen)
	if a.hud {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	fg := toColor(a.cfg.Theme.Foreground(), 0.9)
	dim := toColor(a.cfg.Theme.Secondary(), 0.9)

	st := a.stage.Last()
	rl.DrawText("backdrop", 20, 20, 20, fg)
	rl.DrawText(fmt.Sprintf(":: %s  frame %d  elements %d  links %d", a.cfg.Engine, st.Frame, st.Elements, st.Links), 130, 24, 14, dim)

	status := "RUNNING"
	if !a.stage.Running() {
		status = "PAUSED"
	}
	rl.DrawText(status, int32(a.screen.w)-100, 20, 16, fg)

	h := int32(a.screen.h)
	rl.DrawText("[SPACE] PAUSE  [T] THEME  [E] ENGINE  [C] CYCLE  [H] HUD  [ESC] QUIT", 20, h-30, 14, dim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, h-50, 14, dim)
}
