package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/experiment"
	"github.com/san-kum/backdrop/internal/rng"
)

const (
	width           = 80
	height          = 24
	panelWidth      = 36
	canvasPadX      = 2
	canvasPadY      = 1
	historyCapacity = 120
	DefaultScale    = 4.0
)

var canvasStyle = lipgloss.NewStyle().Padding(canvasPadY, canvasPadX)

type TickMsg time.Time

// Model hosts one engine in the terminal. The canvas fills the window left of
// the stats panel and is regenerated whenever the window is resized.
type Model struct {
	reg           *experiment.Registry
	cfg           *config.Config
	src           rng.Source
	scale         float64
	ticker        *anim.Ticker
	host          *anim.EventHost
	surf          *BrailleSurface
	stage         *anim.Stage
	theme         Theme
	styles        styles
	width, height int
	links         []float64
	pulses        []float64
	showHelp      bool
}

// NewModel mounts the engine named by cfg.Engine on an 80x24 terminal.
// scale is the number of engine pixels per braille dot.
func NewModel(reg *experiment.Registry, cfg *config.Config, src rng.Source, scale float64) (*Model, error) {
	m := &Model{
		reg:    reg,
		cfg:    cfg,
		src:    src,
		scale:  scale,
		ticker: anim.NewTicker(),
		width:  width,
		height: height,
	}

	cols, rows := m.canvasSize()
	m.surf = NewBrailleSurface(cols, rows, scale, cfg.Theme.Background())
	m.host = anim.NewEventHost(m.surf.Size())
	m.stage = anim.NewStage(m.host, m.surf, m.ticker)
	m.stage.OnFrame(m.record)

	if err := m.remount(); err != nil {
		return nil, err
	}
	return m, nil
}

// Run starts the terminal program and blocks until the user quits.
func Run(reg *experiment.Registry, cfg *config.Config, src rng.Source, scale float64) error {
	m, err := NewModel(reg, cfg, src, scale)
	if err != nil {
		return err
	}
	defer m.stage.Unmount()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (m *Model) Stage() *anim.Stage     { return m.stage }
func (m *Model) Config() *config.Config { return m.cfg }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	fps := max(m.cfg.FPS, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the frame clock.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols, rows := m.canvasSize()
		m.host.Resize(float64(cols*2)*m.scale, float64(rows*4)*m.scale)
	case tea.MouseMsg:
		x := (float64((msg.X-canvasPadX)*2) + 1) * m.scale
		y := (float64((msg.Y-canvasPadY)*4) + 2) * m.scale
		m.host.MovePointer(x, y)
	case TickMsg:
		m.ticker.Tick(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	reconfigure := true
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case " ", "space":
		if m.stage.Running() {
			m.stage.Pause()
		} else {
			m.stage.Resume()
		}
		reconfigure = false
	case "?":
		m.showHelp = !m.showHelp
		reconfigure = false
	case "t":
		m.cfg.Theme = m.cfg.Theme.Toggle()
	case "e":
		engines := m.reg.ListEngines()
		for i, name := range engines {
			if name == m.cfg.Engine {
				m.cfg.Engine = engines[(i+1)%len(engines)]
				break
			}
		}
	case "c":
		if m.cfg.Engine == "circuit" {
			m.cfg.Circuit.Density = m.cfg.Circuit.Density.Next()
		} else {
			m.cfg.Particles.Scheme = m.cfg.Particles.Scheme.Next()
		}
	case "l":
		m.cfg.Particles.Connect = !m.cfg.Particles.Connect
	case "i":
		m.cfg.Particles.Interactive = !m.cfg.Particles.Interactive
	case "p":
		m.cfg.Circuit.PulseEffect = !m.cfg.Circuit.PulseEffect
	case "s":
		m.cfg.Circuit.Speed = m.cfg.Circuit.Speed.Next()
	default:
		reconfigure = false
	}

	if reconfigure {
		if err := m.remount(); err != nil {
			log.Error("remount failed", "err", err)
		}
	}
	return nil
}

// remount rebuilds the engine from the current configuration.
func (m *Model) remount() error {
	engine, err := m.reg.GetEngine(m.cfg.Engine, m.cfg, m.src)
	if err != nil {
		return err
	}

	paused := m.stage.Mounted() && !m.stage.Running()
	m.theme = ThemeFor(m.cfg.Theme)
	m.styles = newStyles(m.theme)
	m.surf.SetBackground(m.cfg.Theme.Background())
	m.links, m.pulses = m.links[:0], m.pulses[:0]

	m.stage.Remount(engine)
	if paused {
		m.stage.Pause()
	}
	log.Debug("engine remounted", "engine", m.cfg.Engine, "theme", m.cfg.Theme, "listeners", m.host.Listeners())
	return nil
}

func (m *Model) record(st anim.Stats) {
	m.links = appendCapped(m.links, float64(st.Links))
	m.pulses = appendCapped(m.pulses, float64(st.Pulses))
}

func appendCapped(values []float64, v float64) []float64 {
	values = append(values, v)
	if len(values) > historyCapacity {
		values = values[1:]
	}
	return values
}

func (m *Model) canvasSize() (int, int) {
	cols := m.width - panelWidth - 2*canvasPadX
	rows := m.height - 2*canvasPadY
	return max(cols, 0), max(rows, 0)
}

// View renders the canvas next to the stats panel.
func (m *Model) View() string {
	canvasView := canvasStyle.Render(m.surf.Canvas().Render(m.cfg.Theme.Background()))

	var s strings.Builder
	s.WriteString(m.styles.header.Render(GradientText(strings.ToUpper(m.cfg.Engine), string(m.theme.Primary), string(m.theme.Accent))) + "\n")

	st := m.stage.Last()
	if m.stage.Running() {
		s.WriteString(m.styles.running.Render(AnimatedSpinner(st.Frame)+" RUNNING") + "\n\n")
	} else {
		s.WriteString(m.styles.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.links) > 1 {
		chart := asciigraph.Plot(m.links, asciigraph.Height(4), asciigraph.Width(panelWidth-14), asciigraph.Caption("Links"))
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(m.styles.label.Render(label) + m.styles.value.Render(value) + "\n")
	}
	w, h := m.surf.Size()
	row("Frame", fmt.Sprintf("%d", st.Frame))
	row("Size", fmt.Sprintf("%.0f×%.0f", w, h))
	row("Theme", string(m.cfg.Theme))

	switch m.cfg.Engine {
	case "circuit":
		row("Nodes", fmt.Sprintf("%d", st.Elements))
		row("Edges", fmt.Sprintf("%d", st.Links))
		row("Active", fmt.Sprintf("%d", st.Active))
		row("Density", string(m.cfg.Circuit.Density))
		row("Speed", string(m.cfg.Circuit.Speed))
		row("Halo", onOff(m.cfg.Circuit.PulseEffect))
		s.WriteString("\n" + m.styles.sparkline(m.pulses, panelWidth-6) + "\n")
	default:
		row("Particles", fmt.Sprintf("%d", st.Elements))
		row("Links", fmt.Sprintf("%d", st.Links))
		row("Scheme", string(m.cfg.Particles.Scheme))
		row("Connect", onOff(m.cfg.Particles.Connect))
		row("Pointer", onOff(m.cfg.Particles.Interactive))
	}

	s.WriteString(m.styles.help.Render("SP:Pause T:Theme E:Engine\nC:Cycle ?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space  - Pause/Resume               ║
║  T      - Toggle dark/light theme    ║
║  E      - Switch engine              ║
║  C      - Cycle scheme / density     ║
║  L      - Toggle particle links      ║
║  I      - Toggle pointer repulsion   ║
║  P      - Toggle node halos          ║
║  S      - Cycle pulse speed          ║
║  Q      - Quit                       ║
║  ?      - Toggle this help           ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
