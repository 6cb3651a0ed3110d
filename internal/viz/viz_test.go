package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/experiment"
	"github.com/san-kum/backdrop/internal/particles"
	"github.com/san-kum/backdrop/internal/rng"
	"github.com/san-kum/backdrop/internal/theme"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0, "#ffffff")
	c.Set(3, 3, "#000000")
	c.Set(-1, 0, "#ffffff")
	c.Set(4, 0, "#ffffff")

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %#x", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected 0x2880, got %#x", c.Grid[0][1])
	}
	if c.Colors[0][1] != "#000000" {
		t.Errorf("expected cell colour #000000, got %q", c.Colors[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(2, 3) {
		t.Error("unexpected IsSet result")
	}

	c.Clear()
	if c.String() != "⠀⠀\n" {
		t.Errorf("expected blank canvas, got %q", c.String())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, "")

	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Errorf("expected dot at %d", x)
		}
	}
}

func TestCanvasRing(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawRing(10, 10, 4, "")

	for _, p := range [][2]int{{14, 10}, {6, 10}, {10, 14}, {10, 6}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected ring dot at %v", p)
		}
	}
	if c.IsSet(10, 10) {
		t.Error("expected hollow ring")
	}
}

func TestCanvasRenderKeepsText(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0, "#ff0000")
	c.Set(5, 7, "#00ff00")

	out := c.Render("")
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.ContainsRune(out, 0x2801) {
		t.Error("expected first dot in output")
	}
}

func TestBrailleSurfaceGeometry(t *testing.T) {
	g := NewWithT(t)

	s := NewBrailleSurface(10, 5, 4, "#0b1120")
	w, h := s.Size()
	g.Expect(w).To(Equal(80.0))
	g.Expect(h).To(Equal(80.0))

	s.FillCircle(r2.Vec{X: 8, Y: 8}, 0, "#ffffff", 1)
	g.Expect(s.Canvas().IsSet(2, 2)).To(BeTrue())

	s.Line(r2.Vec{X: 0, Y: 40}, r2.Vec{X: 79, Y: 40}, "#ffffff", 0.01, 1)
	g.Expect(s.Canvas().IsSet(0, 10)).To(BeFalse())

	s.Resize(160, 40)
	g.Expect(s.Canvas().Width).To(Equal(20))
	g.Expect(s.Canvas().Height).To(Equal(3))
}

func TestBrailleSurfaceBlendsAlpha(t *testing.T) {
	s := NewBrailleSurface(2, 1, 1, "#000000")

	if got := s.blend("#ffffff", 1); got != "#ffffff" {
		t.Errorf("expected #ffffff, got %s", got)
	}
	if got := s.blend("#ffffff", 0); got != "#000000" {
		t.Errorf("expected #000000, got %s", got)
	}
	if got := s.blend("bogus", 1); got != "" {
		t.Errorf("expected no colour, got %s", got)
	}
}

func newTestModel(t *testing.T, engine string) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Engine = engine
	m, err := NewModel(experiment.NewRegistry(), cfg, rng.New(1), DefaultScale)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func TestModelTicksEngine(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, "particles")

	now := time.Now()
	for i := 0; i < 3; i++ {
		_, cmd := m.Update(TickMsg(now.Add(time.Duration(i) * time.Millisecond)))
		g.Expect(cmd).NotTo(BeNil())
	}
	g.Expect(m.Stage().Last().Frame).To(Equal(3))
	g.Expect(m.Stage().Last().Elements).To(Equal(80))
	g.Expect(m.View()).To(ContainSubstring("PARTICLES"))
}

func TestModelPauseResume(t *testing.T) {
	m := newTestModel(t, "particles")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	if m.Stage().Running() {
		t.Fatal("expected paused stage")
	}
	m.Update(TickMsg(time.Now()))
	if m.Stage().Last().Frame != 0 {
		t.Errorf("expected no frames while paused, got %d", m.Stage().Last().Frame)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m.Update(TickMsg(time.Now()))
	if m.Stage().Last().Frame != 1 {
		t.Errorf("expected one frame after resume, got %d", m.Stage().Last().Frame)
	}
}

func TestModelResizeRegenerates(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, "particles")
	before := m.Stage().Engine().(*particles.Field).Particles()

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	f := m.Stage().Engine().(*particles.Field)
	w, h := f.Bounds()
	g.Expect(w).To(Equal(float64((120-panelWidth-2*canvasPadX)*2) * DefaultScale))
	g.Expect(h).To(Equal(float64((40-2*canvasPadY)*4) * DefaultScale))
	g.Expect(f.Particles()[0] == before[0]).To(BeFalse())
}

func TestModelKeysReconfigure(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, "particles")
	key := func(r rune) { m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}) }

	key('t')
	g.Expect(m.Config().Theme).To(Equal(theme.Light))
	g.Expect(m.Stage().Engine().(*particles.Field).Theme()).To(Equal(theme.Light))

	key('c')
	g.Expect(m.Config().Particles.Scheme).To(Equal(theme.Purple))

	key('i')
	g.Expect(m.Stage().Engine().(*particles.Field).Interactive()).To(BeFalse())
	g.Expect(m.host.PointerListeners()).To(BeZero())

	key('e')
	g.Expect(m.Config().Engine).To(Equal("circuit"))
	c, ok := m.Stage().Engine().(*circuit.Engine)
	g.Expect(ok).To(BeTrue())

	key('p')
	g.Expect(m.Config().Circuit.PulseEffect).To(BeTrue())
	key('s')
	g.Expect(m.Config().Circuit.Speed).To(Equal(circuit.SpeedFast))
	g.Expect(m.Stage().Engine()).NotTo(BeIdenticalTo(c))
	g.Expect(m.host.Listeners()).To(Equal(1))
}

func TestModelMouseMovesPointer(t *testing.T) {
	m := newTestModel(t, "particles")
	f := m.Stage().Engine().(*particles.Field)

	if m.host.Listeners() != 2 {
		t.Fatalf("expected resize and pointer listeners, got %d", m.host.Listeners())
	}
	m.Update(tea.MouseMsg{X: canvasPadX, Y: canvasPadY})

	p, ok := f.Pointer()
	if !ok {
		t.Fatal("expected pointer position")
	}
	if p.X != DefaultScale || p.Y != 2*DefaultScale {
		t.Errorf("expected pointer at (%v, %v), got %v", DefaultScale, 2*DefaultScale, p)
	}
}
