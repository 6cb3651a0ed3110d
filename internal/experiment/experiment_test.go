package experiment

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/rng"
	"github.com/san-kum/backdrop/internal/surface"
)

type countingObserver struct {
	frames   int
	commands int
}

func (c *countingObserver) OnFrame(s surface.Surface, st anim.Stats) {
	c.frames++
	if rec, ok := s.(*surface.Recorder); ok {
		c.commands = len(rec.Commands())
	}
}

func setup(t *testing.T, engine string, frames int) (*Experiment, *config.Config) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Engine = engine
	cfg.Frames = frames
	cfg.Seed = 3

	reg := NewRegistry()
	e, err := reg.GetEngine(engine, cfg, rng.New(cfg.Seed))
	if err != nil {
		t.Fatalf("get engine: %v", err)
	}
	exp := New(cfg)
	if err := exp.Setup(e, reg.DefaultMetrics(engine)); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return exp, cfg
}

func TestRegistry(t *testing.T) {
	g := NewWithT(t)
	reg := NewRegistry()

	g.Expect(reg.ListEngines()).To(Equal([]string{"circuit", "particles"}))

	_, err := reg.GetEngine("fireworks", config.DefaultConfig(), rng.New(1))
	g.Expect(errors.Is(err, anim.ErrUnknownEngine)).To(BeTrue())

	e, err := reg.GetEngine("circuit", config.DefaultConfig(), rng.New(1))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(e).To(BeAssignableToTypeOf(&circuit.Engine{}))
}

func TestRunParticles(t *testing.T) {
	g := NewWithT(t)
	exp, cfg := setup(t, "particles", 12)

	obs := &countingObserver{}
	exp.AddObserver(obs)

	res, err := exp.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.FramesRun).To(Equal(12))
	g.Expect(obs.frames).To(Equal(12))

	for i, st := range res.Stats {
		g.Expect(st.Frame).To(Equal(i + 1))
		g.Expect(st.Elements).To(Equal(cfg.Particles.Count))
	}
	g.Expect(res.Metrics).To(HaveKey("links"))
	g.Expect(res.Metrics).To(HaveKey("active_ratio"))

	// one circle per particle plus the links of the last frame
	last := res.Stats[len(res.Stats)-1]
	g.Expect(obs.commands).To(Equal(last.Elements + last.Links))
	g.Expect(exp.Recorder().Clears()).To(Equal(12))
}

func TestRunCircuitResize(t *testing.T) {
	g := NewWithT(t)
	exp, _ := setup(t, "circuit", 6)
	exp.ResizeAt(3, 80, 80)

	res, err := exp.Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Resizes).To(Equal(1))

	w, h := exp.Recorder().Size()
	g.Expect(w).To(Equal(80.0))
	g.Expect(h).To(Equal(80.0))
	g.Expect(res.Stats[5].Elements).To(BeNumerically("<=", 4))
}

func TestRunCancelled(t *testing.T) {
	exp, _ := setup(t, "particles", 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := exp.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if res.FramesRun != 0 {
		t.Errorf("expected no frames, got %d", res.FramesRun)
	}
}

func TestRunWithoutSetup(t *testing.T) {
	exp := New(config.DefaultConfig())
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error for experiment without engine")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, _ := setup(t, "circuit", 30)
	b, _ := setup(t, "circuit", 30)

	ra, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	rb, err := b.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for i := range ra.Stats {
		if ra.Stats[i] != rb.Stats[i] {
			t.Errorf("frame %d: expected %+v, got %+v", i, ra.Stats[i], rb.Stats[i])
		}
	}
}

func TestEnsemble(t *testing.T) {
	g := NewWithT(t)

	cfg := config.DefaultConfig()
	cfg.Engine = "circuit"
	cfg.Frames = 5
	cfg.Seed = 10

	results, err := NewEnsemble(NewRegistry(), cfg, 4).Run(context.Background())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(results).To(HaveLen(4))
	for _, r := range results {
		g.Expect(r.FramesRun).To(Equal(5))
	}
	g.Expect(cfg.Seed).To(Equal(int64(10)))
}

func TestEnsembleUnknownEngine(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Engine = "fireworks"

	_, err := NewEnsemble(NewRegistry(), cfg, 2).Run(context.Background())
	if !errors.Is(err, anim.ErrUnknownEngine) {
		t.Errorf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestEnsembleRejectsEmptyRunCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		results, err := NewEnsemble(NewRegistry(), config.DefaultConfig(), n).Run(context.Background())
		if err == nil {
			t.Errorf("expected error for %d runs, got %d results", n, len(results))
		}
	}
}
