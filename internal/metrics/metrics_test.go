package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/backdrop/internal/anim"
)

func TestLinksMean(t *testing.T) {
	m := NewLinks()

	m.Observe(anim.Stats{Links: 4})
	m.Observe(anim.Stats{Links: 8})

	if m.Value() != 6 {
		t.Errorf("expected mean 6, got %f", m.Value())
	}
}

func TestDensity(t *testing.T) {
	m := NewDensity()

	m.Observe(anim.Stats{Elements: 4, Links: 3})
	m.Observe(anim.Stats{Elements: 1, Links: 0})

	if math.Abs(m.Value()-0.5) > 1e-9 {
		t.Errorf("expected density 0.5, got %f", m.Value())
	}
}

func TestActiveRatioSkipsEmptyFrames(t *testing.T) {
	m := NewActiveRatio()

	m.Observe(anim.Stats{Elements: 10, Active: 5})
	m.Observe(anim.Stats{})
	m.Observe(anim.Stats{Elements: 10, Active: 10})

	if math.Abs(m.Value()-0.75) > 1e-9 {
		t.Errorf("expected ratio 0.75, got %f", m.Value())
	}
}

func TestPulsesPeak(t *testing.T) {
	m := NewPulses()

	for _, n := range []int{1, 5, 3} {
		m.Observe(anim.Stats{Pulses: n})
	}

	if m.Peak() != 5 {
		t.Errorf("expected peak 5, got %d", m.Peak())
	}
	if m.Value() != 3 {
		t.Errorf("expected mean 3, got %f", m.Value())
	}
}

func TestReset(t *testing.T) {
	for _, m := range Defaults() {
		m.Observe(anim.Stats{Elements: 3, Links: 2, Active: 1, Pulses: 1})
		if m.Value() == 0 {
			t.Errorf("%s: expected non-zero value", m.Name())
		}

		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%s: expected zero after reset, got %f", m.Name(), m.Value())
		}
	}
}
