package metrics

import "github.com/san-kum/backdrop/internal/anim"

// ActiveRatio is the mean share of active elements per frame.
type ActiveRatio struct {
	name    string
	sum     float64
	samples int
}

func NewActiveRatio() *ActiveRatio {
	return &ActiveRatio{name: "active_ratio"}
}

func (a *ActiveRatio) Name() string {
	return a.name
}

func (a *ActiveRatio) Observe(s anim.Stats) {
	if s.Elements == 0 {
		return
	}
	a.sum += float64(s.Active) / float64(s.Elements)
	a.samples++
}

func (a *ActiveRatio) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *ActiveRatio) Reset() {
	a.sum = 0
	a.samples = 0
}

type Pulses struct {
	name    string
	sum     float64
	peak    int
	samples int
}

func NewPulses() *Pulses {
	return &Pulses{name: "pulses"}
}

func (p *Pulses) Name() string {
	return p.name
}

func (p *Pulses) Observe(s anim.Stats) {
	p.sum += float64(s.Pulses)
	p.peak = max(p.peak, s.Pulses)
	p.samples++
}

// Value is the mean pulses per frame.
func (p *Pulses) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

func (p *Pulses) Peak() int { return p.peak }

func (p *Pulses) Reset() {
	p.sum = 0
	p.peak = 0
	p.samples = 0
}

// Defaults returns the metrics recorded for every run.
func Defaults() []anim.Metric {
	return []anim.Metric{NewLinks(), NewDensity(), NewActiveRatio(), NewPulses()}
}
