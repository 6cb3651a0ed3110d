package metrics

import "github.com/san-kum/backdrop/internal/anim"

// Links is the mean number of connection lines drawn per frame.
type Links struct {
	name    string
	sum     float64
	samples int
}

func NewLinks() *Links {
	return &Links{name: "links"}
}

func (l *Links) Name() string { return l.name }

func (l *Links) Observe(s anim.Stats) {
	l.sum += float64(s.Links)
	l.samples++
}

func (l *Links) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.sum / float64(l.samples)
}

func (l *Links) Reset() {
	l.sum = 0
	l.samples = 0
}

// Density is the mean number of links per element, the fraction of the
// complete graph that gets drawn. Frames without elements are skipped.
type Density struct {
	name    string
	sum     float64
	samples int
}

func NewDensity() *Density {
	return &Density{name: "link_density"}
}

func (d *Density) Name() string { return d.name }

func (d *Density) Observe(s anim.Stats) {
	if s.Elements < 2 {
		return
	}
	pairs := float64(s.Elements*(s.Elements-1)) / 2
	d.sum += float64(s.Links) / pairs
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Density) Reset() {
	d.sum = 0
	d.samples = 0
}
