package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/particles"
	"github.com/san-kum/backdrop/internal/rng"
)

// Factory builds an unsized engine from a validated configuration.
type Factory func(cfg *config.Config, src rng.Source) anim.Engine

type Registry struct {
	engines map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{engines: make(map[string]Factory)}

	r.engines["particles"] = func(cfg *config.Config, src rng.Source) anim.Engine {
		return particles.New(cfg.Particles, cfg.Theme, src)
	}
	r.engines["circuit"] = func(cfg *config.Config, src rng.Source) anim.Engine {
		return circuit.New(cfg.Circuit, cfg.Theme, src)
	}

	return r
}

func (r *Registry) GetEngine(name string, cfg *config.Config, src rng.Source) (anim.Engine, error) {
	fn, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", anim.ErrUnknownEngine, name)
	}
	return fn(cfg, src), nil
}

func (r *Registry) ListEngines() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(engine string) []anim.Metric {
	return metrics.Defaults()
}
