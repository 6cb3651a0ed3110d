package experiment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/rng"
)

// Ensemble runs the same configuration under consecutive seeds in parallel.
type Ensemble struct {
	reg       *Registry
	cfg       *config.Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(reg *Registry, cfg *config.Config, numRuns int) *Ensemble {
	return &Ensemble{reg: reg, cfg: cfg, numRuns: numRuns, seedStart: cfg.Seed}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("ensemble: need at least one run, got %d", e.numRuns)
	}
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		g.Go(func() error {
			cfgCopy := *e.cfg
			cfgCopy.Seed = e.seedStart + int64(i)

			engine, err := e.reg.GetEngine(cfgCopy.Engine, &cfgCopy, rng.New(cfgCopy.Seed))
			if err != nil {
				return err
			}

			exp := New(&cfgCopy)
			if err := exp.Setup(engine, e.reg.DefaultMetrics(cfgCopy.Engine)); err != nil {
				return err
			}
			results[i], err = exp.Run(ctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
