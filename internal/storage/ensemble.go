package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/san-kum/bars3d/internal/config"
	"github.com/san-kum/bars3d/internal/session"
)

// Ensemble records the same config under consecutive seeds, one independent
// session per run.
type Ensemble struct {
	cfg       *config.Config
	numRuns   int
	seedStart int64
	log       *slog.Logger
}

func NewEnsemble(cfg *config.Config, numRuns int, seedStart int64, log *slog.Logger) *Ensemble {
	if log == nil {
		log = slog.Default()
	}
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart, log: log}
}

// Run records n frames per seed concurrently. Results are ordered by seed.
// Any failed run fails the whole ensemble.
func (e *Ensemble) Run(ctx context.Context, n int) ([]*Recording, error) {
	if e.numRuns <= 0 {
		return nil, fmt.Errorf("storage: ensemble needs at least one run, got %d", e.numRuns)
	}
	results := make([]*Recording, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.cfg.Clone()
			cfg.Seed = e.seedStart + int64(idx)

			s, err := session.New(cfg, session.WithLogger(e.log.With("seed", cfg.Seed)))
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = Record(ctx, s, n, 0)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
