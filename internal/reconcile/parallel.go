package reconcile

import (
	"sync"

	"github.com/atharva-ketkar1/MMA-analysis/internal/namematch"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
)

// matchAll resolves every projection against the primary-bucket name pool.
// With Workers <= 1 it runs the serial reference loop. Otherwise the rows
// are split into contiguous chunks across workers; each worker writes only
// its own indices, and scoring is deterministic, so the parallel path
// produces exactly the serial results.
func (e *Engine) matchAll(projections []models.Projection, pool []string) []models.MatchResult {
	results := make([]models.MatchResult, len(projections))

	workers := e.cfg.Workers
	if workers > len(projections) {
		workers = len(projections)
	}
	if workers <= 1 {
		for i, p := range projections {
			results[i] = namematch.Match(p.Player, pool, e.cfg.Cutoff)
		}
		return results
	}

	chunk := (len(projections) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > len(projections) {
			end = len(projections)
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = namematch.Match(projections[i].Player, pool, e.cfg.Cutoff)
			}
		}(start, end)
	}
	wg.Wait()
	return results
}
