package engine

import (
	"context"
	"runtime"
	"time"

	"logistics/pkg/apperror"
	"logistics/pkg/costkernel"
	"logistics/pkg/route"
	"logistics/pkg/solver"
)

// paretoSteps is the resolution of the weight simplex: i, j, k each range
// over [0, paretoSteps], yielding C(paretoSteps+3, 3) weight vectors.
const paretoSteps = 5

// paretoWeightGrid enumerates the fixed weight simplex over
// {cost, time, carbon} with the remaining mass split evenly between risk
// and serviceLevel.
func paretoWeightGrid() []costkernel.Weights {
	grid := make([]costkernel.Weights, 0, 56)
	for i := 0; i <= paretoSteps; i++ {
		for j := 0; j <= paretoSteps-i; j++ {
			for k := 0; k <= paretoSteps-i-j; k++ {
				cost := float64(i) / paretoSteps
				t := float64(j) / paretoSteps
				carbon := float64(k) / paretoSteps
				remaining := 1 - cost - t - carbon
				grid = append(grid, costkernel.Weights{
					Cost:         cost,
					Time:         t,
					Carbon:       carbon,
					Risk:         remaining * 0.5,
					ServiceLevel: remaining * 0.5,
				})
			}
		}
	}
	return grid
}

// Pareto enumerates the fixed 56-point weight grid, solving each with
// Hybrid and projecting non-NONE routes onto 4D objective space
// (cost, time, carbon, risk). Every candidate's isOptimal flag reflects
// Pareto dominance among the surviving candidates.
// The engine only reads the store during this call; it performs no
// writes, so the worker pool below may safely hold read locks
// concurrently.
func (e *Engine) Pareto(ctx context.Context, startID, goalID string, c *route.Constraints) (*ParetoResult, error) {
	select {
	case <-e.shutdownCh:
		return nil, apperror.ErrEngineShutdown
	default:
	}

	start := time.Now()
	e.stats.paretoTotal.Add(1)

	grid := paretoWeightGrid()
	candidates := make([]*ParetoCandidate, len(grid))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(grid) {
		workers = len(grid)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, len(grid))
	for idx := range grid {
		jobs <- idx
	}
	close(jobs)

	done := make(chan struct{})
	for w := 0; w < workers; w++ {
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			for idx := range jobs {
				candidates[idx] = e.solveParetoCandidate(ctx, startID, goalID, grid[idx])
			}
		}()
	}
	go func() {
		e.wg.Wait()
		close(done)
	}()
	<-done

	live := make([]*ParetoCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand != nil {
			live = append(live, cand)
		}
	}
	markDominance(live)

	result := make([]ParetoCandidate, len(live))
	for i, cand := range live {
		cand.Route.Constraints = c
		result[i] = *cand
	}

	elapsed := time.Since(start)
	e.metrics.RecordPareto(len(grid), elapsed)

	return &ParetoResult{
		Candidates:      result,
		PointsEvaluated: len(grid),
		Elapsed:         elapsed,
	}, nil
}

// solveParetoCandidate solves and materializes a single weight-vector
// point. Returns nil if no path exists under these weights.
func (e *Engine) solveParetoCandidate(ctx context.Context, startID, goalID string, w costkernel.Weights) *ParetoCandidate {
	cfg := solver.Config{Algorithm: solver.AlgorithmHybrid, Weights: w}
	path := solver.Solve(ctx, e.store, startID, goalID, cfg)
	if path == nil {
		return nil
	}

	r := route.Build(e.store, path, w)
	if r == nil {
		return nil
	}

	return &ParetoCandidate{
		Route:   r,
		Weights: w,
		Cost:    r.TotalCost.Total,
		Time:    r.TotalTime,
		Carbon:  r.TotalCarbon,
		Risk:    r.RiskScore,
	}
}

// markDominance flags each candidate's IsOptimal in place: true iff no
// other candidate dominates it on all four objectives with at least one
// strictly smaller.
func markDominance(candidates []*ParetoCandidate) {
	for _, cand := range candidates {
		cand.IsOptimal = true
	}
	for i, a := range candidates {
		for j, b := range candidates {
			if i == j {
				continue
			}
			if dominates(b, a) {
				a.IsOptimal = false
				break
			}
		}
	}
}

// dominates reports whether a dominates b: all four objectives of a are
// <= those of b, and at least one is strictly less.
func dominates(a, b *ParetoCandidate) bool {
	if a.Cost > b.Cost || a.Time > b.Time || a.Carbon > b.Carbon || a.Risk > b.Risk {
		return false
	}
	return a.Cost < b.Cost || a.Time < b.Time || a.Carbon < b.Carbon || a.Risk < b.Risk
}
