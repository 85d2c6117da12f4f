package engine

import (
	"context"
	"time"

	"logistics/pkg/apperror"
	"logistics/pkg/constraints"
	"logistics/pkg/route"
	"logistics/pkg/solver"
)

// Optimize computes a single best route from startID to goalID under
// cfg, attaching c as the route's constraints snapshot. If the primary
// route fails constraint validation, Optimize
// makes ONE fallback attempt with a relaxed weight vector via Dijkstra,
// returned without re-validation. Returns apperror.ErrNoPath if neither
// attempt finds a route.
func (e *Engine) Optimize(ctx context.Context, startID, goalID string, c *route.Constraints, cfg OptimizeConfig) (*route.Route, error) {
	start := time.Now()
	e.stats.optimizeTotal.Add(1)

	solverCfg := solver.Config{Algorithm: cfg.Algorithm, Weights: cfg.Weights}
	path := solver.Solve(ctx, e.store, startID, goalID, solverCfg)
	if path == nil {
		e.stats.optimizeFailed.Add(1)
		e.metrics.RecordOptimize(cfg.Algorithm.String(), false, time.Since(start))
		return nil, apperror.ErrNoPath
	}

	r := route.Build(e.store, path, cfg.Weights)
	if r == nil {
		e.stats.optimizeFailed.Add(1)
		e.metrics.RecordOptimize(cfg.Algorithm.String(), false, time.Since(start))
		return nil, apperror.ErrNoPath
	}
	r.Constraints = c

	if cfg.Stochastic {
		band := route.Confidence(r, cfg.ConfidenceLevel)
		r.Confidence = &band
	}

	validation := constraints.Validate(r, c)
	if validation.IsValid() {
		r.Metadata = &route.Metadata{
			Algorithm:              cfg.Algorithm.String(),
			ComputeTime:             time.Since(start),
			AlternativesConsidered: 1,
		}
		e.stats.optimizeSuccess.Add(1)
		e.metrics.RecordOptimize(cfg.Algorithm.String(), true, time.Since(start))
		return r, nil
	}

	fallback := e.optimizeFallback(ctx, startID, goalID, c, cfg, start)
	if fallback == nil {
		e.stats.optimizeFailed.Add(1)
		e.metrics.RecordOptimize(cfg.Algorithm.String(), false, time.Since(start))
		return nil, apperror.Wrap(apperror.ErrNoPath, apperror.CodeConstraintUnsatisfiable,
			"route found but failed constraint validation, and the relaxed fallback found no path")
	}

	e.stats.optimizeSuccess.Add(1)
	e.metrics.RecordOptimize(solver.AlgorithmDijkstra.String(), true, time.Since(start))
	return fallback, nil
}

// optimizeFallback reruns the solve with a relaxed weight vector via
// Dijkstra and returns the materialized route without re-validating it
// (the fallback is best-effort).
func (e *Engine) optimizeFallback(ctx context.Context, startID, goalID string, c *route.Constraints, cfg OptimizeConfig, start time.Time) *route.Route {
	relaxed := cfg.Weights.Relaxed()
	path := solver.Dijkstra(ctx, e.store, startID, goalID, relaxed)
	if path == nil {
		return nil
	}

	r := route.Build(e.store, path, relaxed)
	if r == nil {
		return nil
	}
	r.Constraints = c
	r.Metadata = &route.Metadata{
		Algorithm:              solver.AlgorithmDijkstra.String(),
		ComputeTime:             time.Since(start),
		AlternativesConsidered: 1,
		Fallback:               true,
	}
	return r
}
