// Package engine implements the optimization engine: the single
// entry point that dispatches path solves, builds routes, validates
// constraints, retries with relaxed weights, enumerates Pareto frontiers,
// and re-routes around disrupted edges.
package engine

import (
	"time"

	"logistics/pkg/costkernel"
	"logistics/pkg/route"
	"logistics/pkg/solver"
)

// OptimizeConfig bundles the inputs to a single-route optimize call
// beyond the store and endpoints.
type OptimizeConfig struct {
	Algorithm       solver.Algorithm
	Weights         costkernel.Weights
	ConsiderTraffic bool
	ConsiderWeather bool
	Stochastic      bool
	ConfidenceLevel float64
}

// ParetoObjective is an informational label attached to a Pareto frontier
// request; it does not change the fixed weight-grid enumeration.
type ParetoObjective string

const (
	ObjectiveMinimizeCost   ParetoObjective = "minimize_cost"
	ObjectiveMinimizeTime   ParetoObjective = "minimize_time"
	ObjectiveMinimizeCarbon ParetoObjective = "minimize_carbon"
	ObjectiveMinimizeRisk   ParetoObjective = "minimize_risk"
)

// ParetoCandidate is one weight-vector solve projected onto 4D objective
// space, with its dominance verdict.
type ParetoCandidate struct {
	Route     *route.Route
	Weights   costkernel.Weights
	Cost      float64
	Time      float64
	Carbon    float64
	Risk      float64
	IsOptimal bool
}

// ParetoResult is the full output of a Pareto frontier call.
type ParetoResult struct {
	Candidates      []ParetoCandidate
	PointsEvaluated int
	Elapsed         time.Duration
}

// Stats is a snapshot of engine-level call counters.
type Stats struct {
	OptimizeTotal   int64
	OptimizeSuccess int64
	OptimizeFailed  int64
	ParetoTotal     int64
	RerouteTotal    int64
}
