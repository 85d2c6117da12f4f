package engine

import (
	"context"

	"logistics/pkg/apperror"
	"logistics/pkg/costkernel"
	"logistics/pkg/route"
	"logistics/pkg/solver"
)

// scenarioPreset is a fixed (weights, algorithm, stochastic) combination
// keyed by scenario name.
type scenarioPreset struct {
	weights         costkernel.Weights
	algorithm       solver.Algorithm
	stochastic      bool
	confidenceLevel float64
}

var scenarioPresets = map[string]scenarioPreset{
	"lowest_cost": {
		weights:   costkernel.Weights{Cost: 1},
		algorithm: solver.AlgorithmDijkstra,
	},
	"fastest": {
		weights:   costkernel.Weights{Time: 1},
		algorithm: solver.AlgorithmAStar,
	},
	"greenest": {
		weights:   costkernel.Weights{Carbon: 1},
		algorithm: solver.AlgorithmDijkstra,
	},
	"most_reliable": {
		weights:         costkernel.Weights{Cost: 0.1, Time: 0.1, Risk: 0.5, ServiceLevel: 0.3},
		algorithm:       solver.AlgorithmHybrid,
		stochastic:      true,
		confidenceLevel: 0.95,
	},
}

// Scenario runs Optimize using the fixed weight/algorithm/stochastic
// preset named by scenario. Returns apperror.ErrInvalidScenario for an
// unrecognized name.
func (e *Engine) Scenario(ctx context.Context, startID, goalID, scenario string, c *route.Constraints) (*route.Route, error) {
	preset, ok := scenarioPresets[scenario]
	if !ok {
		return nil, apperror.ErrInvalidScenario
	}

	cfg := OptimizeConfig{
		Algorithm:       preset.algorithm,
		Weights:         preset.weights,
		ConsiderTraffic: true,
		ConsiderWeather: true,
		Stochastic:      preset.stochastic,
		ConfidenceLevel: preset.confidenceLevel,
	}
	return e.Optimize(ctx, startID, goalID, c, cfg)
}
