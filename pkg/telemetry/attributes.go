package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Standard attribute keys attached to kernel spans.
const (
	// Network store.
	AttrStoreNodes = "store.nodes"
	AttrStoreEdges = "store.edges"
	AttrStoreStart = "store.start_id"
	AttrStoreGoal  = "store.goal_id"

	// Path solver / route.
	AttrAlgorithm     = "solver.algorithm"
	AttrPathLength    = "solver.path_length"
	AttrRouteCost     = "route.total_cost"
	AttrRouteDistance = "route.total_distance"

	// Constraint validation.
	AttrValidationErrors = "validation.errors"
	AttrValidationPassed = "validation.passed"
)

// StoreAttributes returns attributes describing a network store query.
func StoreAttributes(nodes, edges int, startID, goalID string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrStoreNodes, nodes),
		attribute.Int(AttrStoreEdges, edges),
		attribute.String(AttrStoreStart, startID),
		attribute.String(AttrStoreGoal, goalID),
	}
}

// SolveAttributes returns attributes describing a completed path solve.
func SolveAttributes(algorithm string, pathLength int, totalCost, totalDistance float64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrAlgorithm, algorithm),
		attribute.Int(AttrPathLength, pathLength),
		attribute.Float64(AttrRouteCost, totalCost),
		attribute.Float64(AttrRouteDistance, totalDistance),
	}
}

// ValidationAttributes returns attributes describing a constraint
// validation outcome.
func ValidationAttributes(errorsCount int, passed bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrValidationErrors, errorsCount),
		attribute.Bool(AttrValidationPassed, passed),
	}
}
