package solver

import "logistics/pkg/costkernel"

// Algorithm selects which path solver the engine dispatches to.
type Algorithm int

const (
	AlgorithmUnspecified Algorithm = iota
	AlgorithmAStar
	AlgorithmDijkstra
	AlgorithmBidirectional
	AlgorithmHybrid
)

// String returns the wire/string representation of an Algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAStar:
		return "astar"
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmBidirectional:
		return "bidirectional"
	case AlgorithmHybrid:
		return "hybrid"
	default:
		return "unspecified"
	}
}

// ParseAlgorithm converts a wire string to an Algorithm. Unknown strings
// default to AlgorithmAStar.
func ParseAlgorithm(s string) Algorithm {
	switch s {
	case "astar":
		return AlgorithmAStar
	case "dijkstra":
		return AlgorithmDijkstra
	case "bidirectional":
		return AlgorithmBidirectional
	case "hybrid":
		return AlgorithmHybrid
	default:
		return AlgorithmAStar
	}
}

// Config bundles the parameters a path solve needs beyond the store and
// endpoints.
type Config struct {
	Algorithm Algorithm
	Weights   costkernel.Weights
}

// contextCheckInterval is how often Dijkstra checks ctx.Done() against the
// iteration count rather than on every pop.
const contextCheckInterval = 100
