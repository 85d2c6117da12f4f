package solver

import (
	"context"

	"logistics/pkg/domain"
)

// Solve dispatches to the path solver named by cfg.Algorithm. Hybrid runs
// A* first and falls back to Dijkstra only when A* finds no path,
// trading the extra solve for a second, heuristic-free attempt before
// giving up. Bidirectional ignores cfg.Weights since it treats the store
// as unweighted.
func Solve(ctx context.Context, store *domain.Store, startID, goalID string, cfg Config) []string {
	switch cfg.Algorithm {
	case AlgorithmDijkstra:
		return Dijkstra(ctx, store, startID, goalID, cfg.Weights)
	case AlgorithmBidirectional:
		return Bidirectional(store, startID, goalID)
	case AlgorithmHybrid:
		if path := AStar(store, startID, goalID, cfg.Weights); path != nil {
			return path
		}
		return Dijkstra(ctx, store, startID, goalID, cfg.Weights)
	case AlgorithmAStar, AlgorithmUnspecified:
		fallthrough
	default:
		return AStar(store, startID, goalID, cfg.Weights)
	}
}
