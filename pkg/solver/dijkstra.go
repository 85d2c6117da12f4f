package solver

import (
	"container/heap"
	"context"

	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
)

// Dijkstra runs single-source shortest path search from startID to goalID
// over non-negative scalarized edge costs. Finalized nodes are never
// revisited: once popped from the frontier with a distance matching the
// best known distance, a node is closed and subsequent stale heap entries
// for it are skipped. Returns the node-id sequence from startID to goalID,
// or nil if no path exists.
func Dijkstra(ctx context.Context, store *domain.Store, startID, goalID string, w costkernel.Weights) []string {
	if _, ok := store.GetNode(startID); !ok {
		return nil
	}
	if _, ok := store.GetNode(goalID); !ok {
		return nil
	}

	dist := map[string]float64{startID: 0}
	parent := make(map[string]string)
	closed := make(map[string]bool)

	pq := make(distQueue, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &distItem{node: startID, distance: 0})

	iterations := 0

	for pq.Len() > 0 {
		if iterations%contextCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
		}
		iterations++

		current := heap.Pop(&pq).(*distItem)
		u := current.node

		if closed[u] {
			continue
		}
		if current.distance > dist[u]+domain.Epsilon {
			continue
		}
		if u == goalID {
			return reconstructPath(parent, startID, goalID)
		}
		closed[u] = true

		for _, nb := range store.GetNeighbors(u) {
			v := nb.Node.ID
			if closed[v] {
				continue
			}

			newDist := dist[u] + costkernel.EdgeCost(nb.Edge, w)
			oldDist, seen := dist[v]
			if seen && newDist >= oldDist-domain.Epsilon {
				continue
			}

			dist[v] = newDist
			parent[v] = u
			heap.Push(&pq, &distItem{node: v, distance: newDist})
		}
	}

	return nil
}
