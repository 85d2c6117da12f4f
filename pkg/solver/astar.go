package solver

import (
	"container/heap"

	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
)

// AStar runs best-first search from startID to goalID, scoring the open
// frontier by f = g + h, where g is the minimum scalarized cost
// discovered so far and h is the great-circle heuristic to the goal.
// Expands the lowest-f node, relaxes each outgoing edge by
// costkernel.EdgeCost, and updates g/f/predecessor when improved. Ties on
// f are broken by insertion order. Returns the node-id sequence from
// startID to goalID, or nil if no path exists.
func AStar(store *domain.Store, startID, goalID string, w costkernel.Weights) []string {
	goal, ok := store.GetNode(goalID)
	if !ok {
		return nil
	}
	if _, ok := store.GetNode(startID); !ok {
		return nil
	}

	g := map[string]float64{startID: 0}
	parent := make(map[string]string)
	closed := make(map[string]bool)

	pq := make(fQueue, 0, 64)
	heap.Init(&pq)
	seq := 0

	start, _ := store.GetNode(startID)
	h0 := costkernel.Heuristic(start.Coordinates, goal.Coordinates, w)
	heap.Push(&pq, &fItem{node: startID, f: h0, g: 0, seq: seq})
	seq++

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*fItem)
		u := current.node

		if closed[u] {
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

			newG := g[u] + costkernel.EdgeCost(nb.Edge, w)
			oldG, seen := g[v]
			if seen && newG >= oldG-domain.Epsilon {
				continue
			}

			g[v] = newG
			parent[v] = u
			h := costkernel.Heuristic(nb.Node.Coordinates, goal.Coordinates, w)
			newItem := &fItem{node: v, f: newG + h, g: newG, seq: seq}
			seq++
			heap.Push(&pq, newItem)
		}
	}

	return nil
}
