package solver

import "logistics/pkg/domain"

// Bidirectional runs an unweighted meet-in-the-middle BFS: a forward
// frontier expands from startID over outgoing edges while a backward
// frontier expands from goalID over incoming edges, alternating one level
// at a time. The search stops as soon as a node appears in both visited
// sets and stitches the forward and backward predecessor chains at that
// meeting node. Because it ignores edge cost entirely, Bidirectional only
// answers existence/structure questions; it is not used to score routes.
// Returns the node-id sequence from startID to goalID, or nil if no path
// exists.
func Bidirectional(store *domain.Store, startID, goalID string) []string {
	if startID == goalID {
		if _, ok := store.GetNode(startID); ok {
			return []string{startID}
		}
		return nil
	}
	if _, ok := store.GetNode(startID); !ok {
		return nil
	}
	if _, ok := store.GetNode(goalID); !ok {
		return nil
	}

	forwardParent := map[string]string{startID: ""}
	backwardParent := map[string]string{goalID: ""}

	forwardQueue := NewQueue(16)
	forwardQueue.Push(startID)
	backwardQueue := NewQueue(16)
	backwardQueue.Push(goalID)

	for forwardQueue.Len() > 0 && backwardQueue.Len() > 0 {
		if meet, ok := expandLevel(store, forwardQueue, forwardParent, backwardParent, true); ok {
			return stitch(forwardParent, backwardParent, startID, goalID, meet)
		}
		if meet, ok := expandLevel(store, backwardQueue, backwardParent, forwardParent, false); ok {
			return stitch(forwardParent, backwardParent, startID, goalID, meet)
		}
	}

	return nil
}

// expandLevel pops the entire current frontier of q, visiting each node's
// forward or backward neighbors and recording them in own. Returns the
// first node found in other, if any.
func expandLevel(store *domain.Store, q *Queue, own, other map[string]string, forward bool) (string, bool) {
	levelSize := q.Len()
	for i := 0; i < levelSize; i++ {
		u := q.Pop()

		var nextIDs []string
		if forward {
			for _, nb := range store.GetNeighbors(u) {
				nextIDs = append(nextIDs, nb.Node.ID)
			}
		} else {
			for _, e := range store.IncomingEdges(u) {
				nextIDs = append(nextIDs, e.Source)
			}
		}

		for _, v := range nextIDs {
			if _, seen := own[v]; seen {
				continue
			}
			own[v] = u
			if _, inOther := other[v]; inOther {
				return v, true
			}
			q.Push(v)
		}
	}
	return "", false
}

// stitch joins the forward chain start->meet with the reversed backward
// chain meet->goal into a single path.
func stitch(forwardParent, backwardParent map[string]string, start, goal, meet string) []string {
	var forwardHalf []string
	for cur := meet; cur != ""; cur = forwardParent[cur] {
		forwardHalf = append(forwardHalf, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(forwardHalf)-1; i < j; i, j = i+1, j-1 {
		forwardHalf[i], forwardHalf[j] = forwardHalf[j], forwardHalf[i]
	}

	var backwardHalf []string
	for cur := backwardParent[meet]; cur != ""; cur = backwardParent[cur] {
		backwardHalf = append(backwardHalf, cur)
		if cur == goal {
			break
		}
	}

	return append(forwardHalf, backwardHalf...)
}
