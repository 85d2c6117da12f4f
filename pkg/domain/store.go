// Package domain implements the network store: an in-memory directed
// multigraph of Nodes and Edges with an adjacency index, keyed at the
// kernel boundary by string ids.
//
// The store also assigns a stable integer handle per string id, on first
// sight and never reused. The adjacency index and the path solvers key by
// the string ids; the handles are not used in their lookups.
package domain

import (
	"fmt"
	"sync"
)

// Neighbor pairs a reachable node with the edge used to reach it.
type Neighbor struct {
	Node *Node
	Edge *Edge
}

// Stats summarizes the current state of the store.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	AvgOutDegree float64
	ByMode       map[Mode]int
}

// Store is the network store. It is safe for concurrent readers but
// requires exclusive access for mutators.
type Store struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	edges     map[string]*Edge
	adjacency map[string][]string // source node id -> ordered outgoing edge ids

	handles    map[string]int64
	nextHandle int64
}

// NewStore creates an empty network store.
func NewStore() *Store {
	return &Store{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
		handles:   make(map[string]int64),
	}
}

// handleLocked returns the stable integer handle for id, assigning one on
// first sight. Caller must hold mu.
func (s *Store) handleLocked(id string) int64 {
	if h, ok := s.handles[id]; ok {
		return h
	}
	h := s.nextHandle
	s.nextHandle++
	s.handles[id] = h
	return h
}

// AddNode upserts a node by id. O(1).
func (s *Store) AddNode(n *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handleLocked(n.ID)
	s.nodes[n.ID] = n
	if _, ok := s.adjacency[n.ID]; !ok {
		s.adjacency[n.ID] = nil
	}
}

// AddEdge appends e to the adjacency list of e.Source. Endpoints are not
// required to already exist in the store; lookups tolerate absent
// endpoints. Parallel edges are permitted.
func (s *Store) AddEdge(e *Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handleLocked(e.Source)
	s.handleLocked(e.Target)
	s.edges[e.ID] = e
	s.adjacency[e.Source] = append(s.adjacency[e.Source], e.ID)
}

// RemoveNode removes a node and every edge whose Source or Target equals
// id. Adjacency lists of other nodes are cleaned eagerly so reads never
// return a dangling edge.
func (s *Store) RemoveNode(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.nodes, id)
	delete(s.adjacency, id)

	for edgeID, e := range s.edges {
		if e.Source == id || e.Target == id {
			delete(s.edges, edgeID)
		}
	}
	for src, edgeIDs := range s.adjacency {
		s.adjacency[src] = filterExisting(edgeIDs, s.edges)
	}
}

// RemoveEdge removes an edge from the edge index and from its source's
// adjacency list.
func (s *Store) RemoveEdge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.edges[id]
	if !ok {
		return
	}
	delete(s.edges, id)
	s.adjacency[e.Source] = removeString(s.adjacency[e.Source], id)
}

func filterExisting(edgeIDs []string, edges map[string]*Edge) []string {
	if len(edgeIDs) == 0 {
		return edgeIDs
	}
	kept := edgeIDs[:0:0]
	for _, id := range edgeIDs {
		if _, ok := edges[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}

func removeString(ss []string, target string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}

// GetNode returns the node with the given id.
func (s *Store) GetNode(id string) (*Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	return n, ok
}

// GetEdge returns the edge with the given id.
func (s *Store) GetEdge(id string) (*Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.edges[id]
	return e, ok
}

// NodeIDs returns every node id currently in the store, in no particular
// order.
func (s *Store) NodeIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	return ids
}

// EdgeIDs returns every edge id currently in the store, in no particular
// order.
func (s *Store) EdgeIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.edges))
	for id := range s.edges {
		ids = append(ids, id)
	}
	return ids
}

// GetNeighbors yields (target node, edge) pairs for every outgoing edge of
// id, in adjacency order. Edges whose target is absent are skipped.
func (s *Store) GetNeighbors(id string) []Neighbor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edgeIDs := s.adjacency[id]
	neighbors := make([]Neighbor, 0, len(edgeIDs))
	for _, edgeID := range edgeIDs {
		e, ok := s.edges[edgeID]
		if !ok {
			continue
		}
		target, ok := s.nodes[e.Target]
		if !ok {
			continue
		}
		neighbors = append(neighbors, Neighbor{Node: target, Edge: e})
	}
	return neighbors
}

// OutgoingEdges returns the raw outgoing edges of id, in adjacency order,
// without resolving the target node. Used by solvers that only need edge
// relaxation, not a materialized neighbor.
func (s *Store) OutgoingEdges(id string) []*Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edgeIDs := s.adjacency[id]
	out := make([]*Edge, 0, len(edgeIDs))
	for _, edgeID := range edgeIDs {
		if e, ok := s.edges[edgeID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// IncomingEdges returns every edge whose Target equals id. Used by the
// bidirectional solver's backward frontier.
func (s *Store) IncomingEdges(id string) []*Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Edge
	for _, e := range s.edges {
		if e.Target == id {
			out = append(out, e)
		}
	}
	return out
}

// NodeCount returns the number of nodes in the store.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// EdgeCount returns the number of edges in the store.
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

// Stats returns node/edge counts, average out-degree, and a histogram by
// transport mode.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		NodeCount: len(s.nodes),
		EdgeCount: len(s.edges),
		ByMode:    make(map[Mode]int),
	}

	if len(s.nodes) > 0 {
		stats.AvgOutDegree = float64(len(s.edges)) / float64(len(s.nodes))
	}
	for _, e := range s.edges {
		stats.ByMode[e.Mode]++
	}
	return stats
}

// Clone returns a deep copy of the store, including its handle table.
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := NewStore()
	for id, n := range s.nodes {
		clone.nodes[id] = n.Clone()
	}
	for id, e := range s.edges {
		clone.edges[id] = e.Clone()
	}
	for src, edgeIDs := range s.adjacency {
		cp := make([]string, len(edgeIDs))
		copy(cp, edgeIDs)
		clone.adjacency[src] = cp
	}
	for id, h := range s.handles {
		clone.handles[id] = h
	}
	clone.nextHandle = s.nextHandle
	return clone
}

// Validate checks structural invariants: every edge references nodes
// present in the store, no self-loops, and no negative distance/cost.
func (s *Store) Validate() []error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var errs []error
	for id, e := range s.edges {
		if _, ok := s.nodes[e.Source]; !ok {
			errs = append(errs, fmt.Errorf("edge %s references non-existent source node %s", id, e.Source))
		}
		if _, ok := s.nodes[e.Target]; !ok {
			errs = append(errs, fmt.Errorf("edge %s references non-existent target node %s", id, e.Target))
		}
		if e.Source == e.Target {
			errs = append(errs, fmt.Errorf("edge %s is a self-loop at node %s", id, e.Source))
		}
		if e.Distance < 0 {
			errs = append(errs, fmt.Errorf("edge %s has negative distance", id))
		}
		if e.BaseCost < 0 {
			errs = append(errs, fmt.Errorf("edge %s has negative base cost", id))
		}
	}
	return errs
}
