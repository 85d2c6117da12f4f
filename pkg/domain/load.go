package domain

import (
	"encoding/json"
	"fmt"
	"io"
)

// NetworkFile is the on-disk JSON representation of a network: a flat list
// of nodes and edges, loaded wholesale into a fresh Store.
type NetworkFile struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// LoadStore reads a NetworkFile from r and populates a new Store with its
// nodes and edges, in order. Edges are added after all nodes so that an
// edge referencing a not-yet-seen node still resolves during adjacency
// indexing.
func LoadStore(r io.Reader) (*Store, error) {
	var nf NetworkFile
	if err := json.NewDecoder(r).Decode(&nf); err != nil {
		return nil, fmt.Errorf("decode network file: %w", err)
	}

	s := NewStore()
	for _, n := range nf.Nodes {
		s.AddNode(n)
	}
	for _, e := range nf.Edges {
		s.AddEdge(e)
	}
	return s, nil
}

// DumpStore serializes store's nodes and edges to a NetworkFile, suitable
// for round-tripping through LoadStore.
func DumpStore(s *Store) *NetworkFile {
	nf := &NetworkFile{}
	for _, id := range s.NodeIDs() {
		if n, ok := s.GetNode(id); ok {
			nf.Nodes = append(nf.Nodes, n)
		}
	}
	for _, id := range s.EdgeIDs() {
		if e, ok := s.GetEdge(id); ok {
			nf.Edges = append(nf.Edges, e)
		}
	}
	return nf
}
