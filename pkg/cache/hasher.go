package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"logistics/pkg/domain"
)

// StoreHash computes a deterministic hash of a store's topology for use
// as a cache key. Two stores with identical nodes and edges (regardless
// of insertion order) hash identically.
func StoreHash(store *domain.Store) string {
	if store == nil {
		return ""
	}

	data := storeToCanonical(store)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

// storeToCanonical builds a deterministic byte representation of a
// store's nodes and edges, sorted by ID so key order never affects the
// hash.
func storeToCanonical(store *domain.Store) []byte {
	nodeIDs := store.NodeIDs()
	sort.Strings(nodeIDs)

	type edgeData struct {
		id, source, target string
		cost                float64
	}
	edgeIDs := store.EdgeIDs()
	edges := make([]edgeData, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		e, ok := store.GetEdge(id)
		if !ok {
			continue
		}
		edges = append(edges, edgeData{id: e.ID, source: e.Source, target: e.Target, cost: e.BaseCost})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].source != edges[j].source {
			return edges[i].source < edges[j].source
		}
		if edges[i].target != edges[j].target {
			return edges[i].target < edges[j].target
		}
		return edges[i].id < edges[j].id
	})

	var result []byte
	for _, id := range nodeIDs {
		n, ok := store.GetNode(id)
		if !ok {
			continue
		}
		result = append(result, []byte(fmt.Sprintf("n:%s:%d;", id, n.Type))...)
	}
	for _, e := range edges {
		result = append(result, []byte(fmt.Sprintf("e:%s:%s:%s:%.6f;", e.id, e.source, e.target, e.cost))...)
	}

	return result
}

// BuildSolveKey builds a cache key for a route solved between start and
// goal under algorithm, against a given store hash.
func BuildSolveKey(storeHash, algorithm, startID, goalID string) string {
	return fmt.Sprintf("route:%s:%s:%s:%s", algorithm, storeHash, startID, goalID)
}

// BuildSolveKeyWithOptions extends BuildSolveKey with a hash of the
// weight vector and constraints, so routes solved with different
// objectives or constraint sets never collide in the cache.
func BuildSolveKeyWithOptions(storeHash, algorithm, startID, goalID, optionsHash string) string {
	if optionsHash == "" {
		return BuildSolveKey(storeHash, algorithm, startID, goalID)
	}
	return fmt.Sprintf("route:%s:%s:%s:%s:%s", algorithm, storeHash, startID, goalID, optionsHash)
}

// QuickHash is a full-length SHA-256 hash of arbitrary data.
func QuickHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash is a truncated (8-byte) SHA-256 hash of arbitrary data.
func ShortHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
