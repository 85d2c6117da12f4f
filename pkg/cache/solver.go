package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"logistics/pkg/domain"
	"logistics/pkg/route"
)

// RouteCache is a specialized cache for solved routes, keyed by store
// topology, endpoints, and algorithm.
type RouteCache struct {
	cache      Cache
	defaultTTL time.Duration
}

// NewRouteCache creates a route cache backed by cache, defaulting to a
// 10-minute TTL when ttl is non-positive.
func NewRouteCache(cache Cache, defaultTTL time.Duration) *RouteCache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &RouteCache{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// Get returns the cached route for (store, startID, goalID, algorithm),
// if present. The bool is false on a clean miss; a corrupted cache entry
// is treated as a miss and evicted.
func (rc *RouteCache) Get(ctx context.Context, store *domain.Store, startID, goalID, algorithm string) (*route.Route, bool, error) {
	key := BuildSolveKey(StoreHash(store), algorithm, startID, goalID)

	data, err := rc.cache.Get(ctx, key)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var r route.Route
	if err := json.Unmarshal(data, &r); err != nil {
		_ = rc.cache.Delete(ctx, key) //nolint:errcheck // best effort cleanup of a corrupted entry
		return nil, false, nil
	}

	return &r, true, nil
}

// Set stores r under the key derived from (store, startID, goalID,
// algorithm), using ttl if positive or the cache's default TTL
// otherwise.
func (rc *RouteCache) Set(ctx context.Context, store *domain.Store, startID, goalID, algorithm string, r *route.Route, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = rc.defaultTTL
	}

	key := BuildSolveKey(StoreHash(store), algorithm, startID, goalID)

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	return rc.cache.Set(ctx, key, data, ttl)
}

// Invalidate removes every cached route for store, across all endpoints
// and algorithms. Call this after any store mutation (AddEdge,
// RemoveEdge, AddNode, RemoveNode).
func (rc *RouteCache) Invalidate(ctx context.Context, store *domain.Store) error {
	keys, err := rc.cache.Keys(ctx, "route:*")
	if err != nil {
		return err
	}
	marker := ":" + StoreHash(store) + ":"
	var matched []string
	for _, key := range keys {
		if strings.Contains(key, marker) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	_, err = rc.cache.MDelete(ctx, matched)
	return err
}

// InvalidateAll removes every cached route regardless of store.
func (rc *RouteCache) InvalidateAll(ctx context.Context) (int64, error) {
	return rc.cache.DeleteByPattern(ctx, "route:*")
}
