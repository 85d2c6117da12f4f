package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logistics/pkg/domain"
)

func seedTwoNodeStore(cost float64) *domain.Store {
	s := domain.NewStore()
	s.AddNode(&domain.Node{ID: "a", Name: "A", Type: domain.NodeTypeHub})
	s.AddNode(&domain.Node{ID: "b", Name: "B", Type: domain.NodeTypeHub})
	s.AddEdge(&domain.Edge{ID: "a-b", Source: "a", Target: "b", Mode: domain.ModeRoad, BaseCost: cost})
	return s
}

func TestStoreHash(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		assert.Empty(t, StoreHash(nil))
	})

	t.Run("same store produces same hash", func(t *testing.T) {
		s := seedTwoNodeStore(5)
		assert.Equal(t, StoreHash(s), StoreHash(s))
	})

	t.Run("different edge cost produces different hash", func(t *testing.T) {
		s1 := seedTwoNodeStore(5)
		s2 := seedTwoNodeStore(9)
		assert.NotEqual(t, StoreHash(s1), StoreHash(s2))
	})

	t.Run("node insertion order does not affect hash", func(t *testing.T) {
		s1 := domain.NewStore()
		s1.AddNode(&domain.Node{ID: "a", Type: domain.NodeTypeHub})
		s1.AddNode(&domain.Node{ID: "b", Type: domain.NodeTypeHub})
		s1.AddEdge(&domain.Edge{ID: "a-b", Source: "a", Target: "b", BaseCost: 5})

		s2 := domain.NewStore()
		s2.AddNode(&domain.Node{ID: "b", Type: domain.NodeTypeHub})
		s2.AddNode(&domain.Node{ID: "a", Type: domain.NodeTypeHub})
		s2.AddEdge(&domain.Edge{ID: "a-b", Source: "a", Target: "b", BaseCost: 5})

		assert.Equal(t, StoreHash(s1), StoreHash(s2))
	})
}

func TestBuildSolveKey(t *testing.T) {
	key := BuildSolveKey("abc123", "astar", "ny", "la")
	assert.Equal(t, "route:astar:abc123:ny:la", key)
}

func TestBuildSolveKeyWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		storeHash   string
		algorithm   string
		optionsHash string
		expected    string
	}{
		{
			name:      "without options",
			storeHash: "abc123",
			algorithm: "astar",
			expected:  "route:astar:abc123:ny:la",
		},
		{
			name:        "with options",
			storeHash:   "abc123",
			algorithm:   "astar",
			optionsHash: "opt456",
			expected:    "route:astar:abc123:ny:la:opt456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := BuildSolveKeyWithOptions(tt.storeHash, tt.algorithm, "ny", "la", tt.optionsHash)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestQuickHash(t *testing.T) {
	data := []byte("test data")
	hash := QuickHash(data)

	assert.Len(t, hash, 64) // SHA256 hex = 64 chars
	assert.Equal(t, hash, QuickHash(data))
}

func TestShortHash(t *testing.T) {
	hash := ShortHash([]byte("test data"))
	assert.Len(t, hash, 16)
}
