package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/pkg/audit"
	"logistics/pkg/domain"
)

// seedStore builds the diamond network of the solver test suite, with edge
// capacities added: ny -> chicago -> la is cheaper than ny -> dallas -> la.
// Each base cost is at least the great-circle distance its edge spans, so
// the distance heuristic stays a lower bound under cost-only weights.
func seedStore() *domain.Store {
	s := domain.NewStore()

	s.AddNode(&domain.Node{ID: "ny", Name: "New York", Type: domain.NodeTypeHub,
		Coordinates: domain.Coordinates{Lat: 40.7128, Lng: -74.0060}})
	s.AddNode(&domain.Node{ID: "chicago", Name: "Chicago", Type: domain.NodeTypeHub,
		Coordinates: domain.Coordinates{Lat: 41.8781, Lng: -87.6298}})
	s.AddNode(&domain.Node{ID: "dallas", Name: "Dallas", Type: domain.NodeTypeHub,
		Coordinates: domain.Coordinates{Lat: 32.7767, Lng: -96.7970}})
	s.AddNode(&domain.Node{ID: "la", Name: "Los Angeles", Type: domain.NodeTypeHub,
		Coordinates: domain.Coordinates{Lat: 34.0522, Lng: -118.2437}})

	s.AddEdge(&domain.Edge{ID: "ny-chicago", Source: "ny", Target: "chicago",
		Mode: domain.ModeRoad, Distance: 1270, BaseTime: 780, BaseCost: 1400, Reliability: 0.95, Capacity: 1000})
	s.AddEdge(&domain.Edge{ID: "chicago-la", Source: "chicago", Target: "la",
		Mode: domain.ModeRail, Distance: 2800, BaseTime: 2400, BaseCost: 3000, Reliability: 0.9, Capacity: 1000})
	s.AddEdge(&domain.Edge{ID: "ny-dallas", Source: "ny", Target: "dallas",
		Mode: domain.ModeRoad, Distance: 2200, BaseTime: 1500, BaseCost: 2400, Reliability: 0.92, Capacity: 1000})
	s.AddEdge(&domain.Edge{ID: "dallas-la", Source: "dallas", Target: "la",
		Mode: domain.ModeRoad, Distance: 2000, BaseTime: 1300, BaseCost: 2200, Reliability: 0.9, Capacity: 1000})

	return s
}

func TestNew_DefaultsMetricsAndAudit(t *testing.T) {
	e := New(seedStore(), nil, nil)
	assert.NotNil(t, e.metrics)
	assert.NotNil(t, e.audit)
}

func TestStats_StartsAtZero(t *testing.T) {
	e := New(seedStore(), nil, audit.NewMemoryLogger())
	stats := e.Stats()
	assert.Zero(t, stats.OptimizeTotal)
	assert.Zero(t, stats.ParetoTotal)
	assert.Zero(t, stats.RerouteTotal)
}

func TestShutdown_IdempotentAndSucceedsImmediately(t *testing.T) {
	e := New(seedStore(), nil, nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, e.Shutdown(ctx))
	require.NoError(t, e.Shutdown(ctx))
}
