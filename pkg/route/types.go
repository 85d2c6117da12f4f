// Package route builds Route values from solved node-id sequences: it
// walks the sequence through a domain.Store, selects edges, accumulates
// cost breakdowns, and derives reliability/service-level/risk summaries.
package route

import (
	"time"

	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
)

// TimeWindow constrains when a route may arrive. HardConstraint marks it
// as a rejection criterion rather than an informational preference.
type TimeWindow struct {
	Start          time.Time
	End            time.Time
	HardConstraint bool
}

// CapacityConstraint requires every edge on the route to carry at least
// MaxWeight units of capacity.
type CapacityConstraint struct {
	MaxWeight float64
}

// EmissionsConstraint caps total carbon emissions unless PreferLowEmission
// downgrades the ceiling to a soft preference.
type EmissionsConstraint struct {
	MaxCO2            float64
	PreferLowEmission bool
}

// Constraints is the full set of hard and soft requirements a route must
// satisfy.
type Constraints struct {
	TimeWindows   []TimeWindow
	Capacity      CapacityConstraint
	Emissions     EmissionsConstraint
	AvoidNodes    []string
	RequiredNodes []string
}

// ConfidenceBand is a symmetric band around route totals under a normal
// approximation, computed only when requested.
type ConfidenceBand struct {
	Level   float64
	TimeMin float64
	TimeMax float64
	CostMin float64
	CostMax float64
}

// Metadata records how a route was produced, attached by the engine
// rather than the builder itself.
type Metadata struct {
	Algorithm              string
	ComputeTime            time.Duration
	AlternativesConsidered int

	// Fallback marks a route returned by the relaxed-weight fallback path,
	// which is not re-validated against the caller's constraints.
	Fallback bool
}

// Segment is one hop of a route: the node snapshots at either end, the
// edge traversed, and its cost/carbon contribution.
type Segment struct {
	ID              string
	From            domain.Node
	To              domain.Node
	Edge            domain.Edge
	Mode            domain.Mode
	Distance        float64
	EstimatedTime   float64
	Cost            costkernel.CostBreakdown
	CarbonEmissions float64
}

// Route is a fully materialized path through the network with aggregate
// cost, time, carbon, reliability, service-level and risk figures.
type Route struct {
	ID            string
	Segments      []Segment
	TotalDistance float64
	TotalTime     float64
	TotalCost     costkernel.CostBreakdown
	TotalCarbon   float64
	ServiceLevel  float64
	Reliability   float64
	RiskScore     float64
	Constraints   *Constraints
	Confidence    *ConfidenceBand
	Metadata      *Metadata
}
