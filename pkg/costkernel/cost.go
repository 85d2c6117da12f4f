package costkernel

import "logistics/pkg/domain"

// EdgeCost computes the scalarized cost of traversing e under weights w:
//
//	edge_cost(e, w) = w.cost · e.baseCost
//	                + w.time · e.baseTime
//	                + w.carbon · e.carbonEmissions · e.distance
//	                + w.risk · (1 − e.reliability) · 100
//
// No w.serviceLevel term enters edge cost; service level is a post-hoc
// route attribute. The result is never negative: the store does not
// reject negative edge fields, so a negative sum (from negative weights
// or edge fields) is clipped to 0.
func EdgeCost(e *domain.Edge, w Weights) float64 {
	cost := w.Cost*e.BaseCost +
		w.Time*e.BaseTime +
		w.Carbon*e.CarbonEmissions*e.Distance +
		w.Risk*(1-e.Reliability)*100

	if cost < 0 {
		return 0
	}
	return cost
}

// Reliability aggregates per-edge reliabilities for a sequence of edges
// under an independence assumption: the product of individual
// reliabilities, in [0,1]. An empty sequence has reliability 1.
func Reliability(edges []*domain.Edge) float64 {
	r := 1.0
	for _, e := range edges {
		r *= e.Reliability
	}
	return r
}

// ServiceLevel is the mean per-edge reliability, scaled to [0,100].
func ServiceLevel(edges []*domain.Edge) float64 {
	if len(edges) == 0 {
		return 0
	}
	var sum float64
	for _, e := range edges {
		sum += e.Reliability
	}
	return (sum / float64(len(edges))) * 100
}

// RiskScore is derived from the aggregate reliability: min(100, (1 −
// reliability) · 100).
func RiskScore(reliability float64) float64 {
	risk := (1 - reliability) * 100
	if risk > 100 {
		return 100
	}
	if risk < 0 {
		return 0
	}
	return risk
}
