package costkernel

import "logistics/pkg/domain"

// CostBreakdown is the ordered sum of cost components for a segment or a
// whole route. Invariant: Total equals the sum of all other fields (no
// double-counting). All components are non-negative.
type CostBreakdown struct {
	Linehaul      float64
	FuelSurcharge float64
	Accessorials  float64
	Detention     float64
	Drayage       float64
	Tolls         float64
	Customs       float64
	Insurance     float64
	Total         float64
	Currency      string
}

// customsSurcharge is levied once per segment whose origin requires
// customs clearance.
const customsSurcharge = 150.0

// insuranceRate is applied to the edge's base cost.
const insuranceRate = 0.02

// SegmentBreakdown computes the per-segment cost breakdown: linehaul =
// baseCost, fuelSurcharge = fuelCost, tolls = tollCost
// (0 if absent), customs = 150 when the FROM node requires customs
// clearance, insurance = 2% of baseCost. Accessorials/detention/drayage are
// not modeled at the edge level and are always 0 here.
func SegmentBreakdown(from *domain.Node, e *domain.Edge) CostBreakdown {
	b := CostBreakdown{
		Linehaul:      e.BaseCost,
		FuelSurcharge: e.FuelCost,
		Tolls:         e.TollCost,
		Insurance:     insuranceRate * e.BaseCost,
		Currency:      "USD",
	}
	if from != nil && from.CustomsRequired {
		b.Customs = customsSurcharge
	}
	b.Total = b.Linehaul + b.FuelSurcharge + b.Accessorials + b.Detention + b.Drayage + b.Tolls + b.Customs + b.Insurance
	return b
}

// Add accumulates other's components into b, field by field, and keeps
// Total consistent. Currency is taken from whichever operand first sets
// it.
func (b CostBreakdown) Add(other CostBreakdown) CostBreakdown {
	sum := CostBreakdown{
		Linehaul:      b.Linehaul + other.Linehaul,
		FuelSurcharge: b.FuelSurcharge + other.FuelSurcharge,
		Accessorials:  b.Accessorials + other.Accessorials,
		Detention:     b.Detention + other.Detention,
		Drayage:       b.Drayage + other.Drayage,
		Tolls:         b.Tolls + other.Tolls,
		Customs:       b.Customs + other.Customs,
		Insurance:     b.Insurance + other.Insurance,
		Currency:      b.Currency,
	}
	if sum.Currency == "" {
		sum.Currency = other.Currency
	}
	sum.Total = sum.Linehaul + sum.FuelSurcharge + sum.Accessorials + sum.Detention + sum.Drayage + sum.Tolls + sum.Customs + sum.Insurance
	return sum
}
