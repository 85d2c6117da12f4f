package route

import (
	"testing"

	"logistics/pkg/costkernel"
	"logistics/pkg/domain"
)

func seedStore() *domain.Store {
	s := domain.NewStore()
	s.AddNode(&domain.Node{ID: "ny", Name: "New York", Type: domain.NodeTypeHub, CustomsRequired: true})
	s.AddNode(&domain.Node{ID: "chicago", Name: "Chicago", Type: domain.NodeTypeHub})
	s.AddNode(&domain.Node{ID: "la", Name: "Los Angeles", Type: domain.NodeTypeHub})

	s.AddEdge(&domain.Edge{ID: "ny-chicago", Source: "ny", Target: "chicago",
		Mode: domain.ModeRoad, Distance: 1270, BaseTime: 780, BaseCost: 400,
		Reliability: 0.95, CarbonEmissions: 0.1, FuelCost: 50, TollCost: 10})
	s.AddEdge(&domain.Edge{ID: "chicago-la", Source: "chicago", Target: "la",
		Mode: domain.ModeRail, Distance: 2800, BaseTime: 2400, BaseCost: 600,
		Reliability: 0.9, CarbonEmissions: 0.05, FuelCost: 80})

	return s
}

func TestBuild_AccumulatesTotals(t *testing.T) {
	s := seedStore()
	r := Build(s, []string{"ny", "chicago", "la"}, costkernel.Weights{Cost: 1})
	if r == nil {
		t.Fatal("Build returned nil")
	}
	if len(r.Segments) != 2 {
		t.Fatalf("len(Segments) = %d, want 2", len(r.Segments))
	}
	if r.TotalDistance != 1270+2800 {
		t.Errorf("TotalDistance = %v, want %v", r.TotalDistance, 1270+2800)
	}
	if r.TotalCost.Total != r.Segments[0].Cost.Total+r.Segments[1].Cost.Total {
		t.Errorf("TotalCost.Total = %v, does not equal sum of segment totals", r.TotalCost.Total)
	}
	// ny requires customs; that surcharge should appear on the first segment.
	if r.Segments[0].Cost.Customs != 150 {
		t.Errorf("Segments[0].Cost.Customs = %v, want 150", r.Segments[0].Cost.Customs)
	}
	if r.Segments[1].Cost.Customs != 0 {
		t.Errorf("Segments[1].Cost.Customs = %v, want 0", r.Segments[1].Cost.Customs)
	}
}

func TestBuild_SkipsUnmatchedPair(t *testing.T) {
	s := seedStore()
	s.AddNode(&domain.Node{ID: "island", Name: "Island", Type: domain.NodeTypeHub})

	r := Build(s, []string{"ny", "island"}, costkernel.Weights{Cost: 1})
	if r != nil {
		t.Errorf("Build = %v, want nil for unmatched pair", r)
	}
}

func TestBuild_EmptySequence(t *testing.T) {
	s := seedStore()
	if r := Build(s, []string{}, costkernel.Weights{Cost: 1}); r != nil {
		t.Errorf("Build with empty sequence = %v, want nil", r)
	}
}

func TestBuild_SameNodeYieldsZeroSegmentRoute(t *testing.T) {
	s := seedStore()
	r := Build(s, []string{"ny"}, costkernel.Weights{Cost: 1})
	if r == nil {
		t.Fatal("Build with single node = nil, want a zero-segment Route")
	}
	if len(r.Segments) != 0 {
		t.Errorf("len(Segments) = %d, want 0", len(r.Segments))
	}
	if r.Reliability != 1 {
		t.Errorf("Reliability = %v, want 1", r.Reliability)
	}
	if r.TotalDistance != 0 || r.TotalTime != 0 || r.TotalCarbon != 0 {
		t.Errorf("totals = (%v, %v, %v), want all zero", r.TotalDistance, r.TotalTime, r.TotalCarbon)
	}
}
