package costkernel

import (
	"testing"

	"logistics/pkg/domain"
)

func TestEdgeCost(t *testing.T) {
	e := &domain.Edge{BaseCost: 100, BaseTime: 60, CarbonEmissions: 0.5, Distance: 200, Reliability: 0.9}
	w := Weights{Cost: 1, Time: 1, Carbon: 1, Risk: 1}

	got := EdgeCost(e, w)
	want := 100 + 60 + 0.5*200 + (1-0.9)*100
	if got != want {
		t.Errorf("EdgeCost() = %v, want %v", got, want)
	}
}

func TestEdgeCost_NeverNegative(t *testing.T) {
	e := &domain.Edge{BaseCost: 0, BaseTime: 0, CarbonEmissions: 0, Distance: 0, Reliability: 1}
	w := Weights{}

	if got := EdgeCost(e, w); got < 0 {
		t.Errorf("EdgeCost() = %v, want >= 0", got)
	}
}

func TestReliability(t *testing.T) {
	edges := []*domain.Edge{{Reliability: 0.9}, {Reliability: 0.8}}
	got := Reliability(edges)
	want := 0.9 * 0.8
	if !domain.FloatEquals(got, want) {
		t.Errorf("Reliability() = %v, want %v", got, want)
	}
}

func TestReliability_Empty(t *testing.T) {
	if got := Reliability(nil); got != 1 {
		t.Errorf("Reliability(nil) = %v, want 1", got)
	}
}

func TestServiceLevel(t *testing.T) {
	edges := []*domain.Edge{{Reliability: 1.0}, {Reliability: 0.5}}
	got := ServiceLevel(edges)
	want := 75.0
	if !domain.FloatEquals(got, want) {
		t.Errorf("ServiceLevel() = %v, want %v", got, want)
	}
}

func TestRiskScore(t *testing.T) {
	if got := RiskScore(1.0); got != 0 {
		t.Errorf("RiskScore(1.0) = %v, want 0", got)
	}
	if got := RiskScore(0.0); got != 100 {
		t.Errorf("RiskScore(0.0) = %v, want 100", got)
	}
	if got := RiskScore(0.75); got != 25 {
		t.Errorf("RiskScore(0.75) = %v, want 25", got)
	}
}

func TestWeights_Relaxed(t *testing.T) {
	w := Weights{Cost: 1, Time: 1, Carbon: 1, Risk: 1, ServiceLevel: 1}
	r := w.Relaxed()

	if r.Cost != 0.8 {
		t.Errorf("relaxed cost = %v, want 0.8", r.Cost)
	}
	if r.Time != 1.2 {
		t.Errorf("relaxed time = %v, want 1.2", r.Time)
	}
	if r.Carbon != 0.9 {
		t.Errorf("relaxed carbon = %v, want 0.9", r.Carbon)
	}
	if r.Risk != 1.1 {
		t.Errorf("relaxed risk = %v, want 1.1", r.Risk)
	}
	if r.ServiceLevel != 1 {
		t.Errorf("relaxed serviceLevel = %v, want unchanged 1", r.ServiceLevel)
	}
}

func TestWeights_IsZero(t *testing.T) {
	if !(Weights{}).IsZero() {
		t.Error("expected zero-value Weights to be IsZero")
	}
	if (Weights{Cost: 0.1}).IsZero() {
		t.Error("expected non-zero weight to not be IsZero")
	}
}
