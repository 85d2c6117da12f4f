package route

import (
	"testing"

	"logistics/pkg/costkernel"
)

func TestConfidence_BandBracketsTotal(t *testing.T) {
	s := seedStore()
	r := Build(s, []string{"ny", "chicago", "la"}, costkernel.Weights{Cost: 1})
	if r == nil {
		t.Fatal("Build returned nil")
	}

	band := Confidence(r, 0.95)
	if band.TimeMin > r.TotalTime || band.TimeMax < r.TotalTime {
		t.Errorf("time band [%v, %v] does not bracket total %v", band.TimeMin, band.TimeMax, r.TotalTime)
	}
	if band.CostMin > r.TotalCost.Total || band.CostMax < r.TotalCost.Total {
		t.Errorf("cost band [%v, %v] does not bracket total %v", band.CostMin, band.CostMax, r.TotalCost.Total)
	}
}

func TestZFor_DefaultsTo95(t *testing.T) {
	if z := zFor(0.80); z != 1.96 {
		t.Errorf("zFor(0.80) = %v, want 1.96", z)
	}
	if z := zFor(0.99); z != 2.576 {
		t.Errorf("zFor(0.99) = %v, want 2.576", z)
	}
}
