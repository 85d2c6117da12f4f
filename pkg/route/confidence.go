package route

import "math"

// zScores maps a confidence level to its standard-normal critical value.
// Levels not listed default to 1.96 (95%).
var zScores = map[float64]float64{
	0.90: 1.645,
	0.95: 1.96,
	0.99: 2.576,
}

// zFor returns the z-score for level, defaulting to the 95% value for
// any level not in the table.
func zFor(level float64) float64 {
	if z, ok := zScores[level]; ok {
		return z
	}
	return 1.96
}

// Confidence computes a symmetric band around r's totalTime and
// totalCost under a normal approximation whose variance scales with
// unreliability.
func Confidence(r *Route, level float64) ConfidenceBand {
	z := zFor(level)
	unreliability := 1 - r.Reliability

	varTime := r.TotalTime * unreliability * 0.3
	varCost := r.TotalCost.Total * unreliability * 0.2

	timeSpread := z * math.Sqrt(math.Max(varTime, 0))
	costSpread := z * math.Sqrt(math.Max(varCost, 0))

	return ConfidenceBand{
		Level:   level,
		TimeMin: math.Max(0, r.TotalTime-timeSpread),
		TimeMax: r.TotalTime + timeSpread,
		CostMin: math.Max(0, r.TotalCost.Total-costSpread),
		CostMax: r.TotalCost.Total + costSpread,
	}
}
