package montecarlo

import (
	"math"
	"sort"

	"radiation-engine/internal/model"
)

// Summarize reduces a sample batch to the statistics the presentation
// layer overlays on the histogram. Empty input yields a zero summary.
func Summarize(samples []float64) model.SimulationSummary {
	n := len(samples)
	if n == 0 {
		return model.SimulationSummary{}
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	return model.SimulationSummary{
		Mean:   mean,
		StdDev: math.Sqrt(sq / float64(n)),
		P05:    percentile(sorted, 0.05),
		P50:    percentile(sorted, 0.50),
		P95:    percentile(sorted, 0.95),
	}
}

// percentile uses the nearest-rank method over a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	rank := int(math.Ceil(p * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
