package montecarlo

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DefaultSampleCount matches the histogram batch shown in the UI.
	DefaultSampleCount = 1000
	MaxSampleCount     = 200000

	// Coefficient of variation representing space-weather variability.
	doseCV = 0.25
)

// Simulator draws simulated total-dose populations. The random source
// is injected so tests can pin a seed.
type Simulator struct {
	rng *rand.Rand
}

func New(src rand.Source) *Simulator {
	return &Simulator{rng: rand.New(src)}
}

func NewSeeded(seed uint64) *Simulator {
	return New(rand.NewPCG(seed, seed))
}

// Simulate draws sampleCount independent doses from a normal
// distribution with mean totalDose and standard deviation 25% of it.
// A non-positive mean degenerates to a zero-variance point mass, so a
// zero-dose mission never divides by a zero spread.
func (s *Simulator) Simulate(totalDoseMSv float64, sampleCount int) ([]float64, error) {
	if sampleCount < 1 || sampleCount > MaxSampleCount {
		return nil, fmt.Errorf("sample count must be between 1 and %d, got %d", MaxSampleCount, sampleCount)
	}

	samples := make([]float64, sampleCount)
	if totalDoseMSv <= 0 {
		for i := range samples {
			samples[i] = totalDoseMSv
		}
		return samples, nil
	}

	sigma := totalDoseMSv * doseCV
	for i := range samples {
		samples[i] = totalDoseMSv + sigma*s.rng.NormFloat64()
	}
	return samples, nil
}
