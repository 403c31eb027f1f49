package dosimetry

import (
	"fmt"

	"radiation-engine/internal/model"
)

// Solar max suppresses galactic cosmic rays, solar min lets them
// through; hence the inverted-looking multipliers.
var solarModifiers = map[model.SolarPhase]float64{
	model.SolarMax:     0.7,
	model.SolarAverage: 1.0,
	model.SolarMin:     1.3,
}

// SolarModifier returns the positive dose-rate multiplier for a
// solar-cycle phase. An unknown phase is a caller bug and is rejected
// rather than defaulted.
func SolarModifier(phase model.SolarPhase) (float64, error) {
	m, ok := solarModifiers[phase]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSolarPhase, phase)
	}
	return m, nil
}
