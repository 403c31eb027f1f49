package dosimetry

import (
	"fmt"

	"radiation-engine/internal/model"
)

// The lunar surface sits on top of the lunar-orbit baseline plus
// secondary neutrons scattered off the regolith.
const lunarSurfaceScale = 1.2

const (
	MinDurationDays = 1
	MaxDurationDays = 1000
)

// ComputeTotalDose combines the profile's baseline rate, the shielding
// factor, and the solar modifier into a total mission dose:
//
//	adjustedRate = base × shieldingFactor × solarModifier
//	totalDose    = adjustedRate × duration
//
// Duration outside [1, 1000] days is an invalid-input error, not a
// clamp; the UI slider range is a presentation concern, not a contract.
func ComputeTotalDose(profile model.MissionProfile, baseline model.RadiationBaseline, shieldingFactor, solarModifier float64, durationDays int) (model.DoseResult, error) {
	if durationDays < MinDurationDays || durationDays > MaxDurationDays {
		return model.DoseResult{}, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationDays)
	}

	var base float64
	switch profile {
	case model.MissionISS:
		base = baseline.ISS
	case model.MissionLunarOrbit:
		base = baseline.Lunar
	case model.MissionLunarSurface:
		base = baseline.Lunar * lunarSurfaceScale
	case model.MissionMarsTransit:
		base = baseline.MarsTransit
	case model.MissionDeepSpace:
		base = baseline.DeepSpace
	default:
		return model.DoseResult{}, fmt.Errorf("%w: %q", ErrUnknownMission, profile)
	}

	rate := base * shieldingFactor * solarModifier
	return model.DoseResult{
		AdjustedDoseRateMSvDay: rate,
		TotalDoseMSv:           rate * float64(durationDays),
	}, nil
}
