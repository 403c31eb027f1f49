package model

// EvaluationRequest carries one mission parameter set. Every evaluation
// is self-contained; nothing is held between requests.
type EvaluationRequest struct {
	Mission       MissionProfile `json:"mission"`
	Material      ShieldMaterial `json:"material"`
	ThicknessGCm2 float64        `json:"thickness_g_cm2"`
	SolarPhase    SolarPhase     `json:"solar_phase"`
	DurationDays  int            `json:"duration_days"`

	// SampleCount overrides the Monte Carlo batch size (default 1000).
	SampleCount int `json:"sample_count,omitempty"`
	// Seed pins the simulator RNG so the sample batch is reproducible.
	Seed *uint64 `json:"seed,omitempty"`
}
