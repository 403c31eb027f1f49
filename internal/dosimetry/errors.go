package dosimetry

import "errors"

// Input contract violations. These fail fast instead of clamping so a
// caller bug cannot silently corrupt the downstream risk classification.
var (
	ErrUnknownMission    = errors.New("unknown mission profile")
	ErrUnknownMaterial   = errors.New("unknown shielding material")
	ErrUnknownSolarPhase = errors.New("unknown solar phase")
	ErrNegativeThickness = errors.New("thickness must be non-negative")
	ErrInvalidDuration   = errors.New("duration must be between 1 and 1000 days")
)
