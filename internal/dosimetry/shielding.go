package dosimetry

import (
	"fmt"
	"math"

	"radiation-engine/internal/model"
)

// Mass attenuation coefficients per material (cm²/g). None is 0 so an
// unshielded mission passes the full dose rate through.
var attenuationCoefficients = map[model.ShieldMaterial]float64{
	model.MaterialNone:         0.0,
	model.MaterialAluminum:     0.07,
	model.MaterialPolyethylene: 0.05,
	model.MaterialWater:        0.06,
	model.MaterialRegolith:     0.04,
}

// Attenuate returns the fraction of the incident dose rate that
// penetrates the shielding layer: exp(-thickness × coefficient).
// The factor is always in (0, 1] and strictly decreases with thickness
// for any material with a positive coefficient.
func Attenuate(material model.ShieldMaterial, thicknessGCm2 float64) (float64, error) {
	coeff, ok := attenuationCoefficients[material]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
	if thicknessGCm2 < 0 {
		return 0, fmt.Errorf("%w: got %g", ErrNegativeThickness, thicknessGCm2)
	}
	return math.Exp(-thicknessGCm2 * coeff), nil
}
