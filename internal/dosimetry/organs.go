package dosimetry

import "radiation-engine/internal/model"

// Organ sensitivity factors convert whole-body dose to organ-equivalent
// dose. OrganOrder fixes the presentation order so output is stable.
var OrganOrder = []model.Organ{
	model.OrganSkin,
	model.OrganEyes,
	model.OrganBoneMarrow,
	model.OrganBrain,
	model.OrganHeart,
}

var organSensitivities = map[model.Organ]float64{
	model.OrganSkin:       1.1,
	model.OrganEyes:       1.5,
	model.OrganBoneMarrow: 1.0,
	model.OrganBrain:      0.8,
	model.OrganHeart:      0.9,
}

// OrganBreakdown distributes a total dose across organs by fixed
// sensitivity factors. Total for any non-negative input.
func OrganBreakdown(totalDoseMSv float64) model.OrganDoseMap {
	doses := make(model.OrganDoseMap, len(organSensitivities))
	for organ, factor := range organSensitivities {
		doses[organ] = totalDoseMSv * factor
	}
	return doses
}
