package report

import (
	"radiation-engine/internal/dosimetry"
	"radiation-engine/internal/model"
)

// Build assembles the snapshot handed to the document export layer.
// The peak organ is resolved in fixed presentation order so ties are
// deterministic.
func Build(req *model.EvaluationRequest, dose model.DoseResult, organs model.OrganDoseMap) model.ReportSnapshot {
	var peak model.Organ
	var peakDose float64
	for _, organ := range dosimetry.OrganOrder {
		if d, ok := organs[organ]; ok && (peak == "" || d > peakDose) {
			peak = organ
			peakDose = d
		}
	}

	return model.ReportSnapshot{
		Mission:          req.Mission,
		DurationDays:     req.DurationDays,
		Material:         req.Material,
		ThicknessGCm2:    req.ThicknessGCm2,
		SolarPhase:       req.SolarPhase,
		TotalDoseMSv:     dose.TotalDoseMSv,
		PeakOrgan:        peak,
		PeakOrganDoseMSv: peakDose,
	}
}
