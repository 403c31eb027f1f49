package dosimetry

import "radiation-engine/internal/model"

// NASA exposure limits: 500 mSv is the 1-year limit, 1000 mSv the
// career limit. Boundary values belong to the lower tier.
const (
	annualLimitMSv = 500
	careerLimitMSv = 1000
)

// ClassifyRisk maps a total dose to its risk tier.
func ClassifyRisk(totalDoseMSv float64) model.RiskLevel {
	switch {
	case totalDoseMSv > careerLimitMSv:
		return model.RiskDanger
	case totalDoseMSv > annualLimitMSv:
		return model.RiskWarning
	default:
		return model.RiskSafe
	}
}
