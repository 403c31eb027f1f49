package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"radiation-engine/internal/baselines"
	"radiation-engine/internal/dosimetry"
	"radiation-engine/internal/model"
	"radiation-engine/internal/montecarlo"
	"radiation-engine/internal/report"
)

// Thickness range accepted from the parameter layer (g/cm²).
const maxThicknessGCm2 = 50

// Process runs one full dose evaluation: shielding and solar scalars
// combine with the baseline into a total dose, which fans out to the
// organ breakdown, risk tier, Monte Carlo batch, historical comparison,
// and report snapshot. Input violations fail fast with a CRITICAL
// message and a FAILURE outcome; a degraded baseline fetch only adds a
// WARNING advisory. No failure here affects later evaluations.
func Process(req *model.EvaluationRequest, data baselines.Result, sim *montecarlo.Simulator) *model.EvaluationResponse {
	start := time.Now()

	var messages []model.EvaluationMessage
	addMessage := func(level, code, text string) {
		messages = append(messages, model.EvaluationMessage{
			ID:      len(messages),
			Level:   level,
			Code:    code,
			Message: text,
		})
	}

	if data.Degraded {
		if len(data.Substituted) > 0 {
			addMessage(model.LevelWarning, "BASELINE_PARTIAL",
				fmt.Sprintf("Live feed missing keys, substituted defaults for: %s", strings.Join(data.Substituted, ", ")))
		} else {
			addMessage(model.LevelWarning, "BASELINE_FALLBACK",
				"Could not fetch live radiation data, using fallback values")
		}
	}

	result := model.EvaluationResult{BaselineOrigin: string(data.Origin)}

	fail := func(code string, err error) *model.EvaluationResponse {
		addMessage(model.LevelCritical, code, err.Error())
		result.Messages = messages
		return respond(start, model.OutcomeFailure, result)
	}

	if req.ThicknessGCm2 > maxThicknessGCm2 {
		return fail("INVALID_THICKNESS",
			fmt.Errorf("thickness must be at most %d g/cm², got %g", maxThicknessGCm2, req.ThicknessGCm2))
	}

	shieldingFactor, err := dosimetry.Attenuate(req.Material, req.ThicknessGCm2)
	if err != nil {
		return fail(codeFor(err), err)
	}

	solarModifier, err := dosimetry.SolarModifier(req.SolarPhase)
	if err != nil {
		return fail(codeFor(err), err)
	}

	dose, err := dosimetry.ComputeTotalDose(req.Mission, data.Baseline, shieldingFactor, solarModifier, req.DurationDays)
	if err != nil {
		return fail(codeFor(err), err)
	}

	sampleCount := req.SampleCount
	if sampleCount == 0 {
		sampleCount = montecarlo.DefaultSampleCount
	}
	samples, err := sim.Simulate(dose.TotalDoseMSv, sampleCount)
	if err != nil {
		return fail("INVALID_SAMPLE_COUNT", err)
	}

	organs := dosimetry.OrganBreakdown(dose.TotalDoseMSv)
	organDoses := make([]model.OrganDose, 0, len(organs))
	for _, organ := range dosimetry.OrganOrder {
		organDoses = append(organDoses, model.OrganDose{Organ: organ, DoseMSv: organs[organ]})
	}

	summary := montecarlo.Summarize(samples)
	snapshot := report.Build(req, dose, organs)

	if messages == nil {
		messages = []model.EvaluationMessage{}
	}

	result.Messages = messages
	result.Dose = &dose
	result.OrganDoses = organDoses
	result.RiskLevel = dosimetry.ClassifyRisk(dose.TotalDoseMSv)
	result.SimulatedDoses = samples
	result.Simulation = &summary
	result.Historical = dosimetry.HistoricalComparison(dose.TotalDoseMSv)
	result.Report = &snapshot

	return respond(start, model.OutcomeSuccess, result)
}

func respond(start time.Time, outcome string, result model.EvaluationResult) *model.EvaluationResponse {
	elapsed := time.Since(start)
	now := time.Now().UTC()

	if result.Messages == nil {
		result.Messages = []model.EvaluationMessage{}
	}

	return &model.EvaluationResponse{
		EvaluationMetadata: model.EvaluationMetadata{
			EvaluationID:          uuid.New().String(),
			EvaluationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			EvaluationCompletedAt: now.Format(time.RFC3339),
			EvaluationDurationMs:  elapsed.Milliseconds(),
			EvaluationOutcome:     outcome,
		},
		EvaluationResult: result,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, dosimetry.ErrUnknownMission):
		return "UNKNOWN_MISSION"
	case errors.Is(err, dosimetry.ErrUnknownMaterial):
		return "UNKNOWN_MATERIAL"
	case errors.Is(err, dosimetry.ErrUnknownSolarPhase):
		return "UNKNOWN_SOLAR_PHASE"
	case errors.Is(err, dosimetry.ErrNegativeThickness):
		return "INVALID_THICKNESS"
	case errors.Is(err, dosimetry.ErrInvalidDuration):
		return "INVALID_DURATION"
	default:
		return "INVALID_INPUT"
	}
}
