package engine

import (
	"math"
	"testing"

	"radiation-engine/internal/baselines"
	"radiation-engine/internal/model"
	"radiation-engine/internal/montecarlo"
)

func validRequest() *model.EvaluationRequest {
	return &model.EvaluationRequest{
		Mission:       model.MissionISS,
		Material:      model.MaterialAluminum,
		ThicknessGCm2: 10,
		SolarPhase:    model.SolarAverage,
		DurationDays:  180,
	}
}

func fallbackData() baselines.Result {
	return baselines.Result{
		Baseline: baselines.Fallback,
		Origin:   baselines.OriginFallback,
	}
}

func TestProcessISSMission(t *testing.T) {
	resp := Process(validRequest(), fallbackData(), montecarlo.NewSeeded(1))

	if resp.EvaluationMetadata.EvaluationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if resp.EvaluationMetadata.EvaluationID == "" {
		t.Fatal("expected an evaluation ID")
	}

	result := resp.EvaluationResult
	if len(result.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(result.Messages))
	}
	if result.BaselineOrigin != "FALLBACK" {
		t.Fatalf("expected FALLBACK origin, got %s", result.BaselineOrigin)
	}

	if result.Dose == nil {
		t.Fatal("expected a dose result")
	}
	if math.Abs(result.Dose.TotalDoseMSv-26.82) > 0.01 {
		t.Fatalf("expected total dose ~26.82 mSv, got %g", result.Dose.TotalDoseMSv)
	}
	if result.RiskLevel != model.RiskSafe {
		t.Fatalf("expected SAFE, got %s", result.RiskLevel)
	}

	if len(result.OrganDoses) != 5 {
		t.Fatalf("expected 5 organ doses, got %d", len(result.OrganDoses))
	}
	if result.OrganDoses[1].Organ != model.OrganEyes {
		t.Fatalf("expected Eyes second in presentation order, got %s", result.OrganDoses[1].Organ)
	}
	if math.Abs(result.OrganDoses[1].DoseMSv-1.5*result.Dose.TotalDoseMSv) > 1e-9 {
		t.Fatalf("eyes dose must be 1.5x total, got %g", result.OrganDoses[1].DoseMSv)
	}

	if len(result.SimulatedDoses) != montecarlo.DefaultSampleCount {
		t.Fatalf("expected %d samples, got %d", montecarlo.DefaultSampleCount, len(result.SimulatedDoses))
	}
	if result.Simulation == nil {
		t.Fatal("expected a simulation summary")
	}

	if len(result.Historical) != 4 {
		t.Fatalf("expected 4 historical records, got %d", len(result.Historical))
	}
	last := result.Historical[3]
	if last.Label != "Your Mission" || last.DoseMSv != result.Dose.TotalDoseMSv {
		t.Fatalf("unexpected Your Mission record: %+v", last)
	}

	if result.Report == nil {
		t.Fatal("expected a report snapshot")
	}
	if result.Report.PeakOrgan != model.OrganEyes {
		t.Fatalf("expected Eyes as peak organ, got %s", result.Report.PeakOrgan)
	}
	if result.Report.DurationDays != 180 || result.Report.Mission != model.MissionISS {
		t.Fatalf("unexpected report snapshot: %+v", result.Report)
	}
}

func TestProcessDegradedBaselineAdvisory(t *testing.T) {
	data := fallbackData()
	data.Degraded = true

	resp := Process(validRequest(), data, montecarlo.NewSeeded(1))

	if resp.EvaluationMetadata.EvaluationOutcome != "SUCCESS" {
		t.Fatalf("a degraded baseline is advisory, not fatal; got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	msgs := resp.EvaluationResult.Messages
	if len(msgs) != 1 {
		t.Fatalf("expected 1 advisory, got %d", len(msgs))
	}
	if msgs[0].Level != model.LevelWarning || msgs[0].Code != "BASELINE_FALLBACK" {
		t.Fatalf("unexpected advisory: %+v", msgs[0])
	}
}

func TestProcessPartialBaselineAdvisory(t *testing.T) {
	data := baselines.Result{
		Baseline:    baselines.Fallback,
		Origin:      baselines.OriginLive,
		Degraded:    true,
		Substituted: []string{"lunar", "deep_space"},
	}

	resp := Process(validRequest(), data, montecarlo.NewSeeded(1))
	msgs := resp.EvaluationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != "BASELINE_PARTIAL" {
		t.Fatalf("expected BASELINE_PARTIAL advisory, got %+v", msgs)
	}
}

func TestProcessUnknownMaterial(t *testing.T) {
	req := validRequest()
	req.Material = "lead"

	resp := Process(req, fallbackData(), montecarlo.NewSeeded(1))

	if resp.EvaluationMetadata.EvaluationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	msgs := resp.EvaluationResult.Messages
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Level != model.LevelCritical || msgs[0].Code != "UNKNOWN_MATERIAL" {
		t.Fatalf("unexpected message: %+v", msgs[0])
	}
	if resp.EvaluationResult.Dose != nil {
		t.Fatal("failed evaluation must not carry a dose result")
	}
}

func TestProcessInvalidDuration(t *testing.T) {
	req := validRequest()
	req.DurationDays = 1001

	resp := Process(req, fallbackData(), montecarlo.NewSeeded(1))
	if resp.EvaluationMetadata.EvaluationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if resp.EvaluationResult.Messages[0].Code != "INVALID_DURATION" {
		t.Fatalf("expected INVALID_DURATION, got %s", resp.EvaluationResult.Messages[0].Code)
	}
}

func TestProcessThicknessAboveRange(t *testing.T) {
	req := validRequest()
	req.ThicknessGCm2 = 51

	resp := Process(req, fallbackData(), montecarlo.NewSeeded(1))
	if resp.EvaluationMetadata.EvaluationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if resp.EvaluationResult.Messages[0].Code != "INVALID_THICKNESS" {
		t.Fatalf("expected INVALID_THICKNESS, got %s", resp.EvaluationResult.Messages[0].Code)
	}
}

func TestProcessNegativeThickness(t *testing.T) {
	req := validRequest()
	req.ThicknessGCm2 = -1

	resp := Process(req, fallbackData(), montecarlo.NewSeeded(1))
	if resp.EvaluationMetadata.EvaluationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.EvaluationMetadata.EvaluationOutcome)
	}
	if resp.EvaluationResult.Messages[0].Code != "INVALID_THICKNESS" {
		t.Fatalf("expected INVALID_THICKNESS, got %s", resp.EvaluationResult.Messages[0].Code)
	}
}

func TestProcessUnknownSolarPhase(t *testing.T) {
	req := validRequest()
	req.SolarPhase = "quiet"

	resp := Process(req, fallbackData(), montecarlo.NewSeeded(1))
	if resp.EvaluationResult.Messages[0].Code != "UNKNOWN_SOLAR_PHASE" {
		t.Fatalf("expected UNKNOWN_SOLAR_PHASE, got %s", resp.EvaluationResult.Messages[0].Code)
	}
}

func TestProcessSeededBatchReproducible(t *testing.T) {
	a := Process(validRequest(), fallbackData(), montecarlo.NewSeeded(99))
	b := Process(validRequest(), fallbackData(), montecarlo.NewSeeded(99))

	sa, sb := a.EvaluationResult.SimulatedDoses, b.EvaluationResult.SimulatedDoses
	if len(sa) != len(sb) {
		t.Fatalf("batch sizes differ: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("same seed must reproduce the batch, diverged at %d", i)
		}
	}
}

func TestProcessCustomSampleCount(t *testing.T) {
	req := validRequest()
	req.SampleCount = 50

	resp := Process(req, fallbackData(), montecarlo.NewSeeded(1))
	if len(resp.EvaluationResult.SimulatedDoses) != 50 {
		t.Fatalf("expected 50 samples, got %d", len(resp.EvaluationResult.SimulatedDoses))
	}

	req.SampleCount = -1
	resp = Process(req, fallbackData(), montecarlo.NewSeeded(1))
	if resp.EvaluationMetadata.EvaluationOutcome != "FAILURE" {
		t.Fatal("negative sample count must fail the evaluation")
	}
	if resp.EvaluationResult.Messages[0].Code != "INVALID_SAMPLE_COUNT" {
		t.Fatalf("expected INVALID_SAMPLE_COUNT, got %s", resp.EvaluationResult.Messages[0].Code)
	}
}
