package model

type EvaluationResponse struct {
	EvaluationMetadata EvaluationMetadata `json:"evaluation_metadata"`
	EvaluationResult   EvaluationResult   `json:"evaluation_result"`
}

type EvaluationMetadata struct {
	EvaluationID          string `json:"evaluation_id"`
	EvaluationStartedAt   string `json:"evaluation_started_at"`
	EvaluationCompletedAt string `json:"evaluation_completed_at"`
	EvaluationDurationMs  int64  `json:"evaluation_duration_ms"`
	EvaluationOutcome     string `json:"evaluation_outcome"`
}

type EvaluationResult struct {
	Messages       []EvaluationMessage `json:"messages"`
	BaselineOrigin string              `json:"baseline_origin"`
	Dose           *DoseResult         `json:"dose,omitempty"`
	OrganDoses     []OrganDose         `json:"organ_doses,omitempty"`
	RiskLevel      RiskLevel           `json:"risk_level,omitempty"`
	SimulatedDoses []float64           `json:"simulated_doses,omitempty"`
	Simulation     *SimulationSummary  `json:"simulation_summary,omitempty"`
	Historical     []HistoricalRecord  `json:"historical_comparison,omitempty"`
	Report         *ReportSnapshot     `json:"report_snapshot,omitempty"`
}

// DoseResult is the calculator output; everything downstream fans out
// from TotalDoseMSv.
type DoseResult struct {
	AdjustedDoseRateMSvDay float64 `json:"adjusted_dose_rate_msv_day"`
	TotalDoseMSv           float64 `json:"total_dose_msv"`
}

type OrganDose struct {
	Organ   Organ   `json:"organ"`
	DoseMSv float64 `json:"dose_msv"`
}

// SimulationSummary condenses the Monte Carlo batch for display.
type SimulationSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P05    float64 `json:"p05"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
}

type HistoricalRecord struct {
	Label   string  `json:"label"`
	DoseMSv float64 `json:"dose_msv"`
}

// ReportSnapshot is the outbound structure handed to the document
// export collaborator. It carries no rendering concerns.
type ReportSnapshot struct {
	Mission          MissionProfile `json:"mission"`
	DurationDays     int            `json:"duration_days"`
	Material         ShieldMaterial `json:"material"`
	ThicknessGCm2    float64        `json:"thickness_g_cm2"`
	SolarPhase       SolarPhase     `json:"solar_phase"`
	TotalDoseMSv     float64        `json:"total_dose_msv"`
	PeakOrgan        Organ          `json:"peak_organ"`
	PeakOrganDoseMSv float64        `json:"peak_organ_dose_msv"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
