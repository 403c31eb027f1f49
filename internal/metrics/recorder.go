package metrics

import "context"

// Recorder receives evaluation-level observability signals.
type Recorder interface {
	// Evaluation records a finished evaluation with its outcome and,
	// for successful ones, the computed total dose in mSv.
	Evaluation(ctx context.Context, outcome string, totalDoseMSv float64)
	// BaselineFallback counts a degraded baseline fetch.
	BaselineFallback(ctx context.Context)
}

// NoOp discards all signals. Used when no collector is configured.
type NoOp struct{}

func (NoOp) Evaluation(ctx context.Context, outcome string, totalDoseMSv float64) {}

func (NoOp) BaselineFallback(ctx context.Context) {}
