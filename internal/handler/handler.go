package handler

import (
	"math/rand/v2"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"radiation-engine/internal/baselines"
	"radiation-engine/internal/engine"
	"radiation-engine/internal/metrics"
	"radiation-engine/internal/model"
	"radiation-engine/internal/montecarlo"
)

// Handler wires the HTTP surface to the evaluation engine. It owns the
// baseline source and the metrics recorder; the engine itself is pure.
type Handler struct {
	baselines *baselines.Source
	metrics   metrics.Recorder
}

func New(src *baselines.Source, rec metrics.Recorder) *Handler {
	return &Handler{baselines: src, metrics: rec}
}

// HandleEvaluation serves POST /: decode the parameter set, fetch the
// baseline (fallback on failure), run the engine, encode the response.
func (h *Handler) HandleEvaluation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.EvaluationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	data := h.baselines.Fetch()
	if data.Degraded {
		h.metrics.BaselineFallback(ctx)
	}

	// Fresh seed per evaluation unless the request pins one.
	seed := rand.Uint64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	resp := engine.Process(&req, data, montecarlo.NewSeeded(seed))

	var totalDose float64
	if resp.EvaluationResult.Dose != nil {
		totalDose = resp.EvaluationResult.Dose.TotalDoseMSv
	}
	h.metrics.Evaluation(ctx, resp.EvaluationMetadata.EvaluationOutcome, totalDose)

	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response: "+err.Error())
		return
	}

	ctx.SetContentType("application/json")
	ctx.Write(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.Write(body)
}
