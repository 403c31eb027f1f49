package main

import (
	"context"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/valyala/fasthttp"

	"radiation-engine/internal/baselines"
	"radiation-engine/internal/handler"
	"radiation-engine/internal/metrics"
)

type config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	BaselineURL  string        `env:"BASELINE_URL" envDefault:"https://swe.ssa.esa.int/radiation/api/data/latest"`
	BaselineTTL  time.Duration `env:"BASELINE_TTL" envDefault:"1h"`
	OTELEndpoint string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTELInsecure bool          `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var recorder metrics.Recorder = metrics.NoOp{}
	if cfg.OTELEndpoint != "" {
		exporter, err := metrics.NewExporter(context.Background(), cfg.OTELEndpoint, cfg.OTELInsecure)
		if err != nil {
			log.Printf("Metrics disabled: %v", err)
		} else {
			defer exporter.Close(context.Background())
			recorder = exporter
		}
	}

	src := baselines.New(cfg.BaselineURL, cfg.BaselineTTL)
	h := handler.New(src, recorder)

	log.Printf("Radiation engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.HandleEvaluation); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
