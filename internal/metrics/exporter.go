package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "radiation-engine"
	serviceVersion = "1.0.0"
)

// Exporter pushes evaluation metrics to an OTEL collector over OTLP gRPC.
type Exporter struct {
	provider         *sdkmetric.MeterProvider
	evaluationsTotal metric.Int64Counter
	fallbacksTotal   metric.Int64Counter
	doseHist         metric.Float64Histogram
}

// NewExporter connects to the collector at endpoint and registers the
// evaluation instruments.
func NewExporter(ctx context.Context, endpoint string, insecureConn bool) (*Exporter, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(endpoint),
	}
	if insecureConn {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	evaluationsTotal, err := meter.Int64Counter(
		"radiation_evaluations_total",
		metric.WithDescription("Total dose evaluations by outcome"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating evaluations counter: %w", err)
	}

	fallbacksTotal, err := meter.Int64Counter(
		"radiation_baseline_fallbacks_total",
		metric.WithDescription("Baseline fetches that fell back to default values"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fallbacks counter: %w", err)
	}

	doseHist, err := meter.Float64Histogram(
		"radiation_total_dose_msv",
		metric.WithDescription("Computed total mission dose"),
		metric.WithUnit("mSv"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dose histogram: %w", err)
	}

	return &Exporter{
		provider:         provider,
		evaluationsTotal: evaluationsTotal,
		fallbacksTotal:   fallbacksTotal,
		doseHist:         doseHist,
	}, nil
}

func (e *Exporter) Evaluation(ctx context.Context, outcome string, totalDoseMSv float64) {
	opt := metric.WithAttributes(attribute.String("outcome", outcome))
	e.evaluationsTotal.Add(ctx, 1, opt)
	if totalDoseMSv > 0 {
		e.doseHist.Record(ctx, totalDoseMSv, opt)
	}
}

func (e *Exporter) BaselineFallback(ctx context.Context) {
	e.fallbacksTotal.Add(ctx, 1)
}

// Close shuts down the provider and flushes pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
