package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	scoreRecomputes    metric.Int64Counter
	swapsServed        metric.Int64Counter
	assistantFallbacks metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	return provider, nil
}

// New configures the domain metric instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "vottam"
	}
	meter := provider.Meter(name)

	scoreRecomputes, err := meter.Int64Counter("vottam_score_recomputes_total")
	if err != nil {
		return nil, err
	}
	swapsServed, err := meter.Int64Counter("vottam_swaps_served_total")
	if err != nil {
		return nil, err
	}
	assistantFallbacks, err := meter.Int64Counter("vottam_assistant_fallbacks_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		scoreRecomputes:    scoreRecomputes,
		swapsServed:        swapsServed,
		assistantFallbacks: assistantFallbacks,
	}, nil
}

// RecordScoreRecompute counts products touched by a batch recompute run.
func (m *Metrics) RecordScoreRecompute(ctx context.Context, products int64) {
	if m == nil {
		return
	}
	m.scoreRecomputes.Add(ctx, products)
}

// RecordSwapServed counts swap lookups by outcome.
func (m *Metrics) RecordSwapServed(ctx context.Context, swapType string) {
	if m == nil {
		return
	}
	m.swapsServed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("swap_type", strings.TrimSpace(swapType)),
	))
}

// RecordAssistantFallback counts generative-text failures that fell back
// to a templated response.
func (m *Metrics) RecordAssistantFallback(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.assistantFallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", strings.TrimSpace(operation)),
	))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}
