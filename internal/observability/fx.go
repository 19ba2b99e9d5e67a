package observability

import (
	"time"

	"go.uber.org/fx"

	"github.com/vottam/vottam/internal/observability/logger"
	"github.com/vottam/vottam/internal/observability/metrics"
)

func provideLoggerConfig(cfg Config) logger.Config {
	return logger.Config{
		ServiceName:        cfg.ServiceName,
		Environment:        cfg.Environment,
		Version:            cfg.Version,
		Level:              cfg.LogLevel,
		Format:             cfg.LogFormat,
		SamplingInitial:    100,
		SamplingThereafter: 100,
		SamplingWindow:     time.Second,
		IncludeCaller:      true,
		StackOnError:       true,
	}
}

func provideMetricsConfig(cfg Config) metrics.Config {
	return metrics.Config{
		Enabled:          cfg.OtelEnabled,
		ExporterEndpoint: cfg.OtelExporterEndpoint,
		ExporterProtocol: cfg.OtelExporterProtocol,
		ServiceName:      cfg.ServiceName,
		Environment:      cfg.Environment,
	}
}

// Module wires logging and metrics for the application.
var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		provideLoggerConfig,
		logger.New,
		provideMetricsConfig,
		metrics.NewProvider,
		metrics.New,
		metrics.NewHTTPMetrics,
	),
)
