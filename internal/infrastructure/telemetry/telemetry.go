// Package telemetry provides OpenTelemetry and Pyroscope integration:
// tracing, metrics, the zap log bridge and continuous profiling.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// ServiceVersion is reported on every exported resource.
var ServiceVersion = "dev"

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// SetupConfig gathers the settings for every telemetry signal.
type SetupConfig struct {
	Tracing   Config
	Metrics   MetricsConfig
	Logs      LogsConfig
	Profiling ProfilerConfig
}

// Providers owns the telemetry providers started by Setup.
type Providers struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler
	logger   *zap.Logger
}

// Setup starts the tracer, meter and logger providers and the profiler.
// Providers that are disabled in cfg are returned as no-op wrappers.
// Span profiles are linked to traces when both tracing and profiling run.
func Setup(ctx context.Context, cfg SetupConfig, logger *zap.Logger) (*Providers, error) {
	p := &Providers{logger: logger}

	var err error
	if p.Tracer, err = NewTracerProvider(ctx, cfg.Tracing, logger); err != nil {
		return nil, err
	}
	if p.Meter, err = NewMeterProvider(ctx, cfg.Metrics, logger); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}
	if p.Logs, err = NewLoggerProvider(ctx, cfg.Logs, logger); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}
	if p.Profiler, err = NewProfiler(cfg.Profiling, logger); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	if p.Profiler.IsEnabled() && p.Tracer.IsEnabled() {
		if err := p.Tracer.EnableSpanProfiles(); err != nil {
			logger.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	logger.Info("Telemetry initialized",
		zap.Bool("tracing", p.Tracer.IsEnabled()),
		zap.Bool("metrics", p.Meter.IsEnabled()),
		zap.Bool("logs", p.Logs.IsEnabled()),
		zap.Bool("profiling", p.Profiler.IsEnabled()),
		zap.Bool("span_profiles", p.Tracer.IsSpanProfilesEnabled()),
	)
	return p, nil
}

// Shutdown stops the providers in reverse start order and joins their errors.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Profiler != nil {
		errs = append(errs, p.Profiler.Stop())
	}
	if p.Logs != nil {
		errs = append(errs, p.Logs.Shutdown(ctx))
	}
	if p.Meter != nil {
		errs = append(errs, p.Meter.Shutdown(ctx))
	}
	if p.Tracer != nil {
		errs = append(errs, p.Tracer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
