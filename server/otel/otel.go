package otel

import (
	"context"
	"fmt"
	"net/http"

	config "github.com/inference-gateway/super8/server/config"
	promclient "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	prometheus "go.opentelemetry.io/otel/exporters/prometheus"
	metric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	zap "go.uber.org/zap"
)

// Upload outcomes recorded by RecordUpload
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// OpenTelemetry defines the operations for telemetry
//
//go:generate go tool counterfeiter -o ../mocks/fake_open_telemetry.go . OpenTelemetry
type OpenTelemetry interface {
	// HTTP level metrics
	RecordRequestCount(ctx context.Context, requestMethod, requestPath string)
	RecordResponseStatus(ctx context.Context, requestMethod, requestPath string, statusCode int)
	RecordRequestDuration(ctx context.Context, requestMethod, requestPath string, durationMs float64)

	// Lifecycle metrics
	RecordUpload(ctx context.Context, outcome string, sizeBytes int64)
	RecordJobDuration(ctx context.Context, success, timedOut bool, durationMs float64)
	RecordSweep(ctx context.Context, zone string, removed int)
	RecordSweepSkipped(ctx context.Context)

	// Handler serves the Prometheus exposition for this instance
	Handler() http.Handler

	// Shutdown the telemetry system
	ShutDown(ctx context.Context) error
}

type OpenTelemetryImpl struct {
	logger        *zap.Logger
	registry      *promclient.Registry
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter

	// Metrics
	requestCounter           metric.Int64Counter
	responseStatusCounter    metric.Int64Counter
	requestDurationHistogram metric.Float64Histogram
	uploadCounter            metric.Int64Counter
	uploadBytesCounter       metric.Int64Counter
	jobDurationHistogram     metric.Float64Histogram
	sweepRemovedCounter      metric.Int64Counter
	sweepSkippedCounter      metric.Int64Counter
}

// NewOpenTelemetry creates a new OpenTelemetry implementation with proper dependency injection
func NewOpenTelemetry(cfg *config.Config, logger *zap.Logger) (OpenTelemetry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	o := &OpenTelemetryImpl{
		logger:   logger,
		registry: promclient.NewRegistry(),
	}

	if err := o.initialize(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize opentelemetry: %w", err)
	}

	return o, nil
}

func (o *OpenTelemetryImpl) initialize(cfg *config.Config) error {
	o.logger.Info("initializing opentelemetry",
		zap.String("service_name", cfg.ServiceName),
		zap.String("version", cfg.ServiceVersion))

	exporter, err := prometheus.New(prometheus.WithRegisterer(o.registry))
	if err != nil {
		o.logger.Error("failed to create prometheus exporter", zap.Error(err))
		return err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	// Transformation runs take seconds to minutes, so the buckets reach 30 minutes.
	histogramBoundaries := []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000, 120000, 300000, 600000, 1800000}

	latencyView := sdkmetric.NewView(
		sdkmetric.Instrument{
			Kind: sdkmetric.InstrumentKindHistogram,
		},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: histogramBoundaries,
			},
		},
	)

	o.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
		sdkmetric.WithView(latencyView),
	)
	otel.SetMeterProvider(o.meterProvider)

	o.meter = o.meterProvider.Meter(cfg.ServiceName)

	if err := o.initializeMetrics(); err != nil {
		o.logger.Error("failed to initialize metrics", zap.Error(err))
		return err
	}

	o.logger.Info("opentelemetry initialized successfully")
	return nil
}

func (o *OpenTelemetryImpl) RecordRequestCount(ctx context.Context, requestMethod, requestPath string) {
	o.requestCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
	))
}

func (o *OpenTelemetryImpl) RecordResponseStatus(ctx context.Context, requestMethod, requestPath string, statusCode int) {
	o.responseStatusCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
		attribute.Int("status_code", statusCode),
	))
}

func (o *OpenTelemetryImpl) RecordRequestDuration(ctx context.Context, requestMethod, requestPath string, durationMs float64) {
	o.requestDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
	))
}

func (o *OpenTelemetryImpl) RecordUpload(ctx context.Context, outcome string, sizeBytes int64) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	o.uploadCounter.Add(ctx, 1, attrs)
	if sizeBytes > 0 {
		o.uploadBytesCounter.Add(ctx, sizeBytes, attrs)
	}
}

func (o *OpenTelemetryImpl) RecordJobDuration(ctx context.Context, success, timedOut bool, durationMs float64) {
	o.jobDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(
		attribute.Bool("success", success),
		attribute.Bool("timed_out", timedOut),
	))
}

func (o *OpenTelemetryImpl) RecordSweep(ctx context.Context, zone string, removed int) {
	o.sweepRemovedCounter.Add(ctx, int64(removed), metric.WithAttributes(
		attribute.String("zone", zone),
	))
}

func (o *OpenTelemetryImpl) RecordSweepSkipped(ctx context.Context) {
	o.sweepSkippedCounter.Add(ctx, 1)
}

func (o *OpenTelemetryImpl) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{Registry: o.registry})
}

func (o *OpenTelemetryImpl) ShutDown(ctx context.Context) error {
	return o.meterProvider.Shutdown(ctx)
}

// initializeMetrics initializes all the OpenTelemetry metrics
func (o *OpenTelemetryImpl) initializeMetrics() error {
	var err error

	o.requestCounter, err = o.meter.Int64Counter(
		"super8.requests.total",
		metric.WithDescription("Total number of HTTP requests received"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request counter: %w", err)
	}

	o.responseStatusCounter, err = o.meter.Int64Counter(
		"super8.response_status.total",
		metric.WithDescription("Total number of responses by status code"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create response status counter: %w", err)
	}

	o.requestDurationHistogram, err = o.meter.Float64Histogram(
		"super8.request_duration",
		metric.WithDescription("Duration of HTTP request processing"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	o.uploadCounter, err = o.meter.Int64Counter(
		"super8.uploads.total",
		metric.WithDescription("Total number of uploads by outcome"),
		metric.WithUnit("{upload}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create upload counter: %w", err)
	}

	o.uploadBytesCounter, err = o.meter.Int64Counter(
		"super8.upload_bytes.total",
		metric.WithDescription("Total number of uploaded bytes by outcome"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create upload bytes counter: %w", err)
	}

	o.jobDurationHistogram, err = o.meter.Float64Histogram(
		"super8.job_duration",
		metric.WithDescription("Duration of external transformation runs"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create job duration histogram: %w", err)
	}

	o.sweepRemovedCounter, err = o.meter.Int64Counter(
		"super8.sweep_removed.total",
		metric.WithDescription("Total number of artifacts evicted by the sweeper"),
		metric.WithUnit("{artifact}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sweep removed counter: %w", err)
	}

	o.sweepSkippedCounter, err = o.meter.Int64Counter(
		"super8.sweep_skipped.total",
		metric.WithDescription("Total number of sweeps skipped because another sweep held the lease"),
		metric.WithUnit("{sweep}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sweep skipped counter: %w", err)
	}

	o.logger.Debug("all opentelemetry metrics initialized successfully")
	return nil
}
