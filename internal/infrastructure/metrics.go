//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	metricsNamespace = "project_messaging"
)

type (
	//counterfeiter:generate -o ../mocks/metrics.go . Metrics

	Metrics interface {
		RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64)
		RecordPublish(ctx context.Context, contentType string, duration time.Duration, success bool)
		RecordDelivery(ctx context.Context, outcome domain.ProcessingOutcome, redelivered bool, duration time.Duration)
		RecordAckFailure(ctx context.Context, operation string)
		RecordConnectAttempt(ctx context.Context, success bool)
		RecordWorkerState(ctx context.Context, state domain.WorkerState)
		RecordCommand(ctx context.Context, key string, value int64)
		Handler() http.Handler
		Shutdown(ctx context.Context) error
	}

	OTELMetrics struct {
		meterProvider *sdkmetric.MeterProvider
		meter         metric.Meter
		logger        Logger

		httpRequestTotal    metric.Int64Counter
		httpRequestDuration metric.Float64Histogram
		httpRequestSize     metric.Int64Histogram
		httpResponseSize    metric.Int64Histogram
		publishTotal        metric.Int64Counter
		publishDuration     metric.Float64Histogram
		publishErrorTotal   metric.Int64Counter
		deliveryTotal       metric.Int64Counter
		deliveryDuration    metric.Float64Histogram
		redeliveryTotal     metric.Int64Counter
		ackErrorTotal       metric.Int64Counter
		connectAttemptTotal metric.Int64Counter
		workerTransitions   metric.Int64Counter
		commandTotal        metric.Int64Counter
	}
)

func NewMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (Metrics, error) {
	if !cfg.Telemetry.Metrics.Enabled {
		logger.Info().Msg("metrics disabled, using NoOp implementation")

		return &NoOpMetrics{}, nil
	}

	return NewOTELMetrics(ctx, cfg, logger)
}

func NewOTELMetrics(ctx context.Context, cfg config.ServiceConfig, logger Logger) (*OTELMetrics, error) {
	endpoint := fmt.Sprintf("%s:%s", cfg.Telemetry.OtelGRPCHost, cfg.Telemetry.OtelGRPCPort)

	conn, err := grpc.NewClient(
		endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTEL collector: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	res, err := newResource(ctx, cfg.AppConfig)
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		metricsNamespace,
		metric.WithInstrumentationVersion(cfg.AppConfig.ServiceVersion),
	)

	provider := &OTELMetrics{
		meterProvider: meterProvider,
		meter:         meter,
		logger:        logger.Component("metrics"),
	}

	if err := provider.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Info().
		Str("otel_endpoint", endpoint).
		Msg("OTEL metrics provider initialized successfully")

	return provider, nil
}

func newResource(ctx context.Context, app config.AppConfig) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(app.ServiceName),
			semconv.ServiceVersionKey.String(app.ServiceVersion),
			semconv.ServiceInstanceIDKey.String(app.CommitSHA),
			semconv.DeploymentEnvironmentKey.String(app.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return res, nil
}

func (om *OTELMetrics) initializeMetrics() error {
	var err error

	om.httpRequestTotal, err = om.meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests served by the ops server"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	om.httpRequestDuration, err = om.meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	om.httpRequestSize, err = om.meter.Int64Histogram(
		"http_request_size_bytes",
		metric.WithDescription("HTTP request size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_request_size_bytes histogram: %w", err)
	}

	om.httpResponseSize, err = om.meter.Int64Histogram(
		"http_response_size_bytes",
		metric.WithDescription("HTTP response size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return fmt.Errorf("failed to create http_response_size_bytes histogram: %w", err)
	}

	om.publishTotal, err = om.meter.Int64Counter(
		"messages_published_total",
		metric.WithDescription("Total number of publish calls"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create messages_published_total counter: %w", err)
	}

	om.publishDuration, err = om.meter.Float64Histogram(
		"publish_duration_seconds",
		metric.WithDescription("Publish duration in seconds, connection included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create publish_duration_seconds histogram: %w", err)
	}

	om.publishErrorTotal, err = om.meter.Int64Counter(
		"publish_errors_total",
		metric.WithDescription("Total number of failed publish calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create publish_errors_total counter: %w", err)
	}

	om.deliveryTotal, err = om.meter.Int64Counter(
		"deliveries_total",
		metric.WithDescription("Total number of deliveries handed to the processor"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create deliveries_total counter: %w", err)
	}

	om.deliveryDuration, err = om.meter.Float64Histogram(
		"delivery_processing_seconds",
		metric.WithDescription("Time spent processing a delivery in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create delivery_processing_seconds histogram: %w", err)
	}

	om.redeliveryTotal, err = om.meter.Int64Counter(
		"redeliveries_total",
		metric.WithDescription("Total number of deliveries flagged as redelivered"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create redeliveries_total counter: %w", err)
	}

	om.ackErrorTotal, err = om.meter.Int64Counter(
		"ack_errors_total",
		metric.WithDescription("Total number of failed acknowledgements"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create ack_errors_total counter: %w", err)
	}

	om.connectAttemptTotal, err = om.meter.Int64Counter(
		"connect_attempts_total",
		metric.WithDescription("Total number of broker connection attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create connect_attempts_total counter: %w", err)
	}

	om.workerTransitions, err = om.meter.Int64Counter(
		"worker_state_transitions_total",
		metric.WithDescription("Total number of consumer worker state transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create worker_state_transitions_total counter: %w", err)
	}

	om.commandTotal, err = om.meter.Int64Counter(
		"commands_total",
		metric.WithDescription("Total number of application commands handled"),
		metric.WithUnit("{command}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create commands_total counter: %w", err)
	}

	return nil
}

func (om *OTELMetrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration, requestSize, responseSize int64) {
	om.httpRequestTotal.Add(ctx, 1,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.httpRequestDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)

	om.httpRequestSize.Record(ctx, requestSize,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
		),
	)

	om.httpResponseSize.Record(ctx, responseSize,
		metric.WithAttributes(
			HTTPMethodAttr(method),
			HTTPPathAttr(path),
			HTTPStatusCodeAttr(statusCode),
		),
	)
}

func (om *OTELMetrics) RecordPublish(ctx context.Context, contentType string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	om.publishTotal.Add(ctx, 1,
		metric.WithAttributes(
			ContentTypeAttr(contentType),
			StatusAttr(status),
		),
	)

	om.publishDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			ContentTypeAttr(contentType),
			StatusAttr(status),
		),
	)

	if !success {
		om.publishErrorTotal.Add(ctx, 1,
			metric.WithAttributes(
				ContentTypeAttr(contentType),
			),
		)
	}
}

func (om *OTELMetrics) RecordDelivery(ctx context.Context, outcome domain.ProcessingOutcome, redelivered bool, duration time.Duration) {
	om.deliveryTotal.Add(ctx, 1,
		metric.WithAttributes(
			OutcomeAttr(outcome),
			RedeliveredAttr(redelivered),
		),
	)

	om.deliveryDuration.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			OutcomeAttr(outcome),
		),
	)

	if redelivered {
		om.redeliveryTotal.Add(ctx, 1,
			metric.WithAttributes(
				OutcomeAttr(outcome),
			),
		)
	}
}

func (om *OTELMetrics) RecordAckFailure(ctx context.Context, operation string) {
	om.ackErrorTotal.Add(ctx, 1,
		metric.WithAttributes(
			OperationAttr(operation),
		),
	)
}

func (om *OTELMetrics) RecordConnectAttempt(ctx context.Context, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	om.connectAttemptTotal.Add(ctx, 1,
		metric.WithAttributes(
			StatusAttr(status),
		),
	)
}

func (om *OTELMetrics) RecordWorkerState(ctx context.Context, state domain.WorkerState) {
	om.workerTransitions.Add(ctx, 1,
		metric.WithAttributes(
			WorkerStateAttr(state),
		),
	)
}

func (om *OTELMetrics) RecordCommand(ctx context.Context, key string, value int64) {
	om.commandTotal.Add(ctx, value,
		metric.WithAttributes(
			CommandAttr(key),
		),
	)
}

func (om *OTELMetrics) Handler() http.Handler {
	return promhttp.Handler()
}

func (om *OTELMetrics) Shutdown(ctx context.Context) error {
	if err := om.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	return nil
}
