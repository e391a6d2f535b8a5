package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Options configures InitOtel.
type Options struct {
	ServiceName    string
	ServiceVersion string
	// Endpoint is the OTLP gRPC collector address. Without it the SDK
	// providers are installed with no exporters.
	Endpoint string
}

// Providers gives access to the installed SDK providers.
type Providers struct {
	Tracer *sdktrace.TracerProvider
	Meter  *metric.MeterProvider
	Logger *sdklog.LoggerProvider

	conn *grpc.ClientConn
}

// Shutdown flushes and stops every provider, then closes the collector connection.
func (p *Providers) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var errs []error
	if err := p.Tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown TracerProvider: %w", err))
	}
	if err := p.Meter.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown MeterProvider: %w", err))
	}
	if err := p.Logger.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown LoggerProvider: %w", err))
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close gRPC connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// InitOtel initializes an OpenTelemetry SDK for traces, metrics and logs and
// installs the providers globally.
func InitOtel(ctx context.Context, opts Options) (*Providers, error) {
	// --- Create shared resource ---
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
			semconv.ServiceVersion(opts.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	metricOpts := []metric.Option{metric.WithResource(res)}
	logOpts := []sdklog.LoggerProviderOption{sdklog.WithResource(res)}

	var conn *grpc.ClientConn
	if opts.Endpoint != "" {
		// --- Create gRPC connection ---
		conn, err = grpc.NewClient(opts.Endpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC connection to OTLP collector: %w", err)
		}

		otlpTraceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		traceOpts = append(traceOpts, sdktrace.WithBatcher(otlpTraceExporter))

		otlpMetricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		metricOpts = append(metricOpts, metric.WithReader(metric.NewPeriodicReader(otlpMetricExporter)))

		otlpLogExporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
		}
		logOpts = append(logOpts, sdklog.WithProcessor(sdklog.NewBatchProcessor(otlpLogExporter)))
	}

	// --- Setup Traces ---
	tp := sdktrace.NewTracerProvider(traceOpts...)
	otel.SetTracerProvider(tp)

	// --- Setup Metrics ---
	mp := metric.NewMeterProvider(metricOpts...)
	otel.SetMeterProvider(mp)

	// --- Setup Logs ---
	lp := sdklog.NewLoggerProvider(logOpts...)
	global.SetLoggerProvider(lp)

	// --- Set Propagators ---
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Providers{Tracer: tp, Meter: mp, Logger: lp, conn: conn}, nil
}
