package metrics

import (
	"context"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ChatMessagesTotal      metric.Int64Counter
	LLMRequestDuration     metric.Float64Histogram
	LLMErrorsTotal         metric.Int64Counter
	DbQueryDurationSeconds metric.Float64Histogram
	DbQueryErrorsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the metric instruments once, from the global
// MeterProvider. Call it after the provider has been installed.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("WeddingMarketplace")
		var err error
		m := &AppMetrics{}

		m.ChatMessagesTotal, err = meter.Int64Counter(
			"chat_messages_total",
			metric.WithDescription("Total number of chat messages handled"),
			metric.WithUnit("{message}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_messages_total: %v", err)
		}

		m.LLMRequestDuration, err = meter.Float64Histogram(
			"llm_request_duration_seconds",
			metric.WithDescription("Duration of LLM gateway calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_request_duration_seconds: %v", err)
		}

		m.LLMErrorsTotal, err = meter.Int64Counter(
			"llm_errors_total",
			metric.WithDescription("Total number of failed LLM gateway calls"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_errors_total: %v", err)
		}

		m.DbQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		m.DbQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the AppMetrics instance, initializing it against the current
// global MeterProvider (a no-op provider in tests) if needed.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

// ObserveQuery records the duration of one repository statement and counts
// it as an error when err is non-nil.
func (m *AppMetrics) ObserveQuery(ctx context.Context, operation string, start time.Time, err error) {
	attrs := metric.WithAttributes(attribute.String("db.operation", operation))
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}
