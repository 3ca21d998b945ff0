package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/go-wedding-marketplace/app/db"
	"github.com/FACorreiaa/go-wedding-marketplace/app/observability/metrics"
)

// Collection names one of the counted tables.
type Collection string

const (
	Users        Collection = "users"
	Vendors      Collection = "vendors"
	Inquiries    Collection = "inquiries"
	WeddingPlans Collection = "wedding_plans"
	ChatSessions Collection = "chat_sessions"
)

var countQueries = map[Collection]string{
	Users:        `SELECT COUNT(*) FROM users`,
	Vendors:      `SELECT COUNT(*) FROM vendors`,
	Inquiries:    `SELECT COUNT(*) FROM inquiries`,
	WeddingPlans: `SELECT COUNT(*) FROM wedding_plans`,
	ChatSessions: `SELECT COUNT(*) FROM chat_sessions`,
}

var _ StatsRepo = (*PostgresStatsRepo)(nil)

type StatsRepo interface {
	Count(ctx context.Context, c Collection) (int64, error)
}

type PostgresStatsRepo struct {
	logger  *slog.Logger
	pgpool  database.DBTX
	metrics *metrics.AppMetrics
}

func NewPostgresStatsRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresStatsRepo {
	return &PostgresStatsRepo{logger: logger, pgpool: pgpool, metrics: metrics.Get()}
}

func (r *PostgresStatsRepo) Count(ctx context.Context, c Collection) (int64, error) {
	query, ok := countQueries[c]
	if !ok {
		return 0, fmt.Errorf("unknown collection %q", c)
	}
	ctx, span := otel.Tracer("StatsRepo").Start(ctx, "Count", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", string(c)),
	))
	defer span.End()

	var n int64
	start := time.Now()
	err := r.pgpool.QueryRow(ctx, query).Scan(&n)
	r.metrics.ObserveQuery(ctx, "Count", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to count rows", slog.String("collection", string(c)), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return 0, fmt.Errorf("failed to count %s: %w", c, err)
	}
	span.SetStatus(codes.Ok, "Counted")
	return n, nil
}
