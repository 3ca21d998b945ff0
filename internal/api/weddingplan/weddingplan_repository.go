package weddingplan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/go-wedding-marketplace/app/db"
	"github.com/FACorreiaa/go-wedding-marketplace/app/observability/metrics"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

var _ WeddingPlanRepo = (*PostgresWeddingPlanRepo)(nil)

type WeddingPlanRepo interface {
	CreatePlan(ctx context.Context, plan *types.WeddingPlan) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]types.WeddingPlan, error)
}

type PostgresWeddingPlanRepo struct {
	logger  *slog.Logger
	pgpool  database.DBTX
	metrics *metrics.AppMetrics
}

func NewPostgresWeddingPlanRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresWeddingPlanRepo {
	return &PostgresWeddingPlanRepo{logger: logger, pgpool: pgpool, metrics: metrics.Get()}
}

func (r *PostgresWeddingPlanRepo) CreatePlan(ctx context.Context, p *types.WeddingPlan) error {
	ctx, span := otel.Tracer("WeddingPlanRepo").Start(ctx, "CreatePlan", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "wedding_plans"),
	))
	defer span.End()

	timeline, err := json.Marshal(p.Timeline)
	if err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}

	start := time.Now()
	_, err = r.pgpool.Exec(ctx,
		`INSERT INTO wedding_plans (id, user_id, budget, guest_count, wedding_date, location, style_preference,
			selected_vendors, timeline, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.Budget, p.GuestCount, p.WeddingDate, p.Location, string(p.StylePreference),
		p.SelectedVendors, timeline, p.CreatedAt)
	r.metrics.ObserveQuery(ctx, "InsertWeddingPlan", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert wedding plan", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("failed to insert wedding plan: %w", err)
	}
	span.SetStatus(codes.Ok, "Wedding plan created")
	return nil
}

func (r *PostgresWeddingPlanRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]types.WeddingPlan, error) {
	ctx, span := otel.Tracer("WeddingPlanRepo").Start(ctx, "ListByUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("user.id", userID.String()),
	))
	defer span.End()

	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		`SELECT id, user_id, budget, guest_count, wedding_date, location, style_preference,
			selected_vendors, timeline, created_at
		FROM wedding_plans WHERE user_id = $1 ORDER BY created_at ASC, id ASC LIMIT $2`, userID, limit)
	if err != nil {
		r.metrics.ObserveQuery(ctx, "ListWeddingPlans", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to list wedding plans: %w", err)
	}
	defer rows.Close()

	plans := make([]types.WeddingPlan, 0)
	for rows.Next() {
		var (
			p        types.WeddingPlan
			style    string
			timeline []byte
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.Budget, &p.GuestCount, &p.WeddingDate, &p.Location, &style,
			&p.SelectedVendors, &timeline, &p.CreatedAt); err != nil {
			r.metrics.ObserveQuery(ctx, "ListWeddingPlans", start, err)
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan wedding plan row: %w", err)
		}
		p.StylePreference = types.StylePreference(style)
		if err := json.Unmarshal(timeline, &p.Timeline); err != nil {
			return nil, fmt.Errorf("failed to decode timeline: %w", err)
		}
		if p.SelectedVendors == nil {
			p.SelectedVendors = []string{}
		}
		plans = append(plans, p)
	}
	err = rows.Err()
	r.metrics.ObserveQuery(ctx, "ListWeddingPlans", start, err)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating wedding plan rows: %w", err)
	}
	span.SetStatus(codes.Ok, "Wedding plans listed")
	return plans, nil
}
