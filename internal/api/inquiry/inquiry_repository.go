package inquiry

import (
	"context"
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

var _ InquiryRepo = (*PostgresInquiryRepo)(nil)

type InquiryRepo interface {
	CreateInquiry(ctx context.Context, inquiry *types.Inquiry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]types.Inquiry, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]types.Inquiry, error)
}

type PostgresInquiryRepo struct {
	logger  *slog.Logger
	pgpool  database.DBTX
	metrics *metrics.AppMetrics
}

func NewPostgresInquiryRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresInquiryRepo {
	return &PostgresInquiryRepo{logger: logger, pgpool: pgpool, metrics: metrics.Get()}
}

func (r *PostgresInquiryRepo) CreateInquiry(ctx context.Context, inq *types.Inquiry) error {
	ctx, span := otel.Tracer("InquiryRepo").Start(ctx, "CreateInquiry", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "inquiries"),
	))
	defer span.End()

	start := time.Now()
	_, err := r.pgpool.Exec(ctx,
		`INSERT INTO inquiries (id, user_id, vendor_id, message, status, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		inq.ID, inq.UserID, inq.VendorID, inq.Message, string(inq.Status), inq.CreatedAt)
	r.metrics.ObserveQuery(ctx, "InsertInquiry", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert inquiry", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	span.SetStatus(codes.Ok, "Inquiry created")
	return nil
}

func (r *PostgresInquiryRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]types.Inquiry, error) {
	return r.list(ctx, "ListByUser", "user_id", userID, limit)
}

func (r *PostgresInquiryRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]types.Inquiry, error) {
	return r.list(ctx, "ListByVendor", "vendor_id", vendorID, limit)
}

// list is shared by the two lookups; column is one of the fixed names above.
func (r *PostgresInquiryRepo) list(ctx context.Context, op, column string, id uuid.UUID, limit int) ([]types.Inquiry, error) {
	ctx, span := otel.Tracer("InquiryRepo").Start(ctx, op, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String(column, id.String()),
	))
	defer span.End()

	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		`SELECT id, user_id, vendor_id, message, status, created_at FROM inquiries
		WHERE `+column+` = $1 ORDER BY created_at ASC, id ASC LIMIT $2`, id, limit)
	if err != nil {
		r.metrics.ObserveQuery(ctx, op, start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]types.Inquiry, 0)
	for rows.Next() {
		var (
			inq    types.Inquiry
			status string
		)
		if err := rows.Scan(&inq.ID, &inq.UserID, &inq.VendorID, &inq.Message, &status, &inq.CreatedAt); err != nil {
			r.metrics.ObserveQuery(ctx, op, start, err)
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan inquiry row: %w", err)
		}
		inq.Status = types.InquiryStatus(status)
		inquiries = append(inquiries, inq)
	}
	err = rows.Err()
	r.metrics.ObserveQuery(ctx, op, start, err)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}
	span.SetStatus(codes.Ok, "Inquiries listed")
	return inquiries, nil
}
