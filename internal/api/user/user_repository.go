package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/go-wedding-marketplace/app/db"
	"github.com/FACorreiaa/go-wedding-marketplace/app/observability/metrics"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

var _ UserRepo = (*PostgresUserRepo)(nil)

// UserRepo defines the contract for user persistence.
type UserRepo interface {
	// CreateUser inserts a fully populated user.
	CreateUser(ctx context.Context, user *types.User) error
	// GetUserByID returns types.ErrNotFound if the user doesn't exist.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	// ListUsers returns users in insertion order.
	ListUsers(ctx context.Context, limit int) ([]types.User, error)
	// UpdatePreferences replaces the stored preferences wholesale.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs types.Preferences) error
}

type PostgresUserRepo struct {
	logger  *slog.Logger
	pgpool  database.DBTX
	metrics *metrics.AppMetrics
}

func NewPostgresUserRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresUserRepo {
	return &PostgresUserRepo{
		logger:  logger,
		pgpool:  pgpool,
		metrics: metrics.Get(),
	}
}

const userColumns = `id, name, email, phone, role, preferences, created_at`

func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *types.User) error {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "CreateUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	prefs, err := marshalPreferences(user.Preferences)
	if err != nil {
		span.RecordError(err)
		return err
	}

	start := time.Now()
	_, err = r.pgpool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.Phone, string(user.Role), prefs, user.CreatedAt)
	r.metrics.ObserveQuery(ctx, "InsertUser", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("failed to insert user: %w", err)
	}
	span.SetStatus(codes.Ok, "User created")
	return nil
}

func (r *PostgresUserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "GetUserByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("user.id", userID.String()),
	))
	defer span.End()

	start := time.Now()
	row := r.pgpool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	user, err := scanUser(row)
	r.metrics.ObserveQuery(ctx, "SelectUser", start, database.IgnoreNoRows(err))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to query user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	span.SetStatus(codes.Ok, "User found")
	return user, nil
}

func (r *PostgresUserRepo) ListUsers(ctx context.Context, limit int) ([]types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "ListUsers", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.Int("limit", limit),
	))
	defer span.End()

	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC, id ASC LIMIT $1`, limit)
	if err != nil {
		r.metrics.ObserveQuery(ctx, "ListUsers", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.metrics.ObserveQuery(ctx, "ListUsers", start, err)
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	err = rows.Err()
	r.metrics.ObserveQuery(ctx, "ListUsers", start, err)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))
	span.SetStatus(codes.Ok, "Users listed")
	return users, nil
}

func (r *PostgresUserRepo) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs types.Preferences) error {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "UpdatePreferences", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("user.id", userID.String()),
	))
	defer span.End()

	raw, err := marshalPreferences(&prefs)
	if err != nil {
		return err
	}

	start := time.Now()
	tag, err := r.pgpool.Exec(ctx, `UPDATE users SET preferences = $2 WHERE id = $1`, userID, raw)
	r.metrics.ObserveQuery(ctx, "UpdateUserPreferences", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update user preferences", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return fmt.Errorf("failed to update user preferences: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "User not found")
		return fmt.Errorf("user %s: %w", userID, types.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Preferences updated")
	return nil
}

func scanUser(row pgx.Row) (*types.User, error) {
	var (
		u     types.User
		role  string
		prefs []byte
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &role, &prefs, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = types.UserRole(role)
	if len(prefs) > 0 && string(prefs) != "null" {
		var p types.Preferences
		if err := json.Unmarshal(prefs, &p); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
		u.Preferences = &p
	}
	return &u, nil
}

func marshalPreferences(p *types.Preferences) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}
	return raw, nil
}
