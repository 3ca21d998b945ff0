package chat

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

var _ ChatRepo = (*PostgresChatRepo)(nil)

type ChatRepo interface {
	// GetOrCreateSession returns the session for (session.UserID,
	// session.SessionID), inserting session when none exists. An existing
	// session keeps its transcript and context.
	GetOrCreateSession(ctx context.Context, session *types.ChatSession) (*types.ChatSession, error)
	// AppendMessages adds messages to the end of the transcript in one
	// statement and bumps updated_at.
	AppendMessages(ctx context.Context, userID uuid.UUID, sessionID string, messages []types.ConversationMessage, updatedAt time.Time) error
	GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*types.ChatSession, error)
	// ListSessions returns the most recently updated sessions first.
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]types.ChatSession, error)
}

type PostgresChatRepo struct {
	logger  *slog.Logger
	pgpool  database.DBTX
	metrics *metrics.AppMetrics
}

func NewPostgresChatRepo(pgpool database.DBTX, logger *slog.Logger) *PostgresChatRepo {
	return &PostgresChatRepo{logger: logger, pgpool: pgpool, metrics: metrics.Get()}
}

const sessionColumns = `id, user_id, session_id, messages, context, created_at, updated_at`

func (r *PostgresChatRepo) GetOrCreateSession(ctx context.Context, s *types.ChatSession) (*types.ChatSession, error) {
	ctx, span := otel.Tracer("ChatRepo").Start(ctx, "GetOrCreateSession", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("session.id", s.SessionID),
	))
	defer span.End()

	messages, err := json.Marshal(nonNilMessages(s.Messages))
	if err != nil {
		return nil, fmt.Errorf("failed to encode messages: %w", err)
	}
	sessionContext, err := json.Marshal(s.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session context: %w", err)
	}

	start := time.Now()
	row := r.pgpool.QueryRow(ctx,
		`INSERT INTO chat_sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, session_id) DO UPDATE SET session_id = chat_sessions.session_id
		RETURNING `+sessionColumns,
		s.ID, s.UserID, s.SessionID, messages, sessionContext, s.CreatedAt, s.UpdatedAt)
	session, err := scanSession(row)
	r.metrics.ObserveQuery(ctx, "UpsertChatSession", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to get or create chat session", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB upsert failed")
		return nil, fmt.Errorf("failed to get or create chat session: %w", err)
	}
	span.SetAttributes(attribute.Bool("session.created", session.ID == s.ID))
	span.SetStatus(codes.Ok, "Session ready")
	return session, nil
}

func (r *PostgresChatRepo) AppendMessages(ctx context.Context, userID uuid.UUID, sessionID string, msgs []types.ConversationMessage, updatedAt time.Time) error {
	ctx, span := otel.Tracer("ChatRepo").Start(ctx, "AppendMessages", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("session.id", sessionID),
		attribute.Int("messages.count", len(msgs)),
	))
	defer span.End()

	raw, err := json.Marshal(nonNilMessages(msgs))
	if err != nil {
		return fmt.Errorf("failed to encode messages: %w", err)
	}

	start := time.Now()
	tag, err := r.pgpool.Exec(ctx,
		`UPDATE chat_sessions SET messages = messages || $3::jsonb, updated_at = $4
		WHERE user_id = $1 AND session_id = $2`,
		userID, sessionID, raw, updatedAt)
	r.metrics.ObserveQuery(ctx, "AppendChatMessages", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to append chat messages", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return fmt.Errorf("failed to append chat messages: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "Session not found")
		return fmt.Errorf("chat session %s: %w", sessionID, types.ErrNotFound)
	}
	span.SetStatus(codes.Ok, "Messages appended")
	return nil
}

func (r *PostgresChatRepo) GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*types.ChatSession, error) {
	ctx, span := otel.Tracer("ChatRepo").Start(ctx, "GetSession", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("user.id", userID.String()),
		attribute.String("session.id", sessionID),
	))
	defer span.End()

	start := time.Now()
	row := r.pgpool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM chat_sessions WHERE user_id = $1 AND session_id = $2`, userID, sessionID)
	session, err := scanSession(row)
	r.metrics.ObserveQuery(ctx, "SelectChatSession", start, database.IgnoreNoRows(err))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Session not found")
			return nil, fmt.Errorf("chat session %s: %w", sessionID, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to fetch chat session: %w", err)
	}
	span.SetStatus(codes.Ok, "Session found")
	return session, nil
}

func (r *PostgresChatRepo) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]types.ChatSession, error) {
	ctx, span := otel.Tracer("ChatRepo").Start(ctx, "ListSessions", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("user.id", userID.String()),
	))
	defer span.End()

	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		`SELECT `+sessionColumns+` FROM chat_sessions WHERE user_id = $1
		ORDER BY updated_at DESC, id ASC LIMIT $2`, userID, limit)
	if err != nil {
		r.metrics.ObserveQuery(ctx, "ListChatSessions", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]types.ChatSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			r.metrics.ObserveQuery(ctx, "ListChatSessions", start, err)
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan chat session row: %w", err)
		}
		sessions = append(sessions, *session)
	}
	err = rows.Err()
	r.metrics.ObserveQuery(ctx, "ListChatSessions", start, err)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating chat session rows: %w", err)
	}
	span.SetStatus(codes.Ok, "Sessions listed")
	return sessions, nil
}

func scanSession(row pgx.Row) (*types.ChatSession, error) {
	var (
		s              types.ChatSession
		messages       []byte
		sessionContext []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.SessionID, &messages, &sessionContext, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &s.Messages); err != nil {
			return nil, fmt.Errorf("failed to decode messages: %w", err)
		}
	}
	if len(sessionContext) > 0 {
		if err := json.Unmarshal(sessionContext, &s.Context); err != nil {
			return nil, fmt.Errorf("failed to decode session context: %w", err)
		}
	}
	s.Messages = nonNilMessages(s.Messages)
	return &s, nil
}

func nonNilMessages(msgs []types.ConversationMessage) []types.ConversationMessage {
	if msgs == nil {
		return []types.ConversationMessage{}
	}
	return msgs
}
