package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-wedding-marketplace/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-wedding-marketplace/internal/api/generative_ai"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/market"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

// SessionListLimit caps GET /chat-sessions/{user_id}.
const SessionListLimit = 10

var _ ChatService = (*ChatServiceImpl)(nil)

// UserLookup is the part of the user store chat needs.
type UserLookup interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
}

type ChatService interface {
	SendMessage(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]types.ChatSession, error)
	GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*types.ChatSession, error)
}

type ChatServiceImpl struct {
	logger  *slog.Logger
	repo    ChatRepo
	users   UserLookup
	llm     generativeAI.Gateway
	metrics *metrics.AppMetrics
	now     func() time.Time
}

func NewChatService(repo ChatRepo, users UserLookup, llm generativeAI.Gateway, logger *slog.Logger) *ChatServiceImpl {
	return &ChatServiceImpl{
		logger:  logger,
		repo:    repo,
		users:   users,
		llm:     llm,
		metrics: metrics.Get(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SendMessage opens the session on first use, asks the model for a reply and
// records the user and assistant turns. A reply that could not be recorded is
// still returned.
func (s *ChatServiceImpl) SendMessage(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "SendMessage", trace.WithAttributes(
		attribute.String("user.id", req.UserID.String()),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "SendMessage"), slog.String("userID", req.UserID.String()))

	if err := req.Validate(); err != nil {
		span.SetStatus(codes.Error, "Invalid input")
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, req.UserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User lookup failed")
		return nil, fmt.Errorf("error fetching chat user: %w", err)
	}

	sessionID := uuid.NewString()
	if req.SessionID != nil {
		sessionID = *req.SessionID
	}
	span.SetAttributes(attribute.String("session.id", sessionID))
	l = l.With(slog.String("sessionID", sessionID))

	opened := s.now()
	session, err := s.repo.GetOrCreateSession(ctx, &types.ChatSession{
		ID:        uuid.New(),
		UserID:    user.ID,
		SessionID: sessionID,
		Messages:  []types.ConversationMessage{},
		Context:   user.PreferencesOrZero(),
		CreatedAt: opened,
		UpdatedAt: opened,
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to open chat session", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Session error")
		return nil, fmt.Errorf("error opening chat session: %w", err)
	}

	prompt := req.Message
	marketInfoUsed := false
	if market.IsMarketQuery(req.Message) {
		info, topic := market.Lookup(req.Message)
		prompt = generativeAI.WithMarketInfo(req.Message, info)
		marketInfoUsed = true
		span.SetAttributes(attribute.String("market.topic", topic))
	}

	userTurn := types.ConversationMessage{Role: types.RoleUser, Content: req.Message, Timestamp: s.now()}
	s.metrics.ChatMessagesTotal.Add(ctx, 1, metric.WithAttributes(attribute.Bool("market_info", marketInfoUsed)))

	reply, err := s.llm.GenerateReply(ctx, generativeAI.PlannerSystemPrompt(session.Context), prompt)
	if err != nil {
		l.ErrorContext(ctx, "Chat reply failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "LLM error")
		return nil, fmt.Errorf("error generating chat reply: %w", err)
	}

	assistantTurn := types.ConversationMessage{Role: types.RoleAssistant, Content: reply, Timestamp: s.now()}
	if assistantTurn.Timestamp.Before(userTurn.Timestamp) {
		assistantTurn.Timestamp = userTurn.Timestamp
	}
	if err := s.repo.AppendMessages(ctx, user.ID, sessionID,
		[]types.ConversationMessage{userTurn, assistantTurn}, assistantTurn.Timestamp); err != nil {
		l.ErrorContext(ctx, "Reply delivered but not recorded in transcript", slog.Any("error", err))
		span.RecordError(err)
	}

	span.SetStatus(codes.Ok, "Reply generated")
	return &types.ChatResponse{
		Response:      reply,
		SessionID:     sessionID,
		Suggestions:   Suggestions(req.Message),
		WebSearchUsed: marketInfoUsed,
	}, nil
}

func (s *ChatServiceImpl) ListSessions(ctx context.Context, userID uuid.UUID) ([]types.ChatSession, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "ListSessions", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
	))
	defer span.End()

	sessions, err := s.repo.ListSessions(ctx, userID, SessionListLimit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error listing chat sessions: %w", err)
	}
	span.SetStatus(codes.Ok, "Sessions listed")
	return sessions, nil
}

func (s *ChatServiceImpl) GetSession(ctx context.Context, userID uuid.UUID, sessionID string) (*types.ChatSession, error) {
	session, err := s.repo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error fetching chat session: %w", err)
	}
	return session, nil
}
