package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

// memoryChatRepo keeps sessions in a map keyed by user and session id.
type memoryChatRepo struct {
	mu        sync.Mutex
	sessions  map[string]*types.ChatSession
	appendErr error
}

func newMemoryChatRepo() *memoryChatRepo {
	return &memoryChatRepo{sessions: map[string]*types.ChatSession{}}
}

func sessionKey(userID uuid.UUID, sessionID string) string {
	return userID.String() + "/" + sessionID
}

func (m *memoryChatRepo) GetOrCreateSession(_ context.Context, s *types.ChatSession) (*types.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(s.UserID, s.SessionID)
	if existing, ok := m.sessions[key]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *s
	m.sessions[key] = &cp
	out := cp
	return &out, nil
}

func (m *memoryChatRepo) AppendMessages(_ context.Context, userID uuid.UUID, sessionID string, msgs []types.ConversationMessage, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	s, ok := m.sessions[sessionKey(userID, sessionID)]
	if !ok {
		return types.ErrNotFound
	}
	s.Messages = append(s.Messages, msgs...)
	s.UpdatedAt = updatedAt
	return nil
}

func (m *memoryChatRepo) GetSession(_ context.Context, userID uuid.UUID, sessionID string) (*types.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionKey(userID, sessionID)]
	if !ok {
		return nil, fmt.Errorf("chat session %s: %w", sessionID, types.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (m *memoryChatRepo) ListSessions(_ context.Context, userID uuid.UUID, limit int) ([]types.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []types.ChatSession{}
	for _, s := range m.sessions {
		if s.UserID == userID && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GenerateReply(ctx context.Context, systemPrompt, message string) (string, error) {
	args := m.Called(ctx, systemPrompt, message)
	return args.String(0), args.Error(1)
}

func setupChatServiceTest() (*ChatServiceImpl, *memoryChatRepo, *MockUserLookup, *MockGateway) {
	repo, users, llm := newMemoryChatRepo(), new(MockUserLookup), new(MockGateway)
	svc := NewChatService(repo, users, llm, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, repo, users, llm
}

func TestChatServiceImpl_SendMessage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &types.User{ID: userID, Preferences: &types.Preferences{Budget: 500000, Location: "Mumbai"}}

	t.Run("new session gets generated id and preference snapshot", func(t *testing.T) {
		svc, repo, users, llm := setupChatServiceTest()
		users.On("GetUserByID", ctx, userID).Return(user, nil).Once()
		llm.On("GenerateReply", ctx, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "budget ₹500000") && strings.Contains(p, "location Mumbai")
		}), "Help me plan").Return("Happy to help!", nil).Once()

		resp, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "Help me plan"})
		require.NoError(t, err)
		assert.Equal(t, "Happy to help!", resp.Response)
		assert.False(t, resp.WebSearchUsed)
		assert.Len(t, resp.Suggestions, 3)
		_, err = uuid.Parse(resp.SessionID)
		require.NoError(t, err)

		session, err := repo.GetSession(ctx, userID, resp.SessionID)
		require.NoError(t, err)
		assert.Equal(t, 500000.0, session.Context.Budget)
		require.Len(t, session.Messages, 2)
		assert.Equal(t, types.RoleUser, session.Messages[0].Role)
		assert.Equal(t, "Help me plan", session.Messages[0].Content)
		assert.Equal(t, types.RoleAssistant, session.Messages[1].Role)
		assert.False(t, session.Messages[1].Timestamp.Before(session.Messages[0].Timestamp))
		llm.AssertExpectations(t)
	})

	t.Run("same session accumulates alternating turns", func(t *testing.T) {
		svc, repo, users, llm := setupChatServiceTest()
		users.On("GetUserByID", ctx, userID).Return(user, nil)
		llm.On("GenerateReply", ctx, mock.Anything, mock.Anything).Return("ok", nil)
		sessionID := "planning-1"

		for i := 0; i < 3; i++ {
			resp, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: fmt.Sprintf("msg %d", i), SessionID: &sessionID})
			require.NoError(t, err)
			assert.Equal(t, sessionID, resp.SessionID)
		}

		session, err := repo.GetSession(ctx, userID, sessionID)
		require.NoError(t, err)
		require.Len(t, session.Messages, 6)
		for i, m := range session.Messages {
			if i%2 == 0 {
				assert.Equal(t, types.RoleUser, m.Role)
				assert.Equal(t, fmt.Sprintf("msg %d", i/2), m.Content)
			} else {
				assert.Equal(t, types.RoleAssistant, m.Role)
			}
			if i > 0 {
				assert.False(t, m.Timestamp.Before(session.Messages[i-1].Timestamp))
			}
		}
	})

	t.Run("context snapshot is not re-synced", func(t *testing.T) {
		svc, repo, users, llm := setupChatServiceTest()
		sessionID := "s"
		users.On("GetUserByID", ctx, userID).Return(user, nil).Once()
		users.On("GetUserByID", ctx, userID).Return(&types.User{ID: userID, Preferences: &types.Preferences{Budget: 1}}, nil).Once()
		llm.On("GenerateReply", ctx, mock.Anything, mock.Anything).Return("ok", nil)

		_, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "a", SessionID: &sessionID})
		require.NoError(t, err)
		_, err = svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "b", SessionID: &sessionID})
		require.NoError(t, err)

		session, _ := repo.GetSession(ctx, userID, sessionID)
		assert.Equal(t, 500000.0, session.Context.Budget)
	})

	t.Run("market question splices canned info", func(t *testing.T) {
		svc, _, users, llm := setupChatServiceTest()
		users.On("GetUserByID", ctx, userID).Return(user, nil).Once()
		llm.On("GenerateReply", ctx, mock.Anything, mock.MatchedBy(func(m string) bool {
			return strings.HasPrefix(m, "What does a venue cost?") && strings.Contains(m, "Current market information:")
		})).Return("Venues vary.", nil).Once()

		resp, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "What does a venue cost?"})
		require.NoError(t, err)
		assert.True(t, resp.WebSearchUsed)
		assert.Equal(t, "Show me venues in my area", resp.Suggestions[0])
		llm.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, users, llm := setupChatServiceTest()
		users.On("GetUserByID", ctx, userID).Return(nil, types.ErrNotFound).Once()

		_, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "hi"})
		assert.ErrorIs(t, err, types.ErrNotFound)
		llm.AssertNotCalled(t, "GenerateReply", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty message", func(t *testing.T) {
		svc, _, users, _ := setupChatServiceTest()
		_, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "  "})
		assert.ErrorIs(t, err, types.ErrValidation)
		users.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure records no turns", func(t *testing.T) {
		svc, repo, users, llm := setupChatServiceTest()
		sessionID := "s"
		users.On("GetUserByID", ctx, userID).Return(user, nil).Once()
		llm.On("GenerateReply", ctx, mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: deadline exceeded", types.ErrUpstream)).Once()

		_, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "hi", SessionID: &sessionID})
		assert.ErrorIs(t, err, types.ErrUpstream)

		session, err := repo.GetSession(ctx, userID, sessionID)
		require.NoError(t, err)
		assert.Empty(t, session.Messages)
	})

	t.Run("reply returned when transcript write fails", func(t *testing.T) {
		svc, repo, users, llm := setupChatServiceTest()
		repo.appendErr = errors.New("write timeout")
		users.On("GetUserByID", ctx, userID).Return(user, nil).Once()
		llm.On("GenerateReply", ctx, mock.Anything, mock.Anything).Return("still here", nil).Once()

		resp, err := svc.SendMessage(ctx, types.ChatRequest{UserID: userID, Message: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "still here", resp.Response)
	})
}

func TestChatServiceImpl_GetSession_NotFound(t *testing.T) {
	svc, _, _, _ := setupChatServiceTest()
	_, err := svc.GetSession(context.Background(), uuid.New(), "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
