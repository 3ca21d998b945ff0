//go:build integration

package chat

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "github.com/FACorreiaa/go-wedding-marketplace/app/db"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

var (
	testChatDB   *pgxpool.Pool
	testChatRepo *PostgresChatRepo
)

func TestMain(m *testing.M) {
	if err := godotenv.Load("../../../.env.test"); err != nil {
		log.Println("Warning: .env.test file not found for chat integration tests.")
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		log.Fatal("TEST_DATABASE_URL environment variable is not set for chat integration tests")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if err := database.RunMigrations(dbURL, logger); err != nil {
		log.Fatalf("Unable to migrate test database: %v", err)
	}

	var err error
	testChatDB, err = database.Init(context.Background(), dbURL, 10, logger)
	if err != nil {
		log.Fatalf("Unable to create connection pool for chat tests: %v", err)
	}
	testChatRepo = NewPostgresChatRepo(testChatDB, logger)

	exitCode := m.Run()
	testChatDB.Close()
	os.Exit(exitCode)
}

func openTestSession(t *testing.T, userID uuid.UUID, sessionID string, prefs types.Preferences) *types.ChatSession {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	s, err := testChatRepo.GetOrCreateSession(context.Background(), &types.ChatSession{
		ID:        uuid.New(),
		UserID:    userID,
		SessionID: sessionID,
		Messages:  []types.ConversationMessage{},
		Context:   prefs,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return s
}

func turns(content string, at time.Time) []types.ConversationMessage {
	return []types.ConversationMessage{
		{Role: types.RoleUser, Content: content, Timestamp: at},
		{Role: types.RoleAssistant, Content: "re: " + content, Timestamp: at},
	}
}

func TestPostgresChatRepo_GetOrCreateSession_KeepsExisting(t *testing.T) {
	userID := uuid.New()
	first := openTestSession(t, userID, "s-1", types.Preferences{Budget: 500000, Location: "Mumbai"})
	second := openTestSession(t, userID, "s-1", types.Preferences{Budget: 1})

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 500000.0, second.Context.Budget)
	assert.Equal(t, "Mumbai", second.Context.Location)
	assert.Empty(t, second.Messages)

	other := openTestSession(t, uuid.New(), "s-1", types.Preferences{})
	assert.NotEqual(t, first.ID, other.ID, "session ids are scoped per user")
}

func TestPostgresChatRepo_AppendMessages_Chronological(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	openTestSession(t, userID, "planning", types.Preferences{})

	base := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, testChatRepo.AppendMessages(ctx, userID, "planning", turns("first", base), base))
	later := base.Add(time.Second)
	require.NoError(t, testChatRepo.AppendMessages(ctx, userID, "planning", turns("second", later), later))

	s, err := testChatRepo.GetSession(ctx, userID, "planning")
	require.NoError(t, err)
	require.Len(t, s.Messages, 4)
	for i, msg := range s.Messages {
		wantRole := types.RoleUser
		if i%2 == 1 {
			wantRole = types.RoleAssistant
		}
		assert.Equal(t, wantRole, msg.Role)
	}
	assert.Equal(t, "first", s.Messages[0].Content)
	assert.Equal(t, "second", s.Messages[2].Content)
	assert.True(t, s.UpdatedAt.Equal(later))
}

func TestPostgresChatRepo_AppendMessages_ConcurrentWritersKeepEveryTurn(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	openTestSession(t, userID, "busy", types.Preferences{})

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			at := time.Now().UTC()
			errs <- testChatRepo.AppendMessages(ctx, userID, "busy", turns(fmt.Sprintf("msg-%d", i), at), at)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	s, err := testChatRepo.GetSession(ctx, userID, "busy")
	require.NoError(t, err)
	assert.Len(t, s.Messages, 2*writers)
}

func TestPostgresChatRepo_MissingSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	err := testChatRepo.AppendMessages(ctx, userID, "nope", turns("hi", time.Now().UTC()), time.Now().UTC())
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = testChatRepo.GetSession(ctx, userID, "nope")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPostgresChatRepo_ListSessions_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	openTestSession(t, userID, "old", types.Preferences{})
	openTestSession(t, userID, "new", types.Preferences{})

	at := time.Now().UTC().Add(time.Minute).Truncate(time.Microsecond)
	require.NoError(t, testChatRepo.AppendMessages(ctx, userID, "old", turns("bump", at), at))

	sessions, err := testChatRepo.ListSessions(ctx, userID, SessionListLimit)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "old", sessions[0].SessionID)
	assert.Equal(t, "new", sessions[1].SessionID)
}
