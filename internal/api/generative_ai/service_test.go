package generativeAI

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAIClient_GenerateReply(t *testing.T) {
	opts := Options{Model: "gemini-2.0-flash", Temperature: 0.5, Timeout: time.Second}

	t.Run("success", func(t *testing.T) {
		gen := new(MockGenerator)
		client := newAIClientWithGenerator(gen, opts, testLogger())

		gen.On("GenerateContent", mock.Anything, "gemini-2.0-flash", mock.Anything,
			mock.MatchedBy(func(c *genai.GenerateContentConfig) bool {
				return c.SystemInstruction != nil &&
					c.SystemInstruction.Parts[0].Text == "system" &&
					c.Temperature != nil && *c.Temperature == 0.5
			})).
			Return(textResponse("  Congratulations!  "), nil).Once()

		reply, err := client.GenerateReply(context.Background(), "system", "We are engaged")
		require.NoError(t, err)
		assert.Equal(t, "Congratulations!", reply)
		gen.AssertExpectations(t)
	})

	t.Run("provider error is upstream", func(t *testing.T) {
		gen := new(MockGenerator)
		client := newAIClientWithGenerator(gen, opts, testLogger())
		gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("googleapi: Error 500")).Once()

		_, err := client.GenerateReply(context.Background(), "system", "hi")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrUpstream)
	})

	t.Run("empty reply is upstream", func(t *testing.T) {
		gen := new(MockGenerator)
		client := newAIClientWithGenerator(gen, opts, testLogger())
		gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(textResponse(""), nil).Once()

		_, err := client.GenerateReply(context.Background(), "system", "hi")
		assert.ErrorIs(t, err, types.ErrUpstream)
	})

	t.Run("timeout is applied to the call", func(t *testing.T) {
		gen := new(MockGenerator)
		client := newAIClientWithGenerator(gen, opts, testLogger())
		gen.On("GenerateContent", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), mock.Anything, mock.Anything, mock.Anything).
			Return(textResponse("ok"), nil).Once()

		_, err := client.GenerateReply(context.Background(), "system", "hi")
		require.NoError(t, err)
		gen.AssertExpectations(t)
	})
}

func TestNewAIClient_WithoutKeyIsDisabled(t *testing.T) {
	client, err := NewAIClient(context.Background(), Options{Model: "gemini-2.0-flash"}, testLogger())
	require.NoError(t, err)

	_, err = client.GenerateReply(context.Background(), "system", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUpstream)
}
