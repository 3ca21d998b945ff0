package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-wedding-marketplace/app/observability/metrics"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

var _ Gateway = (*AIClient)(nil)

// Gateway sends one system prompt plus one user message to the hosted model
// and returns its text reply. Every failure wraps types.ErrUpstream.
type Gateway interface {
	GenerateReply(ctx context.Context, systemPrompt, message string) (string, error)
}

// contentGenerator is the part of genai.Models the client calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Options struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type AIClient struct {
	models  contentGenerator
	opts    Options
	logger  *slog.Logger
	metrics *metrics.AppMetrics
}

var errNotConfigured = errors.New("LLM API key not configured")

// NewAIClient builds the Gemini-backed gateway. Without an API key the client
// is disabled and every call fails with types.ErrUpstream, so the record
// endpoints keep working.
func NewAIClient(ctx context.Context, opts Options, logger *slog.Logger) (*AIClient, error) {
	c := &AIClient{opts: opts, logger: logger, metrics: metrics.Get()}
	if opts.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; chat replies are disabled")
		return c, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

func newAIClientWithGenerator(models contentGenerator, opts Options, logger *slog.Logger) *AIClient {
	return &AIClient{models: models, opts: opts, logger: logger, metrics: metrics.Get()}
}

func (ai *AIClient) GenerateReply(ctx context.Context, systemPrompt, message string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateReply", trace.WithAttributes(
		attribute.String("llm.model", ai.opts.Model),
		attribute.Int("prompt.length", len(message)),
	))
	defer span.End()

	l := ai.logger.With(slog.String("method", "GenerateReply"), slog.String("model", ai.opts.Model))

	if ai.models == nil {
		span.SetStatus(codes.Error, "LLM not configured")
		return "", fmt.Errorf("%w: %w", types.ErrUpstream, errNotConfigured)
	}

	if ai.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ai.opts.Timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	if ai.opts.Temperature > 0 {
		config.Temperature = genai.Ptr(ai.opts.Temperature)
	}

	start := time.Now()
	result, err := ai.models.GenerateContent(ctx, ai.opts.Model, genai.Text(message), config)
	elapsed := time.Since(start)
	ai.metrics.LLMRequestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("model", ai.opts.Model)))

	if err != nil {
		ai.metrics.LLMErrorsTotal.Add(ctx, 1)
		l.ErrorContext(ctx, "LLM call failed", slog.Any("error", err), slog.Duration("latency", elapsed))
		span.RecordError(err)
		span.SetStatus(codes.Error, "LLM call failed")
		return "", fmt.Errorf("%w: %w", types.ErrUpstream, err)
	}

	reply := ""
	if result != nil {
		reply = strings.TrimSpace(result.Text())
	}
	if reply == "" {
		ai.metrics.LLMErrorsTotal.Add(ctx, 1)
		l.WarnContext(ctx, "LLM returned an empty reply")
		span.SetStatus(codes.Error, "Empty reply")
		return "", fmt.Errorf("%w: empty reply from model", types.ErrUpstream)
	}

	l.DebugContext(ctx, "LLM reply received", slog.Duration("latency", elapsed), slog.Int("reply.length", len(reply)))
	span.SetStatus(codes.Ok, "Reply generated")
	return reply, nil
}
