package weddingplan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

// ListLimit caps GET /wedding-plans/{user_id}.
const ListLimit = 10

var _ WeddingPlanService = (*WeddingPlanServiceImpl)(nil)

// UserStore is the part of the user store plans read and update.
type UserStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs types.Preferences) error
}

type WeddingPlanService interface {
	CreatePlan(ctx context.Context, params types.CreateWeddingPlanParams) (*types.WeddingPlan, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]types.WeddingPlan, error)
}

type WeddingPlanServiceImpl struct {
	logger *slog.Logger
	repo   WeddingPlanRepo
	users  UserStore
}

func NewWeddingPlanService(repo WeddingPlanRepo, users UserStore, logger *slog.Logger) *WeddingPlanServiceImpl {
	return &WeddingPlanServiceImpl{logger: logger, repo: repo, users: users}
}

// CreatePlan stores the plan with the standard timeline and then replaces the
// owner's preferences with the plan's budget, guests, location, style and
// date. The two writes are independent; a failed preference update is
// reported after the plan already exists.
func (s *WeddingPlanServiceImpl) CreatePlan(ctx context.Context, params types.CreateWeddingPlanParams) (*types.WeddingPlan, error) {
	ctx, span := otel.Tracer("WeddingPlanService").Start(ctx, "CreatePlan", trace.WithAttributes(
		attribute.String("user.id", params.UserID.String()),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "CreatePlan"), slog.String("userID", params.UserID.String()))

	if err := params.Validate(); err != nil {
		span.SetStatus(codes.Error, "Invalid input")
		return nil, err
	}
	if _, err := s.users.GetUserByID(ctx, params.UserID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "User lookup failed")
		return nil, fmt.Errorf("error fetching plan owner: %w", err)
	}

	plan := &types.WeddingPlan{
		ID:              uuid.New(),
		UserID:          params.UserID,
		Budget:          params.Budget,
		GuestCount:      params.GuestCount,
		WeddingDate:     params.WeddingDate.UTC(),
		Location:        params.Location,
		StylePreference: params.StylePreference,
		SelectedVendors: []string{},
		Timeline:        GenerateTimeline(),
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		l.ErrorContext(ctx, "Failed to create wedding plan", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error creating wedding plan: %w", err)
	}

	if err := s.users.UpdatePreferences(ctx, params.UserID, params.Preferences()); err != nil {
		l.ErrorContext(ctx, "Wedding plan stored but preferences not updated",
			slog.String("planID", plan.ID.String()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Preference update failed")
		return nil, fmt.Errorf("error updating user preferences: %w", err)
	}

	l.InfoContext(ctx, "Wedding plan created", slog.String("planID", plan.ID.String()))
	span.SetStatus(codes.Ok, "Wedding plan created")
	return plan, nil
}

func (s *WeddingPlanServiceImpl) ListPlans(ctx context.Context, userID uuid.UUID) ([]types.WeddingPlan, error) {
	ctx, span := otel.Tracer("WeddingPlanService").Start(ctx, "ListPlans", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
	))
	defer span.End()

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error fetching plan owner: %w", err)
	}
	plans, err := s.repo.ListByUser(ctx, userID, ListLimit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error listing wedding plans: %w", err)
	}
	span.SetStatus(codes.Ok, "Wedding plans listed")
	return plans, nil
}
