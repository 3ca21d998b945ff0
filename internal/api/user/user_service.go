package user

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

// ListLimit caps GET /users.
const ListLimit = 50

var _ UserService = (*UserServiceImpl)(nil)

// UserService defines the business logic contract for user operations.
type UserService interface {
	CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	ListUsers(ctx context.Context) ([]types.User, error)
}

// UserServiceImpl provides the implementation for UserService.
type UserServiceImpl struct {
	logger *slog.Logger
	repo   UserRepo
}

// NewUserService creates a new user service instance.
func NewUserService(repo UserRepo, logger *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// CreateUser validates params, assigns the id and creation time and stores
// the user.
func (s *UserServiceImpl) CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "CreateUser")
	defer span.End()
	l := s.logger.With(slog.String("method", "CreateUser"))

	if err := params.Validate(); err != nil {
		span.SetStatus(codes.Error, "Invalid input")
		return nil, err
	}

	user := &types.User{
		ID:          uuid.New(),
		Name:        params.Name,
		Email:       params.Email,
		Phone:       params.Phone,
		Role:        params.Role,
		Preferences: params.Preferences,
		CreatedAt:   time.Now().UTC(),
	}
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	if err := s.repo.CreateUser(ctx, user); err != nil {
		l.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	l.InfoContext(ctx, "User created", slog.String("userID", user.ID.String()))
	span.SetStatus(codes.Ok, "User created")
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "GetUser", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "GetUser"), slog.String("userID", userID.String()))
	l.DebugContext(ctx, "Fetching user")

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	span.SetStatus(codes.Ok, "User fetched")
	return user, nil
}

// ListUsers returns up to ListLimit users in insertion order.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]types.User, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "ListUsers")
	defer span.End()

	users, err := s.repo.ListUsers(ctx, ListLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list users", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	span.SetStatus(codes.Ok, "Users listed")
	return users, nil
}
