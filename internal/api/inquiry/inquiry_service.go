package inquiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

// ListLimit caps both inquiry listings.
const ListLimit = 50

var _ InquiryService = (*InquiryServiceImpl)(nil)

type InquiryService interface {
	CreateInquiry(ctx context.Context, params types.CreateInquiryParams) (*types.Inquiry, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]types.Inquiry, error)
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]types.Inquiry, error)
}

type InquiryServiceImpl struct {
	logger *slog.Logger
	repo   InquiryRepo
}

func NewInquiryService(repo InquiryRepo, logger *slog.Logger) *InquiryServiceImpl {
	return &InquiryServiceImpl{logger: logger, repo: repo}
}

// CreateInquiry stores a pending inquiry. The user and vendor ids are not
// checked against their tables.
func (s *InquiryServiceImpl) CreateInquiry(ctx context.Context, params types.CreateInquiryParams) (*types.Inquiry, error) {
	ctx, span := otel.Tracer("InquiryService").Start(ctx, "CreateInquiry")
	defer span.End()

	if err := params.Validate(); err != nil {
		span.SetStatus(codes.Error, "Invalid input")
		return nil, err
	}

	inq := &types.Inquiry{
		ID:        uuid.New(),
		UserID:    params.UserID,
		VendorID:  params.VendorID,
		Message:   params.Message,
		Status:    types.InquiryPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateInquiry(ctx, inq); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create inquiry", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository error")
		return nil, fmt.Errorf("error creating inquiry: %w", err)
	}
	span.SetStatus(codes.Ok, "Inquiry created")
	return inq, nil
}

func (s *InquiryServiceImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]types.Inquiry, error) {
	inquiries, err := s.repo.ListByUser(ctx, userID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing user inquiries: %w", err)
	}
	return inquiries, nil
}

func (s *InquiryServiceImpl) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]types.Inquiry, error) {
	inquiries, err := s.repo.ListByVendor(ctx, vendorID, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing vendor inquiries: %w", err)
	}
	return inquiries, nil
}
