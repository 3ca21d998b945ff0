package stats

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

// VendorCategories is the category list advertised by /stats.
var VendorCategories = []string{"Photography", "Catering", "Venues", "Decoration", "Music", "Transportation"}

var _ StatsService = (*StatsServiceImpl)(nil)

type StatsService interface {
	PlatformStats(ctx context.Context) (*types.PlatformStats, error)
}

type StatsServiceImpl struct {
	logger *slog.Logger
	repo   StatsRepo
}

func NewStatsService(repo StatsRepo, logger *slog.Logger) *StatsServiceImpl {
	return &StatsServiceImpl{logger: logger, repo: repo}
}

// PlatformStats counts every collection concurrently; any failing count
// fails the whole call.
func (s *StatsServiceImpl) PlatformStats(ctx context.Context) (*types.PlatformStats, error) {
	ctx, span := otel.Tracer("StatsService").Start(ctx, "PlatformStats")
	defer span.End()

	stats := &types.PlatformStats{
		VendorCategories: append([]string(nil), VendorCategories...),
	}
	targets := []struct {
		collection Collection
		dst        *int64
	}{
		{Users, &stats.TotalUsers},
		{Vendors, &stats.TotalVendors},
		{Inquiries, &stats.TotalInquiries},
		{WeddingPlans, &stats.TotalWeddingPlans},
		{ChatSessions, &stats.TotalChatSessions},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		g.Go(func() error {
			n, err := s.repo.Count(gctx, target.collection)
			if err != nil {
				return err
			}
			*target.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to collect platform stats", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Count failed")
		return nil, fmt.Errorf("error collecting platform stats: %w", err)
	}
	span.SetStatus(codes.Ok, "Stats collected")
	return stats, nil
}
