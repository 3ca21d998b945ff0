package market

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

var _ MarketService = (*MarketServiceImpl)(nil)

// VendorAggregator is the part of the vendor store market data reads.
type VendorAggregator interface {
	AggregateVendors(ctx context.Context, filter types.VendorFilter) (*types.VendorAggregate, error)
}

type MarketService interface {
	MarketData(ctx context.Context, category, location string) (*types.MarketData, error)
}

type MarketServiceImpl struct {
	logger  *slog.Logger
	vendors VendorAggregator
	cache   *cache.Cache
}

// NewMarketService caches results for ttl, keyed by category and location.
func NewMarketService(vendors VendorAggregator, ttl time.Duration, logger *slog.Logger) *MarketServiceImpl {
	return &MarketServiceImpl{
		logger:  logger,
		vendors: vendors,
		cache:   cache.New(ttl, 2*ttl),
	}
}

// MarketData combines the canned summary for category with averages over the
// local vendors matching category and location. Both match case-insensitively,
// so one cache entry serves every casing.
func (s *MarketServiceImpl) MarketData(ctx context.Context, category, location string) (*types.MarketData, error) {
	ctx, span := otel.Tracer("MarketService").Start(ctx, "MarketData", trace.WithAttributes(
		attribute.String("category", category),
		attribute.String("location", location),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "MarketData"))

	cacheKey := strings.ToLower(category) + "|" + strings.ToLower(location)
	span.SetAttributes(attribute.String("cache.key", cacheKey))
	if cached, found := s.cache.Get(cacheKey); found {
		if data, ok := cached.(types.MarketData); ok {
			data.Category, data.Location = category, location
			l.DebugContext(ctx, "Cache hit for market data", slog.String("cache_key", cacheKey))
			span.SetStatus(codes.Ok, "Market data served from cache")
			return &data, nil
		}
	}

	agg, err := s.vendors.AggregateVendors(ctx, types.VendorFilter{Category: category, Location: location})
	if err != nil {
		l.ErrorContext(ctx, "Failed to aggregate vendors", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Aggregate failed")
		return nil, fmt.Errorf("error computing market data: %w", err)
	}

	info, topic := Lookup(category)
	data := types.MarketData{
		Category:        category,
		Location:        location,
		MarketInfo:      info,
		VendorAggregate: *agg,
	}
	s.cache.Set(cacheKey, data, cache.DefaultExpiration)

	span.SetAttributes(attribute.String("market.topic", topic), attribute.Int64("vendor.count", agg.VendorCount))
	span.SetStatus(codes.Ok, "Market data computed")
	return &data, nil
}
