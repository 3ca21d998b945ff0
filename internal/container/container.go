package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-wedding-marketplace/app/db"
	"github.com/FACorreiaa/go-wedding-marketplace/config"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/chat"
	generativeAI "github.com/FACorreiaa/go-wedding-marketplace/internal/api/generative_ai"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/inquiry"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/market"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/stats"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/user"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/vendor"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api/weddingplan"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	UserHandler        *user.HandlerImpl
	VendorHandler      *vendor.HandlerImpl
	InquiryHandler     *inquiry.HandlerImpl
	WeddingPlanHandler *weddingplan.HandlerImpl
	ChatHandler        *chat.HandlerImpl
	MarketHandler      *market.HandlerImpl
	StatsHandler       *stats.HandlerImpl
}

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Handlers
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	// Run migrations *before* initializing the main pool
	if err = database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(ctx, dbConfig.ConnectionURL, cfg.Repositories.Postgres.MaxConns, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	aiClient, err := generativeAI.NewAIClient(ctx, generativeAI.Options{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		pool.Close()
		logger.Error("Failed to initialize LLM client", slog.Any("error", err))
		return nil, err
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Pool:     pool,
		Handlers: NewHandlers(pool, aiClient, cfg, logger),
	}, nil
}

// NewHandlers wires repositories, services and handlers over any DBTX.
// The ranker is only handed to the vendor service when enabled in config.
func NewHandlers(db database.DBTX, llm generativeAI.Gateway, cfg *config.Config, logger *slog.Logger) Handlers {
	userRepo := user.NewPostgresUserRepo(db, logger)
	userService := user.NewUserService(userRepo, logger)

	var ranker generativeAI.Gateway
	if cfg.LLM.RankRecommendations {
		ranker = llm
	}
	vendorRepo := vendor.NewPostgresVendorRepo(db, logger)
	vendorService := vendor.NewVendorService(vendorRepo, userRepo, ranker, logger)

	inquiryRepo := inquiry.NewPostgresInquiryRepo(db, logger)
	inquiryService := inquiry.NewInquiryService(inquiryRepo, logger)

	planRepo := weddingplan.NewPostgresWeddingPlanRepo(db, logger)
	planService := weddingplan.NewWeddingPlanService(planRepo, userRepo, logger)

	chatRepo := chat.NewPostgresChatRepo(db, logger)
	chatService := chat.NewChatService(chatRepo, userRepo, llm, logger)

	marketService := market.NewMarketService(vendorRepo, cfg.Cache.MarketDataTTL, logger)

	statsRepo := stats.NewPostgresStatsRepo(db, logger)
	statsService := stats.NewStatsService(statsRepo, logger)

	return Handlers{
		UserHandler:        user.NewHandlerImpl(userService, logger),
		VendorHandler:      vendor.NewHandlerImpl(vendorService, logger),
		InquiryHandler:     inquiry.NewHandlerImpl(inquiryService, logger),
		WeddingPlanHandler: weddingplan.NewHandlerImpl(planService, logger),
		ChatHandler:        chat.NewHandlerImpl(chatService, logger),
		MarketHandler:      market.NewHandlerImpl(marketService, logger),
		StatsHandler:       stats.NewHandlerImpl(statsService, logger),
	}
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
