package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-wedding-marketplace/docs"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/container"
)

const apiVersion = "1.0"

// Config contains dependencies needed for the router setup
type Config struct {
	container.Handlers
	MetricsHandler http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
				"message": "AI Wedding Services Platform API",
				"version": apiVersion,
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", cfg.UserHandler.CreateUser)
			r.Get("/", cfg.UserHandler.ListUsers)
			r.Get("/{id}", cfg.UserHandler.GetUser)
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/", cfg.VendorHandler.CreateVendor)
			r.Get("/", cfg.VendorHandler.ListVendors)
			r.Get("/{id}", cfg.VendorHandler.GetVendor)
		})
		r.Get("/recommendations/{user_id}", cfg.VendorHandler.GetRecommendations)

		r.Post("/chat", cfg.ChatHandler.Chat)
		r.Get("/chat-sessions/{user_id}", cfg.ChatHandler.ListSessions)
		r.Get("/chat-sessions/{user_id}/{session_id}", cfg.ChatHandler.GetSession)

		r.Post("/wedding-plans", cfg.WeddingPlanHandler.CreateWeddingPlan)
		r.Get("/wedding-plans/{user_id}", cfg.WeddingPlanHandler.ListWeddingPlans)

		r.Route("/inquiries", func(r chi.Router) {
			r.Post("/", cfg.InquiryHandler.CreateInquiry)
			r.Get("/user/{user_id}", cfg.InquiryHandler.ListUserInquiries)
			r.Get("/vendor/{vendor_id}", cfg.InquiryHandler.ListVendorInquiries)
		})

		r.Get("/stats", cfg.StatsHandler.GetStats)
		r.Get("/market-data", cfg.MarketHandler.GetMarketData)
	})

	return r
}
