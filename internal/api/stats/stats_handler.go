package stats

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
)

type HandlerImpl struct {
	statsService StatsService
	logger       *slog.Logger
}

func NewHandlerImpl(statsService StatsService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{statsService: statsService, logger: logger}
}

// GetStats godoc
// @Summary      Platform Stats
// @Description  Record counts per collection and the advertised vendor categories.
// @Tags         Stats
// @Produce      json
// @Success      200 {object} types.PlatformStats
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /stats [get]
func (h *HandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "GetStats"))

	stats, err := h.statsService.PlatformStats(r.Context())
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, stats)
}
