package market

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
)

type HandlerImpl struct {
	marketService MarketService
	logger        *slog.Logger
}

func NewHandlerImpl(marketService MarketService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{marketService: marketService, logger: logger}
}

// GetMarketData godoc
// @Summary      Market Data
// @Description  Canned market summary for the category plus price and rating averages of matching local vendors.
// @Tags         Market
// @Produce      json
// @Param        category query string false "Category"
// @Param        location query string false "Location substring"
// @Success      200 {object} types.MarketData
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /market-data [get]
func (h *HandlerImpl) GetMarketData(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "GetMarketData"))
	q := r.URL.Query()

	data, err := h.marketService.MarketData(r.Context(),
		strings.TrimSpace(q.Get("category")), strings.TrimSpace(q.Get("location")))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, data)
}
