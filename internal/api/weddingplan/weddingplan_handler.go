package weddingplan

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

type HandlerImpl struct {
	planService WeddingPlanService
	logger      *slog.Logger
}

func NewHandlerImpl(planService WeddingPlanService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{planService: planService, logger: logger}
}

// CreateWeddingPlan godoc
// @Summary      Create Wedding Plan
// @Description  Stores a plan with the standard planning timeline and updates the user's preferences.
// @Tags         Wedding Plans
// @Accept       json
// @Produce      json
// @Param        plan body types.CreateWeddingPlanParams true "Plan"
// @Success      200 {object} types.WeddingPlan
// @Failure      400 {object} api.Response "Invalid Input"
// @Failure      404 {object} api.Response "User Not Found"
// @Router       /wedding-plans [post]
func (h *HandlerImpl) CreateWeddingPlan(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreateWeddingPlan"))

	var params types.CreateWeddingPlanParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}

	plan, err := h.planService.CreatePlan(r.Context(), params)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "User not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}

// ListWeddingPlans godoc
// @Summary      List Wedding Plans
// @Tags         Wedding Plans
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {array} types.WeddingPlan
// @Failure      400 {object} api.Response "Invalid user ID"
// @Failure      404 {object} api.Response "User Not Found"
// @Router       /wedding-plans/{user_id} [get]
func (h *HandlerImpl) ListWeddingPlans(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "ListWeddingPlans"))

	userID, err := api.ParseUUIDParam("user id", chi.URLParam(r, "user_id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	plans, err := h.planService.ListPlans(r.Context(), userID)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "User not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, plans)
}
