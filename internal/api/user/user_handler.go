package user

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

type HandlerImpl struct {
	userService UserService
	logger      *slog.Logger
}

// NewHandlerImpl creates a new user HandlerImpl instance.
func NewHandlerImpl(userService UserService, logger *slog.Logger) *HandlerImpl {
	if logger == nil {
		panic("PANIC: Attempting to create HandlerImpl with nil logger!")
	}
	return &HandlerImpl{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser godoc
// @Summary      Create User
// @Description  Registers a customer or vendor account with optional wedding preferences.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user body types.CreateUserParams true "User"
// @Success      200 {object} types.User
// @Failure      400 {object} api.Response "Invalid Input"
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /users [post]
func (h *HandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("HandlerImpl", "CreateUser"))

	var params types.CreateUserParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}

	user, err := h.userService.CreateUser(ctx, params)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "User not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, user)
}

// ListUsers godoc
// @Summary      List Users
// @Description  Returns up to 50 users in the order they were created.
// @Tags         Users
// @Produce      json
// @Success      200 {array} types.User
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /users [get]
func (h *HandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "ListUsers"))

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, users)
}

// GetUser godoc
// @Summary      Get User
// @Tags         Users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} types.User
// @Failure      400 {object} api.Response "Invalid user ID"
// @Failure      404 {object} api.Response "User Not Found"
// @Failure      500 {object} api.Response "Internal Server Error"
// @Router       /users/{id} [get]
func (h *HandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "GetUser"))

	userID, err := api.ParseUUIDParam("user id", chi.URLParam(r, "id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "User not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, user)
}
