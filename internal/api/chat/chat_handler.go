package chat

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

type HandlerImpl struct {
	chatService ChatService
	logger      *slog.Logger
}

func NewHandlerImpl(chatService ChatService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{chatService: chatService, logger: logger}
}

// Chat godoc
// @Summary      Chat With The Planner
// @Description  Sends one message to the AI wedding planner. Omitting session_id starts a new session.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        message body types.ChatRequest true "Message"
// @Success      200 {object} types.ChatResponse
// @Failure      400 {object} api.Response "Invalid Input"
// @Failure      404 {object} api.Response "User Not Found"
// @Failure      503 {object} api.Response "AI service unavailable"
// @Router       /chat [post]
func (h *HandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "Chat"))

	var req types.ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}

	resp, err := h.chatService.SendMessage(r.Context(), req)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "User not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// ListSessions godoc
// @Summary      List Chat Sessions
// @Description  The user's ten most recently updated sessions.
// @Tags         Chat
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {array} types.ChatSession
// @Failure      400 {object} api.Response "Invalid user ID"
// @Router       /chat-sessions/{user_id} [get]
func (h *HandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "ListSessions"))

	userID, err := api.ParseUUIDParam("user id", chi.URLParam(r, "user_id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	sessions, err := h.chatService.ListSessions(r.Context(), userID)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sessions)
}

// GetSession godoc
// @Summary      Get Chat Session
// @Tags         Chat
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        session_id path string true "Session ID"
// @Success      200 {object} types.ChatSession
// @Failure      400 {object} api.Response "Invalid user ID"
// @Failure      404 {object} api.Response "Chat session not found"
// @Router       /chat-sessions/{user_id}/{session_id} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "GetSession"))

	userID, err := api.ParseUUIDParam("user id", chi.URLParam(r, "user_id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	session, err := h.chatService.GetSession(r.Context(), userID, chi.URLParam(r, "session_id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "Chat session not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, session)
}
