package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type ConversationMessage struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// ChatSession is one conversation thread, unique per (UserID, SessionID).
// Context is the user's preferences at the moment the session was opened.
type ChatSession struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	SessionID string                `json:"session_id"`
	Messages  []ConversationMessage `json:"messages"`
	Context   Preferences           `json:"context"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type ChatRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	SessionID *string   `json:"session_id,omitempty"`
}

func (r *ChatRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	switch {
	case r.UserID == uuid.Nil:
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	case r.Message == "":
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if r.SessionID != nil {
		trimmed := strings.TrimSpace(*r.SessionID)
		if trimmed == "" {
			r.SessionID = nil
		} else {
			r.SessionID = &trimmed
		}
	}
	return nil
}

type ChatResponse struct {
	Response      string   `json:"response"`
	SessionID     string   `json:"session_id"`
	Suggestions   []string `json:"suggestions"`
	WebSearchUsed bool     `json:"web_search_used"`
}
