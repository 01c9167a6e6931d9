package domain

import "time"

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message length bounds for a chat turn
const (
	MinMessageLen = 1
	MaxMessageLen = 8000
)

// Session represents a persistent conversation thread
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single chat message within a session
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the request to send a chat message
type ChatRequest struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

// ChatResponse is the response from a chat message
type ChatResponse struct {
	SessionID string   `json:"session_id"`
	Answer    string   `json:"answer"`
	Steps     []string `json:"steps,omitempty"`
}

// Answer is the result of one completion round trip, including any
// intermediate tool-call step descriptions.
type Answer struct {
	Text  string
	Steps []string
}

// ModerationDecision is the tri-state outcome of a moderation check.
// Indeterminate means the check could not be performed (no server key
// configured, or the moderation API failed) and the caller fails open.
type ModerationDecision int

const (
	ModerationAllowed ModerationDecision = iota
	ModerationBlocked
	ModerationIndeterminate
)
