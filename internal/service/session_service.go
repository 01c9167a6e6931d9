package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/netcoach-ai/netcoach/internal/domain"
	"github.com/netcoach-ai/netcoach/internal/repository"
)

// SessionService handles session creation and transcript reads
type SessionService struct {
	sessions *repository.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessions *repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create creates a session with a generated id and default title
func (s *SessionService) Create(ctx context.Context) (*domain.Session, error) {
	return s.sessions.CreateSession(ctx, uuid.New().String(), defaultTitle)
}

// List returns all sessions, most recent first
func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.ListSessions(ctx)
}

// Messages returns a session's transcript, oldest first. Unknown ids
// yield an empty transcript.
func (s *SessionService) Messages(ctx context.Context, sessionID string) ([]*domain.Message, error) {
	return s.sessions.GetMessages(ctx, sessionID)
}
