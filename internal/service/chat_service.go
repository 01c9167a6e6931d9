package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/domain"
	"github.com/netcoach-ai/netcoach/internal/repository"
)

// DefaultSessionID is used when a chat request names no session.
const DefaultSessionID = "default"

// defaultTitle is the placeholder until the first turn generates one.
const defaultTitle = "New Chat"

// Completer generates answers and session titles. Implemented by
// llm.Client; faked in tests.
type Completer interface {
	Answer(ctx context.Context, credential string, history []*domain.Message, message string) (domain.Answer, error)
	GenerateTitle(ctx context.Context, credential, message string) (string, error)
}

// Moderator classifies a message before it reaches the completion
// collaborator. Indeterminate decisions are treated as allowed.
type Moderator interface {
	Moderate(ctx context.Context, text string) domain.ModerationDecision
}

// ChatService runs a chat turn: validate, moderate, resolve the
// session, generate a title on the first turn, request a completion,
// and persist the exchange.
type ChatService struct {
	sessions  *repository.SessionRepository
	completer Completer
	moderator Moderator
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	sessions *repository.SessionRepository,
	completer Completer,
	moderator Moderator,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		sessions:  sessions,
		completer: completer,
		moderator: moderator,
		logger:    logger,
	}
}

// Chat handles one turn. Nothing is persisted until the completion
// succeeds: a turn stores the user message and its reply together, or
// nothing at all.
func (s *ChatService) Chat(ctx context.Context, credential string, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if err := validateMessage(req.Message); err != nil {
		return nil, err
	}
	if credential == "" {
		return nil, domain.ErrMissingCredential
	}

	switch s.moderator.Moderate(ctx, req.Message) {
	case domain.ModerationBlocked:
		return nil, domain.ErrPolicyBlocked
	case domain.ModerationIndeterminate:
		s.logger.Debug("moderation unavailable, allowing message")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	if err := s.resolveSession(ctx, sessionID); err != nil {
		return nil, err
	}

	history, err := s.sessions.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		s.generateTitle(ctx, credential, sessionID, req.Message)
	}

	answer, err := s.completer.Answer(ctx, credential, history, req.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	if err := s.sessions.SaveExchange(ctx, sessionID, req.Message, answer.Text); err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		SessionID: sessionID,
		Answer:    answer.Text,
		Steps:     answer.Steps,
	}, nil
}

// resolveSession creates the session with a placeholder title when it
// does not exist yet.
func (s *ChatService) resolveSession(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess != nil {
		return nil
	}

	if _, err := s.sessions.CreateSession(ctx, sessionID, defaultTitle); err != nil {
		// A concurrent turn may have created it in between.
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return nil
}

// generateTitle asks the completer for a short session title. Any
// failure here degrades gracefully; the turn proceeds with the
// placeholder title.
func (s *ChatService) generateTitle(ctx context.Context, credential, sessionID, message string) {
	title, err := s.completer.GenerateTitle(ctx, credential, message)
	if err != nil {
		s.logger.Warn("title generation failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return
	}
	if title == "" {
		return
	}
	if err := s.sessions.UpdateTitle(ctx, sessionID, title); err != nil {
		s.logger.Warn("title update failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

func validateMessage(message string) error {
	n := utf8.RuneCountInString(message)
	if n < domain.MinMessageLen {
		return fmt.Errorf("%w: message is empty", domain.ErrInvalidMessage)
	}
	if n > domain.MaxMessageLen {
		return fmt.Errorf("%w: message exceeds %d characters", domain.ErrInvalidMessage, domain.MaxMessageLen)
	}
	return nil
}
