package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/netcoach-ai/netcoach/internal/domain"
)

// SessionRepository handles session and message persistence
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a new session. Returns domain.ErrConflict if
// the id is already taken.
func (r *SessionRepository) CreateSession(ctx context.Context, id, title string) (*domain.Session, error) {
	session := &domain.Session{
		ID:        id,
		Title:     title,
		CreatedAt: time.Now(),
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, title, created_at)
		VALUES (?, ?, ?)
	`, session.ID, session.Title, session.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}

	return session, nil
}

// GetSession retrieves a session by id. Returns nil, nil when absent.
func (r *SessionRepository) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session := &domain.Session{}

	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, created_at
		FROM sessions WHERE id = ?
	`, id).Scan(&session.ID, &session.Title, &session.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ListSessions returns all sessions, most recent first
func (r *SessionRepository) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, created_at
		FROM sessions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		session := &domain.Session{}
		if err := rows.Scan(&session.ID, &session.Title, &session.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// UpdateTitle updates a session's title. Silently no-ops when the
// session does not exist.
func (r *SessionRepository) UpdateTitle(ctx context.Context, id, title string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET title = ? WHERE id = ?`, title, id)
	return err
}

// SaveMessage appends one message to a session, stamping the current
// time. Returns domain.ErrNotFound if the session does not exist.
func (r *SessionRepository) SaveMessage(ctx context.Context, sessionID, role, content string) (*domain.Message, error) {
	message := &domain.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (session_id, role, content, timestamp)
		VALUES (?, ?, ?, ?)
	`, message.SessionID, message.Role, message.Content, message.Timestamp)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	message.ID, _ = res.LastInsertId()
	return message, nil
}

// SaveExchange appends a user message and its assistant reply in a
// single transaction, so a turn persists both messages or neither.
func (r *SessionRepository) SaveExchange(ctx context.Context, sessionID, userContent, assistantContent string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := `INSERT INTO messages (session_id, role, content, timestamp) VALUES (?, ?, ?, ?)`

	if _, err := tx.ExecContext(ctx, insert, sessionID, domain.RoleUser, userContent, time.Now()); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	if _, err := tx.ExecContext(ctx, insert, sessionID, domain.RoleAssistant, assistantContent, time.Now()); err != nil {
		return err
	}

	return tx.Commit()
}

// GetMessages retrieves all messages for a session, oldest first.
// Unknown session ids yield an empty slice, not an error.
func (r *SessionRepository) GetMessages(ctx context.Context, sessionID string) ([]*domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, role, content, timestamp
		FROM messages WHERE session_id = ?
		ORDER BY timestamp ASC, id ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		message := &domain.Message{}
		if err := rows.Scan(&message.ID, &message.SessionID, &message.Role,
			&message.Content, &message.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
