package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netcoach-ai/netcoach/internal/domain"
	"github.com/netcoach-ai/netcoach/internal/repository"
)

func newTestSessionService(t *testing.T) (*SessionService, *repository.SessionRepository) {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewSessionRepository(db)
	return NewSessionService(repo), repo
}

func TestSessionService_Create(t *testing.T) {
	t.Parallel()

	svc, _ := newTestSessionService(t)

	sess, err := svc.Create(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, "New Chat", sess.Title)
}

func TestSessionService_ListAndMessages(t *testing.T) {
	t.Parallel()

	svc, repo := newTestSessionService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = repo.SaveMessage(ctx, a.ID, domain.RoleUser, "hi")
	require.NoError(t, err)
	_, err = repo.SaveMessage(ctx, a.ID, domain.RoleAssistant, "hello")
	require.NoError(t, err)

	sessions, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	msgs, err := svc.Messages(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)

	empty, err := svc.Messages(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
