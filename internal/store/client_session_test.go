package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/models"
)

func newTestSessionStore(t *testing.T, path string) SessionStore {
	t.Helper()
	s, err := NewSessionStore(context.Background(), config.ClientStorage{SessionPath: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionStore_EmptyByDefault(t *testing.T) {
	s := newTestSessionStore(t, filepath.Join(t.TempDir(), "session.db"))

	assert.Empty(t, s.Token())

	_, ok := s.User()
	assert.False(t, ok)
}

func TestSessionStore_SaveSetsTokenAndUserTogether(t *testing.T) {
	s := newTestSessionStore(t, filepath.Join(t.TempDir(), "session.db"))

	user := models.User{ID: 1, Username: "admin"}
	require.NoError(t, s.Save(context.Background(), "abc", user))

	assert.Equal(t, "abc", s.Token())

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestSessionStore_ClearRemovesBoth(t *testing.T) {
	s := newTestSessionStore(t, filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, s.Save(context.Background(), "abc", models.User{ID: 1, Username: "admin"}))
	require.NoError(t, s.Clear(context.Background()))

	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestSessionStore_ClearWithoutSessionIsNoError(t *testing.T) {
	s := newTestSessionStore(t, filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, s.Clear(context.Background()))
}

func TestSessionStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first := newTestSessionStore(t, path)
	require.NoError(t, first.Save(context.Background(), "abc", models.User{ID: 1, Username: "admin"}))
	require.NoError(t, first.Close())

	second := newTestSessionStore(t, path)
	assert.Equal(t, "abc", second.Token())

	user, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, "admin", user.Username)
}

func TestSessionStore_SaveReplacesPreviousSession(t *testing.T) {
	s := newTestSessionStore(t, filepath.Join(t.TempDir(), "session.db"))

	require.NoError(t, s.Save(context.Background(), "first", models.User{ID: 1, Username: "admin"}))
	require.NoError(t, s.Save(context.Background(), "second", models.User{ID: 1, Username: "admin"}))

	assert.Equal(t, "second", s.Token())
}

func TestNewSessionStore_EmptyPath(t *testing.T) {
	_, err := NewSessionStore(context.Background(), config.ClientStorage{}, logger.Nop())
	require.Error(t, err)
}
