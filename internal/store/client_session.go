// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/models"
)

// The session table holds at most one row. Token and user travel together in
// the same statement, so a partial session can never be observed.
const (
	createSessionSchema = `CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		user_json TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	selectSession = `SELECT token, user_json FROM session WHERE id = 1;`

	replaceSession = `INSERT INTO session (id, token, user_json, saved_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			user_json = excluded.user_json,
			saved_at = excluded.saved_at;`

	deleteSession = `DELETE FROM session WHERE id = 1;`
)

// sqliteSessionStore is the SQLite-backed implementation of [SessionStore].
// The current session is mirrored in memory; the database is touched only on
// Save and Clear.
type sqliteSessionStore struct {
	db     *sql.DB
	logger *logger.Logger

	mu      sync.RWMutex
	token   string
	user    models.User
	hasUser bool
}

// NewSessionStore opens (creating if necessary) the SQLite session database
// at cfg.SessionPath, ensures the schema exists, and loads any persisted
// session into memory.
func NewSessionStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (SessionStore, error) {
	if err := createSessionFileIfNotExists(cfg.SessionPath); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating session database file")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.SessionPath)
	if err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error connecting session database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createSessionSchema); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error creating session schema")
		return nil, fmt.Errorf("error creating session schema: %w", err)
	}

	s := &sqliteSessionStore{db: conn, logger: log}
	if err = s.load(ctx); err != nil {
		return nil, err
	}

	log.Debug().Str("func", "NewSessionStore").Str("path", cfg.SessionPath).Msg("session store ready")
	return s, nil
}

func createSessionFileIfNotExists(path string) error {
	if path == "" {
		return errors.New("empty session database path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating session directory: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating session database file: %w", err)
		}
		f.Close()
	}

	return nil
}

// load reads the persisted session row into memory. A missing row leaves the
// store logged out.
func (s *sqliteSessionStore) load(ctx context.Context) error {
	var (
		token    string
		userJSON string
	)

	err := s.db.QueryRowContext(ctx, selectSession).Scan(&token, &userJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("error reading persisted session: %w", err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(userJSON), &user); err != nil {
		// A corrupt user record invalidates the whole session.
		s.logger.Warn().Err(err).Str("func", "*sqliteSessionStore.load").Msg("discarding undecodable session")
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.hasUser = true
	s.mu.Unlock()

	return nil
}

// Save implements [SessionStore].
func (s *sqliteSessionStore) Save(ctx context.Context, token string, user models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding session user: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, replaceSession, token, string(userJSON)); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.Save").Msg("error persisting session")
		return fmt.Errorf("error persisting session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.hasUser = true
	s.mu.Unlock()

	return nil
}

// Clear implements [SessionStore].
func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteSession); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.Clear").Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = models.User{}
	s.hasUser = false
	s.mu.Unlock()

	return nil
}

// Token implements [SessionStore].
func (s *sqliteSessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User implements [SessionStore].
func (s *sqliteSessionStore) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.hasUser
}

// Close implements [SessionStore].
func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
