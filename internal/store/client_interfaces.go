package store

import (
	"context"

	"go-folio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore persists the admin client's login session between runs. Token
// and user record are written and cleared together; no code path stores one
// without the other.
//
// Token and User are synchronous in-memory reads so the transport layer can
// consult the store on every outgoing request without touching the database.
type SessionStore interface {
	// Save persists the token and the user record from one login response
	// atomically, replacing any previous session.
	Save(ctx context.Context, token string, user models.User) error

	// Clear removes the persisted session. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context) error

	// Token returns the persisted bearer token, or an empty string when no
	// session is active. Implements the transport layer's token source.
	Token() string

	// User returns the persisted user record. ok is false when no session is
	// active.
	User() (user models.User, ok bool)

	// Close releases the underlying database handle.
	Close() error
}
