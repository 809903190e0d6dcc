package service

import (
	"context"
	"fmt"

	"go-folio/internal/adapter"
	"go-folio/internal/store"
	"go-folio/models"
)

type clientAuthService struct {
	session store.SessionStore
	gateway adapter.Gateway
}

func NewClientAuthService(session store.SessionStore, gateway adapter.Gateway) ClientAuthService {
	return &clientAuthService{session: session, gateway: gateway}
}

// Login implements ClientAuthService. The token and the user snapshot are
// written in a single Save call so a crash between the two can never leave a
// half-formed session behind.
func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	response, err := a.gateway.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if err := a.session.Save(ctx, response.Token, response.User); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}

	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	return nil
}

func (a *clientAuthService) Token() string {
	return a.session.Token()
}

func (a *clientAuthService) User() (models.User, bool) {
	return a.session.User()
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.session.Token() != ""
}
