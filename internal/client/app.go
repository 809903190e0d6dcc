package client

import (
	"context"
	"errors"
	"fmt"

	"go-folio/internal/config"
	"go-folio/internal/logger"
	"go-folio/internal/query"
	"go-folio/internal/service"
	"go-folio/internal/tui"
	"go-folio/internal/workers"
)

// App is the admin dashboard application. It owns the session lifecycle:
// sign in when no session is stored, run the dashboard, and on logout drop
// the session and start over.
type App struct {
	cfg      config.ClientConfig
	services *service.ClientServices
	queries  *query.Queries
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg config.ClientConfig, services *service.ClientServices, queries *query.Queries, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || queries == nil || ui == nil {
		return nil, errors.New("client app: missing dependencies")
	}
	return &App{cfg: cfg, services: services, queries: queries, ui: ui, logger: log}, nil
}

// Run blocks until the user quits. Quitting the login screen is a normal
// exit, not an error.
func (a *App) Run() error {
	ctx := context.Background()

	if !a.services.AuthService.IsAuthenticated() {
		if err := a.ui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
	}

	// The refresher is rebuilt per session: stopping it is final, and a
	// logout starts a fresh session.
	background := workers.New(workers.NewInboxRefresher(a.queries.Messages, a.cfg.Workers, a.logger))
	background.Run()

	logout, err := a.ui.MainLoop(ctx)
	background.Stop()
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if logout {
		if err := a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Msg("logged out, restarting login flow")
		return a.Run()
	}

	return nil
}
