package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"go-folio/internal/logger"
	"go-folio/internal/query"
	"go-folio/internal/service"
)

// ErrUserQuit reports that the user closed the dashboard before signing in.
var ErrUserQuit = errors.New("quit before signing in")

type TUI struct {
	services *service.ClientServices
	queries  *query.Queries
	logger   *logger.Logger
}

func New(services *service.ClientServices, queries *query.Queries, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, queries: queries, logger: logger}, nil
}

// LoginFlow runs the sign-in screen until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginModel(ctx, t.services.AuthService)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(*loginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the dashboard until the user quits or logs out. A logout
// return of true means the caller should drop the session and restart the
// login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.queries)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
