// Package tui is the terminal client: login and registration, the live note
// list, the note editor and the shared marker view.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"geonotes/internal/logger"
	"geonotes/internal/service"
	"geonotes/models"
)

var ErrUserQuit = errors.New("user quit")

// Authenticator is the slice of the server adapter the TUI needs for the
// login flow.
type Authenticator interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
}

type TUI struct {
	services  *service.ClientServices
	auth      Authenticator
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, auth Authenticator, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		auth:      auth,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run drives the whole terminal session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.auth, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
