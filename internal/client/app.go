package client

import (
	"context"
	"errors"

	"geonotes/internal/adapter"
	"geonotes/internal/config"
	"geonotes/internal/logger"
	"geonotes/internal/store"
	"geonotes/internal/tui"
	"geonotes/internal/workers"
)

type App struct {
	workers *workers.Workers
	ui      *tui.TUI
	logger  *logger.Logger
}

func NewApp(cfg *config.ClientConfig, ui *tui.TUI, server adapter.ServerAdapter, storages *store.ClientStorages, log *logger.Logger) *App {
	return &App{
		workers: workers.NewWorkers(server, storages.NoteCache, cfg.Workers, log),
		ui:      ui,
		logger:  log,
	}
}

// Run starts the background snapshot pump and hands the terminal to the
// TUI. Everything stops when the TUI returns.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.workers.Run(ctx)

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}

	return nil
}
