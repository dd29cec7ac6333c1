// Package tui implements the interactive terminal UI for sheetbook: a
// contact table, a three-field form, a sort control, session statistics,
// and a transient success banner.
package tui

import (
	"github.com/Iron-Ham/sheetbook/internal/config"
	"github.com/Iron-Ham/sheetbook/internal/logging"
	"github.com/Iron-Ham/sheetbook/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(client store.Client, cfg *config.Config, logger *logging.Logger) *App {
	return &App{
		model: NewModel(client, cfg, logger),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	_, err := a.program.Run()
	return err
}
