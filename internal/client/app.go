package client

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/internal/workers"
)

var errNoUI = errors.New("no ui is provided")

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the UI and keeps every collection subscribed under the current
// identity until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	program := a.ui.Program(ctx)

	job := service.NewClientSubscriptionJob(
		a.services.Session,
		tui.ViewHandler(program),
		tui.StreamErrorHandler(program, a.logger),
		a.logger,
		a.services.SyncServices()...,
	)
	background := workers.NewWorkers(job)
	background.Start(ctx)
	defer background.Stop()

	a.logger.Info().Msg("client started")
	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}

	// signing out on exit releases the token along with the subscriptions
	a.services.Session.SignOut()
	a.logger.Info().Msg("client stopped")
	return nil
}
