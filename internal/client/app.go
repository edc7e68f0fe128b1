package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/service"
	"github.com/MKhiriev/go-park-audit/internal/tui"
	"github.com/MKhiriev/go-park-audit/models"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	monitor  *connectivity.Monitor
	cfg      config.AgentConfig
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, monitor *connectivity.Monitor, cfg config.AgentConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services: services,
		tui:      ui,
		monitor:  monitor,
		cfg:      cfg,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	if a.monitor != nil {
		a.monitor.Start(ctx)
		defer a.monitor.Stop()
	}

	agentID, err := a.authenticate(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	// best-effort initial drain; the background job retries later
	if _, err = a.services.SyncService.TriggerSync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, will retry in background")
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
	}

	a.services.SyncJob.Start(ctx)
	defer a.services.SyncJob.Stop()

	return a.tui.MainLoop(ctx, agentID)
}

// authenticate logs the agent in with the configured credentials when both
// are present, and falls back to the interactive login flow otherwise.
func (a *App) authenticate(ctx context.Context) (int64, error) {
	if a.cfg.Login != "" && a.cfg.Password != "" {
		token, err := a.services.AuthService.Login(ctx, models.Agent{
			Login:    a.cfg.Login,
			Password: a.cfg.Password,
			Name:     a.cfg.Name,
		})
		if err == nil {
			a.logger.Info().Int64("agent_id", token.AgentID).Msg("non-interactive login succeeded")
			return token.AgentID, nil
		}
		a.logger.Warn().Err(err).Msg("non-interactive login failed, falling back to interactive flow")
	}

	return a.tui.LoginFlow(ctx)
}
