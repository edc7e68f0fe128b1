// Package tui implements the terminal interface of the audit client: the
// login/registration flow and the main feed loop with capture, sync and
// detail screens. All blocking work (network, queue access) runs in
// Bubble Tea commands so the interface never freezes while offline.
package tui

import (
	"context"

	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	monitor  *connectivity.Monitor
}

func New(services *service.ClientServices, monitor *connectivity.Monitor, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, monitor: monitor}, nil
}

// LoginFlow runs the authentication screens and returns the agent ID of the
// authenticated agent. Returns ErrUserQuit if the agent exited the program
// instead of logging in.
func (t *TUI) LoginFlow(ctx context.Context) (agentID int64, err error) {
	model := newLoginAppModel(ctx, t.services, t.monitor)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return 0, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.err != nil {
		return 0, result.err
	}

	return result.resultAgentID, nil
}

// MainLoop runs the feed screen until the agent quits.
func (t *TUI) MainLoop(ctx context.Context, agentID int64) error {
	model := newMainAppModel(ctx, t.services, t.monitor, agentID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
