package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/service"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenFeed
	screenCapture
	screenDetail
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	monitor  *connectivity.Monitor

	mode          appMode
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	feed     feedModel
	capture  captureModel
	detail   detailModel

	agentID       int64
	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	resultAgentID int64
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices, monitor *connectivity.Monitor) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		monitor:       monitor,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		feed:          newFeedModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices, monitor *connectivity.Monitor, agentID int64) appModel {
	m := newLoginAppModel(ctx, services, monitor)
	m.mode = modeMain
	m.agentID = agentID
	m.currentScreen = screenFeed
	m.feed.loading = true
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.cmdLoadFeed(), m.cmdConnTick())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.resultAgentID = msg.agentID
		return m, tea.Quit
	case feedLoadedMsg:
		m.feed.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.feed.items = msg.entries
		m.feed.pending = msg.pending
		if m.feed.idx >= len(m.feed.items) {
			m.feed.idx = len(m.feed.items) - 1
		}
		if m.feed.idx < 0 {
			m.feed.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.feed.syncing = false
		if msg.err != nil {
			m.showErrorf("Сервер недоступен, синхронизация будет выполнена позже")
			return m, m.cmdLoadFeed()
		}
		m.feed.status = syncStatusMessage(msg.result)
		return m, tea.Batch(m.cmdLoadFeed(), cmdClearStatus())
	case captureSavedMsg:
		m.capture.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenFeed
		m.feed.status = "Проверка добавлена в очередь"
		m.feed.loading = true
		return m, tea.Batch(m.cmdLoadFeed(), cmdClearStatus())
	case connTickMsg:
		m.feed.conn = msg.state
		m.feed.pending = msg.pending
		return m, m.cmdConnTick()
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		m.feed.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.feed.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.feed.syncing {
			var cmd tea.Cmd
			m.feed.spinner, cmd = m.feed.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenFeed:
		return m.updateFeed(msg)
	case screenCapture:
		return m.updateCapture(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenFeed:
		body = m.feed.View()
	case screenCapture:
		body = m.capture.View()
	case screenDetail:
		body = m.detail.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
	m.login.submitting = false
	m.register.submitting = false
	m.capture.submitting = false
}

// ── Screen updates ──

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Логин и пароль обязательны")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.Agent{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.register.inputs[0].Value())
			login := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if name == "" || login == "" || pass == "" {
				m.showErrorf("Имя, логин и пароль обязательны")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Пароли не совпадают")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(models.Agent{Name: name, Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.feed.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.feed.searching = false
			m.feed.searchInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.feed.filter.Search = strings.TrimSpace(m.feed.searchInput.Value())
			m.feed.searching = false
			m.feed.searchInput.Blur()
			m.feed.loading = true
			return m, m.cmdLoadFeed()
		}

		var cmd tea.Cmd
		m.feed.searchInput, cmd = m.feed.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.feed.idx > 0 {
			m.feed.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.feed.idx < len(m.feed.items)-1 {
			m.feed.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.feed.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{item: item}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.capture = newCaptureModel()
		m.currentScreen = screenCapture
	case key.Matches(keyMsg, keys.sync):
		if m.feed.syncing {
			return m, nil
		}
		m.feed.syncing = true
		return m, tea.Batch(m.feed.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.refresh):
		m.feed.loading = true
		return m, m.cmdLoadFeed()
	case key.Matches(keyMsg, keys.search):
		m.feed.searching = true
		m.feed.searchInput.SetValue(m.feed.filter.Search)
		m.feed.searchInput.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.feed.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Payload.PlateNumber)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateCapture(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenFeed
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.capture = focusNextCapture(m.capture)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.capture = focusPrevCapture(m.capture)
			return m, nil
		case keyMsg.String() == "left":
			m.capture.statusIdx = (m.capture.statusIdx - 1 + len(captureStatusOptions)) % len(captureStatusOptions)
			return m, nil
		case keyMsg.String() == "right":
			m.capture.statusIdx = (m.capture.statusIdx + 1) % len(captureStatusOptions)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.capture.submitting {
				return m, nil
			}
			payload, err := m.capture.toPayload()
			if err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.capture.submitting = true
			return m, m.cmdCapture(payload)
		}
	}

	var cmd tea.Cmd
	m.capture.inputs[m.capture.focus], cmd = m.capture.inputs[m.capture.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenFeed
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.item.Payload.PlateNumber)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// ── Commands ──

func (m appModel) cmdLogin(agent models.Agent) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		token, err := auth.Login(ctx, agent)
		if err != nil {
			return captureSavedMsg{err: humanizeServerError(err)}
		}
		return authDoneMsg{agentID: token.AgentID}
	}
}

func (m appModel) cmdRegisterAndLogin(agent models.Agent) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if _, err := auth.Register(ctx, agent); err != nil {
			return captureSavedMsg{err: humanizeServerError(err)}
		}
		token, err := auth.Login(ctx, models.Agent{Login: agent.Login, Password: agent.Password})
		if err != nil {
			return captureSavedMsg{err: humanizeServerError(err)}
		}
		return authDoneMsg{agentID: token.AgentID}
	}
}

func (m appModel) cmdLoadFeed() tea.Cmd {
	ctx := m.ctx
	feedSvc := m.services.FeedService
	queueSvc := m.services.QueueService
	filter := m.feed.filter
	return func() tea.Msg {
		entries, err := feedSvc.MergedFeed(ctx, filter)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		pending, err := queueSvc.PendingCount(ctx)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		return feedLoadedMsg{entries: entries, pending: pending}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	return func() tea.Msg {
		result, err := svc.TriggerSync(ctx)
		return syncDoneMsg{result: result, err: err}
	}
}

func (m appModel) cmdCapture(payload models.AuditPayload) tea.Cmd {
	ctx := m.ctx
	svc := m.services.QueueService
	return func() tea.Msg {
		record, err := svc.Capture(ctx, payload)
		return captureSavedMsg{record: record, err: err}
	}
}

// cmdConnTick refreshes the connectivity badge and pending counter every
// couple of seconds while the feed screen is visible.
func (m appModel) cmdConnTick() tea.Cmd {
	ctx := m.ctx
	monitor := m.monitor
	queueSvc := m.services.QueueService
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		msg := connTickMsg{state: connectivity.StateUnknown}
		if monitor != nil {
			msg.state = monitor.State()
		}
		if pending, err := queueSvc.PendingCount(ctx); err == nil {
			msg.pending = pending
		}
		return msg
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return captureSavedMsg{err: fmt.Errorf("копирование: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── Helpers ──

func syncStatusMessage(result models.SyncResult) string {
	if result.Attempted == 0 {
		return "Очередь пуста"
	}
	if result.Failed == 0 {
		return fmt.Sprintf("Синхронизировано: %d", result.Synced)
	}
	return fmt.Sprintf("Синхронизировано %d из %d, ошибок: %d", result.Synced, result.Attempted, result.Failed)
}

func humanizeServerError(err error) error {
	if err == nil {
		return nil
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return fmt.Errorf("сервер недоступен, проверьте сеть")
	}

	return err
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextCapture(m captureModel) captureModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevCapture(m captureModel) captureModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
