package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// feedModel holds the state of the main feed screen: the merged list of
// server-confirmed and pending entries, the connectivity badge and the
// pending counter shown in the status bar.
type feedModel struct {
	items   []models.MergedFeedEntry
	idx     int
	loading bool
	syncing bool
	status  string
	pending int
	conn    connectivity.State
	spinner spinner.Model

	searching   bool
	searchInput textinput.Model
	filter      models.FeedFilter
}

func newFeedModel() feedModel {
	search := textinput.New()
	search.Placeholder = "номер, зона или заметки"
	search.CharLimit = 64
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return feedModel{
		spinner:     sp,
		searchInput: search,
	}
}

func (m feedModel) current() (models.MergedFeedEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.MergedFeedEntry{}, false
	}
	return m.items[m.idx], true
}

func (m feedModel) View() string {
	var b strings.Builder

	b.WriteString("Связь: " + connectivityBadge(m.conn))
	b.WriteString(fmt.Sprintf(" │ В очереди: %d", m.pending))
	if m.syncing {
		b.WriteString(" │ " + m.spinner.View() + "Синхронизация...")
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("Статус: " + m.status + "\n")
	}
	if m.filter.Search != "" {
		b.WriteString("Поиск: " + m.filter.Search + "\n")
	}
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Поиск: [" + m.searchInput.View() + "]\n")
		return renderPage("ЛЕНТА ПРОВЕРОК", strings.TrimRight(b.String(), "\n"), "enter: применить │ esc: отмена")
	}

	if m.loading {
		b.WriteString("Загрузка ленты...\n")
		return renderPage("ЛЕНТА ПРОВЕРОК", strings.TrimRight(b.String(), "\n"), "")
	}

	if len(m.items) == 0 {
		b.WriteString("Проверок нет\n")
	} else {
		b.WriteString("     Номер      │ Зона   │ Вердикт  │ Время       │ Статус\n")
		b.WriteString("────────────────┼────────┼──────────┼─────────────┼─────────\n")
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			badge := "синхр."
			if item.Offline {
				badge = offlineBadgeStyle.Render("оффлайн")
			}

			b.WriteString(fmt.Sprintf(
				"%s %-14s│ %-6s │ %-8s │ %-11s │ %s\n",
				cursor,
				fitText(item.Payload.PlateNumber, 14),
				fitText(item.Payload.Zone, 6),
				fitText(statusLabel(item.Payload.Status), 8),
				formatTimestamp(item.Timestamp),
				badge,
			))
		}
	}

	return renderPage(
		"ЛЕНТА ПРОВЕРОК",
		strings.TrimRight(b.String(), "\n"),
		"n: новая │ s: синхр. │ r: обновить │ /: поиск │ enter: открыть │ c: коп. номер │ ↑/↓: нав.",
	)
}

func statusLabel(s models.AuditStatus) string {
	switch s {
	case models.StatusPaid:
		return "оплачено"
	case models.StatusUnpaid:
		return "неоплач."
	case models.StatusExempt:
		return "льгота"
	case models.StatusFlagged:
		return "помечено"
	default:
		return "неизв."
	}
}
