package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-park-audit/models"
)

type detailModel struct {
	item   models.MergedFeedEntry
	status string
}

func (m detailModel) View() string {
	item := m.item

	var b strings.Builder
	b.WriteString("[ ПРОВЕРКА ]\n")
	b.WriteString("Номер     : " + item.Payload.PlateNumber + "\n")
	b.WriteString("Зона      : " + valueOrDash(item.Payload.Zone) + "\n")
	b.WriteString("Вердикт   : " + statusLabel(item.Payload.Status) + "\n")
	b.WriteString(fmt.Sprintf("Координаты: %.6f, %.6f\n", item.Payload.Latitude, item.Payload.Longitude))
	b.WriteString(fmt.Sprintf("OCR       : %.0f%%\n", item.Payload.Confidence*100))
	b.WriteString("Время     : " + formatTimestamp(item.Timestamp) + "\n")

	b.WriteString("\n[ ДОСТАВКА ]\n")
	if item.Offline {
		b.WriteString("Состояние : " + offlineBadgeStyle.Render("оффлайн, ждёт отправки") + "\n")
		b.WriteString("Local ID  : " + item.LocalID + "\n")
	} else {
		b.WriteString("Состояние : подтверждено сервером\n")
		b.WriteString(fmt.Sprintf("Entry ID  : %d\n", item.EntryID))
	}

	b.WriteString("\n[ ЗАМЕТКИ ]\n")
	if strings.TrimSpace(item.Payload.Notes) != "" {
		b.WriteString(item.Payload.Notes + "\n")
	} else {
		b.WriteString("(пусто)\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(
		"ПРОВЕРКА: "+item.Payload.PlateNumber,
		strings.TrimRight(b.String(), "\n"),
		"c: копировать номер │ esc: назад",
	)
}
