package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-park-audit/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// captureModel is the manual capture form. Confidence is fixed at 1.0 for
// entries typed in by hand; automatic OCR captures arrive through the queue
// service directly and never pass through this form.
type captureModel struct {
	inputs     []textinput.Model
	focus      int
	statusIdx  int
	submitting bool
}

var captureStatusOptions = []models.AuditStatus{
	models.StatusUnpaid,
	models.StatusPaid,
	models.StatusExempt,
	models.StatusFlagged,
	models.StatusUnknown,
}

func newCaptureModel() captureModel {
	plate := textinput.New()
	plate.Placeholder = "А123ВС77"
	plate.CharLimit = 16
	plate.Width = 40
	plate.Focus()

	zone := textinput.New()
	zone.Placeholder = "зона (напр. Z-04)"
	zone.CharLimit = 16
	zone.Width = 40

	lat := textinput.New()
	lat.Placeholder = "широта"
	lat.CharLimit = 20
	lat.Width = 40

	lon := textinput.New()
	lon.Placeholder = "долгота"
	lon.CharLimit = 20
	lon.Width = 40

	notes := textinput.New()
	notes.Placeholder = "заметки (опционально)"
	notes.CharLimit = 256
	notes.Width = 40

	return captureModel{
		inputs: []textinput.Model{plate, zone, lat, lon, notes},
	}
}

// toPayload validates the form and assembles the audit payload.
func (m captureModel) toPayload() (models.AuditPayload, error) {
	plate := strings.TrimSpace(m.inputs[0].Value())
	zone := strings.TrimSpace(m.inputs[1].Value())
	latRaw := strings.TrimSpace(m.inputs[2].Value())
	lonRaw := strings.TrimSpace(m.inputs[3].Value())
	notes := strings.TrimSpace(m.inputs[4].Value())

	if plate == "" {
		return models.AuditPayload{}, fmt.Errorf("номер обязателен")
	}
	if zone == "" {
		return models.AuditPayload{}, fmt.Errorf("зона обязательна")
	}

	var lat, lon float64
	var err error
	if latRaw != "" {
		if lat, err = strconv.ParseFloat(latRaw, 64); err != nil {
			return models.AuditPayload{}, fmt.Errorf("широта должна быть числом")
		}
	}
	if lonRaw != "" {
		if lon, err = strconv.ParseFloat(lonRaw, 64); err != nil {
			return models.AuditPayload{}, fmt.Errorf("долгота должна быть числом")
		}
	}

	return models.AuditPayload{
		PlateNumber: plate,
		Zone:        zone,
		Latitude:    lat,
		Longitude:   lon,
		Confidence:  1.0,
		Status:      captureStatusOptions[m.statusIdx],
		Notes:       notes,
	}, nil
}

func (m captureModel) View() string {
	var b strings.Builder
	b.WriteString("Поле      │ Значение\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Номер     │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Зона      │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Широта    │ [" + m.inputs[2].View() + "]\n")
	b.WriteString("Долгота   │ [" + m.inputs[3].View() + "]\n")
	b.WriteString("Заметки   │ [" + m.inputs[4].View() + "]\n")
	b.WriteString("Вердикт   │ < " + statusLabel(captureStatusOptions[m.statusIdx]) + " >\n")

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	return renderPage(
		"НОВАЯ ПРОВЕРКА",
		strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ ←/→: вердикт │ enter: сохранить │ esc: отмена",
	)
}
