package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render("Ошибка: " + m.message + "\n\nenter/esc: закрыть")
}
