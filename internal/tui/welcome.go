package tui

import (
	"fmt"
	"strings"
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{
		items: []string{"Войти", "Зарегистрироваться"},
	}
}

func (m welcomeModel) View() string {
	var b strings.Builder

	b.WriteString("ID │ Действие\n")
	b.WriteString("───┼──────────────────────\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s%d │ %s\n", cursor, i+1, item))
	}

	return renderPage("ПАРКОВОЧНЫЙ АУДИТ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ ↑/↓: навигация")
}
