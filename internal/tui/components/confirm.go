package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackinhq/trackin/internal/tui/themes"
)

// ConfirmModel is a yes/no modal for destructive actions.
type ConfirmModel struct {
	theme   themes.Theme
	title   string
	message string
}

// NewConfirm creates a confirmation dialog.
func NewConfirm(title, message string, theme themes.Theme) ConfirmModel {
	return ConfirmModel{
		title:   title,
		message: message,
		theme:   theme,
	}
}

// Update handles the dialog keys, emitting ConfirmedMsg or CancelledMsg.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "enter":
		return m, func() tea.Msg { return ConfirmedMsg{} }
	case "n", "esc":
		return m, func() tea.Msg { return CancelledMsg{} }
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.StatusError.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Normal.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Subtitle.Render("y confirm · n cancel"))
	return m.theme.BorderedBox.Render(b.String())
}
