package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

const (
	fieldOrderID = iota
	fieldTrackingID
	fieldProduct
	fieldQuantity
	fieldCustomer
	fieldCount
)

var fieldLabels = []string{"Order ID", "Tracking ID", "Product", "Quantity", "Customer"}

// OrderFormModel is the add-order form. The date is inherited from the
// calendar selection and shown read-only.
type OrderFormModel struct {
	theme  themes.Theme
	date   string
	inputs []textinput.Model
	focus  int
	width  int
}

// NewOrderForm creates a blank form for the given order date.
func NewOrderForm(date string, theme themes.Theme) OrderFormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		ti.Placeholder = fieldLabels[i]
		inputs[i] = ti
	}
	inputs[fieldQuantity].CharLimit = 6
	inputs[fieldQuantity].Placeholder = "1"
	inputs[fieldOrderID].Focus()

	return OrderFormModel{
		inputs: inputs,
		date:   date,
		theme:  theme,
		width:  48,
	}
}

// Resize adjusts the rendered width.
func (m *OrderFormModel) Resize(width int) {
	m.width = width
}

// Update handles form input, emitting OrderSubmitMsg or FormCancelledMsg.
func (m OrderFormModel) Update(msg tea.Msg) (OrderFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return FormCancelledMsg{} }
		case "enter":
			draft := m.draft()
			return m, func() tea.Msg { return OrderSubmitMsg{Draft: draft} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *OrderFormModel) setFocus(index int) {
	m.inputs[m.focus].Blur()
	m.focus = index
	m.inputs[m.focus].Focus()
}

func (m OrderFormModel) draft() model.OrderDraft {
	quantity, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldQuantity].Value()))
	return model.OrderDraft{
		OrderID:      m.inputs[fieldOrderID].Value(),
		TrackingID:   m.inputs[fieldTrackingID].Value(),
		ProductName:  m.inputs[fieldProduct].Value(),
		Quantity:     quantity,
		CustomerName: m.inputs[fieldCustomer].Value(),
		Date:         m.date,
	}
}

// View renders the form.
func (m OrderFormModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Add Order"))
	b.WriteString("\n")

	date := m.date
	if date == "" {
		date = "today"
	}
	b.WriteString(m.theme.Subtitle.Render("Date: " + date))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := fieldLabels[i]
		if i == m.focus {
			b.WriteString(m.theme.Bold.Render("> " + label))
		} else {
			b.WriteString(m.theme.Normal.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Enter save · Tab next field · Esc cancel"))

	return m.theme.BorderedBox.Width(m.width).Render(
		lipgloss.NewStyle().Render(b.String()),
	)
}
