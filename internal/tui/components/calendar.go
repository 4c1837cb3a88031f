package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackinhq/trackin/internal/store"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

// CalendarModel renders the month grid that scopes the record lists.
// Month navigation is clamped at the real current month.
type CalendarModel struct {
	calendar *store.Calendar
	theme    themes.Theme
	cursor   int
	focused  bool
	width    int
}

// NewCalendar creates a calendar component over the shared calendar state.
func NewCalendar(calendar *store.Calendar, theme themes.Theme) CalendarModel {
	return CalendarModel{
		calendar: calendar,
		theme:    theme,
		cursor:   1,
		width:    30,
	}
}

// Focus gives the calendar keyboard focus.
func (m *CalendarModel) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *CalendarModel) Blur() {
	m.focused = false
}

// Focused reports whether the calendar has keyboard focus.
func (m CalendarModel) Focused() bool {
	return m.focused
}

// Resize adjusts the rendered width.
func (m *CalendarModel) Resize(width int) {
	m.width = width
}

// Update handles calendar navigation keys.
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "[", "pgup":
		m.calendar.Prev()
		m.cursor = 1
		return m, func() tea.Msg { return MonthChangedMsg{} }
	case "]", "pgdown":
		if m.calendar.CanGoNext() {
			m.calendar.Next()
			m.cursor = 1
			return m, func() tea.Msg { return MonthChangedMsg{} }
		}
	case "enter", " ":
		day := m.cursor
		return m, func() tea.Msg { return DaySelectedMsg{Day: day} }
	}

	return m, nil
}

func (m *CalendarModel) moveCursor(delta int) {
	last := m.lastDay()
	next := m.cursor + delta
	if next < 1 {
		next = 1
	}
	if next > last {
		next = last
	}
	m.cursor = next
}

func (m CalendarModel) lastDay() int {
	last := 1
	for _, day := range m.calendar.Days() {
		if day > last {
			last = day
		}
	}
	return last
}

// View renders the month grid.
func (m CalendarModel) View() string {
	var b strings.Builder

	title := m.calendar.Label()
	if m.calendar.CanGoNext() {
		title = "< " + title + " >"
	} else {
		title = "< " + title
	}
	b.WriteString(m.theme.Bold.Render(title))
	b.WriteString("\n")

	for i, wd := range store.Weekdays {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("%3s", wd)))
	}
	b.WriteString("\n")

	for i, day := range m.calendar.Days() {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		} else if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.renderDay(day))
	}

	style := m.theme.RoundedBox
	if m.focused {
		style = style.BorderForeground(m.theme.Primary)
	}
	return style.Render(b.String())
}

func (m CalendarModel) renderDay(day int) string {
	if day == 0 {
		return "   "
	}
	cell := fmt.Sprintf("%3d", day)
	switch {
	case m.calendar.IsSelected(day):
		return m.theme.Selected.Render(cell)
	case m.focused && day == m.cursor:
		return m.theme.Highlighted.Render(cell)
	default:
		return m.theme.Normal.Render(cell)
	}
}

// Selected returns the selected date in wire format, empty when none.
func (m CalendarModel) Selected() string {
	return m.calendar.Selected()
}
