package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackinhq/trackin/internal/store"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

func newTestCalendar() CalendarModel {
	cal := store.NewCalendar(func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	})
	m := NewCalendar(cal, themes.Default)
	m.Focus()
	return m
}

func keyPress(key string) tea.Msg {
	if key == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestCalendarModel_CursorMovement(t *testing.T) {
	m := newTestCalendar()

	m, _ = m.Update(keyPress("l"))
	m, _ = m.Update(keyPress("j"))

	// enter emits the day under the cursor: 1 + 1 + 7.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	selected, ok := msg.(DaySelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 9, selected.Day)
}

func TestCalendarModel_CursorClampsToMonth(t *testing.T) {
	m := newTestCalendar()

	// March has 31 days; walking far past the end stays on the last day.
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyPress("j"))
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok := cmd().(DaySelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 31, selected.Day)

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyPress("k"))
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok = cmd().(DaySelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, selected.Day)
}

func TestCalendarModel_MonthNavigationClamp(t *testing.T) {
	m := newTestCalendar()

	// Forward from the current month is a no-op.
	m, cmd := m.Update(keyPress("]"))
	assert.Nil(t, cmd)

	m, cmd = m.Update(keyPress("["))
	require.NotNil(t, cmd)
	_, ok := cmd().(MonthChangedMsg)
	assert.True(t, ok)

	m, cmd = m.Update(keyPress("]"))
	require.NotNil(t, cmd)
	_, ok = cmd().(MonthChangedMsg)
	assert.True(t, ok)
}

func TestCalendarModel_IgnoresKeysWhenBlurred(t *testing.T) {
	m := newTestCalendar()
	m.Blur()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.Focused())
}
