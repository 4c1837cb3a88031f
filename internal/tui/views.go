package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/store"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	switch m.state {
	case StateAddOrder:
		return m.renderModal(m.orderForm.View())
	case StateConfirmDelete, StateConfirmRemove:
		return m.renderModal(m.confirm.View())
	case StateHelp:
		return m.renderHelp()
	default:
		return m.renderDashboard()
	}
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Track In"),
		m.theme.Subtitle.Render("Loading records..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderDashboard renders the main layout: header, KPI strip, calendar
// beside the active record list, banner and status bar.
func (m Model) renderDashboard() string {
	sections := []string{
		m.renderHeader(),
		m.kpi.View(),
	}

	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.calendar.View(),
		" ",
		m.renderRecords(),
	)
	sections = append(sections, body, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title row with the business scope.
func (m Model) renderHeader() string {
	scope := "All Businesses"
	if current := m.store.Business(); current != model.SelectionAll {
		scope = "Business " + current
		for _, b := range m.businesses {
			if b.Selection() == current {
				scope = b.DisplayName()
				break
			}
		}
	}

	title := m.theme.Title.Render("Track In")
	business := m.theme.Subtitle.Render(scope)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", business)
}

// renderBanner renders the store's action outcome message, if any.
func (m Model) renderBanner() string {
	kind, message := m.store.Message()
	switch kind {
	case store.MessageSuccess:
		return m.theme.StatusSuccess.Render("✓ " + message)
	case store.MessageError:
		return m.theme.StatusError.Render("✗ " + message)
	default:
		return ""
	}
}

// renderRecords renders the tab bar, search field and active table.
func (m Model) renderRecords() string {
	ordersTab := m.theme.Tab.Render("Orders")
	returnsTab := m.theme.Tab.Render("Returns")
	if m.tab == TabOrders {
		ordersTab = m.theme.TabActive.Render("Orders")
	} else {
		returnsTab = m.theme.TabActive.Render("Returns")
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, ordersTab, returnsTab)

	search := m.orderSearch.View()
	list := m.orderList.View()
	if m.tab == TabReturns {
		search = m.returnSearch.View()
		list = m.returnList.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, search, list)
}

// renderStatusBar renders the short help line.
func (m Model) renderStatusBar() string {
	var parts []string
	for _, binding := range m.keymap.ShortHelp() {
		help := binding.Help()
		parts = append(parts, m.theme.Bold.Render(help.Key)+" "+m.theme.Subtitle.Render(help.Desc))
	}
	return strings.Join(parts, m.theme.Subtitle.Render(" · "))
}

// renderModal centers a dialog over a dimmed dashboard.
func (m Model) renderModal(dialog string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

// renderHelp renders the full key reference.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(m.theme.Bold.Render(padRight(help.Key, 10)))
			b.WriteString(m.theme.Normal.Render(help.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Subtitle.Render("? close help"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.BorderedBox.Render(b.String()))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
