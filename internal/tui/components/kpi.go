package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

// KPIModel renders the dashboard's summary strip.
type KPIModel struct {
	theme   themes.Theme
	summary model.DashboardSummary
	loaded  bool
	width   int
}

// NewKPI creates an empty summary strip.
func NewKPI(theme themes.Theme) KPIModel {
	return KPIModel{theme: theme, width: 80}
}

// SetSummary installs a freshly loaded summary.
func (m *KPIModel) SetSummary(summary model.DashboardSummary) {
	m.summary = summary
	m.loaded = true
}

// Resize adjusts the rendered width.
func (m *KPIModel) Resize(width int) {
	m.width = width
}

// View renders the KPI tiles side by side.
func (m KPIModel) View() string {
	if !m.loaded {
		return m.theme.Subtitle.Render("Loading summary...")
	}

	tiles := []string{
		m.tile("Total Sales", fmt.Sprintf("%.2f", m.summary.TotalSales)),
		m.tile("Orders", fmt.Sprintf("%d", m.summary.TotalOrders)),
		m.tile("Returns", fmt.Sprintf("%d", m.summary.TotalReturns)),
		m.tile("Net Profit", fmt.Sprintf("%.2f", m.summary.NetProfit)),
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)

	if len(m.summary.TopSales) == 0 {
		return row
	}

	var top strings.Builder
	top.WriteString(m.theme.KPILabel.Render("Top sales: "))
	for i, sale := range m.summary.TopSales {
		if i > 0 {
			top.WriteString(m.theme.KPILabel.Render(" · "))
		}
		top.WriteString(m.theme.Normal.Render(
			fmt.Sprintf("%s (%d)", sale.ProductName, sale.Quantity)))
		if i == 2 {
			break
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, top.String())
}

func (m KPIModel) tile(label, value string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.KPILabel.Render(label),
		m.theme.KPIValue.Render(value),
	)
	return m.theme.RoundedBox.Render(content)
}
