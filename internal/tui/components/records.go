package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/tui/themes"
)

// RecordKind selects which record set a list shows.
type RecordKind int

const (
	KindOrders RecordKind = iota
	KindReturns
)

// RecordListModel renders the scoped order or return records as a table.
type RecordListModel struct {
	theme   themes.Theme
	orders  []model.Order
	returns []model.Return
	table   table.Model
	kind    RecordKind
	width   int
	height  int
}

// NewRecordList creates a record table for the given kind.
func NewRecordList(kind RecordKind, theme themes.Theme) RecordListModel {
	columns := orderColumns()
	if kind == KindReturns {
		columns = returnColumns()
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return RecordListModel{
		kind:   kind,
		table:  t,
		theme:  theme,
		width:  80,
		height: 14,
	}
}

func orderColumns() []table.Column {
	return []table.Column{
		{Title: "Order ID", Width: 12},
		{Title: "Tracking", Width: 14},
		{Title: "Product", Width: 22},
		{Title: "Qty", Width: 5},
		{Title: "Customer", Width: 18},
		{Title: "Date", Width: 10},
	}
}

func returnColumns() []table.Column {
	return []table.Column{
		{Title: "Order ID", Width: 12},
		{Title: "Tracking", Width: 14},
		{Title: "Product", Width: 22},
		{Title: "Qty", Width: 5},
		{Title: "Customer", Width: 18},
		{Title: "Date", Width: 10},
	}
}

// SetOrders replaces the displayed orders.
func (m *RecordListModel) SetOrders(orders []model.Order) {
	m.orders = orders
	rows := make([]table.Row, len(orders))
	for i, o := range orders {
		rows[i] = table.Row{
			o.OrderID,
			o.TrackingID,
			o.ProductName,
			strconv.Itoa(o.Quantity),
			o.CustomerName,
			o.Date,
		}
	}
	m.setRows(rows)
}

// SetReturns replaces the displayed returns.
func (m *RecordListModel) SetReturns(returns []model.Return) {
	m.returns = returns
	rows := make([]table.Row, len(returns))
	for i, r := range returns {
		rows[i] = table.Row{
			r.OrderID,
			r.TrackingID,
			r.ProductName,
			strconv.Itoa(r.Quantity),
			r.CustomerName,
			r.Date,
		}
	}
	m.setRows(rows)
}

func (m *RecordListModel) setRows(rows []table.Row) {
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// SelectedOrder returns the order under the cursor.
func (m RecordListModel) SelectedOrder() (model.Order, bool) {
	if m.kind != KindOrders {
		return model.Order{}, false
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.orders) {
		return model.Order{}, false
	}
	return m.orders[cursor], true
}

// SelectedReturn returns the return under the cursor.
func (m RecordListModel) SelectedReturn() (model.Return, bool) {
	if m.kind != KindReturns {
		return model.Return{}, false
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.returns) {
		return model.Return{}, false
	}
	return m.returns[cursor], true
}

// Len reports the number of visible records.
func (m RecordListModel) Len() int {
	if m.kind == KindReturns {
		return len(m.returns)
	}
	return len(m.orders)
}

// Update forwards navigation to the table.
func (m RecordListModel) Update(msg tea.Msg) (RecordListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Resize adjusts the table to the available space.
func (m *RecordListModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(maxInt(height-2, 3))
	m.table.SetWidth(width)
}

// View renders the table, or a placeholder when there are no records.
func (m RecordListModel) View() string {
	if m.Len() == 0 {
		label := "No orders for this scope."
		if m.kind == KindReturns {
			label = "No returns for this scope."
		}
		return m.theme.Subtitle.Render(label)
	}
	return m.table.View()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
