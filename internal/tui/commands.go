package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackinhq/trackin/internal/model"
)

const commandTimeout = 30 * time.Second

// refreshRecords reloads the scoped orders, returns and products.
func (m Model) refreshRecords() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		st.Refresh(ctx)
		return refreshDoneMsg{}
	}
}

// loadSummary fetches the dashboard aggregates for the active business.
func (m Model) loadSummary() tea.Cmd {
	gw := m.config.Gateway
	business := m.store.Business()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		summary, err := gw.DashboardSummary(ctx, business)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

// loadBusinesses fetches the business list for the switcher.
func (m Model) loadBusinesses() tea.Cmd {
	gw := m.config.Gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		businesses, err := gw.ListBusinesses(ctx)
		return businessesLoadedMsg{businesses: businesses, err: err}
	}
}

// createOrder submits the add-order form through the controller. The
// controller validates locally first and owns the banner either way.
func (m Model) createOrder(draft model.OrderDraft) tea.Cmd {
	ctrl := m.config.Controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		err := ctrl.CreateOrder(ctx, draft)
		return actionDoneMsg{err: err}
	}
}

// returnOrder records a full-quantity return for the order.
func (m Model) returnOrder(order model.Order) tea.Cmd {
	ctrl := m.config.Controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		err := ctrl.ReturnOrder(ctx, order)
		return actionDoneMsg{err: err}
	}
}

// confirmDelete commits the pending order deletion.
func (m Model) confirmDelete() tea.Cmd {
	ctrl := m.config.Controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		err := ctrl.ConfirmDelete(ctx)
		return actionDoneMsg{err: err}
	}
}

// removeReturn deletes a return record.
func (m Model) removeReturn(returnID int64) tea.Cmd {
	ctrl := m.config.Controller
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		err := ctrl.RemoveReturn(ctx, returnID)
		return actionDoneMsg{err: err}
	}
}

// selectDay applies a calendar day selection and rescopes the lists.
func (m Model) selectDay(day int) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		st.SelectDay(ctx, day)
		return refreshDoneMsg{}
	}
}

// setBusiness switches the business scope and reloads everything.
func (m Model) setBusiness(business string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		st.SetBusiness(ctx, business)
		return refreshDoneMsg{}
	}
}
