package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/model"
)

func newTestStore(gw gateway.Service) *Store {
	return New(gw, model.SelectionAll,
		WithClock(func() time.Time {
			return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
		}),
		WithDebounce(10*time.Millisecond),
	)
}

func TestStore_RefreshPopulates(t *testing.T) {
	mock := gateway.NewMockService()
	mock.ListOrdersFn = func(context.Context, gateway.ListScope) ([]model.Order, error) {
		return []model.Order{
			{ID: 1, OrderID: "ORD-1", ProductName: "Widget"},
			{ID: 2, OrderID: "ORD-2", ProductName: "Gadget", IsReturned: true},
		}, nil
	}
	mock.ListReturnsFn = func(context.Context, gateway.ListScope) ([]model.Return, error) {
		return []model.Return{{ID: 5, Order: 2, ProductName: "Gadget"}}, nil
	}
	mock.ListProductsFn = func(context.Context, string) ([]model.Product, error) {
		return []model.Product{{ID: 9, SKU: "WID-1", ProductName: "Widget"}}, nil
	}

	st := newTestStore(mock)
	defer st.Close()
	st.Refresh(context.Background())

	// Returned orders drop out of the active view but stay findable.
	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].OrderID)
	_, found := st.FindOrder(2)
	assert.True(t, found)

	require.Len(t, st.Returns(), 1)
	require.Len(t, st.Products(), 1)
}

func TestStore_ScopeSendsBusinessAndDate(t *testing.T) {
	mock := gateway.NewMockService()
	st := newTestStore(mock)
	defer st.Close()

	st.Refresh(context.Background())

	require.Len(t, mock.ListOrderCalls, 1)
	assert.Equal(t, model.SelectionAll, mock.ListOrderCalls[0].Business)
	assert.Equal(t, "2024-03-15", mock.ListOrderCalls[0].Date)

	st.SetBusiness(context.Background(), "4")
	require.Len(t, mock.ListOrderCalls, 2)
	assert.Equal(t, "4", mock.ListOrderCalls[1].Business)
	assert.Equal(t, "4", st.Business())
}

func TestStore_SearchDropsDateScope(t *testing.T) {
	mock := gateway.NewMockService()
	st := newTestStore(mock)
	defer st.Close()

	st.SetOrderSearch(context.Background(), "widget")
	time.Sleep(50 * time.Millisecond)

	require.Len(t, mock.ListOrderCalls, 1)
	assert.Empty(t, mock.ListOrderCalls[0].Date, "a search spans all dates")

	// Returns keep their date scope; only the order search was set.
	require.Len(t, mock.ListReturnCalls, 1)
	assert.Equal(t, "2024-03-15", mock.ListReturnCalls[0].Date)

	// Clearing the search restores the date scope.
	st.SetOrderSearch(context.Background(), "")
	time.Sleep(50 * time.Millisecond)
	require.Len(t, mock.ListOrderCalls, 2)
	assert.Equal(t, "2024-03-15", mock.ListOrderCalls[1].Date)
}

func TestStore_SearchDebounceCoalesces(t *testing.T) {
	mock := gateway.NewMockService()
	st := newTestStore(mock)
	defer st.Close()

	// Rapid keystrokes inside the debounce window fire a single refetch.
	st.SetOrderSearch(context.Background(), "w")
	st.SetOrderSearch(context.Background(), "wi")
	st.SetOrderSearch(context.Background(), "wid")
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, mock.ListOrderCalls, 1)
}

func TestStore_OrdersFilterBySearch(t *testing.T) {
	mock := gateway.NewMockService()
	mock.ListOrdersFn = func(context.Context, gateway.ListScope) ([]model.Order, error) {
		return []model.Order{
			{ID: 1, OrderID: "ORD-1", ProductName: "Widget", CustomerName: "Alice"},
			{ID: 2, OrderID: "ORD-2", ProductName: "Gadget", CustomerName: "Bob"},
		}, nil
	}

	st := newTestStore(mock)
	defer st.Close()

	st.SetOrderSearch(context.Background(), "alice")
	time.Sleep(50 * time.Millisecond)

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].OrderID)
}

func TestStore_SelectDayClearsBanner(t *testing.T) {
	mock := gateway.NewMockService()
	st := newTestStore(mock)
	defer st.Close()

	st.SetMessage(MessageError, "something failed")
	st.SelectDay(context.Background(), 3)

	kind, message := st.Message()
	assert.Equal(t, MessageNone, kind)
	assert.Empty(t, message)
	assert.Equal(t, "2024-03-03", st.SelectedDate())

	require.NotEmpty(t, mock.ListOrderCalls)
	assert.Equal(t, "2024-03-03", mock.ListOrderCalls[len(mock.ListOrderCalls)-1].Date)
}

func TestStore_SetDate(t *testing.T) {
	mock := gateway.NewMockService()
	st := newTestStore(mock)
	defer st.Close()

	st.SetDate(context.Background(), "2024-02-01")
	assert.Equal(t, "2024-02-01", st.SelectedDate())
	require.Len(t, mock.ListOrderCalls, 1)
	assert.Equal(t, "2024-02-01", mock.ListOrderCalls[0].Date)

	// An empty date keeps the current scope but still refetches.
	st.SetDate(context.Background(), "")
	assert.Equal(t, "2024-02-01", st.SelectedDate())
	assert.Len(t, mock.ListOrderCalls, 2)
}

func TestStore_FetchFailureKeepsData(t *testing.T) {
	mock := gateway.NewMockService()
	mock.ListOrdersFn = func(context.Context, gateway.ListScope) ([]model.Order, error) {
		return []model.Order{{ID: 1, OrderID: "ORD-1"}}, nil
	}

	st := newTestStore(mock)
	defer st.Close()
	st.Refresh(context.Background())
	require.Len(t, st.Orders(), 1)

	mock.ListOrdersFn = func(context.Context, gateway.ListScope) ([]model.Order, error) {
		return nil, gateway.ErrUnauthorized
	}
	st.Refresh(context.Background())

	assert.Len(t, st.Orders(), 1, "a failed fetch never drops data")
}

func TestStore_OnChange(t *testing.T) {
	mock := gateway.NewMockService()
	st := newTestStore(mock)
	defer st.Close()

	var changes int
	st.SetOnChange(func() { changes++ })

	st.Refresh(context.Background())
	st.SetMessage(MessageSuccess, "done")
	st.DismissMessage()

	assert.Equal(t, 3, changes)
}

func TestStore_Message(t *testing.T) {
	st := newTestStore(gateway.NewMockService())
	defer st.Close()

	kind, _ := st.Message()
	assert.Equal(t, MessageNone, kind)

	st.SetMessage(MessageSuccess, "Order added and inventory updated successfully!")
	kind, message := st.Message()
	assert.Equal(t, MessageSuccess, kind)
	assert.Equal(t, "Order added and inventory updated successfully!", message)
}
