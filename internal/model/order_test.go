package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDraft_Validate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	valid := OrderDraft{
		OrderID:      "ORD-100",
		TrackingID:   "TRK-100",
		ProductName:  "Widget",
		Quantity:     2,
		CustomerName: "Alice",
		Date:         "2024-03-15",
	}

	tests := []struct {
		name    string
		mutate  func(*OrderDraft)
		wantErr error
	}{
		{
			name:   "valid draft",
			mutate: func(*OrderDraft) {},
		},
		{
			name:    "missing product",
			mutate:  func(d *OrderDraft) { d.ProductName = "" },
			wantErr: ErrProductRequired,
		},
		{
			name:    "missing order reference",
			mutate:  func(d *OrderDraft) { d.OrderID = "" },
			wantErr: ErrIncompleteOrder,
		},
		{
			name:    "missing tracking reference",
			mutate:  func(d *OrderDraft) { d.TrackingID = "" },
			wantErr: ErrIncompleteOrder,
		},
		{
			name:    "missing customer",
			mutate:  func(d *OrderDraft) { d.CustomerName = "" },
			wantErr: ErrIncompleteOrder,
		},
		{
			name:    "zero quantity",
			mutate:  func(d *OrderDraft) { d.Quantity = 0 },
			wantErr: ErrIncompleteOrder,
		},
		{
			name:    "negative quantity",
			mutate:  func(d *OrderDraft) { d.Quantity = -3 },
			wantErr: ErrIncompleteOrder,
		},
		{
			name:    "unparseable date",
			mutate:  func(d *OrderDraft) { d.Date = "15/03/2024" },
			wantErr: ErrIncompleteOrder,
		},
		{
			name:    "future date",
			mutate:  func(d *OrderDraft) { d.Date = "2024-03-16" },
			wantErr: ErrFutureDate,
		},
		{
			name:   "today is allowed",
			mutate: func(d *OrderDraft) { d.Date = "2024-03-15" },
		},
		{
			name:   "past date is allowed",
			mutate: func(d *OrderDraft) { d.Date = "2023-01-01" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			err := draft.Validate(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderDraft_Normalize(t *testing.T) {
	draft := OrderDraft{
		OrderID:      "  ORD-1 ",
		TrackingID:   "\tTRK-1\n",
		CustomerName: " Bob ",
		ProductName:  "Widget",
	}
	draft.Normalize()

	assert.Equal(t, "ORD-1", draft.OrderID)
	assert.Equal(t, "TRK-1", draft.TrackingID)
	assert.Equal(t, "Bob", draft.CustomerName)
}

func TestOrder_MatchesSearch(t *testing.T) {
	order := Order{
		OrderID:      "ORD-2041",
		TrackingID:   "TRK-88",
		ProductName:  "Blue Widget",
		Quantity:     12,
		CustomerName: "Carol Danvers",
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term matches", term: "", want: true},
		{name: "whitespace term matches", term: "   ", want: true},
		{name: "product substring", term: "widget", want: true},
		{name: "customer case-insensitive", term: "CAROL", want: true},
		{name: "order reference", term: "2041", want: true},
		{name: "tracking reference", term: "trk-88", want: true},
		{name: "quantity as text", term: "12", want: true},
		{name: "no match", term: "gadget", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.MatchesSearch(tt.term))
		})
	}
}

func TestReturn_MatchesSearch(t *testing.T) {
	ret := Return{
		OrderID:      "ORD-7",
		TrackingID:   "TRK-7",
		ProductName:  "Gadget",
		Quantity:     3,
		CustomerName: "Dan",
	}

	require.True(t, ret.MatchesSearch("gadget"))
	require.True(t, ret.MatchesSearch("3"))
	require.False(t, ret.MatchesSearch("widget"))
}
