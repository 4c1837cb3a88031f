package model

import (
	"strconv"
	"strings"
	"time"
)

// DateFormat is the wire format for all Gateway dates.
const DateFormat = "2006-01-02"

// Order is a committed sale. OrderID is the user-supplied business
// reference and is distinct from the Gateway's internal ID. Once
// IsReturned flips the order leaves the active view for good.
type Order struct {
	ID           int64  `json:"id"`
	OrderID      string `json:"order_id"`
	TrackingID   string `json:"tracking_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	IsReturned   bool   `json:"is_returned"`
}

// Return reverses an order. Order carries the source order's internal ID;
// the remaining fields are denormalized by the Gateway for display.
type Return struct {
	ID           int64  `json:"id"`
	Order        int64  `json:"order"`
	ProductName  string `json:"product_name"`
	CustomerName string `json:"customer_name"`
	OrderID      string `json:"order_id"`
	TrackingID   string `json:"tracking_id"`
	Quantity     int    `json:"quantity"`
	Date         string `json:"date"`
}

// OrderDraft is the payload for creating an order.
type OrderDraft struct {
	OrderID      string `json:"order_id"`
	TrackingID   string `json:"tracking_id"`
	ProductName  string `json:"product_name"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
}

// ReturnDraft is the payload for recording a return against an order.
// Quantity is always the source order's full quantity.
type ReturnDraft struct {
	Order    int64  `json:"order"`
	Quantity int    `json:"quantity"`
	Date     string `json:"date"`
}

// Normalize trims the free-text fields in place.
func (d *OrderDraft) Normalize() {
	d.OrderID = strings.TrimSpace(d.OrderID)
	d.TrackingID = strings.TrimSpace(d.TrackingID)
	d.CustomerName = strings.TrimSpace(d.CustomerName)
}

// Validate checks the draft locally so an invalid order never reaches the
// network. now supplies the real current date; drafts dated after it are
// rejected.
func (d OrderDraft) Validate(now time.Time) error {
	if d.ProductName == "" {
		return ErrProductRequired
	}
	if d.OrderID == "" || d.TrackingID == "" || d.CustomerName == "" || d.Quantity < 1 {
		return ErrIncompleteOrder
	}
	date, err := time.Parse(DateFormat, d.Date)
	if err != nil {
		return ErrIncompleteOrder
	}
	today, err := time.Parse(DateFormat, now.Format(DateFormat))
	if err != nil {
		return err
	}
	if date.After(today) {
		return ErrFutureDate
	}
	return nil
}

// MatchesSearch reports whether the order matches a free-text term the way
// the dashboard filters lists: case-insensitive substring over product,
// customer, order reference, tracking reference and quantity.
func (o Order) MatchesSearch(term string) bool {
	return matchesSearch(term, o.ProductName, o.CustomerName, o.OrderID, o.TrackingID, strconv.Itoa(o.Quantity))
}

// MatchesSearch is the return-list counterpart of Order.MatchesSearch.
func (r Return) MatchesSearch(term string) bool {
	return matchesSearch(term, r.ProductName, r.CustomerName, r.OrderID, r.TrackingID, strconv.Itoa(r.Quantity))
}

func matchesSearch(term string, haystacks ...string) bool {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return true
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}
