// Package store keeps the orders/returns/products slice for the currently
// selected date and business in sync with its three inputs: the calendar
// date, the business scope, and a debounced free-text search per list.
//
// Overlapping refreshes are not cancelled; the last response to land wins.
// All writes go through a mutex so an out-of-order completion can only
// show stale data, never corrupt it.
package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/model"
)

// Store is the calendar-scoped record store.
type Store struct {
	gw       gateway.Service
	calendar *Calendar
	onChange func()

	orderDebounce  *debouncer
	returnDebounce *debouncer

	mu       sync.Mutex
	business string
	date     string

	orderSearch  string // applied (debounced) value
	returnSearch string

	orders   []model.Order
	returns  []model.Return
	products []model.Product

	message     string
	messageKind MessageKind
}

// MessageKind classifies the banner message.
type MessageKind int

// Banner kinds.
const (
	MessageNone MessageKind = iota
	MessageSuccess
	MessageError
)

// Option configures a Store.
type Option func(*Store)

// WithDebounce overrides the search debounce delay (tests).
func WithDebounce(delay time.Duration) Option {
	return func(s *Store) {
		s.orderDebounce = newDebouncer(delay)
		s.returnDebounce = newDebouncer(delay)
	}
}

// WithClock overrides the calendar's clock (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.calendar = NewCalendar(now)
	}
}

// New creates a store scoped to the given business selection, showing
// today's records.
func New(gw gateway.Service, business string, opts ...Option) *Store {
	s := &Store{
		gw:             gw,
		business:       business,
		calendar:       NewCalendar(nil),
		orderDebounce:  newDebouncer(SearchDebounce),
		returnDebounce: newDebouncer(SearchDebounce),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.date = s.calendar.Selected()
	return s
}

// SetOnChange registers a callback invoked after every data or banner
// change, so the UI can re-render.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) notifyChange() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Calendar exposes the month grid for rendering.
func (s *Store) Calendar() *Calendar {
	return s.calendar
}

// SelectDay picks a day on the calendar, clears the banner, and refetches.
func (s *Store) SelectDay(ctx context.Context, day int) {
	date := s.calendar.Select(day)

	s.mu.Lock()
	s.date = date
	s.message = ""
	s.messageKind = MessageNone
	s.mu.Unlock()

	s.Refresh(ctx)
}

// SetDate jumps the scope to an arbitrary date and refetches. One-shot
// commands use this instead of calendar navigation; an empty date keeps
// the current scope.
func (s *Store) SetDate(ctx context.Context, date string) {
	if date != "" {
		s.mu.Lock()
		s.date = date
		s.mu.Unlock()
	}
	s.Refresh(ctx)
}

// SelectedDate returns the date scope in YYYY-MM-DD form.
func (s *Store) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// Business returns the current business scope.
func (s *Store) Business() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.business
}

// SetBusiness switches the business scope and refetches.
func (s *Store) SetBusiness(ctx context.Context, business string) {
	s.mu.Lock()
	s.business = business
	s.mu.Unlock()

	s.Refresh(ctx)
}

// SetOrderSearch updates the order search input. The refetch fires only
// after the debounce window elapses without another keystroke.
func (s *Store) SetOrderSearch(ctx context.Context, term string) {
	s.orderDebounce.trigger(func() {
		s.mu.Lock()
		s.orderSearch = term
		s.mu.Unlock()
		s.Refresh(ctx)
	})
}

// SetReturnSearch is the returns-list counterpart of SetOrderSearch, with
// its own independent debounce window.
func (s *Store) SetReturnSearch(ctx context.Context, term string) {
	s.returnDebounce.trigger(func() {
		s.mu.Lock()
		s.returnSearch = term
		s.mu.Unlock()
		s.Refresh(ctx)
	})
}

// Close stops any pending debounce timers.
func (s *Store) Close() {
	s.orderDebounce.stop()
	s.returnDebounce.stop()
}

// orderScope builds the list scope for orders: a non-empty search spans
// all dates, so the date parameter is dropped.
func (s *Store) orderScope() gateway.ListScope {
	s.mu.Lock()
	defer s.mu.Unlock()
	scope := gateway.ListScope{Business: s.business}
	if strings.TrimSpace(s.orderSearch) == "" {
		scope.Date = s.date
	}
	return scope
}

func (s *Store) returnScope() gateway.ListScope {
	s.mu.Lock()
	defer s.mu.Unlock()
	scope := gateway.ListScope{Business: s.business}
	if strings.TrimSpace(s.returnSearch) == "" {
		scope.Date = s.date
	}
	return scope
}

// Refresh refetches orders, returns, and products for the current scope.
// A fetch failure leaves the previous slice in place and is logged; the
// store never drops data on a transient error.
func (s *Store) Refresh(ctx context.Context) {
	orders, err := s.gw.ListOrders(ctx, s.orderScope())
	if err != nil {
		slog.Error("failed to fetch orders", "error", err)
	} else {
		s.mu.Lock()
		s.orders = orders
		s.mu.Unlock()
	}

	returns, err := s.gw.ListReturns(ctx, s.returnScope())
	if err != nil {
		slog.Error("failed to fetch returns", "error", err)
	} else {
		s.mu.Lock()
		s.returns = returns
		s.mu.Unlock()
	}

	s.mu.Lock()
	business := s.business
	s.mu.Unlock()
	products, err := s.gw.ListProducts(ctx, business)
	if err != nil {
		slog.Error("failed to fetch products", "error", err)
	} else {
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
	}

	s.notifyChange()
}

// Orders returns the active orders matching the applied search term.
// Returned orders are excluded from the active view.
func (s *Store) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if o.IsReturned {
			continue
		}
		if !o.MatchesSearch(s.orderSearch) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// Returns returns the returns matching the applied search term.
func (s *Store) Returns() []model.Return {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.Return, 0, len(s.returns))
	for _, r := range s.returns {
		if !r.MatchesSearch(s.returnSearch) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Products returns the product list for the current business scope.
func (s *Store) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

// FindReturn looks up a fetched return by id.
func (s *Store) FindReturn(id int64) (model.Return, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.returns {
		if r.ID == id {
			return r, true
		}
	}
	return model.Return{}, false
}

// FindOrder looks up a fetched order by internal id.
func (s *Store) FindOrder(id int64) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// SetMessage replaces the banner.
func (s *Store) SetMessage(kind MessageKind, message string) {
	s.mu.Lock()
	s.message = message
	s.messageKind = kind
	s.mu.Unlock()
	s.notifyChange()
}

// Message returns the current banner, MessageNone when dismissed.
func (s *Store) Message() (MessageKind, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messageKind, s.message
}

// DismissMessage clears the banner.
func (s *Store) DismissMessage() {
	s.mu.Lock()
	s.message = ""
	s.messageKind = MessageNone
	s.mu.Unlock()
	s.notifyChange()
}
