// Package orders implements the order lifecycle: an order is created
// active, and ends returned or deleted. Every transition checks the
// stored credential before touching the network and reports its outcome
// through the store's message banner.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/model"
	"github.com/trackinhq/trackin/internal/store"
)

// Banner messages shared across transitions.
const (
	msgNotLoggedIn   = "You are not logged in!"
	msgConnectFailed = "Failed to connect to server."
)

// Controller drives order state transitions against the Gateway.
type Controller struct {
	gw    gateway.Service
	creds gateway.CredentialSource
	store *store.Store
	now   func() time.Time

	mu            sync.Mutex
	pendingDelete int64
}

// NewController creates a lifecycle controller. now is injectable for
// tests; nil means time.Now.
func NewController(gw gateway.Service, creds gateway.CredentialSource, st *store.Store, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		gw:    gw,
		creds: creds,
		store: st,
		now:   now,
	}
}

// CreateOrder validates a draft locally, then commits it. An invalid
// draft never reaches the network. On success the order and product
// lists are refetched so the decremented stock shows up.
func (c *Controller) CreateOrder(ctx context.Context, draft model.OrderDraft) error {
	c.store.DismissMessage()

	if c.creds.AccessToken() == "" {
		c.store.SetMessage(store.MessageError, msgNotLoggedIn)
		return gateway.ErrNotAuthenticated
	}

	if draft.Date == "" {
		draft.Date = c.store.SelectedDate()
	}
	draft.Normalize()

	if err := draft.Validate(c.now()); err != nil {
		c.store.SetMessage(store.MessageError, validationMessage(err))
		return err
	}

	if err := c.gw.CreateOrder(ctx, draft, c.store.Business()); err != nil {
		c.fail("failed to add order", err)
		return err
	}

	c.store.Refresh(ctx)
	c.store.SetMessage(store.MessageSuccess, "Order added and inventory updated successfully!")
	return nil
}

// ReturnOrder transitions an active order to returned by creating the
// paired return with the order's full quantity, dated to the selected day.
func (c *Controller) ReturnOrder(ctx context.Context, order model.Order) error {
	c.store.DismissMessage()

	if c.creds.AccessToken() == "" {
		c.store.SetMessage(store.MessageError, msgNotLoggedIn)
		return gateway.ErrNotAuthenticated
	}

	draft := model.ReturnDraft{
		Order:    order.ID,
		Quantity: order.Quantity,
		Date:     c.store.SelectedDate(),
	}

	if err := c.gw.CreateReturn(ctx, draft, c.store.Business()); err != nil {
		c.fail("failed to return order", err)
		return err
	}

	c.store.Refresh(ctx)
	c.store.SetMessage(store.MessageSuccess,
		fmt.Sprintf("Order %s has been returned and inventory updated successfully!", order.OrderID))
	return nil
}

// RequestDelete starts the two-phase delete: nothing is removed until
// ConfirmDelete commits it.
func (c *Controller) RequestDelete(orderID int64) error {
	if c.creds.AccessToken() == "" {
		c.store.SetMessage(store.MessageError, msgNotLoggedIn)
		return gateway.ErrNotAuthenticated
	}

	c.mu.Lock()
	c.pendingDelete = orderID
	c.mu.Unlock()
	return nil
}

// PendingDelete returns the order awaiting confirmation, if any.
func (c *Controller) PendingDelete() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete, c.pendingDelete != 0
}

// CancelDelete abandons a pending delete.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	c.pendingDelete = 0
	c.mu.Unlock()
}

// ConfirmDelete commits a pending delete. Only the Gateway's empty 204
// counts as success; any other status surfaces its message.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	orderID := c.pendingDelete
	c.pendingDelete = 0
	c.mu.Unlock()

	if orderID == 0 {
		return nil
	}

	c.store.DismissMessage()

	if _, found := c.store.FindOrder(orderID); !found {
		c.store.SetMessage(store.MessageError, "Order not found.")
		return fmt.Errorf("order %d not found", orderID)
	}

	if err := c.gw.DeleteOrder(ctx, orderID); err != nil {
		c.fail("failed to delete order", err)
		return err
	}

	c.store.Refresh(ctx)
	c.store.SetMessage(store.MessageSuccess, "Order deleted and inventory updated successfully!")
	return nil
}

// RemoveReturn reverses a return. The Gateway fallback chain lives in the
// gateway client; here only the outcome matters.
func (c *Controller) RemoveReturn(ctx context.Context, returnID int64) error {
	c.store.DismissMessage()

	if c.creds.AccessToken() == "" {
		c.store.SetMessage(store.MessageError, msgNotLoggedIn)
		return gateway.ErrNotAuthenticated
	}

	if _, found := c.store.FindReturn(returnID); !found {
		c.store.SetMessage(store.MessageError, "Return not found.")
		return fmt.Errorf("return %d not found", returnID)
	}

	if err := c.gw.RemoveReturn(ctx, returnID, c.store.Business()); err != nil {
		c.fail("failed to remove return", err)
		return err
	}

	c.store.Refresh(ctx)
	c.store.SetMessage(store.MessageSuccess, "Return has been removed and inventory updated successfully!")
	return nil
}

// fail logs the underlying error and surfaces the user-facing message
// matching its kind.
func (c *Controller) fail(logMsg string, err error) {
	slog.Error(logMsg, "error", err)
	c.store.SetMessage(store.MessageError, FailureMessage(err))
}

// FailureMessage maps a Gateway error to the banner text shown to the
// user: field errors verbatim, rejection messages as-is, and a generic
// connectivity message for transport failures.
func FailureMessage(err error) string {
	var validationErr *gateway.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	if errors.Is(err, gateway.ErrNotAuthenticated) {
		return msgNotLoggedIn
	}
	var requestErr *gateway.RequestError
	if errors.As(err, &requestErr) {
		return msgConnectFailed
	}
	return err.Error()
}

// validationMessage maps the local draft validation errors to the exact
// banner text the dashboard shows.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrProductRequired):
		return "Please select a product."
	case errors.Is(err, model.ErrFutureDate):
		return "Cannot add an order for a future date."
	case errors.Is(err, model.ErrIncompleteOrder):
		return "Please fill all required fields with valid values"
	default:
		return err.Error()
	}
}
