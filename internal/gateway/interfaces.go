package gateway

import (
	"context"

	"github.com/trackinhq/trackin/internal/model"
)

// Service defines the contract consumers use to talk to the Gateway.
// This interface allows for easy mocking in tests and swapping transports.
type Service interface {
	ListBusinesses(ctx context.Context) ([]model.Business, error)
	CreateBusiness(ctx context.Context, nb model.NewBusiness) (model.Business, error)

	ListProducts(ctx context.Context, business string) ([]model.Product, error)
	SaveProduct(ctx context.Context, p model.Product, business string) (model.Product, error)
	DeleteProduct(ctx context.Context, sku string) error

	ListOrders(ctx context.Context, scope ListScope) ([]model.Order, error)
	CreateOrder(ctx context.Context, draft model.OrderDraft, business string) error
	DeleteOrder(ctx context.Context, orderID int64) error

	ListReturns(ctx context.Context, scope ListScope) ([]model.Return, error)
	CreateReturn(ctx context.Context, draft model.ReturnDraft, business string) error
	RemoveReturn(ctx context.Context, returnID int64, business string) error

	DashboardSummary(ctx context.Context, business string) (model.DashboardSummary, error)
	DownloadReport(ctx context.Context, reportPath, business string) (string, []byte, error)
}

// Ensure Client implements Service.
var _ Service = (*Client)(nil)
