package gateway

import (
	"context"

	"github.com/trackinhq/trackin/internal/model"
)

// MockService is a mock implementation of Service for testing.
type MockService struct {
	// Functions that can be set by tests to control behavior
	ListBusinessesFn   func(ctx context.Context) ([]model.Business, error)
	CreateBusinessFn   func(ctx context.Context, nb model.NewBusiness) (model.Business, error)
	ListProductsFn     func(ctx context.Context, business string) ([]model.Product, error)
	SaveProductFn      func(ctx context.Context, p model.Product, business string) (model.Product, error)
	DeleteProductFn    func(ctx context.Context, sku string) error
	ListOrdersFn       func(ctx context.Context, scope ListScope) ([]model.Order, error)
	CreateOrderFn      func(ctx context.Context, draft model.OrderDraft, business string) error
	DeleteOrderFn      func(ctx context.Context, orderID int64) error
	ListReturnsFn      func(ctx context.Context, scope ListScope) ([]model.Return, error)
	CreateReturnFn     func(ctx context.Context, draft model.ReturnDraft, business string) error
	RemoveReturnFn     func(ctx context.Context, returnID int64, business string) error
	DashboardSummaryFn func(ctx context.Context, business string) (model.DashboardSummary, error)
	DownloadReportFn   func(ctx context.Context, reportPath, business string) (string, []byte, error)

	// Call tracking
	ListOrderCalls    []ListScope
	ListReturnCalls   []ListScope
	CreateOrderCalls  []model.OrderDraft
	CreateReturnCalls []model.ReturnDraft
	DeleteOrderCalls  []int64
	RemoveReturnCalls []int64
}

// NewMockService creates a new mock Gateway service.
func NewMockService() *MockService {
	return &MockService{}
}

// ListBusinesses implements Service.ListBusinesses.
func (m *MockService) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	if m.ListBusinessesFn != nil {
		return m.ListBusinessesFn(ctx)
	}
	return []model.Business{}, nil
}

// CreateBusiness implements Service.CreateBusiness.
func (m *MockService) CreateBusiness(ctx context.Context, nb model.NewBusiness) (model.Business, error) {
	if m.CreateBusinessFn != nil {
		return m.CreateBusinessFn(ctx, nb)
	}
	return model.Business{}, nil
}

// ListProducts implements Service.ListProducts.
func (m *MockService) ListProducts(ctx context.Context, business string) ([]model.Product, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx, business)
	}
	return []model.Product{}, nil
}

// SaveProduct implements Service.SaveProduct.
func (m *MockService) SaveProduct(ctx context.Context, p model.Product, business string) (model.Product, error) {
	if m.SaveProductFn != nil {
		return m.SaveProductFn(ctx, p, business)
	}
	return p, nil
}

// DeleteProduct implements Service.DeleteProduct.
func (m *MockService) DeleteProduct(ctx context.Context, sku string) error {
	if m.DeleteProductFn != nil {
		return m.DeleteProductFn(ctx, sku)
	}
	return nil
}

// ListOrders implements Service.ListOrders.
func (m *MockService) ListOrders(ctx context.Context, scope ListScope) ([]model.Order, error) {
	m.ListOrderCalls = append(m.ListOrderCalls, scope)
	if m.ListOrdersFn != nil {
		return m.ListOrdersFn(ctx, scope)
	}
	return []model.Order{}, nil
}

// CreateOrder implements Service.CreateOrder.
func (m *MockService) CreateOrder(ctx context.Context, draft model.OrderDraft, business string) error {
	m.CreateOrderCalls = append(m.CreateOrderCalls, draft)
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, draft, business)
	}
	return nil
}

// DeleteOrder implements Service.DeleteOrder.
func (m *MockService) DeleteOrder(ctx context.Context, orderID int64) error {
	m.DeleteOrderCalls = append(m.DeleteOrderCalls, orderID)
	if m.DeleteOrderFn != nil {
		return m.DeleteOrderFn(ctx, orderID)
	}
	return nil
}

// ListReturns implements Service.ListReturns.
func (m *MockService) ListReturns(ctx context.Context, scope ListScope) ([]model.Return, error) {
	m.ListReturnCalls = append(m.ListReturnCalls, scope)
	if m.ListReturnsFn != nil {
		return m.ListReturnsFn(ctx, scope)
	}
	return []model.Return{}, nil
}

// CreateReturn implements Service.CreateReturn.
func (m *MockService) CreateReturn(ctx context.Context, draft model.ReturnDraft, business string) error {
	m.CreateReturnCalls = append(m.CreateReturnCalls, draft)
	if m.CreateReturnFn != nil {
		return m.CreateReturnFn(ctx, draft, business)
	}
	return nil
}

// RemoveReturn implements Service.RemoveReturn.
func (m *MockService) RemoveReturn(ctx context.Context, returnID int64, business string) error {
	m.RemoveReturnCalls = append(m.RemoveReturnCalls, returnID)
	if m.RemoveReturnFn != nil {
		return m.RemoveReturnFn(ctx, returnID, business)
	}
	return nil
}

// DashboardSummary implements Service.DashboardSummary.
func (m *MockService) DashboardSummary(ctx context.Context, business string) (model.DashboardSummary, error) {
	if m.DashboardSummaryFn != nil {
		return m.DashboardSummaryFn(ctx, business)
	}
	return model.DashboardSummary{}, nil
}

// DownloadReport implements Service.DownloadReport.
func (m *MockService) DownloadReport(ctx context.Context, reportPath, business string) (string, []byte, error) {
	if m.DownloadReportFn != nil {
		return m.DownloadReportFn(ctx, reportPath, business)
	}
	return "report.csv", nil, nil
}

// Reset clears all call tracking.
func (m *MockService) Reset() {
	m.ListOrderCalls = nil
	m.ListReturnCalls = nil
	m.CreateOrderCalls = nil
	m.CreateReturnCalls = nil
	m.DeleteOrderCalls = nil
	m.RemoveReturnCalls = nil
}

// Ensure MockService implements Service interface.
var _ Service = (*MockService)(nil)
