package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/model"
)

// Engine aggregates Gateway resources into workbook files. It only reads;
// all mutation stays with the lifecycle controller.
type Engine struct {
	gw  gateway.Service
	now func() time.Time
}

// NewEngine creates an export engine. now is injectable for tests; nil
// means time.Now.
func NewEngine(gw gateway.Service, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{gw: gw, now: now}
}

// ExportProducts writes the product-only workbook for the given business
// selection into dir and returns the file path.
func (e *Engine) ExportProducts(ctx context.Context, business, dir string) (string, error) {
	products, err := e.gw.ListProducts(ctx, business)
	if err != nil {
		return "", fmt.Errorf("failed to fetch products: %w", err)
	}
	if len(products) == 0 {
		return "", fmt.Errorf("no products to export")
	}

	path := filepath.Join(dir, ProductsFilename(e.now()))
	if err := WriteWorkbook(path, BuildProductSheets(products)); err != nil {
		return "", err
	}

	slog.Info("product export written", "path", path, "products", len(products))
	return path, nil
}

// FetchDashboardData gathers everything the dashboard report joins:
// products for the given selection plus each listed business's own orders
// and returns. The caller supplies the business list, so the progress
// total and the fetches work from one snapshot. Per-business fetches run
// concurrently; any failure aborts the whole export so a partial workbook
// is never written. onBusiness, when set, is invoked as each business
// completes.
func (e *Engine) FetchDashboardData(ctx context.Context, business string, businesses []model.Business, onBusiness func(model.Business)) ([]model.Product, []BusinessActivity, error) {
	products, err := e.gw.ListProducts(ctx, business)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	activities := make([]BusinessActivity, len(businesses))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range businesses {
		g.Go(func() error {
			scope := gateway.ListScope{Business: b.Selection()}
			orders, err := e.gw.ListOrders(gctx, scope)
			if err != nil {
				return fmt.Errorf("failed to fetch orders for %s: %w", b.DisplayName(), err)
			}
			returns, err := e.gw.ListReturns(gctx, scope)
			if err != nil {
				return fmt.Errorf("failed to fetch returns for %s: %w", b.DisplayName(), err)
			}
			activities[i] = AggregateActivity(b, orders, returns)
			if onBusiness != nil {
				onBusiness(b)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return products, activities, nil
}

// ExportDashboard writes the multi-business reconciliation workbook into
// dir and returns the file path.
func (e *Engine) ExportDashboard(ctx context.Context, business, dir string, onBusiness func(model.Business)) (string, error) {
	businesses, err := e.gw.ListBusinesses(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch businesses: %w", err)
	}

	products, activities, err := e.FetchDashboardData(ctx, business, businesses, onBusiness)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, DashboardFilename(e.now()))
	if err := WriteWorkbook(path, []Sheet{BuildDashboardSheet(products, activities)}); err != nil {
		return "", err
	}

	slog.Info("dashboard export written",
		"path", path,
		"products", len(products),
		"businesses", len(activities))
	return path, nil
}
