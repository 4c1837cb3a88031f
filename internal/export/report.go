// Package export builds the downloadable workbook reports: the product
// inventory sheet and the multi-business dashboard reconciliation. Report
// building is pure; writers serialize the result to xlsx or Google Sheets.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/trackinhq/trackin/internal/model"
)

// Sheet is one tab of a workbook: a header row, data rows, and an
// optional totals row whose summable cells are spreadsheet formulas so
// the file stays correct when recalculated.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]any

	// TotalLabelCol is the 0-based column holding the "TOTAL" label on
	// the totals row. Negative means no totals row.
	TotalLabelCol int
}

// HasTotals reports whether the sheet carries a totals row.
func (s Sheet) HasTotals() bool {
	return s.TotalLabelCol >= 0
}

// SummableColumn reports whether a column's totals cell is a SUM formula
// over the data range. The per-business columns are dynamic, so this is
// a predicate on the header rather than a fixed set.
func SummableColumn(header string) bool {
	lower := strings.ToLower(header)
	switch lower {
	case "selling qty", "return qty", "final selling qty", "sell qty amount", "purchase qty amount", "total price":
		return true
	}
	return strings.HasPrefix(lower, "orders (") || strings.HasPrefix(lower, "returns (")
}

// ProductsFilename returns the timestamped name for a product export.
func ProductsFilename(now time.Time) string {
	return fmt.Sprintf("products_%d.xlsx", now.UnixMilli())
}

// DashboardFilename returns the timestamped name for a dashboard export.
func DashboardFilename(now time.Time) string {
	return fmt.Sprintf("dashboard_report_%d.xlsx", now.UnixMilli())
}

// BuildProductSheets builds the product-only export: one row per product
// with a formula total over the "total price" column, plus a Summary
// sheet with per-product stock value and two grand totals.
func BuildProductSheets(products []model.Product) []Sheet {
	main := Sheet{
		Name: "Products",
		Columns: []string{
			"id", "Product name", "sku", "max stock", "current stock",
			"unit price", "Selling price", "total price",
		},
		// Label sits in column G, directly before the summed column H.
		TotalLabelCol: 6,
	}

	var totalStock int
	var totalValue float64
	for _, p := range products {
		totalPrice := p.Price * float64(p.MaxStock)
		totalStock += p.MaxStock
		totalValue += totalPrice
		main.Rows = append(main.Rows, []any{
			p.ID, p.ProductName, p.SKU, p.MaxStock, p.CurrentStock,
			p.Price, p.SellingPrice, totalPrice,
		})
	}

	summary := Sheet{
		Name:          "Summary",
		Columns:       []string{"Metric", "Value", "Extra"},
		TotalLabelCol: -1,
	}
	summary.Rows = append(summary.Rows, []any{"Product name", "Max stock", "Total price"})
	for _, p := range products {
		summary.Rows = append(summary.Rows, []any{p.ProductName, p.MaxStock, p.Price * float64(p.MaxStock)})
	}
	summary.Rows = append(summary.Rows,
		[]any{},
		[]any{"Total stock (sum of max stock)", totalStock},
		[]any{"Total inventory value", totalValue},
	)

	return []Sheet{main, summary}
}

// BusinessActivity is one business's order and return quantities keyed by
// product name.
type BusinessActivity struct {
	Business  model.Business
	SellQty   map[string]int
	ReturnQty map[string]int
}

// AggregateActivity folds a business's orders and returns into per-product
// quantities.
func AggregateActivity(b model.Business, orders []model.Order, returns []model.Return) BusinessActivity {
	activity := BusinessActivity{
		Business:  b,
		SellQty:   make(map[string]int),
		ReturnQty: make(map[string]int),
	}
	for _, o := range orders {
		activity.SellQty[o.ProductName] += o.Quantity
	}
	for _, r := range returns {
		activity.ReturnQty[r.ProductName] += r.Quantity
	}
	return activity
}

// BuildDashboardSheet joins products with per-business activity. Fixed
// columns aggregate across every business; each business then contributes
// an orders and a returns column of its own, so the column set is only
// known once the business list has been enumerated.
func BuildDashboardSheet(products []model.Product, activities []BusinessActivity) Sheet {
	sheet := Sheet{
		Name: "Dashboard Report",
		Columns: []string{
			"id", "product name", "sku", "unit price", "max stock",
			"selling qty", "return qty", "final selling qty",
			"current stock", "sell qty amount", "purchase qty amount",
		},
		// Label goes in the column right after the first.
		TotalLabelCol: 1,
	}
	for _, activity := range activities {
		name := activity.Business.DisplayName()
		sheet.Columns = append(sheet.Columns,
			fmt.Sprintf("orders (%s)", name),
			fmt.Sprintf("returns (%s)", name))
	}

	for _, p := range products {
		var sellingQty, returnQty int
		for _, activity := range activities {
			sellingQty += activity.SellQty[p.ProductName]
			returnQty += activity.ReturnQty[p.ProductName]
		}
		finalSellingQty := sellingQty - returnQty
		sellQtyAmount := float64(finalSellingQty) * p.Price
		purchaseQtyAmount := p.Price * float64(p.MaxStock)

		row := []any{
			p.ID, p.ProductName, p.SKU, p.Price, p.MaxStock,
			sellingQty, returnQty, finalSellingQty,
			p.CurrentStock, sellQtyAmount, purchaseQtyAmount,
		}
		for _, activity := range activities {
			row = append(row, activity.SellQty[p.ProductName], activity.ReturnQty[p.ProductName])
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}
