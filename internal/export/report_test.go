package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackinhq/trackin/internal/model"
)

func TestSummableColumn(t *testing.T) {
	tests := []struct {
		header string
		want   bool
	}{
		{"selling qty", true},
		{"Return Qty", true},
		{"final selling qty", true},
		{"sell qty amount", true},
		{"purchase qty amount", true},
		{"total price", true},
		{"orders (Main Street)", true},
		{"returns (Main Street)", true},
		{"product name", false},
		{"sku", false},
		{"current stock", false},
		{"unit price", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, SummableColumn(tt.header))
		})
	}
}

func TestFilenames(t *testing.T) {
	now := time.UnixMilli(1710500000000)
	assert.Equal(t, "products_1710500000000.xlsx", ProductsFilename(now))
	assert.Equal(t, "dashboard_report_1710500000000.xlsx", DashboardFilename(now))
}

func TestBuildProductSheets(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProductName: "Widget", SKU: "WID-1", MaxStock: 10, CurrentStock: 7, Price: 2.5, SellingPrice: 4},
		{ID: 2, ProductName: "Gadget", SKU: "GAD-1", MaxStock: 4, CurrentStock: 4, Price: 10, SellingPrice: 15},
	}

	sheets := BuildProductSheets(products)
	require.Len(t, sheets, 2)

	main := sheets[0]
	assert.Equal(t, "Products", main.Name)
	assert.True(t, main.HasTotals())
	assert.Equal(t, 6, main.TotalLabelCol)
	require.Len(t, main.Rows, 2)

	// Total price is unit price times max stock.
	assert.Equal(t, 25.0, main.Rows[0][7])
	assert.Equal(t, 40.0, main.Rows[1][7])

	summary := sheets[1]
	assert.Equal(t, "Summary", summary.Name)
	assert.False(t, summary.HasTotals())

	last := summary.Rows[len(summary.Rows)-1]
	assert.Equal(t, "Total inventory value", last[0])
	assert.Equal(t, 65.0, last[1])
	stockRow := summary.Rows[len(summary.Rows)-2]
	assert.Equal(t, 14, stockRow[1])
}

func TestAggregateActivity(t *testing.T) {
	b := model.Business{ID: 1, BusinessName: "Main Street"}
	orders := []model.Order{
		{ProductName: "Widget", Quantity: 2},
		{ProductName: "Widget", Quantity: 3},
		{ProductName: "Gadget", Quantity: 1},
	}
	returns := []model.Return{
		{ProductName: "Widget", Quantity: 1},
	}

	activity := AggregateActivity(b, orders, returns)
	assert.Equal(t, 5, activity.SellQty["Widget"])
	assert.Equal(t, 1, activity.SellQty["Gadget"])
	assert.Equal(t, 1, activity.ReturnQty["Widget"])
	assert.Zero(t, activity.ReturnQty["Gadget"])
}

func TestBuildDashboardSheet(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProductName: "Widget", SKU: "WID-1", Price: 2, MaxStock: 20, CurrentStock: 15},
	}
	activities := []BusinessActivity{
		{
			Business:  model.Business{ID: 1, BusinessName: "Main Street"},
			SellQty:   map[string]int{"Widget": 4},
			ReturnQty: map[string]int{"Widget": 1},
		},
		{
			Business:  model.Business{ID: 2, BusinessName: "Warehouse"},
			SellQty:   map[string]int{"Widget": 2},
			ReturnQty: map[string]int{},
		},
	}

	sheet := BuildDashboardSheet(products, activities)

	// Eleven fixed columns plus an orders and a returns column per business.
	require.Len(t, sheet.Columns, 11+2*len(activities))
	assert.Equal(t, "orders (Main Street)", sheet.Columns[11])
	assert.Equal(t, "returns (Main Street)", sheet.Columns[12])
	assert.Equal(t, "orders (Warehouse)", sheet.Columns[13])
	assert.Equal(t, "returns (Warehouse)", sheet.Columns[14])
	assert.Equal(t, 1, sheet.TotalLabelCol)

	require.Len(t, sheet.Rows, 1)
	row := sheet.Rows[0]
	require.Len(t, row, len(sheet.Columns))

	// selling qty 6, return qty 1, final 5.
	assert.Equal(t, 6, row[5])
	assert.Equal(t, 1, row[6])
	assert.Equal(t, 5, row[7])

	// sell qty amount = final qty * unit price; purchase = price * max stock.
	assert.Equal(t, 10.0, row[9])
	assert.Equal(t, 40.0, row[10])

	// Per-business columns carry each business's own quantities.
	assert.Equal(t, 4, row[11])
	assert.Equal(t, 1, row[12])
	assert.Equal(t, 2, row[13])
	assert.Equal(t, 0, row[14])
}

func TestBuildDashboardSheet_NoBusinesses(t *testing.T) {
	sheet := BuildDashboardSheet([]model.Product{{ID: 1, ProductName: "Widget"}}, nil)
	assert.Len(t, sheet.Columns, 11)
	require.Len(t, sheet.Rows, 1)
	assert.Len(t, sheet.Rows[0], 11)
}
