package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trackinhq/trackin/internal/model"
)

func TestWriteWorkbook_Empty(t *testing.T) {
	err := WriteWorkbook(filepath.Join(t.TempDir(), "out.xlsx"), nil)
	assert.Error(t, err)
}

func TestWriteWorkbook_ProductExport(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProductName: "Widget", SKU: "WID-1", MaxStock: 10, CurrentStock: 7, Price: 2.5, SellingPrice: 4},
		{ID: 2, ProductName: "Gadget", SKU: "GAD-1", MaxStock: 4, CurrentStock: 4, Price: 10, SellingPrice: 15},
	}
	path := filepath.Join(t.TempDir(), "products.xlsx")

	require.NoError(t, WriteWorkbook(path, BuildProductSheets(products)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	assert.Equal(t, []string{"Products", "Summary"}, f.GetSheetList())

	name, err := f.GetCellValue("Products", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Widget", name)

	// The totals row holds a live formula, not a precomputed value.
	formula, err := f.GetCellFormula("Products", "H4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(H2:H3)", formula)

	label, err := f.GetCellValue("Products", "G4")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", label)
}

func TestWriteWorkbook_DashboardTotals(t *testing.T) {
	products := []model.Product{
		{ID: 1, ProductName: "Widget", SKU: "WID-1", Price: 2, MaxStock: 20, CurrentStock: 15},
		{ID: 2, ProductName: "Gadget", SKU: "GAD-1", Price: 5, MaxStock: 8, CurrentStock: 8},
	}
	activities := []BusinessActivity{
		{
			Business:  model.Business{ID: 1, BusinessName: "Main Street"},
			SellQty:   map[string]int{"Widget": 4},
			ReturnQty: map[string]int{"Widget": 1},
		},
	}
	path := filepath.Join(t.TempDir(), "dashboard.xlsx")

	require.NoError(t, WriteWorkbook(path, []Sheet{BuildDashboardSheet(products, activities)}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	// Two data rows, so formulas span rows 2 to 3 on the totals row 4.
	for _, cell := range []string{"F4", "G4", "H4", "J4", "K4", "L4", "M4"} {
		formula, err := f.GetCellFormula("Dashboard Report", cell)
		require.NoError(t, err)
		assert.Equal(t, "SUM("+cell[:1]+"2:"+cell[:1]+"3)", formula, "cell %s", cell)
	}

	// Non-summable columns stay empty on the totals row except the label.
	label, err := f.GetCellValue("Dashboard Report", "B4")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", label)
	sku, err := f.GetCellFormula("Dashboard Report", "C4")
	require.NoError(t, err)
	assert.Empty(t, sku)
}
