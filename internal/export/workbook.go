package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// Presentation constants matching the dashboard's export styling.
const (
	headerFillColor = "2563EB"
	columnWidth     = 18
	headerHeight    = 24
)

// WriteWorkbook serializes sheets into an xlsx file at path. Totals rows
// hold live SUM formulas over each summable column's data range, never
// precomputed literals.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close workbook", "error", closeErr)
		}
	}()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("failed to add sheet %s: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", sheet.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]any, len(sheet.Columns))
	for i, col := range sheet.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		rowValues := row
		if err := f.SetSheetRow(sheet.Name, cell, &rowValues); err != nil {
			return err
		}
	}

	lastRow := len(sheet.Rows) + 1
	if sheet.HasTotals() {
		if err := writeTotalsRow(f, sheet); err != nil {
			return err
		}
		lastRow++
	}

	return applySheetStyles(f, sheet, lastRow)
}

// writeTotalsRow appends the TOTAL row directly after the last data row.
// Each summable column gets SUM(<col>2:<col>N) over the data range; the
// label lands in the sheet's configured label column.
func writeTotalsRow(f *excelize.File, sheet Sheet) error {
	dataStart := 2
	dataEnd := len(sheet.Rows) + 1
	totalRow := dataEnd + 1

	labelCell, err := excelize.CoordinatesToCellName(sheet.TotalLabelCol+1, totalRow)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet.Name, labelCell, "TOTAL"); err != nil {
		return err
	}

	for i, column := range sheet.Columns {
		if !SummableColumn(column) {
			continue
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, totalRow)
		if err != nil {
			return err
		}
		formula := fmt.Sprintf("SUM(%s%d:%s%d)", colName, dataStart, colName, dataEnd)
		if err := f.SetCellFormula(sheet.Name, cell, formula); err != nil {
			return err
		}
	}
	return nil
}

// applySheetStyles centers everything with wrap, bolds the header row on
// a solid fill, and fixes the column width. Cosmetic only.
func applySheetStyles(f *excelize.File, sheet Sheet, lastRow int) error {
	centered, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(sheet.Columns))
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(sheet.Name, "A1", fmt.Sprintf("%s%d", lastCol, lastRow), centered); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	if sheet.HasTotals() {
		totalRowRef := fmt.Sprintf("%d", lastRow)
		if err := f.SetCellStyle(sheet.Name, "A"+totalRowRef, lastCol+totalRowRef, totalStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet.Name, "A", lastCol, columnWidth); err != nil {
		return err
	}
	return f.SetRowHeight(sheet.Name, 1, headerHeight)
}
