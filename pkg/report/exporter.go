package report

import (
	"bytes"
	"fmt"

	"Campus-Inventory-System/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

var reportHeader = []string{
	"Item", "Subcategory", "Program", "Quantity", "Amount", "Requested Date", "Supplier", "Type",
}

// ExportXLSX writes a report as a spreadsheet: title line, header row, one
// row per report line, and a grand total line at the bottom.
func ExportXLSX(report domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetCellValue(sheetName, "A1", report.Title); err != nil {
		return nil, err
	}

	for col, name := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, err
		}
	}

	for i, row := range report.Rows {
		values := []interface{}{
			row.Name, row.SubCategory, row.Program, row.Quantity,
			row.Amount, row.Date, row.Supplier, row.ItemType,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+4)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(report.Rows) + 5
	totalCell := fmt.Sprintf("A%d", totalRow)
	if err := f.SetCellValue(sheetName, totalCell, "Total Amount: $"+report.GrandTotal.StringFixed(2)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
