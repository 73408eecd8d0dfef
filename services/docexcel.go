package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelData is the flat input for the line-item workbook export.
type ExcelData struct {
	Title          string
	EstimateNumber string
	DateLabel      string
	Items          []LineItem
	Totals         EstimateTotals
	ShowUnitCosts  bool
}

// GenerateEstimateExcel creates a workbook with the estimate line items and
// totals and returns the file contents as a byte slice.
func GenerateEstimateExcel(data ExcelData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Estimate"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	widths := []float64{6, 42, 10, 10, 14, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#212529"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	laborStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#F5F5F5"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create labor style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#F0F0F0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// Title and reference rows.
	f.SetCellValue(sheetName, "A1", data.Title)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Estimate: %s", data.EstimateNumber))
	f.SetCellValue(sheetName, "E2", fmt.Sprintf("Date: %s", data.DateLabel))

	// Column headers.
	headers := []string{"#", "Description", "Type", "Qty", "Unit", "Unit Cost", "Line Total"}
	if !data.ShowUnitCosts {
		headers = []string{"#", "Description", "Type", "Qty", "Unit", "", "Line Total"}
	}
	headerRow := 4
	for i, h := range headers {
		if h == "" {
			continue
		}
		cell := fmt.Sprintf("%s%d", columns[i], headerRow)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// Item rows.
	rowNum := headerRow
	for i, item := range data.Items {
		rowNum++
		desc := item.Name
		if item.Description != "" {
			desc = item.Name + " - " + item.Description
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), desc)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), item.ItemType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), item.Qty)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), item.Unit)
		if data.ShowUnitCosts {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), item.UnitCost)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), item.LineTotal)

		if item.ItemType == "labor" {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("G%d", rowNum), laborStyle)
		}
	}

	// Totals block.
	addTotal := func(label string, amount float64) {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), label)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), amount)
		f.SetCellStyle(sheetName, fmt.Sprintf("F%d", rowNum), fmt.Sprintf("G%d", rowNum), totalStyle)
	}

	rowNum++
	addTotal("Materials", data.Totals.MaterialTotal)
	addTotal("Labor", data.Totals.LaborTotal)
	addTotal("Subtotal", data.Totals.Subtotal)
	if data.ShowUnitCosts {
		addTotal("Markup", data.Totals.MarkupAmount)
	}
	addTotal("Tax", data.Totals.TaxAmount)
	addTotal("Total", data.Totals.GrandTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
