// Package export writes XLSX report workbooks for the back office.
package export

import (
	"fmt"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	"github.com/xuri/excelize/v2"
)

// DashboardWorkbook renders the dashboard snapshot as a two-section
// sheet: the entity counts, then the 7-day trend.
func DashboardWorkbook(snapshot *service.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Dashboard"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Total users", snapshot.TotalUsers},
		{"Active users", snapshot.ActiveUsers},
		{"Active products", snapshot.ActiveProducts},
		{"Today sales", snapshot.TodaySales},
		{"Weekly sales", snapshot.WeeklySales},
	}
	for i, row := range summary {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	base := len(summary) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", base), "Date"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", base), "Sales"); err != nil {
		return nil, err
	}
	for i, point := range snapshot.Trend {
		row := base + 1 + i
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), point.Date); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), point.Total); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ProductWorkbook renders the product list, one row per product.
func ProductWorkbook(products []model.Product) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Products"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Code", "Category", "Price", "Tax %", "Stock", "Unit", "Active"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, product := range products {
		category := ""
		if product.Category != nil {
			category = product.Category.Name
		}
		values := []interface{}{
			product.ID, product.Name, product.Code, category,
			product.Price, product.TaxRate, product.Stock, product.Unit, product.Active,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
