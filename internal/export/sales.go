// Package export builds downloadable spreadsheets from the sales data.
package export

import (
	"fmt"
	"io"

	"storefront/internal/i18n"
	"storefront/internal/models"

	"github.com/xuri/excelize/v2"
)

const SalesSheet = "Sales"

// SalesWorkbook lays the monthly series out as a two column table, adds
// the current month totals below it and charts the series as a line.
func SalesWorkbook(sales models.SalesSummary, p i18n.Phrases) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SalesSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][]any{{p.Month, p.Sales}}
	for _, pt := range sales.Trend {
		rows = append(rows, []any{pt.Month, pt.Sales})
	}
	rows = append(rows,
		[]any{},
		[]any{p.TotalSales, sales.ThisMonth.TotalSales},
		[]any{p.UniqueCustomers, sales.ThisMonth.UniqueCustomers},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		if err := f.SetSheetRow(SalesSheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if len(sales.Trend) > 0 {
		last := len(sales.Trend) + 1
		err := f.AddChart(SalesSheet, "D2", &excelize.Chart{
			Type: excelize.Line,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$1", SalesSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", SalesSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", SalesSheet, last),
			}},
		})
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to add chart: %w", err)
		}
	}

	return f, nil
}

// WriteSales writes the sales workbook as xlsx to w.
func WriteSales(w io.Writer, sales models.SalesSummary, p i18n.Phrases) error {
	f, err := SalesWorkbook(sales, p)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
