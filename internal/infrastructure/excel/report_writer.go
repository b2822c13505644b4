package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/application/reports"
)

const (
	sheetParts        = "Parts Inventory"
	sheetItems        = "Finished Products"
	sheetTransactions = "Transactions"

	dateFormat = "2006-01-02 15:04"
)

var _ reports.ExcelWriter = (*ReportWriter)(nil)

// ReportWriter renders inventory reports as xlsx workbooks.
type ReportWriter struct{}

// NewReportWriter builds the writer.
func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// Write renders the report into a three-sheet workbook.
func (w *ReportWriter) Write(report *dto.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: header style: %w", err)
	}

	if err := w.writeParts(f, headerStyle, report.Parts); err != nil {
		return nil, err
	}
	if err := w.writeItems(f, headerStyle, report.Items); err != nil {
		return nil, err
	}
	if err := w.writeTransactions(f, headerStyle, report.Transactions); err != nil {
		return nil, err
	}

	// The default sheet is replaced by the report sheets.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: delete default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *ReportWriter) writeParts(f *excelize.File, headerStyle int, rows []dto.PartReportRow) error {
	if _, err := f.NewSheet(sheetParts); err != nil {
		return fmt.Errorf("excel: new sheet %s: %w", sheetParts, err)
	}
	headers := []string{"Name", "Category", "Quantity", "Supplier", "Purchase Price", "Low Stock Threshold", "Status", "Last Purchase"}
	if err := writeHeader(f, sheetParts, headerStyle, headers); err != nil {
		return err
	}
	for i, row := range rows {
		lastPurchase := ""
		if row.LastPurchaseDate != nil {
			lastPurchase = row.LastPurchaseDate.Format(dateFormat)
		}
		cells := []any{
			row.Name, row.Category, row.Quantity.String(), row.Supplier,
			row.PurchasePrice.String(), row.LowStockThreshold.String(), row.Status, lastPurchase,
		}
		if err := writeRow(f, sheetParts, i+2, cells); err != nil {
			return err
		}
	}
	return autosize(f, sheetParts, len(headers))
}

func (w *ReportWriter) writeItems(f *excelize.File, headerStyle int, rows []dto.ItemReportRow) error {
	if _, err := f.NewSheet(sheetItems); err != nil {
		return fmt.Errorf("excel: new sheet %s: %w", sheetItems, err)
	}
	headers := []string{"Name", "Category", "Quantity", "Has Recipe", "Created"}
	if err := writeHeader(f, sheetItems, headerStyle, headers); err != nil {
		return err
	}
	for i, row := range rows {
		hasRecipe := "No"
		if row.HasRecipe {
			hasRecipe = "Yes"
		}
		cells := []any{row.Name, row.Category, row.Quantity.String(), hasRecipe, row.Created.Format(dateFormat)}
		if err := writeRow(f, sheetItems, i+2, cells); err != nil {
			return err
		}
	}
	return autosize(f, sheetItems, len(headers))
}

func (w *ReportWriter) writeTransactions(f *excelize.File, headerStyle int, rows []dto.TransactionReportRow) error {
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return fmt.Errorf("excel: new sheet %s: %w", sheetTransactions, err)
	}
	headers := []string{"Type", "Date", "Details", "Cost"}
	if err := writeHeader(f, sheetTransactions, headerStyle, headers); err != nil {
		return err
	}
	for i, row := range rows {
		cells := []any{row.Type, row.Date.Format(dateFormat), row.Details, row.Cost.String()}
		if err := writeRow(f, sheetTransactions, i+2, cells); err != nil {
			return err
		}
	}
	return autosize(f, sheetTransactions, len(headers))
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("excel: set header %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("excel: style header %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// autosize widens columns to fit content, capped at 50 characters.
func autosize(f *excelize.File, sheet string, cols int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	for c := 0; c < cols; c++ {
		width := 10
		for _, row := range rows {
			if c < len(row) && len(row[c])+2 > width {
				width = len(row[c]) + 2
			}
		}
		if width > 50 {
			width = 50
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
