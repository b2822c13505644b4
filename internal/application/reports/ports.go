package reports

import "github.com/bafnalights-dot/stock/internal/application/dto"

// ExcelWriter renders an inventory report as an xlsx workbook.
type ExcelWriter interface {
	Write(report *dto.InventoryReport) ([]byte, error)
}

// Sender delivers a rendered report by email.
type Sender interface {
	Send(to, subject, body, attachmentName string, attachment []byte) error
}
