package production

import (
	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/domain/stock"
)

// PartUsed is one consumed part in a successful build response.
type PartUsed struct {
	PartName     string          `json:"part_name"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
}

// BuildResult is the outcome of an assembly or production request.
// Insufficient parts are a routine outcome the caller branches on, so they
// come back as Success=false with the full shortfall list rather than as an
// error.
type BuildResult struct {
	Success           bool              `json:"success"`
	Message           string            `json:"message"`
	InsufficientParts []stock.Shortfall `json:"insufficient_parts,omitempty"`
	NewQuantity       decimal.Decimal   `json:"new_quantity"`
	PartsUsed         []PartUsed        `json:"parts_used,omitempty"`
	Cost              decimal.Decimal   `json:"cost"`
}

func insufficientResult(shortfalls []stock.Shortfall) *BuildResult {
	return &BuildResult{
		Success:           false,
		Message:           "insufficient parts",
		InsufficientParts: shortfalls,
	}
}
