package stock

import "github.com/shopspring/decimal"

// Line is one bill-of-materials line with the stock available for it,
// already resolved by the caller.
type Line struct {
	PartID    string
	PartName  string
	PerUnit   decimal.Decimal // quantity needed per assembled unit
	Available decimal.Decimal
}

// Shortfall reports one line whose availability does not cover the request.
type Shortfall struct {
	PartID    string          `json:"part_id,omitempty"`
	PartName  string          `json:"part_name"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
}

// Check runs the full sufficiency pre-pass for building qty units: every
// line is inspected and every failing line reported, so the caller gets the
// complete picture before any stock is touched. An empty result means the
// build is admitted.
func Check(lines []Line, qty decimal.Decimal) []Shortfall {
	var shortfalls []Shortfall
	for _, l := range lines {
		required := l.PerUnit.Mul(qty)
		if l.Available.LessThan(required) {
			shortfalls = append(shortfalls, Shortfall{
				PartID:    l.PartID,
				PartName:  l.PartName,
				Required:  required,
				Available: l.Available,
			})
		}
	}
	return shortfalls
}
