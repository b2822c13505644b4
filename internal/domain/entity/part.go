package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a raw component consumed by production.
// Quantity is mutated only by the ledger engine (purchase credit, production
// consumption, reversal); plain updates carry metadata only.
type Part struct {
	ID                string          `bson:"_id"`
	Name              string          `bson:"name"`
	Category          string          `bson:"category"`
	Quantity          decimal.Decimal `bson:"quantity"`
	SupplierID        string          `bson:"supplier_id,omitempty"`
	PurchasePrice     decimal.Decimal `bson:"purchase_price"`
	LowStockThreshold decimal.Decimal `bson:"low_stock_threshold"`
	LastPurchaseDate  time.Time       `bson:"last_purchase_date"`
	CreatedAt         time.Time       `bson:"created_at"`
}

// IsLowStock reports whether the part sits at or below its reorder threshold.
func (p *Part) IsLowStock() bool {
	return p.Quantity.LessThanOrEqual(p.LowStockThreshold)
}
