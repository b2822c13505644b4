package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMLine is one line of an item's embedded bill of materials.
// Parts are referenced by display name and resolved against part-stock
// buckets at production time.
type BOMLine struct {
	PartName       string          `bson:"part_name"`
	QuantityNeeded decimal.Decimal `bson:"quantity_needed"`
}

// Item is a sellable finished good. Quantity increases through assembly or
// production and decreases through sales; only the ledger engine writes it.
// BOM is optional: items built from a separate recipe leave it empty.
type Item struct {
	ID        string          `bson:"_id"`
	Name      string          `bson:"name"`
	Category  string          `bson:"category"`
	Quantity  decimal.Decimal `bson:"quantity"`
	BOM       []BOMLine       `bson:"bom,omitempty"`
	CreatedAt time.Time       `bson:"created_at"`
}
