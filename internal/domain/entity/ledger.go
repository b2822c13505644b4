package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production entry sources.
const (
	ProductionSourceAssembly   = "assembly"   // built from a recipe (parts by id)
	ProductionSourceProduction = "production" // built from the embedded BOM (part stocks by name)
)

// UsageLine records one part consumption inside a production entry.
// Either PartID (assembly) or PartName (production) identifies the target;
// PartName is always set for reporting.
type UsageLine struct {
	PartID   string          `bson:"part_id,omitempty"`
	PartName string          `bson:"part_name"`
	Quantity decimal.Decimal `bson:"quantity"`
}

// ProductionEntry is the historical record of one build. PartsUsed holds the
// exact consumption at apply time so a reversal restores pre-operation
// values even if the recipe or BOM changed afterwards.
type ProductionEntry struct {
	ID        string          `bson:"_id"`
	ItemID    string          `bson:"item_id"`
	Quantity  decimal.Decimal `bson:"quantity"`
	Source    string          `bson:"source"`
	PartsUsed []UsageLine     `bson:"parts_used"`
	Cost      decimal.Decimal `bson:"cost"`
	Date      time.Time       `bson:"date"`
	CreatedAt time.Time       `bson:"created_at"`
}

// SaleEntry is the historical record of one sale.
type SaleEntry struct {
	ID        string          `bson:"_id"`
	ItemID    string          `bson:"item_id"`
	Quantity  decimal.Decimal `bson:"quantity"`
	Party     string          `bson:"party"`
	Date      time.Time       `bson:"date"`
	CreatedAt time.Time       `bson:"created_at"`
}

// PurchaseEntry is the historical record of one part-stock purchase,
// targeting buckets by part name.
type PurchaseEntry struct {
	ID        string          `bson:"_id"`
	PartName  string          `bson:"part_name"`
	Quantity  decimal.Decimal `bson:"quantity"`
	UnitPrice decimal.Decimal `bson:"unit_price"`
	Date      time.Time       `bson:"date"`
	CreatedAt time.Time       `bson:"created_at"`
}
