package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLine maps a part (by id) to the quantity needed per assembled unit.
type RecipeLine struct {
	PartID         string          `bson:"part_id"`
	QuantityNeeded decimal.Decimal `bson:"quantity_needed"`
}

// Recipe is the bill of materials for one item, kept as a separate document
// keyed by item id. A buildable recipe always has at least one line.
type Recipe struct {
	ID        string       `bson:"_id"`
	ItemID    string       `bson:"item_id"`
	Lines     []RecipeLine `bson:"lines"`
	CreatedAt time.Time    `bson:"created_at"`
}
