package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartStock is a physical stock bucket keyed by part display name.
// Several buckets may share a name; which one a mutation lands on is decided
// by the tie-break policy, never by insertion order.
type PartStock struct {
	ID           string          `bson:"_id"`
	Name         string          `bson:"name"`
	CurrentStock decimal.Decimal `bson:"current_stock"`
	CreatedAt    time.Time       `bson:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at"`
}
