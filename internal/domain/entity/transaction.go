package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionPurchasePart = "purchase_part"
	TransactionAssembly     = "assembly"
)

// Transaction is an append-only audit record written as a side effect of
// part purchases and assemblies. Never mutated.
type Transaction struct {
	ID      string            `bson:"_id"`
	Type    string            `bson:"type"`
	Date    time.Time         `bson:"date"`
	Details map[string]string `bson:"details"`
	Cost    decimal.Decimal   `bson:"cost"`
}
