package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// ItemRepository is the persistence port for Item (DIP).
// UpdateQuantity is reserved for the ledger engine.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	Count(ctx context.Context) (int64, error)
}
