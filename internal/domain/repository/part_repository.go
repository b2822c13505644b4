package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// PartRepository is the persistence port for Part (DIP).
// UpdateQuantity is reserved for the ledger engine; Update never touches
// the quantity field.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	List(ctx context.Context) ([]*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	UpdatePurchaseInfo(ctx context.Context, id string, price decimal.Decimal, purchasedAt time.Time) error
	Count(ctx context.Context) (int64, error)
}
