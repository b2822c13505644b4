package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// PartStockRepository is the persistence port for named stock buckets.
// ListByName returns every bucket sharing a display name; the caller picks
// one through the tie-break policy. UpdateStock is reserved for the engine.
type PartStockRepository interface {
	Create(ctx context.Context, s *entity.PartStock) error
	GetByID(ctx context.Context, id string) (*entity.PartStock, error)
	ListByName(ctx context.Context, name string) ([]entity.PartStock, error)
	List(ctx context.Context) ([]*entity.PartStock, error)
	UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error
}
