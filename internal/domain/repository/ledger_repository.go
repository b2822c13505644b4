package repository

import (
	"context"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// ProductionRepository is the persistence port for production entries.
type ProductionRepository interface {
	Create(ctx context.Context, e *entity.ProductionEntry) error
	GetByID(ctx context.Context, id string) (*entity.ProductionEntry, error)
	List(ctx context.Context) ([]*entity.ProductionEntry, error)
	Update(ctx context.Context, e *entity.ProductionEntry) error
	Delete(ctx context.Context, id string) error
}

// SaleRepository is the persistence port for sale entries.
type SaleRepository interface {
	Create(ctx context.Context, e *entity.SaleEntry) error
	GetByID(ctx context.Context, id string) (*entity.SaleEntry, error)
	List(ctx context.Context) ([]*entity.SaleEntry, error)
	Update(ctx context.Context, e *entity.SaleEntry) error
	Delete(ctx context.Context, id string) error
}

// PurchaseRepository is the persistence port for purchase entries.
type PurchaseRepository interface {
	Create(ctx context.Context, e *entity.PurchaseEntry) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseEntry, error)
	List(ctx context.Context) ([]*entity.PurchaseEntry, error)
	Update(ctx context.Context, e *entity.PurchaseEntry) error
	Delete(ctx context.Context, id string) error
}
