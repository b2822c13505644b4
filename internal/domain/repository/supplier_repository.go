package repository

import (
	"context"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// SupplierRepository is the persistence port for Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
