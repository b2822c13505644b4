package repository

import (
	"context"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// AdminRepository is the persistence port for Admin (DIP).
type AdminRepository interface {
	Create(ctx context.Context, a *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	Count(ctx context.Context) (int64, error)
}
