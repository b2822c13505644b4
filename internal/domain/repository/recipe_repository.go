package repository

import (
	"context"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// RecipeRepository is the persistence port for Recipe (DIP).
// One recipe per item; Upsert replaces an existing one.
type RecipeRepository interface {
	Upsert(ctx context.Context, recipe *entity.Recipe) error
	GetByItemID(ctx context.Context, itemID string) (*entity.Recipe, error)
	List(ctx context.Context) ([]*entity.Recipe, error)
}
