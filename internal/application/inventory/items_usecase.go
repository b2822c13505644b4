package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// ItemsUseCase manages finished items and their recipes. An item can carry
// an embedded by-name bill of materials, a by-id recipe, or both.
type ItemsUseCase struct {
	items   repository.ItemRepository
	recipes repository.RecipeRepository
	parts   repository.PartRepository
}

// NewItemsUseCase builds the use case.
func NewItemsUseCase(items repository.ItemRepository, recipes repository.RecipeRepository, parts repository.PartRepository) *ItemsUseCase {
	return &ItemsUseCase{items: items, recipes: recipes, parts: parts}
}

// Create registers a finished item.
func (uc *ItemsUseCase) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	bom := make([]entity.BOMLine, 0, len(req.BOM))
	for _, l := range req.BOM {
		if strings.TrimSpace(l.PartName) == "" || !l.QuantityNeeded.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		bom = append(bom, entity.BOMLine{PartName: l.PartName, QuantityNeeded: l.QuantityNeeded})
	}
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Category:  req.Category,
		Quantity:  req.Quantity,
		BOM:       bom,
		CreatedAt: time.Now(),
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, item), nil
}

// List returns all items with their recipe flag.
func (uc *ItemsUseCase) List(ctx context.Context) ([]*dto.ItemResponse, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, uc.toResponse(ctx, it))
	}
	return out, nil
}

// Get returns one item.
func (uc *ItemsUseCase) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, item), nil
}

// UpsertRecipe replaces the item's recipe. Every referenced part must exist
// and every line quantity must be positive.
func (uc *ItemsUseCase) UpsertRecipe(ctx context.Context, itemID string, req dto.UpsertRecipeRequest) (*dto.RecipeResponse, error) {
	if _, err := uc.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.RecipeLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		if !l.QuantityNeeded.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if _, err := uc.parts.GetByID(ctx, l.PartID); err != nil {
			return nil, err
		}
		lines = append(lines, entity.RecipeLine{PartID: l.PartID, QuantityNeeded: l.QuantityNeeded})
	}
	recipe := &entity.Recipe{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Lines:     lines,
		CreatedAt: time.Now(),
	}
	if err := uc.recipes.Upsert(ctx, recipe); err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

// ListRecipes returns every recipe.
func (uc *ItemsUseCase) ListRecipes(ctx context.Context) ([]*dto.RecipeResponse, error) {
	recipes, err := uc.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	return out, nil
}

// GetRecipe returns the item's recipe.
func (uc *ItemsUseCase) GetRecipe(ctx context.Context, itemID string) (*dto.RecipeResponse, error) {
	recipe, err := uc.recipes.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return toRecipeResponse(recipe), nil
}

func (uc *ItemsUseCase) toResponse(ctx context.Context, it *entity.Item) *dto.ItemResponse {
	_, err := uc.recipes.GetByItemID(ctx, it.ID)
	hasRecipe := err == nil
	bom := make([]dto.BOMLineRequest, 0, len(it.BOM))
	for _, l := range it.BOM {
		bom = append(bom, dto.BOMLineRequest{PartName: l.PartName, QuantityNeeded: l.QuantityNeeded})
	}
	return &dto.ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Quantity:  it.Quantity,
		BOM:       bom,
		HasRecipe: hasRecipe,
		CreatedAt: it.CreatedAt,
	}
}

func toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	lines := make([]dto.RecipeLineRequest, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, dto.RecipeLineRequest{PartID: l.PartID, QuantityNeeded: l.QuantityNeeded})
	}
	return &dto.RecipeResponse{ID: r.ID, ItemID: r.ItemID, Lines: lines, CreatedAt: r.CreatedAt}
}
