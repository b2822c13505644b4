package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// AssembleUseCase builds N units of an item from its recipe: parts are
// referenced by id and consumed from the parts collection.
type AssembleUseCase struct {
	engine       *ledger.Engine
	items        repository.ItemRepository
	recipes      repository.RecipeRepository
	production   repository.ProductionRepository
	transactions repository.TransactionRepository
}

// NewAssembleUseCase builds the use case.
func NewAssembleUseCase(
	engine *ledger.Engine,
	items repository.ItemRepository,
	recipes repository.RecipeRepository,
	production repository.ProductionRepository,
	transactions repository.TransactionRepository,
) *AssembleUseCase {
	return &AssembleUseCase{
		engine:       engine,
		items:        items,
		recipes:      recipes,
		production:   production,
		transactions: transactions,
	}
}

// Assemble produces quantity units of the item. Admission (the sufficiency
// pre-pass over every recipe line) and application (part deduction plus the
// item-stock increment) run under one lock scope covering every entity
// touched, so concurrent builds cannot both pass against stale stock.
func (uc *AssembleUseCase) Assemble(ctx context.Context, itemID string, quantity decimal.Decimal) (*BuildResult, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	recipe, err := uc.recipes.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(recipe.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	keys := []string{ledger.ItemKey(itemID)}
	for _, l := range recipe.Lines {
		keys = append(keys, ledger.PartKey(l.PartID))
	}

	var result *BuildResult
	var used []ledger.PartUsage
	err = uc.engine.Locked(keys, func() error {
		shortfalls, err := uc.engine.CheckRecipe(ctx, recipe.Lines, quantity)
		if err != nil {
			return err
		}
		if len(shortfalls) > 0 {
			result = insufficientResult(shortfalls)
			return nil
		}
		var cost decimal.Decimal
		used, cost, err = uc.engine.ApplyRecipeDelta(ctx, recipe.Lines, quantity, -1)
		if err != nil {
			return err
		}
		updated, err := uc.engine.AdjustItem(ctx, itemID, quantity)
		if err != nil {
			return err
		}
		result = &BuildResult{
			Success:     true,
			Message:     fmt.Sprintf("assembled %s x %s", quantity, item.Name),
			NewQuantity: updated.Quantity,
			PartsUsed:   toPartsUsed(used),
			Cost:        cost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	now := time.Now()
	entry := &entity.ProductionEntry{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Quantity:  quantity,
		Source:    entity.ProductionSourceAssembly,
		PartsUsed: toUsageLines(used),
		Cost:      result.Cost,
		Date:      now,
		CreatedAt: now,
	}
	if err := uc.production.Create(ctx, entry); err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		ID:   uuid.New().String(),
		Type: entity.TransactionAssembly,
		Date: now,
		Details: map[string]string{
			"item_name":         item.Name,
			"quantity_produced": quantity.String(),
		},
		Cost: result.Cost,
	}
	if err := uc.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}

func toPartsUsed(used []ledger.PartUsage) []PartUsed {
	out := make([]PartUsed, 0, len(used))
	for _, u := range used {
		out = append(out, PartUsed{PartName: u.PartName, QuantityUsed: u.Quantity})
	}
	return out
}

func toUsageLines(used []ledger.PartUsage) []entity.UsageLine {
	out := make([]entity.UsageLine, 0, len(used))
	for _, u := range used {
		out = append(out, entity.UsageLine{PartID: u.PartID, PartName: u.PartName, Quantity: u.Quantity})
	}
	return out
}
