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
	"github.com/bafnalights-dot/stock/internal/domain/stock"
)

// ProductionUseCase builds items from their embedded bill of materials
// (parts referenced by name, consumed from part-stock buckets) and edits or
// reverses recorded builds of either source.
type ProductionUseCase struct {
	engine     *ledger.Engine
	items      repository.ItemRepository
	recipes    repository.RecipeRepository
	production repository.ProductionRepository
}

// NewProductionUseCase builds the use case.
func NewProductionUseCase(
	engine *ledger.Engine,
	items repository.ItemRepository,
	recipes repository.RecipeRepository,
	production repository.ProductionRepository,
) *ProductionUseCase {
	return &ProductionUseCase{engine: engine, items: items, recipes: recipes, production: production}
}

// List returns all production entries, newest first.
func (uc *ProductionUseCase) List(ctx context.Context) ([]*entity.ProductionEntry, error) {
	return uc.production.List(ctx)
}

func bomKeys(itemID string, bom []entity.BOMLine) []string {
	keys := []string{ledger.ItemKey(itemID)}
	for _, l := range bom {
		keys = append(keys, ledger.StockKey(l.PartName))
	}
	return keys
}

// Create produces quantity units against the item's embedded BOM.
// Shortfalls come back as a soft result with nothing applied.
func (uc *ProductionUseCase) Create(ctx context.Context, itemID string, quantity decimal.Decimal, date time.Time) (*BuildResult, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(item.BOM) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *BuildResult
	var used []ledger.PartUsage
	err = uc.engine.Locked(bomKeys(itemID, item.BOM), func() error {
		shortfalls, err := uc.engine.CheckBOM(ctx, item.BOM, quantity)
		if err != nil {
			return err
		}
		if len(shortfalls) > 0 {
			result = insufficientResult(shortfalls)
			return nil
		}
		used, err = uc.engine.ApplyBOMDelta(ctx, item.BOM, quantity, -1)
		if err != nil {
			return err
		}
		updated, err := uc.engine.AdjustItem(ctx, itemID, quantity)
		if err != nil {
			return err
		}
		result = &BuildResult{
			Success:     true,
			Message:     fmt.Sprintf("produced %s x %s", quantity, item.Name),
			NewQuantity: updated.Quantity,
			PartsUsed:   toPartsUsed(used),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	if date.IsZero() {
		date = time.Now()
	}
	entry := &entity.ProductionEntry{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Quantity:  quantity,
		Source:    entity.ProductionSourceProduction,
		PartsUsed: toUsageLines(used),
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := uc.production.Create(ctx, entry); err != nil {
		return nil, err
	}
	return result, nil
}

// reverse undoes one production entry inside an already-held lock scope.
// The item stock is deducted first, so an entry whose output has since been
// sold or otherwise drained fails hard before any part is credited. The
// credits that follow restore the exact recorded usage and cannot fail.
func (uc *ProductionUseCase) reverse(ctx context.Context, entry *entity.ProductionEntry) error {
	if _, err := uc.engine.AdjustItem(ctx, entry.ItemID, entry.Quantity.Neg()); err != nil {
		return err
	}
	for _, u := range entry.PartsUsed {
		var err error
		if entry.Source == entity.ProductionSourceAssembly {
			_, err = uc.engine.AdjustPart(ctx, u.PartID, u.Quantity)
		} else {
			_, err = uc.engine.AdjustBucketByName(ctx, u.PartName, u.Quantity)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// reapply redoes a previously reversed entry from its recorded usage. Used
// when an edit's re-admission fails: the original entry must come back
// exactly, and since the reversal just credited these amounts under the same
// lock the deductions cannot fail.
func (uc *ProductionUseCase) reapply(ctx context.Context, entry *entity.ProductionEntry) error {
	for _, u := range entry.PartsUsed {
		var err error
		if entry.Source == entity.ProductionSourceAssembly {
			_, err = uc.engine.AdjustPart(ctx, u.PartID, u.Quantity.Neg())
		} else {
			_, err = uc.engine.AdjustBucketByName(ctx, u.PartName, u.Quantity.Neg())
		}
		if err != nil {
			return err
		}
	}
	_, err := uc.engine.AdjustItem(ctx, entry.ItemID, entry.Quantity)
	return err
}

func (uc *ProductionUseCase) entryKeys(entry *entity.ProductionEntry) []string {
	keys := []string{ledger.ItemKey(entry.ItemID)}
	for _, u := range entry.PartsUsed {
		if entry.Source == entity.ProductionSourceAssembly {
			keys = append(keys, ledger.PartKey(u.PartID))
		} else {
			keys = append(keys, ledger.StockKey(u.PartName))
		}
	}
	return keys
}

// Update edits a production entry's quantity by reversing the recorded
// usage, re-admitting the new quantity against the item's current build
// definition (recipe for assembly entries, embedded BOM for production
// entries) and applying it. If the new quantity does not fit, the original
// usage is re-applied under the same lock and the shortfalls come back as a
// soft result, leaving stock and history exactly as before the edit.
func (uc *ProductionUseCase) Update(ctx context.Context, entryID string, quantity decimal.Decimal, date time.Time) (*BuildResult, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.production.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(ctx, entry.ItemID)
	if err != nil {
		return nil, err
	}

	var recipeLines []entity.RecipeLine
	if entry.Source == entity.ProductionSourceAssembly {
		recipe, err := uc.recipes.GetByItemID(ctx, entry.ItemID)
		if err != nil {
			return nil, err
		}
		recipeLines = recipe.Lines
		if len(recipeLines) == 0 {
			return nil, domain.ErrInvalidInput
		}
	} else if len(item.BOM) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Lock everything the reversal and the re-apply can touch.
	keys := uc.entryKeys(entry)
	if entry.Source == entity.ProductionSourceAssembly {
		for _, l := range recipeLines {
			keys = append(keys, ledger.PartKey(l.PartID))
		}
	} else {
		for _, l := range item.BOM {
			keys = append(keys, ledger.StockKey(l.PartName))
		}
	}

	var result *BuildResult
	var used []ledger.PartUsage
	var cost decimal.Decimal
	err = uc.engine.Locked(keys, func() error {
		if err := uc.reverse(ctx, entry); err != nil {
			return err
		}
		var shortfalls []stock.Shortfall
		if entry.Source == entity.ProductionSourceAssembly {
			shortfalls, err = uc.engine.CheckRecipe(ctx, recipeLines, quantity)
		} else {
			shortfalls, err = uc.engine.CheckBOM(ctx, item.BOM, quantity)
		}
		if err != nil {
			return err
		}
		if len(shortfalls) > 0 {
			if err := uc.reapply(ctx, entry); err != nil {
				return err
			}
			result = insufficientResult(shortfalls)
			return nil
		}
		if entry.Source == entity.ProductionSourceAssembly {
			used, cost, err = uc.engine.ApplyRecipeDelta(ctx, recipeLines, quantity, -1)
		} else {
			used, err = uc.engine.ApplyBOMDelta(ctx, item.BOM, quantity, -1)
		}
		if err != nil {
			return err
		}
		updated, err := uc.engine.AdjustItem(ctx, entry.ItemID, quantity)
		if err != nil {
			return err
		}
		result = &BuildResult{
			Success:     true,
			Message:     fmt.Sprintf("updated production of %s", item.Name),
			NewQuantity: updated.Quantity,
			PartsUsed:   toPartsUsed(used),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	entry.Quantity = quantity
	entry.PartsUsed = toUsageLines(used)
	if entry.Source == entity.ProductionSourceAssembly {
		entry.Cost = cost
	}
	if !date.IsZero() {
		entry.Date = date
	}
	if err := uc.production.Update(ctx, entry); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete reverses a production entry and removes it from history. Assembly
// entries reverse through parts by id, production entries through buckets
// by name, always restoring the exact recorded usage.
func (uc *ProductionUseCase) Delete(ctx context.Context, entryID string) error {
	entry, err := uc.production.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	err = uc.engine.Locked(uc.entryKeys(entry), func() error {
		return uc.reverse(ctx, entry)
	})
	if err != nil {
		return err
	}
	return uc.production.Delete(ctx, entryID)
}
