package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// SalesUseCase records item sales against item stock. Unlike builds,
// an insufficient sale is a hard error: there is no shortfall list to
// report, just the one item that cannot cover the request.
type SalesUseCase struct {
	engine *ledger.Engine
	items  repository.ItemRepository
	sales  repository.SaleRepository
}

// NewSalesUseCase builds the use case.
func NewSalesUseCase(engine *ledger.Engine, items repository.ItemRepository, sales repository.SaleRepository) *SalesUseCase {
	return &SalesUseCase{engine: engine, items: items, sales: sales}
}

// List returns all sale entries, newest first.
func (uc *SalesUseCase) List(ctx context.Context) ([]*entity.SaleEntry, error) {
	return uc.sales.List(ctx)
}

// Create deducts quantity from the item's stock and records the sale.
func (uc *SalesUseCase) Create(ctx context.Context, itemID string, quantity decimal.Decimal, party string, date time.Time) (*entity.SaleEntry, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	err := uc.engine.Locked([]string{ledger.ItemKey(itemID)}, func() error {
		_, err := uc.engine.AdjustItem(ctx, itemID, quantity.Neg())
		return err
	})
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	entry := &entity.SaleEntry{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Quantity:  quantity,
		Party:     party,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := uc.sales.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update edits a sale's quantity. The stock adjustment is the net delta
// between old and new quantity, applied under the item lock; raising the
// quantity beyond what stock covers fails and changes nothing.
func (uc *SalesUseCase) Update(ctx context.Context, entryID string, quantity decimal.Decimal, party string, date time.Time) (*entity.SaleEntry, error) {
	if !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.sales.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	delta := entry.Quantity.Sub(quantity) // positive restores stock, negative deducts more
	err = uc.engine.Locked([]string{ledger.ItemKey(entry.ItemID)}, func() error {
		_, err := uc.engine.AdjustItem(ctx, entry.ItemID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	entry.Quantity = quantity
	if party != "" {
		entry.Party = party
	}
	if !date.IsZero() {
		entry.Date = date
	}
	if err := uc.sales.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete reverses a sale, crediting the sold quantity back to the item,
// and removes the entry. The credit cannot fail.
func (uc *SalesUseCase) Delete(ctx context.Context, entryID string) error {
	entry, err := uc.sales.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	err = uc.engine.Locked([]string{ledger.ItemKey(entry.ItemID)}, func() error {
		_, err := uc.engine.AdjustItem(ctx, entry.ItemID, entry.Quantity)
		return err
	})
	if err != nil {
		return err
	}
	return uc.sales.Delete(ctx, entryID)
}
