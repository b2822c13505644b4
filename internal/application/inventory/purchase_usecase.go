package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// PurchaseUseCase records part-stock purchases. A purchase credits one
// bucket by name; editing or deleting a purchase reverses the recorded
// movement, and a reversal that stock no longer covers fails hard.
type PurchaseUseCase struct {
	engine       *ledger.Engine
	stocks       repository.PartStockRepository
	purchases    repository.PurchaseRepository
	transactions repository.TransactionRepository
}

// NewPurchaseUseCase builds the use case.
func NewPurchaseUseCase(
	engine *ledger.Engine,
	stocks repository.PartStockRepository,
	purchases repository.PurchaseRepository,
	transactions repository.TransactionRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{engine: engine, stocks: stocks, purchases: purchases, transactions: transactions}
}

// List returns all purchase entries, newest first.
func (uc *PurchaseUseCase) List(ctx context.Context) ([]*entity.PurchaseEntry, error) {
	return uc.purchases.List(ctx)
}

// Create credits the purchased quantity to a bucket with the part's name.
// When no bucket carries the name yet, one is created to receive the stock.
func (uc *PurchaseUseCase) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*entity.PurchaseEntry, error) {
	name := strings.TrimSpace(req.PartName)
	if name == "" || !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	err := uc.engine.Locked([]string{ledger.StockKey(name)}, func() error {
		return uc.credit(ctx, name, req.Quantity)
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	entry := &entity.PurchaseEntry{
		ID:        uuid.New().String(),
		PartName:  name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Date:      date,
		CreatedAt: now,
	}
	if err := uc.purchases.Create(ctx, entry); err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		ID:   uuid.New().String(),
		Type: entity.TransactionPurchasePart,
		Date: date,
		Details: map[string]string{
			"part_name": name,
			"quantity":  req.Quantity.String(),
		},
		Cost: req.Quantity.Mul(req.UnitPrice),
	}
	if err := uc.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update edits a purchase by reversing the old credit and applying the new
// one. The old deduction is the step that can fail: if the credited stock
// has since been consumed the edit is rejected with nothing changed.
func (uc *PurchaseUseCase) Update(ctx context.Context, entryID string, req dto.UpdatePurchaseRequest) (*entity.PurchaseEntry, error) {
	name := strings.TrimSpace(req.PartName)
	if name == "" || !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.purchases.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	keys := []string{ledger.StockKey(entry.PartName)}
	if name != entry.PartName {
		keys = append(keys, ledger.StockKey(name))
	}
	err = uc.engine.Locked(keys, func() error {
		if _, err := uc.engine.AdjustBucketByName(ctx, entry.PartName, entry.Quantity.Neg()); err != nil {
			return err
		}
		return uc.credit(ctx, name, req.Quantity)
	})
	if err != nil {
		return nil, err
	}
	entry.PartName = name
	entry.Quantity = req.Quantity
	entry.UnitPrice = req.UnitPrice
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if err := uc.purchases.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Delete reverses a purchase, deducting the recorded quantity, and removes
// the entry. Fails hard when the stock has since been consumed.
func (uc *PurchaseUseCase) Delete(ctx context.Context, entryID string) error {
	entry, err := uc.purchases.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	err = uc.engine.Locked([]string{ledger.StockKey(entry.PartName)}, func() error {
		_, err := uc.engine.AdjustBucketByName(ctx, entry.PartName, entry.Quantity.Neg())
		return err
	})
	if err != nil {
		return err
	}
	return uc.purchases.Delete(ctx, entryID)
}

// credit routes quantity into an existing bucket, creating one when the
// name is new. Must run inside the caller's lock scope.
func (uc *PurchaseUseCase) credit(ctx context.Context, name string, qty decimal.Decimal) error {
	_, err := uc.engine.AdjustBucketByName(ctx, name, qty)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	now := time.Now()
	return uc.stocks.Create(ctx, &entity.PartStock{
		ID:           uuid.New().String(),
		Name:         name,
		CurrentStock: qty,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
