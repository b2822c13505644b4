package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
	"github.com/bafnalights-dot/stock/internal/domain/stock"
)

// Lock key builders. Every mutating operation locks the keys of the
// entities it will touch before checking or applying anything.
func PartKey(id string) string    { return "part:" + id }
func ItemKey(id string) string    { return "item:" + id }
func StockKey(name string) string { return "stock:" + name }

// PartUsage is one part consumption produced by an apply pass.
type PartUsage struct {
	PartID   string
	PartName string
	Quantity decimal.Decimal
}

// Engine owns all stock-quantity arithmetic. Part.Quantity,
// Item.Quantity and PartStock.CurrentStock are written here and nowhere
// else. Methods that mutate assume the caller already holds the relevant
// keys via Locked.
type Engine struct {
	parts  repository.PartRepository
	stocks repository.PartStockRepository
	items  repository.ItemRepository
	policy stock.Policy
	locks  *KeyLock
}

// NewEngine builds the engine. A nil policy defaults to DrainRebalance.
func NewEngine(
	parts repository.PartRepository,
	stocks repository.PartStockRepository,
	items repository.ItemRepository,
	policy stock.Policy,
) *Engine {
	if policy == nil {
		policy = stock.DrainRebalance{}
	}
	return &Engine{
		parts:  parts,
		stocks: stocks,
		items:  items,
		policy: policy,
		locks:  NewKeyLock(),
	}
}

// Locked runs fn holding the locks for keys. Admission and application of
// one operation must share a single Locked scope.
func (e *Engine) Locked(keys []string, fn func() error) error {
	release := e.locks.Acquire(keys...)
	defer release()
	return fn()
}

// AdjustPart applies a signed delta to a part's quantity and returns the
// updated part. A delta that would drive the quantity negative fails with
// InsufficientStockError and leaves the part untouched; additions never fail.
func (e *Engine) AdjustPart(ctx context.Context, partID string, delta decimal.Decimal) (*entity.Part, error) {
	p, err := e.parts.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	newQty := p.Quantity.Add(delta)
	if newQty.IsNegative() {
		return nil, &domain.InsufficientStockError{
			Name:      p.Name,
			Requested: delta.Neg(),
			Available: p.Quantity,
		}
	}
	if err := e.parts.UpdateQuantity(ctx, p.ID, newQty); err != nil {
		return nil, err
	}
	p.Quantity = newQty
	return p, nil
}

// AdjustItem applies a signed delta to an item's stock with the same
// non-negative rule as AdjustPart.
func (e *Engine) AdjustItem(ctx context.Context, itemID string, delta decimal.Decimal) (*entity.Item, error) {
	it, err := e.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	newQty := it.Quantity.Add(delta)
	if newQty.IsNegative() {
		return nil, &domain.InsufficientStockError{
			Name:      it.Name,
			Requested: delta.Neg(),
			Available: it.Quantity,
		}
	}
	if err := e.items.UpdateQuantity(ctx, it.ID, newQty); err != nil {
		return nil, err
	}
	it.Quantity = newQty
	return it, nil
}

// ResolveBucket selects exactly one part-stock bucket for a name through
// the tie-break policy: the fullest bucket when deducting, the emptiest
// when crediting. No bucket with the name resolves to ErrNotFound.
func (e *Engine) ResolveBucket(ctx context.Context, name string, dir stock.Direction) (*entity.PartStock, error) {
	buckets, err := e.stocks.ListByName(ctx, name)
	if err != nil {
		return nil, err
	}
	chosen, ok := e.policy.Pick(buckets, dir)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &chosen, nil
}

// AdjustBucketByName resolves the bucket for the delta's direction and
// applies it. A deduction must be covered by the single chosen bucket.
func (e *Engine) AdjustBucketByName(ctx context.Context, name string, delta decimal.Decimal) (*entity.PartStock, error) {
	dir := stock.Credit
	if delta.IsNegative() {
		dir = stock.Deduct
	}
	b, err := e.ResolveBucket(ctx, name, dir)
	if err != nil {
		return nil, err
	}
	newQty := b.CurrentStock.Add(delta)
	if newQty.IsNegative() {
		return nil, &domain.InsufficientStockError{
			Name:      name,
			Requested: delta.Neg(),
			Available: b.CurrentStock,
		}
	}
	if err := e.stocks.UpdateStock(ctx, b.ID, newQty); err != nil {
		return nil, err
	}
	b.CurrentStock = newQty
	return b, nil
}

// CheckRecipe runs the sufficiency pre-pass over every recipe line before
// any mutation: required = per-unit * qty against the referenced part's
// stock. Lines referencing the same part are summed first, so admission
// compares the total requirement against availability. A missing part is
// fatal; shortfalls are collected in full.
func (e *Engine) CheckRecipe(ctx context.Context, lines []entity.RecipeLine, qty decimal.Decimal) ([]stock.Shortfall, error) {
	perUnit := make(map[string]decimal.Decimal, len(lines))
	order := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := perUnit[l.PartID]; !ok {
			order = append(order, l.PartID)
		}
		perUnit[l.PartID] = perUnit[l.PartID].Add(l.QuantityNeeded)
	}
	checked := make([]stock.Line, 0, len(order))
	for _, id := range order {
		p, err := e.parts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		checked = append(checked, stock.Line{
			PartID:    p.ID,
			PartName:  p.Name,
			PerUnit:   perUnit[id],
			Available: p.Quantity,
		})
	}
	return stock.Check(checked, qty), nil
}

// CheckBOM is the by-name counterpart of CheckRecipe. Requirements are
// summed per name and availability is measured against the bucket the
// deduct policy would choose, so the check and the later apply cannot
// disagree on which stock they see.
func (e *Engine) CheckBOM(ctx context.Context, bom []entity.BOMLine, qty decimal.Decimal) ([]stock.Shortfall, error) {
	perUnit := make(map[string]decimal.Decimal, len(bom))
	order := make([]string, 0, len(bom))
	for _, l := range bom {
		if _, ok := perUnit[l.PartName]; !ok {
			order = append(order, l.PartName)
		}
		perUnit[l.PartName] = perUnit[l.PartName].Add(l.QuantityNeeded)
	}
	checked := make([]stock.Line, 0, len(order))
	for _, name := range order {
		b, err := e.ResolveBucket(ctx, name, stock.Deduct)
		if err != nil {
			return nil, err
		}
		checked = append(checked, stock.Line{
			PartName:  name,
			PerUnit:   perUnit[name],
			Available: b.CurrentStock,
		})
	}
	return stock.Check(checked, qty), nil
}

// ApplyRecipeDelta adjusts every recipe line by sign * per-unit * qty.
// sign -1 consumes for a build, +1 restores on reversal. Returns the
// per-part quantities moved and the total cost at purchase prices.
func (e *Engine) ApplyRecipeDelta(ctx context.Context, lines []entity.RecipeLine, qty decimal.Decimal, sign int) ([]PartUsage, decimal.Decimal, error) {
	signDec := decimal.NewFromInt(int64(sign))
	used := make([]PartUsage, 0, len(lines))
	cost := decimal.Zero
	for _, l := range lines {
		moved := l.QuantityNeeded.Mul(qty)
		p, err := e.AdjustPart(ctx, l.PartID, moved.Mul(signDec))
		if err != nil {
			return nil, decimal.Zero, err
		}
		used = append(used, PartUsage{PartID: p.ID, PartName: p.Name, Quantity: moved})
		cost = cost.Add(moved.Mul(p.PurchasePrice))
	}
	return used, cost, nil
}

// ApplyBOMDelta is the by-name counterpart of ApplyRecipeDelta over
// part-stock buckets.
func (e *Engine) ApplyBOMDelta(ctx context.Context, bom []entity.BOMLine, qty decimal.Decimal, sign int) ([]PartUsage, error) {
	signDec := decimal.NewFromInt(int64(sign))
	used := make([]PartUsage, 0, len(bom))
	for _, l := range bom {
		moved := l.QuantityNeeded.Mul(qty)
		if _, err := e.AdjustBucketByName(ctx, l.PartName, moved.Mul(signDec)); err != nil {
			return nil, err
		}
		used = append(used, PartUsage{PartName: l.PartName, Quantity: moved})
	}
	return used, nil
}
