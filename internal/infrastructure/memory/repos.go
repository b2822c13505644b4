package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// All adapters return copies so callers never alias store-internal state.

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sup
	r.s.suppliers[sup.ID] = &cp
	return nil
}

func (r *supplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *sup
	return &cp, nil
}

func (r *supplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sup := range r.s.suppliers {
		cp := *sup
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type partRepo struct{ s *Store }

func (r *partRepo) Create(_ context.Context, p *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.parts[p.ID] = &cp
	return nil
}

func (r *partRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.parts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *partRepo) List(_ context.Context) ([]*entity.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Part, 0, len(r.s.parts))
	for _, p := range r.s.parts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *partRepo) Update(_ context.Context, p *entity.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.parts[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Quantity = existing.Quantity // quantity moves only through the engine
	r.s.parts[p.ID] = &cp
	return nil
}

func (r *partRepo) UpdateQuantity(_ context.Context, id string, quantity decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *partRepo) UpdatePurchaseInfo(_ context.Context, id string, price decimal.Decimal, purchasedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.PurchasePrice = price
	p.LastPurchaseDate = purchasedAt
	return nil
}

func (r *partRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.parts)), nil
}

type itemRepo struct{ s *Store }

func (r *itemRepo) Create(_ context.Context, it *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *it
	cp.BOM = append([]entity.BOMLine(nil), it.BOM...)
	r.s.items[it.ID] = &cp
	return nil
}

func (r *itemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *it
	cp.BOM = append([]entity.BOMLine(nil), it.BOM...)
	return &cp, nil
}

func (r *itemRepo) List(_ context.Context) ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		cp.BOM = append([]entity.BOMLine(nil), it.BOM...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *itemRepo) UpdateQuantity(_ context.Context, id string, quantity decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *itemRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.items)), nil
}

type recipeRepo struct{ s *Store }

func (r *recipeRepo) Upsert(_ context.Context, rec *entity.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *rec
	cp.Lines = append([]entity.RecipeLine(nil), rec.Lines...)
	if existing, ok := r.s.recipes[rec.ItemID]; ok {
		cp.ID = existing.ID
		rec.ID = existing.ID
	}
	r.s.recipes[rec.ItemID] = &cp
	return nil
}

func (r *recipeRepo) GetByItemID(_ context.Context, itemID string) (*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.recipes[itemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *rec
	cp.Lines = append([]entity.RecipeLine(nil), rec.Lines...)
	return &cp, nil
}

func (r *recipeRepo) List(_ context.Context) ([]*entity.Recipe, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Recipe, 0, len(r.s.recipes))
	for _, rec := range r.s.recipes {
		cp := *rec
		cp.Lines = append([]entity.RecipeLine(nil), rec.Lines...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

type partStockRepo struct{ s *Store }

func (r *partStockRepo) Create(_ context.Context, ps *entity.PartStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *ps
	r.s.partStocks[ps.ID] = &cp
	return nil
}

func (r *partStockRepo) GetByID(_ context.Context, id string) (*entity.PartStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	ps, ok := r.s.partStocks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ps
	return &cp, nil
}

func (r *partStockRepo) ListByName(_ context.Context, name string) ([]entity.PartStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entity.PartStock
	for _, ps := range r.s.partStocks {
		if ps.Name == name {
			out = append(out, *ps)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *partStockRepo) List(_ context.Context) ([]*entity.PartStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.PartStock, 0, len(r.s.partStocks))
	for _, ps := range r.s.partStocks {
		cp := *ps
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *partStockRepo) UpdateStock(_ context.Context, id string, quantity decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ps, ok := r.s.partStocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	ps.CurrentStock = quantity
	ps.UpdatedAt = time.Now()
	return nil
}

type productionRepo struct{ s *Store }

func (r *productionRepo) Create(_ context.Context, e *entity.ProductionEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	cp.PartsUsed = append([]entity.UsageLine(nil), e.PartsUsed...)
	r.s.production[e.ID] = &cp
	return nil
}

func (r *productionRepo) GetByID(_ context.Context, id string) (*entity.ProductionEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.production[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	cp.PartsUsed = append([]entity.UsageLine(nil), e.PartsUsed...)
	return &cp, nil
}

func (r *productionRepo) List(_ context.Context) ([]*entity.ProductionEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.ProductionEntry, 0, len(r.s.production))
	for _, e := range r.s.production {
		cp := *e
		cp.PartsUsed = append([]entity.UsageLine(nil), e.PartsUsed...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *productionRepo) Update(_ context.Context, e *entity.ProductionEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.production[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	cp.PartsUsed = append([]entity.UsageLine(nil), e.PartsUsed...)
	r.s.production[e.ID] = &cp
	return nil
}

func (r *productionRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.production[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.production, id)
	return nil
}

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(_ context.Context, e *entity.SaleEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.sales[e.ID] = &cp
	return nil
}

func (r *saleRepo) GetByID(_ context.Context, id string) (*entity.SaleEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *saleRepo) List(_ context.Context) ([]*entity.SaleEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.SaleEntry, 0, len(r.s.sales))
	for _, e := range r.s.sales {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *saleRepo) Update(_ context.Context, e *entity.SaleEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.s.sales[e.ID] = &cp
	return nil
}

func (r *saleRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	return nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(_ context.Context, e *entity.PurchaseEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.purchases[e.ID] = &cp
	return nil
}

func (r *purchaseRepo) GetByID(_ context.Context, id string) (*entity.PurchaseEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.purchases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *purchaseRepo) List(_ context.Context) ([]*entity.PurchaseEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.PurchaseEntry, 0, len(r.s.purchases))
	for _, e := range r.s.purchases {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *purchaseRepo) Update(_ context.Context, e *entity.PurchaseEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.s.purchases[e.ID] = &cp
	return nil
}

func (r *purchaseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.purchases, id)
	return nil
}

type transactionRepo struct{ s *Store }

func (r *transactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *t
	r.s.transactions = append(r.s.transactions, &cp)
	return nil
}

func (r *transactionRepo) List(_ context.Context, limit int) ([]*entity.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Transaction, 0, len(r.s.transactions))
	for _, t := range r.s.transactions {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type adminRepo struct{ s *Store }

func (r *adminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.admins {
		if existing.Email == a.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *a
	r.s.admins[a.ID] = &cp
	return nil
}

func (r *adminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *adminRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.admins)), nil
}
