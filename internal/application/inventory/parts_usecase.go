package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// PartsUseCase manages raw parts. Creation and restock credit stock and
// leave an audit transaction; plain updates carry metadata only.
type PartsUseCase struct {
	engine       *ledger.Engine
	parts        repository.PartRepository
	suppliers    repository.SupplierRepository
	transactions repository.TransactionRepository
}

// NewPartsUseCase builds the use case.
func NewPartsUseCase(
	engine *ledger.Engine,
	parts repository.PartRepository,
	suppliers repository.SupplierRepository,
	transactions repository.TransactionRepository,
) *PartsUseCase {
	return &PartsUseCase{engine: engine, parts: parts, suppliers: suppliers, transactions: transactions}
}

// Create registers a part with its opening stock and logs the opening
// purchase in the audit trail.
func (uc *PartsUseCase) Create(ctx context.Context, req dto.CreatePartRequest) (*dto.PartResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if req.SupplierID != "" {
		if _, err := uc.suppliers.GetByID(ctx, req.SupplierID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	part := &entity.Part{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(req.Name),
		Category:          req.Category,
		Quantity:          req.Quantity,
		SupplierID:        req.SupplierID,
		PurchasePrice:     req.PurchasePrice,
		LowStockThreshold: req.LowStockThreshold,
		LastPurchaseDate:  now,
		CreatedAt:         now,
	}
	if err := uc.parts.Create(ctx, part); err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		ID:   uuid.New().String(),
		Type: entity.TransactionPurchasePart,
		Date: now,
		Details: map[string]string{
			"part_name": part.Name,
			"quantity":  part.Quantity.String(),
		},
		Cost: part.Quantity.Mul(part.PurchasePrice),
	}
	if err := uc.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, part), nil
}

// List returns all parts enriched with supplier names and low-stock flags.
func (uc *PartsUseCase) List(ctx context.Context) ([]*dto.PartResponse, error) {
	parts, err := uc.parts.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := uc.supplierNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		resp := toPartResponse(p)
		resp.SupplierName = names[p.SupplierID]
		out = append(out, resp)
	}
	return out, nil
}

// Get returns one part.
func (uc *PartsUseCase) Get(ctx context.Context, id string) (*dto.PartResponse, error) {
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, part), nil
}

// Update edits part metadata. Quantity is deliberately untouched: stock
// moves only through restock, purchases and builds.
func (uc *PartsUseCase) Update(ctx context.Context, id string, req dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.parts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SupplierID != "" && req.SupplierID != part.SupplierID {
		if _, err := uc.suppliers.GetByID(ctx, req.SupplierID); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(req.Name) != "" {
		part.Name = strings.TrimSpace(req.Name)
	}
	if req.Category != "" {
		part.Category = req.Category
	}
	if req.SupplierID != "" {
		part.SupplierID = req.SupplierID
	}
	if req.PurchasePrice.IsPositive() {
		part.PurchasePrice = req.PurchasePrice
	}
	if !req.LowStockThreshold.IsNegative() {
		part.LowStockThreshold = req.LowStockThreshold
	}
	if err := uc.parts.Update(ctx, part); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, part), nil
}

// Restock credits quantity to a part under its lock, refreshes the purchase
// info and logs the purchase.
func (uc *PartsUseCase) Restock(ctx context.Context, id string, req dto.RestockPartRequest) (*dto.PartResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Part
	err := uc.engine.Locked([]string{ledger.PartKey(id)}, func() error {
		var err error
		updated, err = uc.engine.AdjustPart(ctx, id, req.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	price := req.PurchasePrice
	if !price.IsPositive() {
		price = updated.PurchasePrice
	}
	if err := uc.parts.UpdatePurchaseInfo(ctx, id, price, now); err != nil {
		return nil, err
	}
	updated.PurchasePrice = price
	updated.LastPurchaseDate = now
	tx := &entity.Transaction{
		ID:   uuid.New().String(),
		Type: entity.TransactionPurchasePart,
		Date: now,
		Details: map[string]string{
			"part_name": updated.Name,
			"quantity":  req.Quantity.String(),
		},
		Cost: req.Quantity.Mul(price),
	}
	if err := uc.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated), nil
}

func (uc *PartsUseCase) supplierNames(ctx context.Context) (map[string]string, error) {
	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}
	return names, nil
}

func (uc *PartsUseCase) toResponse(ctx context.Context, p *entity.Part) *dto.PartResponse {
	resp := toPartResponse(p)
	if p.SupplierID != "" {
		if s, err := uc.suppliers.GetByID(ctx, p.SupplierID); err == nil {
			resp.SupplierName = s.Name
		}
	}
	return resp
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	resp := &dto.PartResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Quantity:          p.Quantity,
		SupplierID:        p.SupplierID,
		PurchasePrice:     p.PurchasePrice,
		LowStockThreshold: p.LowStockThreshold,
		IsLowStock:        p.IsLowStock(),
		CreatedAt:         p.CreatedAt,
	}
	if !p.LastPurchaseDate.IsZero() {
		d := p.LastPurchaseDate
		resp.LastPurchaseDate = &d
	}
	return resp
}
