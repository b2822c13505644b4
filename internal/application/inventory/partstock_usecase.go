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

// PartStockUseCase manages named stock buckets. Several buckets may share a
// name; the ledger engine decides which one a movement lands on.
type PartStockUseCase struct {
	stocks repository.PartStockRepository
}

// NewPartStockUseCase builds the use case.
func NewPartStockUseCase(stocks repository.PartStockRepository) *PartStockUseCase {
	return &PartStockUseCase{stocks: stocks}
}

// Create registers a bucket with its opening stock.
func (uc *PartStockUseCase) Create(ctx context.Context, req dto.CreatePartStockRequest) (*dto.PartStockResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.CurrentStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.PartStock{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		CurrentStock: req.CurrentStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.stocks.Create(ctx, s); err != nil {
		return nil, err
	}
	return toPartStockResponse(s), nil
}

// List returns all buckets.
func (uc *PartStockUseCase) List(ctx context.Context) ([]*dto.PartStockResponse, error) {
	stocks, err := uc.stocks.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartStockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toPartStockResponse(s))
	}
	return out, nil
}

func toPartStockResponse(s *entity.PartStock) *dto.PartStockResponse {
	return &dto.PartStockResponse{
		ID:           s.ID,
		Name:         s.Name,
		CurrentStock: s.CurrentStock,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
