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

// SupplierUseCase manages vendors.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(suppliers repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers}
}

// Create registers a supplier.
func (uc *SupplierUseCase) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		ContactInfo: req.ContactInfo,
		CreatedAt:   time.Now(),
	}
	if err := uc.suppliers.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// List returns all suppliers.
func (uc *SupplierUseCase) List(ctx context.Context) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		ContactInfo: s.ContactInfo,
		CreatedAt:   s.CreatedAt,
	}
}
