package repository

import (
	"context"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// TransactionRepository is the append-only persistence port for the audit log.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	// List returns transactions newest first, up to limit.
	List(ctx context.Context, limit int) ([]*entity.Transaction, error)
}
