package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError carries the numbers behind a rejected deduction so
// callers can report requested vs. available. Matches ErrInsufficientStock
// through errors.Is.
type InsufficientStockError struct {
	Name      string // part or item display name
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %s, available %s",
		e.Name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
