package repository

import "context"

// Maintenance is the administrative port for explicit store lifecycle
// operations. Reset clears every inventory collection; admin accounts
// survive it.
type Maintenance interface {
	Reset(ctx context.Context) error
}
