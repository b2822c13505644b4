package stock

import "github.com/bafnalights-dot/stock/internal/domain/entity"

// Direction of a stock mutation against a named bucket.
type Direction int

const (
	// Deduct removes stock (production consumption, purchase reversal).
	Deduct Direction = iota
	// Credit adds stock (purchase, production reversal).
	Credit
)

// Policy decides which physical bucket a mutation lands on when several
// part-stock records share a display name.
type Policy interface {
	Pick(buckets []entity.PartStock, dir Direction) (entity.PartStock, bool)
}

// DrainRebalance deducts from the fullest bucket and credits the emptiest
// one. The asymmetry is contract: both directions of every mutation and its
// reversal go through this same object. Equal stock levels break ties by
// record id ascending so the choice is stable across calls.
type DrainRebalance struct{}

func (DrainRebalance) Pick(buckets []entity.PartStock, dir Direction) (entity.PartStock, bool) {
	if len(buckets) == 0 {
		return entity.PartStock{}, false
	}
	chosen := buckets[0]
	for _, b := range buckets[1:] {
		if better(b, chosen, dir) {
			chosen = b
		}
	}
	return chosen, true
}

func better(candidate, current entity.PartStock, dir Direction) bool {
	cmp := candidate.CurrentStock.Cmp(current.CurrentStock)
	if cmp == 0 {
		return candidate.ID < current.ID
	}
	if dir == Deduct {
		return cmp > 0
	}
	return cmp < 0
}
