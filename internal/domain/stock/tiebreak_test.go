package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/stock"
)

func bucket(id string, qty int64) entity.PartStock {
	return entity.PartStock{ID: id, Name: "Driver", CurrentStock: decimal.NewFromInt(qty)}
}

func TestDrainRebalance_DeductPicksHighest(t *testing.T) {
	buckets := []entity.PartStock{bucket("a", 30), bucket("b", 70)}

	chosen, ok := stock.DrainRebalance{}.Pick(buckets, stock.Deduct)
	require.True(t, ok)
	assert.Equal(t, "b", chosen.ID, "deduction must drain the fullest bucket")
}

func TestDrainRebalance_CreditPicksLowest(t *testing.T) {
	buckets := []entity.PartStock{bucket("a", 30), bucket("b", 70)}

	chosen, ok := stock.DrainRebalance{}.Pick(buckets, stock.Credit)
	require.True(t, ok)
	assert.Equal(t, "a", chosen.ID, "credit must refill the emptiest bucket")
}

// Direction-dependent record choice across a deduct/credit round trip:
// {30, 70}, deduct 10 from the 70-bucket, then credit 10 into the 30-bucket.
func TestDrainRebalance_RoundTripIsDirectionDependent(t *testing.T) {
	a := bucket("a", 30)
	b := bucket("b", 70)

	chosen, ok := stock.DrainRebalance{}.Pick([]entity.PartStock{a, b}, stock.Deduct)
	require.True(t, ok)
	require.Equal(t, "b", chosen.ID)
	b.CurrentStock = b.CurrentStock.Sub(decimal.NewFromInt(10)) // 60

	chosen, ok = stock.DrainRebalance{}.Pick([]entity.PartStock{a, b}, stock.Credit)
	require.True(t, ok)
	assert.Equal(t, "a", chosen.ID, "reversal must land on the then-lowest bucket")
	a.CurrentStock = a.CurrentStock.Add(decimal.NewFromInt(10))

	assert.True(t, a.CurrentStock.Equal(decimal.NewFromInt(40)))
	assert.True(t, b.CurrentStock.Equal(decimal.NewFromInt(60)))
}

func TestDrainRebalance_EqualStocksBreakTiesByID(t *testing.T) {
	buckets := []entity.PartStock{bucket("z", 50), bucket("a", 50), bucket("m", 50)}

	for _, dir := range []stock.Direction{stock.Deduct, stock.Credit} {
		chosen, ok := stock.DrainRebalance{}.Pick(buckets, dir)
		require.True(t, ok)
		assert.Equal(t, "a", chosen.ID)
	}
}

func TestDrainRebalance_EmptySlice(t *testing.T) {
	_, ok := stock.DrainRebalance{}.Pick(nil, stock.Deduct)
	assert.False(t, ok)
}
