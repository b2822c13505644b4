package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/stock"
	"github.com/bafnalights-dot/stock/internal/infrastructure/memory"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newEngine(t *testing.T) (*ledger.Engine, *memory.Store) {
	t.Helper()
	store := memory.New()
	eng := ledger.NewEngine(store.Parts(), store.PartStocks(), store.Items(), nil)
	return eng, store
}

func seedPart(t *testing.T, store *memory.Store, id, name string, qty, price int64) {
	t.Helper()
	err := store.Parts().Create(context.Background(), &entity.Part{
		ID:            id,
		Name:          name,
		Quantity:      dec(qty),
		PurchasePrice: dec(price),
		CreatedAt:     time.Now(),
	})
	require.NoError(t, err)
}

func seedBucket(t *testing.T, store *memory.Store, id, name string, qty int64) {
	t.Helper()
	err := store.PartStocks().Create(context.Background(), &entity.PartStock{
		ID:           id,
		Name:         name,
		CurrentStock: dec(qty),
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
}

func TestAdjustPart_AdditionNeverFails(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "p1", "Driver", 5, 10)

	p, err := eng.AdjustPart(context.Background(), "p1", dec(20))
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(dec(25)))
}

func TestAdjustPart_RejectsNegativeResult(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "p1", "Driver", 5, 10)

	_, err := eng.AdjustPart(context.Background(), "p1", dec(-6))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuff *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, "Driver", insuff.Name)
	assert.True(t, insuff.Requested.Equal(dec(6)))
	assert.True(t, insuff.Available.Equal(dec(5)))

	// No mutation on rejection.
	p, err := store.Parts().GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(dec(5)))
}

func TestAdjustPart_UnknownPart(t *testing.T) {
	eng, _ := newEngine(t)

	_, err := eng.AdjustPart(context.Background(), "missing", dec(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjustBucketByName_DeductDrainsHighest(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "b1", "Driver", 30)
	seedBucket(t, store, "b2", "Driver", 70)

	b, err := eng.AdjustBucketByName(context.Background(), "Driver", dec(-10))
	require.NoError(t, err)
	assert.Equal(t, "b2", b.ID)
	assert.True(t, b.CurrentStock.Equal(dec(60)))

	untouched, err := store.PartStocks().GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, untouched.CurrentStock.Equal(dec(30)))
}

func TestAdjustBucketByName_CreditRefillsLowest(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "b1", "Driver", 30)
	seedBucket(t, store, "b2", "Driver", 60)

	b, err := eng.AdjustBucketByName(context.Background(), "Driver", dec(10))
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.True(t, b.CurrentStock.Equal(dec(40)))

	untouched, err := store.PartStocks().GetByID(context.Background(), "b2")
	require.NoError(t, err)
	assert.True(t, untouched.CurrentStock.Equal(dec(60)))
}

func TestAdjustBucketByName_ChosenBucketMustCoverDeduction(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "b1", "Driver", 30)
	seedBucket(t, store, "b2", "Driver", 70)

	// 80 exceeds the fullest bucket even though 30+70 would cover it:
	// deductions never split across buckets.
	_, err := eng.AdjustBucketByName(context.Background(), "Driver", dec(-80))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuff *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.True(t, insuff.Available.Equal(dec(70)))
}

func TestAdjustBucketByName_NoBucketDegradesToNotFound(t *testing.T) {
	eng, _ := newEngine(t)

	_, err := eng.AdjustBucketByName(context.Background(), "Ghost", dec(-1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckRecipe_LampScenario(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "driver", "Driver", 5, 10)
	seedPart(t, store, "body", "Body", 10, 4)
	lines := []entity.RecipeLine{
		{PartID: "driver", QuantityNeeded: dec(2)},
		{PartID: "body", QuantityNeeded: dec(1)},
	}

	shortfalls, err := eng.CheckRecipe(context.Background(), lines, dec(3))
	require.NoError(t, err)
	require.Len(t, shortfalls, 1)
	assert.Equal(t, "Driver", shortfalls[0].PartName)
	assert.True(t, shortfalls[0].Required.Equal(dec(6)))
	assert.True(t, shortfalls[0].Available.Equal(dec(5)))

	// The pre-pass mutates nothing.
	p, err := store.Parts().GetByID(context.Background(), "body")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(dec(10)))
}

func TestCheckRecipe_DuplicateLinesAggregated(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "washer", "Washer", 4, 1)
	lines := []entity.RecipeLine{
		{PartID: "washer", QuantityNeeded: dec(3)},
		{PartID: "washer", QuantityNeeded: dec(3)},
	}

	// Each line alone fits the 4 in stock; the summed requirement of 6
	// must still be rejected.
	shortfalls, err := eng.CheckRecipe(context.Background(), lines, dec(1))
	require.NoError(t, err)
	require.Len(t, shortfalls, 1)
	assert.Equal(t, "Washer", shortfalls[0].PartName)
	assert.True(t, shortfalls[0].Required.Equal(dec(6)))
	assert.True(t, shortfalls[0].Available.Equal(dec(4)))
}

func TestCheckBOM_DuplicateNamesAggregated(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "b1", "Driver", 100)
	bom := []entity.BOMLine{
		{PartName: "Driver", QuantityNeeded: dec(60)},
		{PartName: "Driver", QuantityNeeded: dec(60)},
	}

	shortfalls, err := eng.CheckBOM(context.Background(), bom, dec(1))
	require.NoError(t, err)
	require.Len(t, shortfalls, 1)
	assert.True(t, shortfalls[0].Required.Equal(dec(120)))
	assert.True(t, shortfalls[0].Available.Equal(dec(100)))
}

func TestCheckRecipe_MissingPartIsFatal(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "driver", "Driver", 50, 10)
	lines := []entity.RecipeLine{
		{PartID: "driver", QuantityNeeded: dec(1)},
		{PartID: "ghost", QuantityNeeded: dec(1)},
	}

	_, err := eng.CheckRecipe(context.Background(), lines, dec(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyRecipeDelta_ConservationAndCost(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "driver", "Driver", 20, 10)
	seedPart(t, store, "body", "Body", 10, 4)
	lines := []entity.RecipeLine{
		{PartID: "driver", QuantityNeeded: dec(2)},
		{PartID: "body", QuantityNeeded: dec(1)},
	}

	used, cost, err := eng.ApplyRecipeDelta(context.Background(), lines, dec(3), -1)
	require.NoError(t, err)
	require.Len(t, used, 2)
	assert.True(t, used[0].Quantity.Equal(dec(6)))
	assert.True(t, used[1].Quantity.Equal(dec(3)))
	// 6*10 + 3*4
	assert.True(t, cost.Equal(dec(72)))

	driver, _ := store.Parts().GetByID(context.Background(), "driver")
	body, _ := store.Parts().GetByID(context.Background(), "body")
	assert.True(t, driver.Quantity.Equal(dec(14)))
	assert.True(t, body.Quantity.Equal(dec(7)))
}

func TestApplyRecipeDelta_ReversalRoundTrip(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "driver", "Driver", 20, 10)
	seedPart(t, store, "body", "Body", 10, 4)
	lines := []entity.RecipeLine{
		{PartID: "driver", QuantityNeeded: dec(2)},
		{PartID: "body", QuantityNeeded: dec(1)},
	}

	_, _, err := eng.ApplyRecipeDelta(context.Background(), lines, dec(3), -1)
	require.NoError(t, err)
	_, _, err = eng.ApplyRecipeDelta(context.Background(), lines, dec(3), +1)
	require.NoError(t, err)

	driver, _ := store.Parts().GetByID(context.Background(), "driver")
	body, _ := store.Parts().GetByID(context.Background(), "body")
	assert.True(t, driver.Quantity.Equal(dec(20)), "reversal must restore the exact prior value")
	assert.True(t, body.Quantity.Equal(dec(10)))
}

func TestApplyBOMDelta_DirectionDependentBuckets(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "b1", "Driver", 30)
	seedBucket(t, store, "b2", "Driver", 70)
	bom := []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(10)}}

	_, err := eng.ApplyBOMDelta(context.Background(), bom, dec(1), -1)
	require.NoError(t, err)
	_, err = eng.ApplyBOMDelta(context.Background(), bom, dec(1), +1)
	require.NoError(t, err)

	// Deduct hit the 70-bucket, credit landed on the 30-bucket.
	b1, _ := store.PartStocks().GetByID(context.Background(), "b1")
	b2, _ := store.PartStocks().GetByID(context.Background(), "b2")
	assert.True(t, b1.CurrentStock.Equal(dec(40)))
	assert.True(t, b2.CurrentStock.Equal(dec(60)))
}

func TestCheckBOM_UsesDeductBucketAvailability(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "b1", "Driver", 30)
	seedBucket(t, store, "b2", "Driver", 70)
	bom := []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(80)}}

	shortfalls, err := eng.CheckBOM(context.Background(), bom, dec(1))
	require.NoError(t, err)
	require.Len(t, shortfalls, 1)
	// Availability is the fullest bucket, not the sum of buckets.
	assert.True(t, shortfalls[0].Available.Equal(dec(70)))
}

func TestLocked_SerializesCheckThenApply(t *testing.T) {
	eng, store := newEngine(t)
	seedPart(t, store, "driver", "Driver", 10, 1)
	lines := []entity.RecipeLine{{PartID: "driver", QuantityNeeded: dec(1)}}
	keys := []string{ledger.PartKey("driver")}

	// Two concurrent builds of 6 against stock 10: exactly one may pass.
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- eng.Locked(keys, func() error {
				shortfalls, err := eng.CheckRecipe(context.Background(), lines, dec(6))
				if err != nil {
					return err
				}
				if len(shortfalls) > 0 {
					return domain.ErrInsufficientStock
				}
				_, _, err = eng.ApplyRecipeDelta(context.Background(), lines, dec(6), -1)
				return err
			})
		}()
	}

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			failures++
		}
	}
	assert.Equal(t, 1, failures, "stale sufficiency checks must not both pass")

	p, _ := store.Parts().GetByID(context.Background(), "driver")
	assert.True(t, p.Quantity.Equal(dec(4)))
	assert.False(t, p.Quantity.IsNegative())
}

func TestResolveBucket_SingleBucketBothDirections(t *testing.T) {
	eng, store := newEngine(t)
	seedBucket(t, store, "only", "Driver", 12)

	for _, dir := range []stock.Direction{stock.Deduct, stock.Credit} {
		b, err := eng.ResolveBucket(context.Background(), "Driver", dir)
		require.NoError(t, err)
		assert.Equal(t, "only", b.ID)
	}
}
