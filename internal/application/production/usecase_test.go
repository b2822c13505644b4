package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafnalights-dot/stock/internal/application/ledger"
	"github.com/bafnalights-dot/stock/internal/application/production"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/infrastructure/memory"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

type fixture struct {
	store  *memory.Store
	engine *ledger.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	eng := ledger.NewEngine(store.Parts(), store.PartStocks(), store.Items(), nil)
	return &fixture{store: store, engine: eng}
}

func (f *fixture) assembler() *production.AssembleUseCase {
	return production.NewAssembleUseCase(f.engine, f.store.Items(), f.store.Recipes(), f.store.Production(), f.store.Transactions())
}

func (f *fixture) producer() *production.ProductionUseCase {
	return production.NewProductionUseCase(f.engine, f.store.Items(), f.store.Recipes(), f.store.Production())
}

func (f *fixture) seller() *production.SalesUseCase {
	return production.NewSalesUseCase(f.engine, f.store.Items(), f.store.Sales())
}

func (f *fixture) seedPart(t *testing.T, id, name string, qty, price int64) {
	t.Helper()
	require.NoError(t, f.store.Parts().Create(context.Background(), &entity.Part{
		ID: id, Name: name, Quantity: dec(qty), PurchasePrice: dec(price), CreatedAt: time.Now(),
	}))
}

func (f *fixture) seedBucket(t *testing.T, id, name string, qty int64) {
	t.Helper()
	require.NoError(t, f.store.PartStocks().Create(context.Background(), &entity.PartStock{
		ID: id, Name: name, CurrentStock: dec(qty), CreatedAt: time.Now(),
	}))
}

func (f *fixture) seedItem(t *testing.T, id, name string, qty int64, bom []entity.BOMLine) {
	t.Helper()
	require.NoError(t, f.store.Items().Create(context.Background(), &entity.Item{
		ID: id, Name: name, Quantity: dec(qty), BOM: bom, CreatedAt: time.Now(),
	}))
}

func (f *fixture) seedRecipe(t *testing.T, itemID string, lines []entity.RecipeLine) {
	t.Helper()
	require.NoError(t, f.store.Recipes().Upsert(context.Background(), &entity.Recipe{
		ID: "r-" + itemID, ItemID: itemID, Lines: lines, CreatedAt: time.Now(),
	}))
}

func TestAssemble_Success(t *testing.T) {
	f := newFixture(t)
	f.seedPart(t, "driver", "Driver", 20, 10)
	f.seedPart(t, "body", "Body", 10, 4)
	f.seedItem(t, "lamp", "Lamp", 0, nil)
	f.seedRecipe(t, "lamp", []entity.RecipeLine{
		{PartID: "driver", QuantityNeeded: dec(2)},
		{PartID: "body", QuantityNeeded: dec(1)},
	})

	res, err := f.assembler().Assemble(context.Background(), "lamp", dec(3))
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.True(t, res.NewQuantity.Equal(dec(3)))
	assert.True(t, res.Cost.Equal(dec(72)))
	require.Len(t, res.PartsUsed, 2)

	driver, _ := f.store.Parts().GetByID(context.Background(), "driver")
	assert.True(t, driver.Quantity.Equal(dec(14)))

	entries, err := f.store.Production().List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ProductionSourceAssembly, entries[0].Source)
	assert.True(t, entries[0].Cost.Equal(dec(72)))

	txs, err := f.store.Transactions().List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, entity.TransactionAssembly, txs[0].Type)
	assert.Equal(t, "Lamp", txs[0].Details["item_name"])
}

func TestAssemble_ShortfallLeavesStockUntouched(t *testing.T) {
	f := newFixture(t)
	f.seedPart(t, "driver", "Driver", 5, 10)
	f.seedPart(t, "body", "Body", 10, 4)
	f.seedItem(t, "lamp", "Lamp", 0, nil)
	f.seedRecipe(t, "lamp", []entity.RecipeLine{
		{PartID: "driver", QuantityNeeded: dec(2)},
		{PartID: "body", QuantityNeeded: dec(1)},
	})

	res, err := f.assembler().Assemble(context.Background(), "lamp", dec(3))
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Len(t, res.InsufficientParts, 1)
	assert.Equal(t, "Driver", res.InsufficientParts[0].PartName)

	// Nothing moved, nothing recorded.
	driver, _ := f.store.Parts().GetByID(context.Background(), "driver")
	body, _ := f.store.Parts().GetByID(context.Background(), "body")
	assert.True(t, driver.Quantity.Equal(dec(5)))
	assert.True(t, body.Quantity.Equal(dec(10)))
	entries, _ := f.store.Production().List(context.Background())
	assert.Empty(t, entries)
	txs, _ := f.store.Transactions().List(context.Background(), 10)
	assert.Empty(t, txs)
}

func TestAssemble_DuplicatePartLinesFailSoftly(t *testing.T) {
	f := newFixture(t)
	f.seedPart(t, "washer", "Washer", 4, 1)
	f.seedItem(t, "lamp", "Lamp", 0, nil)
	f.seedRecipe(t, "lamp", []entity.RecipeLine{
		{PartID: "washer", QuantityNeeded: dec(3)},
		{PartID: "washer", QuantityNeeded: dec(3)},
	})

	// The two lines sum to 6 against 4 in stock: admission must refuse
	// the build outright instead of deducting the first line and failing
	// on the second.
	res, err := f.assembler().Assemble(context.Background(), "lamp", dec(1))
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Len(t, res.InsufficientParts, 1)
	assert.True(t, res.InsufficientParts[0].Required.Equal(dec(6)))
	assert.True(t, res.InsufficientParts[0].Available.Equal(dec(4)))

	washer, _ := f.store.Parts().GetByID(context.Background(), "washer")
	assert.True(t, washer.Quantity.Equal(dec(4)))
	entries, _ := f.store.Production().List(context.Background())
	assert.Empty(t, entries)
}

func TestAssemble_EmptyRecipeRejected(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "lamp", "Lamp", 0, nil)
	f.seedRecipe(t, "lamp", nil)

	_, err := f.assembler().Assemble(context.Background(), "lamp", dec(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductionCreate_Success(t *testing.T) {
	f := newFixture(t)
	f.seedBucket(t, "b1", "Driver", 30)
	f.seedBucket(t, "b2", "Driver", 70)
	f.seedItem(t, "lamp", "Lamp", 2, []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(10)}})

	res, err := f.producer().Create(context.Background(), "lamp", dec(5), time.Time{})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.True(t, res.NewQuantity.Equal(dec(7)))

	// Deduction drained the fullest bucket.
	b2, _ := f.store.PartStocks().GetByID(context.Background(), "b2")
	assert.True(t, b2.CurrentStock.Equal(dec(20)))

	entries, _ := f.store.Production().List(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, entity.ProductionSourceProduction, entries[0].Source)
	require.Len(t, entries[0].PartsUsed, 1)
	assert.True(t, entries[0].PartsUsed[0].Quantity.Equal(dec(50)))
}

func TestProductionCreate_ShortfallAgainstSingleBucket(t *testing.T) {
	f := newFixture(t)
	f.seedBucket(t, "b1", "Driver", 30)
	f.seedBucket(t, "b2", "Driver", 70)
	f.seedItem(t, "lamp", "Lamp", 0, []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(80)}})

	res, err := f.producer().Create(context.Background(), "lamp", dec(1), time.Time{})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Len(t, res.InsufficientParts, 1)
	assert.True(t, res.InsufficientParts[0].Available.Equal(dec(70)))
}

func TestProductionUpdate_ShortfallRestoresOriginal(t *testing.T) {
	f := newFixture(t)
	f.seedBucket(t, "b1", "Driver", 100)
	f.seedItem(t, "lamp", "Lamp", 0, []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(10)}})

	uc := f.producer()
	res, err := uc.Create(context.Background(), "lamp", dec(5), time.Time{})
	require.NoError(t, err)
	require.True(t, res.Success)

	entries, _ := f.store.Production().List(context.Background())
	require.Len(t, entries, 1)

	// 20 units would need 200 against the 100 restored after reversal.
	res, err = uc.Update(context.Background(), entries[0].ID, dec(20), time.Time{})
	require.NoError(t, err)
	require.False(t, res.Success)

	// Stock and history are exactly as before the edit.
	b1, _ := f.store.PartStocks().GetByID(context.Background(), "b1")
	assert.True(t, b1.CurrentStock.Equal(dec(50)))
	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(5)))
	entries, _ = f.store.Production().List(context.Background())
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Quantity.Equal(dec(5)))
}

func TestProductionUpdate_Success(t *testing.T) {
	f := newFixture(t)
	f.seedBucket(t, "b1", "Driver", 100)
	f.seedItem(t, "lamp", "Lamp", 0, []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(10)}})

	uc := f.producer()
	_, err := uc.Create(context.Background(), "lamp", dec(5), time.Time{})
	require.NoError(t, err)
	entries, _ := f.store.Production().List(context.Background())

	res, err := uc.Update(context.Background(), entries[0].ID, dec(8), time.Time{})
	require.NoError(t, err)
	require.True(t, res.Success)

	b1, _ := f.store.PartStocks().GetByID(context.Background(), "b1")
	assert.True(t, b1.CurrentStock.Equal(dec(20)))
	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(8)))
	entries, _ = f.store.Production().List(context.Background())
	assert.True(t, entries[0].Quantity.Equal(dec(8)))
}

func TestProductionUpdate_AssemblyEntry(t *testing.T) {
	f := newFixture(t)
	f.seedPart(t, "driver", "Driver", 20, 10)
	f.seedItem(t, "lamp", "Lamp", 0, nil)
	f.seedRecipe(t, "lamp", []entity.RecipeLine{{PartID: "driver", QuantityNeeded: dec(2)}})

	res, err := f.assembler().Assemble(context.Background(), "lamp", dec(3))
	require.NoError(t, err)
	require.True(t, res.Success)
	entries, _ := f.store.Production().List(context.Background())
	require.Len(t, entries, 1)

	// 3 -> 8 consumes 16 drivers total.
	res, err = f.producer().Update(context.Background(), entries[0].ID, dec(8), time.Time{})
	require.NoError(t, err)
	require.True(t, res.Success)

	driver, _ := f.store.Parts().GetByID(context.Background(), "driver")
	assert.True(t, driver.Quantity.Equal(dec(4)))
	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(8)))
	entries, _ = f.store.Production().List(context.Background())
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Quantity.Equal(dec(8)))
	assert.True(t, entries[0].Cost.Equal(dec(160)))
}

func TestProductionDelete_RestoresExactUsage(t *testing.T) {
	f := newFixture(t)
	f.seedBucket(t, "b1", "Driver", 100)
	f.seedItem(t, "lamp", "Lamp", 0, []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(10)}})

	uc := f.producer()
	_, err := uc.Create(context.Background(), "lamp", dec(5), time.Time{})
	require.NoError(t, err)
	entries, _ := f.store.Production().List(context.Background())

	require.NoError(t, uc.Delete(context.Background(), entries[0].ID))

	b1, _ := f.store.PartStocks().GetByID(context.Background(), "b1")
	assert.True(t, b1.CurrentStock.Equal(dec(100)))
	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(0)))
	entries, _ = f.store.Production().List(context.Background())
	assert.Empty(t, entries)
}

func TestProductionDelete_FailsWhenOutputAlreadySold(t *testing.T) {
	f := newFixture(t)
	f.seedBucket(t, "b1", "Driver", 100)
	f.seedItem(t, "lamp", "Lamp", 0, []entity.BOMLine{{PartName: "Driver", QuantityNeeded: dec(10)}})

	uc := f.producer()
	_, err := uc.Create(context.Background(), "lamp", dec(5), time.Time{})
	require.NoError(t, err)
	entries, _ := f.store.Production().List(context.Background())

	// Sell 3 of the 5: reversing the full build would drive item stock negative.
	_, err = f.seller().Create(context.Background(), "lamp", dec(3), "Acme", time.Time{})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), entries[0].ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nothing was credited back.
	b1, _ := f.store.PartStocks().GetByID(context.Background(), "b1")
	assert.True(t, b1.CurrentStock.Equal(dec(50)))
	entries, _ = f.store.Production().List(context.Background())
	require.Len(t, entries, 1)
}

func TestSaleCreate_InsufficientIsHardError(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "lamp", "Lamp", 2, nil)

	_, err := f.seller().Create(context.Background(), "lamp", dec(3), "Acme", time.Time{})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuff *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuff)
	assert.Equal(t, "Lamp", insuff.Name)
	assert.True(t, insuff.Available.Equal(dec(2)))

	sales, _ := f.store.Sales().List(context.Background())
	assert.Empty(t, sales)
}

func TestSaleUpdate_NetDelta(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "lamp", "Lamp", 10, nil)
	uc := f.seller()

	entry, err := uc.Create(context.Background(), "lamp", dec(4), "Acme", time.Time{})
	require.NoError(t, err)

	// 4 -> 7 deducts 3 more.
	_, err = uc.Update(context.Background(), entry.ID, dec(7), "", time.Time{})
	require.NoError(t, err)
	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(3)))

	// 7 -> 2 restores 5.
	_, err = uc.Update(context.Background(), entry.ID, dec(2), "", time.Time{})
	require.NoError(t, err)
	item, _ = f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(8)))
}

func TestSaleUpdate_RaiseBeyondStockFails(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "lamp", "Lamp", 10, nil)
	uc := f.seller()

	entry, err := uc.Create(context.Background(), "lamp", dec(4), "Acme", time.Time{})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), entry.ID, dec(20), "", time.Time{})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Entry and stock unchanged.
	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(6)))
	got, _ := f.store.Sales().GetByID(context.Background(), entry.ID)
	assert.True(t, got.Quantity.Equal(dec(4)))
}

func TestSaleDelete_CreditsBack(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "lamp", "Lamp", 10, nil)
	uc := f.seller()

	entry, err := uc.Create(context.Background(), "lamp", dec(4), "Acme", time.Time{})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(context.Background(), entry.ID))

	item, _ := f.store.Items().GetByID(context.Background(), "lamp")
	assert.True(t, item.Quantity.Equal(dec(10)))
	sales, _ := f.store.Sales().List(context.Background())
	assert.Empty(t, sales)
}
