package memory

import (
	"context"
	"sync"

	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// Store is a mutex-guarded in-memory entity store. It backs unit tests and
// local development; the MongoDB store is the production implementation of
// the same repository ports.
type Store struct {
	mu sync.RWMutex

	suppliers    map[string]*entity.Supplier
	parts        map[string]*entity.Part
	items        map[string]*entity.Item
	recipes      map[string]*entity.Recipe // keyed by item id
	partStocks   map[string]*entity.PartStock
	production   map[string]*entity.ProductionEntry
	sales        map[string]*entity.SaleEntry
	purchases    map[string]*entity.PurchaseEntry
	transactions []*entity.Transaction
	admins       map[string]*entity.Admin
}

// New builds an empty store.
func New() *Store {
	s := &Store{admins: make(map[string]*entity.Admin)}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.suppliers = make(map[string]*entity.Supplier)
	s.parts = make(map[string]*entity.Part)
	s.items = make(map[string]*entity.Item)
	s.recipes = make(map[string]*entity.Recipe)
	s.partStocks = make(map[string]*entity.PartStock)
	s.production = make(map[string]*entity.ProductionEntry)
	s.sales = make(map[string]*entity.SaleEntry)
	s.purchases = make(map[string]*entity.PurchaseEntry)
	s.transactions = nil
}

// Reset clears every inventory collection. Admin accounts survive.
func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}

var _ repository.Maintenance = (*Store)(nil)

// Repository accessors. Each adapter shares the store's mutex and maps.

func (s *Store) Suppliers() repository.SupplierRepository     { return &supplierRepo{s} }
func (s *Store) Parts() repository.PartRepository             { return &partRepo{s} }
func (s *Store) Items() repository.ItemRepository             { return &itemRepo{s} }
func (s *Store) Recipes() repository.RecipeRepository         { return &recipeRepo{s} }
func (s *Store) PartStocks() repository.PartStockRepository   { return &partStockRepo{s} }
func (s *Store) Production() repository.ProductionRepository  { return &productionRepo{s} }
func (s *Store) Sales() repository.SaleRepository             { return &saleRepo{s} }
func (s *Store) Purchases() repository.PurchaseRepository     { return &purchaseRepo{s} }
func (s *Store) Transactions() repository.TransactionRepository { return &transactionRepo{s} }
func (s *Store) Admins() repository.AdminRepository           { return &adminRepo{s} }
