package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
)

// Collection names.
const (
	colSuppliers    = "suppliers"
	colParts        = "parts"
	colItems        = "items"
	colRecipes      = "recipes"
	colPartStocks   = "part_stocks"
	colProduction   = "production"
	colSales        = "sales"
	colPurchases    = "purchases"
	colTransactions = "transactions"
	colAdmins       = "admins"
)

var _ repository.Maintenance = (*Store)(nil)

// Store bundles the per-collection repositories over one database handle.
type Store struct {
	db *mongo.Database
}

// NewStore wraps a database.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		colAdmins: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colRecipes: {
			{Keys: bson.D{{Key: "item_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colPartStocks: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		colTransactions: {
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
	}
	for col, models := range indexes {
		if _, err := s.db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongodb: create %s indexes: %w", col, err)
		}
	}
	return nil
}

// Reset drops every inventory collection. Admin accounts survive.
func (s *Store) Reset(ctx context.Context) error {
	for _, col := range []string{
		colSuppliers, colParts, colItems, colRecipes, colPartStocks,
		colProduction, colSales, colPurchases, colTransactions,
	} {
		if err := s.db.Collection(col).Drop(ctx); err != nil {
			return fmt.Errorf("mongodb: drop %s: %w", col, err)
		}
	}
	return nil
}

// Repository accessors.

func (s *Store) Suppliers() repository.SupplierRepository   { return &supplierRepo{s.col(colSuppliers)} }
func (s *Store) Parts() repository.PartRepository           { return &partRepo{s.col(colParts)} }
func (s *Store) Items() repository.ItemRepository           { return &itemRepo{s.col(colItems)} }
func (s *Store) Recipes() repository.RecipeRepository       { return &recipeRepo{s.col(colRecipes)} }
func (s *Store) PartStocks() repository.PartStockRepository { return &partStockRepo{s.col(colPartStocks)} }
func (s *Store) Production() repository.ProductionRepository {
	return &productionRepo{s.col(colProduction)}
}
func (s *Store) Sales() repository.SaleRepository         { return &saleRepo{s.col(colSales)} }
func (s *Store) Purchases() repository.PurchaseRepository { return &purchaseRepo{s.col(colPurchases)} }
func (s *Store) Transactions() repository.TransactionRepository {
	return &transactionRepo{s.col(colTransactions)}
}
func (s *Store) Admins() repository.AdminRepository { return &adminRepo{s.col(colAdmins)} }

func (s *Store) col(name string) *mongo.Collection { return s.db.Collection(name) }

// mapErr translates driver errors into domain sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return err
}
