package mongodb

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

func byID(id string) bson.M { return bson.M{"_id": id} }

func sortBy(field string, dir int) *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: field, Value: dir}})
}

// supplierRepo

type supplierRepo struct{ c *mongo.Collection }

func (r *supplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.c.InsertOne(ctx, s)
	return mapErr(err)
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := r.c.FindOne(ctx, byID(id)).Decode(&s); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("name", 1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.Supplier
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// partRepo

type partRepo struct{ c *mongo.Collection }

func (r *partRepo) Create(ctx context.Context, p *entity.Part) error {
	_, err := r.c.InsertOne(ctx, p)
	return mapErr(err)
}

func (r *partRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	var p entity.Part
	if err := r.c.FindOne(ctx, byID(id)).Decode(&p); err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *partRepo) List(ctx context.Context) ([]*entity.Part, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("name", 1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.Part
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update writes metadata only; quantity moves through UpdateQuantity.
func (r *partRepo) Update(ctx context.Context, p *entity.Part) error {
	res, err := r.c.UpdateOne(ctx, byID(p.ID), bson.M{"$set": bson.M{
		"name":                p.Name,
		"category":            p.Category,
		"supplier_id":         p.SupplierID,
		"purchase_price":      p.PurchasePrice,
		"low_stock_threshold": p.LowStockThreshold,
	}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *partRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	res, err := r.c.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *partRepo) UpdatePurchaseInfo(ctx context.Context, id string, price decimal.Decimal, purchasedAt time.Time) error {
	res, err := r.c.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{
		"purchase_price":     price,
		"last_purchase_date": purchasedAt,
	}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *partRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

// itemRepo

type itemRepo struct{ c *mongo.Collection }

func (r *itemRepo) Create(ctx context.Context, it *entity.Item) error {
	_, err := r.c.InsertOne(ctx, it)
	return mapErr(err)
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	var it entity.Item
	if err := r.c.FindOne(ctx, byID(id)).Decode(&it); err != nil {
		return nil, mapErr(err)
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("name", 1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.Item
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itemRepo) UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	res, err := r.c.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *itemRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

// recipeRepo

type recipeRepo struct{ c *mongo.Collection }

func (r *recipeRepo) Upsert(ctx context.Context, recipe *entity.Recipe) error {
	_, err := r.c.UpdateOne(ctx,
		bson.M{"item_id": recipe.ItemID},
		bson.M{
			"$set": bson.M{
				"item_id": recipe.ItemID,
				"lines":   recipe.Lines,
			},
			"$setOnInsert": bson.M{
				"_id":        recipe.ID,
				"created_at": recipe.CreatedAt,
			},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return mapErr(err)
}

func (r *recipeRepo) GetByItemID(ctx context.Context, itemID string) (*entity.Recipe, error) {
	var rec entity.Recipe
	if err := r.c.FindOne(ctx, bson.M{"item_id": itemID}).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return &rec, nil
}

func (r *recipeRepo) List(ctx context.Context) ([]*entity.Recipe, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.Recipe
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// partStockRepo

type partStockRepo struct{ c *mongo.Collection }

func (r *partStockRepo) Create(ctx context.Context, s *entity.PartStock) error {
	_, err := r.c.InsertOne(ctx, s)
	return mapErr(err)
}

func (r *partStockRepo) GetByID(ctx context.Context, id string) (*entity.PartStock, error) {
	var s entity.PartStock
	if err := r.c.FindOne(ctx, byID(id)).Decode(&s); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *partStockRepo) ListByName(ctx context.Context, name string) ([]entity.PartStock, error) {
	cur, err := r.c.Find(ctx, bson.M{"name": name}, sortBy("_id", 1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []entity.PartStock
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *partStockRepo) List(ctx context.Context) ([]*entity.PartStock, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("name", 1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.PartStock
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *partStockRepo) UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error {
	res, err := r.c.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{
		"current_stock": quantity,
		"updated_at":    time.Now(),
	}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// adminRepo

type adminRepo struct{ c *mongo.Collection }

func (r *adminRepo) Create(ctx context.Context, a *entity.Admin) error {
	_, err := r.c.InsertOne(ctx, a)
	return mapErr(err)
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *adminRepo) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

// transactionRepo

type transactionRepo struct{ c *mongo.Collection }

func (r *transactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	_, err := r.c.InsertOne(ctx, t)
	return mapErr(err)
}

func (r *transactionRepo) List(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	opts := sortBy("date", -1)
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.Transaction
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
