package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
)

// productionRepo

type productionRepo struct{ c *mongo.Collection }

func (r *productionRepo) Create(ctx context.Context, e *entity.ProductionEntry) error {
	_, err := r.c.InsertOne(ctx, e)
	return mapErr(err)
}

func (r *productionRepo) GetByID(ctx context.Context, id string) (*entity.ProductionEntry, error) {
	var e entity.ProductionEntry
	if err := r.c.FindOne(ctx, byID(id)).Decode(&e); err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (r *productionRepo) List(ctx context.Context) ([]*entity.ProductionEntry, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("created_at", -1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.ProductionEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productionRepo) Update(ctx context.Context, e *entity.ProductionEntry) error {
	res, err := r.c.ReplaceOne(ctx, byID(e.ID), e)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, byID(id))
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// saleRepo

type saleRepo struct{ c *mongo.Collection }

func (r *saleRepo) Create(ctx context.Context, e *entity.SaleEntry) error {
	_, err := r.c.InsertOne(ctx, e)
	return mapErr(err)
}

func (r *saleRepo) GetByID(ctx context.Context, id string) (*entity.SaleEntry, error) {
	var e entity.SaleEntry
	if err := r.c.FindOne(ctx, byID(id)).Decode(&e); err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (r *saleRepo) List(ctx context.Context) ([]*entity.SaleEntry, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("created_at", -1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.SaleEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *saleRepo) Update(ctx context.Context, e *entity.SaleEntry) error {
	res, err := r.c.ReplaceOne(ctx, byID(e.ID), e)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *saleRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, byID(id))
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// purchaseRepo

type purchaseRepo struct{ c *mongo.Collection }

func (r *purchaseRepo) Create(ctx context.Context, e *entity.PurchaseEntry) error {
	_, err := r.c.InsertOne(ctx, e)
	return mapErr(err)
}

func (r *purchaseRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseEntry, error) {
	var e entity.PurchaseEntry
	if err := r.c.FindOne(ctx, byID(id)).Decode(&e); err != nil {
		return nil, mapErr(err)
	}
	return &e, nil
}

func (r *purchaseRepo) List(ctx context.Context) ([]*entity.PurchaseEntry, error) {
	cur, err := r.c.Find(ctx, bson.M{}, sortBy("created_at", -1))
	if err != nil {
		return nil, mapErr(err)
	}
	var out []*entity.PurchaseEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *purchaseRepo) Update(ctx context.Context, e *entity.PurchaseEntry) error {
	res, err := r.c.ReplaceOne(ctx, byID(e.ID), e)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *purchaseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, byID(id))
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
