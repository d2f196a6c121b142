package product

import (
	"context"
	"fmt"
	"io"
	"log"

	"digitalstore/internal/domain"
	"digitalstore/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collection = "product"

type mongoRepo struct {
	store  *store.Client
	logger *log.Logger
}

func NewMongo(st *store.Client, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{store: st, logger: logger}
}

func (r *mongoRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	id, err := r.store.Insert(ctx, collection, &p)
	if err != nil {
		r.logger.Printf("product repo: create slug=%s error=%v", p.Slug, err)
		return nil, err
	}
	p.ID = id
	r.logger.Printf("product repo: created slug=%s id=%s", p.Slug, id.Hex())
	return &p, nil
}

func (r *mongoRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Level != "" {
		filter["level"] = f.Level
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	var result []domain.Product
	if err := r.store.Find(ctx, collection, filter, f.Limit, &result); err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *mongoRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var result []domain.Product
	if err := r.store.Find(ctx, collection, bson.M{"slug": slug}, 1, &result); err != nil {
		r.logger.Printf("product repo: get slug=%s error=%v", slug, err)
		return nil, err
	}
	if len(result) == 0 {
		r.logger.Printf("product repo: get slug=%s not found", slug)
		return nil, domain.ErrNotFound
	}
	return &result[0], nil
}

// EnsureIndexes creates the slug lookup index. The index is not unique:
// duplicate slugs resolve to the store's first match.
func (r *mongoRepo) EnsureIndexes(ctx context.Context) error {
	coll, err := r.store.Collection(ctx, collection)
	if err != nil {
		return err
	}
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create slug index: %w", err)
	}
	return nil
}
