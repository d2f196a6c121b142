package order

import (
	"context"
	"io"
	"log"

	"digitalstore/internal/domain"
	"digitalstore/internal/store"
)

const collection = "order"

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

func (r *mongoRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	id, err := r.store.Insert(ctx, collection, &o)
	if err != nil {
		r.logger.Printf("order repo: create product_id=%s error=%v", o.ProductID, err)
		return nil, err
	}
	o.ID = id
	r.logger.Printf("order repo: created id=%s product_id=%s status=%s", id.Hex(), o.ProductID, o.Status)
	return &o, nil
}
