package product

import (
	"context"

	"digitalstore/internal/domain"
)

// ListFilter narrows List results. Nil price bounds are unbounded; a zero
// Limit falls back to the store default.
type ListFilter struct {
	Category string
	Level    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int64
}

type Repository interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	EnsureIndexes(ctx context.Context) error
}
