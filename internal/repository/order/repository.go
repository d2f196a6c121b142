package order

import (
	"context"

	"digitalstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}
