package catalog

import (
	"context"

	"digitalstore/internal/domain"
	productrepo "digitalstore/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}
