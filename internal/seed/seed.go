package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"digitalstore/internal/domain"
	productrepo "digitalstore/internal/repository/product"
	"digitalstore/internal/store"
)

// Apply inserts a small demo catalog for manual testing. It skips products
// whose slug already exists, so re-running it does not duplicate the catalog.
func Apply(ctx context.Context, st *store.Client, logger *log.Logger) error {
	repo := productrepo.NewMongo(st, logger)

	if err := repo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	products := []domain.Product{
		{
			Title:       "Prompt Engineering Crash Course",
			Slug:        "prompt-engineering-crash-course",
			Description: "A compact video course covering prompt patterns, evaluation and iteration workflows.",
			Price:       49,
			Category:    domain.CategoryCourse,
			Level:       domain.LevelBeginner,
			Rating:      4.8,
			Tags:        []string{"prompts", "course"},
		},
		{
			Title:       "Landing Page Template Pack",
			Slug:        "landing-page-template-pack",
			Description: "Ten production-ready landing page templates with copy guidelines and swap-in sections.",
			Price:       19,
			Category:    domain.CategoryTemplate,
			Rating:      4.8,
			Tags:        []string{"templates", "marketing"},
		},
	}

	for _, p := range products {
		_, err := repo.GetBySlug(ctx, p.Slug)
		if err == nil {
			logger.Printf("seed: slug=%s already present, skipping", p.Slug)
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check slug %s: %w", p.Slug, err)
		}
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}

	return nil
}
