package checkout

import (
	"context"

	"digitalstore/internal/domain"
	orderrepo "digitalstore/internal/repository/order"
)

// downloadURLPrefix derives a download link for orders that arrive without
// one.
const downloadURLPrefix = "https://example.com/download/"

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Place records an order. The order is marked paid unconditionally,
// whatever status the caller submitted: this surface has no payment-gateway
// linkage, so recording an order IS the purchase. Not safe for production
// payments; see README.
func (s *Service) Place(ctx context.Context, o domain.Order) (*domain.Order, error) {
	o.Status = domain.OrderStatusPaid
	if o.DownloadURL == "" {
		o.DownloadURL = downloadURLPrefix + o.ProductID
	}
	return s.repo.Create(ctx, o)
}
