package httpserver

import (
	"net/http"
	"testing"

	"digitalstore/internal/domain"
	"digitalstore/internal/service/checkout"
)

func TestCheckout_ForcesPaid(t *testing.T) {
	repo := &stubOrderRepo{}
	router := newTestRouter(t, Deps{Checkout: checkout.New(repo)})

	body := `{"product_id": "prod-1", "email": "buyer@example.com", "amount": 49, "status": "pending"}`
	rec := doJSON(t, router, http.MethodPost, "/checkout", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Order domain.Order `json:"order"`
	}
	decodeBody(t, rec, &resp)
	if resp.Order.Status != domain.OrderStatusPaid {
		t.Fatalf("expected status paid, got %q", resp.Order.Status)
	}
	if repo.created.Status != domain.OrderStatusPaid {
		t.Fatalf("stored status %q, want paid", repo.created.Status)
	}
}

func TestCheckout_DefaultsDownloadURL(t *testing.T) {
	repo := &stubOrderRepo{}
	router := newTestRouter(t, Deps{Checkout: checkout.New(repo)})

	body := `{"product_id": "prod-9", "email": "buyer@example.com", "amount": 19}`
	rec := doJSON(t, router, http.MethodPost, "/checkout", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Order domain.Order `json:"order"`
	}
	decodeBody(t, rec, &resp)
	if resp.Order.DownloadURL != "https://example.com/download/prod-9" {
		t.Fatalf("unexpected download url %q", resp.Order.DownloadURL)
	}
}

func TestCheckout_MissingFields(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(t, router, http.MethodPost, "/checkout", `{"email": "buyer@example.com"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestCheckout_RejectsUnknownStatus(t *testing.T) {
	router := newTestRouter(t, Deps{})

	body := `{"product_id": "prod-1", "email": "buyer@example.com", "amount": 49, "status": "refunded"}`
	rec := doJSON(t, router, http.MethodPost, "/checkout", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
