package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"digitalstore/internal/domain"
)

func TestSubscribe_Success(t *testing.T) {
	var gotPath, gotAuth string
	var got subscribePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"sub_1"}}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "bh_key", PublicationID: "pub_1", BaseURL: srv.URL}, nil)

	if err := c.Subscribe(context.Background(), "reader@example.com", "footer"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if gotPath != "/publications/pub_1/subscriptions" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer bh_key" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if got.Email != "reader@example.com" || got.UTMSource != "footer" || !got.SendWelcomeEmail {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestSubscribe_DefaultSource(t *testing.T) {
	var got subscribePayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", PublicationID: "p", BaseURL: srv.URL}, nil)
	if err := c.Subscribe(context.Background(), "reader@example.com", ""); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if got.UTMSource != "website" {
		t.Fatalf("expected default source website, got %q", got.UTMSource)
	}
}

func TestSubscribe_NotConfigured(t *testing.T) {
	cases := []Config{
		{},
		{APIKey: "k"},
		{PublicationID: "p"},
	}
	for _, cfg := range cases {
		c := New(cfg, nil)
		err := c.Subscribe(context.Background(), "reader@example.com", "")
		if !errors.Is(err, domain.ErrNotConfigured) {
			t.Fatalf("config %+v: expected ErrNotConfigured, got %v", cfg, err)
		}
	}
}

func TestSubscribe_ForwardsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errors":[{"message":"already subscribed"}]}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", PublicationID: "p", BaseURL: srv.URL}, nil)

	err := c.Subscribe(context.Background(), "reader@example.com", "")
	var perr *domain.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", perr.StatusCode)
	}
	if string(perr.Detail) != `{"errors":[{"message":"already subscribed"}]}` {
		t.Fatalf("provider body not forwarded verbatim: %s", perr.Detail)
	}
}

func TestSubscribe_WrapsPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", PublicationID: "p", BaseURL: srv.URL}, nil)

	err := c.Subscribe(context.Background(), "reader@example.com", "")
	var perr *domain.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	var detail map[string]string
	if err := json.Unmarshal(perr.Detail, &detail); err != nil {
		t.Fatalf("detail not JSON: %v", err)
	}
	if detail["message"] != "upstream exploded" {
		t.Fatalf("unexpected detail %s", perr.Detail)
	}
}

func TestSubscribe_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "k", PublicationID: "p", BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, nil)

	err := c.Subscribe(context.Background(), "reader@example.com", "")
	if !errors.Is(err, domain.ErrGatewayTimeout) {
		t.Fatalf("expected ErrGatewayTimeout, got %v", err)
	}
}

func TestSubscribe_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(Config{APIKey: "k", PublicationID: "p", BaseURL: srv.URL}, nil)

	err := c.Subscribe(context.Background(), "reader@example.com", "")
	if !errors.Is(err, domain.ErrBadGateway) {
		t.Fatalf("expected ErrBadGateway, got %v", err)
	}
}
