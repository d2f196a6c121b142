package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"digitalstore/internal/domain"
)

const (
	defaultBaseURL = "https://api.razorpay.com/v1"
	defaultTimeout = 10 * time.Second

	// All gateway orders are created in INR.
	currency = "INR"
)

// Config carries the Razorpay key pair. BaseURL and Timeout are optional
// overrides.
type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// Client creates gateway orders and verifies payment signatures. Calls are
// single-shot with a fixed timeout; failures are never retried.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
	logger    *log.Logger
}

func New(cfg Config, logger *log.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   cfg.BaseURL,
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

// Order is the subset of a created gateway order the checkout widget needs.
// KeyID is echoed back so the widget can open without a second round trip.
type Order struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type orderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder creates a capture-on-payment gateway order for amount in minor
// currency units. receipt defaults to "rcpt_<amount>" when empty.
func (c *Client) CreateOrder(ctx context.Context, amount int64, receipt string, notes map[string]string) (*Order, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, fmt.Errorf("%w: razorpay key id or secret missing", domain.ErrNotConfigured)
	}
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%d", amount)
	}

	body, err := json.Marshal(orderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
		Notes:          notes,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("payment: create order amount=%d error=%v", amount, err)
		return nil, classifyTransportError("razorpay", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, providerError(resp)
	}

	var created orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: razorpay: decode order response: %v", domain.ErrBadGateway, err)
	}
	c.logger.Printf("payment: order created id=%s amount=%d receipt=%s", created.ID, created.Amount, receipt)
	return &Order{
		OrderID:  created.ID,
		Amount:   created.Amount,
		Currency: created.Currency,
		KeyID:    c.keyID,
	}, nil
}

// providerError forwards the provider's structured error body verbatim,
// wrapping plain-text bodies so the detail is always JSON.
func providerError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if !json.Valid(raw) {
		raw, _ = json.Marshal(map[string]string{"message": string(raw)})
	}
	return &domain.ProviderError{StatusCode: resp.StatusCode, Detail: raw}
}

func classifyTransportError(provider string, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %s", domain.ErrGatewayTimeout, provider)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrBadGateway, provider, err)
}
