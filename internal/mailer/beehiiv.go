package mailer

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
	defaultBaseURL = "https://api.beehiiv.com/v2"
	defaultTimeout = 10 * time.Second
	defaultSource  = "website"
)

// Config carries the Beehiiv credentials. BaseURL and Timeout are optional
// overrides.
type Config struct {
	APIKey        string
	PublicationID string
	BaseURL       string
	Timeout       time.Duration
}

// Client subscribes emails to a Beehiiv publication. Calls are single-shot
// with a fixed timeout; failures are never retried.
type Client struct {
	apiKey        string
	publicationID string
	baseURL       string
	http          *http.Client
	logger        *log.Logger
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
		apiKey:        cfg.APIKey,
		publicationID: cfg.PublicationID,
		baseURL:       cfg.BaseURL,
		http:          &http.Client{Timeout: cfg.Timeout},
		logger:        logger,
	}
}

type subscribePayload struct {
	Email            string `json:"email"`
	UTMSource        string `json:"utm_source"`
	SendWelcomeEmail bool   `json:"send_welcome_email"`
}

// Subscribe registers email with the configured publication and requests a
// welcome message. source attributes the signup and defaults to "website".
func (c *Client) Subscribe(ctx context.Context, email, source string) error {
	if c.apiKey == "" || c.publicationID == "" {
		return fmt.Errorf("%w: beehiiv api key or publication id missing", domain.ErrNotConfigured)
	}
	if source == "" {
		source = defaultSource
	}

	body, err := json.Marshal(subscribePayload{Email: email, UTMSource: source, SendWelcomeEmail: true})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/publications/%s/subscriptions", c.baseURL, c.publicationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Printf("mailer: subscribe email=%s error=%v", email, err)
		return classifyTransportError("beehiiv", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		c.logger.Printf("mailer: subscribed email=%s source=%s", email, source)
		return nil
	}
	return providerError(resp)
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
