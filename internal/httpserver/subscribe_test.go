package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"digitalstore/internal/domain"
)

func TestSubscribe_Success(t *testing.T) {
	m := &stubMailer{}
	router := newTestRouter(t, Deps{Mailer: m})

	rec := doJSON(t, router, http.MethodPost, "/subscribe", `{"email": "reader@example.com", "source": "footer"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
	}
	decodeBody(t, rec, &body)
	if !body.Success {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if m.lastEmail != "reader@example.com" || m.lastSource != "footer" {
		t.Fatalf("adapter got email=%q source=%q", m.lastEmail, m.lastSource)
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := doJSON(t, router, http.MethodPost, "/subscribe", `{"email": "not-an-email"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestSubscribe_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: beehiiv api key missing", domain.ErrNotConfigured), http.StatusInternalServerError},
		{fmt.Errorf("%w: beehiiv", domain.ErrGatewayTimeout), http.StatusGatewayTimeout},
		{fmt.Errorf("%w: beehiiv: connection refused", domain.ErrBadGateway), http.StatusBadGateway},
	}
	for _, tc := range cases {
		router := newTestRouter(t, Deps{Mailer: &stubMailer{err: tc.err}})

		rec := doJSON(t, router, http.MethodPost, "/subscribe", `{"email": "reader@example.com"}`)
		if rec.Code != tc.code {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestSubscribe_ForwardsProviderStatus(t *testing.T) {
	perr := &domain.ProviderError{
		StatusCode: http.StatusConflict,
		Detail:     json.RawMessage(`{"errors":[{"message":"already subscribed"}]}`),
	}
	router := newTestRouter(t, Deps{Mailer: &stubMailer{err: perr}})

	rec := doJSON(t, router, http.MethodPost, "/subscribe", `{"email": "reader@example.com"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body struct {
		Detail struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"detail"`
	}
	decodeBody(t, rec, &body)
	if len(body.Detail.Errors) != 1 || body.Detail.Errors[0].Message != "already subscribed" {
		t.Fatalf("provider detail not forwarded: %s", rec.Body.String())
	}
}
