package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNotConfigured indicates a required provider secret is missing.
	// Always a deployment fault, never a caller fault.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrGatewayTimeout indicates a provider did not answer within the
	// outbound call deadline.
	ErrGatewayTimeout = errors.New("provider timeout")
	// ErrBadGateway indicates a transport-level failure reaching a provider.
	ErrBadGateway = errors.New("provider unreachable")
	// ErrSignatureMismatch indicates a payment signature failed verification.
	// Callers must distinguish it from configuration and transport errors.
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// ProviderError carries a provider's own error body and status code so the
// HTTP layer can forward them unchanged.
type ProviderError struct {
	StatusCode int
	Detail     json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}
