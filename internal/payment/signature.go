package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"digitalstore/internal/domain"
)

// VerifySignature recomputes the gateway's HMAC-SHA256 over
// "<orderID>|<paymentID>" with the shared key secret and compares it to
// signature in constant time. A mismatch returns domain.ErrSignatureMismatch,
// which callers must treat differently from configuration or transport
// failures.
func (c *Client) VerifySignature(orderID, paymentID, signature string) error {
	if c.keySecret == "" {
		return fmt.Errorf("%w: razorpay key secret missing", domain.ErrNotConfigured)
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.ErrSignatureMismatch
	}
	return nil
}
