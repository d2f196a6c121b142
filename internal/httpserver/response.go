package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"digitalstore/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// validationError rejects the whole request with per-field detail. Requests
// are all-or-nothing: no partially valid body is accepted.
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// apiError maps the error taxonomy onto HTTP statuses. Provider errors keep
// their original status code and body.
func apiError(c *gin.Context, err error) {
	var perr *domain.ProviderError
	switch {
	case errors.As(err, &perr):
		c.JSON(perr.StatusCode, gin.H{"detail": json.RawMessage(perr.Detail)})
	case errors.Is(err, domain.ErrSignatureMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"valid": false})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrGatewayTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrBadGateway):
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
