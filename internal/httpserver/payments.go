package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createPaymentOrderRequest struct {
	// AmountINR is the amount in paise, the minor unit of INR.
	AmountINR int64             `json:"amount_inr" binding:"required,gte=1"`
	Receipt   string            `json:"receipt"`
	Notes     map[string]string `json:"notes"`
}

type verifySignatureRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

func createPaymentOrderHandler(gw PaymentGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPaymentOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err)
			return
		}
		order, err := gw.CreateOrder(c.Request.Context(), req.AmountINR, req.Receipt, req.Notes)
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func verifySignatureHandler(gw PaymentGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req verifySignatureRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err)
			return
		}
		if err := gw.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": true})
	}
}
