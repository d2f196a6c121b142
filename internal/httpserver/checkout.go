package httpserver

import (
	"net/http"

	"digitalstore/internal/domain"
	"digitalstore/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type orderRequest struct {
	ProductID   string   `json:"product_id" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Status      string   `json:"status" binding:"omitempty,oneof=pending paid failed"`
	DownloadURL string   `json:"download_url" binding:"omitempty,url"`
}

func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err)
			return
		}
		placed, err := svc.Place(c.Request.Context(), domain.Order{
			ProductID:   req.ProductID,
			Email:       req.Email,
			Amount:      *req.Amount,
			Status:      req.Status,
			DownloadURL: req.DownloadURL,
		})
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": placed})
	}
}
