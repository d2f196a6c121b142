package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

func subscribeHandler(m Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err)
			return
		}
		if err := m.Subscribe(c.Request.Context(), req.Email, req.Source); err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
