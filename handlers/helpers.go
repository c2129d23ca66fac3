package handlers

import (
	"errors"
	"net/http"

	"lablink/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or creates a new one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	logger, _ := zap.NewProduction()
	return logger
}

// partnerIDFrom reads the partner ID the auth middleware stored on the context.
// An empty return means the request was not authenticated and a 401 was written.
func partnerIDFrom(c *gin.Context) string {
	v, exists := c.Get("partnerID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return ""
	}
	return id
}

// writeCheckoutError maps a checkout failure to an HTTP response by error code.
func writeCheckoutError(c *gin.Context, err error) {
	var ce *checkout.CheckoutError
	if errors.As(err, &ce) {
		switch ce.Code {
		case "validationError", "stepError":
			c.JSON(http.StatusBadRequest, gin.H{"error": ce.Message, "code": ce.Code})
		case "commitInFlight":
			c.JSON(http.StatusConflict, gin.H{"error": ce.Message, "code": ce.Code})
		case "bookingNotFound":
			c.JSON(http.StatusNotFound, gin.H{"error": ce.Message, "code": ce.Code})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": ce.Message, "code": ce.Code})
		}
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
