package handlers

import (
	"net/http"

	"lablink/models"
	"lablink/services/cart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the session cart endpoints. The cart is keyed by the
// authenticated partner's ID.
type CartHandler struct {
	Svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{Svc: svc}
}

func (ch *CartHandler) cartResponse(c *gin.Context, crt *models.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"cart":       crt,
		"totalItems": crt.TotalItems(),
		"totalPrice": crt.TotalPrice(),
	})
}

// GetCartHandler returns the session's cart with its derived totals.
func (ch *CartHandler) GetCartHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	crt, err := ch.Svc.Get(c.Request.Context(), partnerID)
	if err != nil {
		getLogger(c).Error("Failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	ch.cartResponse(c, crt)
}

// AddItemHandler adds a service to the cart, merging with an existing line for
// the same service at the same centre.
func (ch *CartHandler) AddItemHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if item.ID == "" || item.CentreID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and centreId are required"})
		return
	}

	crt, err := ch.Svc.AddItem(c.Request.Context(), partnerID, item)
	if err != nil {
		getLogger(c).Error("Failed to add cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	ch.cartResponse(c, crt)
}

// RemoveItemHandler deletes a cart line. Removing an absent line succeeds.
func (ch *CartHandler) RemoveItemHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	id := c.Param("id")
	centreID := c.Query("centreId")
	if id == "" || centreID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and centreId are required"})
		return
	}

	crt, err := ch.Svc.RemoveItem(c.Request.Context(), partnerID, id, centreID)
	if err != nil {
		getLogger(c).Error("Failed to remove cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	ch.cartResponse(c, crt)
}

// UpdateQuantityHandler sets a line's quantity; zero or below removes the line.
func (ch *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var input struct {
		ID       string `json:"id"`
		CentreID string `json:"centreId"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if input.ID == "" || input.CentreID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id and centreId are required"})
		return
	}

	crt, err := ch.Svc.UpdateQuantity(c.Request.Context(), partnerID, input.ID, input.CentreID, input.Quantity)
	if err != nil {
		getLogger(c).Error("Failed to update cart quantity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	ch.cartResponse(c, crt)
}

// ClearCartHandler empties the session's cart.
func (ch *CartHandler) ClearCartHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	if err := ch.Svc.Clear(c.Request.Context(), partnerID); err != nil {
		getLogger(c).Error("Failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
