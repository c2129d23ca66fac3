package handlers

import (
	"errors"
	"net/http"

	"lablink/models"
	"lablink/services/partner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler serves partner registration, login and account views.
type PartnerHandler struct {
	Svc partner.PartnerService
}

func NewPartnerHandler(svc partner.PartnerService) *PartnerHandler {
	return &PartnerHandler{Svc: svc}
}

// RegisterHandler creates a partner account and returns it with a session token.
func (ph *PartnerHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.PartnerRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, token, err := ph.Svc.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, partner.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		logger.Error("Partner registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"partner": p, "token": token})
}

// LoginHandler authenticates a partner by email and password.
func (ph *PartnerHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, token, err := ph.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		logger.Warn("Partner login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": p, "token": token})
}

// GetProfileHandler returns the authenticated partner's account.
func (ph *PartnerHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	p, err := ph.Svc.GetByID(c.Request.Context(), partnerID)
	if err != nil {
		logger.Error("Failed to get partner profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler updates the authenticated partner's own editable fields.
func (ph *PartnerHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := ph.Svc.UpdateProfile(c.Request.Context(), partnerID, fields)
	if err != nil {
		logger.Error("Failed to update partner profile", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// MyBookingsHandler returns the partner's bookings, newest first, including any
// locally recorded bookings not yet reconciled.
func (ph *PartnerHandler) MyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	bookings, err := ph.Svc.MyBookings(c.Request.Context(), partnerID)
	if err != nil {
		logger.Error("Failed to list partner bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// EarningsHandler returns the partner's per-booking commission rows.
func (ph *PartnerHandler) EarningsHandler(c *gin.Context) {
	logger := getLogger(c)

	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	earnings, err := ph.Svc.Earnings(c.Request.Context(), partnerID)
	if err != nil {
		logger.Error("Failed to compute partner earnings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve earnings"})
		return
	}

	var total float64
	for _, e := range earnings {
		total += e.Commission
	}
	c.JSON(http.StatusOK, gin.H{"earnings": earnings, "total": total})
}
