package handlers

import (
	"net/http"

	"lablink/models"
	"lablink/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the three-step wizard, the commit endpoint and the
// confirmation view.
type CheckoutHandler struct {
	Svc checkout.Service
}

func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc}
}

// GetDraftHandler returns the session's booking draft.
func (h *CheckoutHandler) GetDraftHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	draft, err := h.Svc.GetDraft(c.Request.Context(), partnerID)
	if err != nil {
		getLogger(c).Error("Failed to load checkout draft", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetPatientHandler records the step-one patient payload.
func (h *CheckoutHandler) SetPatientHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var details models.PatientDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetPatientDetails(c.Request.Context(), partnerID, details); err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// SetCollectionHandler records the step-two collection payload.
func (h *CheckoutHandler) SetCollectionHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var details models.CollectionDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetCollectionDetails(c.Request.Context(), partnerID, details); err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// SetPaymentHandler records the step-three payment method.
func (h *CheckoutHandler) SetPaymentHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var input struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetPaymentMethod(c.Request.Context(), partnerID, input.Method); err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// SetStepHandler moves the wizard directly to a step. Backward navigation and
// deep links go through here, so there is no completion guard.
func (h *CheckoutHandler) SetStepHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	var input struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.SetStep(c.Request.Context(), partnerID, input.Step); err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": input.Step})
}

// AdvanceHandler moves to the next step, gated on the current step validating.
func (h *CheckoutHandler) AdvanceHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	step, err := h.Svc.Advance(c.Request.Context(), partnerID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": step})
}

// ResetHandler discards the draft and resets the commit state.
func (h *CheckoutHandler) ResetHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	if err := h.Svc.Reset(c.Request.Context(), partnerID); err != nil {
		getLogger(c).Error("Failed to reset checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// SubmitHandler runs the booking commit for the session's draft and cart.
func (h *CheckoutHandler) SubmitHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	outcome, err := h.Svc.Submit(c.Request.Context(), partnerID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"bookingId": outcome.BookingID,
		"fallback":  outcome.Fallback,
	})
}

// StateHandler returns the commit FSM state for the session.
func (h *CheckoutHandler) StateHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	state, err := h.Svc.State(c.Request.Context(), partnerID)
	if err != nil {
		getLogger(c).Error("Failed to load checkout state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout state"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetBookingHandler serves the confirmation view for a booking ID.
func (h *CheckoutHandler) GetBookingHandler(c *gin.Context) {
	partnerID := partnerIDFrom(c)
	if partnerID == "" {
		return
	}

	bookingID := c.Param("bookingID")
	booking, err := h.Svc.ResolveBooking(c.Request.Context(), partnerID, bookingID)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
