package models

// ReconcilePayload identifies a fallback booking queued for replay into
// durable storage.
type ReconcilePayload struct {
	PartnerID string `json:"partnerId"`
	BookingID string `json:"bookingId"`
}
