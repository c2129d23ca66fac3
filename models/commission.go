package models

import "time"

// Commission statuses. Monotonic: pending -> approved -> paid.
const (
	CommissionStatusPending  = "pending"
	CommissionStatusApproved = "approved"
	CommissionStatusPaid     = "paid"
)

// Commission is the partner's earned share of a booking, created 1:1 with each
// booking at commit time.
type Commission struct {
	ID        string     `bson:"id" json:"id"`
	PartnerID string     `bson:"partner_id" json:"partnerId"`
	BookingID string     `bson:"booking_id" json:"bookingId"`
	Amount    float64    `bson:"amount" json:"amount"`
	Status    string     `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	PaidAt    *time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
}
