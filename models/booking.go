package models

import "time"

// Booking statuses. The storefront surfaces the condensed set (pending, confirmed,
// completed, cancelled); the back office additionally tracks sample_collected and
// in_progress. Completed and cancelled are terminal.
const (
	BookingStatusPending         = "pending"
	BookingStatusConfirmed       = "confirmed"
	BookingStatusSampleCollected = "sample_collected"
	BookingStatusInProgress      = "in_progress"
	BookingStatusCompleted       = "completed"
	BookingStatusCancelled       = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentPrepaid  = "prepaid"
	PaymentPayAtLab = "pay_at_lab"
)

// Booking is the durable booking record created atomically at commit time from
// (draft, cart snapshot, total).
type Booking struct {
	ID                string            `bson:"id" json:"id"` // form "BK" + unix millis
	PartnerID         string            `bson:"partner_id" json:"partnerId"`
	PatientID         string            `bson:"patient_id" json:"patientId"`
	Items             []CartItem        `bson:"items" json:"items"`
	Patient           PatientDetails    `bson:"patient" json:"patient"`
	Collection        CollectionDetails `bson:"collection" json:"collection"`
	PaymentMethod     string            `bson:"payment_method" json:"paymentMethod"`
	TotalAmount       float64           `bson:"total_amount" json:"totalAmount"`
	PartnerCommission float64           `bson:"partner_commission" json:"partnerCommission"`
	Status            string            `bson:"status" json:"status"`
	CreatedAt         time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updatedAt"`
}
