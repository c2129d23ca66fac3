package models

// Checkout wizard steps.
const (
	StepPatientDetails    = 1
	StepCollectionDetails = 2
	StepReview            = 3
)

// Collection types and time slots.
const (
	CollectionHome = "home"
	CollectionLab  = "lab"
)

// CollectionDetails is the wizard's step-two payload. For home collection the
// address, city and pincode fields are required; for a lab visit they may be absent.
type CollectionDetails struct {
	Type     string `json:"type" validate:"required,oneof=home lab"`
	Date     string `json:"date" validate:"required"` // YYYY-MM-DD, must be a future date
	TimeSlot string `json:"timeSlot" validate:"required,oneof=morning afternoon evening"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	Landmark string `json:"landmark,omitempty"`
}

// BookingDraft accumulates a booking under construction across wizard steps.
// Each step writes exactly one sub-object; Step tracks wizard position.
type BookingDraft struct {
	Patient       *PatientDetails    `json:"patient,omitempty"`
	Collection    *CollectionDetails `json:"collection,omitempty"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	Step          int                `json:"step"`
}

// Commit phases for the checkout finite-state machine.
const (
	CommitPhaseIdle       = "idle"
	CommitPhaseSubmitting = "submitting"
	CommitPhaseCommitted  = "committed"
	CommitPhaseFailed     = "failed"
)

// CheckoutState is the persisted commit FSM state for one partner session.
type CheckoutState struct {
	Phase     string `json:"phase"`
	BookingID string `json:"bookingId,omitempty"`
}

// CommitOutcome reports how a commit attempt was durably recorded.
type CommitOutcome struct {
	BookingID string `json:"bookingId"`
	Fallback  bool   `json:"fallback"` // true when the durable write failed and the local path was used
}
