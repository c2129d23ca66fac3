package checkout

import "fmt"

// CheckoutError carries a machine-readable code alongside the message so handlers
// can map failures to HTTP statuses without string matching.
type CheckoutError struct {
	Code    string
	Message string
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &CheckoutError{Code: "validationError", Message: msg}
}

func NewStepError(msg string) error {
	return &CheckoutError{Code: "stepError", Message: msg}
}

// ErrCommitInFlight rejects a duplicate submission while a commit attempt for the
// same session is still outstanding.
var ErrCommitInFlight = &CheckoutError{Code: "commitInFlight", Message: "a booking commit is already in progress for this session"}

// ErrCommitFailed signals that both the durable and the fallback write paths failed.
var ErrCommitFailed = &CheckoutError{Code: "commitFailed", Message: "booking could not be recorded"}

// ErrBookingNotFound signals that a booking id resolved against neither durable nor
// fallback storage.
var ErrBookingNotFound = &CheckoutError{Code: "bookingNotFound", Message: "booking not found"}
