package checkout

import (
	"context"
	"time"

	"lablink/database/repository"
	"lablink/models"
	"lablink/services/cart"
)

// Service drives the three-step checkout wizard and the booking commit.
//
// The wizard holds no data of its own: it reads and writes the session's
// BookingDraft and consumes the cart total at commit time.
type Service interface {
	GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	SetPatientDetails(ctx context.Context, sessionID string, details models.PatientDetails) error
	SetCollectionDetails(ctx context.Context, sessionID string, details models.CollectionDetails) error
	SetPaymentMethod(ctx context.Context, sessionID, method string) error
	// SetStep moves the wizard directly; it carries no completion guard (backward
	// navigation and deep links depend on this).
	SetStep(ctx context.Context, sessionID string, step int) error
	// Advance moves from the current step to the next, gated on the current step's
	// validation.
	Advance(ctx context.Context, sessionID string) (int, error)
	Reset(ctx context.Context, sessionID string) error

	// Submit runs the commit procedure for the session's draft and cart.
	Submit(ctx context.Context, partnerID string) (*models.CommitOutcome, error)
	State(ctx context.Context, sessionID string) (*models.CheckoutState, error)

	// ResolveBooking looks a booking up for the confirmation view: durable storage
	// first, then the session's fallback list.
	ResolveBooking(ctx context.Context, partnerID, bookingID string) (*models.Booking, error)
}

// DraftStore persists the booking draft and the commit FSM state for a session.
type DraftStore interface {
	LoadDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	SaveDraft(ctx context.Context, sessionID string, draft *models.BookingDraft) error
	DeleteDraft(ctx context.Context, sessionID string) error

	LoadState(ctx context.Context, sessionID string) (*models.CheckoutState, error)
	SaveState(ctx context.Context, sessionID string, state *models.CheckoutState) error
}

// FallbackStore persists bookings that could not be written durably.
type FallbackStore interface {
	Append(ctx context.Context, partnerID string, booking *models.Booking) error
	List(ctx context.Context, partnerID string) ([]models.Booking, error)
	Remove(ctx context.Context, partnerID, bookingID string) error
}

// ReconcileEnqueuer schedules a fallback booking for replay into durable storage.
type ReconcileEnqueuer interface {
	EnqueueReconcile(ctx context.Context, partnerID, bookingID string) error
}

// DefaultCheckoutService implements Service.
type DefaultCheckoutService struct {
	Drafts        DraftStore
	Carts         cart.Service
	PartnerRepo   repository.PartnerRepository
	BookingRepo   repository.BookingRepository
	Fallback      FallbackStore
	Reconciler    ReconcileEnqueuer // optional; fallback commits are replayed when set
	CommitTimeout time.Duration
}
