package checkout

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"lablink/models"
	"lablink/services/commission"
	"lablink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Booking identifiers keep the "BK" + timestamp form the confirmation view is keyed
// by. The stamp is forced strictly increasing so back-to-back commits never collide;
// retrying a failed commit therefore always mints a fresh identifier (the procedure
// is deliberately not idempotent).
var (
	idMu      sync.Mutex
	lastStamp int64
)

func newBookingID() string {
	idMu.Lock()
	defer idMu.Unlock()
	stamp := time.Now().UnixMilli()
	if stamp <= lastStamp {
		stamp = lastStamp + 1
	}
	lastStamp = stamp
	return "BK" + strconv.FormatInt(stamp, 10)
}

// commitInput is the fully-populated payload a commit strategy consumes. Submit
// assembles it once; completeness was enforced upstream by step gating.
type commitInput struct {
	PartnerID     string
	Patient       models.PatientDetails
	Collection    models.CollectionDetails
	Items         []models.CartItem
	TotalAmount   float64
	PaymentMethod string
}

// commitStrategy is one way of recording a booking. Exactly one strategy succeeds
// per commit attempt; the fallback is selected by the durable strategy's returned
// error, never by intercepting panics.
type commitStrategy interface {
	Commit(ctx context.Context, in *commitInput) (*models.CommitOutcome, error)
}

// durableCommit writes the (patient, booking, commission) bundle transactionally,
// using the partner's configured commission rate.
type durableCommit struct {
	svc *DefaultCheckoutService
}

func (d *durableCommit) Commit(ctx context.Context, in *commitInput) (*models.CommitOutcome, error) {
	partner, err := d.svc.PartnerRepo.GetByID(ctx, in.PartnerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &models.Patient{
		ID:           uuid.New().String(),
		PartnerID:    partner.ID,
		FullName:     in.Patient.FullName,
		Age:          in.Patient.Age,
		Gender:       in.Patient.Gender,
		Phone:        in.Patient.Phone,
		Email:        in.Patient.Email,
		Relationship: in.Patient.Relationship,
		CreatedAt:    now,
	}

	bookingID := newBookingID()
	commissionAmount := commission.Amount(in.TotalAmount, partner.CommissionPercentage)
	booking := &models.Booking{
		ID:                bookingID,
		PartnerID:         partner.ID,
		PatientID:         patient.ID,
		Items:             in.Items,
		Patient:           in.Patient,
		Collection:        in.Collection,
		PaymentMethod:     in.PaymentMethod,
		TotalAmount:       in.TotalAmount,
		PartnerCommission: commissionAmount,
		Status:            models.BookingStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	comm := &models.Commission{
		ID:        uuid.New().String(),
		PartnerID: partner.ID,
		BookingID: bookingID,
		Amount:    commissionAmount,
		Status:    models.CommissionStatusPending,
		CreatedAt: now,
	}

	if err := d.svc.BookingRepo.CreateBundle(ctx, patient, booking, comm); err != nil {
		return nil, err
	}
	return &models.CommitOutcome{BookingID: bookingID}, nil
}

// localFallbackCommit appends the booking to the session's locally persisted list.
// The partner's configured rate is not available on this path, so the commission is
// computed at the platform default.
type localFallbackCommit struct {
	svc *DefaultCheckoutService
}

func (l *localFallbackCommit) Commit(ctx context.Context, in *commitInput) (*models.CommitOutcome, error) {
	now := time.Now()
	bookingID := newBookingID()
	booking := &models.Booking{
		ID:                bookingID,
		PartnerID:         in.PartnerID,
		Items:             in.Items,
		Patient:           in.Patient,
		Collection:        in.Collection,
		PaymentMethod:     in.PaymentMethod,
		TotalAmount:       in.TotalAmount,
		PartnerCommission: commission.Amount(in.TotalAmount, commission.DefaultRatePercent),
		Status:            models.BookingStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := l.svc.Fallback.Append(ctx, in.PartnerID, booking); err != nil {
		return nil, err
	}
	return &models.CommitOutcome{BookingID: bookingID, Fallback: true}, nil
}

// Submit runs the commit procedure: durable first, local fallback on durable
// failure, exactly one of the two per attempt. On either success the cart and draft
// are cleared and the FSM lands in committed; only a failure of both paths surfaces
// an error.
func (s *DefaultCheckoutService) Submit(ctx context.Context, partnerID string) (*models.CommitOutcome, error) {
	logger := utils.GetLogger()

	state, err := s.Drafts.LoadState(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if state.Phase == models.CommitPhaseSubmitting {
		return nil, ErrCommitInFlight
	}

	draft, err := s.Drafts.LoadDraft(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	for step := models.StepPatientDetails; step <= models.StepReview; step++ {
		if err := validateStep(draft, step); err != nil {
			return nil, err
		}
	}

	c, err := s.Carts.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, NewStepError("cart is empty")
	}

	if err := s.Drafts.SaveState(ctx, partnerID, &models.CheckoutState{Phase: models.CommitPhaseSubmitting}); err != nil {
		return nil, err
	}

	in := &commitInput{
		PartnerID:     partnerID,
		Patient:       *draft.Patient,
		Collection:    *draft.Collection,
		Items:         c.Items,
		TotalAmount:   c.TotalPrice(),
		PaymentMethod: draft.PaymentMethod,
	}

	outcome, err := s.attempt(ctx, in)
	if err != nil {
		_ = s.Drafts.SaveState(ctx, partnerID, &models.CheckoutState{Phase: models.CommitPhaseFailed})
		return nil, err
	}

	if err := s.Carts.Clear(ctx, partnerID); err != nil {
		logger.Warn("failed to clear cart after commit", zap.String("partnerID", partnerID), zap.Error(err))
	}
	if err := s.Drafts.DeleteDraft(ctx, partnerID); err != nil {
		logger.Warn("failed to clear draft after commit", zap.String("partnerID", partnerID), zap.Error(err))
	}
	if err := s.Drafts.SaveState(ctx, partnerID, &models.CheckoutState{
		Phase:     models.CommitPhaseCommitted,
		BookingID: outcome.BookingID,
	}); err != nil {
		logger.Warn("failed to persist commit state", zap.String("partnerID", partnerID), zap.Error(err))
	}
	return outcome, nil
}

func (s *DefaultCheckoutService) attempt(ctx context.Context, in *commitInput) (*models.CommitOutcome, error) {
	logger := utils.GetLogger()

	timeout := s.CommitTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	durableCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	durable := &durableCommit{svc: s}
	outcome, durableErr := durable.Commit(durableCtx, in)
	if durableErr == nil {
		return outcome, nil
	}

	// The user experience stays uniform success; the switch to local storage is
	// logged for operational visibility.
	logger.Warn("durable booking commit failed, using local fallback",
		zap.String("partnerID", in.PartnerID), zap.Error(durableErr))

	fallback := &localFallbackCommit{svc: s}
	outcome, fallbackErr := fallback.Commit(ctx, in)
	if fallbackErr != nil {
		logger.Error("fallback booking commit failed",
			zap.String("partnerID", in.PartnerID),
			zap.NamedError("durableError", durableErr),
			zap.NamedError("fallbackError", fallbackErr))
		return nil, ErrCommitFailed
	}

	if s.Reconciler != nil {
		if err := s.Reconciler.EnqueueReconcile(ctx, in.PartnerID, outcome.BookingID); err != nil {
			logger.Warn("failed to schedule fallback reconciliation",
				zap.String("bookingID", outcome.BookingID), zap.Error(err))
		}
	}
	return outcome, nil
}

// ResolveBooking serves the confirmation view: durable storage first, then the
// session's fallback list, then a clean not-found.
func (s *DefaultCheckoutService) ResolveBooking(ctx context.Context, partnerID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err == nil {
		return booking, nil
	}
	fallbacks, fbErr := s.Fallback.List(ctx, partnerID)
	if fbErr != nil {
		return nil, errors.Join(err, fbErr)
	}
	for i := range fallbacks {
		if fallbacks[i].ID == bookingID {
			return &fallbacks[i], nil
		}
	}
	return nil, ErrBookingNotFound
}
