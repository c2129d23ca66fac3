package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lablink/models"
	"lablink/utils"

	"github.com/go-redis/redis/v8"
)

const draftTTL = 7 * 24 * time.Hour

// RedisDraftStore persists drafts and commit state as JSON blobs, one key per
// session per concern.
type RedisDraftStore struct {
	Cache *redis.Client
}

// NewRedisDraftStore creates a DraftStore using the given Redis client.
func NewRedisDraftStore(cache *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Cache: cache}
}

func (s *RedisDraftStore) LoadDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Cache.Get(ctx, utils.DraftKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.BookingDraft{Step: models.StepPatientDetails}, nil
		}
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) SaveDraft(ctx context.Context, sessionID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.DraftKeyPrefix+sessionID, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) DeleteDraft(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, utils.DraftKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) LoadState(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	data, err := s.Cache.Get(ctx, utils.CommitKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.CheckoutState{Phase: models.CommitPhaseIdle}, nil
		}
		return nil, fmt.Errorf("failed to load commit state: %w", err)
	}
	var state models.CheckoutState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse commit state: %w", err)
	}
	return &state, nil
}

func (s *RedisDraftStore) SaveState(ctx context.Context, sessionID string, state *models.CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal commit state: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.CommitKeyPrefix+sessionID, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store commit state: %w", err)
	}
	return nil
}

// Draft operations. Each setter writes exactly one sub-object of the draft.

func (s *DefaultCheckoutService) GetDraft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.Drafts.LoadDraft(ctx, sessionID)
}

func (s *DefaultCheckoutService) SetPatientDetails(ctx context.Context, sessionID string, details models.PatientDetails) error {
	if err := ValidatePatientDetails(details); err != nil {
		return err
	}
	draft, err := s.Drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return err
	}
	draft.Patient = &details
	return s.Drafts.SaveDraft(ctx, sessionID, draft)
}

func (s *DefaultCheckoutService) SetCollectionDetails(ctx context.Context, sessionID string, details models.CollectionDetails) error {
	if err := ValidateCollectionDetails(details, time.Now()); err != nil {
		return err
	}
	draft, err := s.Drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return err
	}
	draft.Collection = &details
	return s.Drafts.SaveDraft(ctx, sessionID, draft)
}

func (s *DefaultCheckoutService) SetPaymentMethod(ctx context.Context, sessionID, method string) error {
	if method != models.PaymentPrepaid && method != models.PaymentPayAtLab {
		return NewValidationError("unknown payment method: " + method)
	}
	draft, err := s.Drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return err
	}
	draft.PaymentMethod = method
	return s.Drafts.SaveDraft(ctx, sessionID, draft)
}

func (s *DefaultCheckoutService) SetStep(ctx context.Context, sessionID string, step int) error {
	if step < models.StepPatientDetails || step > models.StepReview {
		return NewStepError(fmt.Sprintf("step %d out of range", step))
	}
	draft, err := s.Drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return err
	}
	draft.Step = step
	return s.Drafts.SaveDraft(ctx, sessionID, draft)
}

// Advance moves the wizard one step forward after validating the sub-object the
// current step owns. Returning from the review step is the commit's job, not ours.
func (s *DefaultCheckoutService) Advance(ctx context.Context, sessionID string) (int, error) {
	draft, err := s.Drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	if draft.Step >= models.StepReview {
		return draft.Step, NewStepError("already at the review step")
	}
	if err := validateStep(draft, draft.Step); err != nil {
		return draft.Step, err
	}
	draft.Step++
	if err := s.Drafts.SaveDraft(ctx, sessionID, draft); err != nil {
		return 0, err
	}
	return draft.Step, nil
}

// Reset clears the draft and returns the commit FSM to idle. Called after a commit
// (either path) or when the cart empties.
func (s *DefaultCheckoutService) Reset(ctx context.Context, sessionID string) error {
	if err := s.Drafts.DeleteDraft(ctx, sessionID); err != nil {
		return err
	}
	return s.Drafts.SaveState(ctx, sessionID, &models.CheckoutState{Phase: models.CommitPhaseIdle})
}

func (s *DefaultCheckoutService) State(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	return s.Drafts.LoadState(ctx, sessionID)
}
