package booking

import (
	"context"
	"errors"
	"fmt"

	"lablink/models"
	"lablink/utils"

	"go.uber.org/zap"
)

// ErrInvalidTransition rejects a status change the lifecycle does not allow.
var ErrInvalidTransition = errors.New("illegal booking status transition")

// statusTransitions is the booking lifecycle. Forward progress runs pending ->
// confirmed -> sample_collected -> in_progress -> completed; cancellation is allowed
// from any pre-terminal state. Completed and cancelled admit nothing.
var statusTransitions = map[string][]string{
	models.BookingStatusPending:         {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:       {models.BookingStatusSampleCollected, models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusSampleCollected: {models.BookingStatusInProgress, models.BookingStatusCancelled},
	models.BookingStatusInProgress:      {models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusCompleted:       {},
	models.BookingStatusCancelled:       {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) GetAll(ctx context.Context, status string) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx, status)
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
	}
	if err := s.Repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking status updated",
		zap.String("bookingID", id),
		zap.String("from", current.Status),
		zap.String("to", newStatus))
	current.Status = newStatus
	return current, nil
}
