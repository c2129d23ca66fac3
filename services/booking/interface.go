package booking

import (
	"context"

	"lablink/database/repository"
	"lablink/models"
)

// BookingService exposes back-office booking operations.
type BookingService interface {
	GetAll(ctx context.Context, status string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus applies one transition from the booking status table; illegal
	// transitions are rejected.
	UpdateStatus(ctx context.Context, id, newStatus string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo repository.BookingRepository
}
