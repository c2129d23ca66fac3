package partner

import (
	"context"

	"lablink/database/repository"
	"lablink/models"
	"lablink/services/checkout"
)

// PartnerService manages partner accounts and their storefront views.
type PartnerService interface {
	Register(ctx context.Context, reg models.PartnerRegistration) (*models.Partner, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Partner, string, error)
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.Partner, error)

	// MyBookings merges durable bookings with any fallback records the backend of
	// record has not seen yet.
	MyBookings(ctx context.Context, partnerID string) ([]models.Booking, error)
	// Earnings derives per-booking commissions at the partner's configured rate.
	Earnings(ctx context.Context, partnerID string) ([]models.PartnerEarning, error)
}

// DefaultPartnerService implements PartnerService.
type DefaultPartnerService struct {
	Repo        repository.PartnerRepository
	BookingRepo repository.BookingRepository
	Fallback    checkout.FallbackStore
}
