package partner

import (
	"context"

	"lablink/models"
	"lablink/services/commission"
)

// MyBookings returns the partner's durable bookings plus any fallback records still
// awaiting reconciliation, newest durable records first.
func (s *DefaultPartnerService) MyBookings(ctx context.Context, partnerID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.GetByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	fallbacks, err := s.Fallback.List(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		seen[b.ID] = true
	}
	for _, fb := range fallbacks {
		// A reconciled booking can briefly exist in both stores.
		if !seen[fb.ID] {
			bookings = append(bookings, fb)
		}
	}
	return bookings, nil
}

// Earnings lists per-booking commissions at the partner's configured rate, through
// the same formula the commit paths use.
func (s *DefaultPartnerService) Earnings(ctx context.Context, partnerID string) ([]models.PartnerEarning, error) {
	p, err := s.Repo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.MyBookings(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	earnings := make([]models.PartnerEarning, 0, len(bookings))
	for _, b := range bookings {
		earnings = append(earnings, models.PartnerEarning{
			BookingID:   b.ID,
			TotalAmount: b.TotalAmount,
			Commission:  commission.Amount(b.TotalAmount, p.CommissionPercentage),
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
		})
	}
	return earnings, nil
}
