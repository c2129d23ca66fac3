package admin

import (
	"context"
	"testing"
	"time"

	"lablink/models"

	"github.com/stretchr/testify/require"
)

type memCommissionRepo struct {
	byID map[string]*models.Commission
}

func newMemCommissionRepo(comms ...*models.Commission) *memCommissionRepo {
	r := &memCommissionRepo{byID: make(map[string]*models.Commission)}
	for _, c := range comms {
		r.byID[c.ID] = c
	}
	return r
}

func (r *memCommissionRepo) GetByID(_ context.Context, id string) (*models.Commission, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCommissionRepo) GetByPartnerID(_ context.Context, partnerID string) ([]models.Commission, error) {
	var out []models.Commission
	for _, c := range r.byID {
		if c.PartnerID == partnerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCommissionRepo) GetByStatus(_ context.Context, status string) ([]models.Commission, error) {
	var out []models.Commission
	for _, c := range r.byID {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCommissionRepo) UpdateStatus(_ context.Context, id, status string) error {
	c, ok := r.byID[id]
	if !ok {
		return errNotFound
	}
	c.Status = status
	if status == models.CommissionStatusPaid {
		now := time.Now()
		c.PaidAt = &now
	}
	return nil
}

func (r *memCommissionRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, c := range r.byID {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

var errNotFound = errNotFoundType{}

type errNotFoundType struct{}

func (errNotFoundType) Error() string { return "commission not found" }

func TestCommissionLadderForwardOnly(t *testing.T) {
	ctx := context.Background()
	repo := newMemCommissionRepo(&models.Commission{
		ID:        "c1",
		PartnerID: "p1",
		BookingID: "BK100",
		Amount:    150,
		Status:    models.CommissionStatusPending,
	})
	svc := &DefaultAdminService{CommissionRepo: repo}

	// Cannot pay a pending commission.
	require.Error(t, svc.MarkCommissionPaid(ctx, "c1"))

	require.NoError(t, svc.ApproveCommission(ctx, "c1"))
	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, models.CommissionStatusApproved, got.Status)

	// Re-approving an approved commission is rejected.
	require.Error(t, svc.ApproveCommission(ctx, "c1"))

	require.NoError(t, svc.MarkCommissionPaid(ctx, "c1"))
	got, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, models.CommissionStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)

	// Paid is terminal.
	require.Error(t, svc.ApproveCommission(ctx, "c1"))
	require.Error(t, svc.MarkCommissionPaid(ctx, "c1"))
}

func TestCommissionRateBounds(t *testing.T) {
	svc := &DefaultAdminService{}
	require.Error(t, svc.SetPartnerCommissionRate(context.Background(), "p1", -1))
	require.Error(t, svc.SetPartnerCommissionRate(context.Background(), "p1", 101))
}
