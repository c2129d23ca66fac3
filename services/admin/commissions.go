package admin

import (
	"context"
	"fmt"

	"lablink/models"
	"lablink/utils"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) GetCommissions(ctx context.Context, status string) ([]models.Commission, error) {
	if status == "" {
		pending, err := s.CommissionRepo.GetByStatus(ctx, models.CommissionStatusPending)
		if err != nil {
			return nil, err
		}
		approved, err := s.CommissionRepo.GetByStatus(ctx, models.CommissionStatusApproved)
		if err != nil {
			return nil, err
		}
		paid, err := s.CommissionRepo.GetByStatus(ctx, models.CommissionStatusPaid)
		if err != nil {
			return nil, err
		}
		all := make([]models.Commission, 0, len(pending)+len(approved)+len(paid))
		all = append(all, pending...)
		all = append(all, approved...)
		all = append(all, paid...)
		return all, nil
	}
	return s.CommissionRepo.GetByStatus(ctx, status)
}

// ApproveCommission moves a pending commission to approved. Approvals only
// move forward; an approved or paid commission cannot be re-approved.
func (s *DefaultAdminService) ApproveCommission(ctx context.Context, id string) error {
	comm, err := s.CommissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comm.Status != models.CommissionStatusPending {
		return fmt.Errorf("commission %s is %s, only pending commissions can be approved", id, comm.Status)
	}
	if err := s.CommissionRepo.UpdateStatus(ctx, id, models.CommissionStatusApproved); err != nil {
		return err
	}
	utils.GetLogger().Info("commission approved",
		zap.String("commissionID", id),
		zap.String("partnerID", comm.PartnerID))
	return nil
}

// MarkCommissionPaid moves an approved commission to paid and stamps paid_at.
func (s *DefaultAdminService) MarkCommissionPaid(ctx context.Context, id string) error {
	comm, err := s.CommissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comm.Status != models.CommissionStatusApproved {
		return fmt.Errorf("commission %s is %s, only approved commissions can be marked paid", id, comm.Status)
	}
	if err := s.CommissionRepo.UpdateStatus(ctx, id, models.CommissionStatusPaid); err != nil {
		return err
	}
	utils.GetLogger().Info("commission paid",
		zap.String("commissionID", id),
		zap.String("partnerID", comm.PartnerID),
		zap.Float64("amount", comm.Amount))
	return nil
}
