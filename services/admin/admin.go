package admin

import (
	"context"
	"fmt"

	"lablink/models"
	"lablink/utils"

	"go.uber.org/zap"
)

func (s *DefaultAdminService) GetAllPartners(ctx context.Context) ([]models.Partner, error) {
	return s.PartnerRepo.GetAll(ctx)
}

func (s *DefaultAdminService) SetPartnerActive(ctx context.Context, id string, active bool) error {
	return s.PartnerRepo.UpdateWithDocument(ctx, id, map[string]any{"active": active})
}

func (s *DefaultAdminService) SetPartnerCommissionRate(ctx context.Context, id string, ratePercent float64) error {
	if ratePercent < 0 || ratePercent > 100 {
		return fmt.Errorf("commission rate %.2f out of range", ratePercent)
	}
	return s.PartnerRepo.UpdateWithDocument(ctx, id, map[string]any{"commission_percentage": ratePercent})
}

func (s *DefaultAdminService) CreateCentre(ctx context.Context, centre *models.DiagnosticCentre) error {
	return s.CentreRepo.Create(ctx, centre)
}

func (s *DefaultAdminService) UpdateCentre(ctx context.Context, id string, fields map[string]any) error {
	return s.CentreRepo.UpdateWithDocument(ctx, id, fields)
}

func (s *DefaultAdminService) DeleteCentre(ctx context.Context, id string) error {
	return s.CentreRepo.Delete(ctx, id)
}

func (s *DefaultAdminService) SetCentrePricing(ctx context.Context, pricing *models.CentrePricing) error {
	if _, err := s.CentreRepo.GetByID(ctx, pricing.CentreID); err != nil {
		return err
	}
	return s.CentreRepo.CreatePricing(ctx, pricing)
}

func (s *DefaultAdminService) DeleteCentrePricing(ctx context.Context, id string) error {
	return s.CentreRepo.DeletePricing(ctx, id)
}

func (s *DefaultAdminService) GetSettings(ctx context.Context) ([]models.Setting, error) {
	return s.SettingsRepo.GetAll(ctx)
}

func (s *DefaultAdminService) UpsertSetting(ctx context.Context, setting *models.Setting) error {
	if setting.Key == "" {
		return fmt.Errorf("setting key is required")
	}
	utils.GetLogger().Info("setting updated", zap.String("key", setting.Key))
	return s.SettingsRepo.Upsert(ctx, setting)
}

func (s *DefaultAdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	partners, err := s.PartnerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.CommissionRepo.CountByStatus(ctx, models.CommissionStatusPending)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		Partners:           partners,
		Bookings:           bookings,
		PendingCommissions: pending,
	}, nil
}
