package admin

import (
	"context"

	"lablink/database/repository"
	"lablink/models"
)

// AdminService groups the elevated back-office operations.
type AdminService interface {
	// Partners.
	GetAllPartners(ctx context.Context) ([]models.Partner, error)
	SetPartnerActive(ctx context.Context, id string, active bool) error
	SetPartnerCommissionRate(ctx context.Context, id string, ratePercent float64) error

	// Commissions. The status ladder is monotonic: pending -> approved -> paid.
	GetCommissions(ctx context.Context, status string) ([]models.Commission, error)
	ApproveCommission(ctx context.Context, id string) error
	MarkCommissionPaid(ctx context.Context, id string) error

	// Centres and their pricing rows.
	CreateCentre(ctx context.Context, centre *models.DiagnosticCentre) error
	UpdateCentre(ctx context.Context, id string, fields map[string]any) error
	DeleteCentre(ctx context.Context, id string) error
	SetCentrePricing(ctx context.Context, pricing *models.CentrePricing) error
	DeleteCentrePricing(ctx context.Context, id string) error

	// Settings.
	GetSettings(ctx context.Context) ([]models.Setting, error)
	UpsertSetting(ctx context.Context, setting *models.Setting) error

	// Dashboard.
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	PartnerRepo    repository.PartnerRepository
	BookingRepo    repository.BookingRepository
	CommissionRepo repository.CommissionRepository
	CentreRepo     repository.CentreRepository
	SettingsRepo   repository.SettingsRepository
}
