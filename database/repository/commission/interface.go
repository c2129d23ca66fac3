package commissionRepo

import (
	"context"

	"lablink/database"
	"lablink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CommissionRepository defines methods for commission data access.
type CommissionRepository interface {
	GetByID(ctx context.Context, id string) (*models.Commission, error)
	GetByPartnerID(ctx context.Context, partnerID string) ([]models.Commission, error)
	GetByStatus(ctx context.Context, status string) ([]models.Commission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type mongoCommissionRepo struct {
	coll *mongo.Collection
}

// NewMongoCommissionRepo returns a CommissionRepository backed by MongoDB.
func NewMongoCommissionRepo() CommissionRepository {
	return &mongoCommissionRepo{coll: database.DB().Collection("commissions")}
}
