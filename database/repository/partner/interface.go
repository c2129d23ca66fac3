package partnerRepo

import (
	"context"

	"lablink/database"
	"lablink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PartnerRepository defines methods for partner data access.
type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	GetByID(ctx context.Context, id string) (*models.Partner, error)
	GetByEmail(ctx context.Context, email string) (*models.Partner, error)
	GetAll(ctx context.Context) ([]models.Partner, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	Count(ctx context.Context) (int64, error)
}

type mongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo returns a PartnerRepository backed by MongoDB.
func NewMongoPartnerRepo() PartnerRepository {
	return &mongoPartnerRepo{coll: database.DB().Collection("partners")}
}
