package centreRepo

import (
	"context"

	"lablink/database"
	"lablink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CentreRepository defines methods for diagnostic centre and centre pricing access.
type CentreRepository interface {
	Create(ctx context.Context, centre *models.DiagnosticCentre) error
	GetByID(ctx context.Context, id string) (*models.DiagnosticCentre, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.DiagnosticCentre, error)
	UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	CreatePricing(ctx context.Context, pricing *models.CentrePricing) error
	GetPricingByCentre(ctx context.Context, centreID string) ([]models.CentrePricing, error)
	DeletePricing(ctx context.Context, id string) error
}

type mongoCentreRepo struct {
	centreColl  *mongo.Collection
	pricingColl *mongo.Collection
}

// NewMongoCentreRepo returns a CentreRepository backed by MongoDB.
func NewMongoCentreRepo() CentreRepository {
	db := database.DB()
	return &mongoCentreRepo{
		centreColl:  db.Collection("diagnostic_centres"),
		pricingColl: db.Collection("centre_pricing"),
	}
}
