package catalogRepo

import (
	"context"

	"lablink/database"
	"lablink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository defines methods for the bookable service catalog
// (tests, scans and health packages).
type CatalogRepository interface {
	CreateTest(ctx context.Context, test *models.Test) error
	GetTestByID(ctx context.Context, id string) (*models.Test, error)
	GetTests(ctx context.Context, activeOnly bool) ([]models.Test, error)
	UpdateTest(ctx context.Context, id string, fields map[string]any) error
	DeleteTest(ctx context.Context, id string) error

	CreateScan(ctx context.Context, scan *models.Scan) error
	GetScanByID(ctx context.Context, id string) (*models.Scan, error)
	GetScans(ctx context.Context, activeOnly bool) ([]models.Scan, error)
	UpdateScan(ctx context.Context, id string, fields map[string]any) error
	DeleteScan(ctx context.Context, id string) error

	CreatePackage(ctx context.Context, pkg *models.Package) error
	GetPackageByID(ctx context.Context, id string) (*models.Package, error)
	GetPackages(ctx context.Context, activeOnly bool) ([]models.Package, error)
	UpdatePackage(ctx context.Context, id string, fields map[string]any) error
	DeletePackage(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	testColl    *mongo.Collection
	scanColl    *mongo.Collection
	packageColl *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		testColl:    db.Collection("tests"),
		scanColl:    db.Collection("scans"),
		packageColl: db.Collection("packages"),
	}
}
