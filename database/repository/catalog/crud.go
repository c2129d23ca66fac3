package catalogRepo

import (
	"context"
	"errors"
	"time"

	"lablink/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrServiceNotFound is returned when no catalog entry matches the query.
var ErrServiceNotFound = errors.New("catalog service not found")

func activeFilter(activeOnly bool) bson.M {
	if activeOnly {
		return bson.M{"active": true}
	}
	return bson.M{}
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, fields map[string]any) error {
	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *mongoCatalogRepo) CreateTest(ctx context.Context, test *models.Test) error {
	if test.ID == "" {
		test.ID = uuid.New().String()
	}
	test.CreatedAt = time.Now()
	_, err := r.testColl.InsertOne(ctx, test)
	return err
}

func (r *mongoCatalogRepo) GetTestByID(ctx context.Context, id string) (*models.Test, error) {
	return findOne[models.Test](ctx, r.testColl, id)
}

func (r *mongoCatalogRepo) GetTests(ctx context.Context, activeOnly bool) ([]models.Test, error) {
	return findAll[models.Test](ctx, r.testColl, activeFilter(activeOnly))
}

func (r *mongoCatalogRepo) UpdateTest(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, r.testColl, id, fields)
}

func (r *mongoCatalogRepo) DeleteTest(ctx context.Context, id string) error {
	return deleteByID(ctx, r.testColl, id)
}

func (r *mongoCatalogRepo) CreateScan(ctx context.Context, scan *models.Scan) error {
	if scan.ID == "" {
		scan.ID = uuid.New().String()
	}
	scan.CreatedAt = time.Now()
	_, err := r.scanColl.InsertOne(ctx, scan)
	return err
}

func (r *mongoCatalogRepo) GetScanByID(ctx context.Context, id string) (*models.Scan, error) {
	return findOne[models.Scan](ctx, r.scanColl, id)
}

func (r *mongoCatalogRepo) GetScans(ctx context.Context, activeOnly bool) ([]models.Scan, error) {
	return findAll[models.Scan](ctx, r.scanColl, activeFilter(activeOnly))
}

func (r *mongoCatalogRepo) UpdateScan(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, r.scanColl, id, fields)
}

func (r *mongoCatalogRepo) DeleteScan(ctx context.Context, id string) error {
	return deleteByID(ctx, r.scanColl, id)
}

func (r *mongoCatalogRepo) CreatePackage(ctx context.Context, pkg *models.Package) error {
	if pkg.ID == "" {
		pkg.ID = uuid.New().String()
	}
	pkg.CreatedAt = time.Now()
	_, err := r.packageColl.InsertOne(ctx, pkg)
	return err
}

func (r *mongoCatalogRepo) GetPackageByID(ctx context.Context, id string) (*models.Package, error) {
	return findOne[models.Package](ctx, r.packageColl, id)
}

func (r *mongoCatalogRepo) GetPackages(ctx context.Context, activeOnly bool) ([]models.Package, error) {
	return findAll[models.Package](ctx, r.packageColl, activeFilter(activeOnly))
}

func (r *mongoCatalogRepo) UpdatePackage(ctx context.Context, id string, fields map[string]any) error {
	return updateByID(ctx, r.packageColl, id, fields)
}

func (r *mongoCatalogRepo) DeletePackage(ctx context.Context, id string) error {
	return deleteByID(ctx, r.packageColl, id)
}
