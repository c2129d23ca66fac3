package centreRepo

import (
	"context"
	"errors"
	"time"

	"lablink/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCentreNotFound is returned when no centre matches the query.
var ErrCentreNotFound = errors.New("diagnostic centre not found")

func (r *mongoCentreRepo) Create(ctx context.Context, centre *models.DiagnosticCentre) error {
	if centre.ID == "" {
		centre.ID = uuid.New().String()
	}
	centre.CreatedAt = time.Now()
	centre.UpdatedAt = centre.CreatedAt
	_, err := r.centreColl.InsertOne(ctx, centre)
	return err
}

func (r *mongoCentreRepo) GetByID(ctx context.Context, id string) (*models.DiagnosticCentre, error) {
	var centre models.DiagnosticCentre
	err := r.centreColl.FindOne(ctx, bson.M{"id": id}).Decode(&centre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCentreNotFound
		}
		return nil, err
	}
	return &centre, nil
}

func (r *mongoCentreRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.DiagnosticCentre, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.centreColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var centres []models.DiagnosticCentre
	if err := cursor.All(ctx, &centres); err != nil {
		return nil, err
	}
	return centres, nil
}

func (r *mongoCentreRepo) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	res, err := r.centreColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCentreNotFound
	}
	return nil
}

func (r *mongoCentreRepo) Delete(ctx context.Context, id string) error {
	res, err := r.centreColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCentreNotFound
	}
	return nil
}

func (r *mongoCentreRepo) CreatePricing(ctx context.Context, pricing *models.CentrePricing) error {
	if pricing.ID == "" {
		pricing.ID = uuid.New().String()
	}
	pricing.CreatedAt = time.Now()
	_, err := r.pricingColl.InsertOne(ctx, pricing)
	return err
}

func (r *mongoCentreRepo) GetPricingByCentre(ctx context.Context, centreID string) ([]models.CentrePricing, error) {
	cursor, err := r.pricingColl.Find(ctx, bson.M{"centre_id": centreID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.CentrePricing
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mongoCentreRepo) DeletePricing(ctx context.Context, id string) error {
	res, err := r.pricingColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("pricing row not found")
	}
	return nil
}
