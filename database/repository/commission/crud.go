package commissionRepo

import (
	"context"
	"errors"
	"time"

	"lablink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrCommissionNotFound is returned when no commission matches the query.
var ErrCommissionNotFound = errors.New("commission not found")

func (r *mongoCommissionRepo) GetByID(ctx context.Context, id string) (*models.Commission, error) {
	var commission models.Commission
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&commission)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommissionNotFound
		}
		return nil, err
	}
	return &commission, nil
}

func (r *mongoCommissionRepo) GetByPartnerID(ctx context.Context, partnerID string) ([]models.Commission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"partner_id": partnerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var commissions []models.Commission
	if err := cursor.All(ctx, &commissions); err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *mongoCommissionRepo) GetByStatus(ctx context.Context, status string) ([]models.Commission, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var commissions []models.Commission
	if err := cursor.All(ctx, &commissions); err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *mongoCommissionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	fields := bson.M{"status": status}
	if status == models.CommissionStatusPaid {
		now := time.Now()
		fields["paid_at"] = now
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCommissionNotFound
	}
	return nil
}

func (r *mongoCommissionRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}
