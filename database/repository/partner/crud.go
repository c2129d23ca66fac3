package partnerRepo

import (
	"context"
	"errors"
	"time"

	"lablink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPartnerNotFound is returned when no partner matches the query.
var ErrPartnerNotFound = errors.New("partner not found")

func (r *mongoPartnerRepo) Create(ctx context.Context, partner *models.Partner) error {
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = partner.CreatedAt
	_, err := r.coll.InsertOne(ctx, partner)
	return err
}

func (r *mongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	var partner models.Partner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *mongoPartnerRepo) GetByEmail(ctx context.Context, email string) (*models.Partner, error) {
	var partner models.Partner
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *mongoPartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// UpdateWithDocument applies a partial update to the partner record.
func (r *mongoPartnerRepo) UpdateWithDocument(ctx context.Context, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

func (r *mongoPartnerRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
