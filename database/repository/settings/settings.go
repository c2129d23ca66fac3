package settingsRepo

import (
	"context"
	"errors"
	"time"

	"lablink/database"
	"lablink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSettingNotFound is returned when no setting matches the key.
var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository defines methods for key-addressed configuration documents.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	GetAll(ctx context.Context) ([]models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo returns a SettingsRepository backed by MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &mongoSettingsRepo{coll: database.DB().Collection("settings")}
}

func (r *mongoSettingsRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&setting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *mongoSettingsRepo) GetAll(ctx context.Context) ([]models.Setting, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *mongoSettingsRepo) Upsert(ctx context.Context, setting *models.Setting) error {
	setting.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"key": setting.Key}, setting, opts)
	return err
}
