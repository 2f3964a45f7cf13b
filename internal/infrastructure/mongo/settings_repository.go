package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ownerSettingsID = "owner"

// SettingsRepository implements application.SettingsRepository using MongoDB.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new Mongo-backed settings repository.
func NewSettingsRepository(db *mongo.Database, collectionName string) *SettingsRepository {
	return &SettingsRepository{collection: db.Collection(collectionName)}
}

// OwnerEmail は設定済みのオーナーメールを返す。未設定は空文字。
func (r *SettingsRepository) OwnerEmail(ctx context.Context) (string, error) {
	var doc SettingsDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": ownerSettingsID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.OwnerEmail, nil
}

// SetOwnerEmail はオーナーメールを upsert で保存する。
func (r *SettingsRepository) SetOwnerEmail(ctx context.Context, email string) error {
	update := bson.M{"$set": bson.M{
		"ownerEmail": email,
		"updatedAt":  time.Now().UTC(),
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": ownerSettingsID}, update, options.Update().SetUpsert(true))
	return err
}
