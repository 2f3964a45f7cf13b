package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ImageRepository implements application.ImageRepository using MongoDB.
type ImageRepository struct {
	collection *mongo.Collection
}

// NewImageRepository creates a new Mongo-backed image repository.
func NewImageRepository(db *mongo.Database, collectionName string) *ImageRepository {
	return &ImageRepository{collection: db.Collection(collectionName)}
}

// Find はベースファイル名から data URL を返す。該当なしは空文字。
func (r *ImageRepository) Find(ctx context.Context, name string) (string, error) {
	var doc ImageDocument
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.DataURL, nil
}
