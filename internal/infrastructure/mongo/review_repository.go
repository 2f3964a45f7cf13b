package mongo

import (
	"context"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepository implements application.ReviewRepository using MongoDB.
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

// All は取り込み順（Seq 昇順）で全アンケートを返す。
func (r *ReviewRepository) All(ctx context.Context) ([]domain.ReviewRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.ReviewRecord, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, domain.ReviewRecord{
			Age:           doc.Age,
			Prefecture:    doc.Prefecture,
			Gender:        doc.Gender,
			MaritalStatus: doc.MaritalStatus,
			HasChildren:   doc.HasChildren,
			Occupation:    doc.Occupation,
			WomanType:     doc.WomanType,
			ImageFile:     doc.ImageFile,
			Comment:       doc.Comment,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
