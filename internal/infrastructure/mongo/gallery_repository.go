package mongo

import (
	"context"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GalleryRepository implements application.GalleryRepository using MongoDB.
type GalleryRepository struct {
	collection *mongo.Collection
}

// NewGalleryRepository creates a new Mongo-backed gallery repository.
func NewGalleryRepository(db *mongo.Database, collectionName string) *GalleryRepository {
	return &GalleryRepository{collection: db.Collection(collectionName)}
}

// Designs は登録済みの全デザインを返す。
func (r *GalleryRepository) Designs(ctx context.Context) ([]domain.GalleryDesign, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	designs := make([]domain.GalleryDesign, 0)
	for cursor.Next(ctx) {
		var doc GalleryDesignDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		designs = append(designs, mapGalleryDesignDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return designs, nil
}

// FindDesign は ID からデザインを 1 件返す。該当なしは (nil, nil)。
func (r *GalleryRepository) FindDesign(ctx context.Context, id string) (*domain.GalleryDesign, error) {
	var doc GalleryDesignDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	design := mapGalleryDesignDocument(doc)
	return &design, nil
}

// AppendReview はレビューを追記し、再計算済みの平均評価を同時に書き込む。
func (r *GalleryRepository) AppendReview(ctx context.Context, designID string, review domain.GalleryReview, rating float64) error {
	update := bson.M{
		"$push": bson.M{"reviews": GalleryReviewDocument{
			ID:        review.ID,
			Author:    review.Author,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}},
		"$set": bson.M{"rating": rating},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": designID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func mapGalleryDesignDocument(doc GalleryDesignDocument) domain.GalleryDesign {
	reviews := make([]domain.GalleryReview, 0, len(doc.Reviews))
	for _, review := range doc.Reviews {
		reviews = append(reviews, domain.GalleryReview{
			ID:        review.ID,
			Author:    review.Author,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	return domain.GalleryDesign{
		ID:       doc.ID,
		Title:    doc.Title,
		Image:    doc.Image,
		Category: doc.Category,
		Rating:   doc.Rating,
		Views:    doc.Views,
		Reviews:  reviews,
	}
}
