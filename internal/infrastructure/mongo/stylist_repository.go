package mongo

import (
	"context"
	"regexp"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StylistRepository implements application.StylistRepository using MongoDB.
type StylistRepository struct {
	collection *mongo.Collection
}

// NewStylistRepository creates a new Mongo-backed stylist repository.
func NewStylistRepository(db *mongo.Database, collectionName string) *StylistRepository {
	return &StylistRepository{collection: db.Collection(collectionName)}
}

// All は取り込み順（Seq 昇順）で全美容師を返す。
func (r *StylistRepository) All(ctx context.Context) ([]domain.StylistRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stylists := make([]domain.StylistRecord, 0)
	for cursor.Next(ctx) {
		var doc StylistDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stylists = append(stylists, mapStylistDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return stylists, nil
}

// FindByEmail はメールアドレスの大文字小文字を区別せずに 1 件返す。
// 該当なしは (nil, nil)。
func (r *StylistRepository) FindByEmail(ctx context.Context, email string) (*domain.StylistRecord, error) {
	filter := bson.M{"email": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(email) + "$",
		"$options": "i",
	}}
	opts := options.FindOne().SetSort(bson.D{{Key: "seq", Value: 1}})

	var doc StylistDocument
	err := r.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	stylist := mapStylistDocument(doc)
	return &stylist, nil
}

func mapStylistDocument(doc StylistDocument) domain.StylistRecord {
	return domain.StylistRecord{
		Name:      doc.Name,
		Salon:     doc.Salon,
		Email:     doc.Email,
		TargetAge: doc.TargetAge,
		ImageFile: doc.ImageFile,
	}
}
