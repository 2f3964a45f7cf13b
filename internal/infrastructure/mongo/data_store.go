package mongo

import (
	"context"
	"time"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"github.com/salon-id/hair-design-review/api/internal/ingest"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DataStore implements ingest.Store and the admin status/mapping ports using MongoDB.
// DataStore は取り込みパイプラインの永続化先と管理画面のステータス参照を兼ねる。
// 全置換は同一コレクションへの DeleteMany + InsertMany で、トランザクションは使わない
// （取り込み側の種別ロックが同時書き込みを防いでいる前提）。
type DataStore struct {
	stylists *mongo.Collection
	reviews  *mongo.Collection
	images   *mongo.Collection
	mappings *mongo.Collection
}

// NewDataStore creates a Mongo-backed data store over the managed collections.
func NewDataStore(db *mongo.Database, stylistCollection, reviewCollection, imageCollection, mappingCollection string) *DataStore {
	return &DataStore{
		stylists: db.Collection(stylistCollection),
		reviews:  db.Collection(reviewCollection),
		images:   db.Collection(imageCollection),
		mappings: db.Collection(mappingCollection),
	}
}

// ReplaceStylists は美容師コレクションを丸ごと差し替える。
func (s *DataStore) ReplaceStylists(ctx context.Context, stylists []domain.StylistRecord) error {
	docs := make([]any, 0, len(stylists))
	for i, stylist := range stylists {
		docs = append(docs, StylistDocument{
			Seq:       i,
			Name:      stylist.Name,
			Salon:     stylist.Salon,
			Email:     stylist.Email,
			TargetAge: stylist.TargetAge,
			ImageFile: stylist.ImageFile,
		})
	}
	return s.replaceAll(ctx, s.stylists, docs)
}

// ReplaceReviews はアンケートコレクションを丸ごと差し替える。
func (s *DataStore) ReplaceReviews(ctx context.Context, reviews []domain.ReviewRecord) error {
	docs := make([]any, 0, len(reviews))
	for i, review := range reviews {
		docs = append(docs, ReviewDocument{
			Seq:           i,
			Age:           review.Age,
			Prefecture:    review.Prefecture,
			Gender:        review.Gender,
			MaritalStatus: review.MaritalStatus,
			HasChildren:   review.HasChildren,
			Occupation:    review.Occupation,
			WomanType:     review.WomanType,
			ImageFile:     review.ImageFile,
			Comment:       review.Comment,
		})
	}
	return s.replaceAll(ctx, s.reviews, docs)
}

// ReplaceImages は画像コレクションを丸ごと差し替える。
func (s *DataStore) ReplaceImages(ctx context.Context, images map[string]string) error {
	docs := make([]any, 0, len(images))
	for name, dataURL := range images {
		docs = append(docs, ImageDocument{Name: name, DataURL: dataURL})
	}
	return s.replaceAll(ctx, s.images, docs)
}

func (s *DataStore) replaceAll(ctx context.Context, collection *mongo.Collection, docs []any) error {
	if _, err := collection.DeleteMany(ctx, bson.D{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}

// ColumnMapping は保存済みの手動マッピングを返す。未保存なら空マップ。
func (s *DataStore) ColumnMapping(ctx context.Context, kind ingest.Kind) (map[string]string, error) {
	var doc ColumnMappingDocument
	err := s.mappings.FindOne(ctx, bson.M{"_id": string(kind)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Mapping == nil {
		return map[string]string{}, nil
	}
	return doc.Mapping, nil
}

// SaveColumnMapping は種別ごとのマッピングを upsert で保存する。
func (s *DataStore) SaveColumnMapping(ctx context.Context, kind ingest.Kind, mapping map[string]string) error {
	update := bson.M{"$set": bson.M{
		"mapping":   mapping,
		"updatedAt": time.Now().UTC(),
	}}
	_, err := s.mappings.UpdateOne(ctx, bson.M{"_id": string(kind)}, update, options.Update().SetUpsert(true))
	return err
}

func (s *DataStore) CountStylists(ctx context.Context) (int64, error) {
	return s.stylists.CountDocuments(ctx, bson.D{})
}

func (s *DataStore) CountReviews(ctx context.Context) (int64, error) {
	return s.reviews.CountDocuments(ctx, bson.D{})
}

func (s *DataStore) CountImages(ctx context.Context) (int64, error) {
	return s.images.CountDocuments(ctx, bson.D{})
}

// ClearAll は管理対象コレクション（美容師・アンケート・画像・列マッピング）を空にする。
func (s *DataStore) ClearAll(ctx context.Context) error {
	for _, collection := range []*mongo.Collection{s.stylists, s.reviews, s.images, s.mappings} {
		if _, err := collection.DeleteMany(ctx, bson.D{}); err != nil {
			return err
		}
	}
	return nil
}
