package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StylistDocument は MongoDB 上での美容師スキーマを Go 構造体として表現したもの。
// Seq は CSV の行順。全置換で書き込むため、読み出し時は Seq 昇順で取り込み順を復元する。
type StylistDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Seq       int                `bson:"seq"`
	Name      string             `bson:"name"`
	Salon     string             `bson:"salon"`
	Email     string             `bson:"email"`
	TargetAge string             `bson:"targetAge"`
	ImageFile string             `bson:"imageFile"`
}

// ReviewDocument はアンケート回答 1 件分のスキーマ。全フィールド文字列のまま保持する。
type ReviewDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Seq           int                `bson:"seq"`
	Age           string             `bson:"age"`
	Prefecture    string             `bson:"prefecture"`
	Gender        string             `bson:"gender"`
	MaritalStatus string             `bson:"maritalStatus"`
	HasChildren   string             `bson:"hasChildren"`
	Occupation    string             `bson:"occupation"`
	WomanType     string             `bson:"womanType"`
	ImageFile     string             `bson:"imageFile"`
	Comment       string             `bson:"comment"`
}

// ImageDocument はアップロード画像 1 枚分。Name はアーカイブ内のベースファイル名。
type ImageDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	DataURL string             `bson:"dataURL"`
}

// ColumnMappingDocument はアップロード種別ごとの手動列マッピング。
type ColumnMappingDocument struct {
	Kind      string            `bson:"_id"`
	Mapping   map[string]string `bson:"mapping"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}

// GalleryDesignDocument はデザインギャラリーの 1 作品。
type GalleryDesignDocument struct {
	ID       string                  `bson:"_id"`
	Title    string                  `bson:"title"`
	Image    string                  `bson:"image"`
	Category string                  `bson:"category"`
	Rating   float64                 `bson:"rating"`
	Views    int                     `bson:"views"`
	Reviews  []GalleryReviewDocument `bson:"reviews,omitempty"`
}

// GalleryReviewDocument はギャラリー経由のレビュー 1 件分。
type GalleryReviewDocument struct {
	ID        string    `bson:"id"`
	Author    string    `bson:"author"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"createdAt"`
}

// SettingsDocument はダッシュボード全体の設定。現状はオーナーメールのみ。
type SettingsDocument struct {
	ID         string    `bson:"_id"`
	OwnerEmail string    `bson:"ownerEmail"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}
