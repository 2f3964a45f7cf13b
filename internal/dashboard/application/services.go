package application

import (
	"context"
	"errors"

	"github.com/salon-id/hair-design-review/api/internal/analytics"
	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// ErrStylistNotFound は該当する美容師が見つからないことを表す。
var ErrStylistNotFound = errors.New("美容師データが見つかりません")

// ErrDesignNotFound は該当するデザインが見つからないことを表す。
var ErrDesignNotFound = errors.New("デザインが見つかりません")

// ErrComparisonSelection は比較対象の選択数が範囲外であることを表す。
var ErrComparisonSelection = errors.New("比較は2名から4名まで選択してください")

// StylistRepository abstracts read access to the stylist collection.
// StylistRepository は閲覧系コンテキストで美容師を読み取るためのポート。
type StylistRepository interface {
	All(ctx context.Context) ([]domain.StylistRecord, error)
	FindByEmail(ctx context.Context, email string) (*domain.StylistRecord, error)
}

// ReviewRepository abstracts read access to the review collection.
type ReviewRepository interface {
	All(ctx context.Context) ([]domain.ReviewRecord, error)
}

// ImageRepository resolves uploaded image data URLs by base file name.
type ImageRepository interface {
	Find(ctx context.Context, name string) (string, error)
}

// GalleryRepository handles design gallery reads/writes.
type GalleryRepository interface {
	Designs(ctx context.Context) ([]domain.GalleryDesign, error)
	FindDesign(ctx context.Context, id string) (*domain.GalleryDesign, error)
	AppendReview(ctx context.Context, designID string, review domain.GalleryReview, rating float64) error
}

// StaffFilter expresses owner-side search criteria over stylists.
// Limit は 0 以下で無制限。
type StaffFilter struct {
	Keyword string
	Salon   string
	Sort    string
	Limit   int
}

// Overview はオーナー向け概況タブのレスポンスモデル。
type Overview struct {
	TotalStylists        int                      `json:"totalStylists"`
	TotalReviews         int                      `json:"totalReviews"`
	AvgReviewsPerStylist float64                  `json:"avgReviewsPerStylist"`
	SalonCount           int                      `json:"salonCount"`
	TopStylists          []analytics.StylistStats `json:"topStylists"`
	SalonDistribution    analytics.Grouping       `json:"salonDistribution"`
	AgeBrackets          analytics.Grouping       `json:"ageBrackets"`
	PersonaDistribution  analytics.Grouping       `json:"personaDistribution"`
}

// StaffDetail はスタッフ詳細タブのレスポンスモデル。
type StaffDetail struct {
	Stats         analytics.StylistStats `json:"stats"`
	Rank          int                    `json:"rank"`
	Insights      []string               `json:"insights"`
	AgeBrackets   analytics.Grouping     `json:"ageBrackets"`
	Personas      analytics.Grouping     `json:"personas"`
	LatestReviews []domain.ReviewRecord  `json:"latestReviews"`
}

// ComparisonEntry は比較タブの 1 名分。
type ComparisonEntry struct {
	Stats         analytics.StylistStats `json:"stats"`
	AgeDiff       float64                `json:"ageDiff"`
	HasAgeDiff    bool                   `json:"hasAgeDiff"`
	TopOccupation string                 `json:"topOccupation"`
}

// Demographics は顧客属性タブのレスポンスモデル。
type Demographics struct {
	AgeBrackets analytics.Grouping        `json:"ageBrackets"`
	Occupations analytics.Grouping        `json:"occupations"`
	Marital     analytics.Grouping        `json:"marital"`
	Children    analytics.Grouping        `json:"children"`
	CrossRows   []string                  `json:"crossRows"`
	CrossTab    map[string]map[string]int `json:"crossTab"`
}

// HighlightEntry は注目スタッフ 1 名分。Count はセグメント内のレビュー件数。
type HighlightEntry struct {
	Stylist domain.StylistRecord `json:"stylist"`
	Count   int                  `json:"count"`
}

// Highlights は注目スタッフタブのレスポンスモデル。
type Highlights struct {
	TopPerformers []HighlightEntry            `json:"topPerformers"`
	Twenties      []HighlightEntry            `json:"twenties"`
	Thirties      []HighlightEntry            `json:"thirties"`
	Working       []HighlightEntry            `json:"working"`
	Moms          []HighlightEntry            `json:"moms"`
	ByPersona     map[string][]HighlightEntry `json:"byPersona"`
}

// StylistDashboard は美容師本人向けダッシュボードのレスポンスモデル。
type StylistDashboard struct {
	Stylist          domain.StylistRecord      `json:"stylist"`
	ReviewCount      int                       `json:"reviewCount"`
	TopPersona       string                    `json:"topPersona"`
	DecadeBrackets   analytics.Grouping        `json:"decadeBrackets"`
	FiveYearBrackets analytics.Grouping        `json:"fiveYearBrackets"`
	Personas         analytics.Grouping        `json:"personas"`
	Marital          analytics.Grouping        `json:"marital"`
	Children         analytics.Grouping        `json:"children"`
	Occupations      analytics.Grouping        `json:"occupations"`
	CrossRows        []string                  `json:"crossRows"`
	CrossTab         map[string]map[string]int `json:"crossTab"`
}

// SalonComparison は所属サロン平均との比較。
type SalonComparison struct {
	Stats           analytics.StylistStats `json:"stats"`
	SalonStylists   int                    `json:"salonStylists"`
	SalonAvgReviews float64                `json:"salonAvgReviews"`
	SalonAvgAge     float64                `json:"salonAvgAge"`
	HasSalonAvgAge  bool                   `json:"hasSalonAvgAge"`
	ReviewCountRank int                    `json:"reviewCountRank"`
}

// OwnerService describes the owner analytics use-cases.
type OwnerService interface {
	Overview(ctx context.Context) (*Overview, error)
	StaffList(ctx context.Context, filter StaffFilter) ([]analytics.StylistStats, error)
	StaffDetail(ctx context.Context, imageFile string) (*StaffDetail, error)
	Compare(ctx context.Context, imageFiles []string) ([]ComparisonEntry, error)
	Demographics(ctx context.Context, imageFile string) (*Demographics, error)
	Highlights(ctx context.Context) (*Highlights, error)
}

// StylistService describes the per-stylist analytics use-cases.
type StylistService interface {
	Dashboard(ctx context.Context, email string) (*StylistDashboard, error)
	Comparison(ctx context.Context, email string) (*SalonComparison, error)
	Reviews(ctx context.Context, email string) ([]domain.ReviewRecord, error)
}

// GalleryService describes the design gallery use-cases.
type GalleryService interface {
	ListDesigns(ctx context.Context) ([]domain.GalleryDesign, error)
	AddReview(ctx context.Context, cmd AddGalleryReviewCommand) (*domain.GalleryReview, error)
}

// AddGalleryReviewCommand captures a signed-in reviewer's input.
type AddGalleryReviewCommand struct {
	DesignID    string
	AuthorEmail string
	Rating      int
	Comment     string
}
