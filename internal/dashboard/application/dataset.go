package application

import (
	"context"

	"github.com/salon-id/hair-design-review/api/internal/analytics"
	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// dataset は美容師とアンケートのスナップショットを画像ファイル名で突き合わせたもの。
// アンケート側の画像ファイル名が美容師側と一致したものだけが紐づく
// （重複キーは検証しない。同名が複数いれば双方に同じレビュー群が付く）。
type dataset struct {
	stylists []domain.StylistRecord
	reviews  []domain.ReviewRecord
	byImage  map[string][]domain.ReviewRecord
}

func loadDataset(ctx context.Context, stylists StylistRepository, reviews ReviewRepository) (*dataset, error) {
	stylistRecords, err := stylists.All(ctx)
	if err != nil {
		return nil, err
	}
	reviewRecords, err := reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	byImage := make(map[string][]domain.ReviewRecord)
	for _, review := range reviewRecords {
		byImage[review.ImageFile] = append(byImage[review.ImageFile], review)
	}
	return &dataset{
		stylists: stylistRecords,
		reviews:  reviewRecords,
		byImage:  byImage,
	}, nil
}

func (d *dataset) reviewsFor(stylist domain.StylistRecord) []domain.ReviewRecord {
	return d.byImage[stylist.ImageFile]
}

// summaries は美容師の登録順を保ったままの集計サマリー一覧。
func (d *dataset) summaries() []analytics.StylistStats {
	stats := make([]analytics.StylistStats, 0, len(d.stylists))
	for _, stylist := range d.stylists {
		stats = append(stats, analytics.Summarize(stylist, d.reviewsFor(stylist)))
	}
	return stats
}

func (d *dataset) findByImageFile(imageFile string) (domain.StylistRecord, bool) {
	for _, stylist := range d.stylists {
		if stylist.ImageFile == imageFile {
			return stylist, true
		}
	}
	return domain.StylistRecord{}, false
}

// reviewCounts は summaries と同順のレビュー件数リスト。Rank 計算に使う。
func reviewCounts(stats []analytics.StylistStats) []int {
	counts := make([]int, 0, len(stats))
	for _, s := range stats {
		counts = append(counts, s.ReviewCount)
	}
	return counts
}
