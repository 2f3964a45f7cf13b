package ingest

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// Store は取り込み結果の永続化先。コレクション単位の全置換と
// 列マッピングの読み書きだけを要求する。
type Store interface {
	ReplaceStylists(ctx context.Context, stylists []domain.StylistRecord) error
	ReplaceReviews(ctx context.Context, reviews []domain.ReviewRecord) error
	ReplaceImages(ctx context.Context, images map[string]string) error
	ColumnMapping(ctx context.Context, kind Kind) (map[string]string, error)
	SaveColumnMapping(ctx context.Context, kind Kind, mapping map[string]string) error
}

// Pipeline はアップロードされた CSV / ZIP を正規化済みコレクションへ変換する。
// 同一種別の取り込みは種別ごとのミューテックスで直列化し、
// 全置換書き込み同士の競合（後勝ち上書き）を防ぐ。
type Pipeline struct {
	store  Store
	logger *log.Logger

	mu sync.Mutex
	// kind ごとのロック。取り込み中に別種別が待たされないよう分離する。
	kindLocks map[Kind]*sync.Mutex
}

// NewPipeline は永続化先とロガーを束縛したパイプラインを構築する。
func NewPipeline(store Store, logger *log.Logger) *Pipeline {
	return &Pipeline{
		store:     store,
		logger:    logger,
		kindLocks: make(map[Kind]*sync.Mutex),
	}
}

func (p *Pipeline) lock(kind Kind) func() {
	p.mu.Lock()
	lock, ok := p.kindLocks[kind]
	if !ok {
		lock = &sync.Mutex{}
		p.kindLocks[kind] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// IngestStylists は美容師 CSV を取り込み、登録件数を返す。
// 成功時は既存コレクションを丸ごと置き換える（マージはしない）。
func (p *Pipeline) IngestStylists(ctx context.Context, r io.Reader) (int, error) {
	unlock := p.lock(KindStylist)
	defer unlock()

	rows, mapping, err := p.parseWithMapping(ctx, r, KindStylist, StylistFieldSpecs())
	if err != nil {
		return 0, err
	}

	stylists := make([]domain.StylistRecord, 0, len(rows))
	for _, row := range rows {
		if stylist, ok := NormalizeStylist(row, mapping); ok {
			stylists = append(stylists, stylist)
		}
	}
	if len(stylists) == 0 {
		return 0, &EmptyResultError{Kind: KindStylist}
	}

	if err := p.store.ReplaceStylists(ctx, stylists); err != nil {
		return 0, err
	}
	p.logger.Printf("%d 名の美容師データを登録しました", len(stylists))
	return len(stylists), nil
}

// IngestReviews はアンケート CSV を取り込み、登録件数を返す。
func (p *Pipeline) IngestReviews(ctx context.Context, r io.Reader) (int, error) {
	unlock := p.lock(KindReview)
	defer unlock()

	rows, mapping, err := p.parseWithMapping(ctx, r, KindReview, ReviewFieldSpecs())
	if err != nil {
		return 0, err
	}

	reviews := make([]domain.ReviewRecord, 0, len(rows))
	for _, row := range rows {
		if review, ok := NormalizeReview(row, mapping); ok {
			reviews = append(reviews, review)
		}
	}
	if len(reviews) == 0 {
		return 0, &EmptyResultError{Kind: KindReview}
	}

	if err := p.store.ReplaceReviews(ctx, reviews); err != nil {
		return 0, err
	}
	p.logger.Printf("%d 件のアンケートデータを登録しました", len(reviews))
	return len(reviews), nil
}

// IngestImageArchive は ZIP アーカイブを取り込み、保存した画像数を返す。
func (p *Pipeline) IngestImageArchive(ctx context.Context, r io.ReaderAt, size int64) (int, error) {
	unlock := p.lock(KindImage)
	defer unlock()

	images, err := ExtractImages(r, size)
	if err != nil {
		return 0, &ParseError{Kind: KindImage, Err: err}
	}
	if len(images) == 0 {
		return 0, &EmptyResultError{Kind: KindImage}
	}

	if err := p.store.ReplaceImages(ctx, images); err != nil {
		return 0, err
	}
	p.logger.Printf("%d 個の画像をアップロードしました", len(images))
	return len(images), nil
}

// parseWithMapping は CSV を行へ展開し、保存済みの手動マッピングが無ければ
// ヘッダーから自動検出したマッピングを保存したうえで返す。
func (p *Pipeline) parseWithMapping(ctx context.Context, r io.Reader, kind Kind, specs []FieldSpec) ([]RawRow, map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &ParseError{Kind: kind, Err: err}
	}

	headers, rows, err := ParseRows(data)
	if err != nil {
		return nil, nil, &ParseError{Kind: kind, Err: err}
	}

	mapping, err := p.store.ColumnMapping(ctx, kind)
	if err != nil {
		return nil, nil, err
	}
	if len(mapping) == 0 {
		mapping = DetectMapping(headers, specs)
		if err := p.store.SaveColumnMapping(ctx, kind, mapping); err != nil {
			p.logger.Printf("列マッピングの保存に失敗しました kind=%s err=%v", kind, err)
		}
	}
	return rows, mapping, nil
}
