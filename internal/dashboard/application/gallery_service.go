package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// ErrInvalidRating は 1〜5 の範囲外の評価を表す。
var ErrInvalidRating = errors.New("評価は1から5で指定してください")

// ErrEmptyComment はコメント未入力を表す。
var ErrEmptyComment = errors.New("コメントを入力してください")

type galleryService struct {
	repo GalleryRepository
}

// NewGalleryService はデザインギャラリーのサービスを返す。
func NewGalleryService(repo GalleryRepository) GalleryService {
	return &galleryService{repo: repo}
}

func (s *galleryService) ListDesigns(ctx context.Context) ([]domain.GalleryDesign, error) {
	return s.repo.Designs(ctx)
}

// AddReview はレビューを追記し、作品の平均評価を再計算して保存する。
// 投稿者メールはマスクした状態でのみ永続化する。
func (s *galleryService) AddReview(ctx context.Context, cmd AddGalleryReviewCommand) (*domain.GalleryReview, error) {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(cmd.Comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}

	design, err := s.repo.FindDesign(ctx, cmd.DesignID)
	if err != nil {
		return nil, err
	}
	if design == nil {
		return nil, ErrDesignNotFound
	}

	review := domain.GalleryReview{
		ID:        uuid.NewString(),
		Author:    domain.MaskEmail(cmd.AuthorEmail),
		Rating:    cmd.Rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	rating := domain.AverageGalleryRating(append(design.Reviews, review))
	if err := s.repo.AppendReview(ctx, design.ID, review, rating); err != nil {
		return nil, err
	}
	return &review, nil
}
