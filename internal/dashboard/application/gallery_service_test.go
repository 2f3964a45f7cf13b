package application

import (
	"context"
	"testing"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGalleryRepo struct {
	designs []domain.GalleryDesign

	appendedDesignID string
	appendedReview   domain.GalleryReview
	appendedRating   float64
}

func (r *fakeGalleryRepo) Designs(_ context.Context) ([]domain.GalleryDesign, error) {
	return r.designs, nil
}

func (r *fakeGalleryRepo) FindDesign(_ context.Context, id string) (*domain.GalleryDesign, error) {
	for i := range r.designs {
		if r.designs[i].ID == id {
			return &r.designs[i], nil
		}
	}
	return nil, nil
}

func (r *fakeGalleryRepo) AppendReview(_ context.Context, designID string, review domain.GalleryReview, rating float64) error {
	r.appendedDesignID = designID
	r.appendedReview = review
	r.appendedRating = rating
	return nil
}

func TestGalleryAddReview(t *testing.T) {
	newRepo := func() *fakeGalleryRepo {
		return &fakeGalleryRepo{designs: []domain.GalleryDesign{
			{
				ID:     "design-01",
				Title:  "ナチュラルボブ",
				Rating: 4.0,
				Reviews: []domain.GalleryReview{
					{ID: "r1", Author: "ha***@example.com", Rating: 4, Comment: "よかった"},
				},
			},
		}}
	}

	t.Run("範囲外の評価は ErrInvalidRating", func(t *testing.T) {
		service := NewGalleryService(newRepo())
		for _, rating := range []int{0, 6, -1} {
			_, err := service.AddReview(context.Background(), AddGalleryReviewCommand{
				DesignID:    "design-01",
				AuthorEmail: "user@example.com",
				Rating:      rating,
				Comment:     "コメント",
			})
			assert.ErrorIs(t, err, ErrInvalidRating)
		}
	})

	t.Run("空コメントは ErrEmptyComment", func(t *testing.T) {
		service := NewGalleryService(newRepo())
		_, err := service.AddReview(context.Background(), AddGalleryReviewCommand{
			DesignID:    "design-01",
			AuthorEmail: "user@example.com",
			Rating:      5,
			Comment:     "   ",
		})
		assert.ErrorIs(t, err, ErrEmptyComment)
	})

	t.Run("未知のデザインは ErrDesignNotFound", func(t *testing.T) {
		service := NewGalleryService(newRepo())
		_, err := service.AddReview(context.Background(), AddGalleryReviewCommand{
			DesignID:    "missing",
			AuthorEmail: "user@example.com",
			Rating:      5,
			Comment:     "コメント",
		})
		assert.ErrorIs(t, err, ErrDesignNotFound)
	})

	t.Run("投稿者をマスクし平均評価を再計算して保存する", func(t *testing.T) {
		repo := newRepo()
		service := NewGalleryService(repo)

		review, err := service.AddReview(context.Background(), AddGalleryReviewCommand{
			DesignID:    "design-01",
			AuthorEmail: "hanako@example.com",
			Rating:      5,
			Comment:     " 参考になりました ",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, review.ID)
		assert.Equal(t, "ha***@example.com", review.Author)
		assert.Equal(t, "参考になりました", review.Comment)
		assert.False(t, review.CreatedAt.IsZero())

		assert.Equal(t, "design-01", repo.appendedDesignID)
		assert.Equal(t, review.ID, repo.appendedReview.ID)
		// 既存の 4 と今回の 5 の平均
		assert.InDelta(t, 4.5, repo.appendedRating, 0.001)
	})
}

func TestGalleryListDesigns(t *testing.T) {
	repo := &fakeGalleryRepo{designs: []domain.GalleryDesign{
		{ID: "design-01"},
		{ID: "design-02"},
	}}
	designs, err := NewGalleryService(repo).ListDesigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, designs, 2)
}
