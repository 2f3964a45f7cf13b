package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "ローカル部3文字以上は先頭2文字を残す", email: "hanako@example.com", want: "ha***@example.com"},
		{name: "ローカル部2文字はそのまま伏せ字を足す", email: "ab@example.com", want: "ab***@example.com"},
		{name: "ローカル部1文字", email: "a@example.com", want: "a***@example.com"},
		{name: "前後の空白は無視する", email: " hanako@example.com ", want: "ha***@example.com"},
		{name: "アットマークが無ければそのまま", email: "not-an-email", want: "not-an-email"},
		{name: "空文字はそのまま", email: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.email))
		})
	}
}

func TestAverageGalleryRating(t *testing.T) {
	t.Run("レビューが無ければ初期評価", func(t *testing.T) {
		assert.Equal(t, DefaultGalleryRating, AverageGalleryRating(nil))
	})

	t.Run("平均を小数1桁へ丸める", func(t *testing.T) {
		reviews := []GalleryReview{{Rating: 4}, {Rating: 5}, {Rating: 5}}
		// 14/3 = 4.666... → 4.7
		assert.InDelta(t, 4.7, AverageGalleryRating(reviews), 0.001)
	})

	t.Run("割り切れる場合はそのまま", func(t *testing.T) {
		reviews := []GalleryReview{{Rating: 4}, {Rating: 5}}
		assert.InDelta(t, 4.5, AverageGalleryRating(reviews), 0.001)
	})
}
