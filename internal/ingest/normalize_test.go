package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStylist(t *testing.T) {
	t.Run("メールが解決できる行だけ通す", func(t *testing.T) {
		row := RawRow{
			"氏名":       "佐藤 美咲",
			"サロン名":     "salon de mira",
			"メールアドレス": "misaki@example.com",
			"ターゲット年齢": "27",
			"画像ファイル名": "misaki.jpg",
		}
		stylist, ok := NormalizeStylist(row, nil)
		require.True(t, ok)
		assert.Equal(t, "佐藤 美咲", stylist.Name)
		assert.Equal(t, "salon de mira", stylist.Salon)
		assert.Equal(t, "misaki@example.com", stylist.Email)
		assert.Equal(t, "27", stylist.TargetAge)
		assert.Equal(t, "misaki.jpg", stylist.ImageFile)
	})

	t.Run("メールが無い行は除外", func(t *testing.T) {
		row := RawRow{"氏名": "名無し", "サロン名": "salon"}
		_, ok := NormalizeStylist(row, nil)
		assert.False(t, ok)
	})

	t.Run("メール以外の欠落は空文字のまま通す", func(t *testing.T) {
		row := RawRow{"メールアドレス": "only@example.com"}
		stylist, ok := NormalizeStylist(row, nil)
		require.True(t, ok)
		assert.Equal(t, "", stylist.Name)
		assert.Equal(t, "", stylist.ImageFile)
	})
}

func TestNormalizeReview(t *testing.T) {
	t.Run("画像ファイル名が解決できる行だけ通す", func(t *testing.T) {
		row := RawRow{
			"年齢":      "32歳",
			"都道府県":   "東京都",
			"職業":      "会社員",
			"女性像":     "フェミニン",
			"画像ファイル名": "misaki.jpg",
		}
		review, ok := NormalizeReview(row, nil)
		require.True(t, ok)
		// 年齢は文字列のまま保持される
		assert.Equal(t, "32歳", review.Age)
		assert.Equal(t, "東京都", review.Prefecture)
		assert.Equal(t, "フェミニン", review.WomanType)
		assert.Equal(t, "misaki.jpg", review.ImageFile)
	})

	t.Run("画像ファイル名が無い行は除外", func(t *testing.T) {
		row := RawRow{"年齢": "28", "職業": "主婦"}
		_, ok := NormalizeReview(row, nil)
		assert.False(t, ok)
	})
}
