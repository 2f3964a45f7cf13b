package application

import (
	"context"
	"strings"
	"testing"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStylistRepo struct {
	stylists []domain.StylistRecord
}

func (r *fakeStylistRepo) All(_ context.Context) ([]domain.StylistRecord, error) {
	return r.stylists, nil
}

func (r *fakeStylistRepo) FindByEmail(_ context.Context, email string) (*domain.StylistRecord, error) {
	for i := range r.stylists {
		if strings.EqualFold(r.stylists[i].Email, email) {
			return &r.stylists[i], nil
		}
	}
	return nil, nil
}

type fakeReviewRepo struct {
	reviews []domain.ReviewRecord
}

func (r *fakeReviewRepo) All(_ context.Context) ([]domain.ReviewRecord, error) {
	return r.reviews, nil
}

func testStylists() []domain.StylistRecord {
	return []domain.StylistRecord{
		{Name: "佐藤 美咲", Salon: "salon mira", Email: "misaki@example.com", TargetAge: "27", ImageFile: "misaki.jpg"},
		{Name: "鈴木 葵", Salon: "salon mira", Email: "aoi@example.com", TargetAge: "31", ImageFile: "aoi.jpg"},
		{Name: "高橋 凛", Salon: "atelier rin", Email: "rin@example.com", TargetAge: "24", ImageFile: "rin.jpg"},
	}
}

func testReviews() []domain.ReviewRecord {
	return []domain.ReviewRecord{
		{Age: "24", Occupation: "会社員", WomanType: "カジュアル", MaritalStatus: "未婚", HasChildren: "なし", ImageFile: "misaki.jpg"},
		{Age: "26", Occupation: "会社員", WomanType: "カジュアル", MaritalStatus: "既婚", HasChildren: "あり", ImageFile: "misaki.jpg"},
		{Age: "33", Occupation: "主婦", WomanType: "フェミニン", MaritalStatus: "既婚", HasChildren: "あり", ImageFile: "misaki.jpg"},
		{Age: "29", Occupation: "自営業", WomanType: "エレガント", MaritalStatus: "未婚", HasChildren: "なし", ImageFile: "aoi.jpg"},
		{Age: "41", Occupation: "会社員", WomanType: "スタイリッシュ", MaritalStatus: "既婚", HasChildren: "あり", ImageFile: "aoi.jpg"},
		// 美容師に紐づかないレビュー。全体集計には含まれる。
		{Age: "22", Occupation: "学生", WomanType: "カジュアル", ImageFile: "unknown.jpg"},
	}
}

func newTestOwnerService() OwnerService {
	return NewOwnerService(
		&fakeStylistRepo{stylists: testStylists()},
		&fakeReviewRepo{reviews: testReviews()},
	)
}

func TestOwnerOverview(t *testing.T) {
	overview, err := newTestOwnerService().Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalStylists)
	assert.Equal(t, 6, overview.TotalReviews)
	assert.InDelta(t, 2.0, overview.AvgReviewsPerStylist, 0.001)
	assert.Equal(t, 2, overview.SalonCount)
	assert.Equal(t, 2, overview.SalonDistribution.Get("salon mira"))
	assert.Equal(t, 1, overview.SalonDistribution.Get("atelier rin"))

	// レビュー件数の降順
	require.Len(t, overview.TopStylists, 3)
	assert.Equal(t, "佐藤 美咲", overview.TopStylists[0].Stylist.Name)
	assert.Equal(t, 3, overview.TopStylists[0].ReviewCount)
	assert.Equal(t, "高橋 凛", overview.TopStylists[2].Stylist.Name)

	assert.Equal(t, 3, overview.PersonaDistribution.Get("カジュアル"))
	assert.Equal(t, 2, overview.AgeBrackets.Get("20~24歳"))
}

func TestOwnerStaffList(t *testing.T) {
	service := newTestOwnerService()

	t.Run("既定はレビュー件数の降順", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{})
		require.NoError(t, err)
		require.Len(t, stats, 3)
		assert.Equal(t, "佐藤 美咲", stats[0].Stylist.Name)
		assert.Equal(t, "鈴木 葵", stats[1].Stylist.Name)
	})

	t.Run("キーワードは氏名とサロン名の両方に効く", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{Keyword: "atelier"})
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "高橋 凛", stats[0].Stylist.Name)
	})

	t.Run("キーワードは大文字小文字を無視する", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{Keyword: "MIRA"})
		require.NoError(t, err)
		assert.Len(t, stats, 2)
	})

	t.Run("サロンで絞り込める", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{Salon: "salon mira"})
		require.NoError(t, err)
		assert.Len(t, stats, 2)
	})

	t.Run("limit で上位だけに絞る", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, "佐藤 美咲", stats[0].Stylist.Name)
	})

	t.Run("limit が 0 以下なら無制限", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{Limit: 0})
		require.NoError(t, err)
		assert.Len(t, stats, 3)
	})

	t.Run("名前順ソート", func(t *testing.T) {
		stats, err := service.StaffList(context.Background(), StaffFilter{Sort: "name"})
		require.NoError(t, err)
		require.Len(t, stats, 3)
		assert.Equal(t, "佐藤 美咲", stats[0].Stylist.Name)
		assert.Equal(t, "高橋 凛", stats[1].Stylist.Name)
		assert.Equal(t, "鈴木 葵", stats[2].Stylist.Name)
	})
}

func TestOwnerStaffDetail(t *testing.T) {
	service := newTestOwnerService()

	t.Run("統計と順位と最新レビューを返す", func(t *testing.T) {
		detail, err := service.StaffDetail(context.Background(), "misaki.jpg")
		require.NoError(t, err)

		assert.Equal(t, 3, detail.Stats.ReviewCount)
		assert.Equal(t, 1, detail.Rank)
		require.Len(t, detail.LatestReviews, 3)
		// 保存順の末尾が先頭に来る
		assert.Equal(t, "33", detail.LatestReviews[0].Age)
		assert.NotEmpty(t, detail.Insights)
	})

	t.Run("画像ファイル名が一致しなければ ErrStylistNotFound", func(t *testing.T) {
		_, err := service.StaffDetail(context.Background(), "nobody.jpg")
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})
}

func TestOwnerCompare(t *testing.T) {
	service := newTestOwnerService()

	t.Run("2名から4名の範囲外は ErrComparisonSelection", func(t *testing.T) {
		_, err := service.Compare(context.Background(), []string{"misaki.jpg"})
		assert.ErrorIs(t, err, ErrComparisonSelection)

		_, err = service.Compare(context.Background(), []string{"a", "b", "c", "d", "e"})
		assert.ErrorIs(t, err, ErrComparisonSelection)
	})

	t.Run("未知の画像ファイル名は ErrStylistNotFound", func(t *testing.T) {
		_, err := service.Compare(context.Background(), []string{"misaki.jpg", "nobody.jpg"})
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})

	t.Run("ターゲット年齢との差と最多職業を計算する", func(t *testing.T) {
		entries, err := service.Compare(context.Background(), []string{"misaki.jpg", "aoi.jpg"})
		require.NoError(t, err)
		require.Len(t, entries, 2)

		misaki := entries[0]
		require.True(t, misaki.HasAgeDiff)
		// 顧客平均 (24+26+33)/3 とターゲット 27 の差
		assert.InDelta(t, 2.0/3.0, misaki.AgeDiff, 0.001)
		assert.Equal(t, "会社員", misaki.TopOccupation)
	})
}

func TestOwnerDemographics(t *testing.T) {
	service := newTestOwnerService()

	t.Run("指定なしは全レビューが対象", func(t *testing.T) {
		demo, err := service.Demographics(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, 3, demo.Occupations.Get("会社員"))
		assert.Equal(t, 1, demo.Occupations.Get("学生"))
		assert.Equal(t, 1, demo.Marital.Get(domain.NoAnswerLabel))
		assert.Contains(t, demo.CrossRows, "会社員")
		assert.Equal(t, 2, demo.CrossTab["会社員"]["カジュアル"])
	})

	t.Run("画像ファイル名指定で1名分に絞る", func(t *testing.T) {
		demo, err := service.Demographics(context.Background(), "aoi.jpg")
		require.NoError(t, err)

		assert.Equal(t, 1, demo.Occupations.Get("会社員"))
		assert.Equal(t, 0, demo.Occupations.Get("主婦"))
	})

	t.Run("未知の画像ファイル名は ErrStylistNotFound", func(t *testing.T) {
		_, err := service.Demographics(context.Background(), "nobody.jpg")
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})
}

func TestOwnerHighlights(t *testing.T) {
	highlights, err := newTestOwnerService().Highlights(context.Background())
	require.NoError(t, err)

	require.Len(t, highlights.TopPerformers, 2)
	assert.Equal(t, "佐藤 美咲", highlights.TopPerformers[0].Stylist.Name)
	assert.Equal(t, 3, highlights.TopPerformers[0].Count)

	// 20代のレビューを持つのは misaki(24,26) と aoi(29)
	require.Len(t, highlights.Twenties, 2)
	assert.Equal(t, "佐藤 美咲", highlights.Twenties[0].Stylist.Name)
	assert.Equal(t, 2, highlights.Twenties[0].Count)

	// 30代は misaki(33) と aoi は 41 なので misaki のみ
	require.Len(t, highlights.Thirties, 1)
	assert.Equal(t, "佐藤 美咲", highlights.Thirties[0].Stylist.Name)

	// 子供ありは misaki 2 件、aoi 1 件
	require.Len(t, highlights.Moms, 2)
	assert.Equal(t, 2, highlights.Moms[0].Count)

	// 女性像タグごとの内訳。件数 0 の美容師は現れない
	casual := highlights.ByPersona["カジュアル"]
	require.Len(t, casual, 1)
	assert.Equal(t, "佐藤 美咲", casual[0].Stylist.Name)
}
