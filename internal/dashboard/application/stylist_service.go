package application

import (
	"context"
	"strings"

	"github.com/salon-id/hair-design-review/api/internal/analytics"
	"github.com/salon-id/hair-design-review/api/internal/domain"
)

type stylistService struct {
	stylists StylistRepository
	reviews  ReviewRepository
}

// NewStylistService は美容師本人向け分析サービスを返す。
func NewStylistService(stylists StylistRepository, reviews ReviewRepository) StylistService {
	return &stylistService{stylists: stylists, reviews: reviews}
}

func (s *stylistService) Dashboard(ctx context.Context, email string) (*StylistDashboard, error) {
	data, stylist, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}
	reviews := data.reviewsFor(*stylist)

	topPersona, _, _ := analytics.TopCategory(reviews, analytics.StrictPersonaKey)
	rows, matrix := analytics.CrossTab(reviews, analytics.StrictOccupationKey, analytics.StrictPersonaKey, 6, domain.PersonaTags)

	return &StylistDashboard{
		Stylist:          *stylist,
		ReviewCount:      len(reviews),
		TopPersona:       topPersona,
		DecadeBrackets:   analytics.BucketAges(reviews, analytics.DecadeBrackets),
		FiveYearBrackets: analytics.BucketAges(reviews, analytics.FiveYearBrackets),
		Personas:         analytics.GroupCount(reviews, analytics.PersonaKey),
		Marital:          analytics.GroupCount(reviews, analytics.MaritalKey),
		Children:         analytics.GroupCount(reviews, analytics.ChildrenKey),
		Occupations:      analytics.GroupCount(reviews, analytics.OccupationKey),
		CrossRows:        rows,
		CrossTab:         matrix,
	}, nil
}

// Comparison は本人の実績を所属サロンの平均と並べる。
// サロン平均には本人も含む（母数から除外しない）。
func (s *stylistService) Comparison(ctx context.Context, email string) (*SalonComparison, error) {
	data, stylist, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}

	stats := analytics.Summarize(*stylist, data.reviewsFor(*stylist))

	salonStylists := 0
	salonReviewTotal := 0
	salonReviews := make([]domain.ReviewRecord, 0)
	salonCounts := make([]int, 0)
	for _, other := range data.stylists {
		if other.Salon != stylist.Salon {
			continue
		}
		reviews := data.reviewsFor(other)
		salonStylists++
		salonReviewTotal += len(reviews)
		salonReviews = append(salonReviews, reviews...)
		salonCounts = append(salonCounts, len(reviews))
	}

	avgReviews := 0.0
	if salonStylists > 0 {
		avgReviews = float64(salonReviewTotal) / float64(salonStylists)
	}
	avgAge, hasAvgAge := analytics.AverageAge(salonReviews)

	return &SalonComparison{
		Stats:           stats,
		SalonStylists:   salonStylists,
		SalonAvgReviews: avgReviews,
		SalonAvgAge:     avgAge,
		HasSalonAvgAge:  hasAvgAge,
		ReviewCountRank: analytics.Rank(salonCounts, stats.ReviewCount),
	}, nil
}

func (s *stylistService) Reviews(ctx context.Context, email string) ([]domain.ReviewRecord, error) {
	data, stylist, err := s.load(ctx, email)
	if err != nil {
		return nil, err
	}
	return data.reviewsFor(*stylist), nil
}

func (s *stylistService) load(ctx context.Context, email string) (*dataset, *domain.StylistRecord, error) {
	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	for i := range data.stylists {
		if strings.ToLower(data.stylists[i].Email) == normalized {
			return data, &data.stylists[i], nil
		}
	}
	return nil, nil, ErrStylistNotFound
}
