package application

import (
	"context"
	"sort"
	"strings"

	"github.com/salon-id/hair-design-review/api/internal/analytics"
	"github.com/salon-id/hair-design-review/api/internal/domain"
)

type ownerService struct {
	stylists StylistRepository
	reviews  ReviewRepository
}

// NewOwnerService はオーナー向け分析サービスを返す。
func NewOwnerService(stylists StylistRepository, reviews ReviewRepository) OwnerService {
	return &ownerService{stylists: stylists, reviews: reviews}
}

func (s *ownerService) Overview(ctx context.Context) (*Overview, error) {
	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, err
	}

	stats := data.summaries()
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ReviewCount > stats[j].ReviewCount
	})
	top := stats
	if len(top) > 10 {
		top = top[:10]
	}

	avgReviews := 0.0
	if len(data.stylists) > 0 {
		avgReviews = float64(len(data.reviews)) / float64(len(data.stylists))
	}

	salons := make(analytics.Grouping, 0)
	salonIndex := make(map[string]int)
	for _, stylist := range data.stylists {
		if stylist.Salon == "" {
			continue
		}
		if idx, ok := salonIndex[stylist.Salon]; ok {
			salons[idx].Count++
			continue
		}
		salonIndex[stylist.Salon] = len(salons)
		salons = append(salons, analytics.LabelCount{Label: stylist.Salon, Count: 1})
	}

	return &Overview{
		TotalStylists:        len(data.stylists),
		TotalReviews:         len(data.reviews),
		AvgReviewsPerStylist: avgReviews,
		SalonCount:           len(salons),
		TopStylists:          top,
		SalonDistribution:    salons,
		AgeBrackets:          analytics.BucketAges(data.reviews, analytics.FiveYearBrackets),
		PersonaDistribution:  analytics.GroupCount(data.reviews, analytics.PersonaKey),
	}, nil
}

func (s *ownerService) StaffList(ctx context.Context, filter StaffFilter) ([]analytics.StylistStats, error) {
	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, err
	}

	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	stats := make([]analytics.StylistStats, 0, len(data.stylists))
	for _, entry := range data.summaries() {
		if filter.Salon != "" && entry.Stylist.Salon != filter.Salon {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(entry.Stylist.Name), keyword) &&
			!strings.Contains(strings.ToLower(entry.Stylist.Salon), keyword) {
			continue
		}
		stats = append(stats, entry)
	}

	switch filter.Sort {
	case "name":
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].Stylist.Name < stats[j].Stylist.Name
		})
	default:
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].ReviewCount > stats[j].ReviewCount
		})
	}

	if filter.Limit > 0 && len(stats) > filter.Limit {
		stats = stats[:filter.Limit]
	}
	return stats, nil
}

func (s *ownerService) StaffDetail(ctx context.Context, imageFile string) (*StaffDetail, error) {
	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, err
	}

	stylist, ok := data.findByImageFile(imageFile)
	if !ok {
		return nil, ErrStylistNotFound
	}
	reviews := data.reviewsFor(stylist)
	stats := analytics.Summarize(stylist, reviews)

	var insights []string
	if age, ok := analytics.ParseAge(stylist.TargetAge); ok {
		insights = analytics.AgeInsights(age, reviews)
	}

	latest := latestReviews(reviews, 5)

	return &StaffDetail{
		Stats:         stats,
		Rank:          analytics.Rank(reviewCounts(data.summaries()), stats.ReviewCount),
		Insights:      insights,
		AgeBrackets:   analytics.BucketAges(reviews, analytics.FiveYearBrackets),
		Personas:      analytics.GroupCount(reviews, analytics.PersonaKey),
		LatestReviews: latest,
	}, nil
}

func (s *ownerService) Compare(ctx context.Context, imageFiles []string) ([]ComparisonEntry, error) {
	if len(imageFiles) < 2 || len(imageFiles) > 4 {
		return nil, ErrComparisonSelection
	}

	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, err
	}

	entries := make([]ComparisonEntry, 0, len(imageFiles))
	for _, imageFile := range imageFiles {
		stylist, ok := data.findByImageFile(imageFile)
		if !ok {
			return nil, ErrStylistNotFound
		}
		reviews := data.reviewsFor(stylist)
		stats := analytics.Summarize(stylist, reviews)

		ageDiff := 0.0
		hasAgeDiff := false
		if targetAge, ok := analytics.ParseAge(stylist.TargetAge); ok && stats.HasAverageAge {
			ageDiff = stats.AverageAge - float64(targetAge)
			hasAgeDiff = true
		}

		topOccupation, _, _ := analytics.TopCategory(reviews, analytics.StrictOccupationKey)

		entries = append(entries, ComparisonEntry{
			Stats:         stats,
			AgeDiff:       ageDiff,
			HasAgeDiff:    hasAgeDiff,
			TopOccupation: topOccupation,
		})
	}
	return entries, nil
}

func (s *ownerService) Demographics(ctx context.Context, imageFile string) (*Demographics, error) {
	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, err
	}

	reviews := data.reviews
	if imageFile != "" {
		stylist, ok := data.findByImageFile(imageFile)
		if !ok {
			return nil, ErrStylistNotFound
		}
		reviews = data.reviewsFor(stylist)
	}

	rows, matrix := analytics.CrossTab(reviews, analytics.StrictOccupationKey, analytics.StrictPersonaKey, 6, domain.PersonaTags)

	return &Demographics{
		AgeBrackets: analytics.BucketAges(reviews, analytics.FiveYearBrackets),
		Occupations: analytics.GroupCount(reviews, analytics.OccupationKey),
		Marital:     analytics.GroupCount(reviews, analytics.MaritalKey),
		Children:    analytics.GroupCount(reviews, analytics.ChildrenKey),
		CrossRows:   rows,
		CrossTab:    matrix,
	}, nil
}

func (s *ownerService) Highlights(ctx context.Context) (*Highlights, error) {
	data, err := loadDataset(ctx, s.stylists, s.reviews)
	if err != nil {
		return nil, err
	}

	byPersona := make(map[string][]HighlightEntry, len(domain.PersonaTags))
	for _, tag := range domain.PersonaTags {
		tag := tag
		byPersona[tag] = topSegment(data, 3, func(r domain.ReviewRecord) bool {
			return r.WomanType == tag
		})
	}

	return &Highlights{
		TopPerformers: topSegment(data, 5, func(domain.ReviewRecord) bool { return true }),
		Twenties: topSegment(data, 3, func(r domain.ReviewRecord) bool {
			age, ok := analytics.ParseAge(r.Age)
			return ok && age >= 20 && age <= 29
		}),
		Thirties: topSegment(data, 3, func(r domain.ReviewRecord) bool {
			age, ok := analytics.ParseAge(r.Age)
			return ok && age >= 30 && age <= 39
		}),
		Working: topSegment(data, 3, func(r domain.ReviewRecord) bool {
			return r.Occupation == "会社員" || r.Occupation == "自営業"
		}),
		Moms: topSegment(data, 3, func(r domain.ReviewRecord) bool {
			return r.HasChildren == "あり"
		}),
		ByPersona: byPersona,
	}, nil
}

// topSegment は条件に合うレビューの件数で美容師を降順に並べ、件数 0 を除いた上位を返す。
func topSegment(data *dataset, limit int, match func(domain.ReviewRecord) bool) []HighlightEntry {
	entries := make([]HighlightEntry, 0, len(data.stylists))
	for _, stylist := range data.stylists {
		count := 0
		for _, review := range data.reviewsFor(stylist) {
			if match(review) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		entries = append(entries, HighlightEntry{Stylist: stylist, Count: count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// latestReviews は保存順の末尾 limit 件を新しい順で返す。
func latestReviews(reviews []domain.ReviewRecord, limit int) []domain.ReviewRecord {
	latest := make([]domain.ReviewRecord, 0, limit)
	for i := len(reviews) - 1; i >= 0 && len(latest) < limit; i-- {
		latest = append(latest, reviews[i])
	}
	return latest
}
