package analytics

import (
	"fmt"
	"math"

	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// よく使うキー関数。未入力は 未回答 ラベルへ畳む。
var (
	PersonaKey    = fallbackKey(func(r domain.ReviewRecord) string { return r.WomanType })
	OccupationKey = fallbackKey(func(r domain.ReviewRecord) string { return r.Occupation })
	MaritalKey    = fallbackKey(func(r domain.ReviewRecord) string { return r.MaritalStatus })
	ChildrenKey   = fallbackKey(func(r domain.ReviewRecord) string { return r.HasChildren })
	PrefectureKey = fallbackKey(func(r domain.ReviewRecord) string { return r.Prefecture })
)

func fallbackKey(extract func(domain.ReviewRecord) string) KeyFunc {
	return func(record domain.ReviewRecord) string {
		if value := extract(record); value != "" {
			return value
		}
		return domain.NoAnswerLabel
	}
}

// StrictPersonaKey は未回答を含めず、既知の女性像タグだけを数えるキー関数。
func StrictPersonaKey(record domain.ReviewRecord) string {
	for _, tag := range domain.PersonaTags {
		if record.WomanType == tag {
			return tag
		}
	}
	return ""
}

// StrictOccupationKey は職業が入力済みのレコードだけを数えるキー関数。
func StrictOccupationKey(record domain.ReviewRecord) string {
	return record.Occupation
}

// StylistStats は美容師 1 名分の集計サマリー。
type StylistStats struct {
	Stylist           domain.StylistRecord `json:"stylist"`
	ReviewCount       int                  `json:"reviewCount"`
	AverageAge        float64              `json:"averageAge"`
	HasAverageAge     bool                 `json:"hasAverageAge"`
	TopPersona        string               `json:"topPersona"`
	MarriedCount      int                  `json:"marriedCount"`
	WithChildrenCount int                  `json:"withChildrenCount"`
	PersonaVariety    int                  `json:"personaVariety"`
	Layer             int                  `json:"layer"`
}

// Layer はレビュー件数からレイヤー区分（1 が最上位）を求める。
func Layer(reviewCount int) int {
	switch {
	case reviewCount >= 30:
		return 1
	case reviewCount >= 20:
		return 2
	case reviewCount >= 10:
		return 3
	default:
		return 4
	}
}

// Summarize は 1 名分のレビュー群からサマリーを構築する。
func Summarize(stylist domain.StylistRecord, reviews []domain.ReviewRecord) StylistStats {
	avgAge, hasAvg := AverageAge(reviews)
	topPersona, _, _ := TopCategory(reviews, StrictPersonaKey)

	married := 0
	withChildren := 0
	for _, review := range reviews {
		if review.MaritalStatus == "既婚" {
			married++
		}
		if review.HasChildren == "あり" {
			withChildren++
		}
	}

	return StylistStats{
		Stylist:           stylist,
		ReviewCount:       len(reviews),
		AverageAge:        avgAge,
		HasAverageAge:     hasAvg,
		TopPersona:        topPersona,
		MarriedCount:      married,
		WithChildrenCount: withChildren,
		PersonaVariety:    len(GroupCount(reviews, StrictPersonaKey)),
		Layer:             Layer(len(reviews)),
	}
}

// AgeInsights は美容師本人の年齢と顧客年齢分布からインサイト文を生成する。
// 美容師の年齢が不明、または年齢の取れたレビューが無ければ空を返す。
func AgeInsights(stylistAge int, reviews []domain.ReviewRecord) []string {
	if stylistAge <= 0 || len(reviews) == 0 {
		return nil
	}

	ages := make([]int, 0, len(reviews))
	for _, review := range reviews {
		if age, ok := ParseAge(review.Age); ok {
			ages = append(ages, age)
		}
	}
	if len(ages) == 0 {
		return nil
	}

	sum := 0
	sameAge := 0
	younger := 0
	older := 0
	for _, age := range ages {
		sum += age
		switch {
		case int(math.Abs(float64(age-stylistAge))) <= 3:
			sameAge++
		case age < stylistAge-3:
			younger++
		default:
			older++
		}
	}

	avgAge := float64(sum) / float64(len(ages))
	ageDiff := avgAge - float64(stylistAge)
	sameAgePercent := float64(sameAge) / float64(len(ages)) * 100
	youngerPercent := float64(younger) / float64(len(ages)) * 100
	olderPercent := float64(older) / float64(len(ages)) * 100

	// 先頭の絵文字はフロントがそのまま表示する表示仕様の一部。
	insights := make([]string, 0, 5)
	if olderPercent >= 50 {
		insights = append(insights, fmt.Sprintf("💡 年齢の割に年上に支持されている (%.0f%%が年上)", olderPercent))
	}
	if sameAgePercent >= 40 {
		insights = append(insights, fmt.Sprintf("👥 同年代に人気 (%.0f%%が同年代)", sameAgePercent))
	}
	if youngerPercent >= 50 {
		insights = append(insights, fmt.Sprintf("⭐ 若い世代に人気 (%.0f%%が年下)", youngerPercent))
	}

	switch {
	case ageDiff >= 5:
		insights = append(insights, fmt.Sprintf("📈 平均%.1f歳年上の顧客層に支持されている", ageDiff))
	case ageDiff <= -5:
		insights = append(insights, fmt.Sprintf("📉 平均%.1f歳年下の顧客層に支持されている", math.Abs(ageDiff)))
	default:
		insights = append(insights, "🎯 幅広い年齢層から支持されている")
	}

	if variety := bracketVariety(ages); variety >= 4 {
		insights = append(insights, fmt.Sprintf("🌟 幅広い年齢層から支持を獲得 (%dつの年齢層)", variety))
	}
	return insights
}

// bracketVariety は 5 歳刻み＋40 代で数えた、回答のある年齢層の数。
func bracketVariety(ages []int) int {
	brackets := []AgeBracket{
		{Min: 20, Max: 24},
		{Min: 25, Max: 29},
		{Min: 30, Max: 34},
		{Min: 35, Max: 39},
		{Min: 40, Max: 49},
	}
	variety := 0
	for _, bracket := range brackets {
		for _, age := range ages {
			if age >= bracket.Min && age <= bracket.Max {
				variety++
				break
			}
		}
	}
	return variety
}
