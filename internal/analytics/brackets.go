package analytics

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// AgeBracket は年齢レンジ 1 区分。Max は両端含む。
type AgeBracket struct {
	Label string
	Min   int
	Max   int
}

// FiveYearBrackets はオーナー向け・美容師向けチャートで使う 5 歳刻みの区分。
// このレンジに収まらない年齢はチャートからは落とす（元コレクションには残る）。
var FiveYearBrackets = []AgeBracket{
	{Label: "20~24歳", Min: 20, Max: 24},
	{Label: "25~29歳", Min: 25, Max: 29},
	{Label: "30~34歳", Min: 30, Max: 34},
	{Label: "35~39歳", Min: 35, Max: 39},
	{Label: "40~44歳", Min: 40, Max: 44},
}

// DecadeBrackets は 10 歳刻みの区分。50 歳以上はまとめて 1 区分。
var DecadeBrackets = []AgeBracket{
	{Label: "20代", Min: 20, Max: 29},
	{Label: "30代", Min: 30, Max: 39},
	{Label: "40代", Min: 40, Max: 49},
	{Label: "50代以上", Min: 50, Max: 200},
}

// ParseAge は年齢文字列を parseInt 相当の緩い規則で解釈する。
// 先頭の数字列だけを読む（"32歳" → 32）。数字が無ければ ok=false。
func ParseAge(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	end := 0
	for end < len(trimmed) && unicode.IsDigit(rune(trimmed[end])) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	age, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0, false
	}
	return age, true
}

// BucketAges はレビュー群を年齢区分ごとに集計する。
// ラベルは初出順で、ヒットしなかった区分は結果に現れない。
// 年齢が解釈できない、またはどの区分にも入らないレコードは数えない。
func BucketAges(records []domain.ReviewRecord, brackets []AgeBracket) Grouping {
	return GroupCount(records, func(record domain.ReviewRecord) string {
		age, ok := ParseAge(record.Age)
		if !ok {
			return ""
		}
		for _, bracket := range brackets {
			if age >= bracket.Min && age <= bracket.Max {
				return bracket.Label
			}
		}
		return ""
	})
}

// AverageAge は解釈できた年齢の平均を返す。1 件も解釈できなければ ok=false
// （呼び出し側はプレースホルダーを表示する。NaN は決して返さない）。
func AverageAge(records []domain.ReviewRecord) (float64, bool) {
	sum := 0
	count := 0
	for _, record := range records {
		if age, ok := ParseAge(record.Age); ok {
			sum += age
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}
