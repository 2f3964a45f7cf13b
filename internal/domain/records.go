package domain

import (
	"strings"
	"time"
)

// NoAnswerLabel は未入力フィールドを集計・表示する際の共通ラベル。
const NoAnswerLabel = "未回答"

// PersonaTags はアンケートで選択できる女性像タグの固定リスト。
// グラフの凡例・クロス集計の列はこの順序に従う。
var PersonaTags = []string{"カジュアル", "フェミニン", "エレガント", "スタイリッシュ"}

// StylistRecord は美容師 1 名分の正規化済みレコード。
// Email がログインの照合キー、ImageFile がレビューとの結合キーになる。
// どちらも一意性は強制しない（重複キーは複数カードへの二重計上として現れる）。
type StylistRecord struct {
	Name      string `json:"name"`
	Salon     string `json:"salon"`
	Email     string `json:"email"`
	TargetAge string `json:"targetAge"`
	ImageFile string `json:"imageFile"`
}

// ReviewRecord は一般回答者によるアンケート 1 件分の正規化済みレコード。
// 年齢を含む全フィールドは取り込み時点では文字列のまま保持し、
// 数値変換は集計側で遅延して行う。
type ReviewRecord struct {
	Age           string `json:"age"`
	Prefecture    string `json:"prefecture"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
	HasChildren   string `json:"hasChildren"`
	Occupation    string `json:"occupation"`
	WomanType     string `json:"womanType"`
	ImageFile     string `json:"imageFile"`
	Comment       string `json:"comment"`
}

// GalleryDesign はデザインギャラリーの 1 作品。レビューは追記のみで更新される。
type GalleryDesign struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
	Rating   float64         `json:"rating"`
	Views    int             `json:"views"`
	Reviews  []GalleryReview `json:"reviews"`
}

// GalleryReview はギャラリー経由で投稿されたレビュー。
type GalleryReview struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultGalleryRating はレビューが 1 件もない作品に表示する初期評価。
const DefaultGalleryRating = 4.5

// AverageGalleryRating はレビュー群から平均評価を小数 1 桁で計算する。
func AverageGalleryRating(reviews []GalleryReview) float64 {
	if len(reviews) == 0 {
		return DefaultGalleryRating
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return float64(int(avg*10+0.5)) / 10
}

// MaskEmail はレビュー投稿者のメールアドレスをローカル部 2 文字＋伏せ字に整形する。
func MaskEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	if at <= 0 {
		return trimmed
	}
	local := trimmed[:at]
	domainPart := trimmed[at:]
	if len(local) <= 2 {
		return local + "***" + domainPart
	}
	return local[:2] + "***" + domainPart
}
