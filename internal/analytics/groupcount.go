package analytics

import (
	"sort"

	"github.com/salon-id/hair-design-review/api/internal/domain"
)

// KeyFunc はレビュー 1 件からグルーピング用ラベルを取り出す。
// 未入力フィールドには domain.NoAnswerLabel を返す実装が慣例。
type KeyFunc func(domain.ReviewRecord) string

// LabelCount はラベルと件数の組。Grouping 内の順序が意味を持つ。
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Grouping は初出順を保持した度数分布。
type Grouping []LabelCount

// Get は該当ラベルの件数を返す。未出現は 0。
func (g Grouping) Get(label string) int {
	for _, lc := range g {
		if lc.Label == label {
			return lc.Count
		}
	}
	return 0
}

// Total は全ラベルの件数合計。
func (g Grouping) Total() int {
	total := 0
	for _, lc := range g {
		total += lc.Count
	}
	return total
}

// GroupCount はキー関数で得たラベルごとの件数を初出順で集計する。
// キー関数が空文字を返したレコードは数えない（未回答扱いにしたい
// 呼び出し側はキー関数側でフォールバックラベルを返す）。
func GroupCount(records []domain.ReviewRecord, key KeyFunc) Grouping {
	indexes := make(map[string]int)
	grouping := make(Grouping, 0)
	for _, record := range records {
		label := key(record)
		if label == "" {
			continue
		}
		if idx, ok := indexes[label]; ok {
			grouping[idx].Count++
			continue
		}
		indexes[label] = len(grouping)
		grouping = append(grouping, LabelCount{Label: label, Count: 1})
	}
	return grouping
}

// TopCategory は最多ラベルとその件数を返す。同数の場合は先に構築された
// グループ（＝コレクション走査順で先に現れたラベル）が勝つ。
// レコードが無ければ ok=false。
func TopCategory(records []domain.ReviewRecord, key KeyFunc) (string, int, bool) {
	grouping := GroupCount(records, key)
	if len(grouping) == 0 {
		return "", 0, false
	}
	top := grouping[0]
	for _, lc := range grouping[1:] {
		if lc.Count > top.Count {
			top = lc
		}
	}
	return top.Label, top.Count, true
}

// CrossTab は行キー×列キーの件数行列を作る。行ラベルは合計件数の降順で
// 上位 topRows 件に切り詰める（同数は初出順を維持）。列ラベルは呼び出し側が
// 渡す固定列挙（例: 女性像タグ 4 種）をそのまま使う。
func CrossTab(records []domain.ReviewRecord, rowKey, colKey KeyFunc, topRows int, cols []string) ([]string, map[string]map[string]int) {
	matrix := make(map[string]map[string]int)
	rowOrder := make([]string, 0)

	colSet := make(map[string]struct{}, len(cols))
	for _, col := range cols {
		colSet[col] = struct{}{}
	}

	for _, record := range records {
		row := rowKey(record)
		col := colKey(record)
		if row == "" || col == "" {
			continue
		}
		if _, ok := colSet[col]; !ok {
			continue
		}
		if _, ok := matrix[row]; !ok {
			matrix[row] = make(map[string]int)
			rowOrder = append(rowOrder, row)
		}
		matrix[row][col]++
	}

	sort.SliceStable(rowOrder, func(i, j int) bool {
		return rowTotal(matrix[rowOrder[i]]) > rowTotal(matrix[rowOrder[j]])
	})
	if topRows > 0 && len(rowOrder) > topRows {
		for _, dropped := range rowOrder[topRows:] {
			delete(matrix, dropped)
		}
		rowOrder = rowOrder[:topRows]
	}
	return rowOrder, matrix
}

func rowTotal(row map[string]int) int {
	total := 0
	for _, count := range row {
		total += count
	}
	return total
}

// Rank は件数リストの中での対象値の順位（1 始まり・降順）を返す。
// 同数は同順位になる（自分より真に大きい値の数 + 1）。
func Rank(counts []int, target int) int {
	rank := 1
	for _, count := range counts {
		if count > target {
			rank++
		}
	}
	return rank
}
