package ingest

import "strings"

// RawRow は CSV パーサーが生成するヘッダー名→値のマップ。
// 型付けはここで止め、正規化境界より先へは漏らさない。
type RawRow map[string]string

// FieldSpec は正規化フィールド 1 つ分の定義。Name が正準名、
// Aliases はアップロード元のスプレッドシートで観測された列名の候補リスト。
type FieldSpec struct {
	Name    string
	Aliases []string
}

// Resolve は候補リストを順に走査し、行の中で定義済みかつ空でない最初の値を返す。
// どの候補にも一致しなければ空文字を返す。
func Resolve(row RawRow, candidates []string) string {
	for _, name := range candidates {
		if value, ok := row[name]; ok && value != "" {
			return value
		}
	}
	return ""
}

// ResolveWithOverride は手動マッピングを優先して値を解決する。
// マッピングされた列が行に存在する場合は（値が空でも）その値が勝つ。
// 未設定・列欠落時はエイリアス探索へフォールバックする。
func ResolveWithOverride(row RawRow, field string, mapping map[string]string, candidates []string) string {
	if mapping != nil {
		if header, ok := mapping[field]; ok && header != "" {
			if value, present := row[header]; present {
				return value
			}
		}
	}
	return Resolve(row, candidates)
}

// DetectMapping はヘッダー行とフィールド定義から列マッピングを自動検出する。
// 判定はヘッダーとエイリアスの双方向部分一致（小文字化後）。
// 短いエイリアスでは誤検出しうるが、取り込み元の列名ゆらぎを拾うための
// 意図的なゆるさなので厳密一致へ置き換えないこと。
func DetectMapping(headers []string, specs []FieldSpec) map[string]string {
	mapping := make(map[string]string, len(specs))
	for _, spec := range specs {
		mapping[spec.Name] = ""
		for _, header := range headers {
			if matchesAnyAlias(header, spec.Aliases) {
				mapping[spec.Name] = header
				break
			}
		}
	}
	return mapping
}

func matchesAnyAlias(header string, aliases []string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return false
	}
	for _, alias := range aliases {
		a := strings.ToLower(alias)
		if strings.Contains(h, a) || strings.Contains(a, h) {
			return true
		}
	}
	return false
}
