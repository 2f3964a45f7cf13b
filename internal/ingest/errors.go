package ingest

import "fmt"

// Kind は取り込み対象の種別。列マッピングの保存キーと直列化ガードの単位を兼ねる。
type Kind string

const (
	KindStylist Kind = "stylists"
	KindReview  Kind = "reviews"
	KindImage   Kind = "images"
)

// ParseError は CSV / ZIP パーサーが行を生成できなかったことを表す。
// 元のパーサーエラーを保持し、直前のコレクションは無傷のまま残る。
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s の解析に失敗しました: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyResultError は解析自体は成功したが正規化を生き残った行が 1 件も
// なかったことを表す。列マッピングの誤りとファイル破損をユーザーが
// 切り分けられるよう ParseError と区別する。
type EmptyResultError struct {
	Kind Kind
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s に登録できるデータが見つかりませんでした", e.Kind)
}
