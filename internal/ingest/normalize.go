package ingest

import "github.com/salon-id/hair-design-review/api/internal/domain"

// NormalizeStylist は生の行を StylistRecord へ正規化する。
// 必須キーであるメールアドレスが解決できない行は除外対象（ok=false）。
// それ以外のフィールドは欠落しても空文字のまま通す。
func NormalizeStylist(row RawRow, mapping map[string]string) (domain.StylistRecord, bool) {
	email := ResolveWithOverride(row, FieldEmail, mapping, specAliases(stylistFieldSpecs, FieldEmail))
	if email == "" {
		return domain.StylistRecord{}, false
	}
	return domain.StylistRecord{
		Name:      ResolveWithOverride(row, FieldName, mapping, specAliases(stylistFieldSpecs, FieldName)),
		Salon:     ResolveWithOverride(row, FieldSalon, mapping, specAliases(stylistFieldSpecs, FieldSalon)),
		Email:     email,
		TargetAge: ResolveWithOverride(row, FieldTargetAge, mapping, specAliases(stylistFieldSpecs, FieldTargetAge)),
		ImageFile: ResolveWithOverride(row, FieldImageFile, mapping, specAliases(stylistFieldSpecs, FieldImageFile)),
	}, true
}

// NormalizeReview は生の行を ReviewRecord へ正規化する。
// 必須キーは画像ファイル名。年齢は文字列のまま保持する。
func NormalizeReview(row RawRow, mapping map[string]string) (domain.ReviewRecord, bool) {
	imageFile := ResolveWithOverride(row, FieldImageFile, mapping, specAliases(reviewFieldSpecs, FieldImageFile))
	if imageFile == "" {
		return domain.ReviewRecord{}, false
	}
	return domain.ReviewRecord{
		Age:           ResolveWithOverride(row, FieldAge, mapping, specAliases(reviewFieldSpecs, FieldAge)),
		Prefecture:    ResolveWithOverride(row, FieldPrefecture, mapping, specAliases(reviewFieldSpecs, FieldPrefecture)),
		Gender:        ResolveWithOverride(row, FieldGender, mapping, specAliases(reviewFieldSpecs, FieldGender)),
		MaritalStatus: ResolveWithOverride(row, FieldMaritalStatus, mapping, specAliases(reviewFieldSpecs, FieldMaritalStatus)),
		HasChildren:   ResolveWithOverride(row, FieldHasChildren, mapping, specAliases(reviewFieldSpecs, FieldHasChildren)),
		Occupation:    ResolveWithOverride(row, FieldOccupation, mapping, specAliases(reviewFieldSpecs, FieldOccupation)),
		WomanType:     ResolveWithOverride(row, FieldWomanType, mapping, specAliases(reviewFieldSpecs, FieldWomanType)),
		ImageFile:     imageFile,
		Comment:       ResolveWithOverride(row, FieldComment, mapping, specAliases(reviewFieldSpecs, FieldComment)),
	}, true
}
