package ingest

// 正準フィールド名。列マッピングの保存キーとしても使う。
const (
	FieldName          = "name"
	FieldSalon         = "salon"
	FieldEmail         = "email"
	FieldTargetAge     = "targetAge"
	FieldImageFile     = "imageFile"
	FieldAge           = "age"
	FieldPrefecture    = "prefecture"
	FieldGender        = "gender"
	FieldMaritalStatus = "maritalStatus"
	FieldHasChildren   = "hasChildren"
	FieldOccupation    = "occupation"
	FieldWomanType     = "womanType"
	FieldComment       = "comment"
)

// stylistFieldSpecs は美容師 CSV の列定義。エイリアスは実際のアップロードで
// 観測された列名のゆらぎをそのまま列挙している。
var stylistFieldSpecs = []FieldSpec{
	{Name: FieldName, Aliases: []string{"氏名", "名前", "name", "姓名", "なまえ", "ネーム"}},
	{Name: FieldSalon, Aliases: []string{"サロン名", "店名", "salon", "サロン", "shop", "store", "店舗名", "勤務サロン名"}},
	{Name: FieldEmail, Aliases: []string{"メールアドレス", "メール", "email", "mail", "e-mail", "アドレス"}},
	{Name: FieldTargetAge, Aliases: []string{"ターゲット年齢", "ターゲット", "target_age", "target", "年齢層", "対象年齢"}},
	{Name: FieldImageFile, Aliases: []string{"画像ファイル名", "画像", "image_file", "imageFile", "ファイル名", "file", "filename", "画像名", "アップロード画像ファイル名"}},
}

// reviewFieldSpecs はアンケート CSV の列定義。
var reviewFieldSpecs = []FieldSpec{
	{Name: FieldAge, Aliases: []string{"年齢", "age", "ねんれい", "エイジ", "歳"}},
	{Name: FieldPrefecture, Aliases: []string{"都道府県", "県", "prefecture", "住所", "地域", "都道府", "エリア"}},
	{Name: FieldGender, Aliases: []string{"性別", "gender", "sex", "男女", "性"}},
	{Name: FieldMaritalStatus, Aliases: []string{"結婚", "婚姻", "marital_status", "marital", "既婚", "未婚", "結婚状態", "既婚未婚"}},
	{Name: FieldHasChildren, Aliases: []string{"子供有無", "子供", "has_children", "children", "子ども", "こども", "子供の有無"}},
	{Name: FieldOccupation, Aliases: []string{"職業", "occupation", "job", "仕事", "work"}},
	{Name: FieldWomanType, Aliases: []string{"女性像", "womanType", "woman_type", "タイプ", "type", "女性タイプ"}},
	{Name: FieldImageFile, Aliases: []string{"画像ファイル名", "画像", "image_file", "imageFile", "ファイル名", "file", "filename", "画像名", "選択した画像ファイル"}},
	{Name: FieldComment, Aliases: []string{"コメント", "comment", "感想", "自由記述"}},
}

// StylistFieldSpecs は美容師 CSV の列定義のコピーを返す。
func StylistFieldSpecs() []FieldSpec {
	return append([]FieldSpec(nil), stylistFieldSpecs...)
}

// ReviewFieldSpecs はアンケート CSV の列定義のコピーを返す。
func ReviewFieldSpecs() []FieldSpec {
	return append([]FieldSpec(nil), reviewFieldSpecs...)
}

func specAliases(specs []FieldSpec, field string) []string {
	for _, spec := range specs {
		if spec.Name == field {
			return spec.Aliases
		}
	}
	return nil
}
