package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	row := RawRow{"氏名": "佐藤", "name": "", "姓名": "さとう"}

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{name: "最初に値のある候補が勝つ", candidates: []string{"name", "氏名", "姓名"}, want: "佐藤"},
		{name: "空の値はスキップする", candidates: []string{"name"}, want: ""},
		{name: "候補が行に無ければ空", candidates: []string{"full_name"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(row, tt.candidates))
		})
	}
}

func TestResolveWithOverride(t *testing.T) {
	candidates := []string{"メールアドレス", "email"}

	t.Run("手動マッピングが優先される", func(t *testing.T) {
		row := RawRow{"連絡先": "a@example.com", "メールアドレス": "b@example.com"}
		mapping := map[string]string{FieldEmail: "連絡先"}
		assert.Equal(t, "a@example.com", ResolveWithOverride(row, FieldEmail, mapping, candidates))
	})

	t.Run("マッピング先の列が存在すれば空の値でも勝つ", func(t *testing.T) {
		row := RawRow{"連絡先": "", "メールアドレス": "b@example.com"}
		mapping := map[string]string{FieldEmail: "連絡先"}
		assert.Equal(t, "", ResolveWithOverride(row, FieldEmail, mapping, candidates))
	})

	t.Run("マッピング先の列が行に無ければエイリアス探索へ", func(t *testing.T) {
		row := RawRow{"メールアドレス": "b@example.com"}
		mapping := map[string]string{FieldEmail: "連絡先"}
		assert.Equal(t, "b@example.com", ResolveWithOverride(row, FieldEmail, mapping, candidates))
	})

	t.Run("マッピング未設定はエイリアス探索", func(t *testing.T) {
		row := RawRow{"email": "c@example.com"}
		assert.Equal(t, "c@example.com", ResolveWithOverride(row, FieldEmail, nil, candidates))
	})
}

func TestDetectMapping(t *testing.T) {
	specs := []FieldSpec{
		{Name: FieldName, Aliases: []string{"氏名", "name"}},
		{Name: FieldEmail, Aliases: []string{"メールアドレス", "email"}},
		{Name: FieldSalon, Aliases: []string{"サロン名", "salon"}},
	}

	t.Run("双方向の部分一致で検出する", func(t *testing.T) {
		headers := []string{"スタッフ氏名", "Email Address", "店舗"}
		mapping := DetectMapping(headers, specs)

		// "スタッフ氏名" はエイリアス "氏名" を含む
		assert.Equal(t, "スタッフ氏名", mapping[FieldName])
		// "Email Address" はエイリアス "email" を含む（小文字化後）
		assert.Equal(t, "Email Address", mapping[FieldEmail])
		// どのエイリアスとも一致しないフィールドは空文字
		assert.Equal(t, "", mapping[FieldSalon])
	})

	t.Run("全フィールドがキーとして現れる", func(t *testing.T) {
		mapping := DetectMapping(nil, specs)
		require.Len(t, mapping, len(specs))
		for _, spec := range specs {
			assert.Contains(t, mapping, spec.Name)
		}
	})

	t.Run("最初に一致したヘッダーが勝つ", func(t *testing.T) {
		headers := []string{"氏名", "name"}
		mapping := DetectMapping(headers, specs)
		assert.Equal(t, "氏名", mapping[FieldName])
	})
}
