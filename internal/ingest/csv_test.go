package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	t.Run("ヘッダー行と値の行へ展開する", func(t *testing.T) {
		data := []byte("氏名,メールアドレス\n佐藤,a@example.com\n鈴木,b@example.com\n")
		headers, rows, err := ParseRows(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"氏名", "メールアドレス"}, headers)
		require.Len(t, rows, 2)
		assert.Equal(t, "佐藤", rows[0]["氏名"])
		assert.Equal(t, "b@example.com", rows[1]["メールアドレス"])
	})

	t.Run("UTF-8 BOM を除去する", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("氏名\n佐藤\n")...)
		headers, rows, err := ParseRows(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"氏名"}, headers)
		require.Len(t, rows, 1)
	})

	t.Run("タブ区切りへフォールバックする", func(t *testing.T) {
		data := []byte("氏名\tメールアドレス\n佐藤\ta@example.com\n")
		headers, rows, err := ParseRows(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"氏名", "メールアドレス"}, headers)
		require.Len(t, rows, 1)
		assert.Equal(t, "a@example.com", rows[0]["メールアドレス"])
	})

	t.Run("短い行は空文字で埋める", func(t *testing.T) {
		data := []byte("氏名,メールアドレス\n佐藤\n")
		_, rows, err := ParseRows(data)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		value, ok := rows[0]["メールアドレス"]
		assert.True(t, ok)
		assert.Equal(t, "", value)
	})

	t.Run("空行はスキップする", func(t *testing.T) {
		data := []byte("氏名\n佐藤\n   \n鈴木\n")
		_, rows, err := ParseRows(data)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("値の前後の空白を取り除く", func(t *testing.T) {
		data := []byte("氏名, メールアドレス \n 佐藤 , a@example.com \n")
		headers, rows, err := ParseRows(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"氏名", "メールアドレス"}, headers)
		assert.Equal(t, "佐藤", rows[0]["氏名"])
		assert.Equal(t, "a@example.com", rows[0]["メールアドレス"])
	})
}
