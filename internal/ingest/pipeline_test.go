package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore は取り込み結果をメモリへ貯めるテスト用ストア。
type fakeStore struct {
	mu       sync.Mutex
	stylists []domain.StylistRecord
	reviews  []domain.ReviewRecord
	images   map[string]string
	mappings map[Kind]map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{mappings: make(map[Kind]map[string]string)}
}

func (s *fakeStore) ReplaceStylists(_ context.Context, stylists []domain.StylistRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stylists = stylists
	return nil
}

func (s *fakeStore) ReplaceReviews(_ context.Context, reviews []domain.ReviewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = reviews
	return nil
}

func (s *fakeStore) ReplaceImages(_ context.Context, images map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = images
	return nil
}

func (s *fakeStore) ColumnMapping(_ context.Context, kind Kind) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mapping := s.mappings[kind]
	if mapping == nil {
		return map[string]string{}, nil
	}
	return mapping, nil
}

func (s *fakeStore) SaveColumnMapping(_ context.Context, kind Kind, mapping map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappings[kind] = mapping
	return nil
}

func newTestPipeline(store Store) *Pipeline {
	return NewPipeline(store, log.New(io.Discard, "", 0))
}

func TestIngestStylists(t *testing.T) {
	t.Run("正規化を通った行だけ全置換で保存する", func(t *testing.T) {
		store := newFakeStore()
		pipeline := newTestPipeline(store)

		csvData := "氏名,メールアドレス,画像ファイル名\n佐藤,a@example.com,a.jpg\n名無し,,b.jpg\n鈴木,c@example.com,c.jpg\n"
		count, err := pipeline.IngestStylists(context.Background(), strings.NewReader(csvData))
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, store.stylists, 2)
		assert.Equal(t, "佐藤", store.stylists[0].Name)
		assert.Equal(t, "鈴木", store.stylists[1].Name)
	})

	t.Run("再取り込みは前回の内容を完全に置き換える", func(t *testing.T) {
		store := newFakeStore()
		pipeline := newTestPipeline(store)

		first := "氏名,メールアドレス\n佐藤,a@example.com\n鈴木,b@example.com\n"
		_, err := pipeline.IngestStylists(context.Background(), strings.NewReader(first))
		require.NoError(t, err)

		second := "氏名,メールアドレス\n高橋,c@example.com\n"
		count, err := pipeline.IngestStylists(context.Background(), strings.NewReader(second))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.Len(t, store.stylists, 1)
		assert.Equal(t, "高橋", store.stylists[0].Name)
	})

	t.Run("1件も生き残らなければ EmptyResultError で既存データは無傷", func(t *testing.T) {
		store := newFakeStore()
		store.stylists = []domain.StylistRecord{{Name: "既存", Email: "kept@example.com"}}
		pipeline := newTestPipeline(store)

		csvData := "氏名,メールアドレス\n名無し,\n"
		_, err := pipeline.IngestStylists(context.Background(), strings.NewReader(csvData))

		var emptyErr *EmptyResultError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, KindStylist, emptyErr.Kind)
		require.Len(t, store.stylists, 1)
		assert.Equal(t, "既存", store.stylists[0].Name)
	})

	t.Run("初回取り込みで自動検出したマッピングを保存する", func(t *testing.T) {
		store := newFakeStore()
		pipeline := newTestPipeline(store)

		csvData := "スタッフ氏名,メールアドレス\n佐藤,a@example.com\n"
		_, err := pipeline.IngestStylists(context.Background(), strings.NewReader(csvData))
		require.NoError(t, err)

		mapping := store.mappings[KindStylist]
		require.NotNil(t, mapping)
		assert.Equal(t, "スタッフ氏名", mapping[FieldName])
	})

	t.Run("保存済みマッピングが優先される", func(t *testing.T) {
		store := newFakeStore()
		store.mappings[KindStylist] = map[string]string{FieldEmail: "連絡先"}
		pipeline := newTestPipeline(store)

		csvData := "氏名,連絡先,メールアドレス\n佐藤,manual@example.com,auto@example.com\n"
		_, err := pipeline.IngestStylists(context.Background(), strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, store.stylists, 1)
		assert.Equal(t, "manual@example.com", store.stylists[0].Email)
	})
}

func TestIngestReviews(t *testing.T) {
	store := newFakeStore()
	pipeline := newTestPipeline(store)

	csvData := "年齢,画像ファイル名,女性像\n22,a.jpg,カジュアル\n41,,エレガント\n43,b.jpg,\n"
	count, err := pipeline.IngestReviews(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, store.reviews, 2)
	assert.Equal(t, "22", store.reviews[0].Age)
	assert.Equal(t, "43", store.reviews[1].Age)
}

func TestIngestImageArchive(t *testing.T) {
	t.Run("画像エントリを data URL として保存する", func(t *testing.T) {
		store := newFakeStore()
		pipeline := newTestPipeline(store)

		var buf bytes.Buffer
		writer := zip.NewWriter(&buf)
		f, err := writer.Create("a.jpg")
		require.NoError(t, err)
		_, err = f.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
		_, err = writer.Create("readme.txt")
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		reader := bytes.NewReader(buf.Bytes())
		count, err := pipeline.IngestImageArchive(context.Background(), reader, reader.Size())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Contains(t, store.images["a.jpg"], "data:image/jpeg;base64,")
	})

	t.Run("壊れたアーカイブは ParseError", func(t *testing.T) {
		store := newFakeStore()
		pipeline := newTestPipeline(store)

		reader := bytes.NewReader([]byte("broken"))
		_, err := pipeline.IngestImageArchive(context.Background(), reader, reader.Size())

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, KindImage, parseErr.Kind)
	})

	t.Run("画像が1枚も無ければ EmptyResultError", func(t *testing.T) {
		store := newFakeStore()
		pipeline := newTestPipeline(store)

		var buf bytes.Buffer
		writer := zip.NewWriter(&buf)
		_, err := writer.Create("only.txt")
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		reader := bytes.NewReader(buf.Bytes())
		_, err = pipeline.IngestImageArchive(context.Background(), reader, reader.Size())

		var emptyErr *EmptyResultError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, KindImage, emptyErr.Kind)
	})
}
