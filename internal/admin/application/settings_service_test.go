package application

import (
	"context"
	"testing"

	"github.com/salon-id/hair-design-review/api/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	ownerEmail string
}

func (r *fakeSettingsRepo) OwnerEmail(_ context.Context) (string, error) {
	return r.ownerEmail, nil
}

func (r *fakeSettingsRepo) SetOwnerEmail(_ context.Context, email string) error {
	r.ownerEmail = email
	return nil
}

type fakeMappingRepo struct {
	mappings map[ingest.Kind]map[string]string
}

func newFakeMappingRepo() *fakeMappingRepo {
	return &fakeMappingRepo{mappings: make(map[ingest.Kind]map[string]string)}
}

func (r *fakeMappingRepo) ColumnMapping(_ context.Context, kind ingest.Kind) (map[string]string, error) {
	mapping := r.mappings[kind]
	if mapping == nil {
		return map[string]string{}, nil
	}
	return mapping, nil
}

func (r *fakeMappingRepo) SaveColumnMapping(_ context.Context, kind ingest.Kind, mapping map[string]string) error {
	r.mappings[kind] = mapping
	return nil
}

func TestSetOwnerEmail(t *testing.T) {
	t.Run("前後の空白を除いて保存する", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		service := NewSettingsService(repo, newFakeMappingRepo())

		require.NoError(t, service.SetOwnerEmail(context.Background(), " owner@example.com "))
		assert.Equal(t, "owner@example.com", repo.ownerEmail)
	})

	t.Run("形式不正は ErrInvalidEmail", func(t *testing.T) {
		repo := &fakeSettingsRepo{ownerEmail: "kept@example.com"}
		service := NewSettingsService(repo, newFakeMappingRepo())

		for _, email := range []string{"", "   ", "no-at-mark"} {
			err := service.SetOwnerEmail(context.Background(), email)
			assert.ErrorIs(t, err, ErrInvalidEmail)
		}
		assert.Equal(t, "kept@example.com", repo.ownerEmail)
	})
}

func TestSaveColumnMapping(t *testing.T) {
	t.Run("空文字のヘッダーは取り除いて保存する", func(t *testing.T) {
		mappings := newFakeMappingRepo()
		service := NewSettingsService(&fakeSettingsRepo{}, mappings)

		err := service.SaveColumnMapping(context.Background(), ingest.KindStylist, map[string]string{
			ingest.FieldEmail: "連絡先",
			ingest.FieldName:  "  ",
			ingest.FieldSalon: "",
		})
		require.NoError(t, err)

		saved := mappings.mappings[ingest.KindStylist]
		assert.Equal(t, map[string]string{ingest.FieldEmail: "連絡先"}, saved)
	})

	t.Run("未知の種別は ErrUnknownKind", func(t *testing.T) {
		service := NewSettingsService(&fakeSettingsRepo{}, newFakeMappingRepo())

		err := service.SaveColumnMapping(context.Background(), ingest.Kind("unknown"), nil)
		assert.ErrorIs(t, err, ErrUnknownKind)

		_, err = service.ColumnMapping(context.Background(), ingest.KindImage)
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}
