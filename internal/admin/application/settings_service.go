package application

import (
	"context"
	"errors"
	"strings"

	"github.com/salon-id/hair-design-review/api/internal/ingest"
)

// ErrInvalidEmail はオーナーメールアドレスの形式不正を表す。
var ErrInvalidEmail = errors.New("メールアドレスの形式が正しくありません")

// ErrUnknownKind は未知のアップロード種別を表す。
var ErrUnknownKind = errors.New("未知のアップロード種別です")

type settingsService struct {
	settings SettingsRepository
	mappings MappingRepository
}

// NewSettingsService はオーナーメールと列マッピングの管理サービスを返す。
func NewSettingsService(settings SettingsRepository, mappings MappingRepository) SettingsService {
	return &settingsService{settings: settings, mappings: mappings}
}

func (s *settingsService) OwnerEmail(ctx context.Context) (string, error) {
	return s.settings.OwnerEmail(ctx)
}

func (s *settingsService) SetOwnerEmail(ctx context.Context, email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" || !strings.Contains(trimmed, "@") {
		return ErrInvalidEmail
	}
	return s.settings.SetOwnerEmail(ctx, trimmed)
}

func (s *settingsService) ColumnMapping(ctx context.Context, kind ingest.Kind) (map[string]string, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	return s.mappings.ColumnMapping(ctx, kind)
}

// SaveColumnMapping は手動マッピングを丸ごと置き換える。
// 空文字に割り当てられたフィールドは自動検出へ戻す扱いなので取り除く。
func (s *settingsService) SaveColumnMapping(ctx context.Context, kind ingest.Kind, mapping map[string]string) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	cleaned := make(map[string]string, len(mapping))
	for field, header := range mapping {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		cleaned[field] = header
	}
	return s.mappings.SaveColumnMapping(ctx, kind, cleaned)
}

func validateKind(kind ingest.Kind) error {
	switch kind {
	case ingest.KindStylist, ingest.KindReview:
		return nil
	default:
		return ErrUnknownKind
	}
}
