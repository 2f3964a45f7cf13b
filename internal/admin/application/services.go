package application

import (
	"context"
	"io"

	"github.com/salon-id/hair-design-review/api/internal/ingest"
)

// StatusRepository exposes collection counts and the destructive reset.
type StatusRepository interface {
	CountStylists(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
	CountImages(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) error
}

// SettingsRepository persists dashboard-wide settings.
type SettingsRepository interface {
	OwnerEmail(ctx context.Context) (string, error)
	SetOwnerEmail(ctx context.Context, email string) error
}

// MappingRepository stores manual column mapping overrides per upload kind.
type MappingRepository interface {
	ColumnMapping(ctx context.Context, kind ingest.Kind) (map[string]string, error)
	SaveColumnMapping(ctx context.Context, kind ingest.Kind, mapping map[string]string) error
}

// DataStatus summarizes what has been uploaded so far.
type DataStatus struct {
	StylistCount int64 `json:"stylistCount"`
	ReviewCount  int64 `json:"reviewCount"`
	ImageCount   int64 `json:"imageCount"`
}

// UploadService describes the CSV/ZIP ingestion use-cases.
type UploadService interface {
	UploadStylists(ctx context.Context, r io.Reader) (int, error)
	UploadReviews(ctx context.Context, r io.Reader) (int, error)
	UploadImages(ctx context.Context, r io.ReaderAt, size int64) (int, error)
}

// StatusService describes status reporting and the full reset.
type StatusService interface {
	Status(ctx context.Context) (DataStatus, error)
	Reset(ctx context.Context) error
}

// SettingsService describes owner-email and column-mapping management.
type SettingsService interface {
	OwnerEmail(ctx context.Context) (string, error)
	SetOwnerEmail(ctx context.Context, email string) error
	ColumnMapping(ctx context.Context, kind ingest.Kind) (map[string]string, error)
	SaveColumnMapping(ctx context.Context, kind ingest.Kind, mapping map[string]string) error
}
