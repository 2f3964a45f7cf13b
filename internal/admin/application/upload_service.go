package application

import (
	"context"
	"io"

	"github.com/salon-id/hair-design-review/api/internal/ingest"
)

type uploadService struct {
	pipeline *ingest.Pipeline
}

// NewUploadService は取り込みパイプラインを包んだアップロード用サービスを返す。
func NewUploadService(pipeline *ingest.Pipeline) UploadService {
	return &uploadService{pipeline: pipeline}
}

func (s *uploadService) UploadStylists(ctx context.Context, r io.Reader) (int, error) {
	return s.pipeline.IngestStylists(ctx, r)
}

func (s *uploadService) UploadReviews(ctx context.Context, r io.Reader) (int, error) {
	return s.pipeline.IngestReviews(ctx, r)
}

func (s *uploadService) UploadImages(ctx context.Context, r io.ReaderAt, size int64) (int, error) {
	return s.pipeline.IngestImageArchive(ctx, r, size)
}
