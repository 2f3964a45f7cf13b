package common

const (
	// MaxCSVUploadBody limits CSV upload bodies for stylist/review ingestion.
	MaxCSVUploadBody = 16 << 20
	// MaxArchiveUploadBody limits ZIP archive uploads (images are stored inline as data URLs).
	MaxArchiveUploadBody = 64 << 20
	// MaxJSONRequestBody limits JSON request bodies for settings/gallery endpoints.
	MaxJSONRequestBody = 1 << 20
)
