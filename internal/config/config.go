package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr               string
	MongoURI           string
	MongoDatabase      string
	StylistCollection  string
	ReviewCollection   string
	ImageCollection    string
	MappingCollection  string
	GalleryCollection  string
	SettingsCollection string
	Timeout            time.Duration
	Timezone           string
	ServerLog          *log.Logger
	JWTSecret          []byte
	JWTIssuer          string
	JWTAudience        string
	TokenTTL           time.Duration
	AdminEmails        []string
	AllowedOrigins     []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	// セッションの有効期限。既定はログインから 24 時間。
	tokenTTL := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			tokenTTL = parsed
		}
	}

	adminEmails := parseList("ADMIN_EMAILS", nil)
	if len(adminEmails) == 0 {
		log.Fatal("ADMIN_EMAILS must be configured")
	}

	cfg := Config{
		Addr:               envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:           envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:      envOrDefault("MONGO_DB", "hair-design-review"),
		StylistCollection:  envOrDefault("STYLIST_COLLECTION", "stylists"),
		ReviewCollection:   envOrDefault("REVIEW_COLLECTION", "reviews"),
		ImageCollection:    envOrDefault("IMAGE_COLLECTION", "images"),
		MappingCollection:  envOrDefault("MAPPING_COLLECTION", "column_mappings"),
		GalleryCollection:  envOrDefault("GALLERY_COLLECTION", "gallery_designs"),
		SettingsCollection: envOrDefault("SETTINGS_COLLECTION", "settings"),
		Timeout:            timeout,
		Timezone:           envOrDefault("TIMEZONE", "Asia/Tokyo"),
		ServerLog:          log.New(os.Stdout, "[hair-design-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:          []byte(jwtSecret),
		JWTIssuer:          envOrDefault("AUTH_JWT_ISSUER", "hair-design-review"),
		JWTAudience:        envOrDefault("AUTH_JWT_AUDIENCE", "hair-design-dashboard"),
		TokenTTL:           tokenTTL,
		AdminEmails:        adminEmails,
		AllowedOrigins:     parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	cfg.ServerLog.Printf("loaded config: db=%q admins=%d tokenTTL=%s", cfg.MongoDatabase, len(cfg.AdminEmails), cfg.TokenTTL)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
