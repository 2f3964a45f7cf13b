package admin

import (
	"log"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/salon-id/hair-design-review/api/internal/admin/application"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger          *log.Logger
	uploadService   adminapp.UploadService
	statusService   adminapp.StatusService
	settingsService adminapp.SettingsService
	stylists        dashapp.StylistRepository
	reviews         dashapp.ReviewRepository
}

// Config provides dependencies for Handler.
type Config struct {
	Logger          *log.Logger
	UploadService   adminapp.UploadService
	StatusService   adminapp.StatusService
	SettingsService adminapp.SettingsService
	Stylists        dashapp.StylistRepository
	Reviews         dashapp.ReviewRepository
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:          cfg.Logger,
		uploadService:   cfg.UploadService,
		statusService:   cfg.StatusService,
		settingsService: cfg.SettingsService,
		stylists:        cfg.Stylists,
		reviews:         cfg.Reviews,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/status", h.statusHandler())
	r.Post("/uploads/stylists", h.stylistUploadHandler())
	r.Post("/uploads/reviews", h.reviewUploadHandler())
	r.Post("/uploads/images", h.imageUploadHandler())
	r.Get("/mappings/{kind}", h.mappingGetHandler())
	r.Put("/mappings/{kind}", h.mappingSaveHandler())
	r.Get("/owner-email", h.ownerEmailGetHandler())
	r.Put("/owner-email", h.ownerEmailSaveHandler())
	r.Post("/reset", h.resetHandler())
}
