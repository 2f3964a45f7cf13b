package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
)

// Handler wires the shared (all-role) endpoints: design gallery and images.
type Handler struct {
	logger  *log.Logger
	gallery dashapp.GalleryService
	images  dashapp.ImageRepository
}

// Config provides dependencies for Handler.
type Config struct {
	Logger  *log.Logger
	Gallery dashapp.GalleryService
	Images  dashapp.ImageRepository
}

// NewHandler constructs the shared HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:  cfg.Logger,
		gallery: cfg.Gallery,
		images:  cfg.Images,
	}
}

// Register mounts the shared routes onto router. All routes require authentication.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/gallery/designs", h.designListHandler())
		r.Post("/gallery/designs/{id}/reviews", h.designReviewCreateHandler())
		r.Get("/images/{name}", h.imageHandler())
	})
}
