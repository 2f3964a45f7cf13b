package owner

import (
	"log"

	"github.com/go-chi/chi/v5"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
)

// Handler wires owner analytics endpoints to the owner service.
type Handler struct {
	logger  *log.Logger
	service dashapp.OwnerService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger  *log.Logger
	Service dashapp.OwnerService
}

// NewHandler constructs an owner HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{logger: cfg.Logger, service: cfg.Service}
}

// Register mounts owner routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/overview", h.overviewHandler())
	r.Get("/staff", h.staffListHandler())
	r.Get("/staff/{imageFile}", h.staffDetailHandler())
	r.Get("/comparison", h.comparisonHandler())
	r.Get("/demographics", h.demographicsHandler())
	r.Get("/highlights", h.highlightsHandler())
}
