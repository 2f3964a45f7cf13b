package stylist

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

// Handler wires the signed-in stylist's endpoints to the stylist service.
type Handler struct {
	logger  *log.Logger
	service dashapp.StylistService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger  *log.Logger
	Service dashapp.StylistService
}

// NewHandler constructs a stylist HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{logger: cfg.Logger, service: cfg.Service}
}

// Register mounts stylist self-service routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard", h.dashboardHandler())
	r.Get("/comparison", h.comparisonHandler())
	r.Get("/reviews", h.reviewsHandler())
}

func (h *Handler) dashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := h.requireEmail(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		dashboard, err := h.service.Dashboard(ctx, email)
		if err != nil {
			h.writeServiceError(w, "ダッシュボード", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, dashboard)
	}
}

func (h *Handler) comparisonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := h.requireEmail(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		comparison, err := h.service.Comparison(ctx, email)
		if err != nil {
			h.writeServiceError(w, "サロン比較", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, comparison)
	}
}

func (h *Handler) reviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := h.requireEmail(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		reviews, err := h.service.Reviews(ctx, email)
		if err != nil {
			h.writeServiceError(w, "レビュー一覧", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": reviews})
	}
}

func (h *Handler) requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, ok := common.UserFromContext(r.Context())
	if !ok || user.Email == "" {
		common.WriteError(h.logger, w, http.StatusUnauthorized, "認証情報がありません")
		return "", false
	}
	return user.Email, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, label string, err error) {
	if errors.Is(err, dashapp.ErrStylistNotFound) {
		common.WriteError(h.logger, w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Printf("%sの集計に失敗: %v", label, err)
	common.WriteError(h.logger, w, http.StatusInternalServerError, label+"の集計に失敗しました")
}
