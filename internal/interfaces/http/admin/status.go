package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/salon-id/hair-design-review/api/internal/domain"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

func (h *Handler) statusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status, err := h.statusService.Status(ctx)
		if err != nil {
			h.logger.Printf("登録状況の取得に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "登録状況の取得に失敗しました")
			return
		}

		ownerEmail, err := h.settingsService.OwnerEmail(ctx)
		if err != nil {
			h.logger.Printf("オーナーメールの取得に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "登録状況の取得に失敗しました")
			return
		}

		stylists, err := h.stylists.All(ctx)
		if err != nil {
			h.logger.Printf("美容師一覧の取得に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "登録状況の取得に失敗しました")
			return
		}

		reviews, err := h.reviews.All(ctx)
		if err != nil {
			h.logger.Printf("アンケート一覧の取得に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "登録状況の取得に失敗しました")
			return
		}

		recent := make([]domain.ReviewRecord, 0, 10)
		for i := len(reviews) - 1; i >= 0 && len(recent) < 10; i-- {
			recent = append(recent, reviews[i])
		}

		common.WriteJSON(h.logger, w, http.StatusOK, statusResponse{
			StylistCount:         status.StylistCount,
			ReviewCount:          status.ReviewCount,
			ImageCount:           status.ImageCount,
			OwnerEmailConfigured: ownerEmail != "",
			Stylists:             stylists,
			RecentReviews:        recent,
		})
	}
}

func (h *Handler) resetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := h.statusService.Reset(ctx); err != nil {
			h.logger.Printf("データリセットに失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "データのリセットに失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"reset": true})
	}
}
