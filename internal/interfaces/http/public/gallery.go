package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

func (h *Handler) designListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		designs, err := h.gallery.ListDesigns(ctx)
		if err != nil {
			h.logger.Printf("デザイン一覧の取得に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "デザイン一覧の取得に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": designs})
	}
}

func (h *Handler) designReviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok || user.Email == "" {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "認証情報がありません")
			return
		}

		designID := strings.TrimSpace(chi.URLParam(r, "id"))
		if designID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "デザインIDが指定されていません")
			return
		}

		var req galleryReviewRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "リクエストの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		review, err := h.gallery.AddReview(ctx, dashapp.AddGalleryReviewCommand{
			DesignID:    designID,
			AuthorEmail: user.Email,
			Rating:      req.Rating,
			Comment:     req.Comment,
		})
		if err != nil {
			switch {
			case errors.Is(err, dashapp.ErrInvalidRating), errors.Is(err, dashapp.ErrEmptyComment):
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, dashapp.ErrDesignNotFound):
				common.WriteError(h.logger, w, http.StatusNotFound, err.Error())
			default:
				h.logger.Printf("ギャラリーレビューの投稿に失敗 design=%s err=%v", designID, err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "レビューの投稿に失敗しました")
			}
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, review)
	}
}
