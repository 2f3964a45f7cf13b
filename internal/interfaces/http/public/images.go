package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

func (h *Handler) imageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if name == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "画像名が指定されていません")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dataURL, err := h.images.Find(ctx, name)
		if err != nil {
			h.logger.Printf("画像の取得に失敗 name=%s err=%v", name, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "画像の取得に失敗しました")
			return
		}
		if dataURL == "" {
			common.WriteError(h.logger, w, http.StatusNotFound, "画像が見つかりません")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, imageResponse{Name: name, DataURL: dataURL})
	}
}
