package owner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

func (h *Handler) overviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		overview, err := h.service.Overview(ctx)
		if err != nil {
			h.logger.Printf("概況の集計に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "概況の集計に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, overview)
	}
}

func (h *Handler) staffListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		queryValues := r.URL.Query()
		limit, _ := common.ParsePositiveInt(queryValues.Get("limit"), 0)
		filter := dashapp.StaffFilter{
			Keyword: strings.TrimSpace(queryValues.Get("keyword")),
			Salon:   strings.TrimSpace(queryValues.Get("salon")),
			Sort:    strings.TrimSpace(queryValues.Get("sort")),
			Limit:   limit,
		}

		staff, err := h.service.StaffList(ctx, filter)
		if err != nil {
			h.logger.Printf("スタッフ一覧の集計に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "スタッフ一覧の集計に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": staff})
	}
}

func (h *Handler) staffDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageFile := strings.TrimSpace(chi.URLParam(r, "imageFile"))
		if imageFile == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "スタッフが指定されていません")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		detail, err := h.service.StaffDetail(ctx, imageFile)
		if err != nil {
			if errors.Is(err, dashapp.ErrStylistNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, err.Error())
				return
			}
			h.logger.Printf("スタッフ詳細の集計に失敗 imageFile=%s err=%v", imageFile, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "スタッフ詳細の集計に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, detail)
	}
}

func (h *Handler) comparisonHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageFiles := splitList(r.URL.Query().Get("staff"))

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		entries, err := h.service.Compare(ctx, imageFiles)
		if err != nil {
			switch {
			case errors.Is(err, dashapp.ErrComparisonSelection):
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, dashapp.ErrStylistNotFound):
				common.WriteError(h.logger, w, http.StatusNotFound, err.Error())
			default:
				h.logger.Printf("スタッフ比較の集計に失敗: %v", err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "スタッフ比較の集計に失敗しました")
			}
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": entries})
	}
}

func (h *Handler) demographicsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageFile := strings.TrimSpace(r.URL.Query().Get("staff"))

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		demographics, err := h.service.Demographics(ctx, imageFile)
		if err != nil {
			if errors.Is(err, dashapp.ErrStylistNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, err.Error())
				return
			}
			h.logger.Printf("顧客属性の集計に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "顧客属性の集計に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, demographics)
	}
}

func (h *Handler) highlightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		highlights, err := h.service.Highlights(ctx)
		if err != nil {
			h.logger.Printf("注目スタッフの集計に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "注目スタッフの集計に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, highlights)
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}
