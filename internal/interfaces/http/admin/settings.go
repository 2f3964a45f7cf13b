package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/salon-id/hair-design-review/api/internal/admin/application"
	"github.com/salon-id/hair-design-review/api/internal/ingest"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

func (h *Handler) ownerEmailGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		email, err := h.settingsService.OwnerEmail(ctx)
		if err != nil {
			h.logger.Printf("オーナーメールの取得に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "オーナーメールの取得に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, ownerEmailResponse{OwnerEmail: email})
	}
}

func (h *Handler) ownerEmailSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerEmailRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "リクエストの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.settingsService.SetOwnerEmail(ctx, req.OwnerEmail); err != nil {
			if errors.Is(err, adminapp.ErrInvalidEmail) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("オーナーメールの保存に失敗: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "オーナーメールの保存に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, ownerEmailResponse{OwnerEmail: strings.TrimSpace(req.OwnerEmail)})
	}
}

func (h *Handler) mappingGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := ingest.Kind(strings.TrimSpace(chi.URLParam(r, "kind")))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		mapping, err := h.settingsService.ColumnMapping(ctx, kind)
		if err != nil {
			if errors.Is(err, adminapp.ErrUnknownKind) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("列マッピングの取得に失敗 kind=%s err=%v", kind, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "列マッピングの取得に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, mappingResponse{Kind: string(kind), Mapping: mapping})
	}
}

func (h *Handler) mappingSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := ingest.Kind(strings.TrimSpace(chi.URLParam(r, "kind")))

		var req mappingRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxJSONRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "リクエストの形式が不正です")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.settingsService.SaveColumnMapping(ctx, kind, req.Mapping); err != nil {
			if errors.Is(err, adminapp.ErrUnknownKind) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("列マッピングの保存に失敗 kind=%s err=%v", kind, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "列マッピングの保存に失敗しました")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"saved": true})
	}
}
