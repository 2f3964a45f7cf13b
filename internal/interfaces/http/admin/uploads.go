package admin

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/salon-id/hair-design-review/api/internal/ingest"
	"github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
)

// uploadBody はアップロードの本文を取り出す。multipart の場合は `file` フィールド、
// それ以外は生のリクエストボディをそのまま使う（ブラウザ・curl 双方を受ける）。
func uploadBody(r *http.Request, limit int64) (io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.NopCloser(io.LimitReader(r.Body, limit)), nil
	}

	if err := r.ParseMultipartForm(limit); err != nil {
		return nil, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (h *Handler) stylistUploadHandler() http.HandlerFunc {
	return h.csvUploadHandler("美容師データ", func(ctx context.Context, r io.Reader) (int, error) {
		return h.uploadService.UploadStylists(ctx, r)
	})
}

func (h *Handler) reviewUploadHandler() http.HandlerFunc {
	return h.csvUploadHandler("アンケートデータ", func(ctx context.Context, r io.Reader) (int, error) {
		return h.uploadService.UploadReviews(ctx, r)
	})
}

func (h *Handler) csvUploadHandler(label string, ingestFn func(context.Context, io.Reader) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := uploadBody(r, common.MaxCSVUploadBody)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "アップロードファイルを読み取れません")
			return
		}
		defer body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		count, err := ingestFn(ctx, body)
		if err != nil {
			h.writeUploadError(w, label, err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, uploadResponse{Count: count})
	}
}

func (h *Handler) imageUploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := uploadBody(r, common.MaxArchiveUploadBody)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "アップロードファイルを読み取れません")
			return
		}
		defer body.Close()

		// zip の展開にはランダムアクセスが必要なので一度メモリへ載せる。
		data, err := io.ReadAll(body)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "アップロードファイルを読み取れません")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		count, err := h.uploadService.UploadImages(ctx, bytes.NewReader(data), int64(len(data)))
		if err != nil {
			h.writeUploadError(w, "画像アーカイブ", err)
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, uploadResponse{Count: count})
	}
}

// writeUploadError は取り込みエラーを HTTP ステータスへ振り分ける。
// 解析失敗と空結果は入力不備（400）、それ以外は永続化失敗として 500 を返す。
func (h *Handler) writeUploadError(w http.ResponseWriter, label string, err error) {
	var parseErr *ingest.ParseError
	var emptyErr *ingest.EmptyResultError
	switch {
	case errors.As(err, &parseErr):
		common.WriteError(h.logger, w, http.StatusBadRequest, parseErr.Error())
	case errors.As(err, &emptyErr):
		common.WriteError(h.logger, w, http.StatusBadRequest, emptyErr.Error())
	default:
		h.logger.Printf("%sの取り込みに失敗: %v", label, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, label+"の登録に失敗しました")
	}
}
