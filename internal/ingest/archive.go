package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"path"
	"strings"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// ExtractImages は ZIP アーカイブから画像エントリを取り出し、
// ベースファイル名→data URL のマップへ変換する。
// ディレクトリ成分は取り除くため、別フォルダの同名ファイルは後勝ちで衝突する。
// MIME 種別は拡張子からの推定で、png 以外はすべて image/jpeg として扱う
// （gif/webp も jpeg 扱いになる既知の挙動。資産が JPEG/PNG のみである前提）。
func ExtractImages(r io.ReaderAt, size int64) (map[string]string, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	images := make(map[string]string)
	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}

		payload, err := readArchiveEntry(entry)
		if err != nil {
			return nil, err
		}

		mimeType := "image/jpeg"
		if ext == ".png" {
			mimeType = "image/png"
		}

		baseName := path.Base(entry.Name)
		images[baseName] = "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(payload)
	}
	return images, nil
}

func readArchiveEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
