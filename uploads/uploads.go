// Package uploads receives payment-proof screenshots: image-only,
// size-capped, written under the static uploads dir with a thumbnail
// for the review queue.
package uploads

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bakehouse/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	_ "golang.org/x/image/webp"
)

type Handler struct {
	Dir      string
	MaxBytes int64
}

func NewHandler(dir string, maxBytes int64) (*Handler, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Handler{Dir: dir, MaxBytes: maxBytes}, nil
}

// UploadPaymentProof accepts a multipart "file" field and returns the
// public URL of the stored image. Wrong type and oversize are caller
// errors; a failed write is surfaced so the client can retry.
func (h *Handler) UploadPaymentProof(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.MaxBytes {
		http.Error(w, fmt.Sprintf("File size must be less than %dMB", h.MaxBytes>>20), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.MaxBytes+1))
	if err != nil {
		log.Println("UploadPaymentProof read error:", err)
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > h.MaxBytes {
		http.Error(w, fmt.Sprintf("File size must be less than %dMB", h.MaxBytes>>20), http.StatusBadRequest)
		return
	}

	sniffLen := len(data)
	if sniffLen > 512 {
		sniffLen = 512
	}
	mimeType := http.DetectContentType(data[:sniffLen])
	if !utils.SupportedImageTypes[mimeType] {
		http.Error(w, "Only image files are allowed", http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFor(mimeType)
	}
	filename := fmt.Sprintf("payment-proof-%d-%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)
	path := filepath.Join(h.Dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Println("UploadPaymentProof write error:", err)
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	thumbURL := ""
	if thumb, err := h.writeThumb(data, filename); err != nil {
		log.Println("UploadPaymentProof thumbnail error:", err)
	} else {
		thumbURL = "/static/uploads/" + thumb
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"url":          "/static/uploads/" + filename,
		"thumbnailUrl": thumbURL,
		"filename":     header.Filename,
		"size":         len(data),
		"type":         mimeType,
	})
}

// writeThumb renders a 200px-wide JPEG preview next to the original.
func (h *Handler) writeThumb(data []byte, filename string) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	resized := imaging.Resize(img, 200, 0, imaging.Lanczos)

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	thumb := base + "-thumb.jpg"
	if err := imaging.Save(resized, filepath.Join(h.Dir, thumb)); err != nil {
		return "", err
	}
	return thumb, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/tiff":
		return ".tiff"
	}
	return ".img"
}
